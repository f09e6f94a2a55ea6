package gridbot

import "container/heap"

type priorityQueueItem struct {
	Node     int
	FCost    int
	sequence int
}

// priorityQueue orders items by FCost, then by insertion.
type priorityQueue []*priorityQueueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(*priorityQueueItem))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}

// openSet is the best-first frontier. Costs are never decreased once queued,
// so items need no back-reference into the heap.
type openSet struct {
	queue  priorityQueue
	pushed int
}

func (s *openSet) push(node, fCost int) {
	s.pushed++
	heap.Push(&s.queue, &priorityQueueItem{
		Node:     node,
		FCost:    fCost,
		sequence: s.pushed,
	})
}

func (s *openSet) pop() *priorityQueueItem {
	return heap.Pop(&s.queue).(*priorityQueueItem)
}

func (s *openSet) empty() bool { return s.queue.Len() == 0 }

package gridbot

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// breadthResult is the outcome of one breadth-first expansion.
type breadthResult struct {
	path     []Action
	goal     Position
	found    bool
	enqueued int64
	expanded int64
}

// breadthFirst expands outward from start in FIFO order until it dequeues a
// cell satisfying isGoal or runs out of cells. Each cell enters the frontier at
// most once.
func breadthFirst(
	env Environment,
	start Position,
	isGoal func(Position) bool,
	onExpand func(Position),
) breadthResult {
	var result breadthResult

	nodes := arena{}
	seen := newCellSet(env.Rows(), env.Cols())
	frontier := linkedlistqueue.New()

	frontier.Enqueue(nodes.add(searchNode{Pos: start, Parent: -1}))
	seen.add(start)
	result.enqueued++

	for !frontier.Empty() {
		value, _ := frontier.Dequeue()
		current := value.(int)
		node := nodes[current]
		result.expanded++
		if onExpand != nil {
			onExpand(node.Pos)
		}

		if isGoal(node.Pos) {
			result.path = nodes.actions(current)
			result.goal = node.Pos
			result.found = true
			return result
		}

		neighbors(env, node.Pos, func(next Position, via Action) {
			if seen.has(next) {
				return
			}
			seen.add(next)
			frontier.Enqueue(nodes.add(searchNode{
				Pos:    next,
				Parent: current,
				Via:    via,
				G:      node.G + 1,
			}))
			result.enqueued++
		})
	}

	return result
}

// bfs plans the shortest route from start to the primary target. Opened counts
// frontier insertions, the seed included.
func bfs(env Environment, start Position, onExpand func(Position)) Result {
	target := env.PrimaryTarget()
	search := breadthFirst(env, start, func(p Position) bool { return p == target }, onExpand)

	result := Result{Opened: search.enqueued}
	if search.found {
		result.Found = true
		result.Path = search.path
		result.Length = len(search.path)
	}
	return result
}

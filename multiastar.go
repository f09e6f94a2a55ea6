package gridbot

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// multiTargetStepCost is the per-move cost of the multi-target best-first
// planner; its heuristic is scaled to match.
const multiTargetStepCost = 10

type targetCandidate struct {
	index    int
	estimate int
}

func byEstimateThenIndex(a, b interface{}) int {
	left, right := a.(targetCandidate), b.(targetCandidate)
	if left.estimate != right.estimate {
		return left.estimate - right.estimate
	}
	return left.index - right.index
}

// nearestTarget picks the unvisited target with the smallest Manhattan
// distance from current; ties go to the earlier target.
func nearestTarget(targets []Position, visited []bool, current Position) (int, bool) {
	candidates := priorityqueue.NewWith(byEstimateThenIndex)
	for i, target := range targets {
		if !visited[i] {
			candidates.Enqueue(targetCandidate{index: i, estimate: current.Manhattan(target)})
		}
	}
	best, ok := candidates.Dequeue()
	if !ok {
		return 0, false
	}
	return best.(targetCandidate).index, true
}

// multiAStar visits every target, always heading for the closest unvisited one
// next and planning each leg with a full best-first search. An unreachable
// target aborts the plan, keeping the legs found so far. Opened counts every
// expanded cell.
func multiAStar(env Environment, start Position, model CostModel, onExpand func(Position)) Result {
	config := bestFirstConfig{stepCost: multiTargetStepCost, onExpand: onExpand}
	if model == HeuristicCost {
		config.heuristicWeight = multiTargetStepCost
	}

	targets := env.Targets()
	visited := make([]bool, len(targets))

	var result Result
	current := start
	for {
		index, ok := nearestTarget(targets, visited, current)
		if !ok {
			result.Found = true
			break
		}
		visited[index] = true

		goal := targets[index]
		search := bestFirst(env, current, goal, config)
		result.Opened += search.expanded
		if !search.found {
			break
		}
		result.Path = append(result.Path, search.path...)
		current = goal
	}

	result.Length = len(result.Path)
	return result
}

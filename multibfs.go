package gridbot

import "github.com/emirpasic/gods/sets/hashset"

// multiBFS collects targets greedily: each round floods out from the current
// cell and walks to whichever pending target it dequeues first. The number of
// rounds is bounded by the number of targets; a round that reaches no pending
// target ends the plan. Opened counts every dequeued cell.
func multiBFS(env Environment, start Position, onExpand func(Position)) Result {
	targets := env.Targets()
	pending := hashset.New()
	for _, target := range targets {
		pending.Add(target)
	}
	isPending := func(p Position) bool { return pending.Contains(p) }

	var result Result
	current := start
	for round := 0; round < len(targets) && !pending.Empty(); round++ {
		search := breadthFirst(env, current, isPending, onExpand)
		result.Opened += search.expanded
		if !search.found {
			break
		}
		pending.Remove(search.goal)
		result.Path = append(result.Path, search.path...)
		current = search.goal
	}

	if pending.Empty() {
		result.Found = true
		result.Length = len(result.Path)
	}
	return result
}

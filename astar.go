package gridbot

// bestFirstConfig tunes the shared best-first core.
type bestFirstConfig struct {
	stepCost        int
	heuristicWeight int
	onExpand        func(Position)
}

type bestFirstResult struct {
	path     []Action
	found    bool
	cost     int
	enqueued int64
	expanded int64
}

// bestFirst pops the lowest f = g + heuristicWeight*manhattan node until it
// pops goal or the frontier empties. A cell is queued at most once and its
// first cost is final.
func bestFirst(env Environment, start, goal Position, config bestFirstConfig) bestFirstResult {
	var result bestFirstResult

	estimate := func(p Position) int { return config.heuristicWeight * p.Manhattan(goal) }

	nodes := arena{}
	seen := newCellSet(env.Rows(), env.Cols())
	var frontier openSet

	frontier.push(nodes.add(searchNode{Pos: start, Parent: -1}), estimate(start))
	seen.add(start)
	result.enqueued++

	for !frontier.empty() {
		item := frontier.pop()
		node := nodes[item.Node]
		result.expanded++
		if config.onExpand != nil {
			config.onExpand(node.Pos)
		}

		if node.Pos == goal {
			result.path = nodes.actions(item.Node)
			result.cost = node.G
			result.found = true
			return result
		}

		neighbors(env, node.Pos, func(next Position, via Action) {
			if seen.has(next) {
				return
			}
			seen.add(next)
			gScore := node.G + config.stepCost
			child := nodes.add(searchNode{Pos: next, Parent: item.Node, Via: via, G: gScore})
			frontier.push(child, gScore+estimate(next))
			result.enqueued++
		})
	}

	return result
}

// astar plans the shortest route from start to the primary target with unit
// step cost and the Manhattan heuristic. Opened counts frontier insertions.
func astar(env Environment, start Position, onExpand func(Position)) Result {
	search := bestFirst(env, start, env.PrimaryTarget(), bestFirstConfig{
		stepCost:        1,
		heuristicWeight: 1,
		onExpand:        onExpand,
	})

	result := Result{Opened: search.enqueued}
	if search.found {
		result.Found = true
		result.Path = search.path
		result.Length = len(search.path)
	}
	return result
}

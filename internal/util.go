package internal

// Backtrace walks parent links from leaf up to the root (the node whose parent
// is negative) and returns the step recorded on every non-root node, ordered
// from the root towards leaf.
func Backtrace[Step any](
	leaf int,
	parent func(index int) int,
	step func(index int) Step,
) []Step {
	var steps []Step
	for current := leaf; current >= 0; {
		previous := parent(current)
		if previous < 0 {
			break
		}
		steps = append(steps, step(current))
		current = previous
	}
	// reverse path
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

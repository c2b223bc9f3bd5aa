package goals

// AdvancePolicy names how a target level reacts when the current level
// catches up to it. Character and weapon levels require a strictly greater
// target; talents and artifact levels allow current == target (the goal is
// simply "done"). The two policies are named rather than parameterized so a
// call site cannot silently pick the wrong semantics for its dimension.
type AdvancePolicy int

const (
	// AdvanceStrict pushes the target to the next step strictly greater
	// than the new current level.
	AdvanceStrict AdvancePolicy = iota

	// AdvanceAllowEqual lets the target rest at the new current level.
	AdvanceAllowEqual
)

// ResolveTarget returns the adjusted target after current changes. next
// supplies the smallest step strictly greater than its argument for the
// dimension's level set.
func (p AdvancePolicy) ResolveTarget(current, target int, next func(int) int) int {
	switch p {
	case AdvanceStrict:
		if target <= current {
			return next(current)
		}
	case AdvanceAllowEqual:
		if target < current {
			return current
		}
	}
	return target
}

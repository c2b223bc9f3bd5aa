// Package ascension maps character and weapon levels onto the game's
// ascension phase ladder. Levels are only addressable at milestone values;
// each milestone above 20 opens one more phase, up to phase 6 at level 90.
package ascension

// Milestones is the fixed set of goal-addressable character/weapon levels,
// in ascending order.
var Milestones = []int{1, 20, 40, 50, 60, 70, 80, 90}

// phaseByLevel maps a milestone level to the index of the last ascension
// phase completed at that level.
var phaseByLevel = map[int]int{
	1:  0,
	20: 0,
	40: 1,
	50: 2,
	60: 3,
	70: 4,
	80: 5,
	90: 6,
}

// IsMilestone reports whether lvl is a member of the milestone set.
func IsMilestone(lvl int) bool {
	_, ok := phaseByLevel[lvl]
	return ok
}

// ClampMilestone snaps lvl to the nearest milestone at or below it.
// Values below the first milestone snap to 1, values above the last to 90.
func ClampMilestone(lvl int) int {
	if lvl <= Milestones[0] {
		return Milestones[0]
	}
	clamped := Milestones[0]
	for _, m := range Milestones {
		if m > lvl {
			break
		}
		clamped = m
	}
	return clamped
}

// NextMilestone returns the smallest milestone strictly greater than lvl,
// or the last milestone if none exists.
func NextMilestone(lvl int) int {
	for _, m := range Milestones {
		if m > lvl {
			return m
		}
	}
	return Milestones[len(Milestones)-1]
}

// Phase returns the index of the last ascension phase completed at lvl.
// Off-milestone input degrades to phase 0 rather than failing; imported
// documents are validated before they reach this point, so a miss here is
// a programming error upstream, not user data.
func Phase(lvl int) int {
	if p, ok := phaseByLevel[lvl]; ok {
		return p
	}
	return 0
}

// PhaseRange returns the inclusive range of phase indices that must be paid
// for to go from current to target. The range is empty (ok=false) when
// current >= target.
func PhaseRange(current, target int) (from, to int, ok bool) {
	from = Phase(current) + 1
	to = Phase(target)
	if from > to {
		return 0, 0, false
	}
	return from, to, true
}

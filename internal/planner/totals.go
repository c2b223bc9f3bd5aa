package planner

import "github.com/teyvatops/ascend/internal/costs"

// Totals folds the remaining cost of every owned character's goal record
// into one grand material list. It is a pure derivation over current state;
// nothing is cached across mutations. Complete is false when any underlying
// lookup missed. Orphaned goal records (characters removed from the roster)
// do not contribute.
func (p *Planner) Totals() (items []costs.Item, complete bool) {
	complete = true
	var lists [][]costs.Item
	for _, id := range p.owned {
		g, ok := p.GoalCost(id)
		if !ok {
			continue
		}
		complete = complete && g.Complete
		lists = append(lists, g.Total())
	}
	return costs.Merge(lists...), complete
}

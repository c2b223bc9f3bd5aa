package planner

import (
	"github.com/teyvatops/ascend/internal/ascension"
	"github.com/teyvatops/ascend/internal/costs"
	"github.com/teyvatops/ascend/internal/goals"
)

// GoalCost is the remaining cost of one character's plan, split by
// dimension. Complete is false when any table or provider lookup missed;
// the missing piece contributed zero, and the caller decides whether to
// surface the gap as stale data.
type GoalCost struct {
	Character []costs.Item
	Weapon    []costs.Item
	Artifacts []costs.Item
	Talents   []costs.Item
	Complete  bool
}

// Total folds the four dimensions into one canonical list. All currency
// collapses into the single Mora entry.
func (g GoalCost) Total() []costs.Item {
	return costs.Merge(g.Character, g.Weapon, g.Artifacts, g.Talents)
}

// GoalCost computes the remaining cost for one character's goal record.
// The second return is false when the character has no record.
func (p *Planner) GoalCost(id string) (GoalCost, bool) {
	r := p.records[id]
	if r == nil {
		return GoalCost{}, false
	}

	g := GoalCost{Complete: true}

	g.Character = p.characterCost(id, r, &g.Complete)
	g.Weapon = p.weaponCost(r, &g.Complete)
	g.Artifacts = artifactCost(r, &g.Complete)
	g.Talents = p.talentCost(id, r, &g.Complete)

	return g, true
}

func (p *Planner) characterCost(id string, r *goals.Record, complete *bool) []costs.Item {
	level, ok := costs.CharacterLevelCost(r.CurrentLevel, r.TargetLevel)
	*complete = *complete && ok

	var asc []costs.Item
	if from, to, ok := ascension.PhaseRange(r.CurrentLevel, r.TargetLevel); ok {
		var found bool
		asc, found = p.provider.CharacterAscensionCost(id, from, to)
		*complete = *complete && found
	}
	return costs.Merge(asc, level)
}

func (p *Planner) weaponCost(r *goals.Record, complete *bool) []costs.Item {
	if r.Weapon == "" {
		return nil
	}
	rarity, ok := p.provider.WeaponRarity(r.Weapon)
	if !ok {
		*complete = false
		return nil
	}

	level, ok := costs.WeaponLevelCost(rarity, r.WeaponCurrentLevel, r.WeaponTargetLevel)
	*complete = *complete && ok

	var asc []costs.Item
	if from, to, ok := ascension.PhaseRange(r.WeaponCurrentLevel, r.WeaponTargetLevel); ok {
		var found bool
		asc, found = p.provider.WeaponAscensionCost(r.Weapon, from, to)
		*complete = *complete && found
	}
	return costs.Merge(asc, level)
}

func artifactCost(r *goals.Record, complete *bool) []costs.Item {
	var lists [][]costs.Item
	for i := range r.Artifacts {
		a := &r.Artifacts[i]
		items, ok := costs.ArtifactLevelCost(a.CurrentLevel, a.TargetLevel)
		*complete = *complete && ok
		lists = append(lists, items)
	}
	return costs.Merge(lists...)
}

func (p *Planner) talentCost(id string, r *goals.Record, complete *bool) []costs.Item {
	var lists [][]costs.Item
	for _, key := range goals.TalentKeys() {
		t := r.Talent(key)
		if t.CurrentLevel >= t.TargetLevel {
			continue
		}
		items, ok := p.provider.TalentCost(id, t.CurrentLevel, t.TargetLevel)
		*complete = *complete && ok
		lists = append(lists, items)
	}
	return costs.Merge(lists...)
}

package goalsedit

import (
	"fmt"
	"strings"

	"github.com/teyvatops/ascend/internal/goals"
	"github.com/teyvatops/ascend/internal/planner"
)

// row is one line of the editor. Headers are skipped by the cursor;
// editable rows carry an adjust or activate action, or both.
type row struct {
	label    string
	header   bool
	editable bool
	value    func() string
	adjust   func(delta int)
	activate func()
}

func firstEditable(rows []row) int {
	for i, r := range rows {
		if r.editable {
			return i
		}
	}
	return 0
}

func (s *GoalsScreen) buildRows() []row {
	rows := []row{
		{label: "Character", header: true},
		s.milestoneRow("Level · now", planner.DimensionCharacter, goals.FieldCurrent,
			func(r *goals.Record) int { return r.CurrentLevel }),
		s.milestoneRow("Level · goal", planner.DimensionCharacter, goals.FieldTarget,
			func(r *goals.Record) int { return r.TargetLevel }),

		{label: "Weapon", header: true},
		{
			label:    "Weapon",
			editable: true,
			value: func() string {
				rec := s.record()
				if rec.Weapon == "" {
					return "—"
				}
				if name := s.provider.WeaponName(rec.Weapon); name != "" {
					return name
				}
				return rec.Weapon
			},
			activate: s.openWeaponPicker,
		},
		s.milestoneRow("Level · now", planner.DimensionWeapon, goals.FieldCurrent,
			func(r *goals.Record) int { return r.WeaponCurrentLevel }),
		s.milestoneRow("Level · goal", planner.DimensionWeapon, goals.FieldTarget,
			func(r *goals.Record) int { return r.WeaponTargetLevel }),

		{label: "Talents", header: true},
	}

	talentLabels := map[goals.TalentKey]string{
		goals.TalentNormalAttack: "Normal Attack",
		goals.TalentSkill:        "Elemental Skill",
		goals.TalentBurst:        "Elemental Burst",
	}
	for _, key := range goals.TalentKeys() {
		key := key
		rows = append(rows,
			s.talentRow(talentLabels[key]+" · now", key, goals.FieldCurrent,
				func(p *goals.TalentPlan) int { return p.CurrentLevel }),
			s.talentRow(talentLabels[key]+" · goal", key, goals.FieldTarget,
				func(p *goals.TalentPlan) int { return p.TargetLevel }),
		)
	}

	for slot := goals.ArtifactSlot(0); slot < goals.NumSlots; slot++ {
		rows = append(rows, s.artifactRows(slot)...)
	}

	return rows
}

func (s *GoalsScreen) milestoneRow(label string, dim planner.Dimension, field goals.LevelField, get func(*goals.Record) int) row {
	return row{
		label:    label,
		editable: true,
		value: func() string {
			return fmt.Sprintf("%d", get(s.record()))
		},
		adjust: func(delta int) {
			cur := get(s.record())
			s.pl.SetLevel(s.id, dim, field, stepMilestone(cur, delta))
		},
	}
}

func (s *GoalsScreen) talentRow(label string, key goals.TalentKey, field goals.LevelField, get func(*goals.TalentPlan) int) row {
	return row{
		label:    label,
		editable: true,
		value: func() string {
			return fmt.Sprintf("%d", get(s.record().Talent(key)))
		},
		adjust: func(delta int) {
			cur := get(s.record().Talent(key))
			s.pl.SetTalentLevel(s.id, key, field, cur+delta)
		},
	}
}

func (s *GoalsScreen) artifactRows(slot goals.ArtifactSlot) []row {
	rows := []row{
		{label: slot.DisplayName(), header: true},
		{
			label:    "Level · now",
			editable: true,
			value: func() string {
				return fmt.Sprintf("+%d", s.record().Artifacts[slot].CurrentLevel)
			},
			adjust: func(delta int) {
				cur := s.record().Artifacts[slot].CurrentLevel
				s.pl.SetArtifactLevel(s.id, slot, goals.FieldCurrent, stepArtifactLevel(cur, delta))
			},
		},
		{
			label:    "Level · goal",
			editable: true,
			value: func() string {
				return fmt.Sprintf("+%d", s.record().Artifacts[slot].TargetLevel)
			},
			adjust: func(delta int) {
				cur := s.record().Artifacts[slot].TargetLevel
				s.pl.SetArtifactLevel(s.id, slot, goals.FieldTarget, stepArtifactLevel(cur, delta))
			},
		},
	}

	if stat, locked := goals.LockedMainStat(slot); locked {
		rows = append(rows, row{
			label: "Main stat",
			value: func() string { return stat + " (fixed)" },
		})
	} else {
		rows = append(rows, row{
			label:    "Main stat",
			editable: true,
			value: func() string {
				return s.record().Artifacts[slot].MainStat
			},
			activate: func() { s.openMainStatPicker(slot) },
		})
	}

	rows = append(rows,
		row{
			label:    "Substats",
			editable: true,
			value: func() string {
				subs := s.record().Artifacts[slot].DesiredSubstats
				if len(subs) == 0 {
					return "—"
				}
				return strings.Join(subs, ", ")
			},
			activate: func() { s.openSubstatPicker(slot, "") },
		},
		row{
			label:    "Target count",
			editable: true,
			value: func() string {
				a := s.record().Artifacts[slot]
				return fmt.Sprintf("%d of %d", a.TargetSubstatCount, len(a.DesiredSubstats))
			},
			adjust: func(delta int) {
				cur := s.record().Artifacts[slot].TargetSubstatCount
				s.pl.SetTargetSubstatCount(s.id, slot, cur+delta)
			},
		},
	)

	return rows
}

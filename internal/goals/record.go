package goals

import "github.com/teyvatops/ascend/internal/ascension"

// SetCharacterLevel writes one half of the character level pair. Off-set
// values clamp to a milestone. Raising the current level past the target
// drags the target to the next milestone strictly above it.
func (r *Record) SetCharacterLevel(field LevelField, v int) {
	r.CurrentLevel, r.TargetLevel = setMilestonePair(
		field, v, r.CurrentLevel, r.TargetLevel, AdvanceStrict)
}

// SetWeaponLevel writes one half of the weapon level pair, with the same
// strictly-greater target semantics as character levels.
func (r *Record) SetWeaponLevel(field LevelField, v int) {
	r.WeaponCurrentLevel, r.WeaponTargetLevel = setMilestonePair(
		field, v, r.WeaponCurrentLevel, r.WeaponTargetLevel, AdvanceStrict)
}

// SetWeapon changes the planned weapon. Levels carry over; an empty id
// clears the weapon.
func (r *Record) SetWeapon(id string) {
	r.Weapon = id
}

func setMilestonePair(field LevelField, v, current, target int, policy AdvancePolicy) (int, int) {
	v = ascension.ClampMilestone(v)
	switch field {
	case FieldCurrent:
		current = v
		target = policy.ResolveTarget(current, target, ascension.NextMilestone)
	case FieldTarget:
		if v > current || (policy == AdvanceAllowEqual && v == current) {
			target = v
		}
	}
	return current, target
}

// SetArtifactLevel writes one half of an artifact's level pair. Artifact
// goals allow current == target.
func (r *Record) SetArtifactLevel(slot ArtifactSlot, field LevelField, v int) {
	if slot < 0 || slot >= NumSlots {
		return
	}
	a := &r.Artifacts[slot]
	v = ClampArtifactLevel(v)
	switch field {
	case FieldCurrent:
		a.CurrentLevel = v
		a.TargetLevel = AdvanceAllowEqual.ResolveTarget(a.CurrentLevel, a.TargetLevel, NextArtifactLevel)
	case FieldTarget:
		if v >= a.CurrentLevel {
			a.TargetLevel = v
		}
	}
}

// SetArtifactMainStat writes an artifact's main stat. Writes to the two
// locked slots and writes of stats outside the slot's choice set are no-ops.
func (r *Record) SetArtifactMainStat(slot ArtifactSlot, stat string) {
	if slot < 0 || slot >= NumSlots {
		return
	}
	if _, locked := LockedMainStat(slot); locked {
		return
	}
	if !IsValidMainStat(slot, stat) {
		return
	}
	r.Artifacts[slot].MainStat = stat
}

// ToggleSubstat adds or removes a desired substat on an artifact. Adding is
// capped at MaxDesiredSubstats; removing clamps the target substat count
// down to the shrunken set. Stats outside the substat pool and stats equal
// to the slot's main stat are rejected.
func (r *Record) ToggleSubstat(slot ArtifactSlot, stat string) {
	if slot < 0 || slot >= NumSlots {
		return
	}
	a := &r.Artifacts[slot]

	for i, s := range a.DesiredSubstats {
		if s == stat {
			a.DesiredSubstats = append(a.DesiredSubstats[:i], a.DesiredSubstats[i+1:]...)
			if a.TargetSubstatCount > len(a.DesiredSubstats) {
				a.TargetSubstatCount = len(a.DesiredSubstats)
			}
			return
		}
	}

	if !IsValidSubstat(stat) || stat == a.MainStat {
		return
	}
	if len(a.DesiredSubstats) >= MaxDesiredSubstats {
		return
	}
	a.DesiredSubstats = append(a.DesiredSubstats, stat)
}

// SetTargetSubstatCount writes how many of the desired substats the plan
// aims to land, clamped to [0, len(desiredSubstats)].
func (r *Record) SetTargetSubstatCount(slot ArtifactSlot, n int) {
	if slot < 0 || slot >= NumSlots {
		return
	}
	a := &r.Artifacts[slot]
	if n < 0 {
		n = 0
	}
	if n > len(a.DesiredSubstats) {
		n = len(a.DesiredSubstats)
	}
	a.TargetSubstatCount = n
}

// SetTalentLevel writes one half of a talent's level pair, bounded to
// [TalentMin, TalentMax]. Talents allow current == target and carry no
// cross-talent coupling.
func (r *Record) SetTalentLevel(key TalentKey, field LevelField, v int) {
	t := r.Talent(key)
	if t == nil {
		return
	}
	if v < TalentMin {
		v = TalentMin
	}
	if v > TalentMax {
		v = TalentMax
	}
	switch field {
	case FieldCurrent:
		t.CurrentLevel = v
		t.TargetLevel = AdvanceAllowEqual.ResolveTarget(t.CurrentLevel, t.TargetLevel, func(l int) int {
			if l < TalentMax {
				return l + 1
			}
			return TalentMax
		})
	case FieldTarget:
		if v >= t.CurrentLevel {
			t.TargetLevel = v
		}
	}
}

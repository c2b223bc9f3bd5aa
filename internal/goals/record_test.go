package goals

import "testing"

func TestNewDefaults(t *testing.T) {
	r := New()

	if r.CurrentLevel != 1 || r.TargetLevel != 1 {
		t.Errorf("default levels = %d/%d, want 1/1", r.CurrentLevel, r.TargetLevel)
	}
	if r.Weapon != "" {
		t.Errorf("default weapon = %q, want empty", r.Weapon)
	}
	for i, a := range r.Artifacts {
		if a.Slot != SlotName(ArtifactSlot(i)) {
			t.Errorf("artifact %d slot = %q, want %q", i, a.Slot, SlotName(ArtifactSlot(i)))
		}
	}
	if r.Artifacts[SlotFlower].MainStat != "HP" {
		t.Errorf("flower main stat = %q, want HP", r.Artifacts[SlotFlower].MainStat)
	}
	if r.Artifacts[SlotPlume].MainStat != "ATK" {
		t.Errorf("plume main stat = %q, want ATK", r.Artifacts[SlotPlume].MainStat)
	}
	for _, key := range TalentKeys() {
		tp := r.Talent(key)
		if tp.CurrentLevel != 1 || tp.TargetLevel != 1 {
			t.Errorf("talent %s = %d/%d, want 1/1", key, tp.CurrentLevel, tp.TargetLevel)
		}
	}
}

func TestSetCharacterLevelAdvancesTarget(t *testing.T) {
	r := New()

	r.SetCharacterLevel(FieldTarget, 50)
	if r.TargetLevel != 50 {
		t.Fatalf("target = %d, want 50", r.TargetLevel)
	}

	// Raising current to the target drags the target strictly above it.
	r.SetCharacterLevel(FieldCurrent, 50)
	if r.CurrentLevel != 50 || r.TargetLevel != 60 {
		t.Errorf("levels = %d/%d, want 50/60", r.CurrentLevel, r.TargetLevel)
	}

	// At the cap the target saturates.
	r.SetCharacterLevel(FieldCurrent, 90)
	if r.TargetLevel != 90 {
		t.Errorf("target = %d, want 90 at cap", r.TargetLevel)
	}
}

func TestSetCharacterLevelClampsOffMilestone(t *testing.T) {
	r := New()
	r.SetCharacterLevel(FieldCurrent, 47)
	if r.CurrentLevel != 40 {
		t.Errorf("current = %d, want clamped 40", r.CurrentLevel)
	}
	r.SetCharacterLevel(FieldCurrent, -3)
	if r.CurrentLevel != 1 {
		t.Errorf("current = %d, want clamped 1", r.CurrentLevel)
	}
}

func TestSetCharacterLevelRejectsTargetBelowCurrent(t *testing.T) {
	r := New()
	r.SetCharacterLevel(FieldCurrent, 60)
	before := r.TargetLevel
	r.SetCharacterLevel(FieldTarget, 40)
	if r.TargetLevel != before {
		t.Errorf("target = %d, want unchanged %d", r.TargetLevel, before)
	}
}

func TestSetWeaponLevel(t *testing.T) {
	r := New()
	r.SetWeapon("staff_of_homa")
	r.SetWeaponLevel(FieldTarget, 90)
	if r.Weapon != "staff_of_homa" || r.WeaponTargetLevel != 90 {
		t.Errorf("weapon plan = %q %d/%d", r.Weapon, r.WeaponCurrentLevel, r.WeaponTargetLevel)
	}
}

func TestSetArtifactLevelAllowsEqual(t *testing.T) {
	r := New()

	r.SetArtifactLevel(SlotFlower, FieldTarget, 20)
	r.SetArtifactLevel(SlotFlower, FieldCurrent, 20)
	a := r.Artifacts[SlotFlower]
	if a.CurrentLevel != 20 || a.TargetLevel != 20 {
		t.Errorf("flower = %d/%d, want 20/20", a.CurrentLevel, a.TargetLevel)
	}

	// Off-set value clamps down.
	r.SetArtifactLevel(SlotPlume, FieldCurrent, 9)
	if r.Artifacts[SlotPlume].CurrentLevel != 8 {
		t.Errorf("plume current = %d, want 8", r.Artifacts[SlotPlume].CurrentLevel)
	}
}

func TestSetArtifactMainStatLockedSlots(t *testing.T) {
	r := New()

	r.SetArtifactMainStat(SlotFlower, "CRIT Rate")
	if got := r.Artifacts[SlotFlower].MainStat; got != "HP" {
		t.Errorf("flower main stat = %q, want HP (locked)", got)
	}
	r.SetArtifactMainStat(SlotPlume, "HP%")
	if got := r.Artifacts[SlotPlume].MainStat; got != "ATK" {
		t.Errorf("plume main stat = %q, want ATK (locked)", got)
	}
}

func TestSetArtifactMainStatFreeSlots(t *testing.T) {
	r := New()

	r.SetArtifactMainStat(SlotCirclet, "CRIT DMG")
	if got := r.Artifacts[SlotCirclet].MainStat; got != "CRIT DMG" {
		t.Errorf("circlet main stat = %q, want CRIT DMG", got)
	}

	// A stat outside the slot's choice set is ignored.
	r.SetArtifactMainStat(SlotSands, "Healing Bonus")
	if got := r.Artifacts[SlotSands].MainStat; got == "Healing Bonus" {
		t.Error("sands accepted a circlet-only main stat")
	}
}

func TestToggleSubstatCap(t *testing.T) {
	r := New()
	stats := []string{"CRIT Rate", "CRIT DMG", "ATK%", "Energy Recharge", "Elemental Mastery"}
	for _, s := range stats {
		r.ToggleSubstat(SlotSands, s)
	}
	if got := len(r.Artifacts[SlotSands].DesiredSubstats); got != MaxDesiredSubstats {
		t.Errorf("substat count = %d, want cap %d", got, MaxDesiredSubstats)
	}
}

func TestToggleSubstatRemoveClampsTargetCount(t *testing.T) {
	r := New()
	r.ToggleSubstat(SlotGoblet, "CRIT Rate")
	r.ToggleSubstat(SlotGoblet, "CRIT DMG")
	r.SetTargetSubstatCount(SlotGoblet, 2)

	r.ToggleSubstat(SlotGoblet, "CRIT Rate") // remove
	a := r.Artifacts[SlotGoblet]
	if len(a.DesiredSubstats) != 1 || a.TargetSubstatCount != 1 {
		t.Errorf("after removal: %d substats, target count %d, want 1/1",
			len(a.DesiredSubstats), a.TargetSubstatCount)
	}
}

func TestToggleSubstatExcludesMainStat(t *testing.T) {
	r := New()
	r.SetArtifactMainStat(SlotSands, "ATK%")
	r.ToggleSubstat(SlotSands, "ATK%")
	for _, s := range r.Artifacts[SlotSands].DesiredSubstats {
		if s == "ATK%" {
			t.Error("main stat accepted as desired substat")
		}
	}
}

func TestSetTargetSubstatCountBounds(t *testing.T) {
	r := New()
	r.ToggleSubstat(SlotCirclet, "CRIT Rate")

	r.SetTargetSubstatCount(SlotCirclet, 5)
	if got := r.Artifacts[SlotCirclet].TargetSubstatCount; got != 1 {
		t.Errorf("target count = %d, want clamped 1", got)
	}
	r.SetTargetSubstatCount(SlotCirclet, -2)
	if got := r.Artifacts[SlotCirclet].TargetSubstatCount; got != 0 {
		t.Errorf("target count = %d, want clamped 0", got)
	}
}

func TestSetTalentLevel(t *testing.T) {
	r := New()

	r.SetTalentLevel(TalentSkill, FieldTarget, 10)
	if got := r.Talents.Skill.TargetLevel; got != 10 {
		t.Errorf("skill target = %d, want 10", got)
	}

	// Equality is allowed for talents.
	r.SetTalentLevel(TalentSkill, FieldCurrent, 10)
	sk := r.Talents.Skill
	if sk.CurrentLevel != 10 || sk.TargetLevel != 10 {
		t.Errorf("skill = %d/%d, want 10/10", sk.CurrentLevel, sk.TargetLevel)
	}

	// Out-of-bounds values clamp.
	r.SetTalentLevel(TalentBurst, FieldCurrent, 15)
	if got := r.Talents.Burst.CurrentLevel; got != 10 {
		t.Errorf("burst current = %d, want 10", got)
	}
	r.SetTalentLevel(TalentNormalAttack, FieldCurrent, 0)
	if got := r.Talents.NormalAttack.CurrentLevel; got != 1 {
		t.Errorf("normal attack current = %d, want 1", got)
	}

	// No cross-talent coupling.
	if r.Talents.NormalAttack.TargetLevel != 1 {
		t.Error("unrelated talent target changed")
	}
}

func TestAdvancePolicy(t *testing.T) {
	next := func(l int) int { return l + 10 }

	tests := []struct {
		policy          AdvancePolicy
		current, target int
		want            int
	}{
		{AdvanceStrict, 50, 60, 60},
		{AdvanceStrict, 50, 50, 60},
		{AdvanceStrict, 50, 40, 60},
		{AdvanceAllowEqual, 50, 60, 60},
		{AdvanceAllowEqual, 50, 50, 50},
		{AdvanceAllowEqual, 50, 40, 50},
	}

	for _, tt := range tests {
		got := tt.policy.ResolveTarget(tt.current, tt.target, next)
		if got != tt.want {
			t.Errorf("policy %d ResolveTarget(%d, %d) = %d, want %d",
				tt.policy, tt.current, tt.target, got, tt.want)
		}
	}
}

package costs

// Mora-per-EXP rates and consumable unit sizes. Partial consumables cannot
// be purchased, so every derived quantity rounds up.
const (
	CharacterMoraRate = 0.2
	WeaponMoraRate    = 0.005

	CharacterEXPUnit = 20000 // one Hero's Wit
	WeaponEXPUnit    = 10000 // one Mystic Enhancement Ore

	characterEXPItem = "Hero's Wit"
	weaponEXPItem    = "Mystic Enhancement Ore"
	artifactEXPItem  = "Artifact EXP"
)

// MoraForEXP converts an EXP amount into its mora cost at the given rate,
// rounding up.
func MoraForEXP(exp int, rate float64) int {
	if exp <= 0 {
		return 0
	}
	mora := int(float64(exp) * rate)
	if float64(mora) < float64(exp)*rate {
		mora++
	}
	return mora
}

// UnitsForEXP converts an EXP amount into the number of consumable units
// needed to supply it, rounding up.
func UnitsForEXP(exp, unit int) int {
	if exp <= 0 {
		return 0
	}
	return (exp + unit - 1) / unit
}

// CharacterLevelCost returns the mora and EXP-book items for leveling a
// character between two milestones. The bool is false when a table lookup
// missed, in which case the missing part contributed zero.
func CharacterLevelCost(current, target int) ([]Item, bool) {
	exp, ok := CharacterEXP.Range(current, target)
	if exp == 0 {
		return nil, ok
	}
	return []Item{
		{Name: MoraName, Count: MoraForEXP(exp, CharacterMoraRate)},
		{Name: characterEXPItem, Count: UnitsForEXP(exp, CharacterEXPUnit)},
	}, ok
}

// WeaponLevelCost returns the mora and enhancement-ore items for leveling a
// weapon of the given rarity between two milestones.
func WeaponLevelCost(rarity WeaponRarity, current, target int) ([]Item, bool) {
	table, known := WeaponEXP[rarity]
	if !known {
		return nil, false
	}
	exp, ok := table.Range(current, target)
	if exp == 0 {
		return nil, ok
	}
	return []Item{
		{Name: MoraName, Count: MoraForEXP(exp, WeaponMoraRate)},
		{Name: weaponEXPItem, Count: UnitsForEXP(exp, WeaponEXPUnit)},
	}, ok
}

// ArtifactLevelCost returns the mora and raw EXP items for enhancing an
// artifact between two enhancement milestones.
func ArtifactLevelCost(current, target int) ([]Item, bool) {
	mora, okMora := ArtifactMora.Range(current, target)
	exp, okEXP := ArtifactEXP.Range(current, target)
	if mora == 0 && exp == 0 {
		return nil, okMora && okEXP
	}
	return []Item{
		{Name: MoraName, Count: mora},
		{Name: artifactEXPItem, Count: exp},
	}, okMora && okEXP
}

// Package gamedata supplies the game's static metadata: which characters and
// weapons exist, and what materials each ascension phase and talent level
// costs. The planner treats provider output as ground truth; refreshing it
// for a new game version means shipping new data files, nothing else.
package gamedata

import "github.com/teyvatops/ascend/internal/costs"

// Provider exposes the lookups the cost engine and the import validator
// need. Every lookup reports whether it fully resolved; a miss contributes
// nothing rather than failing, and the caller decides whether to surface
// the gap.
type Provider interface {
	// CharacterIDs returns all valid character identifiers, sorted.
	CharacterIDs() []string

	// WeaponIDs returns all valid weapon identifiers, sorted.
	WeaponIDs() []string

	// IsCharacter reports whether id names a known character.
	IsCharacter(id string) bool

	// IsWeapon reports whether id names a known weapon.
	IsWeapon(id string) bool

	// CharacterName returns the display name for a character id.
	CharacterName(id string) string

	// WeaponName returns the display name for a weapon id.
	WeaponName(id string) string

	// WeaponRarity returns the EXP cost tier for a weapon.
	WeaponRarity(id string) (costs.WeaponRarity, bool)

	// CharacterAscensionCost returns the materials needed to ascend a
	// character through the inclusive phase range [from, to].
	CharacterAscensionCost(id string, from, to int) ([]costs.Item, bool)

	// WeaponAscensionCost returns the materials needed to ascend a weapon
	// through the inclusive phase range [from, to].
	WeaponAscensionCost(id string, from, to int) ([]costs.Item, bool)

	// TalentCost returns the materials needed to raise one of a character's
	// talents from one level to another. All three talents share the same
	// cost table.
	TalentCost(id string, from, to int) ([]costs.Item, bool)
}

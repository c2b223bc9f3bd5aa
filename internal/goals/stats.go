package goals

// Flower and Plume main stats are fixed by the game; the other three slots
// choose from a slot-specific set.
const (
	flowerMainStat = "HP"
	plumeMainStat  = "ATK"
)

var sandsMainStats = []string{
	"HP%", "ATK%", "DEF%", "Elemental Mastery", "Energy Recharge",
}

var gobletMainStats = []string{
	"HP%", "ATK%", "DEF%", "Elemental Mastery",
	"Physical DMG Bonus", "Pyro DMG Bonus", "Hydro DMG Bonus",
	"Electro DMG Bonus", "Cryo DMG Bonus", "Anemo DMG Bonus",
	"Geo DMG Bonus", "Dendro DMG Bonus",
}

var circletMainStats = []string{
	"HP%", "ATK%", "DEF%", "Elemental Mastery",
	"CRIT Rate", "CRIT DMG", "Healing Bonus",
}

var substats = []string{
	"HP", "ATK", "DEF", "HP%", "ATK%", "DEF%",
	"Elemental Mastery", "Energy Recharge", "CRIT Rate", "CRIT DMG",
}

// LockedMainStat returns the forced main stat for a slot, if the slot is
// one of the two locked ones.
func LockedMainStat(slot ArtifactSlot) (string, bool) {
	switch slot {
	case SlotFlower:
		return flowerMainStat, true
	case SlotPlume:
		return plumeMainStat, true
	default:
		return "", false
	}
}

// MainStatChoices returns the valid main stats for a slot. Locked slots
// return their single forced value.
func MainStatChoices(slot ArtifactSlot) []string {
	switch slot {
	case SlotFlower:
		return []string{flowerMainStat}
	case SlotPlume:
		return []string{plumeMainStat}
	case SlotSands:
		return sandsMainStats
	case SlotGoblet:
		return gobletMainStats
	case SlotCirclet:
		return circletMainStats
	default:
		return nil
	}
}

// SubstatChoices returns the substat pool shared by all slots.
func SubstatChoices() []string {
	return substats
}

// IsValidMainStat reports whether stat is an allowed main stat for slot.
func IsValidMainStat(slot ArtifactSlot, stat string) bool {
	for _, s := range MainStatChoices(slot) {
		if s == stat {
			return true
		}
	}
	return false
}

// IsValidSubstat reports whether stat belongs to the substat pool.
func IsValidSubstat(stat string) bool {
	for _, s := range substats {
		if s == stat {
			return true
		}
	}
	return false
}

func defaultMainStat(slot ArtifactSlot) string {
	if locked, ok := LockedMainStat(slot); ok {
		return locked
	}
	choices := MainStatChoices(slot)
	if len(choices) == 0 {
		return ""
	}
	return choices[0]
}

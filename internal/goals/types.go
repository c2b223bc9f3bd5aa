// Package goals defines the per-character upgrade plan: character level,
// weapon, artifact and talent targets, together with the invariants each
// field must hold. Records are mutated only through the setters here, which
// clamp or ignore invalid writes instead of trusting the caller.
package goals

// ArtifactSlot indexes the five artifact slots in their fixed order.
type ArtifactSlot int

const (
	SlotFlower ArtifactSlot = iota
	SlotPlume
	SlotSands
	SlotGoblet
	SlotCirclet

	NumSlots = 5
)

// slotNames are the serialized slot identifiers, positional.
var slotNames = [NumSlots]string{"flower", "plume", "sands", "goblet", "circlet"}

// SlotName returns the serialized identifier for a slot.
func SlotName(s ArtifactSlot) string {
	if s < 0 || s >= NumSlots {
		return ""
	}
	return slotNames[s]
}

// DisplayName returns a human-readable slot label.
func (s ArtifactSlot) DisplayName() string {
	switch s {
	case SlotFlower:
		return "Flower"
	case SlotPlume:
		return "Plume"
	case SlotSands:
		return "Sands"
	case SlotGoblet:
		return "Goblet"
	case SlotCirclet:
		return "Circlet"
	default:
		return "?"
	}
}

// ArtifactLevels is the fixed set of goal-addressable artifact enhancement
// levels, in ascending order.
var ArtifactLevels = []int{0, 4, 8, 12, 16, 20}

// MaxDesiredSubstats caps how many substats a plan can chase per artifact.
const MaxDesiredSubstats = 4

// TalentKey identifies one of a character's three upgradable talents.
type TalentKey string

const (
	TalentNormalAttack TalentKey = "normalAttack"
	TalentSkill        TalentKey = "skill"
	TalentBurst        TalentKey = "burst"
)

// TalentKeys returns the three talent keys in display order.
func TalentKeys() []TalentKey {
	return []TalentKey{TalentNormalAttack, TalentSkill, TalentBurst}
}

// Talent level bounds.
const (
	TalentMin = 1
	TalentMax = 10
)

// LevelField selects which half of a current/target pair a write addresses.
type LevelField int

const (
	FieldCurrent LevelField = iota
	FieldTarget
)

// Artifact is the plan for one artifact slot.
type Artifact struct {
	Slot               string   `json:"slot"`
	CurrentLevel       int      `json:"currentLevel"`
	TargetLevel        int      `json:"targetLevel"`
	MainStat           string   `json:"mainStat"`
	DesiredSubstats    []string `json:"desiredSubstats"`
	TargetSubstatCount int      `json:"targetSubstatCount"`
}

// TalentPlan is one talent's current/target level pair.
type TalentPlan struct {
	CurrentLevel int `json:"currentLevel"`
	TargetLevel  int `json:"targetLevel"`
}

// Talents holds the three independent talent plans.
type Talents struct {
	NormalAttack TalentPlan `json:"normalAttack"`
	Skill        TalentPlan `json:"skill"`
	Burst        TalentPlan `json:"burst"`
}

// Record is the complete upgrade plan for one roster character.
type Record struct {
	CurrentLevel       int                `json:"currentLevel"`
	TargetLevel        int                `json:"targetLevel"`
	Weapon             string             `json:"weapon"`
	WeaponCurrentLevel int                `json:"weaponCurrentLevel"`
	WeaponTargetLevel  int                `json:"weaponTargetLevel"`
	Artifacts          [NumSlots]Artifact `json:"artifacts"`
	Talents            Talents            `json:"talents"`
}

// New returns a default Record: everything already at its goal, so a fresh
// record contributes zero cost until the user raises a target.
func New() *Record {
	r := &Record{
		CurrentLevel:       1,
		TargetLevel:        1,
		WeaponCurrentLevel: 1,
		WeaponTargetLevel:  1,
		Talents: Talents{
			NormalAttack: TalentPlan{CurrentLevel: 1, TargetLevel: 1},
			Skill:        TalentPlan{CurrentLevel: 1, TargetLevel: 1},
			Burst:        TalentPlan{CurrentLevel: 1, TargetLevel: 1},
		},
	}
	for i := range r.Artifacts {
		slot := ArtifactSlot(i)
		r.Artifacts[i] = Artifact{
			Slot:     SlotName(slot),
			MainStat: defaultMainStat(slot),
		}
	}
	return r
}

// Talent returns a pointer to the plan for key, or nil for an unknown key.
func (r *Record) Talent(key TalentKey) *TalentPlan {
	switch key {
	case TalentNormalAttack:
		return &r.Talents.NormalAttack
	case TalentSkill:
		return &r.Talents.Skill
	case TalentBurst:
		return &r.Talents.Burst
	default:
		return nil
	}
}

// IsArtifactLevel reports whether v belongs to the artifact level set.
func IsArtifactLevel(v int) bool {
	for _, l := range ArtifactLevels {
		if l == v {
			return true
		}
	}
	return false
}

// ClampArtifactLevel snaps v to the nearest artifact level at or below it.
func ClampArtifactLevel(v int) int {
	if v <= ArtifactLevels[0] {
		return ArtifactLevels[0]
	}
	clamped := ArtifactLevels[0]
	for _, l := range ArtifactLevels {
		if l > v {
			break
		}
		clamped = l
	}
	return clamped
}

// NextArtifactLevel returns the smallest artifact level strictly greater
// than v, saturating at the cap.
func NextArtifactLevel(v int) int {
	for _, l := range ArtifactLevels {
		if l > v {
			return l
		}
	}
	return ArtifactLevels[len(ArtifactLevels)-1]
}

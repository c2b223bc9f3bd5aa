package gamedata

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/teyvatops/ascend/internal/costs"
)

//go:embed data/characters.yaml data/weapons.yaml
var dataFS embed.FS

// Character is one character's metadata plus the material names its
// ascension and talent schedules draw from.
type Character struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Rarity     int      `yaml:"rarity"`
	Element    string   `yaml:"element"`
	WeaponType string   `yaml:"weapon_type"`
	Gem        string   `yaml:"gem"`
	Boss       string   `yaml:"boss"`
	Specialty  string   `yaml:"specialty"`
	Common     []string `yaml:"common"`
	Books      []string `yaml:"books"`
	Weekly     string   `yaml:"weekly"`
}

// Weapon is one weapon's metadata plus its ascension material names.
type Weapon struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Rarity int      `yaml:"rarity"`
	Type   string   `yaml:"type"`
	Domain []string `yaml:"domain"`
	Elite  []string `yaml:"elite"`
	Common []string `yaml:"common"`
}

type characterFile struct {
	Characters []Character `yaml:"characters"`
}

type weaponFile struct {
	Weapons []Weapon `yaml:"weapons"`
}

// Static is a Provider backed by the embedded data files.
type Static struct {
	characters map[string]Character
	weapons    map[string]Weapon
	charIDs    []string
	weaponIDs  []string
}

var _ Provider = (*Static)(nil)

// NewStatic parses the embedded data files into a Provider. It fails only
// on malformed data, which is a build problem, not a runtime one.
func NewStatic() (*Static, error) {
	charBytes, err := dataFS.ReadFile("data/characters.yaml")
	if err != nil {
		return nil, fmt.Errorf("read character data: %w", err)
	}
	var cf characterFile
	if err := yaml.Unmarshal(charBytes, &cf); err != nil {
		return nil, fmt.Errorf("parse character data: %w", err)
	}

	weaponBytes, err := dataFS.ReadFile("data/weapons.yaml")
	if err != nil {
		return nil, fmt.Errorf("read weapon data: %w", err)
	}
	var wf weaponFile
	if err := yaml.Unmarshal(weaponBytes, &wf); err != nil {
		return nil, fmt.Errorf("parse weapon data: %w", err)
	}

	s := &Static{
		characters: make(map[string]Character, len(cf.Characters)),
		weapons:    make(map[string]Weapon, len(wf.Weapons)),
	}
	for _, c := range cf.Characters {
		if err := checkCharacter(c); err != nil {
			return nil, err
		}
		s.characters[c.ID] = c
		s.charIDs = append(s.charIDs, c.ID)
	}
	for _, w := range wf.Weapons {
		if err := checkWeapon(w); err != nil {
			return nil, err
		}
		s.weapons[w.ID] = w
		s.weaponIDs = append(s.weaponIDs, w.ID)
	}
	sort.Strings(s.charIDs)
	sort.Strings(s.weaponIDs)
	return s, nil
}

func checkCharacter(c Character) error {
	switch {
	case c.ID == "" || c.Name == "":
		return fmt.Errorf("character %q: missing id or name", c.ID)
	case c.Gem == "" || c.Boss == "" || c.Specialty == "" || c.Weekly == "":
		return fmt.Errorf("character %q: missing material names", c.ID)
	case len(c.Common) != 3:
		return fmt.Errorf("character %q: want 3 common material tiers, got %d", c.ID, len(c.Common))
	case len(c.Books) != 3:
		return fmt.Errorf("character %q: want 3 talent book tiers, got %d", c.ID, len(c.Books))
	}
	return nil
}

func checkWeapon(w Weapon) error {
	switch {
	case w.ID == "" || w.Name == "":
		return fmt.Errorf("weapon %q: missing id or name", w.ID)
	case w.Rarity < 3 || w.Rarity > 5:
		return fmt.Errorf("weapon %q: rarity %d out of range", w.ID, w.Rarity)
	case len(w.Domain) != 4:
		return fmt.Errorf("weapon %q: want 4 domain material tiers, got %d", w.ID, len(w.Domain))
	case len(w.Elite) != 3 || len(w.Common) != 3:
		return fmt.Errorf("weapon %q: want 3 elite and 3 common material tiers", w.ID)
	}
	return nil
}

func (s *Static) CharacterIDs() []string { return s.charIDs }
func (s *Static) WeaponIDs() []string    { return s.weaponIDs }

func (s *Static) IsCharacter(id string) bool {
	_, ok := s.characters[id]
	return ok
}

func (s *Static) IsWeapon(id string) bool {
	_, ok := s.weapons[id]
	return ok
}

func (s *Static) CharacterName(id string) string {
	if c, ok := s.characters[id]; ok {
		return c.Name
	}
	return id
}

func (s *Static) WeaponName(id string) string {
	if w, ok := s.weapons[id]; ok {
		return w.Name
	}
	return id
}

func (s *Static) WeaponRarity(id string) (costs.WeaponRarity, bool) {
	w, ok := s.weapons[id]
	if !ok {
		return 0, false
	}
	return costs.WeaponRarity(w.Rarity), true
}

// Character returns the full data entry for id, for display purposes.
func (s *Static) Character(id string) (Character, bool) {
	c, ok := s.characters[id]
	return c, ok
}

func (s *Static) CharacterAscensionCost(id string, from, to int) ([]costs.Item, bool) {
	c, ok := s.characters[id]
	if !ok {
		return nil, false
	}
	complete := true
	var lists [][]costs.Item
	for phase := from; phase <= to; phase++ {
		if phase < 1 || phase > len(characterPhases) {
			complete = false
			continue
		}
		p := characterPhases[phase-1]
		bundle := []costs.Item{
			{Name: costs.MoraName, Count: p.Mora},
			{Name: c.Gem + " " + gemTiers[p.GemTier], Count: p.GemCount},
		}
		if p.BossCount > 0 {
			bundle = append(bundle, costs.Item{Name: c.Boss, Count: p.BossCount})
		}
		bundle = append(bundle,
			costs.Item{Name: c.Specialty, Count: p.SpecCount},
			costs.Item{Name: c.Common[p.CommonTier], Count: p.CommonQty},
		)
		lists = append(lists, bundle)
	}
	return costs.Merge(lists...), complete
}

func (s *Static) WeaponAscensionCost(id string, from, to int) ([]costs.Item, bool) {
	w, ok := s.weapons[id]
	if !ok {
		return nil, false
	}
	phases, ok := weaponPhases[w.Rarity]
	if !ok {
		return nil, false
	}
	complete := true
	var lists [][]costs.Item
	for phase := from; phase <= to; phase++ {
		if phase < 1 || phase > len(phases) {
			complete = false
			continue
		}
		p := phases[phase-1]
		lists = append(lists, []costs.Item{
			{Name: costs.MoraName, Count: p.Mora},
			{Name: w.Domain[p.DomainTier], Count: p.DomainQty},
			{Name: w.Elite[p.EliteTier], Count: p.EliteQty},
			{Name: w.Common[p.CommonTier], Count: p.CommonQty},
		})
	}
	return costs.Merge(lists...), complete
}

func (s *Static) TalentCost(id string, from, to int) ([]costs.Item, bool) {
	c, ok := s.characters[id]
	if !ok {
		return nil, false
	}
	complete := true
	var lists [][]costs.Item
	for lvl := from + 1; lvl <= to; lvl++ {
		if lvl < 2 || lvl >= len(talentLevels) {
			complete = false
			continue
		}
		t := talentLevels[lvl]
		bundle := []costs.Item{
			{Name: costs.MoraName, Count: t.Mora},
			{Name: c.Books[t.BookTier], Count: t.BookQty},
			{Name: c.Common[t.CommonTier], Count: t.CommonQty},
		}
		if t.WeeklyQty > 0 {
			bundle = append(bundle, costs.Item{Name: c.Weekly, Count: t.WeeklyQty})
		}
		if t.Crowned {
			bundle = append(bundle, costs.Item{Name: crownItem, Count: 1})
		}
		lists = append(lists, bundle)
	}
	return costs.Merge(lists...), complete
}

package costs

// Table is a cumulative cost table keyed by milestone level. Values are
// monotonically non-decreasing in the level.
type Table map[int]int

// Range returns the cost of moving from one milestone to another, never
// negative. The second return is false when either endpoint is missing from
// the table; the cost still degrades to the resolvable part so a stale table
// contributes nothing rather than failing, but callers can surface the gap.
func (t Table) Range(from, to int) (int, bool) {
	a, okFrom := t[from]
	b, okTo := t[to]
	d := b - a
	if d < 0 {
		d = 0
	}
	return d, okFrom && okTo
}

// WeaponRarity classifies weapons into the three EXP cost tiers.
type WeaponRarity int

const (
	WeaponRarity3 WeaponRarity = 3
	WeaponRarity4 WeaponRarity = 4
	WeaponRarity5 WeaponRarity = 5
)

// CharacterEXP is the cumulative character EXP required to level from 1 to
// each milestone.
var CharacterEXP = Table{
	1:  0,
	20: 120175,
	40: 811425,
	50: 1579700,
	60: 2687400,
	70: 4204550,
	80: 6223200,
	90: 8362650,
}

// WeaponEXP holds the cumulative weapon EXP tables per rarity tier.
var WeaponEXP = map[WeaponRarity]Table{
	WeaponRarity3: {
		1:  0,
		20: 202000,
		40: 999725,
		50: 1548300,
		60: 2265925,
		70: 3254675,
		80: 4541925,
		90: 6222575,
	},
	WeaponRarity4: {
		1:  0,
		20: 269325,
		40: 1332975,
		50: 2064400,
		60: 3021225,
		70: 4339550,
		80: 6055900,
		90: 8296800,
	},
	WeaponRarity5: {
		1:  0,
		20: 404000,
		40: 1999475,
		50: 3096575,
		60: 4531850,
		70: 6509350,
		80: 9083850,
		90: 12445150,
	},
}

// ArtifactEXP is the cumulative artifact EXP per enhancement milestone.
var ArtifactEXP = Table{
	0:  0,
	4:  52525,
	8:  144150,
	12: 280850,
	16: 494125,
	20: 871500,
}

// ArtifactMora is the cumulative mora cost of artifact enhancement. Artifacts
// carry a dedicated currency table instead of a per-EXP rate.
var ArtifactMora = Table{
	0:  0,
	4:  5350,
	8:  14675,
	12: 28600,
	16: 50325,
	20: 88800,
}

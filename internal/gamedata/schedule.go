package gamedata

// The per-phase and per-level cost schedules are uniform across the game:
// every character pays the same counts at each ascension phase, with the
// material names swapped in from that character's data entry. Data files
// therefore carry names only; the schedules live here.

// gemTiers are the suffixes appended to a character's gem family name, one
// per quality tier.
var gemTiers = [4]string{"Sliver", "Fragment", "Chunk", "Gemstone"}

// characterPhaseSchedule describes one character ascension phase. Tier
// indices select into the character's gem (0-3) and common material (0-2)
// name lists.
type characterPhaseSchedule struct {
	Mora       int
	GemTier    int
	GemCount   int
	BossCount  int
	SpecCount  int
	CommonTier int
	CommonQty  int
}

// Phases 1 through 6, in order.
var characterPhases = [6]characterPhaseSchedule{
	{Mora: 20000, GemTier: 0, GemCount: 1, BossCount: 0, SpecCount: 3, CommonTier: 0, CommonQty: 3},
	{Mora: 40000, GemTier: 1, GemCount: 3, BossCount: 2, SpecCount: 10, CommonTier: 0, CommonQty: 15},
	{Mora: 60000, GemTier: 1, GemCount: 6, BossCount: 4, SpecCount: 20, CommonTier: 1, CommonQty: 12},
	{Mora: 80000, GemTier: 2, GemCount: 3, BossCount: 8, SpecCount: 30, CommonTier: 1, CommonQty: 18},
	{Mora: 100000, GemTier: 2, GemCount: 6, BossCount: 12, SpecCount: 45, CommonTier: 2, CommonQty: 12},
	{Mora: 120000, GemTier: 3, GemCount: 6, BossCount: 20, SpecCount: 60, CommonTier: 2, CommonQty: 24},
}

// weaponPhaseSchedule describes one weapon ascension phase. Tier indices
// select into the weapon's domain material (0-3), elite drop (0-2) and
// common drop (0-2) name lists.
type weaponPhaseSchedule struct {
	Mora       int
	DomainTier int
	DomainQty  int
	EliteTier  int
	EliteQty   int
	CommonTier int
	CommonQty  int
}

// Per-rarity weapon ascension schedules, phases 1 through 6.
var weaponPhases = map[int][6]weaponPhaseSchedule{
	5: {
		{Mora: 10000, DomainTier: 0, DomainQty: 5, EliteTier: 0, EliteQty: 5, CommonTier: 0, CommonQty: 3},
		{Mora: 20000, DomainTier: 1, DomainQty: 5, EliteTier: 0, EliteQty: 18, CommonTier: 0, CommonQty: 12},
		{Mora: 30000, DomainTier: 1, DomainQty: 9, EliteTier: 1, EliteQty: 9, CommonTier: 1, CommonQty: 9},
		{Mora: 45000, DomainTier: 2, DomainQty: 5, EliteTier: 1, EliteQty: 18, CommonTier: 1, CommonQty: 14},
		{Mora: 55000, DomainTier: 2, DomainQty: 9, EliteTier: 2, EliteQty: 14, CommonTier: 2, CommonQty: 9},
		{Mora: 65000, DomainTier: 3, DomainQty: 6, EliteTier: 2, EliteQty: 27, CommonTier: 2, CommonQty: 18},
	},
	4: {
		{Mora: 5000, DomainTier: 0, DomainQty: 3, EliteTier: 0, EliteQty: 3, CommonTier: 0, CommonQty: 2},
		{Mora: 15000, DomainTier: 1, DomainQty: 3, EliteTier: 0, EliteQty: 12, CommonTier: 0, CommonQty: 8},
		{Mora: 20000, DomainTier: 1, DomainQty: 6, EliteTier: 1, EliteQty: 6, CommonTier: 1, CommonQty: 6},
		{Mora: 30000, DomainTier: 2, DomainQty: 3, EliteTier: 1, EliteQty: 12, CommonTier: 1, CommonQty: 9},
		{Mora: 35000, DomainTier: 2, DomainQty: 6, EliteTier: 2, EliteQty: 9, CommonTier: 2, CommonQty: 6},
		{Mora: 45000, DomainTier: 3, DomainQty: 4, EliteTier: 2, EliteQty: 18, CommonTier: 2, CommonQty: 12},
	},
	3: {
		{Mora: 5000, DomainTier: 0, DomainQty: 2, EliteTier: 0, EliteQty: 2, CommonTier: 0, CommonQty: 1},
		{Mora: 10000, DomainTier: 1, DomainQty: 2, EliteTier: 0, EliteQty: 8, CommonTier: 0, CommonQty: 5},
		{Mora: 15000, DomainTier: 1, DomainQty: 4, EliteTier: 1, EliteQty: 4, CommonTier: 1, CommonQty: 4},
		{Mora: 20000, DomainTier: 2, DomainQty: 2, EliteTier: 1, EliteQty: 8, CommonTier: 1, CommonQty: 6},
		{Mora: 25000, DomainTier: 2, DomainQty: 4, EliteTier: 2, EliteQty: 6, CommonTier: 2, CommonQty: 4},
		{Mora: 30000, DomainTier: 3, DomainQty: 3, EliteTier: 2, EliteQty: 12, CommonTier: 2, CommonQty: 8},
	},
}

// talentLevelSchedule describes the cost of raising a talent to one level.
// Tier indices select into the character's book (0-2) and common material
// (0-2) name lists. WeeklyQty draws the character's weekly boss drop and
// Crowned marks the final level's crown requirement.
type talentLevelSchedule struct {
	Mora       int
	BookTier   int
	BookQty    int
	CommonTier int
	CommonQty  int
	WeeklyQty  int
	Crowned    bool
}

// talentLevels[n] is the cost of raising a talent from n-1 to n. Levels 0
// and 1 are free: a talent starts at level 1.
var talentLevels = [11]talentLevelSchedule{
	2:  {Mora: 12500, BookTier: 0, BookQty: 3, CommonTier: 0, CommonQty: 6},
	3:  {Mora: 17500, BookTier: 1, BookQty: 2, CommonTier: 1, CommonQty: 3},
	4:  {Mora: 25000, BookTier: 1, BookQty: 4, CommonTier: 1, CommonQty: 4},
	5:  {Mora: 30000, BookTier: 1, BookQty: 6, CommonTier: 1, CommonQty: 6},
	6:  {Mora: 37500, BookTier: 1, BookQty: 9, CommonTier: 1, CommonQty: 9},
	7:  {Mora: 120000, BookTier: 2, BookQty: 4, CommonTier: 2, CommonQty: 4, WeeklyQty: 1},
	8:  {Mora: 260000, BookTier: 2, BookQty: 6, CommonTier: 2, CommonQty: 6, WeeklyQty: 1},
	9:  {Mora: 450000, BookTier: 2, BookQty: 12, CommonTier: 2, CommonQty: 9, WeeklyQty: 2},
	10: {Mora: 700000, BookTier: 2, BookQty: 16, CommonTier: 2, CommonQty: 12, WeeklyQty: 2, Crowned: true},
}

const crownItem = "Crown of Insight"

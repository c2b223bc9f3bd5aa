package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teyvatops/ascend/internal/costs"
)

func newProvider(t *testing.T) *Static {
	t.Helper()
	p, err := NewStatic()
	require.NoError(t, err)
	return p
}

func TestNewStatic(t *testing.T) {
	p := newProvider(t)
	assert.NotEmpty(t, p.CharacterIDs())
	assert.NotEmpty(t, p.WeaponIDs())
	assert.True(t, p.IsCharacter("hu_tao"))
	assert.False(t, p.IsCharacter("staff_of_homa"))
	assert.True(t, p.IsWeapon("staff_of_homa"))
	assert.Equal(t, "Hu Tao", p.CharacterName("hu_tao"))
	assert.Equal(t, "Staff of Homa", p.WeaponName("staff_of_homa"))
}

func TestWeaponRarity(t *testing.T) {
	p := newProvider(t)

	r, ok := p.WeaponRarity("staff_of_homa")
	require.True(t, ok)
	assert.Equal(t, costs.WeaponRarity5, r)

	r, ok = p.WeaponRarity("cool_steel")
	require.True(t, ok)
	assert.Equal(t, costs.WeaponRarity3, r)

	_, ok = p.WeaponRarity("nonexistent")
	assert.False(t, ok)
}

func TestCharacterAscensionCostSinglePhase(t *testing.T) {
	p := newProvider(t)

	items, complete := p.CharacterAscensionCost("hu_tao", 1, 1)
	require.True(t, complete)

	byName := itemMap(items)
	assert.Equal(t, 20000, byName["Mora"])
	assert.Equal(t, 1, byName["Agnidus Agate Sliver"])
	assert.Equal(t, 3, byName["Silk Flower"])
	assert.Equal(t, 3, byName["Whopperflower Nectar"])
	// Phase 1 has no boss material.
	assert.NotContains(t, byName, "Juvenile Jade")
}

func TestCharacterAscensionCostFullRange(t *testing.T) {
	p := newProvider(t)

	items, complete := p.CharacterAscensionCost("hu_tao", 1, 6)
	require.True(t, complete)

	byName := itemMap(items)
	assert.Equal(t, 420000, byName["Mora"])
	assert.Equal(t, 46, byName["Juvenile Jade"])
	assert.Equal(t, 168, byName["Silk Flower"])
	assert.Equal(t, 6, byName["Agnidus Agate Gemstone"])
}

func TestCharacterAscensionCostUnknownID(t *testing.T) {
	p := newProvider(t)
	items, complete := p.CharacterAscensionCost("paimon", 1, 6)
	assert.Nil(t, items)
	assert.False(t, complete)
}

func TestCharacterAscensionCostOutOfRangePhase(t *testing.T) {
	p := newProvider(t)
	// Phase 7 does not exist: partial contribution, flagged incomplete.
	items, complete := p.CharacterAscensionCost("hu_tao", 6, 7)
	assert.False(t, complete)
	byName := itemMap(items)
	assert.Equal(t, 120000, byName["Mora"])
}

func TestWeaponAscensionCost(t *testing.T) {
	p := newProvider(t)

	items, complete := p.WeaponAscensionCost("staff_of_homa", 1, 6)
	require.True(t, complete)

	byName := itemMap(items)
	assert.Equal(t, 225000, byName["Mora"])
	assert.Equal(t, 6, byName["Chunk of Aerosiderite"])
	assert.Equal(t, 23, byName["Chaos Device"])
	assert.Equal(t, 41, byName["Chaos Core"])
}

func TestTalentCost(t *testing.T) {
	p := newProvider(t)

	items, complete := p.TalentCost("hu_tao", 1, 2)
	require.True(t, complete)
	byName := itemMap(items)
	assert.Equal(t, 12500, byName["Mora"])
	assert.Equal(t, 3, byName["Teachings of Diligence"])
	assert.Equal(t, 6, byName["Whopperflower Nectar"])
}

func TestTalentCostFullRange(t *testing.T) {
	p := newProvider(t)

	items, complete := p.TalentCost("hu_tao", 1, 10)
	require.True(t, complete)
	byName := itemMap(items)
	assert.Equal(t, 1652500, byName["Mora"])
	assert.Equal(t, 38, byName["Philosophies of Diligence"])
	assert.Equal(t, 6, byName["Shard of a Foul Legacy"])
	assert.Equal(t, 1, byName["Crown of Insight"])
}

func TestTalentCostEmptyRange(t *testing.T) {
	p := newProvider(t)

	items, complete := p.TalentCost("hu_tao", 10, 10)
	assert.True(t, complete)
	assert.Empty(t, items)

	items, _ = p.TalentCost("hu_tao", 9, 2)
	assert.Empty(t, items)
}

func itemMap(items []costs.Item) map[string]int {
	m := make(map[string]int, len(items))
	for _, it := range items {
		m[it.Name] += it.Count
	}
	return m
}

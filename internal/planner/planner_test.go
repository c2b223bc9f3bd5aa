package planner

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teyvatops/ascend/internal/costs"
	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/goals"
	"github.com/teyvatops/ascend/internal/store"
)

// fakeSnapshotRepo is an in-memory store.SnapshotRepo.
type fakeSnapshotRepo struct {
	snaps   []*store.Snapshot
	saveErr error
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	clone := *snap
	clone.Data = append(json.RawMessage(nil), snap.Data...)
	f.snaps = append(f.snaps, &clone)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.snaps) == 0 {
		return nil, nil
	}
	latest := f.snaps[0]
	for _, s := range f.snaps[1:] {
		if s.Revision > latest.Revision {
			latest = s
		}
	}
	return latest, nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	if len(f.snaps) <= keep {
		return nil
	}
	sort.Slice(f.snaps, func(i, j int) bool { return f.snaps[i].Revision > f.snaps[j].Revision })
	f.snaps = f.snaps[:keep]
	return nil
}

func (f *fakeSnapshotRepo) Clear(_ context.Context) error {
	f.snaps = nil
	return nil
}

func newTestPlanner(t *testing.T) (*Planner, *fakeSnapshotRepo) {
	t.Helper()
	provider, err := gamedata.NewStatic()
	require.NoError(t, err)
	repo := &fakeSnapshotRepo{}
	return New(provider, repo), repo
}

func TestRosterOperations(t *testing.T) {
	p, _ := newTestPlanner(t)

	p.AddCharacter("hu_tao")
	p.AddCharacter("hu_tao") // idempotent
	p.AddCharacter("nonexistent")
	assert.Equal(t, []string{"hu_tao"}, p.Owned())

	// Selection requires ownership and creates the goal record lazily.
	p.Select("ganyu")
	assert.Equal(t, "", p.Selected())
	assert.Nil(t, p.Goal("ganyu"))

	p.Select("hu_tao")
	assert.Equal(t, "hu_tao", p.Selected())
	require.NotNil(t, p.Goal("hu_tao"))

	p.RemoveCharacter("hu_tao")
	assert.Empty(t, p.Owned())
	assert.Equal(t, "", p.Selected())
	// The record is orphaned, not purged.
	assert.NotNil(t, p.Goal("hu_tao"))
}

func TestEnsureIdempotent(t *testing.T) {
	p, _ := newTestPlanner(t)

	p.Ensure("ganyu")
	first := p.Goal("ganyu")
	require.NotNil(t, first)

	p.Ensure("ganyu")
	assert.Same(t, first, p.Goal("ganyu"))

	p.Ensure("not_a_character")
	assert.Nil(t, p.Goal("not_a_character"))
}

func TestMutationsPersistEveryWrite(t *testing.T) {
	p, repo := newTestPlanner(t)

	p.AddCharacter("hu_tao")
	p.Select("hu_tao")
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 90)

	assert.Equal(t, int64(3), p.Revision())
	require.Len(t, repo.snaps, 3)

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, int64(3), latest.Revision)

	var doc Document
	require.NoError(t, json.Unmarshal(latest.Data, &doc))
	assert.Equal(t, []string{"hu_tao"}, doc.OwnedCharacters)
	require.Contains(t, doc.CharacterGoals, "hu_tao")
	assert.Equal(t, 90, doc.CharacterGoals["hu_tao"].TargetLevel)
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	p, repo := newTestPlanner(t)
	repo.saveErr = assert.AnError

	p.AddCharacter("hu_tao")
	assert.Equal(t, []string{"hu_tao"}, p.Owned())
	assert.Equal(t, int64(1), p.Revision())
	assert.Empty(t, repo.snaps)
}

func TestDeferredPersistence(t *testing.T) {
	p, repo := newTestPlanner(t)

	p.SetDeferred(true)
	p.AddCharacter("hu_tao")
	p.AddCharacter("ganyu")
	assert.Empty(t, repo.snaps)

	p.Flush()
	require.Len(t, repo.snaps, 1)
	assert.Equal(t, int64(2), repo.snaps[0].Revision)

	// Nothing dirty: Flush is a no-op.
	p.Flush()
	assert.Len(t, repo.snaps, 1)
}

func TestLoadRestoresState(t *testing.T) {
	p, repo := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 60)

	restored := New(p.provider, repo)
	require.NoError(t, restored.Load(context.Background()))

	assert.Equal(t, p.Revision(), restored.Revision())
	assert.Equal(t, []string{"hu_tao"}, restored.Owned())
	assert.Equal(t, "hu_tao", restored.Selected())
	require.NotNil(t, restored.Goal("hu_tao"))
	assert.Equal(t, 60, restored.Goal("hu_tao").TargetLevel)
}

func TestSetLevelWithoutRecordIsNoOp(t *testing.T) {
	p, repo := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	saved := len(repo.snaps)

	// Adding a character does not create a goal record; level edits need
	// Ensure or Select first.
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 90)
	assert.Nil(t, p.Goal("hu_tao"))
	assert.Len(t, repo.snaps, saved)

	p.Ensure("hu_tao")
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 90)
	require.NotNil(t, p.Goal("hu_tao"))
	assert.Equal(t, 90, p.Goal("hu_tao").TargetLevel)
}

func TestSetLevelDragsTarget(t *testing.T) {
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")

	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 50)
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldCurrent, 50)

	r := p.Goal("hu_tao")
	assert.Equal(t, 50, r.CurrentLevel)
	assert.Equal(t, 60, r.TargetLevel)
}

func TestSetWeaponRejectsUnknown(t *testing.T) {
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")

	p.SetWeapon("hu_tao", "staff_of_homa")
	assert.Equal(t, "staff_of_homa", p.Goal("hu_tao").Weapon)

	p.SetWeapon("hu_tao", "excalibur")
	assert.Equal(t, "staff_of_homa", p.Goal("hu_tao").Weapon)

	p.SetWeapon("hu_tao", "")
	assert.Equal(t, "", p.Goal("hu_tao").Weapon)
}

func TestGoalCostFreshRecordIsZero(t *testing.T) {
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")

	g, ok := p.GoalCost("hu_tao")
	require.True(t, ok)
	assert.True(t, g.Complete)
	assert.Empty(t, g.Total())
}

func TestGoalCostCharacterDimension(t *testing.T) {
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 40)

	g, ok := p.GoalCost("hu_tao")
	require.True(t, ok)
	assert.True(t, g.Complete)

	byName := itemMap(g.Character)
	// Level-up mora ceil(811425 * 0.2) plus the phase 1 ascension bundle.
	assert.Equal(t, 162285+20000, byName["Mora"])
	assert.Equal(t, 41, byName["Hero's Wit"])
	assert.Equal(t, 1, byName["Agnidus Agate Sliver"])
	assert.Equal(t, 3, byName["Silk Flower"])
}

func TestGoalCostWeaponDimension(t *testing.T) {
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")
	p.SetWeapon("hu_tao", "staff_of_homa")
	p.SetLevel("hu_tao", DimensionWeapon, goals.FieldTarget, 40)

	g, ok := p.GoalCost("hu_tao")
	require.True(t, ok)
	assert.True(t, g.Complete)

	byName := itemMap(g.Weapon)
	// Level-up mora ceil(1999475 * 0.005) plus the phase 1 bundle's 10000.
	assert.Equal(t, 9998+10000, byName["Mora"])
	assert.Equal(t, 200, byName["Mystic Enhancement Ore"])
	assert.Equal(t, 5, byName["Grain of Aerosiderite"])
}

func TestGoalCostTalentDimension(t *testing.T) {
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")
	p.SetTalentLevel("hu_tao", goals.TalentSkill, goals.FieldTarget, 2)
	p.SetTalentLevel("hu_tao", goals.TalentBurst, goals.FieldTarget, 2)

	g, ok := p.GoalCost("hu_tao")
	require.True(t, ok)

	byName := itemMap(g.Talents)
	// Two talents each paying the level 2 cost.
	assert.Equal(t, 25000, byName["Mora"])
	assert.Equal(t, 6, byName["Teachings of Diligence"])
}

func TestTotalsAcrossRoster(t *testing.T) {
	p, _ := newTestPlanner(t)
	for _, id := range []string{"hu_tao", "ganyu"} {
		p.AddCharacter(id)
		p.Select(id)
		p.SetLevel(id, DimensionCharacter, goals.FieldTarget, 40)
	}

	items, complete := p.Totals()
	assert.True(t, complete)

	byName := itemMap(items)
	assert.Equal(t, 2*(162285+20000), byName["Mora"])
	assert.Equal(t, 2*41, byName["Hero's Wit"])
	assert.Equal(t, 3, byName["Silk Flower"])
	assert.Equal(t, 3, byName["Qingxin"])
}

func TestTotalsSkipOrphanedRecords(t *testing.T) {
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.Select("hu_tao")
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 90)
	p.RemoveCharacter("hu_tao")

	items, complete := p.Totals()
	assert.True(t, complete)
	assert.Empty(t, items)
}

func itemMap(items []costs.Item) map[string]int {
	m := make(map[string]int, len(items))
	for _, it := range items {
		m[it.Name] += it.Count
	}
	return m
}

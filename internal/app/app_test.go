package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/goals"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/router"
	"github.com/teyvatops/ascend/internal/screens/goalsedit"
	"github.com/teyvatops/ascend/internal/store"
)

type countingSnapshots struct {
	saves int
}

func (c *countingSnapshots) Save(context.Context, *store.Snapshot) error     { c.saves++; return nil }
func (c *countingSnapshots) Latest(context.Context) (*store.Snapshot, error) { return nil, nil }
func (c *countingSnapshots) Prune(context.Context, int) error                { return nil }
func (c *countingSnapshots) Clear(context.Context) error                     { return nil }

// newTestApp builds the app with the goal editor pushed on top, the state
// the batched-persistence path runs in.
func newTestApp(t *testing.T) (AppModel, *planner.Planner, *countingSnapshots) {
	t.Helper()
	provider, err := gamedata.NewStatic()
	require.NoError(t, err)
	repo := &countingSnapshots{}
	pl := planner.New(provider, repo)
	pl.AddCharacter("hu_tao")
	pl.Select("hu_tao")

	m := newAppModel(Options{Planner: pl, Provider: provider})
	updated, _ := m.Update(router.PushScreenMsg{Screen: goalsedit.New(pl, provider, "hu_tao")})
	return updated.(AppModel), pl, repo
}

func TestEscFromEditorFlushesPendingEdits(t *testing.T) {
	m, pl, repo := newTestApp(t)

	pl.SetLevel("hu_tao", planner.DimensionCharacter, goals.FieldTarget, 90)
	before := repo.saves

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, before+1, repo.saves)

	// The pop itself still goes through the router.
	m = updated.(AppModel)
	updated, _ = m.Update(cmd())
	assert.Equal(t, 1, updated.(AppModel).router.Depth())
}

func TestQuitFlushesPendingEdits(t *testing.T) {
	m, pl, repo := newTestApp(t)

	pl.SetLevel("hu_tao", planner.DimensionCharacter, goals.FieldTarget, 90)
	before := repo.saves

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.Equal(t, before+1, repo.saves)
}

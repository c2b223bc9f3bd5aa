package goalsedit

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/store"
)

// countingSnapshots records how many snapshots were written.
type countingSnapshots struct {
	saves int
}

func (c *countingSnapshots) Save(context.Context, *store.Snapshot) error     { c.saves++; return nil }
func (c *countingSnapshots) Latest(context.Context) (*store.Snapshot, error) { return nil, nil }
func (c *countingSnapshots) Prune(context.Context, int) error                { return nil }
func (c *countingSnapshots) Clear(context.Context) error                     { return nil }

func newEditor(t *testing.T) (*GoalsScreen, *planner.Planner, *countingSnapshots) {
	t.Helper()
	provider, err := gamedata.NewStatic()
	require.NoError(t, err)
	repo := &countingSnapshots{}
	pl := planner.New(provider, repo)
	pl.AddCharacter("hu_tao")
	pl.Select("hu_tao")
	return New(pl, provider, "hu_tao"), pl, repo
}

func TestEditorBatchesWrites(t *testing.T) {
	s, pl, repo := newEditor(t)
	before := repo.saves

	// Level adjustments accumulate in memory instead of snapshotting one
	// write per keypress.
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 40, pl.Goal("hu_tao").CurrentLevel)
	assert.Equal(t, before, repo.saves)

	pl.SetDeferred(false)
	assert.Equal(t, before+1, repo.saves)
}

func TestQuitKeyRestoresWriteThrough(t *testing.T) {
	s, pl, repo := newEditor(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	before := repo.saves

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.Equal(t, before+1, repo.saves)

	// Back to write-through: the next mutation persists immediately.
	pl.AddCharacter("ganyu")
	assert.Equal(t, before+2, repo.saves)
}

package output

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/goals"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/store"
)

type nopSnapshots struct{}

func (nopSnapshots) Save(context.Context, *store.Snapshot) error     { return nil }
func (nopSnapshots) Latest(context.Context) (*store.Snapshot, error) { return nil, nil }
func (nopSnapshots) Prune(context.Context, int) error                { return nil }
func (nopSnapshots) Clear(context.Context) error                     { return nil }

func TestExportTotalsXLSX(t *testing.T) {
	provider, err := gamedata.NewStatic()
	require.NoError(t, err)

	p := planner.New(provider, nopSnapshots{})
	p.AddCharacter("hu_tao")
	p.Ensure("hu_tao")
	p.SetLevel("hu_tao", planner.DimensionCharacter, goals.FieldTarget, 20)

	path := filepath.Join(t.TempDir(), "totals.xlsx")
	got, err := ExportTotalsXLSX(path, p, provider)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Totals")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Material", "Count"}, rows[0][:2])

	found := make(map[string]string)
	for _, r := range rows[1:] {
		if len(r) >= 2 {
			found[r[0]] = r[1]
		}
	}
	assert.Equal(t, "24035", found["Mora"])
	assert.Equal(t, "7", found["Hero's Wit"])

	by, err := f.GetRows("By Character")
	require.NoError(t, err)
	require.NotEmpty(t, by)
	assert.Equal(t, "Hu Tao", by[1][0])
}

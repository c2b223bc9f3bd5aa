package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teyvatops/ascend/internal/app"
	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	pl, provider, st, err := openPlanner(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Planner:  pl,
		Provider: provider,
	})
}

// openPlanner wires the store, game data provider, and planner with the
// latest persisted roster state loaded. The caller closes the store.
func openPlanner(cmd *cobra.Command) (*planner.Planner, gamedata.Provider, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := gamedata.NewStatic()
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("load game data: %w", err)
	}

	pl := planner.New(provider, st.SnapshotRepo())
	if err := pl.Load(cmd.Context()); err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("load roster state: %w", err)
	}

	return pl, provider, st, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the roster and goals as a JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pl, _, st, err := openPlanner(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		raw, err := pl.ExportJSON()
		if err != nil {
			return fmt.Errorf("encode roster: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(args[0], append(raw, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Println("Wrote", args[0])
		return nil
	},
}

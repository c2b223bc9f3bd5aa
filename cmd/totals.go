package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teyvatops/ascend/internal/output"
)

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Print the merged material list for the whole roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		pl, provider, st, err := openPlanner(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if xlsxPath, _ := cmd.Flags().GetString("xlsx"); xlsxPath != "" || mustBool(cmd, "write-xlsx") {
			path, err := output.ExportTotalsXLSX(xlsxPath, pl, provider)
			if err != nil {
				return fmt.Errorf("write xlsx: %w", err)
			}
			fmt.Println("Wrote", path)
			return nil
		}

		items, complete := pl.Totals()
		if len(items) == 0 {
			fmt.Println("Nothing to farm. Every goal is already met.")
			return nil
		}
		for _, it := range items {
			fmt.Printf("%-30s %12d\n", it.Name, it.Count)
		}
		if !complete {
			fmt.Println("\nSome costs could not be resolved; totals are a lower bound.")
		}
		return nil
	},
}

func init() {
	totalsCmd.Flags().String("xlsx", "", "Write totals to the given xlsx file instead of printing")
	totalsCmd.Flags().Bool("write-xlsx", false, "Write totals to a timestamped xlsx file")
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Validate and import a roster JSON document",
	Long: "Validates the document against the roster schema and the installed game data. " +
		"All problems are reported at once; a rejected document leaves the store untouched. " +
		"Reads stdin when no file is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if len(args) == 0 {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		pl, _, st, err := openPlanner(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if errs := pl.Import(raw); len(errs) > 0 {
			fmt.Fprintf(os.Stderr, "Import rejected with %d problem(s):\n", len(errs))
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, " -", e.Error())
			}
			return fmt.Errorf("document failed validation")
		}

		fmt.Printf("Imported %d character(s).\n", len(pl.Owned()))
		return nil
	},
}

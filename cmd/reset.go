package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved roster data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Print("This deletes every saved goal. Type 'yes' to continue: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		_, _, st, err := openPlanner(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SnapshotRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear snapshots: %w", err)
		}
		fmt.Println("Roster data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}

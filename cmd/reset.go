package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all attempt data for the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, log, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("Delete all recorded attempts for user %q? [y/N] ", eng.User)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := eng.Repo.Reset(cmd.Context(), eng.User); err != nil {
			return err
		}
		fmt.Printf("Attempt data for %q deleted.\n", eng.User)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

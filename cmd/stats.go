package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall and per-topic statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, log, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		ctx := cmd.Context()
		overview, wrong, err := eng.Overview(ctx)
		if err != nil {
			return err
		}
		if overview.Attempts == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("Total attempts:  %d\n", overview.Attempts)
		fmt.Printf("Correct:         %d\n", overview.Correct)
		fmt.Printf("Accuracy:        %.1f%%\n", overview.Accuracy)
		fmt.Printf("Wrong book:      %d questions\n\n", wrong)

		topics, err := eng.TopicStats(ctx)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(topics))
		for t := range topics {
			names = append(names, t)
		}
		sort.Strings(names)

		fmt.Println("By topic:")
		for _, name := range names {
			s := topics[name]
			fmt.Printf("  %-24s %3d attempts  %3d correct  %5.1f%%\n",
				name, s.Attempts, s.Correct, s.Accuracy)
		}
		return nil
	},
}

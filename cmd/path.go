package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keleoz/quizpath/internal/knowledge"
)

var pathCmd = &cobra.Command{
	Use:   "path [topic]",
	Short: "Plan a prerequisite-ordered review path",
	Long: "Plans the review order for a topic: every prerequisite comes before\n" +
		"the topic that needs it, annotated with your mastery of each step.\n" +
		"Without an argument, lists all topics ranked weakest first.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, log, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		ctx := cmd.Context()

		if len(args) == 0 {
			ranked, err := eng.RankTopics(ctx)
			if err != nil {
				return pathErr(err)
			}
			fmt.Println("Topics, weakest first:")
			for i, rt := range ranked {
				note := fmt.Sprintf("%d attempts, %.1f%%", rt.Attempts, rt.Accuracy)
				if rt.Attempts == 0 {
					note = "not practiced"
				}
				fmt.Printf("%2d. %-24s (%s)\n", i+1, rt.Topic, note)
			}
			fmt.Println("\nRun `quizpath path <topic>` for the review plan.")
			return nil
		}

		target := args[0]
		steps, err := eng.ReviewPath(ctx, target)
		if err != nil {
			return pathErr(err)
		}
		if len(steps) == 0 {
			fmt.Printf("No review path available for %q.\n", target)
			return nil
		}

		fmt.Printf("Review path to %q (prerequisites first):\n\n", target)
		for i, step := range steps {
			switch step.Status {
			case knowledge.StatusNeedsStudy:
				fmt.Printf("%2d. %-24s [needs study]\n", i+1, step.Topic)
			case knowledge.StatusWeak:
				fmt.Printf("%2d. %-24s [weak — %.1f%% over %d attempts]\n",
					i+1, step.Topic, step.Accuracy, step.Attempts)
			default:
				fmt.Printf("%2d. %-24s [mastered — %.1f%%]\n", i+1, step.Topic, step.Accuracy)
			}
		}
		return nil
	},
}

func pathErr(err error) error {
	if errors.Is(err, knowledge.ErrGraphUnavailable) {
		fmt.Println("No review path available: no prerequisite graph is loaded.")
		return nil
	}
	return err
}

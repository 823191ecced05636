package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keleoz/quizpath/internal/engine"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the ranked list of questions to practice next",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, log, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		if n, _ := cmd.Flags().GetInt("count"); n > 0 {
			eng.Count = n
		}

		items, err := eng.Recommend(cmd.Context(), time.Now())
		if err != nil {
			if errors.Is(err, engine.ErrNoQuestions) {
				fmt.Println("No recommendation available: the question catalog is empty.")
				return nil
			}
			return err
		}

		fmt.Printf("Top %d questions to practice, weakest first:\n\n", len(items))
		for i, item := range items {
			q, ok := eng.Catalog.ByID(item.QuestionID)
			if !ok {
				continue
			}
			fmt.Printf("%2d. [#%d · %s · difficulty %d]  score %.3f\n    %s\n",
				i+1, q.ID, q.Topic, q.Difficulty, item.Score, q.Text)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntP("count", "n", 0, "How many questions to recommend (default from config)")
}

package cmd

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent answers from the play journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().RecentAnswers(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		rows := answerRows(events, kind)
		if len(rows) == 0 {
			fmt.Printf("No %s answers recorded yet.\n", kind)
			return nil
		}
		fmt.Println(renderTable([]string{"When", "Question", "Guess", "Answer", "OK", "Pts"}, rows, 2, 3, 5))
		return nil
	},
}

func answerRows(events []store.AnswerEventRecord, kind string) [][]string {
	var rows [][]string
	for _, e := range events {
		if kind != "" && e.Kind != kind {
			continue
		}
		rows = append(rows, []string{
			e.Timestamp.Local().Format("01-02 15:04:05"),
			answerLabel(e.AnswerEventData),
			truncate(e.LearnerAnswer, 10),
			problemgen.FormatAnswer(e.CorrectAnswer),
			checkMark(e.Correct),
			fmt.Sprintf("%+d", e.PointsAwarded),
		})
	}
	return rows
}

func answerLabel(e store.AnswerEventData) string {
	switch e.Kind {
	case string(problemgen.KindDaily):
		return "daily " + e.DateKey
	case string(problemgen.KindMission):
		return fmt.Sprintf("mission %d", e.QuestionIndex)
	default:
		return fmt.Sprintf("%s %d", e.Tier, e.QuestionIndex)
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of answers to show")
	historyCmd.Flags().StringP("kind", "k", "", "Filter by kind: level, mission or daily")
}

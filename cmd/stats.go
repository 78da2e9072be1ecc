package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/mathquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals from the play journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if stats.Answers == 0 && stats.Sessions == 0 {
			fmt.Println("Nothing played yet. Run `mathquest` to start.")
			return nil
		}
		printStats(stats)
		return nil
	},
}

func printStats(stats *store.JournalStats) {
	fmt.Printf("Sessions:        %d\n", stats.Sessions)
	fmt.Printf("Best score:      %d pts\n", stats.BestScore)
	fmt.Printf("Answers:         %d (%d correct, %.0f%%)\n",
		stats.Answers, stats.Correct, stats.Accuracy()*100)
	fmt.Printf("Points earned:   %d over %d first completions\n", stats.PointsEarned, stats.FirstCompletions)
	fmt.Printf("Hints:           %d granted / %d requested\n", stats.HintsGranted, stats.HintsRequested)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:     %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	if len(stats.ByKind) == 0 {
		return
	}
	kinds := make([]string, 0, len(stats.ByKind))
	for k := range stats.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	fmt.Println()
	fmt.Printf("%-10s  %8s  %8s  %8s\n", "Kind", "Answers", "Correct", "Accuracy")
	fmt.Println(strings.Repeat("─", 42))
	for _, k := range kinds {
		ks := stats.ByKind[k]
		acc := 0.0
		if ks.Answers > 0 {
			acc = float64(ks.Correct) / float64(ks.Answers) * 100
		}
		fmt.Printf("%-10s  %8d  %8d  %7.0f%%\n", k, ks.Answers, ks.Correct, acc)
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions with answers (no database)",
	Long: `Print the generated question sets with their answers and hints, then run
the structural and math-check validators over them.

This is a stateless developer tool: no journal, no score.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("tier", "", "Only this tier: easy, medium or hard")
	previewCmd.Flags().Int("missions", 0, "Also print the first N missions")
	previewCmd.Flags().String("date", "", "Also print the daily challenge for YYYY-MM-DD")
	previewCmd.Flags().Bool("quiet", false, "Only run the validators")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tierVal, _ := cmd.Flags().GetString("tier")
	missionCount, _ := cmd.Flags().GetInt("missions")
	date, _ := cmd.Flags().GetString("date")
	quiet, _ := cmd.Flags().GetBool("quiet")

	tiers := problemgen.AllTiers()
	if tierVal != "" {
		tier, err := problemgen.ParseTier(tierVal)
		if err != nil {
			return err
		}
		tiers = []problemgen.Tier{tier}
	}
	if missionCount < 0 || missionCount > problemgen.MissionsCount {
		return fmt.Errorf("--missions must be between 0 and %d", problemgen.MissionsCount)
	}
	if date != "" && !problemgen.ValidDate(date) {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}

	var all []problemgen.Question
	for _, tier := range tiers {
		qs := problemgen.CreateLevelQuestions(tier)
		all = append(all, qs...)
		if !quiet {
			fmt.Printf("── %s ──\n", tier.DisplayName())
			printQuestions(qs)
		}
	}

	missions := problemgen.CreateMissions(missionCount)
	all = append(all, missions...)
	if !quiet && len(missions) > 0 {
		fmt.Println("── Missions ──")
		printQuestions(missions)
	}

	if date != "" && !quiet {
		d := problemgen.NewDailyQuestion(date)
		fmt.Printf("── Daily %s (seed %d) ──\n", d.Date, problemgen.DailySeed(d.Date))
		fmt.Println(d.Text)
		fmt.Printf("   = %s\n\n", problemgen.FormatAnswer(d.Answer))
	}

	errs := problemgen.ValidateAll(all)
	if len(errs) == 0 {
		fmt.Printf("\033[32m✓ %d questions passed validation\033[0m\n", len(all))
		return nil
	}
	for _, e := range errs {
		fmt.Printf("\033[31m✗\033[0m %s\n", e)
	}
	return fmt.Errorf("%d of %d questions failed validation", len(errs), len(all))
}

func printQuestions(qs []problemgen.Question) {
	for _, q := range qs {
		fmt.Printf("%3d. %s\n", q.Index, q.Text)
		fmt.Printf("     = %-10s %s\n", problemgen.FormatAnswer(q.Answer), dim(q.Hint))
	}
	fmt.Println()
}

func dim(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return "\033[2m(" + s + ")\033[0m"
}

package cmd

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/app"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into the leveled questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		tierVal, _ := cmd.Flags().GetString("tier")
		tier, err := problemgen.ParseTier(tierVal)
		if err != nil {
			return err
		}

		state := session.New()
		if err := state.SelectTier(tier); err != nil {
			return err
		}
		return runApp(cmd, app.Options{State: state, Start: app.StartLevels})
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Open the daily challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		if date != "" && !problemgen.ValidDate(date) {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
		}
		return runApp(cmd, app.Options{Start: app.StartDaily, Date: date})
	},
}

var missionCmd = &cobra.Command{
	Use:   "mission [n]",
	Short: "Open the missions, optionally at mission n (1-100)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("invalid mission %q: %w", args[0], err)
			}
		}
		if n < 1 || n > problemgen.MissionsCount {
			return fmt.Errorf("mission must be between 1 and %d", problemgen.MissionsCount)
		}
		return runApp(cmd, app.Options{Start: app.StartMissions, Mission: n})
	},
}

func init() {
	playCmd.Flags().StringP("tier", "t", string(problemgen.TierEasy), "Starting tier: easy, medium or hard")
	dailyCmd.Flags().StringP("date", "d", "", "Challenge date as YYYY-MM-DD (default today)")
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/mathquest/internal/app"
	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/lessons"
	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// runApp opens the journal, builds dependencies, and launches the TUI.
// Logs go to a file so they never corrupt the terminal.
func runApp(cmd *cobra.Command, opts app.Options) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	logFile, err := config.OpenLogFile(cfg.LogFile, dbPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(config.NewLogger(logFile, level, false))

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts.EventRepo = eventRepo
	opts.SessionID = uuid.NewString()

	provider, err := llm.NewFromEnv(ctx, eventRepo)
	if err != nil {
		slog.Info("tutor disabled", "reason", err)
	} else {
		opts.Tutor = lessons.NewService(provider, lessons.DefaultConfig())
	}

	slog.Info("session starting", "session_id", opts.SessionID, "db", dbPath)
	sum, err := app.Run(opts)
	if err != nil {
		return err
	}
	printSummary(sum)
	return nil
}

func printSummary(sum *session.Summary) {
	if sum.Attempted() == 0 && sum.DailySolved == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "\nThanks for playing! Final score: %d pts\n", sum.Score)
	fmt.Fprintf(os.Stdout, "Answered %d questions, %d correct, %d daily challenge(s).\n",
		sum.Attempted(), sum.Correct(), sum.DailySolved)
}

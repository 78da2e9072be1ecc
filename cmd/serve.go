package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/mathquest/internal/api"
	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/journal"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve one quiz session as a local JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Addr
		}
		noJournal, _ := cmd.Flags().GetBool("no-journal")
		daily, _ := cmd.Flags().GetString("daily")

		state, err := newServeState(daily)
		if err != nil {
			return err
		}

		level, _ := config.ParseLevel(cfg.LogLevel)
		slog.SetDefault(config.NewLogger(os.Stderr, level, true))

		sessionID := uuid.NewString()

		var repo store.EventRepo
		if !noJournal {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			repo = st.EventRepo()
		}
		recorder := journal.New(repo, sessionID)

		srv := &http.Server{
			Addr:         addr,
			Handler:      api.NewServer(state, recorder).Routes(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		recorder.Start(context.Background(), state.CurrentScore())

		errCh := make(chan error, 1)
		go func() {
			slog.Info("Server listening", "addr", srv.Addr, "session_id", sessionID)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("listen: %w", err)
			}
		case <-ctx.Done():
		}
		stop()

		slog.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		recorder.End(shutdownCtx, session.BuildSummary(state))
		slog.Info("Server stopped", "score", state.CurrentScore())
		return nil
	},
}

// newServeState starts a session with the daily challenge for date already
// loaded, so GET /api/daily answers before any PUT. Empty means today.
func newServeState(date string) (*session.State, error) {
	if date == "" {
		date = problemgen.Today()
	}
	if !problemgen.ValidDate(date) {
		return nil, fmt.Errorf("invalid --daily %q: want YYYY-MM-DD", date)
	}
	state := session.New()
	state.LoadDaily(date)
	return state, nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MATHQUEST_ADDR, default "+config.DefaultAddr+")")
	serveCmd.Flags().Bool("no-journal", false, "Do not record answers to the journal")
	serveCmd.Flags().String("daily", "", "Daily challenge date to preload (YYYY-MM-DD, default today)")
}

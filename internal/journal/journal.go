// Package journal records quiz play into the event store. Recording is
// best-effort: failures are logged and never surface to the player.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
)

// Recorder appends the events of one play session.
// A nil *Recorder, or one without a repo, records nothing.
type Recorder struct {
	repo      store.EventRepo
	sessionID string
	started   time.Time
	now       func() time.Time
}

// New creates a recorder for sessionID.
func New(repo store.EventRepo, sessionID string) *Recorder {
	return &Recorder{
		repo:      repo,
		sessionID: sessionID,
		now:       time.Now,
	}
}

// SessionID returns the id attached to every event.
func (r *Recorder) SessionID() string {
	if r == nil {
		return ""
	}
	return r.sessionID
}

// Enabled reports whether events are persisted.
func (r *Recorder) Enabled() bool {
	return r != nil && r.repo != nil
}

// Start records the beginning of the session.
func (r *Recorder) Start(ctx context.Context, score int) {
	if !r.Enabled() {
		return
	}
	r.started = r.now()
	r.warn(r.repo.AppendSession(ctx, store.SessionEventData{
		SessionID: r.sessionID,
		Action:    "start",
		Score:     score,
	}), "session start")
}

// End records the end of the session with its summary.
func (r *Recorder) End(ctx context.Context, sum *session.Summary) {
	if !r.Enabled() || sum == nil {
		return
	}
	data := store.SessionEventData{
		SessionID: r.sessionID,
		Action:    "end",
		Score:     sum.Score,
		Attempted: sum.Attempted(),
		Correct:   sum.Correct(),
	}
	if !r.started.IsZero() {
		data.DurationSecs = int(r.now().Sub(r.started).Seconds())
	}
	r.warn(r.repo.AppendSession(ctx, data), "session end")
}

// Answer records an accepted submission. Rejected guesses are not journaled.
func (r *Recorder) Answer(ctx context.Context, ref session.Ref, questionText, guess string, res session.SubmitResult) {
	if !r.Enabled() || !res.Accepted {
		return
	}
	data := store.AnswerEventData{
		SessionID:       r.sessionID,
		Kind:            string(ref.Kind),
		Tier:            string(ref.Tier),
		DateKey:         ref.Date,
		QuestionText:    questionText,
		CorrectAnswer:   res.Answer,
		LearnerAnswer:   guess,
		Correct:         res.Correct,
		FirstCompletion: res.FirstCompletion,
		PointsAwarded:   res.AwardedPoints,
		ScoreAfter:      res.Score,
	}
	if ref.Date == "" {
		data.QuestionIndex = ref.Index + 1
	}
	r.warn(r.repo.AppendAnswer(ctx, data), "answer")
}

// Hint records a hint request, granted or declined.
func (r *Recorder) Hint(ctx context.Context, ref session.Ref, res session.HintResult) {
	if !r.Enabled() {
		return
	}
	r.warn(r.repo.AppendHint(ctx, store.HintEventData{
		SessionID:  r.sessionID,
		Ref:        ref.String(),
		HintText:   res.HintText,
		Granted:    res.Granted,
		ScoreAfter: res.Score,
	}), "hint")
}

func (r *Recorder) warn(err error, event string) {
	if err != nil {
		slog.Warn("journal append failed", "event", event, "session_id", r.sessionID, "error", err)
	}
}

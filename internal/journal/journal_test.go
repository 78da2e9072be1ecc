package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
)

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func TestRecorder_AnswerAndHint(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	rec := New(repo, "sess-1")

	s := session.New()
	ref := s.CurrentLevelRef()
	q, err := s.TierQuestion(ref.Tier, ref.Index)
	require.NoError(t, err)

	guess := problemgen.FormatAnswer(q.Answer)
	res, err := s.SubmitAnswer(ref, guess)
	require.NoError(t, err)
	rec.Answer(ctx, ref, q.Text, guess, res)

	rejected, err := s.SubmitAnswer(ref, "abc")
	require.NoError(t, err)
	rec.Answer(ctx, ref, q.Text, "abc", rejected)

	hint, err := s.UseHint(ref)
	require.NoError(t, err)
	rec.Hint(ctx, ref, hint)

	answers, err := repo.RecentAnswers(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, answers, 1, "rejected guesses are not journaled")

	a := answers[0]
	assert.Equal(t, "sess-1", a.SessionID)
	assert.Equal(t, "level", a.Kind)
	assert.Equal(t, "easy", a.Tier)
	assert.Equal(t, 1, a.QuestionIndex)
	assert.Equal(t, q.Text, a.QuestionText)
	assert.True(t, a.Correct)
	assert.True(t, a.FirstCompletion)
	assert.Equal(t, session.CompletionPoints, a.PointsAwarded)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.HintsRequested)
	assert.Equal(t, 0, stats.HintsGranted, "5 points cannot buy a hint")
}

func TestRecorder_DailyAnswer(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	rec := New(repo, "sess-2")

	s := session.New()
	d := s.LoadDaily("2024-01-01")
	res := s.SubmitDaily(d.Date, "414")
	rec.Answer(ctx, session.DailyRef(d.Date), d.Text, "414", res)

	answers, err := repo.RecentAnswers(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "daily", answers[0].Kind)
	assert.Equal(t, "2024-01-01", answers[0].DateKey)
	assert.Equal(t, 0, answers[0].QuestionIndex)
	assert.Equal(t, 414.0, answers[0].CorrectAnswer)
}

func TestRecorder_Session(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	rec := New(repo, "sess-3")

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return start }
	rec.Start(ctx, 0)

	s := session.New()
	s.SubmitAnswer(session.MissionRef(0), "0")

	rec.now = func() time.Time { return start.Add(90 * time.Second) }
	rec.End(ctx, session.BuildSummary(s))

	events, err := repo.QuerySessions(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	end := events[0]
	assert.Equal(t, "end", end.Action)
	assert.Equal(t, session.CompletionPoints, end.Score)
	assert.Equal(t, 1, end.Attempted)
	assert.Equal(t, 0, end.Correct)
	assert.Equal(t, 90, end.DurationSecs)
	assert.Equal(t, "start", events[1].Action)
}

type failingRepo struct {
	store.EventRepo
	calls int
}

func (f *failingRepo) AppendAnswer(context.Context, store.AnswerEventData) error {
	f.calls++
	return errors.New("disk full")
}

func TestRecorder_FailuresAreSwallowed(t *testing.T) {
	repo := &failingRepo{}
	rec := New(repo, "sess-4")

	rec.Answer(context.Background(), session.MissionRef(0), "q", "1",
		session.SubmitResult{Accepted: true})
	assert.Equal(t, 1, repo.calls)
}

func TestRecorder_Disabled(t *testing.T) {
	var nilRec *Recorder
	assert.False(t, nilRec.Enabled())
	assert.Empty(t, nilRec.SessionID())
	nilRec.Start(context.Background(), 0)
	nilRec.Hint(context.Background(), session.MissionRef(0), session.HintResult{})

	rec := New(nil, "sess-5")
	assert.False(t, rec.Enabled())
	rec.End(context.Background(), &session.Summary{})
}

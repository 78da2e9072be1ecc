package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerEventData captures one accepted answer submission.
type AnswerEventData struct {
	SessionID       string
	Kind            string // level, mission or daily
	Tier            string // level answers only
	QuestionIndex   int    // 1-based; 0 for daily
	DateKey         string // daily answers only
	QuestionText    string
	CorrectAnswer   float64
	LearnerAnswer   string
	Correct         bool
	FirstCompletion bool
	PointsAwarded   int
	ScoreAfter      int
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// HintEventData captures one hint request, granted or declined.
type HintEventData struct {
	SessionID  string
	Ref        string
	HintText   string
	Granted    bool
	ScoreAfter int
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	Score        int
	Attempted    int
	Correct      int
	DurationSecs int
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// KindStats counts answers for one question kind.
type KindStats struct {
	Answers int
	Correct int
}

// JournalStats summarizes everything the journal has recorded.
type JournalStats struct {
	Sessions         int
	BestScore        int
	Answers          int
	Correct          int
	FirstCompletions int
	PointsEarned     int
	HintsRequested   int
	HintsGranted     int
	ByKind           map[string]KindStats
	LastPlayed       time.Time
}

// Accuracy is Correct / Answers, or 0 with no answers.
func (s *JournalStats) Accuracy() float64 {
	if s.Answers == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answers)
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendHint(ctx context.Context, data HintEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentAnswers returns answer events newest first.
	RecentAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)

	// QuerySessions returns session events newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error)

	// Stats aggregates the whole journal.
	Stats(ctx context.Context) (*JournalStats, error)

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

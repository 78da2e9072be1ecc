package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/mathquest/internal/store"
)

var stepsSchema = NewSchema("steps", "worked steps", map[string]any{
	"type": "object",
	"properties": map[string]any{
		"steps": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
	},
	"required": []any{"steps"},
})

type recordingJournal struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (j *recordingJournal) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, data)
	return j.err
}

func testClient(mock *MockProvider, journal store.EventRepo) (*Client, *[]time.Duration) {
	var waits []time.Duration
	c := wrap(mock, Config{
		Backend: BackendMock,
		Retry:   RetryPolicy{Attempts: 3, InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 2},
	}, journal)
	c.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return c, &waits
}

func explainPrompt() Prompt {
	return Prompt{Purpose: "explain", System: "tutor", User: "solve 5+3", Schema: stepsSchema, MaxTokens: 200}
}

func TestClient_ValidReply(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"steps":["5+3=8"]}`), Usage: Usage{Input: 12, Output: 4}})
	journal := &recordingJournal{}
	c, waits := testClient(mock, journal)

	reply, err := c.Complete(context.Background(), explainPrompt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.Content) != `{"steps":["5+3=8"]}` || reply.Usage.Total() != 16 {
		t.Errorf("reply = %+v", reply)
	}
	if len(*waits) != 0 {
		t.Errorf("waited %v on success", *waits)
	}

	if len(journal.events) != 1 {
		t.Fatalf("journal has %d events, want 1", len(journal.events))
	}
	ev := journal.events[0]
	if ev.Purpose != "explain" || !ev.Success || ev.InputTokens != 12 || ev.Model != "mock" {
		t.Errorf("event = %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[user]\nsolve 5+3") || !strings.Contains(ev.RequestBody, "[schema: steps]") {
		t.Errorf("request body = %q", ev.RequestBody)
	}
}

func TestClient_RetriesUnavailable(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: FailureUnavailable}},
		MockResponse{Err: &Error{Kind: FailureRateLimited, RetryAfter: 3 * time.Second}},
		MockResponse{Content: json.RawMessage(`{"steps":["ok"]}`)},
	)
	c, waits := testClient(mock, nil)

	if _, err := c.Complete(context.Background(), explainPrompt()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*waits) != 2 {
		t.Fatalf("waits = %v, want 2", *waits)
	}
	if w := (*waits)[0]; w < 80*time.Millisecond || w > 120*time.Millisecond {
		t.Errorf("first wait = %v, want 100ms ±20%%", w)
	}
	if (*waits)[1] != 3*time.Second {
		t.Errorf("second wait = %v, want RetryAfter", (*waits)[1])
	}
}

func TestClient_GivesUpAfterAttempts(t *testing.T) {
	mock := NewMockProvider() // every call fails
	journal := &recordingJournal{}
	c, _ := testClient(mock, journal)

	_, err := c.Complete(context.Background(), explainPrompt())
	if !IsKind(err, FailureUnavailable) {
		t.Fatalf("error = %v, want unavailable", err)
	}
	if n := len(mock.Prompts()); n != 3 {
		t.Errorf("attempts = %d, want 3", n)
	}
	if len(journal.events) != 3 || journal.events[2].Success {
		t.Errorf("journal = %+v", journal.events)
	}
}

func TestClient_MalformedRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"steps":[]}`)},
		MockResponse{Content: json.RawMessage(`not json`)},
		MockResponse{Content: json.RawMessage(`{"steps":["never reached"]}`)},
	)
	c, _ := testClient(mock, nil)

	_, err := c.Complete(context.Background(), explainPrompt())
	if !IsKind(err, FailureMalformed) {
		t.Fatalf("error = %v, want malformed", err)
	}
	if n := len(mock.Prompts()); n != 2 {
		t.Errorf("attempts = %d, want 2", n)
	}
}

func TestClient_NoRetry(t *testing.T) {
	tests := []struct {
		name string
		resp MockResponse
		kind FailureKind
	}{
		{"truncated", MockResponse{Content: json.RawMessage(`{"steps":["cut`), Truncated: true}, FailureTruncated},
		{"rejected", MockResponse{Err: &Error{Kind: FailureRejected}}, FailureRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.resp, MockResponse{Content: json.RawMessage(`{"steps":["x"]}`)})
			c, _ := testClient(mock, nil)

			_, err := c.Complete(context.Background(), explainPrompt())
			if !IsKind(err, tt.kind) {
				t.Fatalf("error = %v, want %s", err, tt.kind)
			}
			if n := len(mock.Prompts()); n != 1 {
				t.Errorf("attempts = %d, want 1", n)
			}
		})
	}
}

func TestClient_ContextCanceledDuringWait(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &Error{Kind: FailureUnavailable}})
	c, _ := testClient(mock, nil)
	c.sleep = sleepCtx
	c.retry.InitialWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Complete(ctx, explainPrompt())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestClient_TimeoutBoundsWholeCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &Error{Kind: FailureUnavailable}})
	c, _ := testClient(mock, nil)
	c.sleep = sleepCtx
	c.retry.InitialWait = time.Hour
	c.timeout = 20 * time.Millisecond

	start := time.Now()
	_, err := c.Complete(context.Background(), explainPrompt())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("timeout did not cut the backoff short")
	}
}

func TestClient_JournalFailureIsIgnored(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"steps":["ok"]}`)})
	c, _ := testClient(mock, &recordingJournal{err: errors.New("disk full")})

	if _, err := c.Complete(context.Background(), explainPrompt()); err != nil {
		t.Fatalf("journal error leaked: %v", err)
	}
}

func TestNew(t *testing.T) {
	t.Run("mock", func(t *testing.T) {
		c, err := New(context.Background(), Config{Backend: BackendMock}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Model() != "mock" || c.retry.Attempts != 1 {
			t.Errorf("client = %+v", c)
		}
	})

	t.Run("default model", func(t *testing.T) {
		c, err := New(context.Background(), Config{Backend: BackendOpenRouter, APIKey: "sk-or"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Model() != "google/gemini-2.5-flash" {
			t.Errorf("model = %q", c.Model())
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := New(context.Background(), Config{Backend: BackendAnthropic}, nil)
		if err == nil || !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
			t.Fatalf("error = %v", err)
		}
	})
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/mathquest/internal/store"
)

// ErrNotConfigured is returned when no backend is pinned and no vendor key
// is set.
var ErrNotConfigured = errors.New("no LLM provider configured")

// Client wraps a backend with the tutor's request policy: one deadline for
// the whole call, retries for transient failures, schema and truncation
// checks on every reply, and a journal entry per attempt.
type Client struct {
	backend Provider
	name    string
	timeout time.Duration
	retry   RetryPolicy
	journal store.EventRepo

	sleep func(context.Context, time.Duration) error
}

// New builds the backend cfg names and wraps it in a Client. journal may be
// nil, in which case attempts are only logged.
func New(ctx context.Context, cfg Config, journal store.EventRepo) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var backend Provider
	var err error
	switch cfg.Backend {
	case BackendAnthropic:
		backend, err = newAnthropic(cfg)
	case BackendOpenAI:
		backend, err = newOpenAI(cfg)
	case BackendOpenRouter:
		backend, err = newOpenRouter(cfg)
	case BackendGemini:
		backend, err = newGemini(ctx, cfg)
	case BackendMock:
		backend = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Backend, err)
	}

	slog.Debug("llm provider ready", "provider", cfg.Backend, "model", backend.Model())
	return wrap(backend, cfg, journal), nil
}

// NewFromEnv is New with FromEnv's configuration.
func NewFromEnv(ctx context.Context, journal store.EventRepo) (*Client, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg, journal)
}

func wrap(backend Provider, cfg Config, journal store.EventRepo) *Client {
	return &Client{
		backend: backend,
		name:    cfg.Backend,
		timeout: cfg.Timeout,
		retry:   cfg.Retry,
		journal: journal,
		sleep:   sleepCtx,
	}
}

func (c *Client) Model() string { return c.backend.Model() }

// Complete sends p, retrying transient failures. A reply that fails the
// schema is retried once; a truncated one is not retried.
func (c *Client) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	malformed := 0
	for attempt := 0; ; attempt++ {
		reply, err := c.attempt(ctx, p)
		if err == nil {
			return reply, nil
		}
		if IsKind(err, FailureMalformed) {
			malformed++
		}
		if attempt+1 >= c.retry.Attempts || !retryable(err, malformed) {
			return nil, err
		}
		if err := c.sleep(ctx, c.retry.delay(attempt, err)); err != nil {
			return nil, err
		}
	}
}

func (c *Client) attempt(ctx context.Context, p Prompt) (*Reply, error) {
	start := time.Now()
	reply, err := c.backend.Complete(ctx, p)
	if err == nil {
		err = checkReply(p, reply)
	}
	c.record(ctx, p, reply, err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func checkReply(p Prompt, reply *Reply) error {
	if p.Schema == nil {
		return nil
	}
	if reply.Truncated {
		return &Error{Kind: FailureTruncated, Err: fmt.Errorf("hit %d tokens", p.MaxTokens)}
	}
	return p.Schema.Validate(reply.Content)
}

func retryable(err error, malformed int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return true
	}
	switch e.Kind {
	case FailureTruncated, FailureRejected:
		return false
	case FailureMalformed:
		return malformed <= 1
	default:
		return true
	}
}

// delay is the wait before retry number attempt+1. A server-provided
// RetryAfter wins over backoff.
func (r RetryPolicy) delay(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	wait := float64(r.InitialWait) * math.Pow(max(r.Multiplier, 1), float64(attempt))
	if r.MaxWait > 0 {
		wait = min(wait, float64(r.MaxWait))
	}
	// ±20% jitter
	wait *= 0.8 + 0.4*rand.Float64()
	return time.Duration(wait)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// record journals one attempt. Journal failures are logged, never returned.
func (c *Client) record(ctx context.Context, p Prompt, reply *Reply, err error, took time.Duration) {
	data := store.LLMRequestEventData{
		Provider:    c.name,
		Model:       c.backend.Model(),
		Purpose:     p.Purpose,
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(p),
	}
	if reply != nil {
		data.InputTokens = reply.Usage.Input
		data.OutputTokens = reply.Usage.Output
		data.ResponseBody = string(reply.Content)
		if reply.Model != "" {
			data.Model = reply.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	slog.Debug("llm request",
		"provider", data.Provider,
		"model", data.Model,
		"purpose", data.Purpose,
		"latency_ms", data.LatencyMs,
		"ok", data.Success,
	)
	if c.journal == nil {
		return
	}
	if jerr := c.journal.AppendLLMRequest(context.WithoutCancel(ctx), data); jerr != nil {
		slog.Warn("failed to journal LLM request", "error", jerr)
	}
}

// transcript renders p for `mathquest llm view`.
func transcript(p Prompt) string {
	var b strings.Builder
	if p.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", p.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", p.User)
	if p.Schema != nil {
		if def, err := p.Schema.MarshalDefinition(); err == nil {
			fmt.Fprintf(&b, "\n[schema: %s]\n%s\n", p.Schema.Name, def)
		}
	}
	return b.String()
}

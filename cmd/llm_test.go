package cmd

import (
	"testing"
	"time"

	"github.com/abhisek/mathquest/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func llmEvent(id int, purpose string, ok bool) store.LLMRequestEventRecord {
	return store.LLMRequestEventRecord{
		ID:        id,
		Timestamp: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider: "gemini", Model: "gemini-2.5-flash", Purpose: purpose,
			InputTokens: 40, OutputTokens: 12, LatencyMs: 850, Success: ok,
		},
	}
}

func TestCallRows(t *testing.T) {
	events := []store.LLMRequestEventRecord{
		llmEvent(1, "explain", true),
		llmEvent(2, "explain", false),
		llmEvent(3, "hint", false),
	}

	assert.Len(t, callRows(events, "", false), 3)
	assert.Len(t, callRows(events, "explain", false), 2)

	failed := callRows(events, "explain", true)
	require.Len(t, failed, 1)
	assert.Equal(t, "2", failed[0][0])
	assert.Equal(t, "40/12", failed[0][4])
	assert.Equal(t, "✗", failed[0][6])
}

func TestSpendRows(t *testing.T) {
	rows, total, unpriced := spendRows([]store.LLMModelUsage{
		{Model: "claude-haiku-4-5-20251001", Calls: 4, InputTokens: 1_000_000, OutputTokens: 200_000},
		{Model: "llama-local", Calls: 1, InputTokens: 10, OutputTokens: 5},
	})

	require.Len(t, rows, 2)
	assert.InDelta(t, 2.0, total, 1e-9)
	assert.Equal(t, "$2.00", rows[0][3])
	assert.Equal(t, "?", rows[1][3])
	assert.Equal(t, []string{"llama-local"}, unpriced)
}

func TestDescribeCall(t *testing.T) {
	e := llmEvent(7, "explain", false)
	e.ErrorMessage = "rate limited"
	e.RequestBody = "[user]\nsolve 5+3"
	e.ResponseBody = `{"steps":["8"]}`

	out := describeCall(e)
	assert.Contains(t, out, "#7 explain via gemini/gemini-2.5-flash")
	assert.Contains(t, out, "error: rate limited")
	assert.Contains(t, out, "[user]\nsolve 5+3")
	assert.Contains(t, out, "{\n  \"steps\": [\n    \"8\"\n  ]\n}")
}

func TestDescribeCall_NotCaptured(t *testing.T) {
	out := describeCall(llmEvent(1, "explain", true))
	assert.Contains(t, out, "── prompt ──\n(not captured)")
	assert.Contains(t, out, "── reply ──\n(not captured)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "gemini-2.…", truncate("gemini-2.5-flash", 10))
	assert.Equal(t, "½½", truncate("½½", 2))
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Model", "Calls"}, [][]string{{"mock", "3"}}, 1)
	assert.Contains(t, out, "Model")
	assert.Contains(t, out, "mock")
	assert.Contains(t, out, "3")
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicBackend struct {
	client anthropic.Client
	model  string
}

func newAnthropic(cfg Config) (Provider, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Client owns retries.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &anthropicBackend{client: anthropic.NewClient(opts...), model: cfg.Model}, nil
}

func (b *anthropicBackend) Model() string { return b.model }

func (b *anthropicBackend) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: int64(p.MaxTokens),
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(p.User))},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}
	if p.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: p.Schema.Definition},
		}
	}

	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, statusError(BackendAnthropic, apiErr.StatusCode, err)
		}
		return nil, statusError(BackendAnthropic, 0, err)
	}

	reply := &Reply{
		Model:     string(msg.Model),
		Truncated: msg.StopReason == anthropic.StopReasonMaxTokens,
		Usage:     Usage{Input: int(msg.Usage.InputTokens), Output: int(msg.Usage.OutputTokens)},
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.Content = json.RawMessage(block.Text)
			return reply, nil
		}
	}
	return nil, &Error{Kind: FailureMalformed, Backend: BackendAnthropic, Err: fmt.Errorf("no text block in reply")}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// openAIBackend speaks the chat completions API. OpenRouter and other
// compatible gateways reuse it with a different base URL.
type openAIBackend struct {
	name   string
	client *openai.Client
	model  string
}

func newOpenAI(cfg Config) (Provider, error) {
	return newChatCompletions(BackendOpenAI, cfg, "")
}

func newOpenRouter(cfg Config) (Provider, error) {
	return newChatCompletions(BackendOpenRouter, cfg, openRouterBaseURL)
}

func newChatCompletions(name string, cfg Config, defaultBaseURL string) (Provider, error) {
	conf := openai.DefaultConfig(cfg.APIKey)
	switch {
	case cfg.BaseURL != "":
		conf.BaseURL = cfg.BaseURL
	case defaultBaseURL != "":
		conf.BaseURL = defaultBaseURL
	}
	return &openAIBackend{name: name, client: openai.NewClientWithConfig(conf), model: cfg.Model}, nil
}

func (b *openAIBackend) Model() string { return b.model }

func (b *openAIBackend) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	req := openai.ChatCompletionRequest{
		Model:               b.model,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
	}
	if p.System != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.System})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: p.User})

	if p.Schema != nil {
		def, err := p.Schema.MarshalDefinition()
		if err != nil {
			return nil, fmt.Errorf("marshal schema %q: %w", p.Schema.Name, err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        p.Schema.Name,
				Description: p.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, b.mapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Kind: FailureMalformed, Backend: b.name, Err: fmt.Errorf("reply has no choices")}
	}

	choice := resp.Choices[0]
	return &Reply{
		Content:   json.RawMessage(choice.Message.Content),
		Model:     resp.Model,
		Truncated: choice.FinishReason == openai.FinishReasonLength,
		Usage:     Usage{Input: resp.Usage.PromptTokens, Output: resp.Usage.CompletionTokens},
	}, nil
}

func (b *openAIBackend) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(b.name, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(b.name, reqErr.HTTPStatusCode, err)
	}
	return statusError(b.name, 0, err)
}

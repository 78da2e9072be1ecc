package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiBackend struct {
	client *genai.Client
	model  string
}

func newGemini(ctx context.Context, cfg Config) (Provider, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiBackend{client: client, model: cfg.Model}, nil
}

func (b *geminiBackend) Model() string { return b.model }

func (b *geminiBackend) Complete(ctx context.Context, p Prompt) (*Reply, error) {
	gc := &genai.GenerateContentConfig{MaxOutputTokens: int32(p.MaxTokens)}
	if p.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(p.Temperature))
	}
	if p.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}
	if p.Schema != nil {
		// The API accepts plain JSON Schema here; no genai.Schema translation.
		gc.ResponseMIMEType = "application/json"
		gc.ResponseJsonSchema = p.Schema.Definition
	}

	result, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(p.User), gc)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, statusError(BackendGemini, apiErr.Code, err)
		}
		return nil, statusError(BackendGemini, 0, err)
	}

	reply := &Reply{
		Content: json.RawMessage(result.Text()),
		Model:   b.model,
	}
	if result.ModelVersion != "" {
		reply.Model = result.ModelVersion
	}
	if len(result.Candidates) > 0 {
		reply.Truncated = result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens
	}
	if u := result.UsageMetadata; u != nil {
		reply.Usage = Usage{Input: int(u.PromptTokenCount), Output: int(u.CandidatesTokenCount)}
	}
	return reply, nil
}

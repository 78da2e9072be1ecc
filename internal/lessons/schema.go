package lessons

import "github.com/abhisek/mathquest/internal/llm"

// ExplanationSchema defines the JSON schema for worked explanations.
var ExplanationSchema = llm.NewSchema(
	"step-explanation",
	"A short step-by-step worked solution to a word problem",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title naming the method (3-8 words)",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Numbered-in-order calculation steps, one sentence each",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The final numeric answer, digits only, at most two decimal places",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One sentence on how to avoid the learner's mistake",
			},
		},
		"required":             []any{"title", "steps", "answer", "tip"},
		"additionalProperties": false,
	},
)

package practicegen

import "github.com/wliu/gradewise/internal/llm"

// QuestionsSchema defines the JSON schema for question generation
// responses: a batch of questions for one knowledge point.
var QuestionsSchema = &llm.Schema{
	Name:        "practice-questions",
	Description: "A batch of practice questions for one knowledge point",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt, in Chinese, self-contained",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer as plain text",
						},
						"analysis": map[string]any{
							"type":        "string",
							"description": "Step-by-step solution a primary school student can follow",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Difficulty from 1 (easy) to 5 (hard)",
						},
					},
					"required":             []any{"text", "answer", "analysis", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

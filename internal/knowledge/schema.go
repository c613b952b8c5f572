package knowledge

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// corpusSchema is the JSON Schema every grade corpus file must satisfy
// before parsing. The corpus is AI-authored, so structural validation up
// front turns garbled files into load-time warnings instead of runtime
// surprises deep in the graph.
var corpusSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"schema_version": map[string]any{"type": "string"},
		"subject":        map[string]any{"type": "string"},
		"grade":          map[string]any{"type": "integer"},
		"modules": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"description": map[string]any{"type": "string"},
					"points": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":       map[string]any{"type": "string", "minLength": 1},
								"category": map[string]any{"type": "string"},
								"name":     map[string]any{"type": "string", "minLength": 1},
								"description": map[string]any{
									"type": "string",
								},
								"difficulty": map[string]any{
									"type": "integer", "minimum": 1, "maximum": 5,
								},
								"keywords":      stringArray,
								"prerequisites": stringArray,
								"next_points":   stringArray,
								"typical_questions": stringArray,
								"common_mistakes":   stringArray,
								"learning_tips": map[string]any{"type": "string"},
								"importance": map[string]any{
									"type": "integer", "minimum": 1, "maximum": 5,
								},
								"avg_learning_time": map[string]any{
									"type": "integer", "minimum": 0,
								},
							},
							"required": []any{"id", "category", "name"},
						},
					},
				},
				"required": []any{"points"},
			},
		},
		"question_types": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"weight":            map[string]any{"type": "number"},
					"time_per_question": map[string]any{"type": "integer"},
					"difficulty_range": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "integer"},
						"minItems": 2,
						"maxItems": 2,
					},
					"description": map[string]any{"type": "string"},
				},
			},
		},
	},
	"required": []any{"modules"},
}

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var (
	compiledCorpusSchema *jsonschema.Schema
	compileOnce          sync.Once
	compileErr           error
)

// compiledSchema compiles the corpus schema once and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const url = "schema://corpus.json"
		if err := c.AddResource(url, corpusSchema); err != nil {
			compileErr = fmt.Errorf("add corpus schema resource: %w", err)
			return
		}
		compiledCorpusSchema, compileErr = c.Compile(url)
	})
	return compiledCorpusSchema, compileErr
}

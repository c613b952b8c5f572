// Package practicegen generates practice questions for knowledge points
// through the LLM provider boundary.
package practicegen

import "github.com/wliu/gradewise/internal/knowledge"

// Question is one generated practice question ready for rendering.
type Question struct {
	// Text is the question prompt shown to the student.
	Text string `json:"text"`

	// Answer is the expected answer as plain text.
	Answer string `json:"answer"`

	// Analysis is a step-by-step worked solution shown after answering.
	Analysis string `json:"analysis"`

	// QuestionType is the corpus question type this question belongs to,
	// e.g. "计算题" or "应用题". Empty when the corpus defines none.
	QuestionType string `json:"question_type"`

	// Difficulty is the generator's self-assessed difficulty (1-5).
	Difficulty int `json:"difficulty"`

	// PointID and PointName identify the knowledge point this question
	// practices.
	PointID   string `json:"point_id"`
	PointName string `json:"point_name"`
}

// GenerateInput holds the context for one generation call.
type GenerateInput struct {
	// Point is the target knowledge point.
	Point knowledge.KnowledgePoint

	// QuestionType selects a corpus question type. Optional.
	QuestionType string

	// Count is how many questions to generate, 1-20.
	Count int

	// AvoidTexts lists question texts already produced this session so
	// the generator does not repeat itself.
	AvoidTexts []string

	// Purpose labels the audit record for this call. Defaults to
	// question generation.
	Purpose string
}

// Config tunes generation requests.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxAvoidTexts caps how many prior questions go into the prompt.
	MaxAvoidTexts int
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     4096,
		Temperature:   0.7,
		MaxAvoidTexts: 20,
	}
}

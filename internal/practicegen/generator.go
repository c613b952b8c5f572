package practicegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/llm"
	"github.com/wliu/gradewise/internal/recommend"
)

// Generator produces practice questions for knowledge points.
type Generator struct {
	provider llm.Provider
	config   Config
}

func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// questionsOutput is the raw LLM response before validation.
type questionsOutput struct {
	Questions []struct {
		Text       string `json:"text"`
		Answer     string `json:"answer"`
		Analysis   string `json:"analysis"`
		Difficulty int    `json:"difficulty"`
	} `json:"questions"`
}

// Generate produces a batch of questions for one knowledge point.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	if input.Count < 1 || input.Count > 20 {
		return nil, fmt.Errorf("question count %d out of range 1-20", input.Count)
	}

	purpose := input.Purpose
	if purpose == "" {
		purpose = llm.PurposeQuestionGen
	}

	req := llm.Request{
		Purpose: purpose,
		System:  systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate questions for %s: %w", input.Point.ID, err)
	}

	var raw questionsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse questions for %s: %w", input.Point.ID, err)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		out := Question{
			Text:         q.Text,
			Answer:       q.Answer,
			Analysis:     q.Analysis,
			QuestionType: input.QuestionType,
			Difficulty:   q.Difficulty,
			PointID:      input.Point.ID,
			PointName:    input.Point.Name,
		}
		if err := checkQuestion(out); err != nil {
			return nil, fmt.Errorf("question %d for %s: %w", i+1, input.Point.ID, err)
		}
		questions = append(questions, out)
	}
	return questions, nil
}

// checkQuestion rejects structurally broken generator output that the
// schema alone cannot catch.
func checkQuestion(q Question) error {
	if q.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if q.Answer == "" {
		return fmt.Errorf("empty answer")
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("difficulty %d out of range", q.Difficulty)
	}
	return nil
}

// GenerateForPlan expands a daily practice plan into questions, one
// batch per plan point. Plans without point targeting (quick practice)
// draw from the grade's points round-robin.
func (g *Generator) GenerateForPlan(ctx context.Context, graph *kgraph.Graph, plan recommend.Plan, subject knowledge.Subject, grade int) ([]Question, error) {
	targets := plan.Points
	if len(targets) == 0 {
		targets = spreadQuestions(graph.PointsByGradeSubject(subject, grade), plan.TotalQuestions)
	}

	var questions []Question
	var avoid []string
	for _, target := range targets {
		pt, ok := graph.Point(target.PointID)
		if !ok {
			continue
		}
		batch, err := g.Generate(ctx, GenerateInput{
			Point:      pt,
			Count:      target.Questions,
			AvoidTexts: avoid,
		})
		if err != nil {
			return nil, err
		}
		for _, q := range batch {
			avoid = append(avoid, q.Text)
		}
		questions = append(questions, batch...)
	}
	return questions, nil
}

// spreadQuestions distributes total questions evenly over the points.
func spreadQuestions(points []knowledge.KnowledgePoint, total int) []recommend.PlanPoint {
	if len(points) == 0 || total == 0 {
		return nil
	}
	if len(points) > total {
		points = points[:total]
	}
	per := total / len(points)
	extra := total % len(points)
	out := make([]recommend.PlanPoint, len(points))
	for i, pt := range points {
		q := per
		if i < extra {
			q++
		}
		out[i] = recommend.PlanPoint{PointID: pt.ID, Name: pt.Name, Questions: q}
	}
	return out
}

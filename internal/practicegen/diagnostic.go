package practicegen

import (
	"context"
	"fmt"
	"sort"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/llm"
)

// questionsPerDiagnosticPoint is how many questions probe each point in
// a diagnostic test.
const questionsPerDiagnosticPoint = 2

// DiagnosticTest authors a placement test for one subject and grade:
// the topN most important points, probed with a couple of questions
// each.
func (g *Generator) DiagnosticTest(ctx context.Context, graph *kgraph.Graph, subject knowledge.Subject, grade, topN int) ([]Question, error) {
	points := graph.PointsByGradeSubject(subject, grade)
	if len(points) == 0 {
		return nil, fmt.Errorf("no knowledge points for %s grade %d", subject, grade)
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Importance != points[j].Importance {
			return points[i].Importance > points[j].Importance
		}
		return points[i].ID < points[j].ID
	})
	if len(points) > topN {
		points = points[:topN]
	}

	var questions []Question
	var avoid []string
	for _, pt := range points {
		batch, err := g.Generate(ctx, GenerateInput{
			Point:      pt,
			Count:      questionsPerDiagnosticPoint,
			AvoidTexts: avoid,
			Purpose:    llm.PurposeDiagnostic,
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

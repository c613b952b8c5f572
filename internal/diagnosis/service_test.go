package diagnosis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/profile"
)

func pt(id string, grade int, prereqs ...string) knowledge.KnowledgePoint {
	return knowledge.KnowledgePoint{
		ID:            id,
		Subject:       knowledge.SubjectMath,
		Grade:         grade,
		Name:          "点" + id,
		Difficulty:    knowledge.Medium,
		Prerequisites: prereqs,
	}
}

// gradedGraph builds n points per grade for grades 1..maxGrade, each
// point depending on its same-index predecessor in the grade below.
func gradedGraph(maxGrade, perGrade int) *kgraph.Graph {
	var points []knowledge.KnowledgePoint
	for g := 1; g <= maxGrade; g++ {
		for i := 0; i < perGrade; i++ {
			id := fmt.Sprintf("math_%d_%d", g, i)
			var prereqs []string
			if g > 1 {
				prereqs = []string{fmt.Sprintf("math_%d_%d", g-1, i)}
			}
			points = append(points, pt(id, g, prereqs...))
		}
	}
	return kgraph.New(points)
}

// statsFor fabricates stats mastering the first n points of each grade,
// where n comes from masteredPerGrade.
func statsFor(graph *kgraph.Graph, masteredPerGrade map[int]int) map[string]*profile.PointStats {
	stats := make(map[string]*profile.PointStats)
	for _, p := range graph.All() {
		var g, idx int
		fmt.Sscanf(p.ID, "math_%d_%d", &g, &idx)
		if idx < masteredPerGrade[g] {
			stats[p.ID] = &profile.PointStats{PointID: p.ID, PointName: p.Name, Total: 10, Mistakes: 0}
		}
	}
	return stats
}

func profileWith(stats map[string]*profile.PointStats) *profile.Profile {
	p := &profile.Profile{Student: "amy", Stats: stats}
	for _, s := range stats {
		p.TotalQuestions += s.Total
		p.TotalMistakes += s.Mistakes
	}
	return p
}

func TestDiagnoseNoGradeConfig(t *testing.T) {
	svc := NewService(gradedGraph(3, 5))
	_, err := svc.Diagnose(profileWith(nil), knowledge.SubjectMath, 6)
	if !errors.Is(err, ErrNoGradeConfig) {
		t.Fatalf("err = %v, want ErrNoGradeConfig", err)
	}
}

func TestDiagnoseEmptyProfile(t *testing.T) {
	svc := NewService(gradedGraph(3, 5))
	report, err := svc.Diagnose(profileWith(nil), knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !report.InsufficientData {
		t.Error("expected InsufficientData")
	}
	if report.MasteredCount != 0 || len(report.WeakPoints) != 0 {
		t.Errorf("empty profile claimed mastery: %+v", report)
	}
}

func TestGradeLevelEstimation(t *testing.T) {
	graph := gradedGraph(4, 5)
	svc := NewService(graph)

	tests := []struct {
		name     string
		mastered map[int]int // grade -> points mastered out of 5
		target   int
		want     float64
	}{
		{"solid through grade 3, nothing at 4", map[int]int{1: 4, 2: 4, 3: 4, 4: 0}, 4, 3.0},
		{"half credit at grade 3 stops the walk", map[int]int{1: 5, 2: 5, 3: 3, 4: 5}, 4, 2.5},
		{"collapse at grade 2", map[int]int{1: 5, 2: 1, 3: 5}, 3, 1.0},
		{"nothing mastered at all", map[int]int{}, 3, 0.0},
		{"full marks", map[int]int{1: 5, 2: 5, 3: 5, 4: 5}, 4, 4.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileWith(statsFor(graph, tt.mastered))
			report, err := svc.Diagnose(p, knowledge.SubjectMath, tt.target)
			if err != nil {
				t.Fatalf("Diagnose: %v", err)
			}
			if report.ActualGradeLevel != tt.want {
				t.Errorf("ActualGradeLevel = %v, want %v", report.ActualGradeLevel, tt.want)
			}
		})
	}
}

func TestWeakPointsSortedWorstFirst(t *testing.T) {
	graph := kgraph.New([]knowledge.KnowledgePoint{
		pt("a", 1), pt("b", 1), pt("c", 1),
	})
	svc := NewService(graph)

	p := profileWith(map[string]*profile.PointStats{
		"a": {PointID: "a", Total: 10, Mistakes: 5},  // 50%
		"b": {PointID: "b", Total: 10, Mistakes: 8},  // 20%
		"c": {PointID: "c", Total: 2, Mistakes: 2},   // too few attempts
	})
	report, err := svc.Diagnose(p, knowledge.SubjectMath, 1)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(report.WeakPoints) != 2 {
		t.Fatalf("weak points = %d, want 2", len(report.WeakPoints))
	}
	if report.WeakPoints[0].PointID != "b" || report.WeakPoints[1].PointID != "a" {
		t.Errorf("order = %s,%s, want b,a", report.WeakPoints[0].PointID, report.WeakPoints[1].PointID)
	}
}

func TestRootCausePointsAtFoundation(t *testing.T) {
	// chain: base <- mid <- top; student is weak on top, never
	// practiced base, so base is the root cause.
	graph := kgraph.New([]knowledge.KnowledgePoint{
		pt("base", 1),
		pt("mid", 2, "base"),
		pt("top", 3, "mid"),
	})
	svc := NewService(graph)

	p := profileWith(map[string]*profile.PointStats{
		"mid": {PointID: "mid", Total: 10, Mistakes: 0},
		"top": {PointID: "top", Total: 10, Mistakes: 8},
	})
	report, err := svc.Diagnose(p, knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(report.RootCauses) != 1 {
		t.Fatalf("root causes = %d, want 1", len(report.RootCauses))
	}
	if report.RootCauses[0].PointID != "base" {
		t.Errorf("root cause = %s, want base", report.RootCauses[0].PointID)
	}
	if report.RootCauses[0].ForPointID != "top" {
		t.Errorf("for point = %s, want top", report.RootCauses[0].ForPointID)
	}
}

func TestRootCauseIsLocalWhenFoundationSolid(t *testing.T) {
	graph := kgraph.New([]knowledge.KnowledgePoint{
		pt("base", 1),
		pt("top", 2, "base"),
	})
	svc := NewService(graph)

	p := profileWith(map[string]*profile.PointStats{
		"base": {PointID: "base", Total: 10, Mistakes: 0},
		"top":  {PointID: "top", Total: 10, Mistakes: 9},
	})
	report, err := svc.Diagnose(p, knowledge.SubjectMath, 2)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(report.RootCauses) != 1 || report.RootCauses[0].PointID != "top" {
		t.Fatalf("root causes = %+v, want top itself", report.RootCauses)
	}
}

func TestRecommendationsCoverAllThreeRules(t *testing.T) {
	graph := gradedGraph(4, 5)
	svc := NewService(graph)

	// Weak at grade 1 with nothing mastered: root cause exists, the
	// estimated level is far below target, and a weak point exists.
	stats := map[string]*profile.PointStats{
		"math_1_0": {PointID: "math_1_0", Total: 10, Mistakes: 8},
	}
	report, err := svc.Diagnose(profileWith(stats), knowledge.SubjectMath, 4)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(report.Recommendations) != 3 {
		t.Fatalf("recommendations = %d, want 3: %+v", len(report.Recommendations), report.Recommendations)
	}
	if report.Recommendations[0].Priority != PriorityHigh {
		t.Errorf("first recommendation priority = %s, want high", report.Recommendations[0].Priority)
	}
	if report.Recommendations[2].Priority != PriorityMedium {
		t.Errorf("last recommendation priority = %s, want medium", report.Recommendations[2].Priority)
	}
}

package recommend

import (
	"fmt"
	"testing"
	"time"

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

func fixtureGraph() *kgraph.Graph {
	points := []knowledge.KnowledgePoint{
		pt("base", 1),
		pt("mid", 2, "base"),
		pt("top", 3, "mid"),
	}
	for i := 0; i < 12; i++ {
		points = append(points, pt(fmt.Sprintf("g3_%02d", i), 3))
	}
	return kgraph.New(points)
}

func fixedRecommender(graph *kgraph.Graph, now time.Time) *Recommender {
	r := New(graph)
	r.now = func() time.Time { return now }
	return r
}

func profileWith(stats map[string]*profile.PointStats) *profile.Profile {
	p := &profile.Profile{Student: "amy", Stats: stats}
	for _, s := range stats {
		p.TotalQuestions += s.Total
		p.TotalMistakes += s.Mistakes
	}
	return p
}

func daysAgo(now time.Time, d float64) *time.Time {
	t := now.Add(-time.Duration(d * 24 * float64(time.Hour)))
	return &t
}

func TestFourPlansWhenWeakAndRootCauseExist(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	r := fixedRecommender(fixtureGraph(), now)

	// Weak on top with an unmastered prerequisite chain.
	p := profileWith(map[string]*profile.PointStats{
		"top": {PointID: "top", Total: 10, Mistakes: 8, LastPractice: daysAgo(now, 1)},
	})
	plans := r.DailyPlans(p, knowledge.SubjectMath, 3)
	if len(plans) != 4 {
		t.Fatalf("plans = %d, want 4", len(plans))
	}

	wantIDs := []string{"weakness_breakthrough", "comprehensive_review", "quick_practice", "remedial"}
	for i, want := range wantIDs {
		if plans[i].ID != want {
			t.Errorf("plan[%d] = %s, want %s", i, plans[i].ID, want)
		}
	}

	def, ok := DefaultPlan(plans)
	if !ok || def.ID != "weakness_breakthrough" {
		t.Errorf("default plan = %v, want weakness_breakthrough", def.ID)
	}

	remedial := plans[3]
	if !remedial.Remedial {
		t.Error("remedial plan not flagged")
	}
	if len(remedial.Points) != 1 || remedial.Points[0].PointID != "base" {
		t.Errorf("remedial targets %+v, want base", remedial.Points)
	}
}

func TestTwoPlansForHealthyStudent(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	r := fixedRecommender(fixtureGraph(), now)

	p := profileWith(map[string]*profile.PointStats{
		"base": {PointID: "base", Total: 10, Mistakes: 0, LastPractice: daysAgo(now, 1)},
		"mid":  {PointID: "mid", Total: 10, Mistakes: 1, LastPractice: daysAgo(now, 2)},
	})
	plans := r.DailyPlans(p, knowledge.SubjectMath, 3)
	if len(plans) != 2 {
		t.Fatalf("plans = %d, want 2", len(plans))
	}
	if plans[0].ID != "comprehensive_review" || plans[1].ID != "quick_practice" {
		t.Errorf("plan ids = %s,%s", plans[0].ID, plans[1].ID)
	}

	def, ok := DefaultPlan(plans)
	if !ok || def.ID != "comprehensive_review" {
		t.Errorf("default plan = %v, want comprehensive_review", def.ID)
	}
}

func TestWeaknessPlanShape(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	graph := kgraph.New([]knowledge.KnowledgePoint{
		pt("a", 3), pt("b", 3), pt("c", 3), pt("d", 3),
	})
	r := fixedRecommender(graph, now)

	// Four weak points; the plan must keep only the worst three.
	p := profileWith(map[string]*profile.PointStats{
		"a": {PointID: "a", Total: 10, Mistakes: 9},
		"b": {PointID: "b", Total: 10, Mistakes: 8},
		"c": {PointID: "c", Total: 10, Mistakes: 7},
		"d": {PointID: "d", Total: 10, Mistakes: 6},
	})
	plans := r.DailyPlans(p, knowledge.SubjectMath, 3)

	plan := plans[0]
	if plan.ID != "weakness_breakthrough" {
		t.Fatalf("first plan = %s", plan.ID)
	}
	if len(plan.Points) != 3 || plan.TotalQuestions != 15 {
		t.Fatalf("points = %d, questions = %d, want 3/15", len(plan.Points), plan.TotalQuestions)
	}
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if plan.Points[i].PointID != want {
			t.Errorf("point[%d] = %s, want %s", i, plan.Points[i].PointID, want)
		}
		if plan.Points[i].Questions != 5 {
			t.Errorf("point[%d] questions = %d, want 5", i, plan.Points[i].Questions)
		}
	}
}

func TestComprehensivePlanCapsAndDistributes(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	r := fixedRecommender(fixtureGraph(), now)

	plans := r.DailyPlans(profileWith(nil), knowledge.SubjectMath, 3)
	var plan Plan
	for _, pl := range plans {
		if pl.ID == "comprehensive_review" {
			plan = pl
		}
	}
	if len(plan.Points) != 10 {
		t.Fatalf("points = %d, want 10 (capped)", len(plan.Points))
	}
	total := 0
	for _, pp := range plan.Points {
		total += pp.Questions
	}
	if total != 20 || plan.TotalQuestions != 20 {
		t.Errorf("question sum = %d, TotalQuestions = %d, want 20/20", total, plan.TotalQuestions)
	}
}

func TestSpacedRepetitionWindows(t *testing.T) {
	tests := []struct {
		days float64
		want bool
	}{
		{5, false},
		{6, true},
		{7, true},
		{8, true},
		{9.5, false},
		{14, true},
		{15, true},
		{16, true},
		{20, false},
		{29, true},
		{30, true},
		{31, true},
		{33, false},
	}
	for _, tt := range tests {
		age := time.Duration(tt.days * 24 * float64(time.Hour))
		if got := dueForReview(age); got != tt.want {
			t.Errorf("dueForReview(%v days) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestDuePointsLeadComprehensivePlan(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	r := fixedRecommender(fixtureGraph(), now)

	// g3_05 was practiced exactly 7 days ago: due for review.
	p := profileWith(map[string]*profile.PointStats{
		"g3_05": {PointID: "g3_05", Total: 5, Mistakes: 0, LastPractice: daysAgo(now, 7)},
	})
	plans := r.DailyPlans(p, knowledge.SubjectMath, 3)
	var plan Plan
	for _, pl := range plans {
		if pl.ID == "comprehensive_review" {
			plan = pl
		}
	}
	if len(plan.Points) == 0 || plan.Points[0].PointID != "g3_05" {
		t.Fatalf("first review point = %+v, want g3_05", plan.Points)
	}
}

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/profile"
)

// Signal thresholds.
const (
	weakMinAttempts = 2
	weakMaxAccuracy = 60.0

	// staleAfter is how long a point goes unpracticed before it counts
	// as stale.
	staleAfter = 7 * 24 * time.Hour

	// rootCauseFromTopWeak bounds how many weak points feed the
	// root-cause search.
	rootCauseFromTopWeak = 5

	// comprehensiveCap bounds how many points the review plan covers.
	comprehensiveCap = 10
)

// repWindows are the forgetting-curve checkpoints, in days since last
// practice. A point is due when within one day of a checkpoint.
var repWindows = []int{7, 15, 30}

// Recommender builds daily practice plans from an injected graph.
type Recommender struct {
	graph *kgraph.Graph
	now   func() time.Time
}

func New(graph *kgraph.Graph) *Recommender {
	return &Recommender{graph: graph, now: time.Now}
}

// signals is everything DailyPlans reads from the profile.
type signals struct {
	weak       []weakPoint
	stale      []knowledge.KnowledgePoint
	due        []knowledge.KnowledgePoint
	rootCauses []knowledge.KnowledgePoint
}

type weakPoint struct {
	point    knowledge.KnowledgePoint
	accuracy float64
}

// DailyPlans produces the ranked candidate plans for one subject and
// target grade. Weakness-breakthrough and remedial plans appear only
// when the corresponding signal exists; comprehensive-review and
// quick-practice are always present.
func (r *Recommender) DailyPlans(p *profile.Profile, subject knowledge.Subject, targetGrade int) []Plan {
	sig := r.collect(p, subject, targetGrade)

	var plans []Plan
	if len(sig.weak) > 0 {
		plans = append(plans, r.weaknessPlan(sig.weak))
	}
	plans = append(plans, r.comprehensivePlan(sig, subject, targetGrade))
	plans = append(plans, r.quickPlan())
	if len(sig.rootCauses) > 0 {
		plans = append(plans, r.remedialPlan(sig.rootCauses[0]))
	}
	return plans
}

// collect derives all plan inputs from the profile in one pass.
func (r *Recommender) collect(p *profile.Profile, subject knowledge.Subject, targetGrade int) signals {
	now := r.now()
	var sig signals

	for id, ps := range p.Stats {
		pt, ok := r.graph.Point(id)
		if !ok || pt.Subject != subject || pt.Grade > targetGrade {
			continue
		}

		if ps.Total >= weakMinAttempts && ps.Accuracy() < weakMaxAccuracy {
			sig.weak = append(sig.weak, weakPoint{point: pt, accuracy: ps.Accuracy()})
		}
		if ps.LastPractice != nil {
			age := now.Sub(*ps.LastPractice)
			if age > staleAfter {
				sig.stale = append(sig.stale, pt)
			}
			if dueForReview(age) {
				sig.due = append(sig.due, pt)
			}
		}
	}

	sort.SliceStable(sig.weak, func(i, j int) bool {
		if sig.weak[i].accuracy != sig.weak[j].accuracy {
			return sig.weak[i].accuracy < sig.weak[j].accuracy
		}
		return sig.weak[i].point.ID < sig.weak[j].point.ID
	})
	sortByID(sig.stale)
	sortByID(sig.due)

	mastered := p.MasteredIDs()
	seen := make(map[string]bool)
	for i, w := range sig.weak {
		if i == rootCauseFromTopWeak {
			break
		}
		cause, ok := r.graph.RootCause(w.point.ID, mastered)
		if !ok || seen[cause.ID] {
			continue
		}
		seen[cause.ID] = true
		sig.rootCauses = append(sig.rootCauses, cause)
	}
	return sig
}

// dueForReview reports whether the time since last practice lands
// within one day of a repetition checkpoint.
func dueForReview(age time.Duration) bool {
	days := age.Hours() / 24
	for _, w := range repWindows {
		if days >= float64(w-1) && days <= float64(w+1) {
			return true
		}
	}
	return false
}

func sortByID(points []knowledge.KnowledgePoint) {
	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })
}

func (r *Recommender) weaknessPlan(weak []weakPoint) Plan {
	top := weak
	if len(top) > 3 {
		top = top[:3]
	}
	plan := Plan{
		ID:               "weakness_breakthrough",
		Name:             "弱项突破",
		Description:      "集中攻克近期正确率最低的知识点",
		EstimatedMinutes: 20,
		Difficulty:       "中等",
		Goal:             "把最薄弱的知识点正确率提上来",
		Priority:         PriorityHigh,
	}
	for _, w := range top {
		plan.Points = append(plan.Points, PlanPoint{
			PointID:   w.point.ID,
			Name:      w.point.Name,
			Questions: 5,
		})
		plan.TotalQuestions += 5
	}
	return plan
}

// comprehensivePlan covers up to 10 points of the grade, preferring
// spaced-repetition-due points, then stale ones, then the rest.
func (r *Recommender) comprehensivePlan(sig signals, subject knowledge.Subject, targetGrade int) Plan {
	var picked []knowledge.KnowledgePoint
	seen := make(map[string]bool)
	take := func(points []knowledge.KnowledgePoint) {
		for _, pt := range points {
			if len(picked) == comprehensiveCap || seen[pt.ID] {
				continue
			}
			seen[pt.ID] = true
			picked = append(picked, pt)
		}
	}
	take(sig.due)
	take(sig.stale)
	take(r.graph.PointsByGradeSubject(subject, targetGrade))

	plan := Plan{
		ID:               "comprehensive_review",
		Name:             "综合复习",
		Description:      fmt.Sprintf("覆盖%d年级的主要知识点，巩固整体基础", targetGrade),
		TotalQuestions:   20,
		EstimatedMinutes: 30,
		Difficulty:       "中等",
		Goal:             "保持各知识点的熟练度",
		Priority:         PriorityMedium,
	}
	if len(picked) > 0 {
		per := plan.TotalQuestions / len(picked)
		extra := plan.TotalQuestions % len(picked)
		for i, pt := range picked {
			q := per
			if i < extra {
				q++
			}
			plan.Points = append(plan.Points, PlanPoint{PointID: pt.ID, Name: pt.Name, Questions: q})
		}
	}
	return plan
}

func (r *Recommender) quickPlan() Plan {
	return Plan{
		ID:               "quick_practice",
		Name:             "快速练习",
		Description:      "10道混合题目，随时随地练一组",
		TotalQuestions:   10,
		EstimatedMinutes: 10,
		Difficulty:       "简单",
		Goal:             "保持每日练习的习惯",
		Priority:         PriorityLow,
	}
}

func (r *Recommender) remedialPlan(cause knowledge.KnowledgePoint) Plan {
	return Plan{
		ID:               "remedial",
		Name:             "基础补习",
		Description:      fmt.Sprintf("回头补牢「%s」（%d年级），它是当前薄弱点的根源", cause.Name, cause.Grade),
		Points:           []PlanPoint{{PointID: cause.ID, Name: cause.Name, Questions: 15}},
		TotalQuestions:   15,
		EstimatedMinutes: 20,
		Difficulty:       "基础",
		Goal:             "打牢前置基础后再回到当前年级内容",
		Priority:         PriorityHigh,
		Remedial:         true,
	}
}

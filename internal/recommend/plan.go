// Package recommend turns a student's profile into ranked daily
// practice plans, combining weak-point, staleness, and spaced-repetition
// signals against the knowledge graph.
package recommend

// Priority labels how urgent a plan is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PlanPoint is one knowledge point inside a plan with its question
// allocation.
type PlanPoint struct {
	PointID   string `json:"point_id"`
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

// Plan is one candidate daily practice plan.
type Plan struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Points           []PlanPoint `json:"points"`
	TotalQuestions   int         `json:"total_questions"`
	EstimatedMinutes int         `json:"estimated_minutes"`
	Difficulty       string      `json:"difficulty"`
	Goal             string      `json:"goal"`
	Priority         Priority    `json:"priority"`

	// Remedial marks a plan that targets a prerequisite below the
	// student's current grade rather than ordinary weak-point practice.
	Remedial bool `json:"remedial"`
}

// DefaultPlan picks the auto-selected plan: the first in emission
// order, so weakness-breakthrough wins when present.
func DefaultPlan(plans []Plan) (Plan, bool) {
	if len(plans) == 0 {
		return Plan{}, false
	}
	return plans[0], true
}

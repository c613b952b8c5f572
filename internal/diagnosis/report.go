// Package diagnosis classifies a student's mastery against the knowledge
// graph, estimates their effective grade level, and traces weak points
// back to foundational prerequisite gaps.
package diagnosis

import (
	"time"

	"github.com/wliu/gradewise/internal/knowledge"
)

// Priority labels a recommendation's urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// WeakPoint is one knowledge point the student consistently misses.
type WeakPoint struct {
	PointID  string  `json:"point_id"`
	Name     string  `json:"name"`
	Grade    int     `json:"grade"`
	Accuracy float64 `json:"accuracy"`
	Attempts int     `json:"attempts"`
}

// RootCause is the most foundational unmastered prerequisite explaining
// one or more weak points.
type RootCause struct {
	PointID string `json:"point_id"`
	Name    string `json:"name"`
	Grade   int    `json:"grade"`
	// ForPointID is the weak point whose closure surfaced this cause.
	ForPointID string `json:"for_point_id"`
}

// Recommendation is one prioritized next step for the student.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Action   string   `json:"action"`
	Reason   string   `json:"reason"`
}

// Report is the full outcome of diagnosing one student for one
// subject and target grade.
type Report struct {
	Student     string            `json:"student"`
	Subject     knowledge.Subject `json:"subject"`
	TargetGrade int               `json:"target_grade"`

	// ActualGradeLevel is a heuristic estimate of the grade the student
	// has actually consolidated. Half-grades mark partial mastery.
	ActualGradeLevel float64 `json:"actual_grade_level"`

	MasteredCount   int              `json:"mastered_count"`
	WeakPoints      []WeakPoint      `json:"weak_points"`
	RootCauses      []RootCause      `json:"root_causes"`
	Recommendations []Recommendation `json:"recommendations"`

	// InsufficientData is set when the student has no recorded practice;
	// the rest of the report carries no signal in that case.
	InsufficientData bool `json:"insufficient_data"`

	GeneratedAt time.Time `json:"generated_at"`
}

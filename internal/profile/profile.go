// Package profile derives per-student practice statistics from the
// append-only event log, with snapshot-accelerated loading.
package profile

import (
	"time"
)

// Mastery thresholds shared by diagnosis and recommendation.
const (
	MasteryMinAttempts = 3
	MasteryMinAccuracy = 80.0
)

// PointStats aggregates one student's history on one knowledge point.
type PointStats struct {
	PointID      string
	PointName    string
	Total        int
	Mistakes     int
	LastPractice *time.Time
}

// Accuracy returns the percentage of correct answers on the 0-100 scale.
// A point with no attempts reports 0.
func (s *PointStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Total-s.Mistakes) / float64(s.Total) * 100
}

// Mastered reports whether this point meets the mastery bar:
// at least 3 attempts with at least 80% accuracy.
func (s *PointStats) Mastered() bool {
	return s.Total >= MasteryMinAttempts && s.Accuracy() >= MasteryMinAccuracy
}

// Profile is a student's full aggregated practice state, keyed by
// knowledge point ID.
type Profile struct {
	Student        string
	Stats          map[string]*PointStats
	TotalQuestions int
	TotalMistakes  int
}

// Empty reports whether the student has no recorded practice at all.
func (p *Profile) Empty() bool {
	return p.TotalQuestions == 0
}

// Point returns the stats for a point ID, or nil if never practiced.
func (p *Profile) Point(id string) *PointStats {
	return p.Stats[id]
}

// MasteredIDs returns the set of point IDs the student has mastered.
func (p *Profile) MasteredIDs() map[string]bool {
	out := make(map[string]bool)
	for id, s := range p.Stats {
		if s.Mastered() {
			out[id] = true
		}
	}
	return out
}

// OverallAccuracy returns the student's accuracy across all points,
// on the 0-100 scale.
func (p *Profile) OverallAccuracy() float64 {
	if p.TotalQuestions == 0 {
		return 0
	}
	return float64(p.TotalQuestions-p.TotalMistakes) / float64(p.TotalQuestions) * 100
}

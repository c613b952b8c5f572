package diagnosis

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/profile"
)

// ErrNoGradeConfig is returned when the corpus has no knowledge points
// for the requested subject and grade.
var ErrNoGradeConfig = errors.New("no knowledge configuration for this subject and grade")

// Classification thresholds.
const (
	weakMinAttempts = 3
	weakMaxAccuracy = 60.0

	// rootCauseCap bounds how many distinct root causes a report lists.
	rootCauseCap = 10

	// Grade-level estimation credit thresholds.
	fullCreditRate = 0.8
	halfCreditRate = 0.5
)

// Service runs diagnoses against an injected knowledge graph.
type Service struct {
	graph *kgraph.Graph
}

func NewService(graph *kgraph.Graph) *Service {
	return &Service{graph: graph}
}

// Diagnose classifies the student's mastery for one subject at a target
// grade, estimates their effective grade level, and traces each weak
// point to its most foundational unmastered prerequisite.
func (s *Service) Diagnose(p *profile.Profile, subject knowledge.Subject, targetGrade int) (*Report, error) {
	gradePoints := s.graph.PointsByGradeSubject(subject, targetGrade)
	if len(gradePoints) == 0 {
		return nil, fmt.Errorf("%w: %s grade %d", ErrNoGradeConfig, subject, targetGrade)
	}

	report := &Report{
		Student:     p.Student,
		Subject:     subject,
		TargetGrade: targetGrade,
		GeneratedAt: time.Now().UTC(),
	}
	if p.Empty() {
		report.InsufficientData = true
		return report, nil
	}

	mastered := p.MasteredIDs()
	report.MasteredCount = len(mastered)
	report.WeakPoints = s.weakPoints(p, subject, targetGrade)
	report.RootCauses = s.rootCauses(report.WeakPoints, mastered)
	report.ActualGradeLevel = s.estimateGradeLevel(mastered, subject, targetGrade)
	report.Recommendations = s.recommend(report)
	return report, nil
}

// weakPoints collects points at or below targetGrade with enough
// attempts and poor accuracy, worst first.
func (s *Service) weakPoints(p *profile.Profile, subject knowledge.Subject, targetGrade int) []WeakPoint {
	var weak []WeakPoint
	for id, ps := range p.Stats {
		pt, ok := s.graph.Point(id)
		if !ok || pt.Subject != subject || pt.Grade > targetGrade {
			continue
		}
		if ps.Total < weakMinAttempts || ps.Accuracy() >= weakMaxAccuracy {
			continue
		}
		weak = append(weak, WeakPoint{
			PointID:  pt.ID,
			Name:     pt.Name,
			Grade:    pt.Grade,
			Accuracy: ps.Accuracy(),
			Attempts: ps.Total,
		})
	}
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].Accuracy != weak[j].Accuracy {
			return weak[i].Accuracy < weak[j].Accuracy
		}
		return weak[i].PointID < weak[j].PointID
	})
	return weak
}

// rootCauses walks each weak point's prerequisite closure and keeps the
// first unmastered entry, deduplicated in first-seen order.
func (s *Service) rootCauses(weak []WeakPoint, mastered map[string]bool) []RootCause {
	seen := make(map[string]bool)
	var causes []RootCause
	for _, w := range weak {
		cause, ok := s.graph.RootCause(w.PointID, mastered)
		if !ok || seen[cause.ID] {
			continue
		}
		seen[cause.ID] = true
		causes = append(causes, RootCause{
			PointID:    cause.ID,
			Name:       cause.Name,
			Grade:      cause.Grade,
			ForPointID: w.PointID,
		})
		if len(causes) == rootCauseCap {
			break
		}
	}
	return causes
}

// estimateGradeLevel walks grades 1..targetGrade in order, crediting a
// full grade at >=80% mastery and a half grade at >=50%. Anything less
// than full credit stops the walk: higher grades cannot be claimed on
// a shaky foundation.
func (s *Service) estimateGradeLevel(mastered map[string]bool, subject knowledge.Subject, targetGrade int) float64 {
	var level float64
	for grade := 1; grade <= targetGrade; grade++ {
		points := s.graph.PointsByGradeSubject(subject, grade)
		if len(points) == 0 {
			continue
		}
		count := 0
		for _, pt := range points {
			if mastered[pt.ID] {
				count++
			}
		}
		rate := float64(count) / float64(len(points))
		switch {
		case rate >= fullCreditRate:
			level = float64(grade)
		case rate >= halfCreditRate:
			return float64(grade) - 0.5
		default:
			return level
		}
	}
	return level
}

// recommend emits prioritized next steps from the report's findings.
func (s *Service) recommend(r *Report) []Recommendation {
	var recs []Recommendation
	if len(r.RootCauses) > 0 {
		rc := r.RootCauses[0]
		recs = append(recs, Recommendation{
			Priority: PriorityHigh,
			Action:   fmt.Sprintf("优先补习基础知识点「%s」（%d年级）", rc.Name, rc.Grade),
			Reason:   "该知识点是薄弱点的共同基础，先补牢它事半功倍",
		})
	}
	if r.ActualGradeLevel < float64(r.TargetGrade)-0.5 {
		backTo := int(r.ActualGradeLevel) + 1
		recs = append(recs, Recommendation{
			Priority: PriorityHigh,
			Action:   fmt.Sprintf("建议回到%d年级内容系统复习", backTo),
			Reason:   fmt.Sprintf("当前掌握水平约为%.1f年级，直接学%d年级内容会比较吃力", r.ActualGradeLevel, r.TargetGrade),
		})
	}
	if len(r.WeakPoints) > 0 {
		w := r.WeakPoints[0]
		recs = append(recs, Recommendation{
			Priority: PriorityMedium,
			Action:   fmt.Sprintf("针对性练习「%s」", w.Name),
			Reason:   fmt.Sprintf("近期正确率仅%.0f%%（共%d题）", w.Accuracy, w.Attempts),
		})
	}
	return recs
}

package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/store"
)

// snapshotEvery controls how many new events accumulate before Load
// writes a fresh snapshot.
const snapshotEvery = 50

// snapshotKeep is how many snapshots per student survive pruning.
const snapshotKeep = 3

// Service loads and updates student profiles on top of the event store.
type Service struct {
	events store.EventRepo
	snaps  store.SnapshotRepo
}

func NewService(events store.EventRepo, snaps store.SnapshotRepo) *Service {
	return &Service{events: events, snaps: snaps}
}

// Load rebuilds a student's profile. It starts from the latest snapshot
// when one exists and folds only the events recorded since, writing a
// new snapshot when enough events have accumulated.
func (s *Service) Load(ctx context.Context, student string) (*Profile, error) {
	p := &Profile{Student: student, Stats: make(map[string]*PointStats)}

	var since int64
	snap, err := s.snaps.Latest(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		since = snap.Sequence
		p.TotalQuestions = snap.Data.TotalQuestions
		p.TotalMistakes = snap.Data.TotalMistakes
		for id, d := range snap.Data.Stats {
			p.Stats[id] = &PointStats{
				PointID:      d.PointID,
				PointName:    d.PointName,
				Total:        d.Total,
				Mistakes:     d.Mistakes,
				LastPractice: d.LastPractice,
			}
		}
	}

	delta, err := s.events.StudentPointStats(ctx, student, since)
	if err != nil {
		return nil, fmt.Errorf("fold practice events: %w", err)
	}
	newEvents := 0
	for id, d := range delta {
		ps := p.Stats[id]
		if ps == nil {
			ps = &PointStats{PointID: d.PointID, PointName: d.PointName}
			p.Stats[id] = ps
		}
		ps.Total += d.Total
		ps.Mistakes += d.Mistakes
		if d.LastPractice != nil {
			ps.LastPractice = d.LastPractice
		}
		p.TotalQuestions += d.Total
		p.TotalMistakes += d.Mistakes
		newEvents += d.Total
	}

	if newEvents >= snapshotEvery {
		if err := s.checkpoint(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// checkpoint persists the profile as a snapshot and prunes old ones.
func (s *Service) checkpoint(ctx context.Context, p *Profile) error {
	seq, err := s.events.LastSequence(ctx, p.Student)
	if err != nil {
		return fmt.Errorf("resolve snapshot sequence: %w", err)
	}

	data := store.SnapshotData{
		Version:        1,
		Student:        p.Student,
		TotalQuestions: p.TotalQuestions,
		TotalMistakes:  p.TotalMistakes,
		Stats:          make(map[string]*store.PointStatsData, len(p.Stats)),
	}
	for id, ps := range p.Stats {
		data.Stats[id] = &store.PointStatsData{
			PointID:      ps.PointID,
			PointName:    ps.PointName,
			Total:        ps.Total,
			Mistakes:     ps.Mistakes,
			LastPractice: ps.LastPractice,
		}
	}

	snap := &store.Snapshot{
		Student:   p.Student,
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	if err := s.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := s.snaps.Prune(ctx, p.Student, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Answer is one graded question inside a practice session.
type Answer struct {
	Point        *knowledge.KnowledgePoint
	QuestionType string
	Correct      bool
}

// RecordSession appends one event per answered question under a fresh
// session ID and returns that ID.
func (s *Service) RecordSession(ctx context.Context, student string, answers []Answer) (string, error) {
	sessionID := uuid.NewString()
	for _, a := range answers {
		data := store.PracticeEventData{
			Student:      student,
			SessionID:    sessionID,
			Subject:      string(a.Point.Subject),
			Grade:        a.Point.Grade,
			PointID:      a.Point.ID,
			PointName:    a.Point.Name,
			QuestionType: a.QuestionType,
			Difficulty:   int(a.Point.Difficulty),
			Correct:      a.Correct,
		}
		if err := s.events.AppendPracticeEvent(ctx, data); err != nil {
			return "", fmt.Errorf("record answer for %s: %w", a.Point.ID, err)
		}
	}
	return sessionID, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/wliu/gradewise/ent"
	"github.com/wliu/gradewise/ent/practiceevent"
)

// eventRepo is the ent-backed EventRepo.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPracticeEvent(ctx context.Context, data PracticeEventData) error {
	seq, err := r.seq.Next()
	if err != nil {
		return err
	}

	create := r.client.PracticeEvent.Create().
		SetSequence(seq).
		SetStudent(data.Student).
		SetSessionID(data.SessionID).
		SetSubject(data.Subject).
		SetGrade(data.Grade).
		SetPointID(data.PointID).
		SetPointName(data.PointName).
		SetCorrect(data.Correct)
	if data.QuestionType != "" {
		create.SetQuestionType(data.QuestionType)
	}
	if data.Difficulty > 0 {
		create.SetDifficulty(data.Difficulty)
	}
	if !data.Timestamp.IsZero() {
		create.SetTimestamp(data.Timestamp)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) StudentPointStats(ctx context.Context, student string, afterSeq int64) (map[string]*PointStatsData, error) {
	events, err := r.client.PracticeEvent.Query().
		Where(practiceevent.Student(student), practiceevent.SequenceGT(afterSeq)).
		Order(ent.Asc(practiceevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice events: %w", err)
	}

	stats := make(map[string]*PointStatsData)
	for _, ev := range events {
		ps := stats[ev.PointID]
		if ps == nil {
			ps = &PointStatsData{PointID: ev.PointID, PointName: ev.PointName}
			stats[ev.PointID] = ps
		}
		ps.Total++
		if !ev.Correct {
			ps.Mistakes++
		}
		ts := ev.Timestamp
		ps.LastPractice = &ts
	}
	return stats, nil
}

func (r *eventRepo) LastSequence(ctx context.Context, student string) (int64, error) {
	last, err := r.client.PracticeEvent.Query().
		Where(practiceevent.Student(student)).
		Order(ent.Desc(practiceevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query last sequence: %w", err)
	}
	return last.Sequence, nil
}

package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/store"
)

// NameResolver maps a knowledge point display name to its point.
// Satisfied by kgraph.Graph.
type NameResolver interface {
	FindByName(name string, subject knowledge.Subject) (knowledge.KnowledgePoint, bool)
}

// legacyRecord mirrors the old profile format, which keyed stats by
// display name instead of point ID.
type legacyRecord struct {
	Total        int     `json:"total"`
	Mistakes     int     `json:"mistakes"`
	AccuracyRate float64 `json:"accuracy_rate"`
	LastPractice *string `json:"last_practice"`
}

// ImportResult reports the outcome of a legacy profile import.
type ImportResult struct {
	Imported int      // points imported
	Events   int      // synthetic events appended
	Skipped  []string // names not resolvable against the graph
}

// ImportLegacy reads an old name-keyed profile JSON file, resolves the
// names to point IDs against the graph, and replays the stats into the
// event store as synthetic events under a single import session. Names
// with no matching point are skipped and reported, not fatal.
func (s *Service) ImportLegacy(ctx context.Context, student, path string, subject knowledge.Subject, resolver NameResolver) (*ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy profile: %w", err)
	}

	var records map[string]legacyRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse legacy profile: %w", err)
	}

	// Deterministic import order.
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	sessionID := uuid.NewString()
	res := &ImportResult{}
	for _, name := range names {
		rec := records[name]
		pt, ok := resolver.FindByName(name, subject)
		if !ok {
			res.Skipped = append(res.Skipped, name)
			continue
		}

		var ts time.Time
		if rec.LastPractice != nil {
			ts, err = time.Parse(time.RFC3339, *rec.LastPractice)
			if err != nil {
				return nil, fmt.Errorf("point %q: bad last_practice: %w", name, err)
			}
		}

		for i := 0; i < rec.Total; i++ {
			data := store.PracticeEventData{
				Student:    student,
				SessionID:  sessionID,
				Subject:    string(pt.Subject),
				Grade:      pt.Grade,
				PointID:    pt.ID,
				PointName:  pt.Name,
				Difficulty: int(pt.Difficulty),
				Correct:    i >= rec.Mistakes,
				Timestamp:  ts,
			}
			if err := s.events.AppendPracticeEvent(ctx, data); err != nil {
				return nil, fmt.Errorf("replay %q: %w", name, err)
			}
			res.Events++
		}
		res.Imported++
	}
	return res, nil
}

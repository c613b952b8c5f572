package profile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/store"
)

// fakeEventRepo keeps appended events in memory.
type fakeEventRepo struct {
	events []store.PracticeEventData
	seqs   []int64
}

func (f *fakeEventRepo) AppendPracticeEvent(_ context.Context, data store.PracticeEventData) error {
	f.events = append(f.events, data)
	f.seqs = append(f.seqs, int64(len(f.events)))
	return nil
}

func (f *fakeEventRepo) StudentPointStats(_ context.Context, student string, afterSeq int64) (map[string]*store.PointStatsData, error) {
	stats := make(map[string]*store.PointStatsData)
	for i, ev := range f.events {
		if ev.Student != student || f.seqs[i] <= afterSeq {
			continue
		}
		ps := stats[ev.PointID]
		if ps == nil {
			ps = &store.PointStatsData{PointID: ev.PointID, PointName: ev.PointName}
			stats[ev.PointID] = ps
		}
		ps.Total++
		if !ev.Correct {
			ps.Mistakes++
		}
		ts := ev.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		ps.LastPractice = &ts
	}
	return stats, nil
}

func (f *fakeEventRepo) LastSequence(_ context.Context, student string) (int64, error) {
	var last int64
	for i, ev := range f.events {
		if ev.Student == student {
			last = f.seqs[i]
		}
	}
	return last, nil
}

type fakeSnapshotRepo struct {
	snaps []*store.Snapshot
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.snaps = append(f.snaps, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context, student string) (*store.Snapshot, error) {
	var best *store.Snapshot
	for _, s := range f.snaps {
		if s.Student != student {
			continue
		}
		if best == nil || s.Sequence > best.Sequence {
			best = s
		}
	}
	return best, nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, student string, keep int) error {
	var kept, mine []*store.Snapshot
	for _, s := range f.snaps {
		if s.Student == student {
			mine = append(mine, s)
		} else {
			kept = append(kept, s)
		}
	}
	if len(mine) > keep {
		mine = mine[len(mine)-keep:]
	}
	f.snaps = append(kept, mine...)
	return nil
}

func testPoint(id, name string, grade int) *knowledge.KnowledgePoint {
	return &knowledge.KnowledgePoint{
		ID:         id,
		Subject:    knowledge.SubjectMath,
		Grade:      grade,
		Name:       name,
		Difficulty: knowledge.Medium,
	}
}

func TestRecordSessionAndLoad(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	add := testPoint("math_3_add", "三位数加法", 3)
	sub := testPoint("math_3_sub", "三位数减法", 3)

	answers := []Answer{
		{Point: add, QuestionType: "计算题", Correct: true},
		{Point: add, QuestionType: "计算题", Correct: true},
		{Point: add, QuestionType: "计算题", Correct: false},
		{Point: sub, QuestionType: "计算题", Correct: false},
	}
	sessionID, err := svc.RecordSession(ctx, "amy", answers)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a session ID")
	}
	for _, ev := range events.events {
		if ev.SessionID != sessionID {
			t.Errorf("event session %q, want %q", ev.SessionID, sessionID)
		}
	}

	p, err := svc.Load(ctx, "amy")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.TotalQuestions != 4 || p.TotalMistakes != 2 {
		t.Errorf("totals = %d/%d, want 4/2", p.TotalQuestions, p.TotalMistakes)
	}
	ps := p.Point("math_3_add")
	if ps == nil {
		t.Fatal("missing stats for math_3_add")
	}
	if ps.Total != 3 || ps.Mistakes != 1 {
		t.Errorf("add stats = %d/%d, want 3/1", ps.Total, ps.Mistakes)
	}
	if got := ps.Accuracy(); got < 66.5 || got > 66.8 {
		t.Errorf("accuracy = %.2f, want ~66.67", got)
	}
}

func TestLoadUnknownStudentIsEmpty(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeSnapshotRepo{})

	p, err := svc.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.Empty() {
		t.Error("expected empty profile")
	}
	if n := len(p.MasteredIDs()); n != 0 {
		t.Errorf("mastered = %d, want 0", n)
	}
}

func TestMasteryThresholds(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		mistakes int
		want     bool
	}{
		{"perfect but too few attempts", 2, 0, false},
		{"exactly at the bar", 5, 1, true},
		{"three attempts all correct", 3, 0, true},
		{"below accuracy bar", 5, 2, false},
		{"never practiced", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &PointStats{Total: tt.total, Mistakes: tt.mistakes}
			if got := s.Mastered(); got != tt.want {
				t.Errorf("Mastered() = %v, want %v (accuracy %.1f)", got, tt.want, s.Accuracy())
			}
		})
	}
}

func TestLoadWritesSnapshotAfterThreshold(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	pt := testPoint("math_1_count", "数数", 1)
	var answers []Answer
	for i := 0; i < snapshotEvery; i++ {
		answers = append(answers, Answer{Point: pt, Correct: i%5 != 0})
	}
	if _, err := svc.RecordSession(ctx, "amy", answers); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	if _, err := svc.Load(ctx, "amy"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snaps.snaps) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snaps.snaps))
	}
	snap := snaps.snaps[0]
	if snap.Data.TotalQuestions != snapshotEvery {
		t.Errorf("snapshot total = %d, want %d", snap.Data.TotalQuestions, snapshotEvery)
	}

	// A reload should start from the snapshot and fold nothing new,
	// producing identical totals without another snapshot.
	p, err := svc.Load(ctx, "amy")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if p.TotalQuestions != snapshotEvery {
		t.Errorf("reloaded total = %d, want %d", p.TotalQuestions, snapshotEvery)
	}
	if len(snaps.snaps) != 1 {
		t.Errorf("snapshots after reload = %d, want 1", len(snaps.snaps))
	}
}

type mapResolver map[string]*knowledge.KnowledgePoint

func (m mapResolver) FindByName(name string, _ knowledge.Subject) (knowledge.KnowledgePoint, bool) {
	pt, ok := m[name]
	if !ok {
		return knowledge.KnowledgePoint{}, false
	}
	return *pt, true
}

func TestImportLegacy(t *testing.T) {
	events := &fakeEventRepo{}
	svc := NewService(events, &fakeSnapshotRepo{})
	ctx := context.Background()

	last := "2026-08-01T09:30:00Z"
	legacy := map[string]any{
		"三位数加法": map[string]any{
			"total": 5, "mistakes": 1, "accuracy_rate": 80.0, "last_practice": last,
		},
		"不存在的知识点": map[string]any{
			"total": 2, "mistakes": 2, "accuracy_rate": 0.0, "last_practice": nil,
		},
	}
	raw, err := json.Marshal(legacy)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := mapResolver{"三位数加法": testPoint("math_3_add", "三位数加法", 3)}
	res, err := svc.ImportLegacy(ctx, "amy", path, knowledge.SubjectMath, resolver)
	if err != nil {
		t.Fatalf("ImportLegacy: %v", err)
	}
	if res.Imported != 1 || res.Events != 5 {
		t.Errorf("imported %d points / %d events, want 1/5", res.Imported, res.Events)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != "不存在的知识点" {
		t.Errorf("skipped = %v", res.Skipped)
	}

	p, err := svc.Load(ctx, "amy")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ps := p.Point("math_3_add")
	if ps == nil {
		t.Fatal("imported point missing from profile")
	}
	if ps.Total != 5 || ps.Mistakes != 1 {
		t.Errorf("stats = %d/%d, want 5/1", ps.Total, ps.Mistakes)
	}
	want, _ := time.Parse(time.RFC3339, last)
	if ps.LastPractice == nil || !ps.LastPractice.Equal(want) {
		t.Errorf("last practice = %v, want %v", ps.LastPractice, want)
	}
}

package store

import (
	"context"
	"time"
)

// PracticeEventData captures one answered question for appending.
type PracticeEventData struct {
	Student      string
	SessionID    string
	Subject      string
	Grade        int
	PointID      string
	PointName    string
	QuestionType string
	Difficulty   int
	Correct      bool

	// Timestamp overrides the event time when non-zero. Used by the
	// legacy profile importer to preserve practice history.
	Timestamp time.Time
}

// PointStatsData is the per-point aggregate folded from practice events.
type PointStatsData struct {
	PointID      string     `json:"point_id"`
	PointName    string     `json:"point_name,omitempty"`
	Total        int        `json:"total"`
	Mistakes     int        `json:"mistakes"`
	LastPractice *time.Time `json:"last_practice,omitempty"`
}

// EventRepo provides append and aggregate access to practice events.
type EventRepo interface {
	// AppendPracticeEvent stores one answered question.
	AppendPracticeEvent(ctx context.Context, data PracticeEventData) error

	// StudentPointStats folds a student's practice events with sequence
	// greater than afterSeq into per-point aggregates keyed by point ID.
	// Pass 0 to fold the full history.
	StudentPointStats(ctx context.Context, student string, afterSeq int64) (map[string]*PointStatsData, error)

	// LastSequence returns the highest event sequence number seen for a
	// student, or 0 if the student has no events.
	LastSequence(ctx context.Context, student string) (int64, error)
}

// SnapshotData captures one student's aggregated profile.
type SnapshotData struct {
	Version        int                        `json:"version"`
	Student        string                     `json:"student"`
	TotalQuestions int                        `json:"total_questions"`
	TotalMistakes  int                        `json:"total_mistakes"`
	Stats          map[string]*PointStatsData `json:"stats"`
}

// Snapshot is a point-in-time capture of a student profile.
type Snapshot struct {
	ID        int
	Student   string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// LLMCallData records one round trip through the LLM boundary.
type LLMCallData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	Error        string
}

// LLMLogRepo is the append-only audit log for LLM calls.
type LLMLogRepo interface {
	AppendLLMCall(ctx context.Context, data LLMCallData) error
}

// SnapshotRepo manages student profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the student's most recent snapshot, or nil if none.
	Latest(ctx context.Context, student string) (*Snapshot, error)

	// Prune deletes all but the student's N most recent snapshots.
	Prune(ctx context.Context, student string, keep int) error
}

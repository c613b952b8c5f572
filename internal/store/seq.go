package store

import (
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out monotonically increasing sequence numbers
// shared across all event types. The counter lives in its own table so
// numbers survive restarts and stay globally ordered.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence table: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next atomically claims and returns the next sequence number.
func (c *sequenceCounter) Next() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var claimed int64
	err := c.db.QueryRow(
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&claimed)
	if err != nil {
		return 0, fmt.Errorf("claim sequence number: %w", err)
	}
	return claimed, nil
}

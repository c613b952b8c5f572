package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wliu/gradewise/ent"
	"github.com/wliu/gradewise/ent/snapshot"
)

// snapshotRepo is the ent-backed SnapshotRepo.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := toJSONMap(snap.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetStudent(snap.Student).
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, student string) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Where(snapshot.Student(student)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data SnapshotData
	if err := fromJSONMap(row.Data, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", row.ID, err)
	}

	return &Snapshot{
		ID:        row.ID,
		Student:   row.Student,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, student string, keep int) error {
	rows, err := r.client.Snapshot.Query().
		Where(snapshot.Student(student)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots to prune: %w", err)
	}

	for _, row := range rows {
		if err := r.client.Snapshot.DeleteOne(row).Exec(ctx); err != nil {
			return fmt.Errorf("delete snapshot %d: %w", row.ID, err)
		}
	}
	return nil
}

// toJSONMap converts a typed value to the map form ent stores as JSON.
func toJSONMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromJSONMap decodes a stored JSON map back into a typed value.
func fromJSONMap(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

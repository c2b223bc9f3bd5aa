package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one persisted serialization of the full roster state. The
// planner owns the document shape; the store treats it as an opaque JSON
// blob keyed by a monotonic revision.
type Snapshot struct {
	ID        uuid.UUID
	Revision  int64
	Timestamp time.Time
	Data      json.RawMessage
}

// SnapshotRepo manages roster state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the snapshot with the highest revision, or nil if
	// none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot.
	Clear(ctx context.Context) error
}

package store

import (
	"context"
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// Stats is the cheap fingerprint input for cache invalidation: the
// total record count plus the most recent record's timestamp. Any
// append changes at least one of the two.
type Stats struct {
	Count  int
	Latest time.Time
}

// ResultRepo provides append and snapshot-read access to the result
// log. The log is append-only: records are never updated or deleted
// individually, only bulk-cleared.
type ResultRepo interface {
	// Append stores a record unless it duplicates an existing one.
	// Duplicates are detected by per-game puzzle number, or by
	// same-calendar-day-per-game when neither record carries one.
	// Returns false when the record was dropped as a duplicate.
	Append(ctx context.Context, rec results.Record) (bool, error)

	// AllRecords returns an immutable snapshot of the full log in
	// sequence order.
	AllRecords(ctx context.Context) ([]results.Record, error)

	// Stats returns the cache fingerprint inputs.
	Stats(ctx context.Context) (Stats, error)

	// Clear removes every record. Used by reset only.
	Clear(ctx context.Context) error
}

// StreakStateData is the persisted form of one game's streak state.
type StreakStateData struct {
	GameID      string    `json:"gameId"`
	GameName    string    `json:"gameName"`
	Current     int       `json:"current"`
	Longest     int       `json:"longest"`
	Played      int       `json:"played"`
	Completed   int       `json:"completed"`
	LastPlayed  time.Time `json:"lastPlayed"`
	StreakStart time.Time `json:"streakStart"`
}

// SnapshotData captures all per-game streak states at a point in time.
type SnapshotData struct {
	Version int                        `json:"version"`
	Streaks map[string]StreakStateData `json:"streaks"`
}

// Snapshot represents a point-in-time capture of streak state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages streak-state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

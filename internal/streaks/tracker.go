package streaks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dchen/streaklog/internal/results"
	"github.com/dchen/streaklog/internal/store"
)

// snapshotsKept bounds the snapshot history retained after pruning.
const snapshotsKept = 10

// Tracker owns the single-writer ingest path: each record is appended
// to the store and folded into streak state in the same synchronous
// step, so no concurrent-append races are possible. Streak state is
// snapshotted after every accepted append and can always be rebuilt by
// replaying the log.
type Tracker struct {
	mu    sync.Mutex
	repo  store.ResultRepo
	snaps store.SnapshotRepo
	log   zerolog.Logger

	states Set
}

// NewTracker creates a tracker over the given repositories.
func NewTracker(repo store.ResultRepo, snaps store.SnapshotRepo, log zerolog.Logger) *Tracker {
	return &Tracker{
		repo:   repo,
		snaps:  snaps,
		log:    log,
		states: make(Set),
	}
}

// Load restores streak state. The latest snapshot is trusted only when
// its play totals match the log; any divergence (migration, manual
// edits, crash between append and snapshot) falls back to a full
// replay, which is the source of truth.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.repo.AllRecords(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	snap, err := t.snaps.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		restored := fromSnapshotData(snap.Data)
		if totalPlayed(restored) == len(records) {
			t.states = restored
			return nil
		}
		t.log.Warn().
			Int("snapshotPlays", totalPlayed(restored)).
			Int("logRecords", len(records)).
			Msg("streak snapshot diverged from log, rebuilding")
	}

	t.states = Rebuild(records)
	return t.saveSnapshotLocked(ctx, len(records))
}

// Record appends a parsed record and updates streak state in the same
// step. Returns false when the store dropped the record as a duplicate.
func (t *Tracker) Record(ctx context.Context, rec results.Record) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	appended, err := t.repo.Append(ctx, rec)
	if err != nil {
		return false, err
	}
	if !appended {
		return false, nil
	}

	t.states.Apply(rec)
	if err := t.saveSnapshotLocked(ctx, totalPlayed(t.states)); err != nil {
		// The log row is durable; the snapshot will be repaired on the
		// next Load.
		t.log.Warn().Err(err).Msg("streak snapshot save failed")
	}
	return true, nil
}

// Rebuild discards in-memory and snapshotted state and replays the
// full log. Used by the repair command.
func (t *Tracker) Rebuild(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.repo.AllRecords(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	t.states = Rebuild(records)
	return t.saveSnapshotLocked(ctx, len(records))
}

// States returns a deep copy of the current per-game streak states.
func (t *Tracker) States() Set {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states.Clone()
}

func (t *Tracker) saveSnapshotLocked(ctx context.Context, sequence int) error {
	snap := &store.Snapshot{
		Sequence:  int64(sequence),
		Timestamp: time.Now(),
		Data:      toSnapshotData(t.states),
	}
	if err := t.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save streak snapshot: %w", err)
	}
	if err := t.snaps.Prune(ctx, snapshotsKept); err != nil {
		return fmt.Errorf("prune streak snapshots: %w", err)
	}
	return nil
}

func totalPlayed(set Set) int {
	total := 0
	for _, st := range set {
		total += st.Played
	}
	return total
}

// toSnapshotData converts streak states to their persisted form.
func toSnapshotData(set Set) store.SnapshotData {
	data := store.SnapshotData{
		Version: 1,
		Streaks: make(map[string]store.StreakStateData, len(set)),
	}
	for id, st := range set {
		data.Streaks[id] = store.StreakStateData{
			GameID:      st.GameID,
			GameName:    st.GameName,
			Current:     st.Current,
			Longest:     st.Longest,
			Played:      st.Played,
			Completed:   st.Completed,
			LastPlayed:  st.LastPlayed,
			StreakStart: st.StreakStart,
		}
	}
	return data
}

// fromSnapshotData restores streak states from their persisted form.
func fromSnapshotData(data store.SnapshotData) Set {
	set := make(Set, len(data.Streaks))
	for id, d := range data.Streaks {
		set[id] = &State{
			GameID:      d.GameID,
			GameName:    d.GameName,
			Current:     d.Current,
			Longest:     d.Longest,
			Played:      d.Played,
			Completed:   d.Completed,
			LastPlayed:  d.LastPlayed,
			StreakStart: d.StreakStart,
		}
	}
	return set
}

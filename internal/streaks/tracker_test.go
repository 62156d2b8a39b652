package streaks

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dchen/streaklog/internal/results"
	"github.com/dchen/streaklog/internal/store"
)

// mockResultRepo implements store.ResultRepo in memory with the same
// dedup rules as the real repository.
type mockResultRepo struct {
	records []results.Record
}

func (m *mockResultRepo) Append(_ context.Context, rec results.Record) (bool, error) {
	puzzle, hasPuzzle := rec.PuzzleNumber()
	for _, e := range m.records {
		if e.GameID != rec.GameID {
			continue
		}
		if hasPuzzle {
			if e.Extras[results.ExtraPuzzleNumber] == puzzle {
				return false, nil
			}
			continue
		}
		if e.Day().Equal(rec.Day()) {
			return false, nil
		}
	}
	m.records = append(m.records, rec)
	return true, nil
}

func (m *mockResultRepo) AllRecords(_ context.Context) ([]results.Record, error) {
	out := make([]results.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockResultRepo) Stats(_ context.Context) (store.Stats, error) {
	s := store.Stats{Count: len(m.records)}
	for _, r := range m.records {
		if r.Timestamp.After(s.Latest) {
			s.Latest = r.Timestamp
		}
	}
	return s, nil
}

func (m *mockResultRepo) Clear(_ context.Context) error {
	m.records = nil
	return nil
}

// mockSnapshotRepo implements store.SnapshotRepo in memory.
type mockSnapshotRepo struct {
	snaps []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

func newTestTracker() (*Tracker, *mockResultRepo, *mockSnapshotRepo) {
	repo := &mockResultRepo{}
	snaps := &mockSnapshotRepo{}
	return NewTracker(repo, snaps, zerolog.Nop()), repo, snaps
}

func TestTrackerRecordUpdatesState(t *testing.T) {
	ctx := context.Background()
	tracker, _, snaps := newTestTracker()

	r := rec("wordle", day(1), true)
	recorded, err := tracker.Record(ctx, r)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !recorded {
		t.Fatal("Record returned false for a fresh result")
	}

	states := tracker.States()
	if states["wordle"] == nil || states["wordle"].Current != 1 {
		t.Errorf("states = %+v", states)
	}
	if len(snaps.snaps) == 0 {
		t.Error("no snapshot saved after append")
	}
}

func TestTrackerRecordDuplicateSkipped(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker()

	r := rec("wordle", day(1), true)
	r.Extras = map[string]string{results.ExtraPuzzleNumber: "100"}
	if _, err := tracker.Record(ctx, r); err != nil {
		t.Fatalf("Record: %v", err)
	}

	dup := rec("wordle", day(2), true)
	dup.Extras = map[string]string{results.ExtraPuzzleNumber: "100"}
	recorded, err := tracker.Record(ctx, dup)
	if err != nil {
		t.Fatalf("Record dup: %v", err)
	}
	if recorded {
		t.Error("duplicate puzzle number was recorded")
	}
	if tracker.States()["wordle"].Played != 1 {
		t.Errorf("Played = %d, want 1", tracker.States()["wordle"].Played)
	}
}

func TestTrackerLoadTrustsMatchingSnapshot(t *testing.T) {
	ctx := context.Background()
	tracker, repo, _ := newTestTracker()

	for d := 1; d <= 3; d++ {
		if _, err := tracker.Record(ctx, rec("wordle", day(d), true)); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	reloaded := NewTracker(repo, mustSnaps(tracker), zerolog.Nop())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !Equal(tracker.States(), reloaded.States()) {
		t.Error("reloaded state differs from live state")
	}
}

func TestTrackerLoadRebuildsOnDivergence(t *testing.T) {
	ctx := context.Background()
	repo := &mockResultRepo{}
	for d := 1; d <= 3; d++ {
		if _, err := repo.Append(ctx, rec("wordle", day(d), true)); err != nil {
			t.Fatal(err)
		}
	}

	// Snapshot claiming fewer plays than the log holds.
	snaps := &mockSnapshotRepo{snaps: []*store.Snapshot{{
		Sequence: 1,
		Data: store.SnapshotData{
			Version: 1,
			Streaks: map[string]store.StreakStateData{
				"wordle": {GameID: "wordle", GameName: "wordle", Current: 1, Longest: 1, Played: 1, Completed: 1},
			},
		},
	}}}

	tracker := NewTracker(repo, snaps, zerolog.Nop())
	if err := tracker.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tracker.States()["wordle"].Current; got != 3 {
		t.Errorf("Current = %d, want 3 after rebuild", got)
	}
}

func TestTrackerRebuild(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTestTracker()
	for d := 1; d <= 2; d++ {
		if _, err := tracker.Record(ctx, rec("mini", day(d), true)); err != nil {
			t.Fatal(err)
		}
	}

	if err := tracker.Rebuild(ctx); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if got := tracker.States()["mini"].Current; got != 2 {
		t.Errorf("Current = %d, want 2", got)
	}
}

// mustSnaps extracts the snapshot repo a tracker wrote to.
func mustSnaps(tr *Tracker) store.SnapshotRepo {
	return tr.snaps
}

package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
	"github.com/dchen/streaklog/internal/store"
	"github.com/dchen/streaklog/internal/streaks"
)

// memRepo is an in-memory store.ResultRepo. onAll, when set, runs at
// the start of every AllRecords call.
type memRepo struct {
	records []results.Record
	onAll   func()
}

func (m *memRepo) Append(_ context.Context, rec results.Record) (bool, error) {
	m.records = append(m.records, rec)
	return true, nil
}

func (m *memRepo) AllRecords(_ context.Context) ([]results.Record, error) {
	if m.onAll != nil {
		m.onAll()
	}
	out := make([]results.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *memRepo) Stats(_ context.Context) (store.Stats, error) {
	s := store.Stats{Count: len(m.records)}
	for _, r := range m.records {
		if r.Timestamp.After(s.Latest) {
			s.Latest = r.Timestamp
		}
	}
	return s, nil
}

func (m *memRepo) Clear(_ context.Context) error {
	m.records = nil
	return nil
}

type memSnaps struct {
	snaps []*store.Snapshot
}

func (m *memSnaps) Save(_ context.Context, snap *store.Snapshot) error {
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *memSnaps) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}

func (m *memSnaps) Prune(context.Context, int) error { return nil }

func newTestOrchestrator(t *testing.T, records []results.Record) (*Orchestrator, *memRepo) {
	t.Helper()
	repo := &memRepo{records: records}
	tracker := streaks.NewTracker(repo, &memSnaps{}, zerolog.Nop())
	require.NoError(t, tracker.Load(context.Background()))
	o := NewOrchestrator(repo, tracker, catalog.Default(), NewCache(DefaultCacheTTL), zerolog.Nop())
	o.now = func() time.Time { return testNow }
	return o, repo
}

func TestOrchestratorGetComputesAndCaches(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t, []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("wordle", "Wordle", daysAgo(2), true, 4),
	})
	scope := Scope{Window: WindowWeek}

	first, err := o.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Overview.Played)
	assert.Len(t, first.Trends, 7)
	assert.NotEmpty(t, first.Bests)
	assert.Same(t, first, o.Latest())

	second, err := o.Get(ctx, scope)
	require.NoError(t, err)
	assert.Same(t, first, second, "unchanged store should serve from cache")
}

func TestOrchestratorRecomputesAfterAppend(t *testing.T) {
	ctx := context.Background()
	o, repo := newTestOrchestrator(t, []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
	})
	scope := Scope{Window: WindowWeek}

	first, err := o.Get(ctx, scope)
	require.NoError(t, err)

	_, err = repo.Append(ctx, arec("mini", "Mini Crossword", daysAgo(0), true, 95))
	require.NoError(t, err)

	second, err := o.Get(ctx, scope)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, second.Overview.Played)
}

func TestOrchestratorSupersededRequestDiscarded(t *testing.T) {
	ctx := context.Background()
	o, repo := newTestOrchestrator(t, []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
	})
	scope := Scope{Window: WindowWeek}

	// Simulate a newer request arriving mid-computation.
	repo.onAll = func() { o.version.Add(1) }
	_, err := o.Get(ctx, scope)
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.Nil(t, o.Latest())

	// The discarded result must not have been cached.
	repo.onAll = nil
	snap, err := o.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Overview.Played)
}

func TestOrchestratorScopesCachedIndependently(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t, []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("mini", "Mini Crossword", daysAgo(1), true, 95),
	})

	all, err := o.Get(ctx, Scope{Window: WindowWeek})
	require.NoError(t, err)
	filtered, err := o.Get(ctx, Scope{Window: WindowWeek, GameID: "mini"})
	require.NoError(t, err)

	assert.Equal(t, 2, all.Overview.Played)
	assert.Equal(t, 1, filtered.Overview.Played)

	again, err := o.Get(ctx, Scope{Window: WindowWeek})
	require.NoError(t, err)
	assert.Same(t, all, again)
}

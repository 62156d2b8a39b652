package analytics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dchen/streaklog/internal/achievements"
	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/store"
	"github.com/dchen/streaklog/internal/streaks"
)

// ErrSuperseded is returned when a newer scope request arrived while
// this one was still computing. The stale result is discarded rather
// than surfaced.
var ErrSuperseded = errors.New("analytics request superseded by a newer scope")

// Orchestrator memoizes and fans out the engine computations. The six
// sub-computations are independent pure functions over an immutable
// snapshot of the store, so they run concurrently with no locks; only
// the cache map and the latest-result slot need mutual exclusion.
type Orchestrator struct {
	repo    store.ResultRepo
	tracker *streaks.Tracker
	cat     *catalog.Catalog
	cache   *Cache
	log     zerolog.Logger
	now     func() time.Time

	version atomic.Uint64

	mu       sync.Mutex
	inflight context.CancelFunc
	latest   *Snapshot
}

// NewOrchestrator wires the orchestrator over its collaborators.
func NewOrchestrator(repo store.ResultRepo, tracker *streaks.Tracker, cat *catalog.Catalog, cache *Cache, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		repo:    repo,
		tracker: tracker,
		cat:     cat,
		cache:   cache,
		log:     log,
		now:     time.Now,
	}
}

// Get returns the composite analytics snapshot for the scope, serving
// from cache when the store fingerprint matches. On a miss the six
// engine computations run concurrently; if any fails, nothing is
// cached. A request superseded by a newer scope returns ErrSuperseded
// and leaves the cache and latest slot untouched.
func (o *Orchestrator) Get(ctx context.Context, scope Scope) (*Snapshot, error) {
	stats, err := o.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	fp := NewFingerprint(stats.Count, stats.Latest)

	if snap, ok := o.cache.Get(scope, fp); ok {
		o.log.Debug().Str("window", string(scope.Window)).Msg("analytics cache hit")
		o.setLatest(snap)
		return snap, nil
	}

	v, cctx := o.begin(ctx)
	snap, err := o.compute(cctx, scope)
	if err != nil {
		return nil, err
	}
	if o.version.Load() != v {
		return nil, ErrSuperseded
	}

	o.cache.Put(scope, fp, snap)
	o.setLatest(snap)
	return snap, nil
}

// Latest returns the most recently surfaced snapshot, or nil.
func (o *Orchestrator) Latest() *Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latest
}

// begin registers a new request: it bumps the version and cancels any
// in-flight computation for a superseded scope.
func (o *Orchestrator) begin(ctx context.Context) (uint64, context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inflight != nil {
		o.inflight()
	}
	cctx, cancel := context.WithCancel(ctx)
	o.inflight = cancel
	return o.version.Add(1), cctx
}

func (o *Orchestrator) setLatest(snap *Snapshot) {
	o.mu.Lock()
	o.latest = snap
	o.mu.Unlock()
}

// compute takes an immutable snapshot of the store and streak state,
// then fans the six engine computations out and joins them into one
// composite. No shared mutable state crosses task boundaries: each
// goroutine writes a distinct field.
func (o *Orchestrator) compute(ctx context.Context, scope Scope) (*Snapshot, error) {
	records, err := o.repo.AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	states := o.tracker.States()
	now := o.now()

	snap := &Snapshot{Scope: scope, ComputedAt: now}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap.Overview = ComputeOverview(scope, records, now)
		return gctx.Err()
	})
	g.Go(func() error {
		snap.Trends = ComputeStreakTrends(scope, records, now)
		return gctx.Err()
	})
	g.Go(func() error {
		snap.Breakdown = ComputeGameBreakdown(scope, o.cat, states, records, now)
		return gctx.Err()
	})
	g.Go(func() error {
		snap.Bests = ComputePersonalBests(scope, o.cat, records, now)
		return gctx.Err()
	})
	g.Go(func() error {
		snap.Weekly = ComputeWeeklySummaries(scope, records, now)
		return gctx.Err()
	})
	g.Go(func() error {
		progress := achievements.Compute(o.cat, records)
		snap.Achievements = ComputeAchievementAnalytics(progress)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

package analytics

import (
	"testing"
	"time"
)

func TestCacheHitAndFingerprintMiss(t *testing.T) {
	cache := NewCache(DefaultCacheTTL)
	scope := Scope{Window: WindowWeek}
	fp := NewFingerprint(3, daysAgo(1))
	snap := &Snapshot{Scope: scope}

	cache.Put(scope, fp, snap)

	got, ok := cache.Get(scope, fp)
	if !ok || got != snap {
		t.Fatal("expected a hit for the stored fingerprint")
	}

	// Any append changes the fingerprint and misses.
	if _, ok := cache.Get(scope, NewFingerprint(4, daysAgo(0))); ok {
		t.Error("stale fingerprint should miss")
	}
	// A different scope under the same fingerprint also misses.
	if _, ok := cache.Get(Scope{Window: WindowMonth}, fp); ok {
		t.Error("different window should miss")
	}
	if _, ok := cache.Get(Scope{Window: WindowWeek, GameID: "wordle"}, fp); ok {
		t.Error("game-filtered scope should miss")
	}
}

func TestCacheTTLIsPerKey(t *testing.T) {
	cache := NewCache(5 * time.Minute)
	now := testNow
	cache.clock = func() time.Time { return now }

	fp := NewFingerprint(1, daysAgo(1))
	weekScope := Scope{Window: WindowWeek}
	monthScope := Scope{Window: WindowMonth}

	cache.Put(weekScope, fp, &Snapshot{Scope: weekScope})
	now = now.Add(4 * time.Minute)
	cache.Put(monthScope, fp, &Snapshot{Scope: monthScope})

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get(weekScope, fp); ok {
		t.Error("week entry should have expired")
	}
	if _, ok := cache.Get(monthScope, fp); !ok {
		t.Error("month entry should still be fresh")
	}
}

func TestCachePurge(t *testing.T) {
	cache := NewCache(DefaultCacheTTL)
	scope := Scope{Window: WindowWeek}
	fp := NewFingerprint(1, daysAgo(1))
	cache.Put(scope, fp, &Snapshot{Scope: scope})

	cache.Purge()
	if _, ok := cache.Get(scope, fp); ok {
		t.Error("purged cache should miss")
	}
}

func TestFingerprintZeroLatest(t *testing.T) {
	fp := NewFingerprint(0, time.Time{})
	if fp.Latest != 0 || fp.Count != 0 {
		t.Errorf("fp = %+v, want zero", fp)
	}
}

package achievements

import (
	"fmt"
	"testing"
	"time"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
}

func played(game string, ts time.Time, completed bool, score int) results.Record {
	rec := results.Record{
		ID:        fmt.Sprintf("%s-%s", game, ts),
		GameID:    game,
		GameName:  game,
		Timestamp: ts,
		Completed: completed,
		RawText:   "x",
	}
	if score >= 0 {
		s := score
		rec.Score = &s
	}
	return rec
}

func progressByID(t *testing.T, progress []Progress) map[string]Progress {
	t.Helper()
	byID := make(map[string]Progress, len(progress))
	for _, p := range progress {
		byID[p.ID] = p
	}
	if len(byID) != len(Definitions()) {
		t.Fatalf("got %d achievements, want %d", len(byID), len(Definitions()))
	}
	return byID
}

func TestComputeCounters(t *testing.T) {
	records := []results.Record{
		played("wordle", day(1), true, 2),
		played("wordle", day(2), true, 5),
		played("wordle", day(3), false, -1),
		played("mini", day(3), true, 90),
	}

	byID := progressByID(t, Compute(catalog.Default(), records))

	if got := byID["games-played"].Current; got != 4 {
		t.Errorf("games-played = %d, want 4", got)
	}
	if got := byID["games-completed"].Current; got != 3 {
		t.Errorf("games-completed = %d, want 3", got)
	}
	if got := byID["longest-streak"].Current; got != 3 {
		t.Errorf("longest-streak = %d, want 3", got)
	}
	if got := byID["busiest-day"].Current; got != 2 {
		t.Errorf("busiest-day = %d, want 2", got)
	}
	if got := byID["distinct-games"].Current; got != 2 {
		t.Errorf("distinct-games = %d, want 2", got)
	}
	if got := byID["flawless"].Current; got != 1 {
		t.Errorf("flawless = %d, want 1 (the two-attempt solve)", got)
	}
}

func TestComputeStampsUnlockTimes(t *testing.T) {
	var records []results.Record
	for d := 1; d <= 7; d++ {
		records = append(records, played("wordle", day(d), true, 4))
	}

	byID := progressByID(t, Compute(catalog.Default(), records))
	streak := byID["longest-streak"]

	if streak.Unlocked != TierSilver {
		t.Fatalf("unlocked = %q, want silver at a 7-day streak", streak.Unlocked)
	}
	// Bronze lands the moment the third consecutive day is recorded.
	if at := streak.TierUnlocks[TierBronze]; !at.Equal(day(3)) {
		t.Errorf("bronze at %v, want day 3", at)
	}
	if at := streak.TierUnlocks[TierSilver]; !at.Equal(day(7)) {
		t.Errorf("silver at %v, want day 7", at)
	}
	if _, ok := streak.TierUnlocks[TierGold]; ok {
		t.Error("gold unlocked early")
	}
}

func TestComputeOrderIndependent(t *testing.T) {
	ordered := []results.Record{
		played("wordle", day(1), true, 3),
		played("wordle", day(2), true, 3),
		played("wordle", day(3), true, 3),
	}
	shuffled := []results.Record{ordered[2], ordered[0], ordered[1]}

	a := progressByID(t, Compute(catalog.Default(), ordered))
	b := progressByID(t, Compute(catalog.Default(), shuffled))

	if a["longest-streak"].Current != b["longest-streak"].Current {
		t.Errorf("ordered %d vs shuffled %d", a["longest-streak"].Current, b["longest-streak"].Current)
	}
	if !a["longest-streak"].TierUnlocks[TierBronze].Equal(b["longest-streak"].TierUnlocks[TierBronze]) {
		t.Error("unlock time depends on input order")
	}
}

func TestNextThreshold(t *testing.T) {
	byID := progressByID(t, Compute(catalog.Default(), []results.Record{
		played("wordle", day(1), true, 4),
	}))

	tier, threshold, ok := byID["games-played"].NextThreshold()
	if !ok || tier != TierBronze || threshold != 10 {
		t.Errorf("NextThreshold = %v/%d/%v", tier, threshold, ok)
	}
	remaining, ok := byID["games-played"].Remaining()
	if !ok || remaining != 9 {
		t.Errorf("Remaining = %d/%v", remaining, ok)
	}
}

func TestIsFlawless(t *testing.T) {
	cat := catalog.Default()
	score := func(n int) *int { return &n }

	tests := []struct {
		name string
		rec  results.Record
		want bool
	}{
		{"two-attempt wordle", results.Record{GameID: "wordle", Completed: true, Score: score(2)}, true},
		{"three-attempt wordle", results.Record{GameID: "wordle", Completed: true, Score: score(3)}, false},
		{"zero-hint strands", results.Record{GameID: "strands", Completed: true, Score: score(0)}, true},
		{"hinted strands", results.Record{GameID: "strands", Completed: true, Score: score(1)}, false},
		{"clean connections", results.Record{GameID: "connections", Completed: true, Score: score(4),
			Extras: map[string]string{results.ExtraStrikes: "0"}}, true},
		{"struck connections", results.Record{GameID: "connections", Completed: true, Score: score(4),
			Extras: map[string]string{results.ExtraStrikes: "2"}}, false},
		{"points game", results.Record{GameID: "spellingbee", Completed: true, Score: score(100)}, false},
		{"incomplete", results.Record{GameID: "wordle", Completed: false, Score: score(2)}, false},
		{"no score", results.Record{GameID: "wordle", Completed: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFlawless(cat, tt.rec); got != tt.want {
				t.Errorf("isFlawless = %v, want %v", got, tt.want)
			}
		})
	}
}

package analytics

import (
	"testing"
	"time"

	"github.com/dchen/streaklog/internal/results"
)

func TestComputeWeeklySummaries(t *testing.T) {
	// testNow is Friday 2026-03-20; daysAgo(5) is Sunday 2026-03-15,
	// which belongs to the previous ISO week.
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(0), true, 3),
		arec("wordle", "Wordle", daysAgo(1), false, -1),
		arec("mini", "Mini Crossword", daysAgo(5), true, 95),
	}

	weeks := ComputeWeeklySummaries(Scope{Window: WindowMonth}, records, testNow)
	if len(weeks) != 2 {
		t.Fatalf("%d weeks, want 2", len(weeks))
	}

	cur := weeks[0]
	if !cur.Start.Equal(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("current week start = %v, want Monday 2026-03-16", cur.Start)
	}
	if cur.Played != 2 || cur.Completed != 1 {
		t.Errorf("current week = %+v", cur)
	}
	if cur.LongestStreak != 2 {
		t.Errorf("current week streak = %d, want 2", cur.LongestStreak)
	}
	if cur.MostPlayedGame != "Wordle" {
		t.Errorf("current week most played = %q", cur.MostPlayedGame)
	}

	prev := weeks[1]
	if !prev.Start.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("previous week start = %v, want Monday 2026-03-09", prev.Start)
	}
	if prev.Played != 1 || prev.Completed != 1 {
		t.Errorf("previous week = %+v", prev)
	}
}

func TestComputeWeeklySummariesEmpty(t *testing.T) {
	if got := ComputeWeeklySummaries(Scope{Window: WindowWeek}, nil, testNow); got != nil {
		t.Errorf("weeks = %+v, want none", got)
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	recs := []results.Record{
		arec("wordle", "Wordle", time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), true, 3), // Sunday
	}
	if got := weekStart(recs); !got.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("weekStart = %v, want 2026-03-09", got)
	}
}

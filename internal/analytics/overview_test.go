package analytics

import (
	"math"
	"testing"

	"github.com/dchen/streaklog/internal/results"
)

func TestComputeOverview(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(2), true, 3),
		arec("wordle", "Wordle", daysAgo(1), false, -1),
		arec("mini", "Mini Crossword", daysAgo(1), true, 95),
		arec("wordle", "Wordle", daysAgo(20), true, 4), // outside week window
	}

	stats := ComputeOverview(Scope{Window: WindowWeek}, records, testNow)

	if stats.Played != 3 {
		t.Errorf("Played = %d, want 3", stats.Played)
	}
	if stats.Completed != 2 {
		t.Errorf("Completed = %d, want 2", stats.Completed)
	}
	if math.Abs(stats.CompletionRate-2.0/3.0) > 1e-9 {
		t.Errorf("CompletionRate = %f", stats.CompletionRate)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", stats.LongestStreak)
	}
	if math.Abs(stats.StreakConsistency-2.0/7.0) > 1e-9 {
		t.Errorf("StreakConsistency = %f", stats.StreakConsistency)
	}
	if stats.MostPlayedGame != "Wordle" || stats.MostPlayedCount != 2 {
		t.Errorf("MostPlayed = %q/%d", stats.MostPlayedGame, stats.MostPlayedCount)
	}
}

func TestComputeOverviewEmpty(t *testing.T) {
	stats := ComputeOverview(Scope{Window: WindowWeek}, nil, testNow)
	if stats.Played != 0 || stats.CompletionRate != 0 || stats.LongestStreak != 0 {
		t.Errorf("empty overview = %+v", stats)
	}
}

func TestComputeOverviewGameFilter(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("mini", "Mini Crossword", daysAgo(1), true, 95),
	}

	stats := ComputeOverview(Scope{Window: WindowWeek, GameID: "mini"}, records, testNow)
	if stats.Played != 1 {
		t.Errorf("Played = %d, want 1", stats.Played)
	}
	if stats.MostPlayedGame != "" {
		t.Errorf("MostPlayedGame = %q, want empty under a game filter", stats.MostPlayedGame)
	}
}

func TestMostPlayedTieBreaksByName(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("mini", "Mini Crossword", daysAgo(2), true, 95),
	}
	name, count := mostPlayed(records)
	if name != "Mini Crossword" || count != 1 {
		t.Errorf("mostPlayed = %q/%d, want Mini Crossword/1", name, count)
	}
}

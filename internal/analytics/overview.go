package analytics

import (
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// ComputeOverview summarizes the scope. It is total: an empty window
// degrades to zero values rather than failing.
func ComputeOverview(scope Scope, records []results.Record, now time.Time) OverviewStats {
	windowed := scope.filter(records, now)
	start, end := scope.Window.Range(now)

	stats := OverviewStats{
		Played:        len(windowed),
		LongestStreak: LongestStreakInRange(start, end, "", windowed),
	}
	for _, rec := range windowed {
		if rec.Completed {
			stats.Completed++
		}
	}
	if stats.Played > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Played)
	}
	stats.StreakConsistency = float64(len(activeDays(windowed))) / float64(scope.Window.Days())

	// Most-played is only meaningful across games.
	if scope.GameID == "" {
		name, count := mostPlayed(windowed)
		stats.MostPlayedGame = name
		stats.MostPlayedCount = count
	}
	return stats
}

// mostPlayed returns the game with the most plays, breaking ties by
// display name so the answer is stable across runs.
func mostPlayed(records []results.Record) (string, int) {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.GameName]++
	}
	best, bestCount := "", 0
	for name, count := range counts {
		if count > bestCount || (count == bestCount && best != "" && name < best) {
			best, bestCount = name, count
		}
	}
	return best, bestCount
}

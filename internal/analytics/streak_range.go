package analytics

import (
	"sort"
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// LongestStreakInRange returns the longest run of consecutive calendar
// days with at least one record, considering only records inside
// [start, end] and, when gameID is non-empty, only that game. It
// backs both the overview's longest-streak figure and the per-game
// streak personal bests.
func LongestStreakInRange(start, end time.Time, gameID string, records []results.Record) int {
	daySet := make(map[time.Time]bool)
	for _, rec := range records {
		if gameID != "" && rec.GameID != gameID {
			continue
		}
		if rec.Timestamp.Before(start) || rec.Timestamp.After(end) {
			continue
		}
		daySet[rec.Day()] = true
	}
	if len(daySet) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// activeDays returns the distinct calendar days with at least one
// record.
func activeDays(records []results.Record) map[time.Time]bool {
	days := make(map[time.Time]bool)
	for _, rec := range records {
		days[rec.Day()] = true
	}
	return days
}

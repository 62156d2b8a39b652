package analytics

import (
	"sort"
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// ComputeWeeklySummaries groups the window's records by ISO week and
// summarizes each, most recent week first.
func ComputeWeeklySummaries(scope Scope, records []results.Record, now time.Time) []WeeklySummary {
	windowed := scope.filter(records, now)
	if len(windowed) == 0 {
		return nil
	}

	type weekKey struct {
		year, week int
	}
	byWeek := make(map[weekKey][]results.Record)
	for _, rec := range windowed {
		y, w := rec.Timestamp.ISOWeek()
		k := weekKey{y, w}
		byWeek[k] = append(byWeek[k], rec)
	}

	summaries := make([]WeeklySummary, 0, len(byWeek))
	for k, recs := range byWeek {
		start := weekStart(recs)
		weekEnd := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
		s := WeeklySummary{
			Year:          k.year,
			Week:          k.week,
			Start:         start,
			Played:        len(recs),
			LongestStreak: LongestStreakInRange(start, weekEnd, "", recs),
			Consistency:   float64(len(activeDays(recs))) / 7,
		}
		for _, rec := range recs {
			if rec.Completed {
				s.Completed++
			}
		}
		if s.Played > 0 {
			s.CompletionRate = float64(s.Completed) / float64(s.Played)
		}
		s.MostPlayedGame, _ = mostPlayed(recs)
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Start.After(summaries[j].Start)
	})
	return summaries
}

// weekStart returns the Monday beginning the ISO week the given
// records fall in.
func weekStart(recs []results.Record) time.Time {
	day := recs[0].Day()
	for _, rec := range recs[1:] {
		if d := rec.Day(); d.Before(day) {
			day = d
		}
	}
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

package analytics

import (
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// trendLookbackDays bounds how far before the window the trend walk
// may look when measuring a run that started before the window opened.
const trendLookbackDays = 30

// ComputeStreakTrends produces exactly one TrendPoint per calendar day
// of the window, in ascending order with no gaps. A day's figures
// consult only records with timestamps on or before that day; future
// records never influence a past point.
func ComputeStreakTrends(scope Scope, records []results.Record, now time.Time) []TrendPoint {
	days := scope.Window.Days()
	if days <= 0 {
		return nil
	}
	start, end := scope.Window.Range(now)
	lookbackStart := start.AddDate(0, 0, -trendLookbackDays)

	// Pre-index per-game calendar-day membership over the window plus
	// the lookback, and per-day play/completion counts over the window.
	gameDays := make(map[string]map[time.Time]bool)
	playedByDay := make(map[time.Time]int)
	completedByDay := make(map[time.Time]int)
	for _, rec := range records {
		if scope.GameID != "" && rec.GameID != scope.GameID {
			continue
		}
		if rec.Timestamp.Before(lookbackStart) || rec.Timestamp.After(end) {
			continue
		}
		day := rec.Day()
		set, ok := gameDays[rec.GameID]
		if !ok {
			set = make(map[time.Time]bool)
			gameDays[rec.GameID] = set
		}
		set[day] = true
		if !rec.Timestamp.Before(start) {
			playedByDay[day]++
			if rec.Completed {
				completedByDay[day]++
			}
		}
	}

	points := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		point := TrendPoint{
			Day:       day,
			Played:    playedByDay[day],
			Completed: completedByDay[day],
		}
		for _, set := range gameDays {
			// A game is active on this day if it was played on the day
			// or the day before.
			if !set[day] && !set[day.AddDate(0, 0, -1)] {
				continue
			}
			point.ActiveStreaks++
			if run := runEndingAt(set, day, days+trendLookbackDays); run > point.LongestStreak {
				point.LongestStreak = run
			}
		}
		points = append(points, point)
	}
	return points
}

// runEndingAt counts the unbroken run of played days ending at day,
// walking backward at most maxLookback days. A day kept alive only by
// the previous day's play contributes a run ending there instead.
func runEndingAt(daySet map[time.Time]bool, day time.Time, maxLookback int) int {
	if !daySet[day] {
		day = day.AddDate(0, 0, -1)
		if !daySet[day] {
			return 0
		}
	}
	run := 0
	for i := 0; i <= maxLookback; i++ {
		if !daySet[day] {
			break
		}
		run++
		day = day.AddDate(0, 0, -1)
	}
	return run
}

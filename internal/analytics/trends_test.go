package analytics

import (
	"testing"

	"github.com/dchen/streaklog/internal/results"
)

func TestTrendsExactlyOnePointPerDay(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(2), true, 3),
	}

	for _, w := range AllWindows() {
		points := ComputeStreakTrends(Scope{Window: w}, records, testNow)
		if len(points) != w.Days() {
			t.Errorf("%s: %d points, want %d", w, len(points), w.Days())
			continue
		}
		start, _ := w.Range(testNow)
		for i, p := range points {
			if !p.Day.Equal(start.AddDate(0, 0, i)) {
				t.Errorf("%s: point %d on %v, want %v", w, i, p.Day, start.AddDate(0, 0, i))
			}
		}
	}
}

func TestTrendsDayFiguresIgnoreTheFuture(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(2), true, 3),
		arec("wordle", "Wordle", daysAgo(1), true, 4),
		arec("wordle", "Wordle", daysAgo(0), false, -1),
	}

	points := ComputeStreakTrends(Scope{Window: WindowWeek}, records, testNow)
	if len(points) != 7 {
		t.Fatalf("%d points, want 7", len(points))
	}

	// Day -2 is the first played day; its run must not count the two
	// later plays.
	first := points[4]
	if first.Played != 1 || first.LongestStreak != 1 {
		t.Errorf("day -2 = %+v, want Played 1, LongestStreak 1", first)
	}
	last := points[6]
	if last.Played != 1 || last.Completed != 0 {
		t.Errorf("day 0 counts = %+v", last)
	}
	if last.LongestStreak != 3 || last.ActiveStreaks != 1 {
		t.Errorf("day 0 streaks = %+v, want run 3, one active", last)
	}
	// Day -4 saw no play and follows no play; nothing is active.
	if points[2].ActiveStreaks != 0 || points[2].LongestStreak != 0 {
		t.Errorf("quiet day = %+v", points[2])
	}
}

func TestTrendsRecordsAfterNowExcluded(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("wordle", "Wordle", testNow.AddDate(0, 0, 1), true, 2),
	}

	points := ComputeStreakTrends(Scope{Window: WindowWeek}, records, testNow)
	total := 0
	for _, p := range points {
		total += p.Played
	}
	if total != 1 {
		t.Errorf("window played = %d, want 1", total)
	}
}

// A run that began before the window opened still counts at full length
// on the window's first day.
func TestTrendsLookbackBeforeWindow(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(7), true, 3), // day before the week window
		arec("wordle", "Wordle", daysAgo(6), true, 4), // first window day
	}

	points := ComputeStreakTrends(Scope{Window: WindowWeek}, records, testNow)
	first := points[0]
	if first.LongestStreak != 2 {
		t.Errorf("first-day run = %d, want 2 via lookback", first.LongestStreak)
	}
	if first.Played != 1 {
		t.Errorf("first-day Played = %d, want 1 (lookback day is not in the window)", first.Played)
	}
}

func TestTrendsGameFilter(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("mini", "Mini Crossword", daysAgo(1), true, 95),
	}

	points := ComputeStreakTrends(Scope{Window: WindowWeek, GameID: "mini"}, records, testNow)
	if points[5].Played != 1 || points[5].ActiveStreaks != 1 {
		t.Errorf("filtered day -1 = %+v", points[5])
	}
}

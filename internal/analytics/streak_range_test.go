package analytics

import (
	"testing"

	"github.com/dchen/streaklog/internal/results"
)

func TestLongestStreakInRangeConsecutiveDays(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(2), true, 3),
		arec("wordle", "Wordle", daysAgo(1), true, 4),
		arec("wordle", "Wordle", daysAgo(0), true, 2),
	}
	start, end := WindowWeek.Range(testNow)

	if got := LongestStreakInRange(start, end, "", records); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
	if got := LongestStreakInRange(start, end, "wordle", records); got != 3 {
		t.Errorf("per-game streak = %d, want 3", got)
	}
	if got := LongestStreakInRange(start, end, "mini", records); got != 0 {
		t.Errorf("other-game streak = %d, want 0", got)
	}
}

func TestLongestStreakInRangeGap(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(6), true, 3),
		arec("wordle", "Wordle", daysAgo(5), true, 3),
		arec("wordle", "Wordle", daysAgo(1), true, 3),
	}
	start, end := WindowWeek.Range(testNow)

	if got := LongestStreakInRange(start, end, "", records); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

// The same records must answer differently under a narrower window: a
// three-day run that ended yesterday is worth nothing to a today-only
// scope.
func TestLongestStreakRespectsWindow(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(3), true, 3),
		arec("wordle", "Wordle", daysAgo(2), true, 4),
		arec("wordle", "Wordle", daysAgo(1), true, 2),
	}

	wide := ComputeOverview(Scope{Window: WindowWeek}, records, testNow)
	if wide.LongestStreak != 3 {
		t.Errorf("week LongestStreak = %d, want 3", wide.LongestStreak)
	}

	narrow := ComputeOverview(Scope{Window: WindowToday}, records, testNow)
	if narrow.LongestStreak != 0 {
		t.Errorf("today LongestStreak = %d, want 0", narrow.LongestStreak)
	}
	if narrow.Played != 0 {
		t.Errorf("today Played = %d, want 0", narrow.Played)
	}
}

func TestWindowRange(t *testing.T) {
	start, end := WindowWeek.Range(testNow)
	if !start.Equal(results.DayOf(daysAgo(6))) {
		t.Errorf("start = %v, want start of %v", start, daysAgo(6))
	}
	if !end.Equal(testNow) {
		t.Errorf("end = %v, want now", end)
	}

	today, _ := WindowToday.Range(testNow)
	if !today.Equal(results.DayOf(testNow)) {
		t.Errorf("today start = %v", today)
	}
}

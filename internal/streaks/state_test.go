package streaks

import (
	"testing"
	"time"

	"github.com/dchen/streaklog/internal/results"
)

func rec(game string, day time.Time, completed bool) results.Record {
	return results.Record{
		ID:        game + day.Format("2006-01-02") + time.Now().String(),
		GameID:    game,
		GameName:  game,
		Timestamp: day,
		Completed: completed,
		RawText:   "x",
	}
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
}

func TestApplyConsecutiveDays(t *testing.T) {
	var st State
	st.Apply(rec("wordle", day(1), true))
	st.Apply(rec("wordle", day(2), true))
	st.Apply(rec("wordle", day(3), false))

	if st.Current != 3 {
		t.Errorf("Current = %d, want 3", st.Current)
	}
	if st.Longest != 3 {
		t.Errorf("Longest = %d, want 3", st.Longest)
	}
	if st.Played != 3 || st.Completed != 2 {
		t.Errorf("Played/Completed = %d/%d, want 3/2", st.Played, st.Completed)
	}
	if !st.StreakStart.Equal(results.DayOf(day(1))) {
		t.Errorf("StreakStart = %v", st.StreakStart)
	}
}

func TestApplyGapResets(t *testing.T) {
	var st State
	st.Apply(rec("wordle", day(1), true))
	st.Apply(rec("wordle", day(2), true))
	st.Apply(rec("wordle", day(5), true))

	if st.Current != 1 {
		t.Errorf("Current = %d, want 1 after gap", st.Current)
	}
	if st.Longest != 2 {
		t.Errorf("Longest = %d, want 2", st.Longest)
	}
	if !st.StreakStart.Equal(results.DayOf(day(5))) {
		t.Errorf("StreakStart = %v, want day 5", st.StreakStart)
	}
}

func TestApplySameDayCountsOnce(t *testing.T) {
	var st State
	st.Apply(rec("wordle", day(1), true))
	st.Apply(rec("wordle", day(1).Add(2*time.Hour), true))

	if st.Current != 1 {
		t.Errorf("Current = %d, want 1", st.Current)
	}
	if st.Played != 2 {
		t.Errorf("Played = %d, want 2", st.Played)
	}
}

func TestApplyOutOfOrderOnlyCountsTotals(t *testing.T) {
	var st State
	st.Apply(rec("wordle", day(5), true))
	st.Apply(rec("wordle", day(1), true))

	if st.Current != 1 || st.Played != 2 {
		t.Errorf("Current/Played = %d/%d, want 1/2", st.Current, st.Played)
	}
	if !st.LastPlayed.Equal(results.DayOf(day(5))) {
		t.Errorf("LastPlayed moved backward: %v", st.LastPlayed)
	}
}

func TestIsActive(t *testing.T) {
	now := day(10)
	tests := []struct {
		name   string
		played time.Time
		want   bool
	}{
		{"today", day(10), true},
		{"yesterday", day(9), true},
		{"two days ago", day(8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st State
			st.Apply(rec("wordle", tt.played, true))
			if got := st.IsActive(now); got != tt.want {
				t.Errorf("IsActive = %v, want %v", got, tt.want)
			}
			if tt.want && st.EffectiveCurrent(now) != 1 {
				t.Errorf("EffectiveCurrent = %d, want 1", st.EffectiveCurrent(now))
			}
			if !tt.want && st.EffectiveCurrent(now) != 0 {
				t.Errorf("EffectiveCurrent = %d, want 0", st.EffectiveCurrent(now))
			}
		})
	}
}

// Incremental application and full replay must always agree; Rebuild
// is the reference the live path is checked against.
func TestRebuildMatchesIncremental(t *testing.T) {
	records := []results.Record{
		rec("wordle", day(1), true),
		rec("mini", day(1), true),
		rec("wordle", day(2), false),
		rec("wordle", day(3), true),
		rec("mini", day(4), true),
		rec("wordle", day(7), true),
		rec("wordle", day(8), true),
	}

	incremental := make(Set)
	for _, r := range records {
		incremental.Apply(r)
	}

	// Rebuild from a shuffled copy; chronological replay must fix it.
	shuffled := []results.Record{
		records[6], records[2], records[0], records[4],
		records[1], records[5], records[3],
	}
	rebuilt := Rebuild(shuffled)

	if !Equal(incremental, rebuilt) {
		t.Errorf("rebuild mismatch:\nincremental %+v\nrebuilt %+v", incremental, rebuilt)
	}
	if rebuilt["wordle"].Current != 2 || rebuilt["wordle"].Longest != 3 {
		t.Errorf("wordle = %+v", rebuilt["wordle"])
	}
}

func TestSetCloneIsDeep(t *testing.T) {
	set := make(Set)
	set.Apply(rec("wordle", day(1), true))

	cp := set.Clone()
	cp["wordle"].Current = 99

	if set["wordle"].Current == 99 {
		t.Error("Clone shares state with the original")
	}
}

package streaks

import (
	"sort"
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// State is the running streak aggregate for one game. It is mutated
// by applying one record at a time; replaying every record for the
// game in chronological order from the zero value must reproduce the
// same state exactly. Rebuild relies on that equivalence for repair.
type State struct {
	GameID      string    `json:"gameId"`
	GameName    string    `json:"gameName"`
	Current     int       `json:"current"`
	Longest     int       `json:"longest"`
	Played      int       `json:"played"`
	Completed   int       `json:"completed"`
	LastPlayed  time.Time `json:"lastPlayed"`
	StreakStart time.Time `json:"streakStart"`
}

// Apply folds one record into the state. Records on the same calendar
// day extend totals but not the streak; a one-day step extends the
// streak; any gap resets it. Out-of-order records only count toward
// totals.
func (s *State) Apply(rec results.Record) {
	if s.GameID == "" {
		s.GameID = rec.GameID
		s.GameName = rec.GameName
	}
	s.Played++
	if rec.Completed {
		s.Completed++
	}

	day := rec.Day()
	switch {
	case s.LastPlayed.IsZero():
		s.Current = 1
		s.StreakStart = day
	case day.Equal(s.LastPlayed):
		return
	case day.Before(s.LastPlayed):
		return
	case day.Equal(s.LastPlayed.AddDate(0, 0, 1)):
		s.Current++
	default:
		s.Current = 1
		s.StreakStart = day
	}
	s.LastPlayed = day
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
}

// IsActive reports whether the streak is alive as of now: the game was
// played today or yesterday.
func (s State) IsActive(now time.Time) bool {
	if s.LastPlayed.IsZero() {
		return false
	}
	today := results.DayOf(now)
	return s.LastPlayed.Equal(today) || s.LastPlayed.Equal(today.AddDate(0, 0, -1))
}

// EffectiveCurrent returns the current streak, or zero once the streak
// has lapsed (no play today or yesterday).
func (s State) EffectiveCurrent(now time.Time) int {
	if !s.IsActive(now) {
		return 0
	}
	return s.Current
}

// Set holds per-game states keyed by game ID.
type Set map[string]*State

// Apply routes a record to its game's state, creating it on first use.
func (set Set) Apply(rec results.Record) {
	st, ok := set[rec.GameID]
	if !ok {
		st = &State{}
		set[rec.GameID] = st
	}
	st.Apply(rec)
}

// Clone deep-copies the set so analytics can snapshot it.
func (set Set) Clone() Set {
	out := make(Set, len(set))
	for id, st := range set {
		cp := *st
		out[id] = &cp
	}
	return out
}

// States returns the states sorted by game name for stable display.
func (set Set) States() []State {
	out := make([]State, 0, len(set))
	for _, st := range set {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameName < out[j].GameName })
	return out
}

// Rebuild replays records in chronological order from empty state.
// It is the reference implementation the incremental path must agree
// with, and the repair path when a snapshot is suspect.
func Rebuild(records []results.Record) Set {
	sorted := make([]results.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	set := make(Set)
	for _, rec := range sorted {
		set.Apply(rec)
	}
	return set
}

// Equal reports whether two sets hold identical states. Times are
// compared by instant so states survive serialization round trips.
func Equal(a, b Set) bool {
	if len(a) != len(b) {
		return false
	}
	for id, st := range a {
		other, ok := b[id]
		if !ok || !st.equal(*other) {
			return false
		}
	}
	return true
}

func (s State) equal(o State) bool {
	return s.GameID == o.GameID &&
		s.GameName == o.GameName &&
		s.Current == o.Current &&
		s.Longest == o.Longest &&
		s.Played == o.Played &&
		s.Completed == o.Completed &&
		s.LastPlayed.Equal(o.LastPlayed) &&
		s.StreakStart.Equal(o.StreakStart)
}

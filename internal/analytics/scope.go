package analytics

import (
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// Window is a requested analytics time range.
type Window string

const (
	WindowToday   Window = "today"
	WindowWeek    Window = "week"
	WindowMonth   Window = "month"
	WindowQuarter Window = "quarter"
	WindowYear    Window = "year"
)

// AllWindows returns the supported windows in ascending size.
func AllWindows() []Window {
	return []Window{WindowToday, WindowWeek, WindowMonth, WindowQuarter, WindowYear}
}

// Days returns the window length in calendar days.
func (w Window) Days() int {
	switch w {
	case WindowToday:
		return 1
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	case WindowQuarter:
		return 90
	case WindowYear:
		return 365
	default:
		return 7
	}
}

// Valid reports whether w is a known window.
func (w Window) Valid() bool {
	switch w {
	case WindowToday, WindowWeek, WindowMonth, WindowQuarter, WindowYear:
		return true
	}
	return false
}

// Range returns the window's bounds relative to now: the start of the
// earliest covered calendar day, and now itself. A window of N days
// covers exactly the N calendar days ending today.
func (w Window) Range(now time.Time) (start, end time.Time) {
	today := results.DayOf(now)
	return today.AddDate(0, 0, -(w.Days() - 1)), now
}

// Scope bounds an analytics computation: a time window plus an
// optional single-game filter.
type Scope struct {
	Window Window
	GameID string // empty means all games
}

// filter returns the records inside the scope's range and game filter.
// Every engine function goes through this, so a value from outside the
// window can never leak into a result.
func (s Scope) filter(records []results.Record, now time.Time) []results.Record {
	start, end := s.Window.Range(now)
	var out []results.Record
	for _, rec := range records {
		if s.GameID != "" && rec.GameID != s.GameID {
			continue
		}
		if rec.Timestamp.Before(start) || rec.Timestamp.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

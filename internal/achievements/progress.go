package achievements

import (
	"sort"
	"time"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
	"github.com/dchen/streaklog/internal/streaks"
)

// Progress is one achievement's current standing: the counter value,
// the highest tier unlocked so far, and when each tier was crossed.
type Progress struct {
	Definition
	Current     int
	Unlocked    Tier // empty until the bronze threshold is crossed
	TierUnlocks map[Tier]time.Time
}

// NextThreshold returns the next locked tier and its threshold, or
// false when every tier is unlocked.
func (p Progress) NextThreshold() (Tier, int, bool) {
	for i, tier := range AllTiers() {
		if _, done := p.TierUnlocks[tier]; !done {
			return tier, p.Thresholds[i], true
		}
	}
	return "", 0, false
}

// Remaining returns the delta to the next locked tier, or false when
// the achievement is maxed out.
func (p Progress) Remaining() (int, bool) {
	_, threshold, ok := p.NextThreshold()
	if !ok {
		return 0, false
	}
	return threshold - p.Current, true
}

// Compute replays records chronologically and produces progress for
// every defined achievement, including the timestamp at which each
// tier was first crossed.
func Compute(cat *catalog.Catalog, records []results.Record) []Progress {
	sorted := make([]results.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	progress := make([]Progress, 0, len(Definitions()))
	byID := make(map[string]*Progress)
	for _, def := range Definitions() {
		progress = append(progress, Progress{
			Definition:  def,
			TierUnlocks: make(map[Tier]time.Time),
		})
		byID[def.ID] = &progress[len(progress)-1]
	}

	var (
		played    int
		completed int
		flawless  int
		streakSet = make(streaks.Set)
		byDay     = make(map[time.Time]int)
		games     = make(map[string]bool)
		busiest   int
		longest   int
	)

	for _, rec := range sorted {
		played++
		if rec.Completed {
			completed++
		}
		if isFlawless(cat, rec) {
			flawless++
		}
		streakSet.Apply(rec)
		if st := streakSet[rec.GameID]; st != nil && st.Longest > longest {
			longest = st.Longest
		}
		day := rec.Day()
		byDay[day]++
		if byDay[day] > busiest {
			busiest = byDay[day]
		}
		games[rec.GameID] = true

		at := rec.Timestamp
		byID["games-played"].advance(played, at)
		byID["games-completed"].advance(completed, at)
		byID["longest-streak"].advance(longest, at)
		byID["busiest-day"].advance(busiest, at)
		byID["distinct-games"].advance(len(games), at)
		byID["flawless"].advance(flawless, at)
	}

	return progress
}

// advance raises the counter to value and stamps any tier thresholds
// crossed at that moment. Counters never decrease.
func (p *Progress) advance(value int, at time.Time) {
	if value <= p.Current {
		return
	}
	p.Current = value
	for i, tier := range AllTiers() {
		if _, done := p.TierUnlocks[tier]; done {
			continue
		}
		if value >= p.Thresholds[i] {
			p.TierUnlocks[tier] = at
			p.Unlocked = tier
		}
	}
}

// isFlawless reports a completed result with nothing lost along the
// way: zero hints for hint-scored games, a first-guess category sweep
// for grids, and a two-attempts-or-better solve for attempt games.
func isFlawless(cat *catalog.Catalog, rec results.Record) bool {
	if !rec.Completed || rec.Score == nil {
		return false
	}
	def, ok := cat.Lookup(rec.GameID)
	if !ok {
		return false
	}
	switch def.Scoring {
	case catalog.ScoringHints:
		return *rec.Score == 0
	case catalog.ScoringAttempts:
		if def.Dialect == catalog.DialectGrid {
			return rec.Extras[results.ExtraStrikes] == "0"
		}
		return *rec.Score <= 2
	default:
		return false
	}
}

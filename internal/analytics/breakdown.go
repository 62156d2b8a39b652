package analytics

import (
	"sort"
	"time"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
	"github.com/dchen/streaklog/internal/streaks"
)

// ComputeGameBreakdown slices the scope per game: plays, completions,
// the best in-window score under the game's scoring direction, and the
// live current streak. Ordered by plays descending with name
// tie-breaks.
func ComputeGameBreakdown(scope Scope, cat *catalog.Catalog, states streaks.Set, records []results.Record, now time.Time) []GameBreakdown {
	windowed := scope.filter(records, now)
	if len(windowed) == 0 {
		return nil
	}

	byGame := make(map[string]*GameBreakdown)
	for _, rec := range windowed {
		gb, ok := byGame[rec.GameID]
		if !ok {
			gb = &GameBreakdown{GameID: rec.GameID, GameName: rec.GameName}
			byGame[rec.GameID] = gb
		}
		gb.Played++
		if rec.Completed {
			gb.Completed++
		}
		if rec.Completed && rec.Score != nil {
			if gb.BestScore == nil || better(cat, rec.GameID, *rec.Score, *gb.BestScore) {
				s := *rec.Score
				gb.BestScore = &s
			}
		}
	}

	out := make([]GameBreakdown, 0, len(byGame))
	for gameID, gb := range byGame {
		if gb.Played > 0 {
			gb.CompletionRate = float64(gb.Completed) / float64(gb.Played)
		}
		if st, ok := states[gameID]; ok {
			gb.CurrentStreak = st.EffectiveCurrent(now)
		}
		out = append(out, *gb)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Played != out[j].Played {
			return out[i].Played > out[j].Played
		}
		return out[i].GameName < out[j].GameName
	})
	return out
}

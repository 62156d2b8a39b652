package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// bestsPerKind caps how many longest-streak and best-score entries the
// bests list carries.
const bestsPerKind = 2

// ComputePersonalBests returns the window-scoped highlights: the top
// longest streaks per game, the best score per game, and the single
// busiest day. Every figure is computed strictly from records inside
// the window, so an objectively better result from outside it never
// appears.
func ComputePersonalBests(scope Scope, cat *catalog.Catalog, records []results.Record, now time.Time) []PersonalBest {
	windowed := scope.filter(records, now)
	if len(windowed) == 0 {
		return nil
	}
	start, end := scope.Window.Range(now)

	var bests []PersonalBest
	bests = append(bests, streakBests(start, end, windowed)...)
	bests = append(bests, scoreBests(cat, windowed)...)
	if b, ok := busiestDay(windowed); ok {
		bests = append(bests, b)
	}
	return bests
}

// streakBests ranks games by their longest in-window streak and keeps
// the top entries with a positive value.
func streakBests(start, end time.Time, windowed []results.Record) []PersonalBest {
	names := gameNames(windowed)
	var candidates []PersonalBest
	for gameID, name := range names {
		value := LongestStreakInRange(start, end, gameID, windowed)
		if value <= 0 {
			continue
		}
		candidates = append(candidates, PersonalBest{
			Kind:        BestLongestStreak,
			GameID:      gameID,
			GameName:    name,
			Value:       value,
			Description: fmt.Sprintf("%d-day %s streak", value, name),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Value != candidates[j].Value {
			return candidates[i].Value > candidates[j].Value
		}
		return candidates[i].GameName < candidates[j].GameName
	})
	if len(candidates) > bestsPerKind {
		candidates = candidates[:bestsPerKind]
	}
	return candidates
}

// scoreBests takes each game's best completed score, honoring the
// game's scoring direction, then keeps the top entries ordered by
// value (ascending, matching the dominant lower-is-better convention)
// with name tie-breaks.
func scoreBests(cat *catalog.Catalog, windowed []results.Record) []PersonalBest {
	type gameBest struct {
		gameID, name string
		score        int
	}
	perGame := make(map[string]*gameBest)
	for _, rec := range windowed {
		if !rec.Completed || rec.Score == nil {
			continue
		}
		cur, ok := perGame[rec.GameID]
		if !ok {
			perGame[rec.GameID] = &gameBest{gameID: rec.GameID, name: rec.GameName, score: *rec.Score}
			continue
		}
		if better(cat, rec.GameID, *rec.Score, cur.score) {
			cur.score = *rec.Score
		}
	}

	var candidates []PersonalBest
	for _, gb := range perGame {
		candidates = append(candidates, PersonalBest{
			Kind:        BestScore,
			GameID:      gb.gameID,
			GameName:    gb.name,
			Value:       gb.score,
			Description: fmt.Sprintf("Best %s: %d", gb.name, gb.score),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Value != candidates[j].Value {
			return candidates[i].Value < candidates[j].Value
		}
		return candidates[i].GameName < candidates[j].GameName
	})
	if len(candidates) > bestsPerKind {
		candidates = candidates[:bestsPerKind]
	}
	return candidates
}

// busiestDay reports the day with the most plays, only when more than
// one game was played. Ties resolve to the earliest day.
func busiestDay(windowed []results.Record) (PersonalBest, bool) {
	byDay := make(map[time.Time]int)
	for _, rec := range windowed {
		byDay[rec.Day()]++
	}
	var bestDay time.Time
	bestCount := 0
	for day, count := range byDay {
		if count > bestCount || (count == bestCount && day.Before(bestDay)) {
			bestDay, bestCount = day, count
		}
	}
	if bestCount <= 1 {
		return PersonalBest{}, false
	}
	return PersonalBest{
		Kind:        BestBusiestDay,
		Value:       bestCount,
		Day:         bestDay,
		Description: fmt.Sprintf("%d games on %s", bestCount, bestDay.Format("Jan 2")),
	}, true
}

// better reports whether a beats b under the game's scoring direction.
// Unknown games default to lower-is-better.
func better(cat *catalog.Catalog, gameID string, a, b int) bool {
	if def, ok := cat.Lookup(gameID); ok && !def.Scoring.LowerIsBetter() {
		return a > b
	}
	return a < b
}

// gameNames maps game IDs to display names across the given records.
func gameNames(records []results.Record) map[string]string {
	names := make(map[string]string)
	for _, rec := range records {
		names[rec.GameID] = rec.GameName
	}
	return names
}

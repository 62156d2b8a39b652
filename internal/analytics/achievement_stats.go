package analytics

import (
	"fmt"
	"sort"

	"github.com/dchen/streaklog/internal/achievements"
)

const (
	recentUnlocksKept = 5
	nextActionsKept   = 3
)

// ComputeAchievementAnalytics summarizes tiered-achievement standing:
// how many achievements sit at each tier, the most recent unlocks, the
// fraction of each category with any tier unlocked, and the closest
// next unlocks as short hints.
func ComputeAchievementAnalytics(progress []achievements.Progress) AchievementAnalytics {
	out := AchievementAnalytics{
		TierDistribution: make(map[achievements.Tier]int),
		CategoryProgress: make(map[achievements.Category]float64),
	}

	catTotal := make(map[achievements.Category]int)
	catUnlocked := make(map[achievements.Category]int)
	var unlocks []UnlockEvent

	for _, p := range progress {
		catTotal[p.Category]++
		if p.Unlocked != "" {
			out.TierDistribution[p.Unlocked]++
			catUnlocked[p.Category]++
		}
		for tier, at := range p.TierUnlocks {
			unlocks = append(unlocks, UnlockEvent{
				AchievementID:   p.ID,
				AchievementName: p.Name,
				Tier:            tier,
				UnlockedAt:      at,
			})
		}
	}

	for cat, total := range catTotal {
		out.CategoryProgress[cat] = float64(catUnlocked[cat]) / float64(total)
	}

	sort.Slice(unlocks, func(i, j int) bool {
		if !unlocks[i].UnlockedAt.Equal(unlocks[j].UnlockedAt) {
			return unlocks[i].UnlockedAt.After(unlocks[j].UnlockedAt)
		}
		return unlocks[i].AchievementName < unlocks[j].AchievementName
	})
	if len(unlocks) > recentUnlocksKept {
		unlocks = unlocks[:recentUnlocksKept]
	}
	out.RecentUnlocks = unlocks

	out.NextActions = nextActions(progress)
	return out
}

// nextActions ranks the locked achievements by how close they are to
// their next tier and renders the closest few as hints.
func nextActions(progress []achievements.Progress) []string {
	type candidate struct {
		remaining int
		hint      string
	}
	var candidates []candidate
	for _, p := range progress {
		tier, threshold, ok := p.NextThreshold()
		if !ok {
			continue
		}
		remaining := threshold - p.Current
		candidates = append(candidates, candidate{
			remaining: remaining,
			hint:      fmt.Sprintf("%d more %s for %s %s", remaining, p.Unit, tier.DisplayName(), p.Name),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].remaining != candidates[j].remaining {
			return candidates[i].remaining < candidates[j].remaining
		}
		return candidates[i].hint < candidates[j].hint
	})
	if len(candidates) > nextActionsKept {
		candidates = candidates[:nextActionsKept]
	}
	hints := make([]string, len(candidates))
	for i, c := range candidates {
		hints[i] = c.hint
	}
	return hints
}

package analytics

import (
	"testing"
	"time"

	"github.com/dchen/streaklog/internal/achievements"
)

func testProgress() []achievements.Progress {
	defs := achievements.Definitions()
	byID := make(map[string]achievements.Definition)
	for _, d := range defs {
		byID[d.ID] = d
	}

	return []achievements.Progress{
		{
			Definition: byID["games-played"],
			Current:    55,
			Unlocked:   achievements.TierSilver,
			TierUnlocks: map[achievements.Tier]time.Time{
				achievements.TierBronze: daysAgo(10),
				achievements.TierSilver: daysAgo(1),
			},
		},
		{
			Definition: byID["games-completed"],
			Current:    12,
			Unlocked:   achievements.TierBronze,
			TierUnlocks: map[achievements.Tier]time.Time{
				achievements.TierBronze: daysAgo(5),
			},
		},
		{
			Definition:  byID["longest-streak"],
			Current:     2,
			TierUnlocks: map[achievements.Tier]time.Time{},
		},
		{
			Definition:  byID["distinct-games"],
			Current:     1,
			TierUnlocks: map[achievements.Tier]time.Time{},
		},
	}
}

func TestAchievementAnalyticsTierDistribution(t *testing.T) {
	out := ComputeAchievementAnalytics(testProgress())

	if out.TierDistribution[achievements.TierSilver] != 1 {
		t.Errorf("silver = %d, want 1", out.TierDistribution[achievements.TierSilver])
	}
	if out.TierDistribution[achievements.TierBronze] != 1 {
		t.Errorf("bronze = %d, want 1", out.TierDistribution[achievements.TierBronze])
	}
}

func TestAchievementAnalyticsRecentUnlocks(t *testing.T) {
	out := ComputeAchievementAnalytics(testProgress())

	if len(out.RecentUnlocks) != 3 {
		t.Fatalf("%d unlocks, want 3", len(out.RecentUnlocks))
	}
	// Newest first.
	if out.RecentUnlocks[0].Tier != achievements.TierSilver || out.RecentUnlocks[0].AchievementID != "games-played" {
		t.Errorf("unlocks[0] = %+v", out.RecentUnlocks[0])
	}
	if out.RecentUnlocks[2].Tier != achievements.TierBronze || out.RecentUnlocks[2].AchievementID != "games-played" {
		t.Errorf("unlocks[2] = %+v", out.RecentUnlocks[2])
	}
}

func TestAchievementAnalyticsCategoryProgress(t *testing.T) {
	out := ComputeAchievementAnalytics(testProgress())

	if got := out.CategoryProgress[achievements.CategoryVolume]; got != 1.0 {
		t.Errorf("volume = %f, want 1.0", got)
	}
	if got := out.CategoryProgress[achievements.CategoryDedication]; got != 0 {
		t.Errorf("dedication = %f, want 0", got)
	}
}

func TestAchievementAnalyticsNextActions(t *testing.T) {
	out := ComputeAchievementAnalytics(testProgress())

	if len(out.NextActions) != nextActionsKept {
		t.Fatalf("%d hints, want %d", len(out.NextActions), nextActionsKept)
	}
	// Closest next tier first: longest-streak needs 1 more day.
	if out.NextActions[0] != "1 more consecutive days for Bronze Day After Day" {
		t.Errorf("hint = %q", out.NextActions[0])
	}
}

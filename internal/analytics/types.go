package analytics

import (
	"time"

	"github.com/dchen/streaklog/internal/achievements"
)

// OverviewStats summarizes activity within a scope.
type OverviewStats struct {
	Played            int
	Completed         int
	CompletionRate    float64 // 0.0 when nothing was played
	LongestStreak     int
	StreakConsistency float64 // distinct active days / window days
	MostPlayedGame    string  // display name; empty under a game filter
	MostPlayedCount   int
}

// TrendPoint is one calendar day of the streak trend series.
type TrendPoint struct {
	Day           time.Time
	ActiveStreaks int // games with an alive streak on this day
	LongestStreak int // longest run ending on this day across active games
	Played        int
	Completed     int
}

// BestKind distinguishes the personal-best flavors.
type BestKind string

const (
	BestLongestStreak BestKind = "longest_streak"
	BestScore         BestKind = "best_score"
	BestBusiestDay    BestKind = "busiest_day"
)

// PersonalBest is one window-scoped highlight.
type PersonalBest struct {
	Kind        BestKind
	GameID      string
	GameName    string
	Value       int
	Day         time.Time // set for busiest-day bests
	Description string
}

// WeeklySummary aggregates one ISO week touched by the window.
type WeeklySummary struct {
	Year           int
	Week           int
	Start          time.Time
	Played         int
	Completed      int
	CompletionRate float64
	LongestStreak  int
	MostPlayedGame string
	Consistency    float64 // distinct active days / 7
}

// GameBreakdown is the per-game slice of a scope.
type GameBreakdown struct {
	GameID         string
	GameName       string
	Played         int
	Completed      int
	CompletionRate float64
	BestScore      *int // respects the game's scoring direction
	CurrentStreak  int
}

// UnlockEvent is one tier unlock, used for the recent-unlocks feed.
type UnlockEvent struct {
	AchievementID   string
	AchievementName string
	Tier            achievements.Tier
	UnlockedAt      time.Time
}

// AchievementAnalytics summarizes tiered-achievement standing.
type AchievementAnalytics struct {
	TierDistribution map[achievements.Tier]int
	RecentUnlocks    []UnlockEvent
	CategoryProgress map[achievements.Category]float64
	NextActions      []string
}

// Snapshot is the composite produced by one orchestrated computation.
// It is immutable once built and safe to share across goroutines.
type Snapshot struct {
	Scope        Scope
	ComputedAt   time.Time
	Overview     OverviewStats
	Trends       []TrendPoint
	Breakdown    []GameBreakdown
	Bests        []PersonalBest
	Weekly       []WeeklySummary
	Achievements AchievementAnalytics
}

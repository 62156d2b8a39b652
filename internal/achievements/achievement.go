package achievements

// Category identifies the kind of progress an achievement measures.
type Category string

const (
	CategoryVolume     Category = "volume"
	CategoryDedication Category = "dedication"
	CategoryVariety    Category = "variety"
	CategorySkill      Category = "skill"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryVolume, CategoryDedication, CategoryVariety, CategorySkill}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryVolume:
		return "Volume"
	case CategoryDedication:
		return "Dedication"
	case CategoryVariety:
		return "Variety"
	case CategorySkill:
		return "Skill"
	default:
		return string(c)
	}
}

// Tier is one unlock level of a tiered achievement.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// AllTiers returns all tiers in order from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the tier.
func (t Tier) Icon() string {
	switch t {
	case TierBronze:
		return "🥉"
	case TierSilver:
		return "🥈"
	case TierGold:
		return "🥇"
	case TierPlatinum:
		return "💎"
	default:
		return "✦"
	}
}

// Definition describes one tiered achievement: a progress counter with
// one ascending unlock threshold per tier.
type Definition struct {
	ID         string
	Name       string
	Category   Category
	Unit       string // what Current counts, for display hints
	Thresholds [4]int // bronze, silver, gold, platinum
}

// Definitions returns the built-in achievement table.
func Definitions() []Definition {
	return []Definition{
		{
			ID:         "games-played",
			Name:       "Puzzler",
			Category:   CategoryVolume,
			Unit:       "games played",
			Thresholds: [4]int{10, 50, 200, 500},
		},
		{
			ID:         "games-completed",
			Name:       "Finisher",
			Category:   CategoryVolume,
			Unit:       "games completed",
			Thresholds: [4]int{10, 40, 150, 400},
		},
		{
			ID:         "longest-streak",
			Name:       "Day After Day",
			Category:   CategoryDedication,
			Unit:       "consecutive days",
			Thresholds: [4]int{3, 7, 30, 100},
		},
		{
			ID:         "busiest-day",
			Name:       "Marathon",
			Category:   CategoryDedication,
			Unit:       "games in one day",
			Thresholds: [4]int{3, 5, 8, 12},
		},
		{
			ID:         "distinct-games",
			Name:       "Explorer",
			Category:   CategoryVariety,
			Unit:       "different games",
			Thresholds: [4]int{2, 4, 6, 8},
		},
		{
			ID:         "flawless",
			Name:       "Flawless",
			Category:   CategorySkill,
			Unit:       "flawless solves",
			Thresholds: [4]int{1, 5, 25, 100},
		},
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/dchen/streaklog/internal/analytics"
	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/streaks"
)

// sparkGlyphs render trend magnitudes, lowest to highest.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// RenderOverview formats the overview block of a snapshot.
func RenderOverview(snap *analytics.Snapshot) string {
	o := snap.Overview
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render(fmt.Sprintf("Overview (%s)", snap.Scope.Window)))
	fmt.Fprintf(&b, "%s %s\n", Label.Render("Played:"), Value.Render(fmt.Sprintf("%d", o.Played)))
	fmt.Fprintf(&b, "%s %s\n", Label.Render("Completed:"), Value.Render(fmt.Sprintf("%d (%.0f%%)", o.Completed, o.CompletionRate*100)))
	fmt.Fprintf(&b, "%s %s\n", Label.Render("Longest streak:"), Value.Render(fmt.Sprintf("%d days", o.LongestStreak)))
	fmt.Fprintf(&b, "%s %s\n", Label.Render("Consistency:"), Value.Render(fmt.Sprintf("%.0f%%", o.StreakConsistency*100)))
	if o.MostPlayedGame != "" {
		fmt.Fprintf(&b, "%s %s\n", Label.Render("Most played:"), Value.Render(fmt.Sprintf("%s (%d)", o.MostPlayedGame, o.MostPlayedCount)))
	}
	return b.String()
}

// RenderTrends formats the per-day trend series as a sparkline plus a
// compact table of the most recent days.
func RenderTrends(points []analytics.TrendPoint, tail int) string {
	if len(points) == 0 {
		return Hint.Render("No trend data yet.")
	}
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render("Streak trend"))
	fmt.Fprintln(&b, sparkline(points))

	if tail > len(points) {
		tail = len(points)
	}
	for _, p := range points[len(points)-tail:] {
		fmt.Fprintf(&b, "%s  %s active, longest %s, played %d\n",
			Label.Render(p.Day.Format("Mon Jan 02")),
			Value.Render(fmt.Sprintf("%d", p.ActiveStreaks)),
			Value.Render(fmt.Sprintf("%d", p.LongestStreak)),
			p.Played)
	}
	return b.String()
}

// sparkline maps each day's longest streak onto the spark glyph ramp.
func sparkline(points []analytics.TrendPoint) string {
	peak := 0
	for _, p := range points {
		if p.LongestStreak > peak {
			peak = p.LongestStreak
		}
	}
	if peak == 0 {
		peak = 1
	}
	var b strings.Builder
	for _, p := range points {
		idx := p.LongestStreak * (len(sparkGlyphs) - 1) / peak
		b.WriteRune(sparkGlyphs[idx])
	}
	return Good.Render(b.String())
}

// RenderBests formats the personal-best list.
func RenderBests(bests []analytics.PersonalBest) string {
	if len(bests) == 0 {
		return Hint.Render("No personal bests in this window yet.")
	}
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render("Personal bests"))
	for _, best := range bests {
		fmt.Fprintf(&b, "  %s\n", Value.Render(best.Description))
	}
	return b.String()
}

// RenderWeekly formats the weekly summaries, most recent first.
func RenderWeekly(weeks []analytics.WeeklySummary) string {
	if len(weeks) == 0 {
		return Hint.Render("No weekly data yet.")
	}
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render("Weekly summary"))
	for _, w := range weeks {
		fmt.Fprintf(&b, "%s  played %s, completed %s, streak %s",
			Label.Render(fmt.Sprintf("W%02d %s", w.Week, w.Start.Format("Jan 02"))),
			Value.Render(fmt.Sprintf("%d", w.Played)),
			Value.Render(fmt.Sprintf("%d (%.0f%%)", w.Completed, w.CompletionRate*100)),
			Value.Render(fmt.Sprintf("%d", w.LongestStreak)))
		if w.MostPlayedGame != "" {
			fmt.Fprintf(&b, ", top %s", w.MostPlayedGame)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

// RenderBreakdown formats the per-game slice.
func RenderBreakdown(rows []analytics.GameBreakdown) string {
	if len(rows) == 0 {
		return Hint.Render("No games in this window yet.")
	}
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render("By game"))
	for _, gb := range rows {
		line := fmt.Sprintf("%-16s played %2d, completed %2d (%.0f%%)",
			gb.GameName, gb.Played, gb.Completed, gb.CompletionRate*100)
		if gb.BestScore != nil {
			line += fmt.Sprintf(", best %d", *gb.BestScore)
		}
		if gb.CurrentStreak > 0 {
			line += Good.Render(fmt.Sprintf("  🔥%d", gb.CurrentStreak))
		}
		fmt.Fprintln(&b, line)
	}
	return b.String()
}

// RenderAchievements formats the achievement analytics.
func RenderAchievements(a analytics.AchievementAnalytics) string {
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render("Achievements"))
	for tier, count := range a.TierDistribution {
		fmt.Fprintf(&b, "  %s %s: %d\n", tier.Icon(), tier.DisplayName(), count)
	}
	if len(a.RecentUnlocks) > 0 {
		fmt.Fprintln(&b, Label.Render("Recent unlocks"))
		for _, u := range a.RecentUnlocks {
			fmt.Fprintf(&b, "  %s %s %s (%s)\n",
				u.Tier.Icon(), u.Tier.DisplayName(), u.AchievementName,
				u.UnlockedAt.Format("Jan 02"))
		}
	}
	if len(a.NextActions) > 0 {
		fmt.Fprintln(&b, Label.Render("Up next"))
		for _, hint := range a.NextActions {
			fmt.Fprintf(&b, "  %s\n", Hint.Render(hint))
		}
	}
	return b.String()
}

// RenderStreaks formats the live per-game streak states.
func RenderStreaks(states []streaks.State) string {
	if len(states) == 0 {
		return Hint.Render("No results recorded yet.")
	}
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render("Streaks"))
	for _, st := range states {
		line := fmt.Sprintf("%-16s current %2d, longest %2d, played %3d",
			st.GameName, st.Current, st.Longest, st.Played)
		fmt.Fprintln(&b, line)
	}
	return b.String()
}

// RenderGames formats the catalog listing.
func RenderGames(defs []catalog.GameDefinition) string {
	var b strings.Builder
	fmt.Fprintln(&b, Title.Render("Supported games"))
	for _, def := range defs {
		fmt.Fprintf(&b, "%-16s %s  %s\n",
			def.Name,
			Label.Render(string(def.Dialect)),
			Hint.Render(string(def.Scoring)))
	}
	return b.String()
}

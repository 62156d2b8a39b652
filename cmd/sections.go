package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dchen/streaklog/internal/analytics"
	"github.com/dchen/streaklog/internal/ui"
)

// addScopeFlags registers the window/game flags shared by every
// analytics view.
func addScopeFlags(c *cobra.Command) {
	c.Flags().String("window", string(analytics.WindowWeek), "Time window: today, week, month, quarter, year")
	c.Flags().String("game", "", "Limit to a single game")
}

// scopeFromFlags resolves the analytics scope from the command's flags,
// validating the window and normalizing the game filter.
func scopeFromFlags(cmd *cobra.Command, a *app) (analytics.Scope, error) {
	window, _ := cmd.Flags().GetString("window")
	game, _ := cmd.Flags().GetString("game")

	scope := analytics.Scope{Window: analytics.Window(window)}
	if !scope.Window.Valid() {
		return scope, fmt.Errorf("unknown window %q (today, week, month, quarter, year)", window)
	}
	if game != "" {
		def, ok := a.catalog.Lookup(game)
		if !ok {
			return scope, fmt.Errorf("unknown game %q, run 'streaklog games' to list supported games", game)
		}
		scope.GameID = def.ID
	}
	return scope, nil
}

// sectionCmd builds a command that renders one slice of the analytics
// snapshot. The heavy lifting is shared with stats; these exist so a
// single section can be checked without scrolling past the full report.
func sectionCmd(use, short string, render func(*analytics.Snapshot) string) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			scope, err := scopeFromFlags(cmd, a)
			if err != nil {
				return err
			}
			snap, err := a.orch.Get(cmd.Context(), scope)
			if err != nil {
				return fmt.Errorf("compute analytics: %w", err)
			}
			fmt.Println(render(snap))
			return nil
		},
	}
	addScopeFlags(c)
	return c
}

var trendsCmd = sectionCmd("trends", "Show the per-day streak trend", func(snap *analytics.Snapshot) string {
	return ui.RenderTrends(snap.Trends, trendTailDays)
})

var bestsCmd = sectionCmd("bests", "Show window-scoped personal bests", func(snap *analytics.Snapshot) string {
	return ui.RenderBests(snap.Bests)
})

var weeklyCmd = sectionCmd("weekly", "Show weekly summaries", func(snap *analytics.Snapshot) string {
	return ui.RenderWeekly(snap.Weekly)
})

var achievementsCmd = sectionCmd("achievements", "Show achievement progress", func(snap *analytics.Snapshot) string {
	return ui.RenderAchievements(snap.Achievements)
})

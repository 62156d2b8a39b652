package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/ui"
)

// trendTailDays is how many recent trend rows the stats view prints
// under the sparkline.
const trendTailDays = 7

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, trends, bests, and achievement progress",
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

		fmt.Println(ui.RenderOverview(snap))
		fmt.Println(ui.RenderStreaks(a.tracker.States().States()))
		fmt.Println(ui.RenderTrends(snap.Trends, trendTailDays))
		fmt.Println(ui.RenderBreakdown(snap.Breakdown))
		fmt.Println(ui.RenderBests(snap.Bests))
		fmt.Println(ui.RenderWeekly(snap.Weekly))
		fmt.Println(ui.RenderAchievements(snap.Achievements))
		return nil
	},
}

func init() {
	addScopeFlags(statsCmd)
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List supported games",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.RenderGames(catalog.Default().All()))
	},
}

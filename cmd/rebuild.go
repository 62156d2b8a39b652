package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dchen/streaklog/internal/ui"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild streak state by replaying the result log",
	Long: "Discard streak snapshots and replay every recorded result from\n" +
		"empty state. Use after migrations or if streaks look wrong.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.tracker.Rebuild(cmd.Context()); err != nil {
			return fmt.Errorf("rebuild streaks: %w", err)
		}
		fmt.Println(ui.RenderStreaks(a.tracker.States().States()))
		return nil
	},
}

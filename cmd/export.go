package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dchen/streaklog/internal/results"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all results as CSV",
	Long:  "Export every recorded result as CSV, to the given file or stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		records, err := a.store.ResultRepo().AllRecords(cmd.Context())
		if err != nil {
			return fmt.Errorf("load records: %w", err)
		}

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := results.WriteCSV(out, records); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		if len(args) == 1 {
			fmt.Fprintf(os.Stderr, "Exported %d results to %s\n", len(records), args[0])
		}
		return nil
	},
}

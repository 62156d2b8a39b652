package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dchen/streaklog/internal/parser"
)

var addCmd = &cobra.Command{
	Use:   "add <game> [share text]",
	Short: "Parse and record a game's share text",
	Long: "Parse share text for the given game and record the result.\n" +
		"Text is read from the arguments, or from stdin when omitted.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		gameID := args[0]
		text := strings.Join(args[1:], " ")
		if text == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read share text: %w", err)
			}
			text = string(data)
		}

		rec, err := a.parser.Parse(text, gameID)
		if err != nil {
			switch {
			case errors.Is(err, parser.ErrUnsupportedGame):
				return fmt.Errorf("unknown game %q, run 'streaklog games' to list supported games", gameID)
			case errors.Is(err, parser.ErrInvalidFormat):
				return fmt.Errorf("could not parse share text: %v\nCheck the pasted text and try again", err)
			default:
				return err
			}
		}

		recorded, err := a.tracker.Record(cmd.Context(), rec)
		if err != nil {
			return fmt.Errorf("record result: %w", err)
		}
		if !recorded {
			fmt.Println("Already recorded, skipping duplicate result.")
			return nil
		}

		status := "completed"
		if !rec.Completed {
			status = "not completed"
		}
		if rec.Score != nil {
			fmt.Printf("Recorded %s: score %d, %s\n", rec.GameName, *rec.Score, status)
		} else {
			fmt.Printf("Recorded %s: %s\n", rec.GameName, status)
		}
		return nil
	},
}

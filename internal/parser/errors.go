package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the share text did not match the game's
// dialect: a required literal, numeric token, or structural marker was
// missing or malformed. Callers should prompt for a retry/edit.
var ErrInvalidFormat = errors.New("share text does not match expected format")

// ErrUnsupportedGame indicates no parse strategy is registered for the
// requested game identifier.
var ErrUnsupportedGame = errors.New("unsupported game")

// FormatError wraps ErrInvalidFormat with the game and the first token
// that failed to match.
type FormatError struct {
	Game   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Game, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// invalidf builds a FormatError for game with a formatted reason.
func invalidf(game, format string, args ...any) error {
	return &FormatError{Game: game, Reason: fmt.Sprintf(format, args...)}
}

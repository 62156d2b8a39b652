package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Well-known extras keys. Downstream consumers (trend views, CSV
// export) read these by name, so they are part of the persisted shape.
const (
	ExtraPuzzleNumber = "puzzleNumber"
	ExtraDifficulty   = "difficulty"
	ExtraTotalSeconds = "totalSeconds"
	ExtraTheme        = "theme"
	ExtraGuessRows    = "guessRows"
	ExtraStrikes      = "strikes"
	ExtraWordCount    = "wordCount"
	ExtraRank         = "rank"
	ExtraSubScores    = "subScores"
	ExtraManualEntry  = "manualEntry"
)

// Record is one canonical parsed result. Records are immutable after
// construction: a correction is a new record, never an in-place edit.
type Record struct {
	ID          string            `json:"id"`
	GameID      string            `json:"gameId"`
	GameName    string            `json:"gameName"`
	Timestamp   time.Time         `json:"timestamp"`
	Score       *int              `json:"score,omitempty"`
	MaxAttempts int               `json:"maxAttempts"`
	Completed   bool              `json:"completed"`
	RawText     string            `json:"rawText"`
	Extras      map[string]string `json:"extras,omitempty"`
}

// New constructs a validated Record with a fresh ID and timestamp.
func New(gameID, gameName, rawText string) Record {
	return Record{
		ID:        uuid.New().String(),
		GameID:    gameID,
		GameName:  gameName,
		Timestamp: time.Now(),
		RawText:   rawText,
		Extras:    make(map[string]string),
	}
}

// Validate checks the construction invariants.
func (r Record) Validate() error {
	if r.GameName == "" {
		return errors.New("game name is empty")
	}
	if r.RawText == "" {
		return errors.New("raw text is empty")
	}
	if r.Score != nil && r.MaxAttempts > 0 {
		if *r.Score < 0 || *r.Score > r.MaxAttempts {
			return fmt.Errorf("score %d outside attempt bound %d", *r.Score, r.MaxAttempts)
		}
	}
	return nil
}

// Day returns the record's calendar day, truncated in local time.
func (r Record) Day() time.Time {
	return DayOf(r.Timestamp)
}

// PuzzleNumber returns the per-game puzzle identifier, if the dialect
// captured one. It is the primary deduplication key.
func (r Record) PuzzleNumber() (string, bool) {
	n, ok := r.Extras[ExtraPuzzleNumber]
	return n, ok && n != ""
}

// Clone returns a deep copy, so callers can hand records across
// goroutine boundaries without sharing the extras map.
func (r Record) Clone() Record {
	out := r
	if r.Score != nil {
		s := *r.Score
		out.Score = &s
	}
	if r.Extras != nil {
		out.Extras = make(map[string]string, len(r.Extras))
		for k, v := range r.Extras {
			out.Extras[k] = v
		}
	}
	return out
}

// Equal reports field-by-field equality, including extras.
func (r Record) Equal(o Record) bool {
	if r.ID != o.ID || r.GameID != o.GameID || r.GameName != o.GameName ||
		!r.Timestamp.Equal(o.Timestamp) || r.MaxAttempts != o.MaxAttempts ||
		r.Completed != o.Completed || r.RawText != o.RawText {
		return false
	}
	if (r.Score == nil) != (o.Score == nil) {
		return false
	}
	if r.Score != nil && *r.Score != *o.Score {
		return false
	}
	if len(r.Extras) != len(o.Extras) {
		return false
	}
	for k, v := range r.Extras {
		if o.Extras[k] != v {
			return false
		}
	}
	return true
}

// Marshal serializes the record to JSON.
func (r Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal deserializes a record from JSON.
func Unmarshal(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return r, nil
}

// DayOf truncates t to its calendar day in local time.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

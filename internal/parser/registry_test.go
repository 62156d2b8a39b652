package parser

import (
	"errors"
	"testing"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

func TestParseUnsupportedGame(t *testing.T) {
	p := testParser(t)

	_, err := p.Parse("Wordle 1,492 3/6", "nosuchgame")
	if !errors.Is(err, ErrUnsupportedGame) {
		t.Errorf("err = %v, want ErrUnsupportedGame", err)
	}
}

func TestParseDispatchNormalizesID(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("Wordle 100 2/6", "  WoRdLe ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.GameID != "wordle" {
		t.Errorf("gameID = %q, want wordle", rec.GameID)
	}
}

type stubStrategy struct {
	rec results.Record
}

func (s stubStrategy) Parse(string) (results.Record, error) {
	return s.rec, nil
}

func TestRegisterOverridesStrategy(t *testing.T) {
	p := testParser(t)

	rec := results.New("wordle", "Wordle", "custom")
	Completed(1).apply(&rec)
	p.Register("wordle", stubStrategy{rec: rec})

	got, err := p.Parse("anything", "wordle")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.RawText != "custom" {
		t.Errorf("RawText = %q, want custom", got.RawText)
	}
}

func TestParseRejectsInvalidRecord(t *testing.T) {
	p := testParser(t)

	// A strategy returning a record violating construction invariants
	// must surface as an invalid-format error, never a partial record.
	p.Register("wordle", stubStrategy{rec: results.Record{GameID: "wordle"}})

	if _, err := p.Parse("x", "wordle"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestOutcomePairings(t *testing.T) {
	tests := []struct {
		name      string
		outcome   Outcome
		completed bool
		score     int
		hasScore  bool
	}{
		{"completed", Completed(3), true, 3, true},
		{"completedNoScore", CompletedNoScore(), true, 0, false},
		{"failed", Failed(), false, 0, false},
		{"failedScore", FailedScore(2), false, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.IsCompleted(); got != tt.completed {
				t.Errorf("IsCompleted() = %v, want %v", got, tt.completed)
			}
			score, ok := tt.outcome.Score()
			if ok != tt.hasScore || score != tt.score {
				t.Errorf("Score() = %d,%v want %d,%v", score, ok, tt.score, tt.hasScore)
			}
		})
	}
}

func TestStrategyForUnknownDialect(t *testing.T) {
	def := catalog.GameDefinition{ID: "odd", Name: "Odd", Dialect: "made-up"}
	if _, ok := strategyFor(def).(*generic); !ok {
		t.Error("unknown dialect should fall back to generic strategy")
	}
}

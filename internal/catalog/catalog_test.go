package catalog

import (
	"sort"
	"testing"
)

func TestLookupNormalizes(t *testing.T) {
	cat := Default()

	tests := []string{"wordle", "Wordle", " WORDLE "}
	for _, id := range tests {
		def, ok := cat.Lookup(id)
		if !ok || def.Name != "Wordle" {
			t.Errorf("Lookup(%q) = %+v, %v", id, def, ok)
		}
	}

	if _, ok := cat.Lookup("nosuchgame"); ok {
		t.Error("unknown ID should not resolve")
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	wordle, _ := cat.Lookup("wordle")
	if wordle.MaxAttempts != 6 || wordle.Dialect != DialectFixedAttempts {
		t.Errorf("wordle = %+v", wordle)
	}
	quordle, _ := cat.Lookup("quordle")
	if quordle.SubPuzzles != 4 || quordle.MaxAttempts != 0 {
		t.Errorf("quordle = %+v", quordle)
	}
	octordle, _ := cat.Lookup("octordle")
	if octordle.SubPuzzles != 8 {
		t.Errorf("octordle = %+v", octordle)
	}

	if got := len(cat.All()); got != 8 {
		t.Errorf("All() has %d games, want 8", got)
	}
	names := cat.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
}

func TestLowerIsBetter(t *testing.T) {
	tests := []struct {
		scoring Scoring
		want    bool
	}{
		{ScoringAttempts, true},
		{ScoringSeconds, true},
		{ScoringHints, true},
		{ScoringPoints, false},
	}
	for _, tt := range tests {
		if got := tt.scoring.LowerIsBetter(); got != tt.want {
			t.Errorf("%s.LowerIsBetter() = %v, want %v", tt.scoring, got, tt.want)
		}
	}
}

func TestNewSkipsDuplicateIDs(t *testing.T) {
	cat := New([]GameDefinition{
		{ID: "wordle", Name: "First"},
		{ID: "Wordle", Name: "Second"},
	})
	def, _ := cat.Lookup("wordle")
	if def.Name != "First" {
		t.Errorf("duplicate registration replaced the original: %+v", def)
	}
	if len(cat.All()) != 1 {
		t.Errorf("All() = %d entries, want 1", len(cat.All()))
	}
}

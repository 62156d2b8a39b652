package parser

import (
	"errors"
	"testing"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

func testParser(t *testing.T) *Parser {
	t.Helper()
	return New(catalog.Default())
}

func TestFixedAttemptsCompleted(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("Wordle 1,492 3/6\n\n⬛🟨⬛⬛⬛\n🟩🟩⬛⬛🟩\n🟩🟩🟩🟩🟩", "wordle")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 3 {
		t.Errorf("score = %v, want 3", rec.Score)
	}
	if !rec.Completed {
		t.Error("completed = false, want true")
	}
	if got := rec.Extras[results.ExtraPuzzleNumber]; got != "1492" {
		t.Errorf("puzzleNumber = %q, want 1492", got)
	}
	if rec.MaxAttempts != 6 {
		t.Errorf("maxAttempts = %d, want 6", rec.MaxAttempts)
	}
}

func TestFixedAttemptsFailed(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("Wordle 1,492 X/6", "wordle")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score != nil {
		t.Errorf("score = %d, want none", *rec.Score)
	}
	if rec.Completed {
		t.Error("completed = true, want false")
	}
}

// Fail-token dialects must never produce an inconsistent score and
// completion pairing.
func TestFixedAttemptsFlagConsistency(t *testing.T) {
	p := testParser(t)

	tests := []string{
		"Wordle 1,492 1/6",
		"Wordle 1,492 6/6",
		"Wordle 1,492 X/6",
	}
	for _, text := range tests {
		rec, err := p.Parse(text, "wordle")
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if rec.Completed && rec.Score == nil {
			t.Errorf("%q: completed without score", text)
		}
		if !rec.Completed && rec.Score != nil {
			t.Errorf("%q: failed with score %d", text, *rec.Score)
		}
	}
}

func TestFixedAttemptsInvalid(t *testing.T) {
	p := testParser(t)

	for _, text := range []string{"", "Wordle", "Wordle 1,492", "Wordle 1,492 7/"} {
		if _, err := p.Parse(text, "wordle"); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidFormat", text, err)
		}
	}
}

func TestGridSolved(t *testing.T) {
	p := testParser(t)

	text := "Connections\nPuzzle #512\n🟨🟨🟨🟨\n🟩🟩🟩🟩\n🟦🟦🟦🟦\n🟪🟪🟪🟪"
	rec, err := p.Parse(text, "connections")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 4 {
		t.Errorf("score = %v, want 4", rec.Score)
	}
	if !rec.Completed {
		t.Error("completed = false, want true")
	}
	if rec.Extras[results.ExtraStrikes] != "0" {
		t.Errorf("strikes = %q, want 0", rec.Extras[results.ExtraStrikes])
	}
	if rec.Extras[results.ExtraPuzzleNumber] != "512" {
		t.Errorf("puzzleNumber = %q, want 512", rec.Extras[results.ExtraPuzzleNumber])
	}
}

func TestGridWithStrikes(t *testing.T) {
	p := testParser(t)

	text := "Connections\nPuzzle #512\n🟨🟨🟨🟨\n🟩🟩🟦🟩\n🟩🟩🟩🟩\n🟦🟦🟦🟦"
	rec, err := p.Parse(text, "connections")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 3 {
		t.Errorf("score = %v, want 3", rec.Score)
	}
	if rec.Completed {
		t.Error("completed = true, want false")
	}
	if rec.Extras[results.ExtraStrikes] != "1" {
		t.Errorf("strikes = %q, want 1", rec.Extras[results.ExtraStrikes])
	}
	if rec.Extras[results.ExtraGuessRows] != "4" {
		t.Errorf("guessRows = %q, want 4", rec.Extras[results.ExtraGuessRows])
	}
}

func TestGridMissingHeader(t *testing.T) {
	p := testParser(t)

	if _, err := p.Parse("Puzzle #512\n🟨🟨🟨🟨", "connections"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestRankScoreGenius(t *testing.T) {
	p := testParser(t)

	text := "Spelling Bee #245\nI found 24 words\nScore: 96\nRank: Genius"
	rec, err := p.Parse(text, "spellingbee")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 96 {
		t.Errorf("score = %v, want 96", rec.Score)
	}
	if !rec.Completed {
		t.Error("completed = false, want true (Genius rank)")
	}
	if rec.Extras[results.ExtraWordCount] != "24" {
		t.Errorf("wordCount = %q, want 24", rec.Extras[results.ExtraWordCount])
	}
	if rec.Extras[results.ExtraRank] != "Genius" {
		t.Errorf("rank = %q, want Genius", rec.Extras[results.ExtraRank])
	}
}

func TestRankScoreBelowTopTier(t *testing.T) {
	p := testParser(t)

	text := "Spelling Bee\nI found 10 words\nScore: 41\nRank: Solid"
	rec, err := p.Parse(text, "spellingbee")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Completed {
		t.Error("completed = true, want false for Solid rank")
	}
	if rec.Score == nil || *rec.Score != 41 {
		t.Errorf("score = %v, want 41", rec.Score)
	}
}

func TestElapsed(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("I solved the Mini Crossword #890 in 1:23!", "mini")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 83 {
		t.Errorf("score = %v, want 83 seconds", rec.Score)
	}
	if !rec.Completed {
		t.Error("completed = false, want true")
	}
	if rec.Extras[results.ExtraTotalSeconds] != "83" {
		t.Errorf("totalSeconds = %q, want 83", rec.Extras[results.ExtraTotalSeconds])
	}
}

func TestHints(t *testing.T) {
	p := testParser(t)

	text := "Strands #321\n“Out of this world”\n💡🔵🔵💡\n🔵🔵🟡🔵"
	rec, err := p.Parse(text, "strands")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 2 {
		t.Errorf("score = %v, want 2 hints", rec.Score)
	}
	if !rec.Completed {
		t.Error("completed = false, want true")
	}
	if rec.Extras[results.ExtraTheme] != "Out of this world" {
		t.Errorf("theme = %q", rec.Extras[results.ExtraTheme])
	}
}

func TestHintsPerfect(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("Strands #321\n🔵🔵🔵🔵\n🟡🔵🔵🔵", "strands")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 0 {
		t.Errorf("score = %v, want 0", rec.Score)
	}
}

func TestEnclosedQuordleAllSolved(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("Daily Quordle 723\n5️⃣7️⃣\n4️⃣6️⃣", "quordle")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !rec.Completed {
		t.Error("completed = false, want true")
	}
	// Mean of 5,7,4,6 rounded.
	if rec.Score == nil || *rec.Score != 6 {
		t.Errorf("score = %v, want 6", rec.Score)
	}
	if rec.Extras[results.ExtraPuzzleNumber] != "723" {
		t.Errorf("puzzleNumber = %q, want 723", rec.Extras[results.ExtraPuzzleNumber])
	}
	if rec.Extras[results.ExtraSubScores] != "5,7,4,6" {
		t.Errorf("subScores = %q, want 5,7,4,6", rec.Extras[results.ExtraSubScores])
	}
}

func TestEnclosedQuordleWithFailure(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("Daily Quordle 723\n5️⃣🟥\n4️⃣6️⃣", "quordle")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Completed {
		t.Error("completed = true, want false with a failure glyph")
	}
	// Fallback sum of decoded glyphs: 5+4+6.
	if rec.Score == nil || *rec.Score != 15 {
		t.Errorf("score = %v, want 15", rec.Score)
	}
}

func TestEnclosedOctordleExplicitScore(t *testing.T) {
	p := testParser(t)

	text := "Daily Octordle #812\n7️⃣🕚\n🕛8️⃣\n6️⃣9️⃣\n🔟5️⃣\nScore: 68"
	rec, err := p.Parse(text, "octordle")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !rec.Completed {
		t.Error("completed = false, want true")
	}
	if rec.Score == nil || *rec.Score != 68 {
		t.Errorf("score = %v, want explicit total 68", rec.Score)
	}
}

func TestTieredTime(t *testing.T) {
	p := testParser(t)

	rec, err := p.Parse("Pips #44 Hard 4:05", "pips")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 3 {
		t.Errorf("score = %v, want 3 (hard)", rec.Score)
	}
	if rec.Extras[results.ExtraDifficulty] != "hard" {
		t.Errorf("difficulty = %q, want hard", rec.Extras[results.ExtraDifficulty])
	}
	if rec.Extras[results.ExtraTotalSeconds] != "245" {
		t.Errorf("totalSeconds = %q, want 245", rec.Extras[results.ExtraTotalSeconds])
	}
	if !rec.Completed {
		t.Error("completed = false, want true")
	}
}

func TestGenericFallback(t *testing.T) {
	cat := catalog.New([]catalog.GameDefinition{
		{ID: "mystery", Name: "Mystery", Scoring: catalog.ScoringAttempts, Dialect: catalog.DialectGeneric},
	})
	p := New(cat)

	rec, err := p.Parse("Mystery Game day 12: 4/7", "mystery")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Score == nil || *rec.Score != 4 {
		t.Errorf("score = %v, want 4", rec.Score)
	}
	if rec.MaxAttempts != 7 {
		t.Errorf("maxAttempts = %d, want 7", rec.MaxAttempts)
	}

	rec, err = p.Parse("finished today's puzzle!", "mystery")
	if err != nil {
		t.Fatalf("Parse manual: %v", err)
	}
	if rec.Extras[results.ExtraManualEntry] != "true" {
		t.Error("manual entry marker missing")
	}
	if !rec.Completed || rec.Score != nil {
		t.Error("manual entry should be completed with no score")
	}
}

package parser

import (
	"regexp"
	"strings"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// hintGlyph marks a hint use in hint-counted dialects. Zero hints is a
// perfect game.
const hintGlyph = "💡"

var (
	hintsNumRe   = regexp.MustCompile(`#([\d,.]+)`)
	hintsThemeRe = regexp.MustCompile(`[“"]([^”"]+)[”"]`)
)

// hints handles hint-counted dialects: the score is the number of hint
// glyphs anywhere in the text. The format has no failure state.
type hints struct {
	def catalog.GameDefinition
}

func newHints(def catalog.GameDefinition) *hints {
	return &hints{def: def}
}

func (s *hints) Parse(text string) (results.Record, error) {
	m := hintsNumRe.FindStringSubmatch(text)
	if m == nil {
		return results.Record{}, invalidf(s.def.Name, "missing puzzle number")
	}

	used := strings.Count(text, hintGlyph)

	rec := newBaseRecord(s.def, text)
	rec.Extras[results.ExtraPuzzleNumber] = stripSeparators(m[1])
	if tm := hintsThemeRe.FindStringSubmatch(text); tm != nil {
		rec.Extras[results.ExtraTheme] = tm[1]
	}
	Completed(used).apply(&rec)
	return rec, nil
}

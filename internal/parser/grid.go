package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// gridGlyphs is the fixed four-color category glyph set of the
// Connections family.
var gridGlyphs = map[rune]bool{
	'🟨': true,
	'🟩': true,
	'🟦': true,
	'🟪': true,
}

var gridPuzzleRe = regexp.MustCompile(`Puzzle\s+#([\d,.]+)`)

// grid handles multi-row category dialects: every guess row is exactly
// four glyphs from the color set; a row of four identical glyphs is a
// solved category, anything else is a strike.
type grid struct {
	def catalog.GameDefinition
}

func newGrid(def catalog.GameDefinition) *grid {
	return &grid{def: def}
}

func (s *grid) Parse(text string) (results.Record, error) {
	header := s.def.Header
	if header == "" {
		header = s.def.Name
	}
	if !strings.Contains(text, header) {
		return results.Record{}, invalidf(s.def.Name, "missing %q header", header)
	}
	m := gridPuzzleRe.FindStringSubmatch(text)
	if m == nil {
		return results.Record{}, invalidf(s.def.Name, "missing puzzle number marker")
	}
	puzzle := stripSeparators(m[1])

	solved, strikes := 0, 0
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		glyphs := glyphRow(strings.TrimSpace(line))
		if glyphs == nil {
			continue
		}
		rows++
		if allSame(glyphs) {
			solved++
		} else {
			strikes++
		}
	}
	if rows == 0 {
		return results.Record{}, invalidf(s.def.Name, "no guess rows found")
	}

	outcome := FailedScore(solved)
	if solved == 4 {
		outcome = Completed(solved)
	}

	rec := newBaseRecord(s.def, text)
	rec.MaxAttempts = 4
	rec.Extras[results.ExtraPuzzleNumber] = puzzle
	rec.Extras[results.ExtraGuessRows] = strconv.Itoa(rows)
	rec.Extras[results.ExtraStrikes] = strconv.Itoa(strikes)
	outcome.apply(&rec)
	return rec, nil
}

// glyphRow returns the runes of a line composed of exactly four
// category glyphs, or nil for any other line.
func glyphRow(line string) []rune {
	runes := []rune(line)
	if len(runes) != 4 {
		return nil
	}
	for _, r := range runes {
		if !gridGlyphs[r] {
			return nil
		}
	}
	return runes
}

func allSame(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

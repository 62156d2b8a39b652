package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// enclosedToken is one glyph from the enclosed-digit alphabet.
type enclosedToken struct {
	glyph string
	value int // attempt count; -1 marks the failure glyph
}

// enclosedAlphabet maps the multi-puzzle glyph set to attempt counts.
// Keycaps cover 0-10; the clock faces stand in for 11 and 12, and the
// red square marks a failed sub-puzzle. Keycap entries come first so
// the scanner always matches the longest token.
var enclosedAlphabet = []enclosedToken{
	{"0️⃣", 0},
	{"1️⃣", 1},
	{"2️⃣", 2},
	{"3️⃣", 3},
	{"4️⃣", 4},
	{"5️⃣", 5},
	{"6️⃣", 6},
	{"7️⃣", 7},
	{"8️⃣", 8},
	{"9️⃣", 9},
	{"🔟", 10},
	{"🕚", 11},
	{"🕛", 12},
	{"🟥", -1},
}

var enclosedScoreRe = regexp.MustCompile(`(?im)^score:?\s*(\d+)\s*$`)

// enclosed handles multi-puzzle dialects (Quordle, Octordle): the text
// carries one enclosed-digit glyph per sub-puzzle in board order, plus
// a failure glyph for unsolved boards.
type enclosed struct {
	def   catalog.GameDefinition
	numRe *regexp.Regexp
}

func newEnclosed(def catalog.GameDefinition) *enclosed {
	return &enclosed{
		def:   def,
		numRe: regexp.MustCompile(`(?i)(?:daily\s+)?` + regexp.QuoteMeta(def.Name) + `\s+#?([\d,.]+)`),
	}
}

func (s *enclosed) Parse(text string) (results.Record, error) {
	m := s.numRe.FindStringSubmatch(text)
	if m == nil {
		return results.Record{}, invalidf(s.def.Name, "missing %q puzzle number", s.def.Name)
	}

	subScores, failures := scanEnclosed(text)
	if len(subScores)+failures == 0 {
		return results.Record{}, invalidf(s.def.Name, "no sub-puzzle glyphs found")
	}

	score, ok := aggregateScore(text, subScores, failures, s.def.SubPuzzles)
	outcome := Failed()
	switch {
	case failures == 0 && len(subScores) >= s.def.SubPuzzles:
		outcome = Completed(score)
	case ok:
		outcome = FailedScore(score)
	}

	rec := newBaseRecord(s.def, text)
	rec.Extras[results.ExtraPuzzleNumber] = stripSeparators(m[1])
	rec.Extras[results.ExtraSubScores] = joinInts(subScores)
	outcome.apply(&rec)
	return rec, nil
}

// scanEnclosed walks the text in order collecting decoded sub-puzzle
// values and the failure glyph count.
func scanEnclosed(text string) (subScores []int, failures int) {
	for i := 0; i < len(text); {
		matched := false
		for _, tok := range enclosedAlphabet {
			if strings.HasPrefix(text[i:], tok.glyph) {
				if tok.value < 0 {
					failures++
				} else {
					subScores = append(subScores, tok.value)
				}
				i += len(tok.glyph)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
		}
	}
	return subScores, failures
}

// aggregateScore resolves the overall score. An explicit "Score: N"
// line always wins; a clean all-success run uses the rounded mean of
// the sub-scores; otherwise the decoded values are summed.
func aggregateScore(text string, subScores []int, failures, required int) (int, bool) {
	if m := enclosedScoreRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	if len(subScores) == 0 {
		return 0, false
	}
	sum := 0
	for _, v := range subScores {
		sum += v
	}
	if failures == 0 && len(subScores) >= required {
		return (sum + len(subScores)/2) / len(subScores), true
	}
	return sum, true
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// fixedAttempts handles "<Label> <puzzle-number> <attempt-or-X>/<max>"
// dialects, the Wordle family. The puzzle number may carry thousands
// separators ("1,492"); X is the fail token.
type fixedAttempts struct {
	def catalog.GameDefinition
	re  *regexp.Regexp
}

func newFixedAttempts(def catalog.GameDefinition) *fixedAttempts {
	header := def.Header
	if header == "" {
		header = def.Name
	}
	return &fixedAttempts{
		def: def,
		re:  regexp.MustCompile(`(?m)` + regexp.QuoteMeta(header) + `\s+([\d,.]+)\s+([1-9X])/(\d+)`),
	}
}

func (s *fixedAttempts) Parse(text string) (results.Record, error) {
	m := s.re.FindStringSubmatch(text)
	if m == nil {
		return results.Record{}, invalidf(s.def.Name, "no %q result line found", s.def.Name)
	}

	puzzle := stripSeparators(m[1])
	maxAttempts, err := strconv.Atoi(m[3])
	if err != nil || maxAttempts == 0 {
		return results.Record{}, invalidf(s.def.Name, "bad attempt bound %q", m[3])
	}

	outcome := Failed()
	if m[2] != "X" {
		score, err := strconv.Atoi(m[2])
		if err != nil || score > maxAttempts {
			return results.Record{}, invalidf(s.def.Name, "attempt %q outside bound %d", m[2], maxAttempts)
		}
		outcome = Completed(score)
	}

	rec := newBaseRecord(s.def, text)
	rec.MaxAttempts = maxAttempts
	rec.Extras[results.ExtraPuzzleNumber] = puzzle
	outcome.apply(&rec)
	return rec, nil
}

// stripSeparators removes thousands separators from a puzzle number.
func stripSeparators(n string) string {
	return strings.NewReplacer(",", "", ".", "").Replace(n)
}

package parser

import (
	"regexp"
	"strconv"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

var genericRe = regexp.MustCompile(`([1-9X])/(\d+)`)

// generic is the fallback strategy for games without a dedicated
// dialect: it hunts anywhere in the text for an "<attempt>/<max>"
// token. Text with no recognizable token is still accepted as a
// manual entry so the user never loses a result.
type generic struct {
	def catalog.GameDefinition
}

func newGeneric(def catalog.GameDefinition) *generic {
	return &generic{def: def}
}

func (s *generic) Parse(text string) (results.Record, error) {
	if text == "" {
		return results.Record{}, invalidf(s.def.Name, "empty share text")
	}

	rec := newBaseRecord(s.def, text)
	m := genericRe.FindStringSubmatch(text)
	if m == nil {
		rec.Extras[results.ExtraManualEntry] = "true"
		CompletedNoScore().apply(&rec)
		return rec, nil
	}

	maxAttempts, err := strconv.Atoi(m[2])
	if err != nil || maxAttempts == 0 {
		return results.Record{}, invalidf(s.def.Name, "bad attempt bound %q", m[2])
	}
	rec.MaxAttempts = maxAttempts

	outcome := Failed()
	if m[1] != "X" {
		score, _ := strconv.Atoi(m[1])
		if score > maxAttempts {
			return results.Record{}, invalidf(s.def.Name, "attempt %q outside bound %d", m[1], maxAttempts)
		}
		outcome = Completed(score)
	}
	outcome.apply(&rec)
	return rec, nil
}

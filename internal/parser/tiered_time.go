package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// difficultyOrdinals maps the difficulty word to the score. Harder
// boards score higher; the elapsed time is kept only as an extra.
var difficultyOrdinals = map[string]int{
	"easy":   1,
	"medium": 2,
	"hard":   3,
}

var (
	tieredNumRe  = regexp.MustCompile(`#?([\d,.]+)`)
	tieredDiffRe = regexp.MustCompile(`(?i)\b(easy|medium|hard)\b`)
)

// tieredTime handles difficulty-tiered timed dialects: a puzzle
// number, a difficulty word, and an elapsed mm:ss.
type tieredTime struct {
	def catalog.GameDefinition
}

func newTieredTime(def catalog.GameDefinition) *tieredTime {
	return &tieredTime{def: def}
}

func (s *tieredTime) Parse(text string) (results.Record, error) {
	nm := tieredNumRe.FindStringSubmatch(text)
	if nm == nil {
		return results.Record{}, invalidf(s.def.Name, "missing puzzle number")
	}
	dm := tieredDiffRe.FindStringSubmatch(text)
	if dm == nil {
		return results.Record{}, invalidf(s.def.Name, "missing difficulty word")
	}
	seconds, ok := elapsedSeconds(text)
	if !ok {
		return results.Record{}, invalidf(s.def.Name, "missing mm:ss time")
	}

	difficulty := strings.ToLower(dm[1])
	rec := newBaseRecord(s.def, text)
	rec.Extras[results.ExtraPuzzleNumber] = stripSeparators(nm[1])
	rec.Extras[results.ExtraDifficulty] = difficulty
	rec.Extras[results.ExtraTotalSeconds] = strconv.Itoa(seconds)
	Completed(difficultyOrdinals[difficulty]).apply(&rec)
	return rec, nil
}

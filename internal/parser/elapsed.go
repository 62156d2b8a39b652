package parser

import (
	"regexp"
	"strconv"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

var (
	elapsedRe    = regexp.MustCompile(`(\d{1,3}):([0-5]\d)`)
	elapsedNumRe = regexp.MustCompile(`#([\d,.]+)`)
)

// elapsed handles timed dialects: the first mm:ss token becomes the
// score in total seconds, lower being better. The inspected formats
// have no failure state, so a matching text is always completed.
type elapsed struct {
	def catalog.GameDefinition
}

func newElapsed(def catalog.GameDefinition) *elapsed {
	return &elapsed{def: def}
}

func (s *elapsed) Parse(text string) (results.Record, error) {
	seconds, ok := elapsedSeconds(text)
	if !ok {
		return results.Record{}, invalidf(s.def.Name, "missing mm:ss time")
	}

	rec := newBaseRecord(s.def, text)
	rec.Extras[results.ExtraTotalSeconds] = strconv.Itoa(seconds)
	if m := elapsedNumRe.FindStringSubmatch(text); m != nil {
		rec.Extras[results.ExtraPuzzleNumber] = stripSeparators(m[1])
	}
	Completed(seconds).apply(&rec)
	return rec, nil
}

// elapsedSeconds extracts the first mm:ss token as total seconds.
func elapsedSeconds(text string) (int, bool) {
	m := elapsedRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])
	return mins*60 + secs, true
}

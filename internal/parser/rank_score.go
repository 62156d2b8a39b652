package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// topRanks are the rank labels that count as finishing the puzzle.
// Matching is case-insensitive; the score itself does not decide
// completion in this dialect.
var topRanks = map[string]bool{
	"genius":    true,
	"queen bee": true,
}

var (
	rankScoreRe = regexp.MustCompile(`(?is)score:?\s*(\d+)`)
	rankWordsRe = regexp.MustCompile(`(?is)(\d+)\s+words?`)
	rankLabelRe = regexp.MustCompile(`(?im)rank:?\s*([A-Za-z][A-Za-z ]*?)\s*$`)
	rankNumRe   = regexp.MustCompile(`#([\d,.]+)`)
)

// rankScore handles free-score dialects that report a point total, a
// word count, and an earned rank label across multiple lines.
type rankScore struct {
	def catalog.GameDefinition
}

func newRankScore(def catalog.GameDefinition) *rankScore {
	return &rankScore{def: def}
}

func (s *rankScore) Parse(text string) (results.Record, error) {
	sm := rankScoreRe.FindStringSubmatch(text)
	if sm == nil {
		return results.Record{}, invalidf(s.def.Name, "missing score token")
	}
	wm := rankWordsRe.FindStringSubmatch(text)
	if wm == nil {
		return results.Record{}, invalidf(s.def.Name, "missing word count")
	}
	rm := rankLabelRe.FindStringSubmatch(text)
	if rm == nil {
		return results.Record{}, invalidf(s.def.Name, "missing rank label")
	}

	score, err := strconv.Atoi(sm[1])
	if err != nil {
		return results.Record{}, invalidf(s.def.Name, "bad score %q", sm[1])
	}
	rank := strings.TrimSpace(rm[1])

	outcome := FailedScore(score)
	if topRanks[strings.ToLower(rank)] {
		outcome = Completed(score)
	}

	rec := newBaseRecord(s.def, text)
	rec.Extras[results.ExtraWordCount] = wm[1]
	rec.Extras[results.ExtraRank] = rank
	if nm := rankNumRe.FindStringSubmatch(text); nm != nil {
		rec.Extras[results.ExtraPuzzleNumber] = stripSeparators(nm[1])
	}
	outcome.apply(&rec)
	return rec, nil
}

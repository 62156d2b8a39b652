package analytics

import (
	"fmt"
	"time"

	"github.com/dchen/streaklog/internal/results"
)

// testNow is the fixed reference instant for the engine tests.
// 2026-03-20 is a Friday.
var testNow = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

var recSeq int

// arec builds a record for engine tests. A negative score means the
// record carries no score.
func arec(gameID, gameName string, ts time.Time, completed bool, score int) results.Record {
	recSeq++
	rec := results.Record{
		ID:        fmt.Sprintf("rec-%d", recSeq),
		GameID:    gameID,
		GameName:  gameName,
		Timestamp: ts,
		Completed: completed,
		RawText:   "share text",
	}
	if score >= 0 {
		s := score
		rec.Score = &s
	}
	return rec
}

package analytics

import (
	"testing"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
	"github.com/dchen/streaklog/internal/streaks"
)

func TestComputeGameBreakdown(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(2), true, 4),
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("spellingbee", "Spelling Bee", daysAgo(1), true, 50),
		arec("spellingbee", "Spelling Bee", daysAgo(2), true, 80),
		arec("mini", "Mini Crossword", daysAgo(1), false, -1),
	}

	states := make(streaks.Set)
	for _, rec := range records {
		states.Apply(rec)
	}

	rows := ComputeGameBreakdown(Scope{Window: WindowWeek}, catalog.Default(), states, records, testNow)
	if len(rows) != 3 {
		t.Fatalf("%d rows, want 3", len(rows))
	}

	// Plays descending, then name: Spelling Bee and Wordle tie at 2.
	if rows[0].GameName != "Spelling Bee" || rows[1].GameName != "Wordle" || rows[2].GameName != "Mini Crossword" {
		t.Errorf("order = %q, %q, %q", rows[0].GameName, rows[1].GameName, rows[2].GameName)
	}

	// Attempts are lower-is-better, points higher-is-better.
	if rows[1].BestScore == nil || *rows[1].BestScore != 3 {
		t.Errorf("wordle best = %v, want 3", rows[1].BestScore)
	}
	if rows[0].BestScore == nil || *rows[0].BestScore != 80 {
		t.Errorf("spellingbee best = %v, want 80", rows[0].BestScore)
	}
	if rows[2].BestScore != nil {
		t.Errorf("mini best = %v, want none for an uncompleted game", rows[2].BestScore)
	}

	if rows[1].CurrentStreak != 2 {
		t.Errorf("wordle current streak = %d, want 2", rows[1].CurrentStreak)
	}
	if rows[2].CompletionRate != 0 {
		t.Errorf("mini completion rate = %f", rows[2].CompletionRate)
	}
}

func TestComputeGameBreakdownEmpty(t *testing.T) {
	if got := ComputeGameBreakdown(Scope{Window: WindowWeek}, catalog.Default(), nil, nil, testNow); got != nil {
		t.Errorf("rows = %+v, want none", got)
	}
}

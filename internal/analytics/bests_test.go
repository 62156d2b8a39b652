package analytics

import (
	"testing"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

func bestsFixture() []results.Record {
	return []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("wordle", "Wordle", daysAgo(10), true, 2), // better, but out of the week window
		arec("spellingbee", "Spelling Bee", daysAgo(3), true, 80),
		arec("spellingbee", "Spelling Bee", daysAgo(2), true, 50),
		arec("mini", "Mini Crossword", daysAgo(2), true, 95),
	}
}

func findBests(bests []PersonalBest, kind BestKind) []PersonalBest {
	var out []PersonalBest
	for _, b := range bests {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

func TestPersonalBestsNeverLeaveTheWindow(t *testing.T) {
	bests := ComputePersonalBests(Scope{Window: WindowWeek}, catalog.Default(), bestsFixture(), testNow)

	for _, b := range findBests(bests, BestScore) {
		if b.GameID == "wordle" && b.Value == 2 {
			t.Fatal("surfaced a best from outside the window")
		}
	}

	scores := findBests(bests, BestScore)
	if len(scores) != bestsPerKind {
		t.Fatalf("%d score bests, want %d", len(scores), bestsPerKind)
	}
	// Ascending by value: the in-window Wordle 3, then Spelling Bee 80.
	if scores[0].GameID != "wordle" || scores[0].Value != 3 {
		t.Errorf("scores[0] = %+v", scores[0])
	}
	if scores[1].GameID != "spellingbee" || scores[1].Value != 80 {
		t.Errorf("scores[1] = %+v", scores[1])
	}
}

func TestPersonalBestsScoringDirection(t *testing.T) {
	bests := ComputePersonalBests(Scope{Window: WindowWeek}, catalog.Default(), bestsFixture(), testNow)

	// Spelling Bee is points-scored; 80 beats 50 despite being larger.
	for _, b := range findBests(bests, BestScore) {
		if b.GameID == "spellingbee" && b.Value != 80 {
			t.Errorf("spellingbee best = %d, want 80", b.Value)
		}
	}
}

func TestPersonalBestsStreaks(t *testing.T) {
	bests := ComputePersonalBests(Scope{Window: WindowWeek}, catalog.Default(), bestsFixture(), testNow)

	streaks := findBests(bests, BestLongestStreak)
	if len(streaks) != bestsPerKind {
		t.Fatalf("%d streak bests, want %d", len(streaks), bestsPerKind)
	}
	if streaks[0].GameID != "spellingbee" || streaks[0].Value != 2 {
		t.Errorf("streaks[0] = %+v", streaks[0])
	}
	// One-day ties resolve by display name.
	if streaks[1].GameName != "Mini Crossword" || streaks[1].Value != 1 {
		t.Errorf("streaks[1] = %+v", streaks[1])
	}
}

func TestPersonalBestsBusiestDay(t *testing.T) {
	bests := ComputePersonalBests(Scope{Window: WindowWeek}, catalog.Default(), bestsFixture(), testNow)

	busiest := findBests(bests, BestBusiestDay)
	if len(busiest) != 1 {
		t.Fatalf("%d busiest-day bests, want 1", len(busiest))
	}
	if busiest[0].Value != 2 || !busiest[0].Day.Equal(results.DayOf(daysAgo(2))) {
		t.Errorf("busiest = %+v", busiest[0])
	}
}

func TestBusiestDayRequiresMoreThanOnePlay(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(1), true, 3),
		arec("wordle", "Wordle", daysAgo(2), true, 4),
	}
	if _, ok := busiestDay(records); ok {
		t.Error("single-play days should not produce a busiest-day best")
	}
}

func TestPersonalBestsEmptyWindow(t *testing.T) {
	records := []results.Record{
		arec("wordle", "Wordle", daysAgo(30), true, 3),
	}
	bests := ComputePersonalBests(Scope{Window: WindowWeek}, catalog.Default(), records, testNow)
	if bests != nil {
		t.Errorf("bests = %+v, want none", bests)
	}
}

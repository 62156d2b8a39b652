package results

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRecordRoundTrip(t *testing.T) {
	score := 3
	rec := Record{
		ID:          "abc-123",
		GameID:      "wordle",
		GameName:    "Wordle",
		Timestamp:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Score:       &score,
		MaxAttempts: 6,
		Completed:   true,
		RawText:     "Wordle 1,492 3/6",
		Extras: map[string]string{
			ExtraPuzzleNumber: "1492",
			ExtraDifficulty:   "hard",
		},
	}

	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !rec.Equal(back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, rec)
	}
}

func TestValidate(t *testing.T) {
	score := 7
	tests := []struct {
		name    string
		rec     Record
		wantErr bool
	}{
		{"ok", Record{GameName: "Wordle", RawText: "x", MaxAttempts: 6}, false},
		{"empty name", Record{RawText: "x"}, true},
		{"empty raw text", Record{GameName: "Wordle"}, true},
		{"score out of bound", Record{GameName: "Wordle", RawText: "x", MaxAttempts: 6, Score: &score}, true},
		{"unbounded score", Record{GameName: "Mini", RawText: "x", Score: &score}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	score := 2
	rec := Record{
		GameName: "Wordle",
		RawText:  "x",
		Score:    &score,
		Extras:   map[string]string{ExtraPuzzleNumber: "1"},
	}
	cp := rec.Clone()
	*cp.Score = 9
	cp.Extras[ExtraPuzzleNumber] = "2"

	if *rec.Score != 2 || rec.Extras[ExtraPuzzleNumber] != "1" {
		t.Error("Clone shares state with the original")
	}
}

func TestWriteCSV(t *testing.T) {
	score := 83
	records := []Record{
		{
			GameName:    "Mini Crossword",
			Timestamp:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			Score:       &score,
			Completed:   true,
			RawText:     "x",
			MaxAttempts: 0,
		},
		{
			GameName:    "Wordle",
			Timestamp:   time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC),
			Completed:   false,
			RawText:     "y",
			MaxAttempts: 6,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "date,game,score,maxAttempts,completed" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2026-03-14T09:30:00Z,Mini Crossword,83,0,true" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2026-03-15T08:00:00Z,Wordle,,6,false" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := DayOf(ts); !got.Equal(want) {
		t.Errorf("DayOf = %v, want %v", got, want)
	}
}

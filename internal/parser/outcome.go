package parser

import "github.com/dchen/streaklog/internal/results"

type outcomeKind int

const (
	outcomeCompleted outcomeKind = iota
	outcomeCompletedNoScore
	outcomeFailed
	outcomeFailedScore
)

// Outcome is the per-dialect completion/score pairing. Modeling it as
// a tagged value keeps the score and completion flag consistent by
// construction: a dialect can only produce the pairings its failure
// semantics allow.
type Outcome struct {
	kind  outcomeKind
	score int
}

// Completed is a finished puzzle with a numeric score.
func Completed(score int) Outcome {
	return Outcome{kind: outcomeCompleted, score: score}
}

// CompletedNoScore is a finished puzzle in a dialect with no numeric
// score (manual entries).
func CompletedNoScore() Outcome {
	return Outcome{kind: outcomeCompletedNoScore}
}

// Failed is an unfinished puzzle with no score (fail-token dialects).
func Failed() Outcome {
	return Outcome{kind: outcomeFailed}
}

// FailedScore is an unfinished puzzle that still carries a partial
// score, like solved category counts in grid dialects.
func FailedScore(score int) Outcome {
	return Outcome{kind: outcomeFailedScore, score: score}
}

// IsCompleted reports whether the puzzle was finished.
func (o Outcome) IsCompleted() bool {
	return o.kind == outcomeCompleted || o.kind == outcomeCompletedNoScore
}

// Score returns the numeric score, if this outcome carries one.
func (o Outcome) Score() (int, bool) {
	if o.kind == outcomeCompleted || o.kind == outcomeFailedScore {
		return o.score, true
	}
	return 0, false
}

// apply writes the outcome onto a record, keeping the score pointer
// and completion flag in lockstep.
func (o Outcome) apply(r *results.Record) {
	r.Completed = o.IsCompleted()
	if s, ok := o.Score(); ok {
		sc := s
		r.Score = &sc
	} else {
		r.Score = nil
	}
}

package catalog

import (
	"sort"
	"strings"
)

// Scoring describes how a game's numeric score should be compared.
type Scoring string

const (
	// ScoringAttempts is a lower-is-better attempt count with an upper bound.
	ScoringAttempts Scoring = "attempts"
	// ScoringSeconds is a lower-is-better elapsed time in seconds.
	ScoringSeconds Scoring = "seconds"
	// ScoringPoints is a higher-is-better point total.
	ScoringPoints Scoring = "points"
	// ScoringHints is a lower-is-better hint count, zero being perfect.
	ScoringHints Scoring = "hints"
)

// LowerIsBetter reports whether smaller scores beat larger ones.
func (s Scoring) LowerIsBetter() bool {
	return s != ScoringPoints
}

// Dialect identifies the share-text format family a game produces.
type Dialect string

const (
	DialectFixedAttempts Dialect = "fixed_attempts"
	DialectGrid          Dialect = "grid"
	DialectRankScore     Dialect = "rank_score"
	DialectElapsed       Dialect = "elapsed"
	DialectHints         Dialect = "hints"
	DialectEnclosed      Dialect = "enclosed"
	DialectTieredTime    Dialect = "tiered_time"
	DialectGeneric       Dialect = "generic"
)

// GameDefinition describes one supported game. Definitions are
// immutable configuration; all behavior lives in the parser and
// analytics packages.
type GameDefinition struct {
	ID          string
	Name        string
	Scoring     Scoring
	Dialect     Dialect
	MaxAttempts int // 0 when the dialect has no attempt bound

	// Header is the literal share-text label where the dialect needs
	// one (fixed-attempts prefix, grid header token).
	Header string

	// SubPuzzles is the success count an enclosed-digit game requires.
	SubPuzzles int
}

// Catalog is an immutable lookup table of game definitions, keyed by
// lower-cased identifier. Construct one at startup and pass it to
// whatever needs it.
type Catalog struct {
	byID  map[string]GameDefinition
	order []string
}

// New builds a catalog from the given definitions.
func New(defs []GameDefinition) *Catalog {
	c := &Catalog{byID: make(map[string]GameDefinition, len(defs))}
	for _, d := range defs {
		id := NormalizeID(d.ID)
		if _, dup := c.byID[id]; dup {
			continue
		}
		c.byID[id] = d
		c.order = append(c.order, id)
	}
	return c
}

// Default returns a catalog of the built-in games.
func Default() *Catalog {
	return New(builtinGames())
}

// Lookup returns the definition for id, normalizing case and spacing.
func (c *Catalog) Lookup(id string) (GameDefinition, bool) {
	d, ok := c.byID[NormalizeID(id)]
	return d, ok
}

// All returns every definition in registration order.
func (c *Catalog) All() []GameDefinition {
	defs := make([]GameDefinition, 0, len(c.order))
	for _, id := range c.order {
		defs = append(defs, c.byID[id])
	}
	return defs
}

// Names returns the display names of all games, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byID))
	for _, d := range c.byID {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// NormalizeID lower-cases an identifier and strips surrounding space,
// so "Wordle" and "wordle " dispatch to the same game.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// builtinGames returns the static game table. IDs are stable and used
// as deduplication and dispatch keys; never reuse or rename one.
func builtinGames() []GameDefinition {
	return []GameDefinition{
		{
			ID:          "wordle",
			Name:        "Wordle",
			Scoring:     ScoringAttempts,
			Dialect:     DialectFixedAttempts,
			MaxAttempts: 6,
			Header:      "Wordle",
		},
		{
			ID:      "connections",
			Name:    "Connections",
			Scoring: ScoringAttempts,
			Dialect: DialectGrid,
			Header:  "Connections",
		},
		{
			ID:      "spellingbee",
			Name:    "Spelling Bee",
			Scoring: ScoringPoints,
			Dialect: DialectRankScore,
		},
		{
			ID:      "mini",
			Name:    "Mini Crossword",
			Scoring: ScoringSeconds,
			Dialect: DialectElapsed,
		},
		{
			ID:      "strands",
			Name:    "Strands",
			Scoring: ScoringHints,
			Dialect: DialectHints,
		},
		{
			// Aggregate scores (sums, explicit totals) exceed the
			// per-board attempt bound, so no MaxAttempts is declared.
			ID:         "quordle",
			Name:       "Quordle",
			Scoring:    ScoringAttempts,
			Dialect:    DialectEnclosed,
			SubPuzzles: 4,
		},
		{
			ID:         "octordle",
			Name:       "Octordle",
			Scoring:    ScoringAttempts,
			Dialect:    DialectEnclosed,
			SubPuzzles: 8,
		},
		{
			ID:      "pips",
			Name:    "Pips",
			Scoring: ScoringPoints,
			Dialect: DialectTieredTime,
		},
	}
}

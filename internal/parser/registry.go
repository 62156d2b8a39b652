package parser

import (
	"fmt"

	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/results"
)

// Strategy extracts a canonical result from one game's share text.
// Implementations are pure: they read only their arguments and either
// return a fully populated record or an error wrapping
// ErrInvalidFormat. Partially populated records are never returned.
type Strategy interface {
	Parse(text string) (results.Record, error)
}

// Parser dispatches share text to the per-game strategy registered for
// a game identifier. Adding a game means registering a strategy, not
// editing a dispatch switch.
type Parser struct {
	catalog    *catalog.Catalog
	strategies map[string]Strategy
}

// New builds a parser with a strategy registered for every game in the
// catalog, chosen by the game's declared dialect. Games with an
// unrecognized dialect tag fall back to the generic strategy.
func New(cat *catalog.Catalog) *Parser {
	p := &Parser{
		catalog:    cat,
		strategies: make(map[string]Strategy),
	}
	for _, def := range cat.All() {
		p.Register(def.ID, strategyFor(def))
	}
	return p
}

// Register binds a strategy to a game identifier, replacing any
// existing binding.
func (p *Parser) Register(gameID string, s Strategy) {
	p.strategies[catalog.NormalizeID(gameID)] = s
}

// Parse extracts a result record from rawText for the given game.
func (p *Parser) Parse(rawText, gameID string) (results.Record, error) {
	id := catalog.NormalizeID(gameID)
	s, ok := p.strategies[id]
	if !ok {
		return results.Record{}, fmt.Errorf("%w: %s", ErrUnsupportedGame, gameID)
	}
	rec, err := s.Parse(rawText)
	if err != nil {
		return results.Record{}, err
	}
	if err := rec.Validate(); err != nil {
		return results.Record{}, invalidf(rec.GameName, "invalid record: %v", err)
	}
	return rec, nil
}

// strategyFor maps a dialect tag to its implementation.
func strategyFor(def catalog.GameDefinition) Strategy {
	switch def.Dialect {
	case catalog.DialectFixedAttempts:
		return newFixedAttempts(def)
	case catalog.DialectGrid:
		return newGrid(def)
	case catalog.DialectRankScore:
		return newRankScore(def)
	case catalog.DialectElapsed:
		return newElapsed(def)
	case catalog.DialectHints:
		return newHints(def)
	case catalog.DialectEnclosed:
		return newEnclosed(def)
	case catalog.DialectTieredTime:
		return newTieredTime(def)
	default:
		return newGeneric(def)
	}
}

// newBaseRecord builds the common record fields every strategy shares.
func newBaseRecord(def catalog.GameDefinition, rawText string) results.Record {
	rec := results.New(def.ID, def.Name, rawText)
	rec.MaxAttempts = def.MaxAttempts
	return rec
}

package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dchen/streaklog/ent"
	"github.com/dchen/streaklog/ent/resultevent"
	"github.com/dchen/streaklog/internal/results"
)

// resultRepo implements ResultRepo on the ent client.
type resultRepo struct {
	client *ent.Client
	seq    *sequenceCounter
	log    zerolog.Logger
}

func (r *resultRepo) Append(ctx context.Context, rec results.Record) (bool, error) {
	if err := rec.Validate(); err != nil {
		return false, fmt.Errorf("invalid record: %w", err)
	}

	dup, err := r.isDuplicate(ctx, rec)
	if err != nil {
		return false, err
	}
	if dup {
		r.log.Debug().Str("game", rec.GameID).Msg("duplicate result dropped")
		return false, nil
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return false, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(rec.Timestamp).
		SetRecordID(rec.ID).
		SetGameID(rec.GameID).
		SetGameName(rec.GameName).
		SetMaxAttempts(rec.MaxAttempts).
		SetCompleted(rec.Completed).
		SetRawText(rec.RawText).
		SetExtras(rec.Extras)

	if rec.Score != nil {
		builder = builder.SetScore(*rec.Score)
	}

	if _, err := builder.Save(ctx); err != nil {
		return false, fmt.Errorf("save result event: %w", err)
	}
	return true, nil
}

// isDuplicate checks the game's existing rows for the same puzzle
// number, or the same calendar day when the record has no puzzle
// number. Per-game row counts are small enough to compare in process.
func (r *resultRepo) isDuplicate(ctx context.Context, rec results.Record) (bool, error) {
	existing, err := r.client.ResultEvent.Query().
		Where(resultevent.GameID(rec.GameID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("query existing results: %w", err)
	}

	puzzle, hasPuzzle := rec.PuzzleNumber()
	day := rec.Day()
	for _, e := range existing {
		if hasPuzzle {
			if e.Extras[results.ExtraPuzzleNumber] == puzzle {
				return true, nil
			}
			continue
		}
		if results.DayOf(e.Timestamp).Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (r *resultRepo) AllRecords(ctx context.Context) ([]results.Record, error) {
	events, err := r.client.ResultEvent.Query().
		Order(ent.Asc(resultevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	records := make([]results.Record, len(events))
	for i, e := range events {
		records[i] = entToRecord(e)
	}
	return records, nil
}

func (r *resultRepo) Stats(ctx context.Context) (Stats, error) {
	count, err := r.client.ResultEvent.Query().Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count results: %w", err)
	}
	if count == 0 {
		return Stats{}, nil
	}

	latest, err := r.client.ResultEvent.Query().
		Order(ent.Desc(resultevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("query latest result: %w", err)
	}
	return Stats{Count: count, Latest: latest.Timestamp}, nil
}

func (r *resultRepo) Clear(ctx context.Context) error {
	if _, err := r.client.ResultEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	if _, err := r.client.Snapshot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}

// entToRecord converts an ent row back to the domain record.
func entToRecord(e *ent.ResultEvent) results.Record {
	rec := results.Record{
		ID:          e.RecordID,
		GameID:      e.GameID,
		GameName:    e.GameName,
		Timestamp:   e.Timestamp,
		MaxAttempts: e.MaxAttempts,
		Completed:   e.Completed,
		RawText:     e.RawText,
		Extras:      e.Extras,
	}
	if e.Score != nil {
		s := *e.Score
		rec.Score = &s
	}
	return rec
}

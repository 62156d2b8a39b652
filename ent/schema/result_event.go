package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one parsed puzzle result. Rows are append-only:
// corrections produce a new row, never an update.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").NotEmpty().Unique(),
		field.String("game_id").NotEmpty(),
		field.String("game_name").NotEmpty(),
		field.Int("score").Optional().Nillable(),
		field.Int("max_attempts"),
		field.Bool("completed"),
		field.Text("raw_text").NotEmpty(),
		field.JSON("extras", map[string]string{}).
			Comment("Dialect-specific side channel (puzzleNumber, difficulty, ...)"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_id"),
		index.Fields("game_id", "timestamp"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlayResult records the outcome of one play-through of a mini-game.
type PlayResult struct {
	ent.Schema
}

func (PlayResult) Mixin() []ent.Mixin {
	return []ent.Mixin{PlayEventMixin{}}
}

func (PlayResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("family").
			NotEmpty().
			Comment("Operation family the problems were drawn from"),
		field.Int("level").
			Comment("Difficulty level 1-4"),
		field.Int("total_rounds"),
		field.Int("answered"),
		field.Int("correct"),
		field.Int("accuracy").
			Comment("Rounded percentage 0-100"),
		field.Int("stars").
			Comment("0-3"),
		field.Bool("completed").
			Comment("False when the learner quit early"),
		field.Int64("duration_ms"),
	}
}

func (PlayResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_id", "level"),
	}
}

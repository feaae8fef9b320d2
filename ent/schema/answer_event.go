package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer within a play session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{PlayEventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("round").
			Comment("1-based round the answer was given in"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.Int("correct_answer"),
		field.Int("learner_answer").
			Comment("What the learner picked or typed"),
		field.Bool("correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.String("answer_format").
			NotEmpty().
			Comment("choice or typed"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_id"),
		index.Fields("correct"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// PlayEventMixin holds the columns every row written during play shares:
// its place in the global sequence, when it happened, and which session
// of which mini-game produced it.
type PlayEventMixin struct {
	mixin.Schema
}

func (PlayEventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global order across results and answers"),
		field.Time("timestamp").
			Immutable().
			Comment("UTC"),
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("UUID of the play session"),
		field.String("game_id").
			NotEmpty().
			Immutable().
			Comment("Catalog ID of the mini-game"),
	}
}

func (PlayEventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("session_id"),
	}
}

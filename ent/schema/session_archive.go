package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionArchive stores one imported session result file. The raw JSON
// payload is kept verbatim so analytics can always be recomputed; the
// scalar columns exist for listing and filtering.
type SessionArchive struct {
	ent.Schema
}

func (SessionArchive) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable().
			Comment("Stable identifier assigned at import"),
		field.String("filename").
			Unique().
			NotEmpty().
			Comment("Source file name, natural key for re-imports"),
		field.String("quiz_title").
			Optional().
			Comment("Quiz title as recorded by the host"),
		field.String("game_pin").
			Optional(),
		field.Time("saved").
			Optional().
			Nillable().
			Comment("When the host saved the session, if known"),
		field.Int("participant_count").
			Default(0),
		field.Int("question_count").
			Default(0),
		field.Bytes("payload").
			Comment("Raw session record JSON"),
		field.Time("imported_at").
			Default(time.Now).
			Immutable(),
	}
}

func (SessionArchive) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_title"),
		index.Fields("saved"),
	}
}

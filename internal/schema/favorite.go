package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Favorite is a user's bookmark of a therapist, with a denormalized
// snapshot of the therapist's display fields for cheap list rendering.
type Favorite struct {
	ent.Schema
}

func (Favorite) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Favorite) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.String("therapist_name").
			MaxLen(100),

		field.String("specialization").
			MaxLen(100),

		field.Float("rating").
			Default(0),
	}
}

func (Favorite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "therapist_id").
			Unique(),
	}
}

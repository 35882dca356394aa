package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Therapist is a practitioner account with a public directory profile.
type Therapist struct {
	ent.Schema
}

func (Therapist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Therapist) Fields() []ent.Field {
	return []ent.Field{
		field.String("display_name").
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.String("specialization").
			MaxLen(100),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Float("rating").
			Default(0).
			Comment("Aggregated rating, 0 to 5"),

		field.Float("latitude").
			Optional().
			Nillable(),

		field.Float("longitude").
			Optional().
			Nillable(),

		field.Bool("is_accepting").
			Default(true).
			Comment("Whether this therapist is accepting new bookings"),
	}
}

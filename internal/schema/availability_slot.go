package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilitySlot is one bookable time-range label offered by a therapist,
// e.g. "10:00 AM - 11:00 AM". Stored one row per label so that add/remove
// are element-level writes instead of a whole-list rewrite.
type AvailabilitySlot struct {
	ent.Schema
}

func (AvailabilitySlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilitySlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.String("label").
			NotEmpty().
			MaxLen(100),

		field.Int("position").
			Default(0).
			Comment("Insertion order within the therapist's list"),
	}
}

func (AvailabilitySlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "label").
			Unique(),
		index.Fields("therapist_id", "position"),
	}
}

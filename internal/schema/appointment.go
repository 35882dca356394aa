package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a user and a therapist.
//
// One authoritative record indexed by both party ids. There is no
// per-party copy, so a status change is visible to both read paths in
// the same write.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → therapists.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("therapist_name").
			MaxLen(100).
			Comment("Snapshot of the therapist display name at booking time"),

		field.String("user_name").
			MaxLen(100).
			Comment("Snapshot of the user display name at booking time"),

		field.String("appointment_date").
			MaxLen(10).
			Comment("Calendar date in 2006-01-02 form, validated at write"),

		field.String("slot_label").
			MaxLen(100).
			Comment("The booked availability label, e.g. \"10:00 AM - 11:00 AM\""),

		field.Time("starts_at").
			Comment("Normalized start timestamp computed from date + slot label"),

		field.Enum("session_type").
			Values("online", "in_person"),

		field.Enum("status").
			Values("pending", "approved", "cancelled").
			Default("pending"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "starts_at"),
		index.Fields("therapist_id", "starts_at"),
		index.Fields("user_id", "created_at"),

		// Slot exclusivity: at most one live booking per
		// (therapist, date, slot). Cancelled records free the key.
		index.Fields("therapist_id", "appointment_date", "slot_label").
			Unique().
			Annotations(entsql.IndexWhere("status <> 'cancelled'")),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a client account: someone who browses therapists and books sessions.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("display_name").
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 normalized"),

		field.String("password_hash").
			Sensitive(),

		field.String("profile_image_key").
			Optional().
			Nillable().
			MaxLen(512).
			Comment("Object key in S3, presigned on read"),
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "therapist_name", Type: field.TypeString, Size: 100},
		{Name: "user_name", Type: field.TypeString, Size: 100},
		{Name: "appointment_date", Type: field.TypeString, Size: 10},
		{Name: "slot_label", Type: field.TypeString, Size: 100},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "session_type", Type: field.TypeEnum, Enums: []string{"online", "in_person"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "cancelled"}, Default: "pending"},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_user_id_starts_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[9]},
			},
			{
				Name:    "appointment_therapist_id_starts_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[9]},
			},
			{
				Name:    "appointment_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[1]},
			},
			{
				Name:    "appointment_therapist_id_appointment_date_slot_label",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[7], AppointmentsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status <> 'cancelled'",
				},
			},
		},
	}
	// AvailabilitySlotsColumns holds the columns for the "availability_slots" table.
	AvailabilitySlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "label", Type: field.TypeString, Size: 100},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// AvailabilitySlotsTable holds the schema information for the "availability_slots" table.
	AvailabilitySlotsTable = &schema.Table{
		Name:       "availability_slots",
		Columns:    AvailabilitySlotsColumns,
		PrimaryKey: []*schema.Column{AvailabilitySlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityslot_therapist_id_label",
				Unique:  true,
				Columns: []*schema.Column{AvailabilitySlotsColumns[3], AvailabilitySlotsColumns[4]},
			},
			{
				Name:    "availabilityslot_therapist_id_position",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitySlotsColumns[3], AvailabilitySlotsColumns[5]},
			},
		},
	}
	// FavoritesColumns holds the columns for the "favorites" table.
	FavoritesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "therapist_name", Type: field.TypeString, Size: 100},
		{Name: "specialization", Type: field.TypeString, Size: 100},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
	}
	// FavoritesTable holds the schema information for the "favorites" table.
	FavoritesTable = &schema.Table{
		Name:       "favorites",
		Columns:    FavoritesColumns,
		PrimaryKey: []*schema.Column{FavoritesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "favorite_user_id_therapist_id",
				Unique:  true,
				Columns: []*schema.Column{FavoritesColumns[2], FavoritesColumns[3]},
			},
		},
	}
	// TherapistsColumns holds the columns for the "therapists" table.
	TherapistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "specialization", Type: field.TypeString, Size: 100},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_accepting", Type: field.TypeBool, Default: true},
	}
	// TherapistsTable holds the schema information for the "therapists" table.
	TherapistsTable = &schema.Table{
		Name:       "therapists",
		Columns:    TherapistsColumns,
		PrimaryKey: []*schema.Column{TherapistsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "profile_image_key", Type: field.TypeString, Nullable: true, Size: 512},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AvailabilitySlotsTable,
		FavoritesTable,
		TherapistsTable,
		UsersTable,
	}
)

func init() {
}

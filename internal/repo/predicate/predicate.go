// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AvailabilitySlot is the predicate function for availabilityslot builders.
type AvailabilitySlot func(*sql.Selector)

// Favorite is the predicate function for favorite builders.
type Favorite func(*sql.Selector)

// Therapist is the predicate function for therapist builders.
type Therapist func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

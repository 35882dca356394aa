// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/availabilityslot"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/favorite"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/user"
	"github.com/wellnest-hq/wellnest_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescTherapistName is the schema descriptor for therapist_name field.
	appointmentDescTherapistName := appointmentFields[2].Descriptor()
	// appointment.TherapistNameValidator is a validator for the "therapist_name" field. It is called by the builders before save.
	appointment.TherapistNameValidator = appointmentDescTherapistName.Validators[0].(func(string) error)
	// appointmentDescUserName is the schema descriptor for user_name field.
	appointmentDescUserName := appointmentFields[3].Descriptor()
	// appointment.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	appointment.UserNameValidator = appointmentDescUserName.Validators[0].(func(string) error)
	// appointmentDescAppointmentDate is the schema descriptor for appointment_date field.
	appointmentDescAppointmentDate := appointmentFields[4].Descriptor()
	// appointment.AppointmentDateValidator is a validator for the "appointment_date" field. It is called by the builders before save.
	appointment.AppointmentDateValidator = appointmentDescAppointmentDate.Validators[0].(func(string) error)
	// appointmentDescSlotLabel is the schema descriptor for slot_label field.
	appointmentDescSlotLabel := appointmentFields[5].Descriptor()
	// appointment.SlotLabelValidator is a validator for the "slot_label" field. It is called by the builders before save.
	appointment.SlotLabelValidator = appointmentDescSlotLabel.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	availabilityslotMixin := schema.AvailabilitySlot{}.Mixin()
	availabilityslotMixinFields0 := availabilityslotMixin[0].Fields()
	_ = availabilityslotMixinFields0
	availabilityslotMixinFields1 := availabilityslotMixin[1].Fields()
	_ = availabilityslotMixinFields1
	availabilityslotFields := schema.AvailabilitySlot{}.Fields()
	_ = availabilityslotFields
	// availabilityslotDescCreatedAt is the schema descriptor for created_at field.
	availabilityslotDescCreatedAt := availabilityslotMixinFields1[0].Descriptor()
	// availabilityslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityslot.DefaultCreatedAt = availabilityslotDescCreatedAt.Default.(func() time.Time)
	// availabilityslotDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityslotDescUpdatedAt := availabilityslotMixinFields1[1].Descriptor()
	// availabilityslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityslot.DefaultUpdatedAt = availabilityslotDescUpdatedAt.Default.(func() time.Time)
	// availabilityslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityslot.UpdateDefaultUpdatedAt = availabilityslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityslotDescLabel is the schema descriptor for label field.
	availabilityslotDescLabel := availabilityslotFields[1].Descriptor()
	// availabilityslot.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	availabilityslot.LabelValidator = func() func(string) error {
		validators := availabilityslotDescLabel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(label string) error {
			for _, fn := range fns {
				if err := fn(label); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilityslotDescPosition is the schema descriptor for position field.
	availabilityslotDescPosition := availabilityslotFields[2].Descriptor()
	// availabilityslot.DefaultPosition holds the default value on creation for the position field.
	availabilityslot.DefaultPosition = availabilityslotDescPosition.Default.(int)
	// availabilityslotDescID is the schema descriptor for id field.
	availabilityslotDescID := availabilityslotMixinFields0[0].Descriptor()
	// availabilityslot.DefaultID holds the default value on creation for the id field.
	availabilityslot.DefaultID = availabilityslotDescID.Default.(func() uuid.UUID)
	favoriteMixin := schema.Favorite{}.Mixin()
	favoriteMixinFields0 := favoriteMixin[0].Fields()
	_ = favoriteMixinFields0
	favoriteMixinFields1 := favoriteMixin[1].Fields()
	_ = favoriteMixinFields1
	favoriteFields := schema.Favorite{}.Fields()
	_ = favoriteFields
	// favoriteDescCreatedAt is the schema descriptor for created_at field.
	favoriteDescCreatedAt := favoriteMixinFields1[0].Descriptor()
	// favorite.DefaultCreatedAt holds the default value on creation for the created_at field.
	favorite.DefaultCreatedAt = favoriteDescCreatedAt.Default.(func() time.Time)
	// favoriteDescTherapistName is the schema descriptor for therapist_name field.
	favoriteDescTherapistName := favoriteFields[2].Descriptor()
	// favorite.TherapistNameValidator is a validator for the "therapist_name" field. It is called by the builders before save.
	favorite.TherapistNameValidator = favoriteDescTherapistName.Validators[0].(func(string) error)
	// favoriteDescSpecialization is the schema descriptor for specialization field.
	favoriteDescSpecialization := favoriteFields[3].Descriptor()
	// favorite.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	favorite.SpecializationValidator = favoriteDescSpecialization.Validators[0].(func(string) error)
	// favoriteDescRating is the schema descriptor for rating field.
	favoriteDescRating := favoriteFields[4].Descriptor()
	// favorite.DefaultRating holds the default value on creation for the rating field.
	favorite.DefaultRating = favoriteDescRating.Default.(float64)
	// favoriteDescID is the schema descriptor for id field.
	favoriteDescID := favoriteMixinFields0[0].Descriptor()
	// favorite.DefaultID holds the default value on creation for the id field.
	favorite.DefaultID = favoriteDescID.Default.(func() uuid.UUID)
	therapistMixin := schema.Therapist{}.Mixin()
	therapistMixinFields0 := therapistMixin[0].Fields()
	_ = therapistMixinFields0
	therapistMixinFields1 := therapistMixin[1].Fields()
	_ = therapistMixinFields1
	therapistFields := schema.Therapist{}.Fields()
	_ = therapistFields
	// therapistDescCreatedAt is the schema descriptor for created_at field.
	therapistDescCreatedAt := therapistMixinFields1[0].Descriptor()
	// therapist.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapist.DefaultCreatedAt = therapistDescCreatedAt.Default.(func() time.Time)
	// therapistDescUpdatedAt is the schema descriptor for updated_at field.
	therapistDescUpdatedAt := therapistMixinFields1[1].Descriptor()
	// therapist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	therapist.DefaultUpdatedAt = therapistDescUpdatedAt.Default.(func() time.Time)
	// therapist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	therapist.UpdateDefaultUpdatedAt = therapistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// therapistDescDisplayName is the schema descriptor for display_name field.
	therapistDescDisplayName := therapistFields[0].Descriptor()
	// therapist.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	therapist.DisplayNameValidator = therapistDescDisplayName.Validators[0].(func(string) error)
	// therapistDescEmail is the schema descriptor for email field.
	therapistDescEmail := therapistFields[1].Descriptor()
	// therapist.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	therapist.EmailValidator = therapistDescEmail.Validators[0].(func(string) error)
	// therapistDescSpecialization is the schema descriptor for specialization field.
	therapistDescSpecialization := therapistFields[3].Descriptor()
	// therapist.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	therapist.SpecializationValidator = therapistDescSpecialization.Validators[0].(func(string) error)
	// therapistDescRating is the schema descriptor for rating field.
	therapistDescRating := therapistFields[5].Descriptor()
	// therapist.DefaultRating holds the default value on creation for the rating field.
	therapist.DefaultRating = therapistDescRating.Default.(float64)
	// therapistDescIsAccepting is the schema descriptor for is_accepting field.
	therapistDescIsAccepting := therapistFields[8].Descriptor()
	// therapist.DefaultIsAccepting holds the default value on creation for the is_accepting field.
	therapist.DefaultIsAccepting = therapistDescIsAccepting.Default.(bool)
	// therapistDescID is the schema descriptor for id field.
	therapistDescID := therapistMixinFields0[0].Descriptor()
	// therapist.DefaultID holds the default value on creation for the id field.
	therapist.DefaultID = therapistDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[0].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescProfileImageKey is the schema descriptor for profile_image_key field.
	userDescProfileImageKey := userFields[4].Descriptor()
	// user.ProfileImageKeyValidator is a validator for the "profile_image_key" field. It is called by the builders before save.
	user.ProfileImageKeyValidator = userDescProfileImageKey.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}

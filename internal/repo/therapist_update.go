// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/predicate"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
)

// TherapistUpdate is the builder for updating Therapist entities.
type TherapistUpdate struct {
	config
	hooks    []Hook
	mutation *TherapistMutation
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdate) Where(ps ...predicate.Therapist) *TherapistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdate) SetUpdatedAt(v time.Time) *TherapistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TherapistUpdate) SetDisplayName(v string) *TherapistUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableDisplayName(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TherapistUpdate) SetEmail(v string) *TherapistUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableEmail(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *TherapistUpdate) SetPasswordHash(v string) *TherapistUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillablePasswordHash(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *TherapistUpdate) SetSpecialization(v string) *TherapistUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableSpecialization(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *TherapistUpdate) SetBio(v string) *TherapistUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableBio(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TherapistUpdate) ClearBio() *TherapistUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetRating sets the "rating" field.
func (_u *TherapistUpdate) SetRating(v float64) *TherapistUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableRating(v *float64) *TherapistUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TherapistUpdate) AddRating(v float64) *TherapistUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *TherapistUpdate) SetLatitude(v float64) *TherapistUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableLatitude(v *float64) *TherapistUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *TherapistUpdate) AddLatitude(v float64) *TherapistUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *TherapistUpdate) ClearLatitude() *TherapistUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *TherapistUpdate) SetLongitude(v float64) *TherapistUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableLongitude(v *float64) *TherapistUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *TherapistUpdate) AddLongitude(v float64) *TherapistUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *TherapistUpdate) ClearLongitude() *TherapistUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *TherapistUpdate) SetIsAccepting(v bool) *TherapistUpdate {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableIsAccepting(v *bool) *TherapistUpdate {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdate) Mutation() *TherapistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := therapist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := therapist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Therapist.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := therapist.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Therapist.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(therapist.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(therapist.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(therapist.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(therapist.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(therapist.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(therapist.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(therapist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(therapist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(therapist.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(therapist.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(therapist.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(therapist.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(therapist.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(therapist.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(therapist.FieldIsAccepting, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapistUpdateOne is the builder for updating a single Therapist entity.
type TherapistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdateOne) SetUpdatedAt(v time.Time) *TherapistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TherapistUpdateOne) SetDisplayName(v string) *TherapistUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableDisplayName(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TherapistUpdateOne) SetEmail(v string) *TherapistUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableEmail(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *TherapistUpdateOne) SetPasswordHash(v string) *TherapistUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillablePasswordHash(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *TherapistUpdateOne) SetSpecialization(v string) *TherapistUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableSpecialization(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *TherapistUpdateOne) SetBio(v string) *TherapistUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableBio(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TherapistUpdateOne) ClearBio() *TherapistUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetRating sets the "rating" field.
func (_u *TherapistUpdateOne) SetRating(v float64) *TherapistUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableRating(v *float64) *TherapistUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TherapistUpdateOne) AddRating(v float64) *TherapistUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *TherapistUpdateOne) SetLatitude(v float64) *TherapistUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableLatitude(v *float64) *TherapistUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *TherapistUpdateOne) AddLatitude(v float64) *TherapistUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *TherapistUpdateOne) ClearLatitude() *TherapistUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *TherapistUpdateOne) SetLongitude(v float64) *TherapistUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableLongitude(v *float64) *TherapistUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *TherapistUpdateOne) AddLongitude(v float64) *TherapistUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *TherapistUpdateOne) ClearLongitude() *TherapistUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *TherapistUpdateOne) SetIsAccepting(v bool) *TherapistUpdateOne {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableIsAccepting(v *bool) *TherapistUpdateOne {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdateOne) Mutation() *TherapistMutation {
	return _u.mutation
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdateOne) Where(ps ...predicate.Therapist) *TherapistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapistUpdateOne) Select(field string, fields ...string) *TherapistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Therapist entity.
func (_u *TherapistUpdateOne) Save(ctx context.Context) (*Therapist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdateOne) SaveX(ctx context.Context) *Therapist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := therapist.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := therapist.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Therapist.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := therapist.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Therapist.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdateOne) sqlSave(ctx context.Context) (_node *Therapist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Therapist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapist.FieldID)
		for _, f := range fields {
			if !therapist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapist.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(therapist.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(therapist.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(therapist.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(therapist.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(therapist.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(therapist.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(therapist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(therapist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(therapist.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(therapist.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(therapist.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(therapist.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(therapist.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(therapist.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(therapist.FieldIsAccepting, field.TypeBool, value)
	}
	_node = &Therapist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

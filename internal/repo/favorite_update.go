// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/favorite"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/predicate"
)

// FavoriteUpdate is the builder for updating Favorite entities.
type FavoriteUpdate struct {
	config
	hooks    []Hook
	mutation *FavoriteMutation
}

// Where appends a list predicates to the FavoriteUpdate builder.
func (_u *FavoriteUpdate) Where(ps ...predicate.Favorite) *FavoriteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FavoriteUpdate) SetUserID(v uuid.UUID) *FavoriteUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FavoriteUpdate) SetNillableUserID(v *uuid.UUID) *FavoriteUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *FavoriteUpdate) SetTherapistID(v uuid.UUID) *FavoriteUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *FavoriteUpdate) SetNillableTherapistID(v *uuid.UUID) *FavoriteUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetTherapistName sets the "therapist_name" field.
func (_u *FavoriteUpdate) SetTherapistName(v string) *FavoriteUpdate {
	_u.mutation.SetTherapistName(v)
	return _u
}

// SetNillableTherapistName sets the "therapist_name" field if the given value is not nil.
func (_u *FavoriteUpdate) SetNillableTherapistName(v *string) *FavoriteUpdate {
	if v != nil {
		_u.SetTherapistName(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *FavoriteUpdate) SetSpecialization(v string) *FavoriteUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *FavoriteUpdate) SetNillableSpecialization(v *string) *FavoriteUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FavoriteUpdate) SetRating(v float64) *FavoriteUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FavoriteUpdate) SetNillableRating(v *float64) *FavoriteUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FavoriteUpdate) AddRating(v float64) *FavoriteUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// Mutation returns the FavoriteMutation object of the builder.
func (_u *FavoriteUpdate) Mutation() *FavoriteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FavoriteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FavoriteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FavoriteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FavoriteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FavoriteUpdate) check() error {
	if v, ok := _u.mutation.TherapistName(); ok {
		if err := favorite.TherapistNameValidator(v); err != nil {
			return &ValidationError{Name: "therapist_name", err: fmt.Errorf(`repo: validator failed for field "Favorite.therapist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := favorite.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Favorite.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *FavoriteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(favorite.Table, favorite.Columns, sqlgraph.NewFieldSpec(favorite.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(favorite.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(favorite.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistName(); ok {
		_spec.SetField(favorite.FieldTherapistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(favorite.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(favorite.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(favorite.FieldRating, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{favorite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FavoriteUpdateOne is the builder for updating a single Favorite entity.
type FavoriteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FavoriteMutation
}

// SetUserID sets the "user_id" field.
func (_u *FavoriteUpdateOne) SetUserID(v uuid.UUID) *FavoriteUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FavoriteUpdateOne) SetNillableUserID(v *uuid.UUID) *FavoriteUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *FavoriteUpdateOne) SetTherapistID(v uuid.UUID) *FavoriteUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *FavoriteUpdateOne) SetNillableTherapistID(v *uuid.UUID) *FavoriteUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetTherapistName sets the "therapist_name" field.
func (_u *FavoriteUpdateOne) SetTherapistName(v string) *FavoriteUpdateOne {
	_u.mutation.SetTherapistName(v)
	return _u
}

// SetNillableTherapistName sets the "therapist_name" field if the given value is not nil.
func (_u *FavoriteUpdateOne) SetNillableTherapistName(v *string) *FavoriteUpdateOne {
	if v != nil {
		_u.SetTherapistName(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *FavoriteUpdateOne) SetSpecialization(v string) *FavoriteUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *FavoriteUpdateOne) SetNillableSpecialization(v *string) *FavoriteUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FavoriteUpdateOne) SetRating(v float64) *FavoriteUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FavoriteUpdateOne) SetNillableRating(v *float64) *FavoriteUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FavoriteUpdateOne) AddRating(v float64) *FavoriteUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// Mutation returns the FavoriteMutation object of the builder.
func (_u *FavoriteUpdateOne) Mutation() *FavoriteMutation {
	return _u.mutation
}

// Where appends a list predicates to the FavoriteUpdate builder.
func (_u *FavoriteUpdateOne) Where(ps ...predicate.Favorite) *FavoriteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FavoriteUpdateOne) Select(field string, fields ...string) *FavoriteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Favorite entity.
func (_u *FavoriteUpdateOne) Save(ctx context.Context) (*Favorite, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FavoriteUpdateOne) SaveX(ctx context.Context) *Favorite {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FavoriteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FavoriteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FavoriteUpdateOne) check() error {
	if v, ok := _u.mutation.TherapistName(); ok {
		if err := favorite.TherapistNameValidator(v); err != nil {
			return &ValidationError{Name: "therapist_name", err: fmt.Errorf(`repo: validator failed for field "Favorite.therapist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := favorite.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Favorite.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *FavoriteUpdateOne) sqlSave(ctx context.Context) (_node *Favorite, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(favorite.Table, favorite.Columns, sqlgraph.NewFieldSpec(favorite.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Favorite.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, favorite.FieldID)
		for _, f := range fields {
			if !favorite.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != favorite.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(favorite.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(favorite.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistName(); ok {
		_spec.SetField(favorite.FieldTherapistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(favorite.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(favorite.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(favorite.FieldRating, field.TypeFloat64, value)
	}
	_node = &Favorite{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{favorite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

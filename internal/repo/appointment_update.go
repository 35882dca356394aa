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
	"github.com/google/uuid"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AppointmentUpdate) SetTherapistID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTherapistID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AppointmentUpdate) SetUserID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableUserID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTherapistName sets the "therapist_name" field.
func (_u *AppointmentUpdate) SetTherapistName(v string) *AppointmentUpdate {
	_u.mutation.SetTherapistName(v)
	return _u
}

// SetNillableTherapistName sets the "therapist_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTherapistName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetTherapistName(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *AppointmentUpdate) SetUserName(v string) *AppointmentUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableUserName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdate) SetAppointmentDate(v string) *AppointmentUpdate {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableAppointmentDate(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetSlotLabel sets the "slot_label" field.
func (_u *AppointmentUpdate) SetSlotLabel(v string) *AppointmentUpdate {
	_u.mutation.SetSlotLabel(v)
	return _u
}

// SetNillableSlotLabel sets the "slot_label" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSlotLabel(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetSlotLabel(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *AppointmentUpdate) SetStartsAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartsAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *AppointmentUpdate) SetSessionType(v appointment.SessionType) *AppointmentUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSessionType(v *appointment.SessionType) *AppointmentUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.TherapistName(); ok {
		if err := appointment.TherapistNameValidator(v); err != nil {
			return &ValidationError{Name: "therapist_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.therapist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserName(); ok {
		if err := appointment.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentDate(); ok {
		if err := appointment.AppointmentDateValidator(v); err != nil {
			return &ValidationError{Name: "appointment_date", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotLabel(); ok {
		if err := appointment.SlotLabelValidator(v); err != nil {
			return &ValidationError{Name: "slot_label", err: fmt.Errorf(`repo: validator failed for field "Appointment.slot_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := appointment.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.session_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(appointment.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(appointment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistName(); ok {
		_spec.SetField(appointment.FieldTherapistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(appointment.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotLabel(); ok {
		_spec.SetField(appointment.FieldSlotLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(appointment.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(appointment.FieldSessionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AppointmentUpdateOne) SetTherapistID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTherapistID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AppointmentUpdateOne) SetUserID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableUserID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTherapistName sets the "therapist_name" field.
func (_u *AppointmentUpdateOne) SetTherapistName(v string) *AppointmentUpdateOne {
	_u.mutation.SetTherapistName(v)
	return _u
}

// SetNillableTherapistName sets the "therapist_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTherapistName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTherapistName(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *AppointmentUpdateOne) SetUserName(v string) *AppointmentUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableUserName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *AppointmentUpdateOne) SetAppointmentDate(v string) *AppointmentUpdateOne {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableAppointmentDate(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetSlotLabel sets the "slot_label" field.
func (_u *AppointmentUpdateOne) SetSlotLabel(v string) *AppointmentUpdateOne {
	_u.mutation.SetSlotLabel(v)
	return _u
}

// SetNillableSlotLabel sets the "slot_label" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSlotLabel(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSlotLabel(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *AppointmentUpdateOne) SetStartsAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartsAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *AppointmentUpdateOne) SetSessionType(v appointment.SessionType) *AppointmentUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSessionType(v *appointment.SessionType) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.TherapistName(); ok {
		if err := appointment.TherapistNameValidator(v); err != nil {
			return &ValidationError{Name: "therapist_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.therapist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserName(); ok {
		if err := appointment.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.user_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentDate(); ok {
		if err := appointment.AppointmentDateValidator(v); err != nil {
			return &ValidationError{Name: "appointment_date", err: fmt.Errorf(`repo: validator failed for field "Appointment.appointment_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotLabel(); ok {
		if err := appointment.SlotLabelValidator(v); err != nil {
			return &ValidationError{Name: "slot_label", err: fmt.Errorf(`repo: validator failed for field "Appointment.slot_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := appointment.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`repo: validator failed for field "Appointment.session_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(appointment.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(appointment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistName(); ok {
		_spec.SetField(appointment.FieldTherapistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(appointment.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(appointment.FieldAppointmentDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotLabel(); ok {
		_spec.SetField(appointment.FieldSlotLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(appointment.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(appointment.FieldSessionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

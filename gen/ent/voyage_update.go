// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/passport"
	"github.com/voyagedesk/passport-tracker/gen/ent/predicate"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

// VoyageUpdate is the builder for updating Voyage entities.
type VoyageUpdate struct {
	config
	hooks    []Hook
	mutation *VoyageMutation
}

// Where appends a list predicates to the VoyageUpdate builder.
func (_u *VoyageUpdate) Where(ps ...predicate.Voyage) *VoyageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VoyageUpdate) SetUserID(v uuid.UUID) *VoyageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VoyageUpdate) SetNillableUserID(v *uuid.UUID) *VoyageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *VoyageUpdate) SetDestination(v string) *VoyageUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *VoyageUpdate) SetNillableDestination(v *string) *VoyageUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *VoyageUpdate) SetUser(v *User) *VoyageUpdate {
	return _u.SetUserID(v.ID)
}

// AddPassportIDs adds the "passports" edge to the Passport entity by IDs.
func (_u *VoyageUpdate) AddPassportIDs(ids ...uuid.UUID) *VoyageUpdate {
	_u.mutation.AddPassportIDs(ids...)
	return _u
}

// AddPassports adds the "passports" edges to the Passport entity.
func (_u *VoyageUpdate) AddPassports(v ...*Passport) *VoyageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassportIDs(ids...)
}

// Mutation returns the VoyageMutation object of the builder.
func (_u *VoyageUpdate) Mutation() *VoyageMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *VoyageUpdate) ClearUser() *VoyageUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearPassports clears all "passports" edges to the Passport entity.
func (_u *VoyageUpdate) ClearPassports() *VoyageUpdate {
	_u.mutation.ClearPassports()
	return _u
}

// RemovePassportIDs removes the "passports" edge to Passport entities by IDs.
func (_u *VoyageUpdate) RemovePassportIDs(ids ...uuid.UUID) *VoyageUpdate {
	_u.mutation.RemovePassportIDs(ids...)
	return _u
}

// RemovePassports removes "passports" edges to Passport entities.
func (_u *VoyageUpdate) RemovePassports(v ...*Passport) *VoyageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoyageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoyageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoyageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoyageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoyageUpdate) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := voyage.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Voyage.destination": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Voyage.user"`)
	}
	return nil
}

func (_u *VoyageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voyage.Table, voyage.Columns, sqlgraph.NewFieldSpec(voyage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(voyage.FieldDestination, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voyage.UserTable,
			Columns: []string{voyage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voyage.UserTable,
			Columns: []string{voyage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   voyage.PassportsTable,
			Columns: []string{voyage.PassportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPassportsIDs(); len(nodes) > 0 && !_u.mutation.PassportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   voyage.PassportsTable,
			Columns: []string{voyage.PassportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   voyage.PassportsTable,
			Columns: []string{voyage.PassportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voyage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoyageUpdateOne is the builder for updating a single Voyage entity.
type VoyageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoyageMutation
}

// SetUserID sets the "user_id" field.
func (_u *VoyageUpdateOne) SetUserID(v uuid.UUID) *VoyageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VoyageUpdateOne) SetNillableUserID(v *uuid.UUID) *VoyageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *VoyageUpdateOne) SetDestination(v string) *VoyageUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *VoyageUpdateOne) SetNillableDestination(v *string) *VoyageUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *VoyageUpdateOne) SetUser(v *User) *VoyageUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddPassportIDs adds the "passports" edge to the Passport entity by IDs.
func (_u *VoyageUpdateOne) AddPassportIDs(ids ...uuid.UUID) *VoyageUpdateOne {
	_u.mutation.AddPassportIDs(ids...)
	return _u
}

// AddPassports adds the "passports" edges to the Passport entity.
func (_u *VoyageUpdateOne) AddPassports(v ...*Passport) *VoyageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassportIDs(ids...)
}

// Mutation returns the VoyageMutation object of the builder.
func (_u *VoyageUpdateOne) Mutation() *VoyageMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *VoyageUpdateOne) ClearUser() *VoyageUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearPassports clears all "passports" edges to the Passport entity.
func (_u *VoyageUpdateOne) ClearPassports() *VoyageUpdateOne {
	_u.mutation.ClearPassports()
	return _u
}

// RemovePassportIDs removes the "passports" edge to Passport entities by IDs.
func (_u *VoyageUpdateOne) RemovePassportIDs(ids ...uuid.UUID) *VoyageUpdateOne {
	_u.mutation.RemovePassportIDs(ids...)
	return _u
}

// RemovePassports removes "passports" edges to Passport entities.
func (_u *VoyageUpdateOne) RemovePassports(v ...*Passport) *VoyageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassportIDs(ids...)
}

// Where appends a list predicates to the VoyageUpdate builder.
func (_u *VoyageUpdateOne) Where(ps ...predicate.Voyage) *VoyageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoyageUpdateOne) Select(field string, fields ...string) *VoyageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Voyage entity.
func (_u *VoyageUpdateOne) Save(ctx context.Context) (*Voyage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoyageUpdateOne) SaveX(ctx context.Context) *Voyage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoyageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoyageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoyageUpdateOne) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := voyage.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Voyage.destination": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Voyage.user"`)
	}
	return nil
}

func (_u *VoyageUpdateOne) sqlSave(ctx context.Context) (_node *Voyage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voyage.Table, voyage.Columns, sqlgraph.NewFieldSpec(voyage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Voyage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voyage.FieldID)
		for _, f := range fields {
			if !voyage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != voyage.FieldID {
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
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(voyage.FieldDestination, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voyage.UserTable,
			Columns: []string{voyage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voyage.UserTable,
			Columns: []string{voyage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   voyage.PassportsTable,
			Columns: []string{voyage.PassportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPassportsIDs(); len(nodes) > 0 && !_u.mutation.PassportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   voyage.PassportsTable,
			Columns: []string{voyage.PassportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   voyage.PassportsTable,
			Columns: []string{voyage.PassportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Voyage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voyage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

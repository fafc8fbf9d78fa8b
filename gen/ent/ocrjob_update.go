// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/ocrjob"
	"github.com/voyagedesk/passport-tracker/gen/ent/predicate"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
)

// OcrJobUpdate is the builder for updating OcrJob entities.
type OcrJobUpdate struct {
	config
	hooks    []Hook
	mutation *OcrJobMutation
}

// Where appends a list predicates to the OcrJobUpdate builder.
func (_u *OcrJobUpdate) Where(ps ...predicate.OcrJob) *OcrJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OcrJobUpdate) SetUserID(v uuid.UUID) *OcrJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableUserID(v *uuid.UUID) *OcrJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *OcrJobUpdate) SetFileName(v string) *OcrJobUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableFileName(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OcrJobUpdate) SetStatus(v string) *OcrJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableStatus(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *OcrJobUpdate) SetProgress(v int) *OcrJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableProgress(v *int) *OcrJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *OcrJobUpdate) AddProgress(v int) *OcrJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrJobUpdate) SetCreatedAt(v time.Time) *OcrJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableCreatedAt(v *time.Time) *OcrJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *OcrJobUpdate) SetFinishedAt(v time.Time) *OcrJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableFinishedAt(v *time.Time) *OcrJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *OcrJobUpdate) ClearFinishedAt() *OcrJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *OcrJobUpdate) SetSuccesses(v json.RawMessage) *OcrJobUpdate {
	_u.mutation.SetSuccesses(v)
	return _u
}

// AppendSuccesses appends value to the "successes" field.
func (_u *OcrJobUpdate) AppendSuccesses(v json.RawMessage) *OcrJobUpdate {
	_u.mutation.AppendSuccesses(v)
	return _u
}

// ClearSuccesses clears the value of the "successes" field.
func (_u *OcrJobUpdate) ClearSuccesses() *OcrJobUpdate {
	_u.mutation.ClearSuccesses()
	return _u
}

// SetFailures sets the "failures" field.
func (_u *OcrJobUpdate) SetFailures(v json.RawMessage) *OcrJobUpdate {
	_u.mutation.SetFailures(v)
	return _u
}

// AppendFailures appends value to the "failures" field.
func (_u *OcrJobUpdate) AppendFailures(v json.RawMessage) *OcrJobUpdate {
	_u.mutation.AppendFailures(v)
	return _u
}

// ClearFailures clears the value of the "failures" field.
func (_u *OcrJobUpdate) ClearFailures() *OcrJobUpdate {
	_u.mutation.ClearFailures()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OcrJobUpdate) SetUser(v *User) *OcrJobUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_u *OcrJobUpdate) Mutation() *OcrJobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OcrJobUpdate) ClearUser() *OcrJobUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OcrJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OcrJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrJobUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := ocrjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "OcrJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := ocrjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "OcrJob.progress": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.user"`)
	}
	return nil
}

func (_u *OcrJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(ocrjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(ocrjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(ocrjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ocrjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ocrjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(ocrjob.FieldSuccesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrjob.FieldSuccesses, value)
		})
	}
	if _u.mutation.SuccessesCleared() {
		_spec.ClearField(ocrjob.FieldSuccesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(ocrjob.FieldFailures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrjob.FieldFailures, value)
		})
	}
	if _u.mutation.FailuresCleared() {
		_spec.ClearField(ocrjob.FieldFailures, field.TypeJSON)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
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
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OcrJobUpdateOne is the builder for updating a single OcrJob entity.
type OcrJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OcrJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *OcrJobUpdateOne) SetUserID(v uuid.UUID) *OcrJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableUserID(v *uuid.UUID) *OcrJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *OcrJobUpdateOne) SetFileName(v string) *OcrJobUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableFileName(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OcrJobUpdateOne) SetStatus(v string) *OcrJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableStatus(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *OcrJobUpdateOne) SetProgress(v int) *OcrJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableProgress(v *int) *OcrJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *OcrJobUpdateOne) AddProgress(v int) *OcrJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrJobUpdateOne) SetCreatedAt(v time.Time) *OcrJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableCreatedAt(v *time.Time) *OcrJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *OcrJobUpdateOne) SetFinishedAt(v time.Time) *OcrJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableFinishedAt(v *time.Time) *OcrJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *OcrJobUpdateOne) ClearFinishedAt() *OcrJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *OcrJobUpdateOne) SetSuccesses(v json.RawMessage) *OcrJobUpdateOne {
	_u.mutation.SetSuccesses(v)
	return _u
}

// AppendSuccesses appends value to the "successes" field.
func (_u *OcrJobUpdateOne) AppendSuccesses(v json.RawMessage) *OcrJobUpdateOne {
	_u.mutation.AppendSuccesses(v)
	return _u
}

// ClearSuccesses clears the value of the "successes" field.
func (_u *OcrJobUpdateOne) ClearSuccesses() *OcrJobUpdateOne {
	_u.mutation.ClearSuccesses()
	return _u
}

// SetFailures sets the "failures" field.
func (_u *OcrJobUpdateOne) SetFailures(v json.RawMessage) *OcrJobUpdateOne {
	_u.mutation.SetFailures(v)
	return _u
}

// AppendFailures appends value to the "failures" field.
func (_u *OcrJobUpdateOne) AppendFailures(v json.RawMessage) *OcrJobUpdateOne {
	_u.mutation.AppendFailures(v)
	return _u
}

// ClearFailures clears the value of the "failures" field.
func (_u *OcrJobUpdateOne) ClearFailures() *OcrJobUpdateOne {
	_u.mutation.ClearFailures()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OcrJobUpdateOne) SetUser(v *User) *OcrJobUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_u *OcrJobUpdateOne) Mutation() *OcrJobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OcrJobUpdateOne) ClearUser() *OcrJobUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the OcrJobUpdate builder.
func (_u *OcrJobUpdateOne) Where(ps ...predicate.OcrJob) *OcrJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OcrJobUpdateOne) Select(field string, fields ...string) *OcrJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OcrJob entity.
func (_u *OcrJobUpdateOne) Save(ctx context.Context) (*OcrJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrJobUpdateOne) SaveX(ctx context.Context) *OcrJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OcrJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrJobUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := ocrjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "OcrJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := ocrjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "OcrJob.progress": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.user"`)
	}
	return nil
}

func (_u *OcrJobUpdateOne) sqlSave(ctx context.Context) (_node *OcrJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OcrJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrjob.FieldID)
		for _, f := range fields {
			if !ocrjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrjob.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(ocrjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(ocrjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(ocrjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ocrjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ocrjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(ocrjob.FieldSuccesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrjob.FieldSuccesses, value)
		})
	}
	if _u.mutation.SuccessesCleared() {
		_spec.ClearField(ocrjob.FieldSuccesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(ocrjob.FieldFailures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrjob.FieldFailures, value)
		})
	}
	if _u.mutation.FailuresCleared() {
		_spec.ClearField(ocrjob.FieldFailures, field.TypeJSON)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
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
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
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
	_node = &OcrJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

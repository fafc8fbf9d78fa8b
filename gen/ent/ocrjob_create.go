// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/ocrjob"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
)

// OcrJobCreate is the builder for creating a OcrJob entity.
type OcrJobCreate struct {
	config
	mutation *OcrJobMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *OcrJobCreate) SetUserID(v uuid.UUID) *OcrJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *OcrJobCreate) SetFileName(v string) *OcrJobCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OcrJobCreate) SetStatus(v string) *OcrJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableStatus(v *string) *OcrJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *OcrJobCreate) SetProgress(v int) *OcrJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableProgress(v *int) *OcrJobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OcrJobCreate) SetCreatedAt(v time.Time) *OcrJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableCreatedAt(v *time.Time) *OcrJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *OcrJobCreate) SetFinishedAt(v time.Time) *OcrJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableFinishedAt(v *time.Time) *OcrJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *OcrJobCreate) SetSuccesses(v json.RawMessage) *OcrJobCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetFailures sets the "failures" field.
func (_c *OcrJobCreate) SetFailures(v json.RawMessage) *OcrJobCreate {
	_c.mutation.SetFailures(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OcrJobCreate) SetID(v uuid.UUID) *OcrJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableID(v *uuid.UUID) *OcrJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *OcrJobCreate) SetUser(v *User) *OcrJobCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_c *OcrJobCreate) Mutation() *OcrJobMutation {
	return _c.mutation
}

// Save creates the OcrJob in the database.
func (_c *OcrJobCreate) Save(ctx context.Context) (*OcrJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OcrJobCreate) SaveX(ctx context.Context) *OcrJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OcrJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ocrjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := ocrjob.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ocrjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OcrJobCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OcrJob.user_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "OcrJob.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := ocrjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "OcrJob.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OcrJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "OcrJob.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := ocrjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "OcrJob.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OcrJob.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "OcrJob.user"`)}
	}
	return nil
}

func (_c *OcrJobCreate) sqlSave(ctx context.Context) (*OcrJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OcrJobCreate) createSpec() (*OcrJob, *sqlgraph.CreateSpec) {
	var (
		_node = &OcrJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrjob.Table, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(ocrjob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(ocrjob.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ocrjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ocrjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(ocrjob.FieldSuccesses, field.TypeJSON, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.Failures(); ok {
		_spec.SetField(ocrjob.FieldFailures, field.TypeJSON, value)
		_node.Failures = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OcrJobCreateBulk is the builder for creating many OcrJob entities in bulk.
type OcrJobCreateBulk struct {
	config
	err      error
	builders []*OcrJobCreate
}

// Save creates the OcrJob entities in the database.
func (_c *OcrJobCreateBulk) Save(ctx context.Context) ([]*OcrJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OcrJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OcrJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OcrJobCreateBulk) SaveX(ctx context.Context) []*OcrJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

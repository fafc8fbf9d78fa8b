// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/passport"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

// PassportCreate is the builder for creating a Passport entity.
type PassportCreate struct {
	config
	mutation *PassportMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *PassportCreate) SetOwnerID(v uuid.UUID) *PassportCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetVoyageID sets the "voyage_id" field.
func (_c *PassportCreate) SetVoyageID(v uuid.UUID) *PassportCreate {
	_c.mutation.SetVoyageID(v)
	return _c
}

// SetNillableVoyageID sets the "voyage_id" field if the given value is not nil.
func (_c *PassportCreate) SetNillableVoyageID(v *uuid.UUID) *PassportCreate {
	if v != nil {
		_c.SetVoyageID(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PassportCreate) SetFirstName(v string) *PassportCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PassportCreate) SetLastName(v string) *PassportCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PassportCreate) SetBirthDate(v time.Time) *PassportCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetDeliveryDate sets the "delivery_date" field.
func (_c *PassportCreate) SetDeliveryDate(v time.Time) *PassportCreate {
	_c.mutation.SetDeliveryDate(v)
	return _c
}

// SetNillableDeliveryDate sets the "delivery_date" field if the given value is not nil.
func (_c *PassportCreate) SetNillableDeliveryDate(v *time.Time) *PassportCreate {
	if v != nil {
		_c.SetDeliveryDate(*v)
	}
	return _c
}

// SetExpirationDate sets the "expiration_date" field.
func (_c *PassportCreate) SetExpirationDate(v time.Time) *PassportCreate {
	_c.mutation.SetExpirationDate(v)
	return _c
}

// SetNationality sets the "nationality" field.
func (_c *PassportCreate) SetNationality(v string) *PassportCreate {
	_c.mutation.SetNationality(v)
	return _c
}

// SetPassportNumber sets the "passport_number" field.
func (_c *PassportCreate) SetPassportNumber(v string) *PassportCreate {
	_c.mutation.SetPassportNumber(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *PassportCreate) SetConfidenceScore(v float64) *PassportCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *PassportCreate) SetNillableConfidenceScore(v *float64) *PassportCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PassportCreate) SetCreatedAt(v time.Time) *PassportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PassportCreate) SetNillableCreatedAt(v *time.Time) *PassportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PassportCreate) SetUpdatedAt(v time.Time) *PassportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PassportCreate) SetNillableUpdatedAt(v *time.Time) *PassportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PassportCreate) SetID(v uuid.UUID) *PassportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PassportCreate) SetNillableID(v *uuid.UUID) *PassportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *PassportCreate) SetOwner(v *User) *PassportCreate {
	return _c.SetOwnerID(v.ID)
}

// SetVoyage sets the "voyage" edge to the Voyage entity.
func (_c *PassportCreate) SetVoyage(v *Voyage) *PassportCreate {
	return _c.SetVoyageID(v.ID)
}

// Mutation returns the PassportMutation object of the builder.
func (_c *PassportCreate) Mutation() *PassportMutation {
	return _c.mutation
}

// Save creates the Passport in the database.
func (_c *PassportCreate) Save(ctx context.Context) (*Passport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PassportCreate) SaveX(ctx context.Context) *Passport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PassportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := passport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := passport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PassportCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Passport.owner_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Passport.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := passport.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Passport.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "Passport.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := passport.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Passport.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BirthDate(); !ok {
		return &ValidationError{Name: "birth_date", err: errors.New(`ent: missing required field "Passport.birth_date"`)}
	}
	if _, ok := _c.mutation.ExpirationDate(); !ok {
		return &ValidationError{Name: "expiration_date", err: errors.New(`ent: missing required field "Passport.expiration_date"`)}
	}
	if _, ok := _c.mutation.Nationality(); !ok {
		return &ValidationError{Name: "nationality", err: errors.New(`ent: missing required field "Passport.nationality"`)}
	}
	if v, ok := _c.mutation.Nationality(); ok {
		if err := passport.NationalityValidator(v); err != nil {
			return &ValidationError{Name: "nationality", err: fmt.Errorf(`ent: validator failed for field "Passport.nationality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassportNumber(); !ok {
		return &ValidationError{Name: "passport_number", err: errors.New(`ent: missing required field "Passport.passport_number"`)}
	}
	if v, ok := _c.mutation.PassportNumber(); ok {
		if err := passport.PassportNumberValidator(v); err != nil {
			return &ValidationError{Name: "passport_number", err: fmt.Errorf(`ent: validator failed for field "Passport.passport_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Passport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Passport.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Passport.owner"`)}
	}
	return nil
}

func (_c *PassportCreate) sqlSave(ctx context.Context) (*Passport, error) {
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

func (_c *PassportCreate) createSpec() (*Passport, *sqlgraph.CreateSpec) {
	var (
		_node = &Passport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passport.Table, sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(passport.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(passport.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(passport.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = value
	}
	if value, ok := _c.mutation.DeliveryDate(); ok {
		_spec.SetField(passport.FieldDeliveryDate, field.TypeTime, value)
		_node.DeliveryDate = &value
	}
	if value, ok := _c.mutation.ExpirationDate(); ok {
		_spec.SetField(passport.FieldExpirationDate, field.TypeTime, value)
		_node.ExpirationDate = value
	}
	if value, ok := _c.mutation.Nationality(); ok {
		_spec.SetField(passport.FieldNationality, field.TypeString, value)
		_node.Nationality = value
	}
	if value, ok := _c.mutation.PassportNumber(); ok {
		_spec.SetField(passport.FieldPassportNumber, field.TypeString, value)
		_node.PassportNumber = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(passport.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(passport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passport.OwnerTable,
			Columns: []string{passport.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VoyageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passport.VoyageTable,
			Columns: []string{passport.VoyageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(voyage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VoyageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PassportCreateBulk is the builder for creating many Passport entities in bulk.
type PassportCreateBulk struct {
	config
	err      error
	builders []*PassportCreate
}

// Save creates the Passport entities in the database.
func (_c *PassportCreateBulk) Save(ctx context.Context) ([]*Passport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Passport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PassportMutation)
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
func (_c *PassportCreateBulk) SaveX(ctx context.Context) []*Passport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/passport"
	"github.com/voyagedesk/passport-tracker/gen/ent/predicate"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

// PassportUpdate is the builder for updating Passport entities.
type PassportUpdate struct {
	config
	hooks    []Hook
	mutation *PassportMutation
}

// Where appends a list predicates to the PassportUpdate builder.
func (_u *PassportUpdate) Where(ps ...predicate.Passport) *PassportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *PassportUpdate) SetOwnerID(v uuid.UUID) *PassportUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableOwnerID(v *uuid.UUID) *PassportUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetVoyageID sets the "voyage_id" field.
func (_u *PassportUpdate) SetVoyageID(v uuid.UUID) *PassportUpdate {
	_u.mutation.SetVoyageID(v)
	return _u
}

// SetNillableVoyageID sets the "voyage_id" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableVoyageID(v *uuid.UUID) *PassportUpdate {
	if v != nil {
		_u.SetVoyageID(*v)
	}
	return _u
}

// ClearVoyageID clears the value of the "voyage_id" field.
func (_u *PassportUpdate) ClearVoyageID() *PassportUpdate {
	_u.mutation.ClearVoyageID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PassportUpdate) SetFirstName(v string) *PassportUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableFirstName(v *string) *PassportUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PassportUpdate) SetLastName(v string) *PassportUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableLastName(v *string) *PassportUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PassportUpdate) SetBirthDate(v time.Time) *PassportUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableBirthDate(v *time.Time) *PassportUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetDeliveryDate sets the "delivery_date" field.
func (_u *PassportUpdate) SetDeliveryDate(v time.Time) *PassportUpdate {
	_u.mutation.SetDeliveryDate(v)
	return _u
}

// SetNillableDeliveryDate sets the "delivery_date" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableDeliveryDate(v *time.Time) *PassportUpdate {
	if v != nil {
		_u.SetDeliveryDate(*v)
	}
	return _u
}

// ClearDeliveryDate clears the value of the "delivery_date" field.
func (_u *PassportUpdate) ClearDeliveryDate() *PassportUpdate {
	_u.mutation.ClearDeliveryDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *PassportUpdate) SetExpirationDate(v time.Time) *PassportUpdate {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableExpirationDate(v *time.Time) *PassportUpdate {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *PassportUpdate) SetNationality(v string) *PassportUpdate {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableNationality(v *string) *PassportUpdate {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// SetPassportNumber sets the "passport_number" field.
func (_u *PassportUpdate) SetPassportNumber(v string) *PassportUpdate {
	_u.mutation.SetPassportNumber(v)
	return _u
}

// SetNillablePassportNumber sets the "passport_number" field if the given value is not nil.
func (_u *PassportUpdate) SetNillablePassportNumber(v *string) *PassportUpdate {
	if v != nil {
		_u.SetPassportNumber(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *PassportUpdate) SetConfidenceScore(v float64) *PassportUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableConfidenceScore(v *float64) *PassportUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *PassportUpdate) AddConfidenceScore(v float64) *PassportUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *PassportUpdate) ClearConfidenceScore() *PassportUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PassportUpdate) SetCreatedAt(v time.Time) *PassportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PassportUpdate) SetNillableCreatedAt(v *time.Time) *PassportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassportUpdate) SetUpdatedAt(v time.Time) *PassportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *PassportUpdate) SetOwner(v *User) *PassportUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetVoyage sets the "voyage" edge to the Voyage entity.
func (_u *PassportUpdate) SetVoyage(v *Voyage) *PassportUpdate {
	return _u.SetVoyageID(v.ID)
}

// Mutation returns the PassportMutation object of the builder.
func (_u *PassportUpdate) Mutation() *PassportMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *PassportUpdate) ClearOwner() *PassportUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearVoyage clears the "voyage" edge to the Voyage entity.
func (_u *PassportUpdate) ClearVoyage() *PassportUpdate {
	_u.mutation.ClearVoyage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PassportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PassportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassportUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := passport.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Passport.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := passport.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Passport.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nationality(); ok {
		if err := passport.NationalityValidator(v); err != nil {
			return &ValidationError{Name: "nationality", err: fmt.Errorf(`ent: validator failed for field "Passport.nationality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassportNumber(); ok {
		if err := passport.PassportNumberValidator(v); err != nil {
			return &ValidationError{Name: "passport_number", err: fmt.Errorf(`ent: validator failed for field "Passport.passport_number": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Passport.owner"`)
	}
	return nil
}

func (_u *PassportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passport.Table, passport.Columns, sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(passport.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(passport.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(passport.FieldBirthDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeliveryDate(); ok {
		_spec.SetField(passport.FieldDeliveryDate, field.TypeTime, value)
	}
	if _u.mutation.DeliveryDateCleared() {
		_spec.ClearField(passport.FieldDeliveryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(passport.FieldExpirationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(passport.FieldNationality, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassportNumber(); ok {
		_spec.SetField(passport.FieldPassportNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(passport.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(passport.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(passport.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(passport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(passport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VoyageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VoyageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PassportUpdateOne is the builder for updating a single Passport entity.
type PassportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PassportMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *PassportUpdateOne) SetOwnerID(v uuid.UUID) *PassportUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableOwnerID(v *uuid.UUID) *PassportUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetVoyageID sets the "voyage_id" field.
func (_u *PassportUpdateOne) SetVoyageID(v uuid.UUID) *PassportUpdateOne {
	_u.mutation.SetVoyageID(v)
	return _u
}

// SetNillableVoyageID sets the "voyage_id" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableVoyageID(v *uuid.UUID) *PassportUpdateOne {
	if v != nil {
		_u.SetVoyageID(*v)
	}
	return _u
}

// ClearVoyageID clears the value of the "voyage_id" field.
func (_u *PassportUpdateOne) ClearVoyageID() *PassportUpdateOne {
	_u.mutation.ClearVoyageID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PassportUpdateOne) SetFirstName(v string) *PassportUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableFirstName(v *string) *PassportUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PassportUpdateOne) SetLastName(v string) *PassportUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableLastName(v *string) *PassportUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PassportUpdateOne) SetBirthDate(v time.Time) *PassportUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableBirthDate(v *time.Time) *PassportUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetDeliveryDate sets the "delivery_date" field.
func (_u *PassportUpdateOne) SetDeliveryDate(v time.Time) *PassportUpdateOne {
	_u.mutation.SetDeliveryDate(v)
	return _u
}

// SetNillableDeliveryDate sets the "delivery_date" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableDeliveryDate(v *time.Time) *PassportUpdateOne {
	if v != nil {
		_u.SetDeliveryDate(*v)
	}
	return _u
}

// ClearDeliveryDate clears the value of the "delivery_date" field.
func (_u *PassportUpdateOne) ClearDeliveryDate() *PassportUpdateOne {
	_u.mutation.ClearDeliveryDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *PassportUpdateOne) SetExpirationDate(v time.Time) *PassportUpdateOne {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableExpirationDate(v *time.Time) *PassportUpdateOne {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *PassportUpdateOne) SetNationality(v string) *PassportUpdateOne {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableNationality(v *string) *PassportUpdateOne {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// SetPassportNumber sets the "passport_number" field.
func (_u *PassportUpdateOne) SetPassportNumber(v string) *PassportUpdateOne {
	_u.mutation.SetPassportNumber(v)
	return _u
}

// SetNillablePassportNumber sets the "passport_number" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillablePassportNumber(v *string) *PassportUpdateOne {
	if v != nil {
		_u.SetPassportNumber(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *PassportUpdateOne) SetConfidenceScore(v float64) *PassportUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableConfidenceScore(v *float64) *PassportUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *PassportUpdateOne) AddConfidenceScore(v float64) *PassportUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *PassportUpdateOne) ClearConfidenceScore() *PassportUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PassportUpdateOne) SetCreatedAt(v time.Time) *PassportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PassportUpdateOne) SetNillableCreatedAt(v *time.Time) *PassportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassportUpdateOne) SetUpdatedAt(v time.Time) *PassportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *PassportUpdateOne) SetOwner(v *User) *PassportUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetVoyage sets the "voyage" edge to the Voyage entity.
func (_u *PassportUpdateOne) SetVoyage(v *Voyage) *PassportUpdateOne {
	return _u.SetVoyageID(v.ID)
}

// Mutation returns the PassportMutation object of the builder.
func (_u *PassportUpdateOne) Mutation() *PassportMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *PassportUpdateOne) ClearOwner() *PassportUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearVoyage clears the "voyage" edge to the Voyage entity.
func (_u *PassportUpdateOne) ClearVoyage() *PassportUpdateOne {
	_u.mutation.ClearVoyage()
	return _u
}

// Where appends a list predicates to the PassportUpdate builder.
func (_u *PassportUpdateOne) Where(ps ...predicate.Passport) *PassportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PassportUpdateOne) Select(field string, fields ...string) *PassportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Passport entity.
func (_u *PassportUpdateOne) Save(ctx context.Context) (*Passport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassportUpdateOne) SaveX(ctx context.Context) *Passport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PassportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassportUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := passport.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Passport.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := passport.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Passport.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nationality(); ok {
		if err := passport.NationalityValidator(v); err != nil {
			return &ValidationError{Name: "nationality", err: fmt.Errorf(`ent: validator failed for field "Passport.nationality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassportNumber(); ok {
		if err := passport.PassportNumberValidator(v); err != nil {
			return &ValidationError{Name: "passport_number", err: fmt.Errorf(`ent: validator failed for field "Passport.passport_number": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Passport.owner"`)
	}
	return nil
}

func (_u *PassportUpdateOne) sqlSave(ctx context.Context) (_node *Passport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passport.Table, passport.Columns, sqlgraph.NewFieldSpec(passport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Passport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passport.FieldID)
		for _, f := range fields {
			if !passport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != passport.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(passport.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(passport.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(passport.FieldBirthDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeliveryDate(); ok {
		_spec.SetField(passport.FieldDeliveryDate, field.TypeTime, value)
	}
	if _u.mutation.DeliveryDateCleared() {
		_spec.ClearField(passport.FieldDeliveryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(passport.FieldExpirationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(passport.FieldNationality, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassportNumber(); ok {
		_spec.SetField(passport.FieldPassportNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(passport.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(passport.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(passport.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(passport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(passport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VoyageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VoyageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Passport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

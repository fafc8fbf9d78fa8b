// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/invitation"
	"github.com/voyagedesk/passport-tracker/gen/ent/ocrjob"
	"github.com/voyagedesk/passport-tracker/gen/ent/passport"
	"github.com/voyagedesk/passport-tracker/gen/ent/predicate"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvitation = "Invitation"
	TypeOcrJob     = "OcrJob"
	TypePassport   = "Passport"
	TypeUser       = "User"
	TypeVoyage     = "Voyage"
)

// InvitationMutation represents an operation that mutates the Invitation nodes in the graph.
type InvitationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	email         *string
	token         *string
	expires_at    *time.Time
	is_used       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Invitation, error)
	predicates    []predicate.Invitation
}

var _ ent.Mutation = (*InvitationMutation)(nil)

// invitationOption allows management of the mutation configuration using functional options.
type invitationOption func(*InvitationMutation)

// newInvitationMutation creates new mutation for the Invitation entity.
func newInvitationMutation(c config, op Op, opts ...invitationOption) *InvitationMutation {
	m := &InvitationMutation{
		config:        c,
		op:            op,
		typ:           TypeInvitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvitationID sets the ID field of the mutation.
func withInvitationID(id uuid.UUID) invitationOption {
	return func(m *InvitationMutation) {
		var (
			err   error
			once  sync.Once
			value *Invitation
		)
		m.oldValue = func(ctx context.Context) (*Invitation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invitation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvitation sets the old Invitation of the mutation.
func withInvitation(node *Invitation) invitationOption {
	return func(m *InvitationMutation) {
		m.oldValue = func(context.Context) (*Invitation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invitation entities.
func (m *InvitationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvitationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvitationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invitation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *InvitationMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *InvitationMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *InvitationMutation) ResetEmail() {
	m.email = nil
}

// SetToken sets the "token" field.
func (m *InvitationMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *InvitationMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *InvitationMutation) ResetToken() {
	m.token = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *InvitationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *InvitationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *InvitationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetIsUsed sets the "is_used" field.
func (m *InvitationMutation) SetIsUsed(b bool) {
	m.is_used = &b
}

// IsUsed returns the value of the "is_used" field in the mutation.
func (m *InvitationMutation) IsUsed() (r bool, exists bool) {
	v := m.is_used
	if v == nil {
		return
	}
	return *v, true
}

// OldIsUsed returns the old "is_used" field's value of the Invitation entity.
// If the Invitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvitationMutation) OldIsUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsUsed: %w", err)
	}
	return oldValue.IsUsed, nil
}

// ResetIsUsed resets all changes to the "is_used" field.
func (m *InvitationMutation) ResetIsUsed() {
	m.is_used = nil
}

// Where appends a list predicates to the InvitationMutation builder.
func (m *InvitationMutation) Where(ps ...predicate.Invitation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invitation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invitation).
func (m *InvitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvitationMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, invitation.FieldEmail)
	}
	if m.token != nil {
		fields = append(fields, invitation.FieldToken)
	}
	if m.expires_at != nil {
		fields = append(fields, invitation.FieldExpiresAt)
	}
	if m.is_used != nil {
		fields = append(fields, invitation.FieldIsUsed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invitation.FieldEmail:
		return m.Email()
	case invitation.FieldToken:
		return m.Token()
	case invitation.FieldExpiresAt:
		return m.ExpiresAt()
	case invitation.FieldIsUsed:
		return m.IsUsed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invitation.FieldEmail:
		return m.OldEmail(ctx)
	case invitation.FieldToken:
		return m.OldToken(ctx)
	case invitation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case invitation.FieldIsUsed:
		return m.OldIsUsed(ctx)
	}
	return nil, fmt.Errorf("unknown Invitation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invitation.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case invitation.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case invitation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case invitation.FieldIsUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Invitation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvitationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvitationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Invitation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvitationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvitationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Invitation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvitationMutation) ResetField(name string) error {
	switch name {
	case invitation.FieldEmail:
		m.ResetEmail()
		return nil
	case invitation.FieldToken:
		m.ResetToken()
		return nil
	case invitation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case invitation.FieldIsUsed:
		m.ResetIsUsed()
		return nil
	}
	return fmt.Errorf("unknown Invitation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvitationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvitationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvitationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Invitation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvitationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Invitation edge %s", name)
}

// OcrJobMutation represents an operation that mutates the OcrJob nodes in the graph.
type OcrJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	file_name       *string
	status          *string
	progress        *int
	addprogress     *int
	created_at      *time.Time
	finished_at     *time.Time
	successes       *json.RawMessage
	appendsuccesses json.RawMessage
	failures        *json.RawMessage
	appendfailures  json.RawMessage
	clearedFields   map[string]struct{}
	user            *uuid.UUID
	cleareduser     bool
	done            bool
	oldValue        func(context.Context) (*OcrJob, error)
	predicates      []predicate.OcrJob
}

var _ ent.Mutation = (*OcrJobMutation)(nil)

// ocrjobOption allows management of the mutation configuration using functional options.
type ocrjobOption func(*OcrJobMutation)

// newOcrJobMutation creates new mutation for the OcrJob entity.
func newOcrJobMutation(c config, op Op, opts ...ocrjobOption) *OcrJobMutation {
	m := &OcrJobMutation{
		config:        c,
		op:            op,
		typ:           TypeOcrJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOcrJobID sets the ID field of the mutation.
func withOcrJobID(id uuid.UUID) ocrjobOption {
	return func(m *OcrJobMutation) {
		var (
			err   error
			once  sync.Once
			value *OcrJob
		)
		m.oldValue = func(ctx context.Context) (*OcrJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OcrJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOcrJob sets the old OcrJob of the mutation.
func withOcrJob(node *OcrJob) ocrjobOption {
	return func(m *OcrJobMutation) {
		m.oldValue = func(context.Context) (*OcrJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OcrJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OcrJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OcrJob entities.
func (m *OcrJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OcrJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OcrJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OcrJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *OcrJobMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OcrJobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OcrJobMutation) ResetUserID() {
	m.user = nil
}

// SetFileName sets the "file_name" field.
func (m *OcrJobMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *OcrJobMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *OcrJobMutation) ResetFileName() {
	m.file_name = nil
}

// SetStatus sets the "status" field.
func (m *OcrJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OcrJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OcrJobMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *OcrJobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *OcrJobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *OcrJobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *OcrJobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *OcrJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OcrJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OcrJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OcrJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *OcrJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *OcrJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *OcrJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[ocrjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *OcrJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[ocrjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *OcrJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, ocrjob.FieldFinishedAt)
}

// SetSuccesses sets the "successes" field.
func (m *OcrJobMutation) SetSuccesses(jm json.RawMessage) {
	m.successes = &jm
	m.appendsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *OcrJobMutation) Successes() (r json.RawMessage, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldSuccesses(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AppendSuccesses adds jm to the "successes" field.
func (m *OcrJobMutation) AppendSuccesses(jm json.RawMessage) {
	m.appendsuccesses = append(m.appendsuccesses, jm...)
}

// AppendedSuccesses returns the list of values that were appended to the "successes" field in this mutation.
func (m *OcrJobMutation) AppendedSuccesses() (json.RawMessage, bool) {
	if len(m.appendsuccesses) == 0 {
		return nil, false
	}
	return m.appendsuccesses, true
}

// ClearSuccesses clears the value of the "successes" field.
func (m *OcrJobMutation) ClearSuccesses() {
	m.successes = nil
	m.appendsuccesses = nil
	m.clearedFields[ocrjob.FieldSuccesses] = struct{}{}
}

// SuccessesCleared returns if the "successes" field was cleared in this mutation.
func (m *OcrJobMutation) SuccessesCleared() bool {
	_, ok := m.clearedFields[ocrjob.FieldSuccesses]
	return ok
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *OcrJobMutation) ResetSuccesses() {
	m.successes = nil
	m.appendsuccesses = nil
	delete(m.clearedFields, ocrjob.FieldSuccesses)
}

// SetFailures sets the "failures" field.
func (m *OcrJobMutation) SetFailures(jm json.RawMessage) {
	m.failures = &jm
	m.appendfailures = nil
}

// Failures returns the value of the "failures" field in the mutation.
func (m *OcrJobMutation) Failures() (r json.RawMessage, exists bool) {
	v := m.failures
	if v == nil {
		return
	}
	return *v, true
}

// OldFailures returns the old "failures" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldFailures(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailures: %w", err)
	}
	return oldValue.Failures, nil
}

// AppendFailures adds jm to the "failures" field.
func (m *OcrJobMutation) AppendFailures(jm json.RawMessage) {
	m.appendfailures = append(m.appendfailures, jm...)
}

// AppendedFailures returns the list of values that were appended to the "failures" field in this mutation.
func (m *OcrJobMutation) AppendedFailures() (json.RawMessage, bool) {
	if len(m.appendfailures) == 0 {
		return nil, false
	}
	return m.appendfailures, true
}

// ClearFailures clears the value of the "failures" field.
func (m *OcrJobMutation) ClearFailures() {
	m.failures = nil
	m.appendfailures = nil
	m.clearedFields[ocrjob.FieldFailures] = struct{}{}
}

// FailuresCleared returns if the "failures" field was cleared in this mutation.
func (m *OcrJobMutation) FailuresCleared() bool {
	_, ok := m.clearedFields[ocrjob.FieldFailures]
	return ok
}

// ResetFailures resets all changes to the "failures" field.
func (m *OcrJobMutation) ResetFailures() {
	m.failures = nil
	m.appendfailures = nil
	delete(m.clearedFields, ocrjob.FieldFailures)
}

// ClearUser clears the "user" edge to the User entity.
func (m *OcrJobMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[ocrjob.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *OcrJobMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *OcrJobMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *OcrJobMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the OcrJobMutation builder.
func (m *OcrJobMutation) Where(ps ...predicate.OcrJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OcrJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OcrJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OcrJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OcrJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OcrJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OcrJob).
func (m *OcrJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OcrJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user != nil {
		fields = append(fields, ocrjob.FieldUserID)
	}
	if m.file_name != nil {
		fields = append(fields, ocrjob.FieldFileName)
	}
	if m.status != nil {
		fields = append(fields, ocrjob.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, ocrjob.FieldProgress)
	}
	if m.created_at != nil {
		fields = append(fields, ocrjob.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, ocrjob.FieldFinishedAt)
	}
	if m.successes != nil {
		fields = append(fields, ocrjob.FieldSuccesses)
	}
	if m.failures != nil {
		fields = append(fields, ocrjob.FieldFailures)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OcrJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrjob.FieldUserID:
		return m.UserID()
	case ocrjob.FieldFileName:
		return m.FileName()
	case ocrjob.FieldStatus:
		return m.Status()
	case ocrjob.FieldProgress:
		return m.Progress()
	case ocrjob.FieldCreatedAt:
		return m.CreatedAt()
	case ocrjob.FieldFinishedAt:
		return m.FinishedAt()
	case ocrjob.FieldSuccesses:
		return m.Successes()
	case ocrjob.FieldFailures:
		return m.Failures()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OcrJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrjob.FieldUserID:
		return m.OldUserID(ctx)
	case ocrjob.FieldFileName:
		return m.OldFileName(ctx)
	case ocrjob.FieldStatus:
		return m.OldStatus(ctx)
	case ocrjob.FieldProgress:
		return m.OldProgress(ctx)
	case ocrjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ocrjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case ocrjob.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case ocrjob.FieldFailures:
		return m.OldFailures(ctx)
	}
	return nil, fmt.Errorf("unknown OcrJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrjob.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case ocrjob.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case ocrjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ocrjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case ocrjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ocrjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case ocrjob.FieldSuccesses:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case ocrjob.FieldFailures:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailures(v)
		return nil
	}
	return fmt.Errorf("unknown OcrJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OcrJobMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, ocrjob.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OcrJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ocrjob.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ocrjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown OcrJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OcrJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ocrjob.FieldFinishedAt) {
		fields = append(fields, ocrjob.FieldFinishedAt)
	}
	if m.FieldCleared(ocrjob.FieldSuccesses) {
		fields = append(fields, ocrjob.FieldSuccesses)
	}
	if m.FieldCleared(ocrjob.FieldFailures) {
		fields = append(fields, ocrjob.FieldFailures)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OcrJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OcrJobMutation) ClearField(name string) error {
	switch name {
	case ocrjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case ocrjob.FieldSuccesses:
		m.ClearSuccesses()
		return nil
	case ocrjob.FieldFailures:
		m.ClearFailures()
		return nil
	}
	return fmt.Errorf("unknown OcrJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OcrJobMutation) ResetField(name string) error {
	switch name {
	case ocrjob.FieldUserID:
		m.ResetUserID()
		return nil
	case ocrjob.FieldFileName:
		m.ResetFileName()
		return nil
	case ocrjob.FieldStatus:
		m.ResetStatus()
		return nil
	case ocrjob.FieldProgress:
		m.ResetProgress()
		return nil
	case ocrjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ocrjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case ocrjob.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case ocrjob.FieldFailures:
		m.ResetFailures()
		return nil
	}
	return fmt.Errorf("unknown OcrJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OcrJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, ocrjob.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OcrJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ocrjob.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OcrJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OcrJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OcrJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, ocrjob.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OcrJobMutation) EdgeCleared(name string) bool {
	switch name {
	case ocrjob.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OcrJobMutation) ClearEdge(name string) error {
	switch name {
	case ocrjob.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown OcrJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OcrJobMutation) ResetEdge(name string) error {
	switch name {
	case ocrjob.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown OcrJob edge %s", name)
}

// PassportMutation represents an operation that mutates the Passport nodes in the graph.
type PassportMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	first_name          *string
	last_name           *string
	birth_date          *time.Time
	delivery_date       *time.Time
	expiration_date     *time.Time
	nationality         *string
	passport_number     *string
	confidence_score    *float64
	addconfidence_score *float64
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	owner               *uuid.UUID
	clearedowner        bool
	voyage              *uuid.UUID
	clearedvoyage       bool
	done                bool
	oldValue            func(context.Context) (*Passport, error)
	predicates          []predicate.Passport
}

var _ ent.Mutation = (*PassportMutation)(nil)

// passportOption allows management of the mutation configuration using functional options.
type passportOption func(*PassportMutation)

// newPassportMutation creates new mutation for the Passport entity.
func newPassportMutation(c config, op Op, opts ...passportOption) *PassportMutation {
	m := &PassportMutation{
		config:        c,
		op:            op,
		typ:           TypePassport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPassportID sets the ID field of the mutation.
func withPassportID(id uuid.UUID) passportOption {
	return func(m *PassportMutation) {
		var (
			err   error
			once  sync.Once
			value *Passport
		)
		m.oldValue = func(ctx context.Context) (*Passport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Passport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPassport sets the old Passport of the mutation.
func withPassport(node *Passport) passportOption {
	return func(m *PassportMutation) {
		m.oldValue = func(context.Context) (*Passport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PassportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PassportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Passport entities.
func (m *PassportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PassportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PassportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Passport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *PassportMutation) SetOwnerID(u uuid.UUID) {
	m.owner = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *PassportMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *PassportMutation) ResetOwnerID() {
	m.owner = nil
}

// SetVoyageID sets the "voyage_id" field.
func (m *PassportMutation) SetVoyageID(u uuid.UUID) {
	m.voyage = &u
}

// VoyageID returns the value of the "voyage_id" field in the mutation.
func (m *PassportMutation) VoyageID() (r uuid.UUID, exists bool) {
	v := m.voyage
	if v == nil {
		return
	}
	return *v, true
}

// OldVoyageID returns the old "voyage_id" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldVoyageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoyageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoyageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoyageID: %w", err)
	}
	return oldValue.VoyageID, nil
}

// ClearVoyageID clears the value of the "voyage_id" field.
func (m *PassportMutation) ClearVoyageID() {
	m.voyage = nil
	m.clearedFields[passport.FieldVoyageID] = struct{}{}
}

// VoyageIDCleared returns if the "voyage_id" field was cleared in this mutation.
func (m *PassportMutation) VoyageIDCleared() bool {
	_, ok := m.clearedFields[passport.FieldVoyageID]
	return ok
}

// ResetVoyageID resets all changes to the "voyage_id" field.
func (m *PassportMutation) ResetVoyageID() {
	m.voyage = nil
	delete(m.clearedFields, passport.FieldVoyageID)
}

// SetFirstName sets the "first_name" field.
func (m *PassportMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PassportMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PassportMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PassportMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PassportMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PassportMutation) ResetLastName() {
	m.last_name = nil
}

// SetBirthDate sets the "birth_date" field.
func (m *PassportMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *PassportMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldBirthDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *PassportMutation) ResetBirthDate() {
	m.birth_date = nil
}

// SetDeliveryDate sets the "delivery_date" field.
func (m *PassportMutation) SetDeliveryDate(t time.Time) {
	m.delivery_date = &t
}

// DeliveryDate returns the value of the "delivery_date" field in the mutation.
func (m *PassportMutation) DeliveryDate() (r time.Time, exists bool) {
	v := m.delivery_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryDate returns the old "delivery_date" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldDeliveryDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryDate: %w", err)
	}
	return oldValue.DeliveryDate, nil
}

// ClearDeliveryDate clears the value of the "delivery_date" field.
func (m *PassportMutation) ClearDeliveryDate() {
	m.delivery_date = nil
	m.clearedFields[passport.FieldDeliveryDate] = struct{}{}
}

// DeliveryDateCleared returns if the "delivery_date" field was cleared in this mutation.
func (m *PassportMutation) DeliveryDateCleared() bool {
	_, ok := m.clearedFields[passport.FieldDeliveryDate]
	return ok
}

// ResetDeliveryDate resets all changes to the "delivery_date" field.
func (m *PassportMutation) ResetDeliveryDate() {
	m.delivery_date = nil
	delete(m.clearedFields, passport.FieldDeliveryDate)
}

// SetExpirationDate sets the "expiration_date" field.
func (m *PassportMutation) SetExpirationDate(t time.Time) {
	m.expiration_date = &t
}

// ExpirationDate returns the value of the "expiration_date" field in the mutation.
func (m *PassportMutation) ExpirationDate() (r time.Time, exists bool) {
	v := m.expiration_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpirationDate returns the old "expiration_date" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldExpirationDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpirationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpirationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpirationDate: %w", err)
	}
	return oldValue.ExpirationDate, nil
}

// ResetExpirationDate resets all changes to the "expiration_date" field.
func (m *PassportMutation) ResetExpirationDate() {
	m.expiration_date = nil
}

// SetNationality sets the "nationality" field.
func (m *PassportMutation) SetNationality(s string) {
	m.nationality = &s
}

// Nationality returns the value of the "nationality" field in the mutation.
func (m *PassportMutation) Nationality() (r string, exists bool) {
	v := m.nationality
	if v == nil {
		return
	}
	return *v, true
}

// OldNationality returns the old "nationality" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldNationality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationality: %w", err)
	}
	return oldValue.Nationality, nil
}

// ResetNationality resets all changes to the "nationality" field.
func (m *PassportMutation) ResetNationality() {
	m.nationality = nil
}

// SetPassportNumber sets the "passport_number" field.
func (m *PassportMutation) SetPassportNumber(s string) {
	m.passport_number = &s
}

// PassportNumber returns the value of the "passport_number" field in the mutation.
func (m *PassportMutation) PassportNumber() (r string, exists bool) {
	v := m.passport_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPassportNumber returns the old "passport_number" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldPassportNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassportNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassportNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassportNumber: %w", err)
	}
	return oldValue.PassportNumber, nil
}

// ResetPassportNumber resets all changes to the "passport_number" field.
func (m *PassportMutation) ResetPassportNumber() {
	m.passport_number = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *PassportMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *PassportMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *PassportMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *PassportMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *PassportMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[passport.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *PassportMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[passport.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *PassportMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, passport.FieldConfidenceScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *PassportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PassportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PassportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PassportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PassportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Passport entity.
// If the Passport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PassportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *PassportMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[passport.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *PassportMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *PassportMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *PassportMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// ClearVoyage clears the "voyage" edge to the Voyage entity.
func (m *PassportMutation) ClearVoyage() {
	m.clearedvoyage = true
	m.clearedFields[passport.FieldVoyageID] = struct{}{}
}

// VoyageCleared reports if the "voyage" edge to the Voyage entity was cleared.
func (m *PassportMutation) VoyageCleared() bool {
	return m.VoyageIDCleared() || m.clearedvoyage
}

// VoyageIDs returns the "voyage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VoyageID instead. It exists only for internal usage by the builders.
func (m *PassportMutation) VoyageIDs() (ids []uuid.UUID) {
	if id := m.voyage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVoyage resets all changes to the "voyage" edge.
func (m *PassportMutation) ResetVoyage() {
	m.voyage = nil
	m.clearedvoyage = false
}

// Where appends a list predicates to the PassportMutation builder.
func (m *PassportMutation) Where(ps ...predicate.Passport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PassportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PassportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Passport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PassportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PassportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Passport).
func (m *PassportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PassportMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.owner != nil {
		fields = append(fields, passport.FieldOwnerID)
	}
	if m.voyage != nil {
		fields = append(fields, passport.FieldVoyageID)
	}
	if m.first_name != nil {
		fields = append(fields, passport.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, passport.FieldLastName)
	}
	if m.birth_date != nil {
		fields = append(fields, passport.FieldBirthDate)
	}
	if m.delivery_date != nil {
		fields = append(fields, passport.FieldDeliveryDate)
	}
	if m.expiration_date != nil {
		fields = append(fields, passport.FieldExpirationDate)
	}
	if m.nationality != nil {
		fields = append(fields, passport.FieldNationality)
	}
	if m.passport_number != nil {
		fields = append(fields, passport.FieldPassportNumber)
	}
	if m.confidence_score != nil {
		fields = append(fields, passport.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, passport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, passport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PassportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case passport.FieldOwnerID:
		return m.OwnerID()
	case passport.FieldVoyageID:
		return m.VoyageID()
	case passport.FieldFirstName:
		return m.FirstName()
	case passport.FieldLastName:
		return m.LastName()
	case passport.FieldBirthDate:
		return m.BirthDate()
	case passport.FieldDeliveryDate:
		return m.DeliveryDate()
	case passport.FieldExpirationDate:
		return m.ExpirationDate()
	case passport.FieldNationality:
		return m.Nationality()
	case passport.FieldPassportNumber:
		return m.PassportNumber()
	case passport.FieldConfidenceScore:
		return m.ConfidenceScore()
	case passport.FieldCreatedAt:
		return m.CreatedAt()
	case passport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PassportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case passport.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case passport.FieldVoyageID:
		return m.OldVoyageID(ctx)
	case passport.FieldFirstName:
		return m.OldFirstName(ctx)
	case passport.FieldLastName:
		return m.OldLastName(ctx)
	case passport.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case passport.FieldDeliveryDate:
		return m.OldDeliveryDate(ctx)
	case passport.FieldExpirationDate:
		return m.OldExpirationDate(ctx)
	case passport.FieldNationality:
		return m.OldNationality(ctx)
	case passport.FieldPassportNumber:
		return m.OldPassportNumber(ctx)
	case passport.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case passport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case passport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Passport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case passport.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case passport.FieldVoyageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoyageID(v)
		return nil
	case passport.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case passport.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case passport.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case passport.FieldDeliveryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryDate(v)
		return nil
	case passport.FieldExpirationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpirationDate(v)
		return nil
	case passport.FieldNationality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationality(v)
		return nil
	case passport.FieldPassportNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassportNumber(v)
		return nil
	case passport.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case passport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case passport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Passport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PassportMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, passport.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PassportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case passport.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case passport.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Passport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PassportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(passport.FieldVoyageID) {
		fields = append(fields, passport.FieldVoyageID)
	}
	if m.FieldCleared(passport.FieldDeliveryDate) {
		fields = append(fields, passport.FieldDeliveryDate)
	}
	if m.FieldCleared(passport.FieldConfidenceScore) {
		fields = append(fields, passport.FieldConfidenceScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PassportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PassportMutation) ClearField(name string) error {
	switch name {
	case passport.FieldVoyageID:
		m.ClearVoyageID()
		return nil
	case passport.FieldDeliveryDate:
		m.ClearDeliveryDate()
		return nil
	case passport.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown Passport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PassportMutation) ResetField(name string) error {
	switch name {
	case passport.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case passport.FieldVoyageID:
		m.ResetVoyageID()
		return nil
	case passport.FieldFirstName:
		m.ResetFirstName()
		return nil
	case passport.FieldLastName:
		m.ResetLastName()
		return nil
	case passport.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case passport.FieldDeliveryDate:
		m.ResetDeliveryDate()
		return nil
	case passport.FieldExpirationDate:
		m.ResetExpirationDate()
		return nil
	case passport.FieldNationality:
		m.ResetNationality()
		return nil
	case passport.FieldPassportNumber:
		m.ResetPassportNumber()
		return nil
	case passport.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case passport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case passport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Passport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PassportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.owner != nil {
		edges = append(edges, passport.EdgeOwner)
	}
	if m.voyage != nil {
		edges = append(edges, passport.EdgeVoyage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PassportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case passport.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case passport.EdgeVoyage:
		if id := m.voyage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PassportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PassportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PassportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedowner {
		edges = append(edges, passport.EdgeOwner)
	}
	if m.clearedvoyage {
		edges = append(edges, passport.EdgeVoyage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PassportMutation) EdgeCleared(name string) bool {
	switch name {
	case passport.EdgeOwner:
		return m.clearedowner
	case passport.EdgeVoyage:
		return m.clearedvoyage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PassportMutation) ClearEdge(name string) error {
	switch name {
	case passport.EdgeOwner:
		m.ClearOwner()
		return nil
	case passport.EdgeVoyage:
		m.ClearVoyage()
		return nil
	}
	return fmt.Errorf("unknown Passport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PassportMutation) ResetEdge(name string) error {
	switch name {
	case passport.EdgeOwner:
		m.ResetOwner()
		return nil
	case passport.EdgeVoyage:
		m.ResetVoyage()
		return nil
	}
	return fmt.Errorf("unknown Passport edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	first_name              *string
	last_name               *string
	email                   *string
	phone_number            *string
	username                *string
	password_hash           *string
	role                    *string
	uploaded_pages_count    *int
	adduploaded_pages_count *int
	page_credits            *int
	addpage_credits         *int
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	passports               map[uuid.UUID]struct{}
	removedpassports        map[uuid.UUID]struct{}
	clearedpassports        bool
	voyages                 map[uuid.UUID]struct{}
	removedvoyages          map[uuid.UUID]struct{}
	clearedvoyages          bool
	jobs                    map[uuid.UUID]struct{}
	removedjobs             map[uuid.UUID]struct{}
	clearedjobs             bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhoneNumber sets the "phone_number" field.
func (m *UserMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *UserMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *UserMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[user.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *UserMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[user.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *UserMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, user.FieldPhoneNumber)
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetUploadedPagesCount sets the "uploaded_pages_count" field.
func (m *UserMutation) SetUploadedPagesCount(i int) {
	m.uploaded_pages_count = &i
	m.adduploaded_pages_count = nil
}

// UploadedPagesCount returns the value of the "uploaded_pages_count" field in the mutation.
func (m *UserMutation) UploadedPagesCount() (r int, exists bool) {
	v := m.uploaded_pages_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedPagesCount returns the old "uploaded_pages_count" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUploadedPagesCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedPagesCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedPagesCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedPagesCount: %w", err)
	}
	return oldValue.UploadedPagesCount, nil
}

// AddUploadedPagesCount adds i to the "uploaded_pages_count" field.
func (m *UserMutation) AddUploadedPagesCount(i int) {
	if m.adduploaded_pages_count != nil {
		*m.adduploaded_pages_count += i
	} else {
		m.adduploaded_pages_count = &i
	}
}

// AddedUploadedPagesCount returns the value that was added to the "uploaded_pages_count" field in this mutation.
func (m *UserMutation) AddedUploadedPagesCount() (r int, exists bool) {
	v := m.adduploaded_pages_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUploadedPagesCount resets all changes to the "uploaded_pages_count" field.
func (m *UserMutation) ResetUploadedPagesCount() {
	m.uploaded_pages_count = nil
	m.adduploaded_pages_count = nil
}

// SetPageCredits sets the "page_credits" field.
func (m *UserMutation) SetPageCredits(i int) {
	m.page_credits = &i
	m.addpage_credits = nil
}

// PageCredits returns the value of the "page_credits" field in the mutation.
func (m *UserMutation) PageCredits() (r int, exists bool) {
	v := m.page_credits
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCredits returns the old "page_credits" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPageCredits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCredits: %w", err)
	}
	return oldValue.PageCredits, nil
}

// AddPageCredits adds i to the "page_credits" field.
func (m *UserMutation) AddPageCredits(i int) {
	if m.addpage_credits != nil {
		*m.addpage_credits += i
	} else {
		m.addpage_credits = &i
	}
}

// AddedPageCredits returns the value that was added to the "page_credits" field in this mutation.
func (m *UserMutation) AddedPageCredits() (r int, exists bool) {
	v := m.addpage_credits
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCredits resets all changes to the "page_credits" field.
func (m *UserMutation) ResetPageCredits() {
	m.page_credits = nil
	m.addpage_credits = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPassportIDs adds the "passports" edge to the Passport entity by ids.
func (m *UserMutation) AddPassportIDs(ids ...uuid.UUID) {
	if m.passports == nil {
		m.passports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.passports[ids[i]] = struct{}{}
	}
}

// ClearPassports clears the "passports" edge to the Passport entity.
func (m *UserMutation) ClearPassports() {
	m.clearedpassports = true
}

// PassportsCleared reports if the "passports" edge to the Passport entity was cleared.
func (m *UserMutation) PassportsCleared() bool {
	return m.clearedpassports
}

// RemovePassportIDs removes the "passports" edge to the Passport entity by IDs.
func (m *UserMutation) RemovePassportIDs(ids ...uuid.UUID) {
	if m.removedpassports == nil {
		m.removedpassports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.passports, ids[i])
		m.removedpassports[ids[i]] = struct{}{}
	}
}

// RemovedPassports returns the removed IDs of the "passports" edge to the Passport entity.
func (m *UserMutation) RemovedPassportsIDs() (ids []uuid.UUID) {
	for id := range m.removedpassports {
		ids = append(ids, id)
	}
	return
}

// PassportsIDs returns the "passports" edge IDs in the mutation.
func (m *UserMutation) PassportsIDs() (ids []uuid.UUID) {
	for id := range m.passports {
		ids = append(ids, id)
	}
	return
}

// ResetPassports resets all changes to the "passports" edge.
func (m *UserMutation) ResetPassports() {
	m.passports = nil
	m.clearedpassports = false
	m.removedpassports = nil
}

// AddVoyageIDs adds the "voyages" edge to the Voyage entity by ids.
func (m *UserMutation) AddVoyageIDs(ids ...uuid.UUID) {
	if m.voyages == nil {
		m.voyages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.voyages[ids[i]] = struct{}{}
	}
}

// ClearVoyages clears the "voyages" edge to the Voyage entity.
func (m *UserMutation) ClearVoyages() {
	m.clearedvoyages = true
}

// VoyagesCleared reports if the "voyages" edge to the Voyage entity was cleared.
func (m *UserMutation) VoyagesCleared() bool {
	return m.clearedvoyages
}

// RemoveVoyageIDs removes the "voyages" edge to the Voyage entity by IDs.
func (m *UserMutation) RemoveVoyageIDs(ids ...uuid.UUID) {
	if m.removedvoyages == nil {
		m.removedvoyages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.voyages, ids[i])
		m.removedvoyages[ids[i]] = struct{}{}
	}
}

// RemovedVoyages returns the removed IDs of the "voyages" edge to the Voyage entity.
func (m *UserMutation) RemovedVoyagesIDs() (ids []uuid.UUID) {
	for id := range m.removedvoyages {
		ids = append(ids, id)
	}
	return
}

// VoyagesIDs returns the "voyages" edge IDs in the mutation.
func (m *UserMutation) VoyagesIDs() (ids []uuid.UUID) {
	for id := range m.voyages {
		ids = append(ids, id)
	}
	return
}

// ResetVoyages resets all changes to the "voyages" edge.
func (m *UserMutation) ResetVoyages() {
	m.voyages = nil
	m.clearedvoyages = false
	m.removedvoyages = nil
}

// AddJobIDs adds the "jobs" edge to the OcrJob entity by ids.
func (m *UserMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the OcrJob entity.
func (m *UserMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the OcrJob entity was cleared.
func (m *UserMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the OcrJob entity by IDs.
func (m *UserMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the OcrJob entity.
func (m *UserMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *UserMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *UserMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone_number != nil {
		fields = append(fields, user.FieldPhoneNumber)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.uploaded_pages_count != nil {
		fields = append(fields, user.FieldUploadedPagesCount)
	}
	if m.page_credits != nil {
		fields = append(fields, user.FieldPageCredits)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhoneNumber:
		return m.PhoneNumber()
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldUploadedPagesCount:
		return m.UploadedPagesCount()
	case user.FieldPageCredits:
		return m.PageCredits()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldUploadedPagesCount:
		return m.OldUploadedPagesCount(ctx)
	case user.FieldPageCredits:
		return m.OldPageCredits(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldUploadedPagesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedPagesCount(v)
		return nil
	case user.FieldPageCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCredits(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.adduploaded_pages_count != nil {
		fields = append(fields, user.FieldUploadedPagesCount)
	}
	if m.addpage_credits != nil {
		fields = append(fields, user.FieldPageCredits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUploadedPagesCount:
		return m.AddedUploadedPagesCount()
	case user.FieldPageCredits:
		return m.AddedPageCredits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldUploadedPagesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUploadedPagesCount(v)
		return nil
	case user.FieldPageCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCredits(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPhoneNumber) {
		fields = append(fields, user.FieldPhoneNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldUploadedPagesCount:
		m.ResetUploadedPagesCount()
		return nil
	case user.FieldPageCredits:
		m.ResetPageCredits()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.passports != nil {
		edges = append(edges, user.EdgePassports)
	}
	if m.voyages != nil {
		edges = append(edges, user.EdgeVoyages)
	}
	if m.jobs != nil {
		edges = append(edges, user.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePassports:
		ids := make([]ent.Value, 0, len(m.passports))
		for id := range m.passports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeVoyages:
		ids := make([]ent.Value, 0, len(m.voyages))
		for id := range m.voyages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpassports != nil {
		edges = append(edges, user.EdgePassports)
	}
	if m.removedvoyages != nil {
		edges = append(edges, user.EdgeVoyages)
	}
	if m.removedjobs != nil {
		edges = append(edges, user.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePassports:
		ids := make([]ent.Value, 0, len(m.removedpassports))
		for id := range m.removedpassports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeVoyages:
		ids := make([]ent.Value, 0, len(m.removedvoyages))
		for id := range m.removedvoyages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpassports {
		edges = append(edges, user.EdgePassports)
	}
	if m.clearedvoyages {
		edges = append(edges, user.EdgeVoyages)
	}
	if m.clearedjobs {
		edges = append(edges, user.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePassports:
		return m.clearedpassports
	case user.EdgeVoyages:
		return m.clearedvoyages
	case user.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePassports:
		m.ResetPassports()
		return nil
	case user.EdgeVoyages:
		m.ResetVoyages()
		return nil
	case user.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// VoyageMutation represents an operation that mutates the Voyage nodes in the graph.
type VoyageMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	destination      *string
	clearedFields    map[string]struct{}
	user             *uuid.UUID
	cleareduser      bool
	passports        map[uuid.UUID]struct{}
	removedpassports map[uuid.UUID]struct{}
	clearedpassports bool
	done             bool
	oldValue         func(context.Context) (*Voyage, error)
	predicates       []predicate.Voyage
}

var _ ent.Mutation = (*VoyageMutation)(nil)

// voyageOption allows management of the mutation configuration using functional options.
type voyageOption func(*VoyageMutation)

// newVoyageMutation creates new mutation for the Voyage entity.
func newVoyageMutation(c config, op Op, opts ...voyageOption) *VoyageMutation {
	m := &VoyageMutation{
		config:        c,
		op:            op,
		typ:           TypeVoyage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoyageID sets the ID field of the mutation.
func withVoyageID(id uuid.UUID) voyageOption {
	return func(m *VoyageMutation) {
		var (
			err   error
			once  sync.Once
			value *Voyage
		)
		m.oldValue = func(ctx context.Context) (*Voyage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Voyage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVoyage sets the old Voyage of the mutation.
func withVoyage(node *Voyage) voyageOption {
	return func(m *VoyageMutation) {
		m.oldValue = func(context.Context) (*Voyage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoyageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoyageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Voyage entities.
func (m *VoyageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoyageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoyageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Voyage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *VoyageMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VoyageMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Voyage entity.
// If the Voyage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoyageMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VoyageMutation) ResetUserID() {
	m.user = nil
}

// SetDestination sets the "destination" field.
func (m *VoyageMutation) SetDestination(s string) {
	m.destination = &s
}

// Destination returns the value of the "destination" field in the mutation.
func (m *VoyageMutation) Destination() (r string, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the Voyage entity.
// If the Voyage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoyageMutation) OldDestination(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ResetDestination resets all changes to the "destination" field.
func (m *VoyageMutation) ResetDestination() {
	m.destination = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *VoyageMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[voyage.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *VoyageMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *VoyageMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *VoyageMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddPassportIDs adds the "passports" edge to the Passport entity by ids.
func (m *VoyageMutation) AddPassportIDs(ids ...uuid.UUID) {
	if m.passports == nil {
		m.passports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.passports[ids[i]] = struct{}{}
	}
}

// ClearPassports clears the "passports" edge to the Passport entity.
func (m *VoyageMutation) ClearPassports() {
	m.clearedpassports = true
}

// PassportsCleared reports if the "passports" edge to the Passport entity was cleared.
func (m *VoyageMutation) PassportsCleared() bool {
	return m.clearedpassports
}

// RemovePassportIDs removes the "passports" edge to the Passport entity by IDs.
func (m *VoyageMutation) RemovePassportIDs(ids ...uuid.UUID) {
	if m.removedpassports == nil {
		m.removedpassports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.passports, ids[i])
		m.removedpassports[ids[i]] = struct{}{}
	}
}

// RemovedPassports returns the removed IDs of the "passports" edge to the Passport entity.
func (m *VoyageMutation) RemovedPassportsIDs() (ids []uuid.UUID) {
	for id := range m.removedpassports {
		ids = append(ids, id)
	}
	return
}

// PassportsIDs returns the "passports" edge IDs in the mutation.
func (m *VoyageMutation) PassportsIDs() (ids []uuid.UUID) {
	for id := range m.passports {
		ids = append(ids, id)
	}
	return
}

// ResetPassports resets all changes to the "passports" edge.
func (m *VoyageMutation) ResetPassports() {
	m.passports = nil
	m.clearedpassports = false
	m.removedpassports = nil
}

// Where appends a list predicates to the VoyageMutation builder.
func (m *VoyageMutation) Where(ps ...predicate.Voyage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoyageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoyageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Voyage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoyageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoyageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Voyage).
func (m *VoyageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoyageMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.user != nil {
		fields = append(fields, voyage.FieldUserID)
	}
	if m.destination != nil {
		fields = append(fields, voyage.FieldDestination)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoyageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case voyage.FieldUserID:
		return m.UserID()
	case voyage.FieldDestination:
		return m.Destination()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoyageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case voyage.FieldUserID:
		return m.OldUserID(ctx)
	case voyage.FieldDestination:
		return m.OldDestination(ctx)
	}
	return nil, fmt.Errorf("unknown Voyage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoyageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case voyage.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case voyage.FieldDestination:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	}
	return fmt.Errorf("unknown Voyage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoyageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoyageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoyageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Voyage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoyageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoyageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoyageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Voyage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoyageMutation) ResetField(name string) error {
	switch name {
	case voyage.FieldUserID:
		m.ResetUserID()
		return nil
	case voyage.FieldDestination:
		m.ResetDestination()
		return nil
	}
	return fmt.Errorf("unknown Voyage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoyageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, voyage.EdgeUser)
	}
	if m.passports != nil {
		edges = append(edges, voyage.EdgePassports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoyageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case voyage.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case voyage.EdgePassports:
		ids := make([]ent.Value, 0, len(m.passports))
		for id := range m.passports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoyageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpassports != nil {
		edges = append(edges, voyage.EdgePassports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoyageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case voyage.EdgePassports:
		ids := make([]ent.Value, 0, len(m.removedpassports))
		for id := range m.removedpassports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoyageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, voyage.EdgeUser)
	}
	if m.clearedpassports {
		edges = append(edges, voyage.EdgePassports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoyageMutation) EdgeCleared(name string) bool {
	switch name {
	case voyage.EdgeUser:
		return m.cleareduser
	case voyage.EdgePassports:
		return m.clearedpassports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoyageMutation) ClearEdge(name string) error {
	switch name {
	case voyage.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Voyage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoyageMutation) ResetEdge(name string) error {
	switch name {
	case voyage.EdgeUser:
		m.ResetUser()
		return nil
	case voyage.EdgePassports:
		m.ResetPassports()
		return nil
	}
	return fmt.Errorf("unknown Voyage edge %s", name)
}

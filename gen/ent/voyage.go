// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

// Voyage is the model entity for the Voyage schema.
type Voyage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Destination holds the value of the "destination" field.
	Destination string `json:"destination,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VoyageQuery when eager-loading is set.
	Edges        VoyageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VoyageEdges holds the relations/edges for other nodes in the graph.
type VoyageEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Passports holds the value of the passports edge.
	Passports []*Passport `json:"passports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VoyageEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PassportsOrErr returns the Passports value or an error if the edge
// was not loaded in eager-loading.
func (e VoyageEdges) PassportsOrErr() ([]*Passport, error) {
	if e.loadedTypes[1] {
		return e.Passports, nil
	}
	return nil, &NotLoadedError{edge: "passports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Voyage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case voyage.FieldDestination:
			values[i] = new(sql.NullString)
		case voyage.FieldID, voyage.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Voyage fields.
func (_m *Voyage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case voyage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case voyage.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case voyage.FieldDestination:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destination", values[i])
			} else if value.Valid {
				_m.Destination = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Voyage.
// This includes values selected through modifiers, order, etc.
func (_m *Voyage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Voyage entity.
func (_m *Voyage) QueryUser() *UserQuery {
	return NewVoyageClient(_m.config).QueryUser(_m)
}

// QueryPassports queries the "passports" edge of the Voyage entity.
func (_m *Voyage) QueryPassports() *PassportQuery {
	return NewVoyageClient(_m.config).QueryPassports(_m)
}

// Update returns a builder for updating this Voyage.
// Note that you need to call Voyage.Unwrap() before calling this method if this Voyage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Voyage) Update() *VoyageUpdateOne {
	return NewVoyageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Voyage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Voyage) Unwrap() *Voyage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Voyage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Voyage) String() string {
	var builder strings.Builder
	builder.WriteString("Voyage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("destination=")
	builder.WriteString(_m.Destination)
	builder.WriteByte(')')
	return builder.String()
}

// Voyages is a parsable slice of Voyage.
type Voyages []*Voyage

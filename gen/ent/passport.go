// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/passport"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

// Passport is the model entity for the Passport schema.
type Passport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// VoyageID holds the value of the "voyage_id" field.
	VoyageID *uuid.UUID `json:"voyage_id,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate time.Time `json:"birth_date,omitempty"`
	// DeliveryDate holds the value of the "delivery_date" field.
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	// ExpirationDate holds the value of the "expiration_date" field.
	ExpirationDate time.Time `json:"expiration_date,omitempty"`
	// Nationality holds the value of the "nationality" field.
	Nationality string `json:"nationality,omitempty"`
	// PassportNumber holds the value of the "passport_number" field.
	PassportNumber string `json:"passport_number,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PassportQuery when eager-loading is set.
	Edges        PassportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PassportEdges holds the relations/edges for other nodes in the graph.
type PassportEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Voyage holds the value of the voyage edge.
	Voyage *Voyage `json:"voyage,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PassportEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// VoyageOrErr returns the Voyage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PassportEdges) VoyageOrErr() (*Voyage, error) {
	if e.Voyage != nil {
		return e.Voyage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: voyage.Label}
	}
	return nil, &NotLoadedError{edge: "voyage"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Passport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case passport.FieldVoyageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case passport.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case passport.FieldFirstName, passport.FieldLastName, passport.FieldNationality, passport.FieldPassportNumber:
			values[i] = new(sql.NullString)
		case passport.FieldBirthDate, passport.FieldDeliveryDate, passport.FieldExpirationDate, passport.FieldCreatedAt, passport.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case passport.FieldID, passport.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Passport fields.
func (_m *Passport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case passport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case passport.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case passport.FieldVoyageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field voyage_id", values[i])
			} else if value.Valid {
				_m.VoyageID = new(uuid.UUID)
				*_m.VoyageID = *value.S.(*uuid.UUID)
			}
		case passport.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case passport.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case passport.FieldBirthDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = value.Time
			}
		case passport.FieldDeliveryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_date", values[i])
			} else if value.Valid {
				_m.DeliveryDate = new(time.Time)
				*_m.DeliveryDate = value.Time
			}
		case passport.FieldExpirationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiration_date", values[i])
			} else if value.Valid {
				_m.ExpirationDate = value.Time
			}
		case passport.FieldNationality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nationality", values[i])
			} else if value.Valid {
				_m.Nationality = value.String
			}
		case passport.FieldPassportNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field passport_number", values[i])
			} else if value.Valid {
				_m.PassportNumber = value.String
			}
		case passport.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case passport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case passport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Passport.
// This includes values selected through modifiers, order, etc.
func (_m *Passport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Passport entity.
func (_m *Passport) QueryOwner() *UserQuery {
	return NewPassportClient(_m.config).QueryOwner(_m)
}

// QueryVoyage queries the "voyage" edge of the Passport entity.
func (_m *Passport) QueryVoyage() *VoyageQuery {
	return NewPassportClient(_m.config).QueryVoyage(_m)
}

// Update returns a builder for updating this Passport.
// Note that you need to call Passport.Unwrap() before calling this method if this Passport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Passport) Update() *PassportUpdateOne {
	return NewPassportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Passport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Passport) Unwrap() *Passport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Passport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Passport) String() string {
	var builder strings.Builder
	builder.WriteString("Passport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	if v := _m.VoyageID; v != nil {
		builder.WriteString("voyage_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("birth_date=")
	builder.WriteString(_m.BirthDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeliveryDate; v != nil {
		builder.WriteString("delivery_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("expiration_date=")
	builder.WriteString(_m.ExpirationDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("nationality=")
	builder.WriteString(_m.Nationality)
	builder.WriteString(", ")
	builder.WriteString("passport_number=")
	builder.WriteString(_m.PassportNumber)
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Passports is a parsable slice of Passport.
type Passports []*Passport

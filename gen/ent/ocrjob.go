// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/ocrjob"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
)

// OcrJob is the model entity for the OcrJob schema.
type OcrJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Progress holds the value of the "progress" field.
	Progress int `json:"progress,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Successes holds the value of the "successes" field.
	Successes json.RawMessage `json:"successes,omitempty"`
	// Failures holds the value of the "failures" field.
	Failures json.RawMessage `json:"failures,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OcrJobQuery when eager-loading is set.
	Edges        OcrJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OcrJobEdges holds the relations/edges for other nodes in the graph.
type OcrJobEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OcrJobEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OcrJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrjob.FieldSuccesses, ocrjob.FieldFailures:
			values[i] = new([]byte)
		case ocrjob.FieldProgress:
			values[i] = new(sql.NullInt64)
		case ocrjob.FieldFileName, ocrjob.FieldStatus:
			values[i] = new(sql.NullString)
		case ocrjob.FieldCreatedAt, ocrjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case ocrjob.FieldID, ocrjob.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OcrJob fields.
func (_m *OcrJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ocrjob.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case ocrjob.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case ocrjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case ocrjob.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case ocrjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ocrjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case ocrjob.FieldSuccesses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field successes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Successes); err != nil {
					return fmt.Errorf("unmarshal field successes: %w", err)
				}
			}
		case ocrjob.FieldFailures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failures", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Failures); err != nil {
					return fmt.Errorf("unmarshal field failures: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OcrJob.
// This includes values selected through modifiers, order, etc.
func (_m *OcrJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the OcrJob entity.
func (_m *OcrJob) QueryUser() *UserQuery {
	return NewOcrJobClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this OcrJob.
// Note that you need to call OcrJob.Unwrap() before calling this method if this OcrJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OcrJob) Update() *OcrJobUpdateOne {
	return NewOcrJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OcrJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OcrJob) Unwrap() *OcrJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OcrJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OcrJob) String() string {
	var builder strings.Builder
	builder.WriteString("OcrJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("successes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Successes))
	builder.WriteString(", ")
	builder.WriteString("failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failures))
	builder.WriteByte(')')
	return builder.String()
}

// OcrJobs is a parsable slice of OcrJob.
type OcrJobs []*OcrJob

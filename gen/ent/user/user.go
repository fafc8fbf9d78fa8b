// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldUploadedPagesCount holds the string denoting the uploaded_pages_count field in the database.
	FieldUploadedPagesCount = "uploaded_pages_count"
	// FieldPageCredits holds the string denoting the page_credits field in the database.
	FieldPageCredits = "page_credits"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePassports holds the string denoting the passports edge name in mutations.
	EdgePassports = "passports"
	// EdgeVoyages holds the string denoting the voyages edge name in mutations.
	EdgeVoyages = "voyages"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the user in the database.
	Table = "users"
	// PassportsTable is the table that holds the passports relation/edge.
	PassportsTable = "passports"
	// PassportsInverseTable is the table name for the Passport entity.
	// It exists in this package in order to avoid circular dependency with the "passport" package.
	PassportsInverseTable = "passports"
	// PassportsColumn is the table column denoting the passports relation/edge.
	PassportsColumn = "owner_id"
	// VoyagesTable is the table that holds the voyages relation/edge.
	VoyagesTable = "voyages"
	// VoyagesInverseTable is the table name for the Voyage entity.
	// It exists in this package in order to avoid circular dependency with the "voyage" package.
	VoyagesInverseTable = "voyages"
	// VoyagesColumn is the table column denoting the voyages relation/edge.
	VoyagesColumn = "user_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "ocr_jobs"
	// JobsInverseTable is the table name for the OcrJob entity.
	// It exists in this package in order to avoid circular dependency with the "ocrjob" package.
	JobsInverseTable = "ocr_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhoneNumber,
	FieldUsername,
	FieldPasswordHash,
	FieldRole,
	FieldUploadedPagesCount,
	FieldPageCredits,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	LastNameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultPhoneNumber holds the default value on creation for the "phone_number" field.
	DefaultPhoneNumber string
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// DefaultRole holds the default value on creation for the "role" field.
	DefaultRole string
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultUploadedPagesCount holds the default value on creation for the "uploaded_pages_count" field.
	DefaultUploadedPagesCount int
	// UploadedPagesCountValidator is a validator for the "uploaded_pages_count" field. It is called by the builders before save.
	UploadedPagesCountValidator func(int) error
	// DefaultPageCredits holds the default value on creation for the "page_credits" field.
	DefaultPageCredits int
	// PageCreditsValidator is a validator for the "page_credits" field. It is called by the builders before save.
	PageCreditsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByUploadedPagesCount orders the results by the uploaded_pages_count field.
func ByUploadedPagesCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedPagesCount, opts...).ToFunc()
}

// ByPageCredits orders the results by the page_credits field.
func ByPageCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCredits, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPassportsCount orders the results by passports count.
func ByPassportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPassportsStep(), opts...)
	}
}

// ByPassports orders the results by passports terms.
func ByPassports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPassportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVoyagesCount orders the results by voyages count.
func ByVoyagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVoyagesStep(), opts...)
	}
}

// ByVoyages orders the results by voyages terms.
func ByVoyages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVoyagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPassportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PassportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PassportsTable, PassportsColumn),
	)
}
func newVoyagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VoyagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VoyagesTable, VoyagesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}

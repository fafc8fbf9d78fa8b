// Code generated by ent, DO NOT EDIT.

package passport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the passport type in the database.
	Label = "passport"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldVoyageID holds the string denoting the voyage_id field in the database.
	FieldVoyageID = "voyage_id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldDeliveryDate holds the string denoting the delivery_date field in the database.
	FieldDeliveryDate = "delivery_date"
	// FieldExpirationDate holds the string denoting the expiration_date field in the database.
	FieldExpirationDate = "expiration_date"
	// FieldNationality holds the string denoting the nationality field in the database.
	FieldNationality = "nationality"
	// FieldPassportNumber holds the string denoting the passport_number field in the database.
	FieldPassportNumber = "passport_number"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeVoyage holds the string denoting the voyage edge name in mutations.
	EdgeVoyage = "voyage"
	// Table holds the table name of the passport in the database.
	Table = "passports"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "passports"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "owner_id"
	// VoyageTable is the table that holds the voyage relation/edge.
	VoyageTable = "passports"
	// VoyageInverseTable is the table name for the Voyage entity.
	// It exists in this package in order to avoid circular dependency with the "voyage" package.
	VoyageInverseTable = "voyages"
	// VoyageColumn is the table column denoting the voyage relation/edge.
	VoyageColumn = "voyage_id"
)

// Columns holds all SQL columns for passport fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldVoyageID,
	FieldFirstName,
	FieldLastName,
	FieldBirthDate,
	FieldDeliveryDate,
	FieldExpirationDate,
	FieldNationality,
	FieldPassportNumber,
	FieldConfidenceScore,
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
	// NationalityValidator is a validator for the "nationality" field. It is called by the builders before save.
	NationalityValidator func(string) error
	// PassportNumberValidator is a validator for the "passport_number" field. It is called by the builders before save.
	PassportNumberValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Passport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByVoyageID orders the results by the voyage_id field.
func ByVoyageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoyageID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// ByDeliveryDate orders the results by the delivery_date field.
func ByDeliveryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryDate, opts...).ToFunc()
}

// ByExpirationDate orders the results by the expiration_date field.
func ByExpirationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpirationDate, opts...).ToFunc()
}

// ByNationality orders the results by the nationality field.
func ByNationality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNationality, opts...).ToFunc()
}

// ByPassportNumber orders the results by the passport_number field.
func ByPassportNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassportNumber, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByVoyageField orders the results by voyage field.
func ByVoyageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVoyageStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newVoyageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VoyageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VoyageTable, VoyageColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package passport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldOwnerID, v))
}

// VoyageID applies equality check predicate on the "voyage_id" field. It's identical to VoyageIDEQ.
func VoyageID(v uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldVoyageID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldLastName, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldBirthDate, v))
}

// DeliveryDate applies equality check predicate on the "delivery_date" field. It's identical to DeliveryDateEQ.
func DeliveryDate(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldDeliveryDate, v))
}

// ExpirationDate applies equality check predicate on the "expiration_date" field. It's identical to ExpirationDateEQ.
func ExpirationDate(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldExpirationDate, v))
}

// Nationality applies equality check predicate on the "nationality" field. It's identical to NationalityEQ.
func Nationality(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldNationality, v))
}

// PassportNumber applies equality check predicate on the "passport_number" field. It's identical to PassportNumberEQ.
func PassportNumber(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldPassportNumber, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldOwnerID, vs...))
}

// VoyageIDEQ applies the EQ predicate on the "voyage_id" field.
func VoyageIDEQ(v uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldVoyageID, v))
}

// VoyageIDNEQ applies the NEQ predicate on the "voyage_id" field.
func VoyageIDNEQ(v uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldVoyageID, v))
}

// VoyageIDIn applies the In predicate on the "voyage_id" field.
func VoyageIDIn(vs ...uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldVoyageID, vs...))
}

// VoyageIDNotIn applies the NotIn predicate on the "voyage_id" field.
func VoyageIDNotIn(vs ...uuid.UUID) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldVoyageID, vs...))
}

// VoyageIDIsNil applies the IsNil predicate on the "voyage_id" field.
func VoyageIDIsNil() predicate.Passport {
	return predicate.Passport(sql.FieldIsNull(FieldVoyageID))
}

// VoyageIDNotNil applies the NotNil predicate on the "voyage_id" field.
func VoyageIDNotNil() predicate.Passport {
	return predicate.Passport(sql.FieldNotNull(FieldVoyageID))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContainsFold(FieldLastName, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldBirthDate, v))
}

// DeliveryDateEQ applies the EQ predicate on the "delivery_date" field.
func DeliveryDateEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldDeliveryDate, v))
}

// DeliveryDateNEQ applies the NEQ predicate on the "delivery_date" field.
func DeliveryDateNEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldDeliveryDate, v))
}

// DeliveryDateIn applies the In predicate on the "delivery_date" field.
func DeliveryDateIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldDeliveryDate, vs...))
}

// DeliveryDateNotIn applies the NotIn predicate on the "delivery_date" field.
func DeliveryDateNotIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldDeliveryDate, vs...))
}

// DeliveryDateGT applies the GT predicate on the "delivery_date" field.
func DeliveryDateGT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldDeliveryDate, v))
}

// DeliveryDateGTE applies the GTE predicate on the "delivery_date" field.
func DeliveryDateGTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldDeliveryDate, v))
}

// DeliveryDateLT applies the LT predicate on the "delivery_date" field.
func DeliveryDateLT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldDeliveryDate, v))
}

// DeliveryDateLTE applies the LTE predicate on the "delivery_date" field.
func DeliveryDateLTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldDeliveryDate, v))
}

// DeliveryDateIsNil applies the IsNil predicate on the "delivery_date" field.
func DeliveryDateIsNil() predicate.Passport {
	return predicate.Passport(sql.FieldIsNull(FieldDeliveryDate))
}

// DeliveryDateNotNil applies the NotNil predicate on the "delivery_date" field.
func DeliveryDateNotNil() predicate.Passport {
	return predicate.Passport(sql.FieldNotNull(FieldDeliveryDate))
}

// ExpirationDateEQ applies the EQ predicate on the "expiration_date" field.
func ExpirationDateEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldExpirationDate, v))
}

// ExpirationDateNEQ applies the NEQ predicate on the "expiration_date" field.
func ExpirationDateNEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldExpirationDate, v))
}

// ExpirationDateIn applies the In predicate on the "expiration_date" field.
func ExpirationDateIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldExpirationDate, vs...))
}

// ExpirationDateNotIn applies the NotIn predicate on the "expiration_date" field.
func ExpirationDateNotIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldExpirationDate, vs...))
}

// ExpirationDateGT applies the GT predicate on the "expiration_date" field.
func ExpirationDateGT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldExpirationDate, v))
}

// ExpirationDateGTE applies the GTE predicate on the "expiration_date" field.
func ExpirationDateGTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldExpirationDate, v))
}

// ExpirationDateLT applies the LT predicate on the "expiration_date" field.
func ExpirationDateLT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldExpirationDate, v))
}

// ExpirationDateLTE applies the LTE predicate on the "expiration_date" field.
func ExpirationDateLTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldExpirationDate, v))
}

// NationalityEQ applies the EQ predicate on the "nationality" field.
func NationalityEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldNationality, v))
}

// NationalityNEQ applies the NEQ predicate on the "nationality" field.
func NationalityNEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldNationality, v))
}

// NationalityIn applies the In predicate on the "nationality" field.
func NationalityIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldNationality, vs...))
}

// NationalityNotIn applies the NotIn predicate on the "nationality" field.
func NationalityNotIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldNationality, vs...))
}

// NationalityGT applies the GT predicate on the "nationality" field.
func NationalityGT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldNationality, v))
}

// NationalityGTE applies the GTE predicate on the "nationality" field.
func NationalityGTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldNationality, v))
}

// NationalityLT applies the LT predicate on the "nationality" field.
func NationalityLT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldNationality, v))
}

// NationalityLTE applies the LTE predicate on the "nationality" field.
func NationalityLTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldNationality, v))
}

// NationalityContains applies the Contains predicate on the "nationality" field.
func NationalityContains(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContains(FieldNationality, v))
}

// NationalityHasPrefix applies the HasPrefix predicate on the "nationality" field.
func NationalityHasPrefix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasPrefix(FieldNationality, v))
}

// NationalityHasSuffix applies the HasSuffix predicate on the "nationality" field.
func NationalityHasSuffix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasSuffix(FieldNationality, v))
}

// NationalityEqualFold applies the EqualFold predicate on the "nationality" field.
func NationalityEqualFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEqualFold(FieldNationality, v))
}

// NationalityContainsFold applies the ContainsFold predicate on the "nationality" field.
func NationalityContainsFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContainsFold(FieldNationality, v))
}

// PassportNumberEQ applies the EQ predicate on the "passport_number" field.
func PassportNumberEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldPassportNumber, v))
}

// PassportNumberNEQ applies the NEQ predicate on the "passport_number" field.
func PassportNumberNEQ(v string) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldPassportNumber, v))
}

// PassportNumberIn applies the In predicate on the "passport_number" field.
func PassportNumberIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldPassportNumber, vs...))
}

// PassportNumberNotIn applies the NotIn predicate on the "passport_number" field.
func PassportNumberNotIn(vs ...string) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldPassportNumber, vs...))
}

// PassportNumberGT applies the GT predicate on the "passport_number" field.
func PassportNumberGT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldPassportNumber, v))
}

// PassportNumberGTE applies the GTE predicate on the "passport_number" field.
func PassportNumberGTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldPassportNumber, v))
}

// PassportNumberLT applies the LT predicate on the "passport_number" field.
func PassportNumberLT(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldPassportNumber, v))
}

// PassportNumberLTE applies the LTE predicate on the "passport_number" field.
func PassportNumberLTE(v string) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldPassportNumber, v))
}

// PassportNumberContains applies the Contains predicate on the "passport_number" field.
func PassportNumberContains(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContains(FieldPassportNumber, v))
}

// PassportNumberHasPrefix applies the HasPrefix predicate on the "passport_number" field.
func PassportNumberHasPrefix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasPrefix(FieldPassportNumber, v))
}

// PassportNumberHasSuffix applies the HasSuffix predicate on the "passport_number" field.
func PassportNumberHasSuffix(v string) predicate.Passport {
	return predicate.Passport(sql.FieldHasSuffix(FieldPassportNumber, v))
}

// PassportNumberEqualFold applies the EqualFold predicate on the "passport_number" field.
func PassportNumberEqualFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldEqualFold(FieldPassportNumber, v))
}

// PassportNumberContainsFold applies the ContainsFold predicate on the "passport_number" field.
func PassportNumberContainsFold(v string) predicate.Passport {
	return predicate.Passport(sql.FieldContainsFold(FieldPassportNumber, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Passport {
	return predicate.Passport(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Passport {
	return predicate.Passport(sql.FieldNotNull(FieldConfidenceScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Passport {
	return predicate.Passport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Passport {
	return predicate.Passport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Passport {
	return predicate.Passport(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVoyage applies the HasEdge predicate on the "voyage" edge.
func HasVoyage() predicate.Passport {
	return predicate.Passport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VoyageTable, VoyageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVoyageWith applies the HasEdge predicate on the "voyage" edge with a given conditions (other predicates).
func HasVoyageWith(preds ...predicate.Voyage) predicate.Passport {
	return predicate.Passport(func(s *sql.Selector) {
		step := newVoyageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Passport) predicate.Passport {
	return predicate.Passport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Passport) predicate.Passport {
	return predicate.Passport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Passport) predicate.Passport {
	return predicate.Passport(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invitation is the predicate function for invitation builders.
type Invitation func(*sql.Selector)

// OcrJob is the predicate function for ocrjob builders.
type OcrJob func(*sql.Selector)

// Passport is the predicate function for passport builders.
type Passport func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Voyage is the predicate function for voyage builders.
type Voyage func(*sql.Selector)

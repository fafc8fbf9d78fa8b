package mrz

import (
	"errors"
	"strings"
)

var (
	// ErrMRZNotFound means the fixed-format line-2 anchor pattern is absent
	// from the normalized text. Not retryable.
	ErrMRZNotFound = errors.New("no machine-readable zone found")

	// ErrDateUnresolved means a 6-character MRZ date substring does not form
	// a valid calendar date.
	ErrDateUnresolved = errors.New("unresolvable mrz date")
)

// IncompleteError is returned when the MRZ anchor was located but one or
// more required fields could not be derived from it.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return "could not extract required MRZ fields: " + strings.Join(e.Missing, ", ")
}

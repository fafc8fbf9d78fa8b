package mrz

import (
	"fmt"
	"time"
)

// DefaultCenturyThreshold is the distance past the current two-digit year
// beyond which a YY value is read as 19xx instead of 20xx. A product
// decision, not a derivable invariant; an earlier revision of the service
// used 15.
const DefaultCenturyThreshold = 10

// DateDecoder converts the MRZ's 6-digit YYMMDD fields into calendar dates.
// The zero value decodes with the default century threshold and wall-clock
// time; tests inject Now to pin the century boundary.
type DateDecoder struct {
	CenturyThreshold int
	Now              func() time.Time
}

// Decode parses a YYMMDD string into a UTC date. It fails with
// ErrDateUnresolved when the input is not exactly 6 digits or does not form
// a valid calendar date.
func (d DateDecoder) Decode(s string) (time.Time, error) {
	if len(s) != 6 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateUnresolved, s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateUnresolved, s)
		}
	}

	yy := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[2]-'0')*10 + int(s[3]-'0')
	dd := int(s[4]-'0')*10 + int(s[5]-'0')

	threshold := d.CenturyThreshold
	if threshold <= 0 {
		threshold = DefaultCenturyThreshold
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	// Two-digit years far enough past the current year are taken as 19xx
	// (birth dates in the past); everything else as 20xx.
	year := 2000 + yy
	if yy > now().Year()%100+threshold {
		year = 1900 + yy
	}

	t := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != mm || t.Day() != dd {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateUnresolved, s)
	}
	return t, nil
}

package mrz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedNow pins the century boundary so the tests don't drift as the wall
// clock advances.
func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestDecodeFutureYearStaysInCurrentCentury(t *testing.T) {
	d := DateDecoder{Now: fixedNow}

	got, err := d.Decode("351231")
	require.NoError(t, err)
	require.Equal(t, time.Date(2035, time.December, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestDecodePastYearFallsBackACentury(t *testing.T) {
	d := DateDecoder{Now: fixedNow}

	got, err := d.Decode("900101")
	require.NoError(t, err)
	require.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDecodeBoundaryIsInclusive(t *testing.T) {
	d := DateDecoder{Now: fixedNow}

	// 25 (current) + 10 (threshold) = 35: still this century.
	got, err := d.Decode("350615")
	require.NoError(t, err)
	require.Equal(t, 2035, got.Year())

	// One past the boundary flips back.
	got, err = d.Decode("360615")
	require.NoError(t, err)
	require.Equal(t, 1936, got.Year())
}

func TestDecodeCustomThreshold(t *testing.T) {
	d := DateDecoder{CenturyThreshold: 15, Now: fixedNow}

	got, err := d.Decode("400101")
	require.NoError(t, err)
	require.Equal(t, 2040, got.Year())

	got, err = d.Decode("410101")
	require.NoError(t, err)
	require.Equal(t, 1941, got.Year())
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	d := DateDecoder{Now: fixedNow}

	for _, input := range []string{"", "12345", "1234567", "12AB31", "35<231"} {
		_, err := d.Decode(input)
		require.ErrorIs(t, err, ErrDateUnresolved, "input %q", input)
	}
}

func TestDecodeRejectsImpossibleCalendarDates(t *testing.T) {
	d := DateDecoder{Now: fixedNow}

	for _, input := range []string{"990230", "211301", "210532"} {
		_, err := d.Decode(input)
		require.ErrorIs(t, err, ErrDateUnresolved, "input %q", input)
	}
}

func TestDecodeHandlesLeapDays(t *testing.T) {
	d := DateDecoder{Now: fixedNow}

	got, err := d.Decode("960229")
	require.NoError(t, err)
	require.Equal(t, time.Date(1996, time.February, 29, 0, 0, 0, 0, time.UTC), got)

	// 1999 was not a leap year.
	_, err = d.Decode("990229")
	require.ErrorIs(t, err, ErrDateUnresolved)
}

package mrz

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	sampleLine1 = "P<FRADUPONT<<JEAN<PIERRE<<<<<<<<<<<<<<<<<<<<"
	sampleLine2 = "12II456784FRA9001011M3512315<<<<<<<<<<<<<<06"
)

func newTestExtractor() *Extractor {
	return NewExtractor(DateDecoder{Now: fixedNow})
}

func TestExtractDecodesFullDocument(t *testing.T) {
	ex := newTestExtractor()

	fields, err := ex.Extract(sampleLine1 + "\n" + sampleLine2)
	require.NoError(t, err)

	require.Equal(t, "DUPONT", fields.LastName)
	require.Equal(t, "JEAN PIERRE", fields.FirstName)
	require.Equal(t, "12II45678", fields.PassportNumber)
	require.Equal(t, "FRA", fields.Nationality)
	require.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), fields.BirthDate)
	require.Equal(t, time.Date(2035, time.December, 31, 0, 0, 0, 0, time.UTC), fields.ExpirationDate)
}

func TestExtractIgnoresSurroundingNoise(t *testing.T) {
	ex := newTestExtractor()

	text := "REPUBLIQUE FRANCAISE\nPASSEPORT\n" +
		sampleLine1 + "\n" + sampleLine2 + "\nscanner artifacts below"
	fields, err := ex.Extract(text)
	require.NoError(t, err)
	require.Equal(t, "DUPONT", fields.LastName)
	require.Equal(t, "12II45678", fields.PassportNumber)
}

func TestExtractCorrectsDigitOneInLetterPositions(t *testing.T) {
	ex := newTestExtractor()

	// Recognition reads the II letter pair of the DDLLDDDDD number as "11".
	line2 := "1211456784FRA9001011M3512315<<<<<<<<<<<<<<06"
	fields, err := ex.Extract(sampleLine1 + "\n" + line2)
	require.NoError(t, err)
	require.Equal(t, "12II45678", fields.PassportNumber)
}

func TestExtractLeavesDigitPositionsAlone(t *testing.T) {
	ex := newTestExtractor()

	// An all-ones read: only the two letter positions are reinterpreted.
	line2 := "1111111114FRA9001011M3512315<<<<<<<<<<<<<<06"
	fields, err := ex.Extract(sampleLine1 + "\n" + line2)
	require.NoError(t, err)
	require.Equal(t, "11II11111", fields.PassportNumber)
}

func TestExtractKeepsForeignNumberFormats(t *testing.T) {
	ex := newTestExtractor()

	// Not a DDLLDDDDD misread, so no correction applies even though
	// position 2 holds a '1'.
	line2 := "C01X00T478FRA9001011M3512315<<<<<<<<<<<<<<06"
	fields, err := ex.Extract(sampleLine1 + "\n" + line2)
	require.NoError(t, err)
	require.Equal(t, "C01X00T47", fields.PassportNumber)
}

func TestExtractNormalizesGuillemetsAndSpaces(t *testing.T) {
	ex := newTestExtractor()

	line1 := strings.ReplaceAll(sampleLine1, "<<", "««")
	line2 := "12II45678 4FRA 900101 1M351231 5<<<<<<<<<<<<<<06"
	fields, err := ex.Extract(line1 + "\n" + line2)
	require.NoError(t, err)
	require.Equal(t, "DUPONT", fields.LastName)
	require.Equal(t, "JEAN PIERRE", fields.FirstName)
}

func TestExtractConcatenatedZone(t *testing.T) {
	ex := newTestExtractor()

	// Some recognizers return both MRZ lines glued together.
	fields, err := ex.Extract(sampleLine1 + sampleLine2)
	require.NoError(t, err)
	require.Equal(t, "DUPONT", fields.LastName)
	require.Equal(t, "JEAN PIERRE", fields.FirstName)
	require.Equal(t, "12II45678", fields.PassportNumber)
}

func TestExtractNoZoneFound(t *testing.T) {
	ex := newTestExtractor()

	_, err := ex.Extract("an ordinary page\nwith no machine readable zone")
	require.ErrorIs(t, err, ErrMRZNotFound)
}

func TestExtractMissingNames(t *testing.T) {
	ex := newTestExtractor()

	// Line 2 alone anchors, but there is no line-1 material to recover
	// names from.
	_, err := ex.Extract(sampleLine2)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, []string{"last_name", "first_name"}, incomplete.Missing)
}

func TestExtractUnresolvableBirthDate(t *testing.T) {
	ex := newTestExtractor()

	// February 30th never exists; the anchor still matches.
	line2 := "12II456784FRA9902301M3512315<<<<<<<<<<<<<<06"
	_, err := ex.Extract(sampleLine1 + "\n" + line2)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, []string{"birth_date"}, incomplete.Missing)
}

func TestExtractUnresolvablePassportNumber(t *testing.T) {
	ex := newTestExtractor()

	// Too few characters once fillers are stripped.
	line2 := "AB123<<<<4FRA9001011M3512315<<<<<<<<<<<<<<06"
	_, err := ex.Extract(sampleLine1 + "\n" + line2)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, []string{"passport_number"}, incomplete.Missing)
}

func TestExtractSingleGivenName(t *testing.T) {
	ex := newTestExtractor()

	line1 := "P<DEUMUSTERMANN<<ERIKA<<<<<<<<<<<<<<<<<<<<<<"
	line2 := "C01X00T478DEU6408125F3009154<<<<<<<<<<<<<<04"
	fields, err := ex.Extract(line1 + "\n" + line2)
	require.NoError(t, err)
	require.Equal(t, "MUSTERMANN", fields.LastName)
	require.Equal(t, "ERIKA", fields.FirstName)
	require.Equal(t, "DEU", fields.Nationality)
	require.Equal(t, time.Date(1964, time.August, 12, 0, 0, 0, 0, time.UTC), fields.BirthDate)
	require.Equal(t, time.Date(2030, time.September, 15, 0, 0, 0, 0, time.UTC), fields.ExpirationDate)
}

package mrz

import (
	"regexp"
	"strings"
	"time"
)

// Fields is the decoded result of a passport MRZ. A value returned by
// Extract always has every required field populated; the extractor fails
// rather than returning partial data. DeliveryDate is never present in the
// MRZ and stays unset.
type Fields struct {
	LastName        string
	FirstName       string
	PassportNumber  string
	Nationality     string
	BirthDate       time.Time
	ExpirationDate  time.Time
	ConfidenceScore float64
}

// line2Pattern anchors on MRZ line 2, whose field widths are fixed by the
// document standard regardless of name length: 9 alphanumeric-or-filler
// characters (passport number), a check digit, a 3-letter nationality code,
// a 6-digit birth date, a check digit, sex, a 6-digit expiry date and a
// check digit. Line 1 varies with name length and is far less reliable to
// bound under OCR noise.
var line2Pattern = regexp.MustCompile(`([A-Z0-9<]{9})([0-9<])([A-Z]{3})([0-9<]{6})([0-9<])([MF<])([0-9<]{6})([0-9<])`)

// Extractor decodes structured passport fields from noisy recognized text.
type Extractor struct {
	dates DateDecoder
}

func NewExtractor(dates DateDecoder) *Extractor {
	return &Extractor{dates: dates}
}

// Extract locates the MRZ in one page's raw recognized text and decodes it.
// It fails with ErrMRZNotFound when no line-2 anchor exists, and with
// *IncompleteError when the anchor was found but a required field could not
// be derived.
func (e *Extractor) Extract(rawText string) (*Fields, error) {
	text := normalize(rawText)

	loc := line2Pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, ErrMRZNotFound
	}
	group := func(n int) string { return text[loc[2*n]:loc[2*n+1]] }

	f := &Fields{
		PassportNumber: correctPassportNumber(group(1)),
		Nationality:    group(3),
	}
	if t, err := e.dates.Decode(stripFiller(group(4))); err == nil {
		f.BirthDate = t
	}
	if t, err := e.dates.Decode(stripFiller(group(7))); err == nil {
		f.ExpirationDate = t
	}

	f.LastName, f.FirstName = recoverNames(text[:loc[0]], f.Nationality)

	var missing []string
	if f.LastName == "" {
		missing = append(missing, "last_name")
	}
	if f.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if f.BirthDate.IsZero() {
		missing = append(missing, "birth_date")
	}
	if f.PassportNumber == "" {
		missing = append(missing, "passport_number")
	}
	if f.ExpirationDate.IsZero() {
		missing = append(missing, "expiration_date")
	}
	if f.Nationality == "" {
		missing = append(missing, "nationality")
	}
	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}
	return f, nil
}

// normalize strips horizontal whitespace and maps the « glyph, a common OCR
// substitution for the MRZ filler character, back to '<'. Newlines are kept
// so that the anchor never straddles unrelated lines; a concatenated MRZ
// with no line break still matches.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r':
		case '«':
			b.WriteByte('<')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripFiller(s string) string {
	return strings.ReplaceAll(s, "<", "")
}

// numberConfusion matches an all-digit read of the national DDLLDDDDD
// number format: when the two letter positions come back as "11" the
// recognizer has mistaken II for ones.
var numberConfusion = regexp.MustCompile(`^([0-9]{2})11([0-9]{5})$`)

// correctPassportNumber strips fillers and applies the letter/digit
// confusion fix. The fix only fires on a full DDLLDDDDD-shaped misread;
// numbers in other national formats pass through untouched. Anything that
// is not exactly 9 characters after filler removal is unresolvable.
func correctPassportNumber(raw string) string {
	clean := stripFiller(raw)
	if len(clean) != 9 {
		return ""
	}
	if m := numberConfusion.FindStringSubmatch(clean); m != nil {
		return m[1] + "II" + m[2]
	}
	return clean
}

// recoverNames parses the line-1 material preceding the line-2 match. The
// name block starts right after the nationality-code token; segment 0 of a
// '<<' split is the surname and the remaining segments are the given names.
// A missing code token leaves both names empty; the required-field check
// deals with that.
func recoverNames(preceding, nationality string) (last, first string) {
	preceding = strings.TrimRight(preceding, "\n")
	if i := strings.LastIndexByte(preceding, '\n'); i >= 0 {
		preceding = preceding[i+1:]
	}
	preceding = keepMRZRunes(preceding)

	idx := strings.Index(preceding, nationality)
	if idx < 0 {
		return "", ""
	}
	block := preceding[idx+len(nationality):]

	segments := strings.Split(block, "<<")
	last = cleanNameSegment(segments[0])

	var given []string
	for _, seg := range segments[1:] {
		if s := cleanNameSegment(seg); s != "" {
			given = append(given, s)
		}
	}
	first = strings.Join(given, " ")
	return last, first
}

func keepMRZRunes(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || r == '<' {
			return r
		}
		return -1
	}, s)
}

// cleanNameSegment turns single fillers into spaces and space-normalizes.
func cleanNameSegment(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "<", " ")), " ")
}

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voyagedesk/passport-tracker/internal/entity"
)

func TestEncodeJSONSuccesses(t *testing.T) {
	successes := []entity.PageSuccess{
		{PageNumber: 1, Data: entity.Passport{LastName: "DUPONT", PassportNumber: "12II45678"}},
	}
	b, err := encodeJSON(successes, successesSchema)
	require.NoError(t, err)
	require.Contains(t, string(b), `"page_number":1`)
}

func TestEncodeJSONFailuresAllowDocumentLevel(t *testing.T) {
	failures := []entity.PageFailure{
		{PageNumber: 0, Detail: "processing interrupted: context canceled"},
		{PageNumber: 2, Detail: "no machine-readable zone found"},
	}
	_, err := encodeJSON(failures, failuresSchema)
	require.NoError(t, err)
}

func TestValidateJSONAgainstSchemaRejectsWrongShape(t *testing.T) {
	// failures entries require a non-empty detail
	err := ValidateJSONAgainstSchema(failuresSchema, []byte(`[{"page_number":1,"detail":""}]`))
	require.Error(t, err)

	// successes entries require page numbers starting at 1
	err = ValidateJSONAgainstSchema(successesSchema, []byte(`[{"page_number":0,"data":{}}]`))
	require.Error(t, err)

	// not even an array
	err = ValidateJSONAgainstSchema(successesSchema, []byte(`{"page_number":1}`))
	require.Error(t, err)
}

package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voyagedesk/passport-tracker/internal/mrz"
	"github.com/voyagedesk/passport-tracker/internal/recognize"
)

const (
	testLine1 = "P<FRADUPONT<<JEAN<PIERRE<<<<<<<<<<<<<<<<<<<<"
	testLine2 = "12II456784FRA9001011M3512315<<<<<<<<<<<<<<06"
)

// scriptedRecognizer returns one canned response per page, in call order.
type scriptedRecognizer struct {
	pages []recognize.RawPage
	errs  []error
	calls int
}

func (s *scriptedRecognizer) Recognize(_ context.Context, _ []byte) (recognize.RawPage, error) {
	i := s.calls
	s.calls++
	if s.errs[i] != nil {
		return recognize.RawPage{}, s.errs[i]
	}
	return s.pages[i], nil
}

type panickingRecognizer struct{}

func (panickingRecognizer) Recognize(context.Context, []byte) (recognize.RawPage, error) {
	panic("recognizer blew up")
}

func testDates() mrz.DateDecoder {
	return mrz.DateDecoder{Now: func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}}
}

func TestProcessDocumentMixedPages(t *testing.T) {
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{
			{Text: testLine1 + "\n" + testLine2, SymbolConfidences: []float64{0.9, 0.8, 1.0}},
			{Text: "a souvenir photo, no zone"},
			{},
		},
		errs: []error{nil, nil, errors.New("upstream timeout")},
	}
	o := NewOrchestrator(rec, mrz.NewExtractor(testDates()), nil)

	results, err := o.ProcessDocument(context.Background(), [][]byte{{1}, {2}, {3}})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, 1, results[0].PageNumber)
	require.True(t, results[0].OK())
	require.Equal(t, "DUPONT", results[0].Fields.LastName)
	require.InDelta(t, 0.9, results[0].Fields.ConfidenceScore, 1e-9)

	require.Equal(t, 2, results[1].PageNumber)
	require.False(t, results[1].OK())
	require.Contains(t, results[1].Err, "no machine-readable zone")

	require.Equal(t, 3, results[2].PageNumber)
	require.False(t, results[2].OK())
	require.Equal(t, "upstream timeout", results[2].Err)
}

func TestProcessDocumentPageFailureDoesNotAbort(t *testing.T) {
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{
			{},
			{Text: testLine1 + "\n" + testLine2},
		},
		errs: []error{errors.New("page 1 unreadable"), nil},
	}
	o := NewOrchestrator(rec, mrz.NewExtractor(testDates()), nil)

	results, err := o.ProcessDocument(context.Background(), [][]byte{{1}, {2}})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.False(t, results[0].OK())
	require.True(t, results[1].OK())
}

func TestProcessDocumentRecoversFromPanic(t *testing.T) {
	o := NewOrchestrator(panickingRecognizer{}, mrz.NewExtractor(testDates()), nil)

	results, err := o.ProcessDocument(context.Background(), [][]byte{{1}, {2}})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		require.False(t, res.OK())
		require.Contains(t, res.Err, "internal error")
	}
}

func TestProcessDocumentHonorsCancellation(t *testing.T) {
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{{Text: testLine1 + "\n" + testLine2}},
		errs:  []error{nil},
	}
	o := NewOrchestrator(rec, mrz.NewExtractor(testDates()), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := o.ProcessDocument(ctx, [][]byte{{1}})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestMeanConfidence(t *testing.T) {
	require.Equal(t, 0.0, meanConfidence(nil))
	require.InDelta(t, 0.5, meanConfidence([]float64{0.25, 0.75}), 1e-9)
}

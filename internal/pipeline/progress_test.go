package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/internal/mrz"
)

var okFields = mrz.Fields{
	LastName:       "DUPONT",
	FirstName:      "JEAN PIERRE",
	PassportNumber: "12II45678",
	Nationality:    "FRA",
}

type progressUpdate struct {
	percent int
	status  constants.JobStatus
}

// recordingSink collects every published update in order.
type recordingSink struct {
	updates []progressUpdate
}

func (s *recordingSink) Publish(_ context.Context, percent int, status constants.JobStatus) error {
	s.updates = append(s.updates, progressUpdate{percent, status})
	return nil
}

func okResult() PageResult {
	return PageResult{PageNumber: 1, Fields: &okFields}
}

func failedResult(detail string) PageResult {
	return PageResult{PageNumber: 1, Err: detail}
}

func TestTrackerWatermarks(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(TrackerConfig{}, sink)
	ctx := context.Background()

	require.NoError(t, tr.MarkUploaded(ctx))
	require.Equal(t, 10, tr.Percent())
	require.NoError(t, tr.MarkRecognitionDone(ctx))
	require.Equal(t, 75, tr.Percent())

	require.Equal(t, []progressUpdate{
		{10, constants.JobStatusProcessing},
		{75, constants.JobStatusProcessing},
	}, sink.updates)
}

func TestTrackerPageBandAdvance(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(TrackerConfig{}, sink)
	ctx := context.Background()

	require.NoError(t, tr.MarkRecognitionDone(ctx))
	require.NoError(t, tr.RecordPageResult(ctx, 1, 4))
	require.Equal(t, 80, tr.Percent())
	require.NoError(t, tr.RecordPageResult(ctx, 2, 4))
	require.Equal(t, 85, tr.Percent())
	require.NoError(t, tr.RecordPageResult(ctx, 4, 4))
	require.Equal(t, 95, tr.Percent())
}

func TestTrackerPublishesOnlyStrictIncreases(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(TrackerConfig{}, sink)
	ctx := context.Background()

	require.NoError(t, tr.MarkRecognitionDone(ctx))
	// With many pages, consecutive indexes often land on the same percent.
	for i := 1; i <= 100; i++ {
		require.NoError(t, tr.RecordPageResult(ctx, i, 100))
	}

	prev := 0
	for _, u := range sink.updates {
		require.Greater(t, u.percent, prev)
		prev = u.percent
	}
	require.Equal(t, 95, tr.Percent())
}

func TestTrackerPercentNeverDecreases(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(TrackerConfig{}, sink)
	ctx := context.Background()

	require.NoError(t, tr.MarkRecognitionDone(ctx))
	require.NoError(t, tr.MarkUploaded(ctx))
	require.Equal(t, 75, tr.Percent())
	require.Len(t, sink.updates, 1)
}

func TestTrackerFinalizeClassification(t *testing.T) {
	cases := []struct {
		name    string
		results []PageResult
		want    constants.JobStatus
	}{
		{"all pages failed", []PageResult{failedResult("a"), failedResult("b")}, constants.JobStatusFailed},
		{"partial success", []PageResult{okResult(), failedResult("b")}, constants.JobStatusComplete},
		{"all pages succeeded", []PageResult{okResult(), okResult(), okResult()}, constants.JobStatusComplete},
		{"no pages", nil, constants.JobStatusComplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &recordingSink{}
			tr := NewTracker(TrackerConfig{}, sink)

			require.NoError(t, tr.Finalize(context.Background(), tc.results))
			require.Equal(t, tc.want, tr.Status())
			require.Equal(t, 100, tr.Percent())
			require.Equal(t, []progressUpdate{{100, tc.want}}, sink.updates)
		})
	}
}

func TestTrackerTerminalStateIsFrozen(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(TrackerConfig{}, sink)
	ctx := context.Background()

	require.NoError(t, tr.Finalize(ctx, []PageResult{okResult()}))
	published := len(sink.updates)

	require.NoError(t, tr.MarkUploaded(ctx))
	require.NoError(t, tr.RecordPageResult(ctx, 1, 1))
	require.NoError(t, tr.Finalize(ctx, []PageResult{failedResult("late")}))

	require.Equal(t, constants.JobStatusComplete, tr.Status())
	require.Equal(t, 100, tr.Percent())
	require.Len(t, sink.updates, published)
}

func TestTrackerNilSink(t *testing.T) {
	tr := NewTracker(TrackerConfig{}, nil)
	ctx := context.Background()

	require.NoError(t, tr.MarkUploaded(ctx))
	require.NoError(t, tr.Finalize(ctx, nil))
	require.Equal(t, constants.JobStatusComplete, tr.Status())
}

func TestTrackerCustomBand(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(TrackerConfig{UploadedPercent: 5, RecognizedPercent: 50, PageBandEnd: 90}, sink)
	ctx := context.Background()

	require.NoError(t, tr.MarkUploaded(ctx))
	require.Equal(t, 5, tr.Percent())
	require.NoError(t, tr.MarkRecognitionDone(ctx))
	require.NoError(t, tr.RecordPageResult(ctx, 1, 2))
	require.Equal(t, 70, tr.Percent())
	require.NoError(t, tr.RecordPageResult(ctx, 2, 2))
	require.Equal(t, 90, tr.Percent())
}

package pipeline

import (
	"context"

	"github.com/voyagedesk/passport-tracker/constants"
)

// TrackerConfig holds the progress watermarks. Percentages snap to
// UploadedPercent once the upload is staged and to RecognizedPercent once
// recognition finished; page results then advance the counter inside the
// [RecognizedPercent, PageBandEnd] band, and Finalize snaps to 100.
type TrackerConfig struct {
	UploadedPercent   int
	RecognizedPercent int
	PageBandEnd       int
}

// ProgressSink receives progress updates; implementations persist them.
// Updates for one job always come from a single goroutine.
type ProgressSink interface {
	Publish(ctx context.Context, percent int, status constants.JobStatus) error
}

// Tracker maps a document job's page-by-page progress onto a bounded 0-100
// counter. The percent value never decreases, and the sink is only invoked
// when the value strictly increases. Once Finalize has run the tracker is
// terminal and every further operation is a no-op.
type Tracker struct {
	cfg     TrackerConfig
	sink    ProgressSink
	percent int
	status  constants.JobStatus
}

func NewTracker(cfg TrackerConfig, sink ProgressSink) *Tracker {
	if cfg.UploadedPercent <= 0 {
		cfg.UploadedPercent = 10
	}
	if cfg.RecognizedPercent <= 0 {
		cfg.RecognizedPercent = 75
	}
	if cfg.PageBandEnd <= cfg.RecognizedPercent {
		cfg.PageBandEnd = 95
	}
	return &Tracker{cfg: cfg, sink: sink, status: constants.JobStatusProcessing}
}

func (t *Tracker) Percent() int { return t.percent }

func (t *Tracker) Status() constants.JobStatus { return t.status }

// MarkUploaded snaps the counter to the low watermark.
func (t *Tracker) MarkUploaded(ctx context.Context) error {
	return t.advance(ctx, t.cfg.UploadedPercent)
}

// MarkRecognitionDone snaps the counter to the mid watermark.
func (t *Tracker) MarkRecognitionDone(ctx context.Context) error {
	return t.advance(ctx, t.cfg.RecognizedPercent)
}

// RecordPageResult advances the counter proportionally to index/total within
// the page band. Publishes only when the computed percent strictly
// increases, which bounds update frequency for large documents.
func (t *Tracker) RecordPageResult(ctx context.Context, index, total int) error {
	if total <= 0 || index <= 0 {
		return nil
	}
	band := t.cfg.PageBandEnd - t.cfg.RecognizedPercent
	return t.advance(ctx, t.cfg.RecognizedPercent+band*index/total)
}

// Finalize snaps the counter to 100 and classifies the job: failed when
// there were zero successes and at least one failure, complete otherwise.
// A document with at least one decoded page is a complete job with partial
// results.
func (t *Tracker) Finalize(ctx context.Context, results []PageResult) error {
	if t.terminal() {
		return nil
	}
	successes, failures := 0, 0
	for _, r := range results {
		if r.OK() {
			successes++
		} else {
			failures++
		}
	}
	t.status = constants.JobStatusComplete
	if successes == 0 && failures > 0 {
		t.status = constants.JobStatusFailed
	}
	t.percent = 100
	if t.sink == nil {
		return nil
	}
	return t.sink.Publish(ctx, t.percent, t.status)
}

func (t *Tracker) advance(ctx context.Context, percent int) error {
	if t.terminal() || percent <= t.percent {
		return nil
	}
	t.percent = percent
	if t.sink == nil {
		return nil
	}
	return t.sink.Publish(ctx, t.percent, t.status)
}

func (t *Tracker) terminal() bool {
	return t.status != constants.JobStatusProcessing
}

package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/mrz"
	"github.com/voyagedesk/passport-tracker/internal/repository"
)

// DocumentJob is one unit of asynchronous work: the pages of a single
// uploaded document, bound to the job row that tracks it.
type DocumentJob struct {
	JobID       uuid.UUID
	UserID      uuid.UUID
	Destination string
	FileName    string
	Pages       [][]byte
}

// Processor runs a document job end to end: recognition, extraction,
// persistence of decoded passports, and job bookkeeping.
type Processor struct {
	orchestrator *Orchestrator
	jobs         repository.OcrJobRepository
	passports    repository.PassportRepository
	users        repository.UserRepository
	trackerCfg   TrackerConfig
	logger       *slog.Logger
}

func NewProcessor(
	orchestrator *Orchestrator,
	jobs repository.OcrJobRepository,
	passports repository.PassportRepository,
	users repository.UserRepository,
	trackerCfg TrackerConfig,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		orchestrator: orchestrator,
		jobs:         jobs,
		passports:    passports,
		users:        users,
		trackerCfg:   trackerCfg,
		logger:       logger,
	}
}

// Run processes every page of the job and always leaves the job row in a
// terminal state. Page-level faults are recorded per page; the returned
// error reports only infrastructure failures after the fact.
func (p *Processor) Run(ctx context.Context, job DocumentJob) error {
	logger := p.logger.With("job_id", job.JobID, "user_id", job.UserID)
	tracker := NewTracker(p.trackerCfg, &jobProgressSink{jobs: p.jobs, jobID: job.JobID})

	if err := tracker.MarkUploaded(ctx); err != nil {
		logger.Warn("failed to publish upload progress", "error", err)
	}

	results, err := p.orchestrator.ProcessDocument(ctx, job.Pages)
	if err != nil {
		// Cancelled mid-document. Pages already processed keep their
		// outcome; the abort itself is a document-level failure.
		logger.Warn("document processing interrupted", "error", err)
		results = append(results, PageResult{PageNumber: 0, Err: "processing interrupted: " + err.Error()})
	}

	// The bookkeeping writes below must land even when the job's context
	// has been cancelled or timed out, otherwise the row stays in
	// processing forever.
	ctx = context.WithoutCancel(ctx)

	if err := tracker.MarkRecognitionDone(ctx); err != nil {
		logger.Warn("failed to publish recognition progress", "error", err)
	}

	successes := make([]entity.PageSuccess, 0, len(results))
	failures := make([]entity.PageFailure, 0)
	total := len(results)
	for i := range results {
		res := &results[i]
		if res.OK() {
			created, err := p.passports.CreateForOwner(ctx, job.UserID, job.Destination, passportParams(res.Fields))
			if err != nil {
				logger.Warn("failed to persist passport", "page", res.PageNumber, "error", err)
				res.Fields = nil
				res.Err = err.Error()
			} else {
				successes = append(successes, entity.PageSuccess{PageNumber: res.PageNumber, Data: *created})
			}
		}
		if !res.OK() && res.Err != "" {
			failures = append(failures, entity.PageFailure{PageNumber: res.PageNumber, Detail: res.Err})
		}
		if err := tracker.RecordPageResult(ctx, i+1, total); err != nil {
			logger.Warn("failed to publish page progress", "page", res.PageNumber, "error", err)
		}
	}

	if len(job.Pages) > 0 {
		if err := p.users.AddUploadedPages(ctx, job.UserID, len(job.Pages)); err != nil {
			logger.Warn("failed to update uploaded page count", "error", err)
		}
	}

	successesJSON, sErr := encodeJSON(successes, successesSchema)
	failuresJSON, fErr := encodeJSON(failures, failuresSchema)
	if sErr != nil || fErr != nil {
		logger.Error("failed to encode job results", "successes_error", sErr, "failures_error", fErr)
		results = []PageResult{{PageNumber: 0, Err: "internal: result encoding failed"}}
		successesJSON, _ = encodeJSON([]entity.PageSuccess{}, successesSchema)
		failuresJSON, _ = encodeJSON([]entity.PageFailure{
			{PageNumber: 0, Detail: "internal: result encoding failed"},
		}, failuresSchema)
	}

	if err := tracker.Finalize(ctx, results); err != nil {
		logger.Warn("failed to publish final progress", "error", err)
	}

	if err := p.jobs.Finalize(ctx, job.JobID, tracker.Status(), successesJSON, failuresJSON); err != nil {
		logger.Error("failed to finalize job", "error", err)
		return err
	}

	logger.Info("document job finished",
		"status", tracker.Status(),
		"pages", len(job.Pages),
		"successes", len(successes),
		"failures", len(failures))
	return nil
}

func passportParams(f *mrz.Fields) repository.CreatePassportParams {
	confidence := f.ConfidenceScore
	return repository.CreatePassportParams{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		BirthDate:       f.BirthDate,
		ExpirationDate:  f.ExpirationDate,
		Nationality:     f.Nationality,
		PassportNumber:  f.PassportNumber,
		ConfidenceScore: &confidence,
	}
}

// jobProgressSink persists tracker updates onto the job row.
type jobProgressSink struct {
	jobs  repository.OcrJobRepository
	jobID uuid.UUID
}

func (s *jobProgressSink) Publish(ctx context.Context, percent int, status constants.JobStatus) error {
	return s.jobs.SetProgress(ctx, s.jobID, percent, status)
}

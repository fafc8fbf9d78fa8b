package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/gen/ent"
	entocrjob "github.com/voyagedesk/passport-tracker/gen/ent/ocrjob"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

type OcrJobRepository interface {
	Create(ctx context.Context, userID uuid.UUID, fileName string) (*entity.OcrJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.OcrJob, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.OcrJob, error)
	// SetProgress persists a progress tick. Percent only moves forward;
	// callers are expected to publish strictly increasing values.
	SetProgress(ctx context.Context, id uuid.UUID, percent int, status constants.JobStatus) error
	// Finalize records the terminal status alongside the itemized per-page
	// outcomes and stamps the finish time.
	Finalize(ctx context.Context, id uuid.UUID, status constants.JobStatus, successes, failures json.RawMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ocrJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOcrJobRepository(client *ent.Client, logger *slog.Logger) OcrJobRepository {
	return &ocrJobRepository{client: client, logger: logger}
}

func (r *ocrJobRepository) Create(ctx context.Context, userID uuid.UUID, fileName string) (*entity.OcrJob, error) {
	j, err := r.client.OcrJob.Create().
		SetUserID(userID).
		SetFileName(fileName).
		SetStatus(string(constants.JobStatusProcessing)).
		SetProgress(0).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job", "user_id", userID, "file_name", fileName, "error", err)
		return nil, err
	}
	return utils.ToOcrJob(j), nil
}

func (r *ocrJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.OcrJob, error) {
	j, err := r.client.OcrJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToOcrJob(j), nil
}

func (r *ocrJobRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.OcrJob, error) {
	q := r.client.OcrJob.Query().Where(entocrjob.UserID(userID))
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	jobs, err := q.Order(entocrjob.ByCreatedAt(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.OcrJob, len(jobs))
	for i, j := range jobs {
		out[i] = utils.ToOcrJob(j)
	}
	return out, nil
}

func (r *ocrJobRepository) SetProgress(ctx context.Context, id uuid.UUID, percent int, status constants.JobStatus) error {
	err := r.client.OcrJob.UpdateOneID(id).
		SetProgress(percent).
		SetStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update job progress", "job_id", id, "percent", percent, "error", err)
	}
	return err
}

func (r *ocrJobRepository) Finalize(ctx context.Context, id uuid.UUID, status constants.JobStatus, successes, failures json.RawMessage) error {
	err := r.client.OcrJob.UpdateOneID(id).
		SetStatus(string(status)).
		SetProgress(100).
		SetSuccesses(successes).
		SetFailures(failures).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to finalize job", "job_id", id, "status", status, "error", err)
	}
	return err
}

func (r *ocrJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.OcrJob.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete job", "job_id", id, "error", err)
		return err
	}
	return nil
}

package server

import (
	"context"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/gen/ent"
	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/async"
	"github.com/voyagedesk/passport-tracker/internal/common"
	"github.com/voyagedesk/passport-tracker/internal/pipeline"
	"github.com/voyagedesk/passport-tracker/internal/repository"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

type JobsService struct {
	passportspb.UnimplementedJobsServiceServer
	jobs   repository.OcrJobRepository
	users  repository.UserRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewJobsService(jobs repository.OcrJobRepository, users repository.UserRepository, queue async.Queue, logger *slog.Logger) *JobsService {
	return &JobsService{
		jobs:   jobs,
		users:  users,
		queue:  queue,
		logger: logger,
	}
}

// ExtractDocument creates a job row for the uploaded pages and enqueues it
// for background processing. The response carries the job in its initial
// processing state; progress is polled through GetJob.
func (s *JobsService) ExtractDocument(ctx context.Context, req *passportspb.ExtractDocumentRequest) (*passportspb.ExtractDocumentResponse, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.GetUserId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	destination := strings.TrimSpace(req.GetDestination())
	if destination == "" {
		return nil, status.Error(codes.InvalidArgument, "destination is required")
	}
	fileName := strings.TrimSpace(req.GetFileName())
	if fileName == "" {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}
	if !constants.IsAllowedExt(filepath.Ext(fileName)) {
		return nil, status.Error(codes.InvalidArgument, "unsupported file type; allowed: pdf, jpg, jpeg, png")
	}
	pages := req.GetPages()
	if len(pages) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one page is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if ent.IsNotFound(err) {
		return nil, status.Error(codes.InvalidArgument, "user not found")
	}
	if err != nil {
		s.logger.Error("user lookup failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "extract document failed")
	}
	if user.PageCredits > 0 && user.UploadedPagesCount+len(pages) > user.PageCredits {
		return nil, status.Error(codes.ResourceExhausted, "page credit limit exceeded")
	}

	job, err := s.jobs.Create(ctx, userID, fileName)
	if err != nil {
		s.logger.Error("create job failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "extract document failed")
	}

	s.logger.Info("queueing document for extraction",
		"job_id", job.ID,
		"user_id", userID,
		"pages", len(pages),
		"request_id", common.RequestID(ctx))
	if err := s.queue.Enqueue(ctx, pipeline.DocumentJob{
		JobID:       job.ID,
		UserID:      userID,
		Destination: destination,
		FileName:    fileName,
		Pages:       pages,
	}); err != nil {
		s.logger.Error("enqueue failed", "job_id", job.ID, "error", err)
		return nil, status.Error(codes.Internal, "extract document failed")
	}

	return &passportspb.ExtractDocumentResponse{Job: utils.ToPBJob(job)}, nil
}

// GetJob returns the job, enforcing that the requester owns it.
func (s *JobsService) GetJob(ctx context.Context, req *passportspb.GetJobRequest) (*passportspb.GetJobResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	job, err := s.jobs.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	if err != nil {
		s.logger.Error("get job failed", "job_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get job failed")
	}
	if uid := strings.TrimSpace(req.GetUserId()); uid != "" {
		userID, err := uuid.Parse(uid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
		}
		if job.UserID != userID {
			return nil, status.Error(codes.PermissionDenied, "job belongs to another user")
		}
	}
	return &passportspb.GetJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *JobsService) ListJobs(ctx context.Context, req *passportspb.ListJobsRequest) (*passportspb.ListJobsResponse, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.GetUserId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	jobs, err := s.jobs.ListByUser(ctx, userID, int(req.GetOffset()), int(req.GetLimit()))
	if err != nil {
		s.logger.Error("list jobs failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "list jobs failed")
	}
	out := make([]*passportspb.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBJob(j))
	}
	return &passportspb.ListJobsResponse{Jobs: out}, nil
}

func (s *JobsService) DeleteJob(ctx context.Context, req *passportspb.DeleteJobRequest) (*passportspb.DeleteJobResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	job, err := s.jobs.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	if err != nil {
		s.logger.Error("get job failed", "job_id", id, "error", err)
		return nil, status.Error(codes.Internal, "delete job failed")
	}
	if uid := strings.TrimSpace(req.GetUserId()); uid != "" {
		userID, err := uuid.Parse(uid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
		}
		if job.UserID != userID {
			return nil, status.Error(codes.PermissionDenied, "job belongs to another user")
		}
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		s.logger.Error("delete job failed", "job_id", id, "error", err)
		return nil, status.Error(codes.Internal, "delete job failed")
	}
	return &passportspb.DeleteJobResponse{}, nil
}

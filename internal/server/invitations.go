package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/voyagedesk/passport-tracker/gen/ent"
	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/repository"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

type InvitationsService struct {
	passportspb.UnimplementedInvitationsServiceServer
	invitations repository.InvitationRepository
	ttl         time.Duration
	logger      *slog.Logger
}

func NewInvitationsService(invitations repository.InvitationRepository, ttl time.Duration, logger *slog.Logger) *InvitationsService {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &InvitationsService{invitations: invitations, ttl: ttl, logger: logger}
}

func (s *InvitationsService) CreateInvitation(ctx context.Context, req *passportspb.CreateInvitationRequest) (*passportspb.CreateInvitationResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" || !strings.Contains(email, "@") {
		return nil, status.Error(codes.InvalidArgument, "a valid email is required")
	}
	inv, err := s.invitations.Create(ctx, email, s.ttl)
	if err != nil {
		s.logger.Error("create invitation failed", "email", email, "error", err)
		return nil, status.Error(codes.Internal, "create invitation failed")
	}
	return &passportspb.CreateInvitationResponse{Invitation: utils.ToPBInvitation(inv)}, nil
}

func (s *InvitationsService) ListInvitations(ctx context.Context, req *passportspb.ListInvitationsRequest) (*passportspb.ListInvitationsResponse, error) {
	invs, err := s.invitations.List(ctx, req.GetIncludeUsed())
	if err != nil {
		s.logger.Error("list invitations failed", "error", err)
		return nil, status.Error(codes.Internal, "list invitations failed")
	}
	out := make([]*passportspb.Invitation, 0, len(invs))
	for _, inv := range invs {
		out = append(out, utils.ToPBInvitation(inv))
	}
	return &passportspb.ListInvitationsResponse{Invitations: out}, nil
}

// UpdateInvitation changes the invited email and/or the expiry of a pending
// invitation. The token itself never changes.
func (s *InvitationsService) UpdateInvitation(ctx context.Context, req *passportspb.UpdateInvitationRequest) (*passportspb.UpdateInvitationResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	params := repository.UpdateInvitationParams{}
	if req.Email != nil {
		email := strings.TrimSpace(req.GetEmail())
		if email == "" || !strings.Contains(email, "@") {
			return nil, status.Error(codes.InvalidArgument, "a valid email is required")
		}
		params.Email = &email
	}
	if req.ExpiresAt != nil {
		expiresAt, err := time.Parse(time.RFC3339, req.GetExpiresAt())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "expires_at must be RFC3339")
		}
		params.ExpiresAt = &expiresAt
	}
	if params.Email == nil && params.ExpiresAt == nil {
		return nil, status.Error(codes.InvalidArgument, "nothing to update")
	}
	inv, err := s.invitations.Update(ctx, id, params)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "invitation not found")
		}
		s.logger.Error("update invitation failed", "invitation_id", id, "error", err)
		return nil, status.Error(codes.Internal, "update invitation failed")
	}
	return &passportspb.UpdateInvitationResponse{Invitation: utils.ToPBInvitation(inv)}, nil
}

// ValidateInvitation reports whether a token can still be redeemed. Unknown
// tokens are not errors; they are simply invalid.
func (s *InvitationsService) ValidateInvitation(ctx context.Context, req *passportspb.ValidateInvitationRequest) (*passportspb.ValidateInvitationResponse, error) {
	token := strings.TrimSpace(req.GetToken())
	if token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}
	inv, err := s.invitations.GetByToken(ctx, token)
	if ent.IsNotFound(err) {
		return &passportspb.ValidateInvitationResponse{Valid: false}, nil
	}
	if err != nil {
		s.logger.Error("invitation lookup failed", "error", err)
		return nil, status.Error(codes.Internal, "validate invitation failed")
	}
	if !inv.Valid(time.Now().UTC()) {
		return &passportspb.ValidateInvitationResponse{Valid: false}, nil
	}
	return &passportspb.ValidateInvitationResponse{Valid: true, Email: inv.Email}, nil
}

func (s *InvitationsService) DeleteInvitation(ctx context.Context, req *passportspb.DeleteInvitationRequest) (*passportspb.DeleteInvitationResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.invitations.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "invitation not found")
		}
		s.logger.Error("delete invitation failed", "invitation_id", id, "error", err)
		return nil, status.Error(codes.Internal, "delete invitation failed")
	}
	return &passportspb.DeleteInvitationResponse{}, nil
}

package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/gen/ent"
	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/repository"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

type UsersService struct {
	passportspb.UnimplementedUsersServiceServer
	users       repository.UserRepository
	invitations repository.InvitationRepository
	logger      *slog.Logger
}

func NewUsersService(users repository.UserRepository, invitations repository.InvitationRepository, logger *slog.Logger) *UsersService {
	return &UsersService{
		users:       users,
		invitations: invitations,
		logger:      logger,
	}
}

// CreateUser registers an account. With an invitation token this is
// self-registration: the token must be live and match the email, and the
// account is created with the regular user role.
func (s *UsersService) CreateUser(ctx context.Context, req *passportspb.CreateUserRequest) (*passportspb.CreateUserResponse, error) {
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "password is required")
	}

	role := req.GetRole()
	token := strings.TrimSpace(req.GetInvitationToken())
	var invitationID uuid.UUID
	if token != "" {
		inv, err := s.invitations.GetByToken(ctx, token)
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.InvalidArgument, "invitation not found")
		}
		if err != nil {
			s.logger.Error("invitation lookup failed", "error", err)
			return nil, status.Error(codes.Internal, "create user failed")
		}
		if !inv.Valid(time.Now().UTC()) {
			return nil, status.Error(codes.InvalidArgument, "invitation expired or already used")
		}
		if !strings.EqualFold(inv.Email, email) {
			return nil, status.Error(codes.InvalidArgument, "invitation was issued for a different email")
		}
		invitationID = inv.ID
		role = constants.RoleUser
	}

	u, err := s.users.Create(ctx, repository.CreateUserParams{
		FirstName:   req.GetFirstName(),
		LastName:    req.GetLastName(),
		Email:       email,
		PhoneNumber: req.GetPhoneNumber(),
		Username:    username,
		Password:    req.GetPassword(),
		Role:        role,
		PageCredits: int(req.GetPageCredits()),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.AlreadyExists, "username or email already taken")
		}
		s.logger.Error("create user failed", "username", username, "error", err)
		return nil, status.Error(codes.Internal, "create user failed")
	}

	if invitationID != uuid.Nil {
		if err := s.invitations.MarkUsed(ctx, invitationID); err != nil {
			s.logger.Warn("failed to mark invitation used", "invitation_id", invitationID, "error", err)
		}
	}

	return &passportspb.CreateUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersService) GetUser(ctx context.Context, req *passportspb.GetUserRequest) (*passportspb.GetUserResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	u, err := s.users.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err != nil {
		s.logger.Error("get user failed", "user_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get user failed")
	}
	return &passportspb.GetUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersService) ListUsers(ctx context.Context, req *passportspb.ListUsersRequest) (*passportspb.ListUsersResponse, error) {
	users, err := s.users.List(ctx, strings.TrimSpace(req.GetSearch()), int(req.GetOffset()), int(req.GetLimit()))
	if err != nil {
		s.logger.Error("list users failed", "error", err)
		return nil, status.Error(codes.Internal, "list users failed")
	}
	out := make([]*passportspb.User, 0, len(users))
	for _, u := range users {
		out = append(out, utils.ToPBUser(u))
	}
	return &passportspb.ListUsersResponse{Users: out}, nil
}

func (s *UsersService) UpdateUser(ctx context.Context, req *passportspb.UpdateUserRequest) (*passportspb.UpdateUserResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	var credits *int
	if req.PageCredits != nil {
		c := int(req.GetPageCredits())
		credits = &c
	}
	u, err := s.users.Update(ctx, id, repository.UpdateUserParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		PageCredits: credits,
	})
	if ent.IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err != nil {
		s.logger.Error("update user failed", "user_id", id, "error", err)
		return nil, status.Error(codes.Internal, "update user failed")
	}
	return &passportspb.UpdateUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersService) DeleteUser(ctx context.Context, req *passportspb.DeleteUserRequest) (*passportspb.DeleteUserResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		s.logger.Error("delete user failed", "user_id", id, "error", err)
		return nil, status.Error(codes.Internal, "delete user failed")
	}
	return &passportspb.DeleteUserResponse{}, nil
}

package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/voyagedesk/passport-tracker/gen/ent"
	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/repository"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

type VoyagesService struct {
	passportspb.UnimplementedVoyagesServiceServer
	voyages repository.VoyageRepository
	logger  *slog.Logger
}

func NewVoyagesService(voyages repository.VoyageRepository, logger *slog.Logger) *VoyagesService {
	return &VoyagesService{voyages: voyages, logger: logger}
}

func (s *VoyagesService) CreateVoyage(ctx context.Context, req *passportspb.CreateVoyageRequest) (*passportspb.CreateVoyageResponse, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.GetUserId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	destination := strings.TrimSpace(req.GetDestination())
	if destination == "" {
		return nil, status.Error(codes.InvalidArgument, "destination is required")
	}
	voyage, err := s.voyages.GetOrCreate(ctx, userID, destination)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.InvalidArgument, "user not found")
		}
		s.logger.Error("create voyage failed", "user_id", userID, "destination", destination, "error", err)
		return nil, status.Error(codes.Internal, "create voyage failed")
	}
	return &passportspb.CreateVoyageResponse{Voyage: utils.ToPBVoyage(voyage)}, nil
}

func (s *VoyagesService) UpdateVoyage(ctx context.Context, req *passportspb.UpdateVoyageRequest) (*passportspb.UpdateVoyageResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	destination := strings.TrimSpace(req.GetDestination())
	if destination == "" {
		return nil, status.Error(codes.InvalidArgument, "destination is required")
	}
	voyage, err := s.voyages.Rename(ctx, id, destination)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "voyage not found")
		}
		if ent.IsConstraintError(err) {
			return nil, status.Error(codes.AlreadyExists, "a voyage to this destination already exists")
		}
		s.logger.Error("update voyage failed", "voyage_id", id, "error", err)
		return nil, status.Error(codes.Internal, "update voyage failed")
	}
	return &passportspb.UpdateVoyageResponse{Voyage: utils.ToPBVoyage(voyage)}, nil
}

func (s *VoyagesService) ListVoyages(ctx context.Context, req *passportspb.ListVoyagesRequest) (*passportspb.ListVoyagesResponse, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.GetUserId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	voyages, err := s.voyages.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list voyages failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "list voyages failed")
	}
	out := make([]*passportspb.Voyage, 0, len(voyages))
	for _, v := range voyages {
		out = append(out, utils.ToPBVoyage(v))
	}
	return &passportspb.ListVoyagesResponse{Voyages: out}, nil
}

func (s *VoyagesService) ListDestinations(ctx context.Context, req *passportspb.ListDestinationsRequest) (*passportspb.ListDestinationsResponse, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.GetUserId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	destinations, err := s.voyages.ListDestinations(ctx, userID)
	if err != nil {
		s.logger.Error("list destinations failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "list destinations failed")
	}
	return &passportspb.ListDestinationsResponse{Destinations: destinations}, nil
}

func (s *VoyagesService) DeleteVoyage(ctx context.Context, req *passportspb.DeleteVoyageRequest) (*passportspb.DeleteVoyageResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.voyages.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "voyage not found")
		}
		s.logger.Error("delete voyage failed", "voyage_id", id, "error", err)
		return nil, status.Error(codes.Internal, "delete voyage failed")
	}
	return &passportspb.DeleteVoyageResponse{}, nil
}

package server

import (
	"context"
	"errors"
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

type PassportsService struct {
	passportspb.UnimplementedPassportsServiceServer
	passports repository.PassportRepository
	logger    *slog.Logger
}

func NewPassportsService(passports repository.PassportRepository, logger *slog.Logger) *PassportsService {
	return &PassportsService{passports: passports, logger: logger}
}

// CreatePassport files a manually entered passport under a destination.
func (s *PassportsService) CreatePassport(ctx context.Context, req *passportspb.CreatePassportRequest) (*passportspb.CreatePassportResponse, error) {
	ownerID, err := uuid.Parse(strings.TrimSpace(req.GetOwnerId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}
	destination := strings.TrimSpace(req.GetDestination())
	if destination == "" {
		return nil, status.Error(codes.InvalidArgument, "destination is required")
	}
	if strings.TrimSpace(req.GetPassportNumber()) == "" {
		return nil, status.Error(codes.InvalidArgument, "passport_number is required")
	}

	birthDate, err := utils.ParseYMD(req.GetBirthDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "birth_date must be YYYY-MM-DD")
	}
	expirationDate, err := utils.ParseYMD(req.GetExpirationDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "expiration_date must be YYYY-MM-DD")
	}
	var deliveryDate *time.Time
	if d := strings.TrimSpace(req.GetDeliveryDate()); d != "" {
		t, err := utils.ParseYMD(d)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "delivery_date must be YYYY-MM-DD")
		}
		deliveryDate = &t
	}

	p, err := s.passports.CreateForOwner(ctx, ownerID, destination, repository.CreatePassportParams{
		FirstName:      req.GetFirstName(),
		LastName:       req.GetLastName(),
		BirthDate:      birthDate,
		DeliveryDate:   deliveryDate,
		ExpirationDate: expirationDate,
		Nationality:    strings.ToUpper(strings.TrimSpace(req.GetNationality())),
		PassportNumber: strings.TrimSpace(req.GetPassportNumber()),
	})
	if errors.Is(err, repository.ErrDuplicateForDestination) {
		return nil, status.Error(codes.AlreadyExists, err.Error())
	}
	if err != nil {
		s.logger.Error("create passport failed", "owner_id", ownerID, "error", err)
		return nil, status.Error(codes.Internal, "create passport failed")
	}
	return &passportspb.CreatePassportResponse{Passport: utils.ToPBPassport(p)}, nil
}

func (s *PassportsService) GetPassport(ctx context.Context, req *passportspb.GetPassportRequest) (*passportspb.GetPassportResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	p, err := s.passports.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "passport not found")
	}
	if err != nil {
		s.logger.Error("get passport failed", "passport_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get passport failed")
	}
	return &passportspb.GetPassportResponse{Passport: utils.ToPBPassport(p)}, nil
}

func (s *PassportsService) ListPassports(ctx context.Context, req *passportspb.ListPassportsRequest) (*passportspb.ListPassportsResponse, error) {
	filter := repository.PassportFilter{
		Destination: strings.TrimSpace(req.GetDestination()),
		Search:      strings.TrimSpace(req.GetSearch()),
		Offset:      int(req.GetOffset()),
		Limit:       int(req.GetLimit()),
	}
	if oid := strings.TrimSpace(req.GetOwnerId()); oid != "" {
		ownerID, err := uuid.Parse(oid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
		}
		filter.OwnerID = ownerID
	}
	passports, err := s.passports.List(ctx, filter)
	if err != nil {
		s.logger.Error("list passports failed", "error", err)
		return nil, status.Error(codes.Internal, "list passports failed")
	}
	out := make([]*passportspb.Passport, 0, len(passports))
	for _, p := range passports {
		out = append(out, utils.ToPBPassport(p))
	}
	return &passportspb.ListPassportsResponse{Passports: out}, nil
}

func (s *PassportsService) UpdatePassport(ctx context.Context, req *passportspb.UpdatePassportRequest) (*passportspb.UpdatePassportResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	params := repository.UpdatePassportParams{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Nationality:    req.Nationality,
		PassportNumber: req.PassportNumber,
	}
	parseOptionalDate := func(s *string, field string) (*time.Time, error) {
		if s == nil {
			return nil, nil
		}
		t, err := utils.ParseYMD(*s)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be YYYY-MM-DD", field)
		}
		return &t, nil
	}
	if params.BirthDate, err = parseOptionalDate(req.BirthDate, "birth_date"); err != nil {
		return nil, err
	}
	if params.DeliveryDate, err = parseOptionalDate(req.DeliveryDate, "delivery_date"); err != nil {
		return nil, err
	}
	if params.ExpirationDate, err = parseOptionalDate(req.ExpirationDate, "expiration_date"); err != nil {
		return nil, err
	}

	p, err := s.passports.Update(ctx, id, params)
	if ent.IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "passport not found")
	}
	if err != nil {
		s.logger.Error("update passport failed", "passport_id", id, "error", err)
		return nil, status.Error(codes.Internal, "update passport failed")
	}
	return &passportspb.UpdatePassportResponse{Passport: utils.ToPBPassport(p)}, nil
}

func (s *PassportsService) DeletePassport(ctx context.Context, req *passportspb.DeletePassportRequest) (*passportspb.DeletePassportResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.passports.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "passport not found")
		}
		s.logger.Error("delete passport failed", "passport_id", id, "error", err)
		return nil, status.Error(codes.Internal, "delete passport failed")
	}
	return &passportspb.DeletePassportResponse{}, nil
}

func (s *PassportsService) DeletePassports(ctx context.Context, req *passportspb.DeletePassportsRequest) (*passportspb.DeletePassportsResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.GetIds()))
	for _, raw := range req.GetIds() {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid id %q", raw)
		}
		ids = append(ids, id)
	}
	n, err := s.passports.DeleteMany(ctx, ids)
	if err != nil {
		s.logger.Error("bulk delete passports failed", "count", len(ids), "error", err)
		return nil, status.Error(codes.Internal, "delete passports failed")
	}
	return &passportspb.DeletePassportsResponse{Deleted: int32(n)}, nil
}

package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/export"
)

type ExportServer struct {
	passportspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportPassports(ctx context.Context, req *passportspb.ExportPassportsRequest) (*passportspb.ExportPassportsResponse, error) {
	oid := strings.TrimSpace(req.GetOwnerId())
	ownerID, err := uuid.Parse(oid)
	if err != nil || oid == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}

	xlsx, err := s.svc.ExportPassportsXLSX(ctx, ownerID, strings.TrimSpace(req.GetDestination()))
	if err != nil {
		s.logger.Error("export.xlsx.failed", "owner_id", oid, "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	return &passportspb.ExportPassportsResponse{Xlsx: xlsx}, nil
}

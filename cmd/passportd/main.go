package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/voyagedesk/passport-tracker/gen/ent"
	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/async"
	"github.com/voyagedesk/passport-tracker/internal/common"
	"github.com/voyagedesk/passport-tracker/internal/export"
	"github.com/voyagedesk/passport-tracker/internal/mrz"
	"github.com/voyagedesk/passport-tracker/internal/pipeline"
	"github.com/voyagedesk/passport-tracker/internal/recognize"
	repo "github.com/voyagedesk/passport-tracker/internal/repository"
	svc "github.com/voyagedesk/passport-tracker/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if pool != nil {
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	usersRepo := repo.NewUserRepository(entc, logger)
	passportsRepo := repo.NewPassportRepository(entc, logger)
	voyagesRepo := repo.NewVoyageRepository(entc, logger)
	invitationsRepo := repo.NewInvitationRepository(entc, logger)
	jobsRepo := repo.NewOcrJobRepository(entc, logger)

	// Recognition + extraction pipeline
	var visionOpts []option.ClientOption
	if cfg.Recognition.CredentialsFile != "" {
		visionOpts = append(visionOpts, option.WithCredentialsFile(cfg.Recognition.CredentialsFile))
	}
	recognizer, err := recognize.NewVisionRecognizer(ctx, logger, visionOpts...)
	if err != nil {
		logger.Error("failed to init text recognition", "error", err)
		os.Exit(1)
	}
	extractor := mrz.NewExtractor(mrz.DateDecoder{CenturyThreshold: cfg.Pipeline.CenturyThreshold})
	orchestrator := pipeline.NewOrchestrator(recognizer, extractor, logger)
	processor := pipeline.NewProcessor(orchestrator, jobsRepo, passportsRepo, usersRepo, pipeline.TrackerConfig{}, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	usersService := svc.NewUsersService(usersRepo, invitationsRepo, logger)
	passportspb.RegisterUsersServiceServer(grpcServer, usersService)
	passportsService := svc.NewPassportsService(passportsRepo, logger)
	passportspb.RegisterPassportsServiceServer(grpcServer, passportsService)
	voyagesService := svc.NewVoyagesService(voyagesRepo, logger)
	passportspb.RegisterVoyagesServiceServer(grpcServer, voyagesService)
	invitationsService := svc.NewInvitationsService(invitationsRepo, cfg.Invitations.TTL, logger)
	passportspb.RegisterInvitationsServiceServer(grpcServer, invitationsService)
	jobsService := svc.NewJobsService(jobsRepo, usersRepo, queue, logger)
	passportspb.RegisterJobsServiceServer(grpcServer, jobsService)
	exportService := svc.NewExportServer(export.NewService(passportsRepo, logger), logger)
	passportspb.RegisterExportServiceServer(grpcServer, exportService)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("passport-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// openDatabase picks postgres when DB_URL is set, else the local sqlite
// file. The pool is nil for sqlite.
func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if cfg.Database.DSN != "" {
		return repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	entc, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
	return entc, nil, err
}

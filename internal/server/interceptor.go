package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/voyagedesk/passport-tracker/internal/common"
)

// RequestIDInterceptor tags every unary call with a request id and logs the
// call outcome with its duration.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"duration_ms", elapsed.Milliseconds(),
				"error", err)
		} else {
			logger.Info("rpc handled",
				"method", info.FullMethod,
				"request_id", requestID,
				"duration_ms", elapsed.Milliseconds())
		}
		return resp, err
	}
}

package server

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/voyagedesk/passport-tracker/internal/common"
)

func TestRequestIDInterceptorTagsContext(t *testing.T) {
	interceptor := RequestIDInterceptor(slog.Default())
	info := &grpc.UnaryServerInfo{FullMethod: "/passports.v1.JobsService/GetJob"}

	var seen string
	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		seen = common.RequestID(ctx)
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", resp)
	require.NotEmpty(t, seen)
	_, parseErr := uuid.Parse(seen)
	require.NoError(t, parseErr)
}

func TestRequestIDInterceptorPassesErrorThrough(t *testing.T) {
	interceptor := RequestIDInterceptor(slog.Default())
	info := &grpc.UnaryServerInfo{FullMethod: "/passports.v1.JobsService/GetJob"}

	boom := errors.New("boom")
	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRequestIDEmptyWithoutInterceptor(t *testing.T) {
	require.Empty(t, common.RequestID(context.Background()))
}

package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	require.Equal(t, "CONFIG_ERROR: GRPC_ADDR is required: invalid input", err.Error())
	require.True(t, errors.Is(err, ErrInvalidInput))

	bare := NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", nil)
	require.Equal(t, "CONFIG_ERROR: GRPC_ADDR is required", bare.Error())
	require.False(t, errors.Is(bare, ErrInvalidInput))
}

package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAllowedExt(t *testing.T) {
	require.True(t, IsAllowedExt(".pdf"))
	require.True(t, IsAllowedExt("PDF"))
	require.True(t, IsAllowedExt(".JPEG"))
	require.True(t, IsAllowedExt("png"))

	require.False(t, IsAllowedExt(".heic"))
	require.False(t, IsAllowedExt("tiff"))
	require.False(t, IsAllowedExt(""))
}

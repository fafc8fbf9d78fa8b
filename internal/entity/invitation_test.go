package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInvitationValid(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	inv := Invitation{ExpiresAt: now.Add(time.Hour)}
	require.True(t, inv.Valid(now))

	expired := Invitation{ExpiresAt: now.Add(-time.Minute)}
	require.False(t, expired.Valid(now))

	used := Invitation{ExpiresAt: now.Add(time.Hour), IsUsed: true}
	require.False(t, used.Valid(now))
}

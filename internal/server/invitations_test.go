package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	passportspb "github.com/voyagedesk/passport-tracker/gen/proto/passports/v1"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/repository"
)

type fakeInvitations struct {
	updatedID     uuid.UUID
	updatedParams repository.UpdateInvitationParams
}

func (f *fakeInvitations) Create(context.Context, string, time.Duration) (*entity.Invitation, error) {
	return nil, nil
}
func (f *fakeInvitations) GetByToken(context.Context, string) (*entity.Invitation, error) {
	return nil, nil
}
func (f *fakeInvitations) List(context.Context, bool) ([]*entity.Invitation, error) {
	return nil, nil
}
func (f *fakeInvitations) Update(_ context.Context, id uuid.UUID, params repository.UpdateInvitationParams) (*entity.Invitation, error) {
	f.updatedID = id
	f.updatedParams = params
	inv := &entity.Invitation{ID: id, Email: "old@example.com", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	if params.Email != nil {
		inv.Email = *params.Email
	}
	if params.ExpiresAt != nil {
		inv.ExpiresAt = *params.ExpiresAt
	}
	return inv, nil
}
func (f *fakeInvitations) MarkUsed(context.Context, uuid.UUID) error { return nil }
func (f *fakeInvitations) Delete(context.Context, uuid.UUID) error   { return nil }

func strPtr(s string) *string { return &s }

func TestUpdateInvitationChangesEmailAndExpiry(t *testing.T) {
	invitations := &fakeInvitations{}
	svc := NewInvitationsService(invitations, time.Hour, slog.Default())
	id := uuid.New()
	expiry := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	resp, err := svc.UpdateInvitation(context.Background(), &passportspb.UpdateInvitationRequest{
		Id:        id.String(),
		Email:     strPtr("new@example.com"),
		ExpiresAt: strPtr(expiry.Format(time.RFC3339)),
	})
	require.NoError(t, err)

	require.Equal(t, id, invitations.updatedID)
	require.NotNil(t, invitations.updatedParams.Email)
	require.Equal(t, "new@example.com", *invitations.updatedParams.Email)
	require.NotNil(t, invitations.updatedParams.ExpiresAt)
	require.True(t, expiry.Equal(*invitations.updatedParams.ExpiresAt))
	require.Equal(t, "new@example.com", resp.GetInvitation().GetEmail())
}

func TestUpdateInvitationRejectsBadInput(t *testing.T) {
	svc := NewInvitationsService(&fakeInvitations{}, time.Hour, slog.Default())
	id := uuid.New().String()

	cases := []struct {
		name string
		req  *passportspb.UpdateInvitationRequest
	}{
		{"bad id", &passportspb.UpdateInvitationRequest{Id: "not-a-uuid", Email: strPtr("a@b.com")}},
		{"bad email", &passportspb.UpdateInvitationRequest{Id: id, Email: strPtr("not-an-email")}},
		{"bad expiry", &passportspb.UpdateInvitationRequest{Id: id, ExpiresAt: strPtr("tomorrow")}},
		{"empty update", &passportspb.UpdateInvitationRequest{Id: id}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateInvitation(context.Background(), tc.req)
			require.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

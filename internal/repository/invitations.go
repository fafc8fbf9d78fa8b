package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/passport-tracker/gen/ent"
	entinvitation "github.com/voyagedesk/passport-tracker/gen/ent/invitation"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

const invitationTokenBytes = 32

type UpdateInvitationParams struct {
	Email     *string
	ExpiresAt *time.Time
}

type InvitationRepository interface {
	// Create issues a fresh single-use token for the email, valid for ttl.
	Create(ctx context.Context, email string, ttl time.Duration) (*entity.Invitation, error)
	GetByToken(ctx context.Context, token string) (*entity.Invitation, error)
	List(ctx context.Context, includeUsed bool) ([]*entity.Invitation, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateInvitationParams) (*entity.Invitation, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invitationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvitationRepository(client *ent.Client, logger *slog.Logger) InvitationRepository {
	return &invitationRepository{client: client, logger: logger}
}

func (r *invitationRepository) Create(ctx context.Context, email string, ttl time.Duration) (*entity.Invitation, error) {
	buf := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	inv, err := r.client.Invitation.Create().
		SetEmail(email).
		SetToken(hex.EncodeToString(buf)).
		SetExpiresAt(time.Now().UTC().Add(ttl)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invitation", "email", email, "error", err)
		return nil, err
	}
	return utils.ToInvitation(inv), nil
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	inv, err := r.client.Invitation.Query().
		Where(entinvitation.Token(token)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToInvitation(inv), nil
}

func (r *invitationRepository) List(ctx context.Context, includeUsed bool) ([]*entity.Invitation, error) {
	q := r.client.Invitation.Query()
	if !includeUsed {
		q = q.Where(entinvitation.IsUsed(false))
	}
	invs, err := q.Order(entinvitation.ByExpiresAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invitations", "error", err)
		return nil, err
	}
	out := make([]*entity.Invitation, len(invs))
	for i, inv := range invs {
		out[i] = utils.ToInvitation(inv)
	}
	return out, nil
}

func (r *invitationRepository) Update(ctx context.Context, id uuid.UUID, params UpdateInvitationParams) (*entity.Invitation, error) {
	upd := r.client.Invitation.UpdateOneID(id)
	if params.Email != nil {
		upd.SetEmail(*params.Email)
	}
	if params.ExpiresAt != nil {
		upd.SetExpiresAt(params.ExpiresAt.UTC())
	}
	inv, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update invitation", "invitation_id", id, "error", err)
		return nil, err
	}
	return utils.ToInvitation(inv), nil
}

func (r *invitationRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return r.client.Invitation.UpdateOneID(id).SetIsUsed(true).Exec(ctx)
}

func (r *invitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Invitation.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete invitation", "invitation_id", id, "error", err)
		return err
	}
	return nil
}

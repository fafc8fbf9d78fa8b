package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voyagedesk/passport-tracker/gen/ent"
	entvoyage "github.com/voyagedesk/passport-tracker/gen/ent/voyage"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

type VoyageRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, destination string) (*entity.Voyage, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Voyage, error)
	// ListDestinations returns the distinct destinations a user has voyages
	// for, in lexical order.
	ListDestinations(ctx context.Context, userID uuid.UUID) ([]string, error)
	Rename(ctx context.Context, id uuid.UUID, destination string) (*entity.Voyage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type voyageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVoyageRepository(client *ent.Client, logger *slog.Logger) VoyageRepository {
	return &voyageRepository{client: client, logger: logger}
}

func (r *voyageRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, destination string) (*entity.Voyage, error) {
	v, err := r.client.Voyage.Query().
		Where(entvoyage.UserID(userID), entvoyage.Destination(destination)).
		Only(ctx)
	if ent.IsNotFound(err) {
		v, err = r.client.Voyage.Create().
			SetUserID(userID).
			SetDestination(destination).
			Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to resolve voyage", "user_id", userID, "destination", destination, "error", err)
		return nil, err
	}
	return utils.ToVoyage(v), nil
}

func (r *voyageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Voyage, error) {
	voyages, err := r.client.Voyage.Query().
		Where(entvoyage.UserID(userID)).
		Order(entvoyage.ByDestination()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list voyages", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Voyage, len(voyages))
	for i, v := range voyages {
		out[i] = utils.ToVoyage(v)
	}
	return out, nil
}

func (r *voyageRepository) ListDestinations(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return r.client.Voyage.Query().
		Where(entvoyage.UserID(userID)).
		Order(entvoyage.ByDestination()).
		GroupBy(entvoyage.FieldDestination).
		Strings(ctx)
}

func (r *voyageRepository) Rename(ctx context.Context, id uuid.UUID, destination string) (*entity.Voyage, error) {
	v, err := r.client.Voyage.UpdateOneID(id).SetDestination(destination).Save(ctx)
	if err != nil {
		r.logger.Error("failed to rename voyage", "voyage_id", id, "error", err)
		return nil, err
	}
	return utils.ToVoyage(v), nil
}

func (r *voyageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Voyage.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete voyage", "voyage_id", id, "error", err)
		return err
	}
	return nil
}

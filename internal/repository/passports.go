package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voyagedesk/passport-tracker/gen/ent"
	entpassport "github.com/voyagedesk/passport-tracker/gen/ent/passport"
	entvoyage "github.com/voyagedesk/passport-tracker/gen/ent/voyage"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

// ErrDuplicateForDestination reports an attempt to file the same passport
// number twice under one destination.
var ErrDuplicateForDestination = errors.New("passport already recorded for this destination")

// CreatePassportParams carries the decoded fields for a new passport record.
type CreatePassportParams struct {
	FirstName       string
	LastName        string
	BirthDate       time.Time
	DeliveryDate    *time.Time
	ExpirationDate  time.Time
	Nationality     string
	PassportNumber  string
	ConfidenceScore *float64
}

// UpdatePassportParams carries optional field updates; nil means "leave as-is".
type UpdatePassportParams struct {
	FirstName      *string
	LastName       *string
	BirthDate      *time.Time
	DeliveryDate   *time.Time
	ExpirationDate *time.Time
	Nationality    *string
	PassportNumber *string
}

// PassportFilter narrows List results. Zero values match everything.
type PassportFilter struct {
	OwnerID     uuid.UUID
	Destination string
	Search      string
	Offset      int
	Limit       int
}

type PassportRepository interface {
	// CreateForOwner files the passport under the owner's voyage for the
	// given destination, creating the voyage on first use. Filing the same
	// passport number twice for one destination returns
	// ErrDuplicateForDestination.
	CreateForOwner(ctx context.Context, ownerID uuid.UUID, destination string, params CreatePassportParams) (*entity.Passport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Passport, error)
	List(ctx context.Context, filter PassportFilter) ([]*entity.Passport, error)
	Update(ctx context.Context, id uuid.UUID, params UpdatePassportParams) (*entity.Passport, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
}

type passportRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPassportRepository(client *ent.Client, logger *slog.Logger) PassportRepository {
	return &passportRepository{client: client, logger: logger}
}

func (r *passportRepository) CreateForOwner(ctx context.Context, ownerID uuid.UUID, destination string, params CreatePassportParams) (*entity.Passport, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	voyage, err := tx.Voyage.Query().
		Where(entvoyage.UserID(ownerID), entvoyage.Destination(destination)).
		Only(ctx)
	if ent.IsNotFound(err) {
		voyage, err = tx.Voyage.Create().
			SetUserID(ownerID).
			SetDestination(destination).
			Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to resolve voyage", "user_id", ownerID, "destination", destination, "error", err)
		return nil, err
	}

	exists, err := tx.Passport.Query().
		Where(
			entpassport.PassportNumber(params.PassportNumber),
			entpassport.HasVoyageWith(entvoyage.ID(voyage.ID)),
		).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		err = ErrDuplicateForDestination
		return nil, err
	}

	p, err := tx.Passport.Create().
		SetOwnerID(ownerID).
		SetVoyageID(voyage.ID).
		SetFirstName(params.FirstName).
		SetLastName(params.LastName).
		SetBirthDate(params.BirthDate).
		SetNillableDeliveryDate(params.DeliveryDate).
		SetExpirationDate(params.ExpirationDate).
		SetNationality(params.Nationality).
		SetPassportNumber(params.PassportNumber).
		SetNillableConfidenceScore(params.ConfidenceScore).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create passport", "user_id", ownerID, "error", err)
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return utils.ToPassport(p), nil
}

func (r *passportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Passport, error) {
	p, err := r.client.Passport.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToPassport(p), nil
}

func (r *passportRepository) List(ctx context.Context, filter PassportFilter) ([]*entity.Passport, error) {
	q := r.client.Passport.Query()
	if filter.OwnerID != uuid.Nil {
		q = q.Where(entpassport.OwnerID(filter.OwnerID))
	}
	if filter.Destination != "" {
		q = q.Where(entpassport.HasVoyageWith(entvoyage.Destination(filter.Destination)))
	}
	if filter.Search != "" {
		q = q.Where(entpassport.Or(
			entpassport.FirstNameContainsFold(filter.Search),
			entpassport.LastNameContainsFold(filter.Search),
			entpassport.PassportNumberContainsFold(filter.Search),
		))
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	passports, err := q.Order(entpassport.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list passports", "error", err)
		return nil, err
	}
	out := make([]*entity.Passport, len(passports))
	for i, p := range passports {
		out[i] = utils.ToPassport(p)
	}
	return out, nil
}

func (r *passportRepository) Update(ctx context.Context, id uuid.UUID, params UpdatePassportParams) (*entity.Passport, error) {
	p, err := r.client.Passport.UpdateOneID(id).
		SetNillableFirstName(params.FirstName).
		SetNillableLastName(params.LastName).
		SetNillableBirthDate(params.BirthDate).
		SetNillableDeliveryDate(params.DeliveryDate).
		SetNillableExpirationDate(params.ExpirationDate).
		SetNillableNationality(params.Nationality).
		SetNillablePassportNumber(params.PassportNumber).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update passport", "passport_id", id, "error", err)
		return nil, err
	}
	return utils.ToPassport(p), nil
}

func (r *passportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Passport.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete passport", "passport_id", id, "error", err)
		return err
	}
	return nil
}

// DeleteMany removes the given passports in one statement and returns how
// many rows matched. Unknown ids are skipped, not errors.
func (r *passportRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.client.Passport.Delete().Where(entpassport.IDIn(ids...)).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete passports", "count", len(ids), "error", err)
		return 0, err
	}
	return n, nil
}

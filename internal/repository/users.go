package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/gen/ent"
	entuser "github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/utils"
)

// CreateUserParams wraps the fields needed to register an account. Password
// is the plain text; it is hashed here and never stored or returned as-is.
type CreateUserParams struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Username    string
	Password    string
	Role        string
	PageCredits int
}

// UpdateUserParams carries optional field updates; nil means "leave as-is".
type UpdateUserParams struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Password    *string
	PageCredits *int
}

type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, nameFilter string, offset, limit int) ([]*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddUploadedPages(ctx context.Context, id uuid.UUID, pages int) error
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{client: client, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, params CreateUserParams) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := params.Role
	if role == "" {
		role = constants.RoleUser
	}
	u, err := r.client.User.Create().
		SetFirstName(params.FirstName).
		SetLastName(params.LastName).
		SetEmail(params.Email).
		SetPhoneNumber(params.PhoneNumber).
		SetUsername(params.Username).
		SetPasswordHash(string(hash)).
		SetRole(role).
		SetPageCredits(params.PageCredits).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "username", params.Username, "error", err)
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := r.client.User.Query().Where(entuser.Username(username)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.client.User.Query().Where(entuser.Email(email)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

// List returns manageable accounts, excluding the bootstrap admin. The
// filter matches name, username and email case-insensitively.
func (r *userRepository) List(ctx context.Context, nameFilter string, offset, limit int) ([]*entity.User, error) {
	q := r.client.User.Query().Where(entuser.UsernameNEQ("admin"))
	if nameFilter != "" {
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(nameFilter),
			entuser.LastNameContainsFold(nameFilter),
			entuser.UsernameContainsFold(nameFilter),
			entuser.EmailContainsFold(nameFilter),
		))
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	users, err := q.Order(entuser.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	out := make([]*entity.User, len(users))
	for i, u := range users {
		out[i] = utils.ToUser(u)
	}
	return out, nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*entity.User, error) {
	upd := r.client.User.UpdateOneID(id).
		SetNillableFirstName(params.FirstName).
		SetNillableLastName(params.LastName).
		SetNillableEmail(params.Email).
		SetNillablePhoneNumber(params.PhoneNumber).
		SetNillablePageCredits(params.PageCredits)
	if params.Password != nil && *params.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPasswordHash(string(hash))
	}
	u, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.User.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete user", "user_id", id, "error", err)
		return err
	}
	return nil
}

func (r *userRepository) AddUploadedPages(ctx context.Context, id uuid.UUID, pages int) error {
	return r.client.User.UpdateOneID(id).AddUploadedPagesCount(pages).Exec(ctx)
}

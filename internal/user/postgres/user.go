package postgres

import (
	"context"
	"errors"

	userDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/user"
	"github.com/Crashito0982/PruebaTecnica/internal/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository implements user.RepositoryAPI using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

// GetByID returns the non-deleted user with the given id, or nil.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *userDatamodel.User) error {
	err := r.db.WithContext(ctx).Save(u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrDuplicateEmail
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

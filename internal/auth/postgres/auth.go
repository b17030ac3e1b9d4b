package postgres

import (
	"context"
	"errors"

	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	userDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AuthRepository{db: db}
}

// FindActive returns the identity for a non-deleted user, or nil when no
// such user exists.
func (r *AuthRepository) FindActive(ctx context.Context, id uuid.UUID) (*auth.Identity, error) {
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

	return &auth.Identity{UserID: u.ID, IsBlocked: u.IsBlocked}, nil
}

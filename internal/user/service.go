package user

import (
	"context"
	"log/slog"
	"time"

	userDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/user"
	"github.com/google/uuid"
)

// RepositoryAPI defines the data access methods for user profiles.
// Reads must skip soft-deleted users; nothing here ever sets the flag.
type RepositoryAPI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userDatamodel.User, error)
	Update(ctx context.Context, user *userDatamodel.User) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Me returns the caller's profile.
func (s *Service) Me(ctx context.Context, usuarioID uuid.UUID) (*UserDTO, error) {
	dataUser, err := s.repo.GetByID(ctx, usuarioID)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "usuario_id", usuarioID)
		return nil, err
	}
	if dataUser == nil {
		return nil, ErrUserNotFound
	}

	response := FromDataModel(dataUser).ToResponse()
	return &response, nil
}

// UpdateMe overwrites nombre and email of the caller's profile. An email
// collision is caught by the unique index and reported as a conflict.
func (s *Service) UpdateMe(ctx context.Context, usuarioID uuid.UUID, dto UpdateMeDTO) error {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("profile validation failed", "error", err, "usuario_id", usuarioID)
		return err
	}

	dataUser, err := s.repo.GetByID(ctx, usuarioID)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "usuario_id", usuarioID)
		return err
	}
	if dataUser == nil {
		return ErrUserNotFound
	}

	dataUser.Nombre = dto.Nombre
	dataUser.Email = dto.Email
	dataUser.FechaActualizacion = time.Now().UTC()

	if err := s.repo.Update(ctx, dataUser); err != nil {
		s.logger.Error("failed to update user", "error", err, "usuario_id", usuarioID)
		return err
	}

	s.logger.Info("profile updated", "usuario_id", usuarioID)
	return nil
}

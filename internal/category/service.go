package category

import (
	"context"
	"log/slog"
	"strings"
	"time"

	categoryDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/category"
	"github.com/google/uuid"
)

// RepositoryAPI defines the data access methods for categories.
// GetByID is not owner-scoped on purpose: existence is checked before
// ownership so the caller can distinguish 404 from 403.
type RepositoryAPI interface {
	GetAllForUser(ctx context.Context, usuarioID uuid.UUID) ([]*categoryDatamodel.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*categoryDatamodel.Category, error)
	ExistsByNombre(ctx context.Context, usuarioID uuid.UUID, nombre string) (bool, error)
	Create(ctx context.Context, category *categoryDatamodel.Category) error
	Update(ctx context.Context, category *categoryDatamodel.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountExpenses(ctx context.Context, categoriaID uuid.UUID) (int64, error)
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

// List returns the caller's categories ordered by creation time descending.
func (s *Service) List(ctx context.Context, usuarioID uuid.UUID) ([]CategoryDTO, error) {
	dataCategories, err := s.repo.GetAllForUser(ctx, usuarioID)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err, "usuario_id", usuarioID)
		return nil, err
	}

	responses := make([]CategoryDTO, 0, len(dataCategories))
	for _, dc := range dataCategories {
		responses = append(responses, FromDataModel(dc).ToResponse())
	}

	return responses, nil
}

// Create persists a new category owned by the caller. The name pre-check
// and the unique index both guard (usuario_id, nombre); the repository
// translates a race-lost write into the same conflict.
func (s *Service) Create(ctx context.Context, usuarioID uuid.UUID, dto CreateCategoryDTO) (*CategoryDTO, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("category validation failed", "error", err, "usuario_id", usuarioID)
		return nil, err
	}

	nombre := strings.TrimSpace(dto.Nombre)

	exists, err := s.repo.ExistsByNombre(ctx, usuarioID, nombre)
	if err != nil {
		s.logger.Error("failed to check category name", "error", err, "usuario_id", usuarioID)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateNombre
	}

	dataCategory := &categoryDatamodel.Category{
		ID:            uuid.New(),
		Nombre:        nombre,
		Descripcion:   dto.Descripcion,
		UsuarioID:     usuarioID,
		FechaCreacion: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, dataCategory); err != nil {
		s.logger.Error("failed to create category", "error", err, "usuario_id", usuarioID)
		return nil, err
	}

	s.logger.Info("category created",
		"category_id", dataCategory.ID,
		"usuario_id", usuarioID,
		"nombre", nombre)

	response := FromDataModel(dataCategory).ToResponse()
	return &response, nil
}

// Update overwrites nombre and descripcion of a category the caller owns.
func (s *Service) Update(ctx context.Context, usuarioID, id uuid.UUID, dto UpdateCategoryDTO) error {
	dataCategory, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return err
	}
	if dataCategory == nil {
		return ErrCategoryNotFound
	}
	if !FromDataModel(dataCategory).IsOwnedBy(usuarioID) {
		s.logger.Warn("update denied: category owned by another user",
			"category_id", id, "usuario_id", usuarioID)
		return ErrModifyForeignCategory
	}

	dataCategory.Nombre = strings.TrimSpace(dto.Nombre)
	dataCategory.Descripcion = dto.Descripcion

	if err := s.repo.Update(ctx, dataCategory); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return err
	}

	s.logger.Info("category updated", "category_id", id, "usuario_id", usuarioID)
	return nil
}

// Delete removes a category the caller owns, unless expenses reference it.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	dataCategory, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return err
	}
	if dataCategory == nil {
		return ErrCategoryNotFound
	}
	if !FromDataModel(dataCategory).IsOwnedBy(usuarioID) {
		s.logger.Warn("delete denied: category owned by another user",
			"category_id", id, "usuario_id", usuarioID)
		return ErrDeleteForeignCategory
	}

	count, err := s.repo.CountExpenses(ctx, id)
	if err != nil {
		s.logger.Error("failed to count expenses for category", "error", err, "category_id", id)
		return err
	}
	if count > 0 {
		return ErrHasExpenses
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return err
	}

	s.logger.Info("category deleted", "category_id", id, "usuario_id", usuarioID)
	return nil
}

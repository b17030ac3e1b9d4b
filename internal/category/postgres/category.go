package postgres

import (
	"context"
	"errors"

	"github.com/Crashito0982/PruebaTecnica/internal/category"
	categoryDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/category"
	expenseDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/expense"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CategoryRepository implements category.RepositoryAPI using GORM
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAllForUser(ctx context.Context, usuarioID uuid.UUID) ([]*categoryDatamodel.Category, error) {
	var categories []*categoryDatamodel.Category
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha_creacion DESC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*categoryDatamodel.Category, error) {
	var cat categoryDatamodel.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) ExistsByNombre(ctx context.Context, usuarioID uuid.UUID, nombre string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&categoryDatamodel.Category{}).
		Where("usuario_id = ? AND nombre = ?", usuarioID, nombre).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Create(ctx context.Context, cat *categoryDatamodel.Category) error {
	if err := r.db.WithContext(ctx).Create(cat).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, cat *categoryDatamodel.Category) error {
	if err := r.db.WithContext(ctx).Save(cat).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&categoryDatamodel.Category{}).Error
}

func (r *CategoryRepository) CountExpenses(ctx context.Context, categoriaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&expenseDatamodel.Expense{}).
		Where("categoria_id = ?", categoriaID).
		Count(&count).Error
	return count, err
}

// translateDuplicate maps a unique-index violation (lost race against the
// pre-check) to the same conflict the pre-check produces.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return category.ErrDuplicateNombre
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return category.ErrDuplicateNombre
	}
	return err
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	expenseDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/expense"
	"github.com/Crashito0982/PruebaTecnica/internal/expense"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseRepository implements expense.RepositoryAPI using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.RepositoryAPI {
	return &ExpenseRepository{db: db}
}

// List applies the owner, category and search predicates, counts the
// whole match, then fetches one page in the requested order.
func (r *ExpenseRepository) List(ctx context.Context, filter expense.ListFilter) ([]*expenseDatamodel.Expense, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&expenseDatamodel.Expense{}).
		Where("usuario_id = ?", filter.UsuarioID)

	if filter.CategoriaID != nil {
		q = q.Where("categoria_id = ?", *filter.CategoriaID)
	}

	if filter.SearchNorm != "" {
		q = q.Where("descripcion IS NOT NULL AND descripcion_norm LIKE ?", "%"+filter.SearchNorm+"%")
	}

	var totalItems int64
	if err := q.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var expenses []*expenseDatamodel.Expense
	err := q.Order(orderClause(filter.SortBy, filter.SortOrder)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}

	return expenses, totalItems, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*expenseDatamodel.Expense, error) {
	var exp expenseDatamodel.Expense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&exp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exp, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, exp *expenseDatamodel.Expense) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

func (r *ExpenseRepository) Update(ctx context.Context, exp *expenseDatamodel.Expense) error {
	return r.db.WithContext(ctx).Save(exp).Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&expenseDatamodel.Expense{}).Error
}

// orderClause builds the ORDER BY for the two whitelisted sort fields.
// The tie-break is always the other field, in the same direction.
func orderClause(sortBy, sortOrder string) string {
	primary, secondary := "fecha", "monto"
	if sortBy == expense.SortByMonto {
		primary, secondary = "monto", "fecha"
	}

	dir := "DESC"
	if sortOrder == expense.SortOrderAsc {
		dir = "ASC"
	}

	return fmt.Sprintf("%s %s, %s %s", primary, dir, secondary, dir)
}

package expense

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	categoryDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/category"
	expenseDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/expense"
	"github.com/Crashito0982/PruebaTecnica/pkg/textfold"
	"github.com/google/uuid"
)

// ListFilter is the storage-level shape of a listing request. SearchNorm
// is already folded; SortBy and SortOrder are already validated.
type ListFilter struct {
	UsuarioID   uuid.UUID
	CategoriaID *uuid.UUID
	SearchNorm  string
	SortBy      string
	SortOrder   string
	Offset      int
	Limit       int
}

// RepositoryAPI defines the data access methods for expenses
type RepositoryAPI interface {
	List(ctx context.Context, filter ListFilter) ([]*expenseDatamodel.Expense, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*expenseDatamodel.Expense, error)
	Create(ctx context.Context, expense *expenseDatamodel.Expense) error
	Update(ctx context.Context, expense *expenseDatamodel.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryReaderAPI is the slice of the category repository this service
// needs to validate the referenced category.
type CategoryReaderAPI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*categoryDatamodel.Category, error)
}

type Service struct {
	repo       RepositoryAPI
	categories CategoryReaderAPI
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, categories CategoryReaderAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

// List returns a page of the caller's expenses. The categoryId filter is
// applied as-is, without an ownership check on the category itself: the
// owner predicate on the expense rows already bounds the result set.
func (s *Service) List(ctx context.Context, usuarioID uuid.UUID, query ListExpensesQuery) (*PagedResult, error) {
	if err := query.Validate(); err != nil {
		s.logger.Warn("expense list validation failed", "error", err, "usuario_id", usuarioID)
		return nil, err
	}

	filter := ListFilter{
		UsuarioID:   usuarioID,
		CategoriaID: query.CategoryID,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
		Offset:      (query.Page - 1) * query.PageSize,
		Limit:       query.PageSize,
	}
	if term := strings.TrimSpace(query.Search); term != "" {
		filter.SearchNorm = textfold.Fold(term)
	}

	dataExpenses, totalItems, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "usuario_id", usuarioID)
		return nil, err
	}

	items := make([]ExpenseDTO, 0, len(dataExpenses))
	for _, de := range dataExpenses {
		items = append(items, FromDataModel(de).ToResponse())
	}

	return &PagedResult{
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalItems: totalItems,
		TotalPages: int(math.Ceil(float64(totalItems) / float64(query.PageSize))),
		Items:      items,
	}, nil
}

// Create persists a new expense owned by the caller. The referenced
// category must exist and belong to the caller, in that order.
func (s *Service) Create(ctx context.Context, usuarioID uuid.UUID, dto CreateExpenseDTO) (*ExpenseDTO, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("expense validation failed", "error", err, "usuario_id", usuarioID)
		return nil, err
	}

	if err := s.checkCategory(ctx, usuarioID, dto.CategoriaID); err != nil {
		return nil, err
	}

	dataExpense := &expenseDatamodel.Expense{
		ID:              uuid.New(),
		Monto:           dto.Monto,
		Fecha:           dto.Fecha.Time,
		Descripcion:     dto.Descripcion,
		DescripcionNorm: foldDescripcion(dto.Descripcion),
		CategoriaID:     dto.CategoriaID,
		UsuarioID:       usuarioID,
		FechaCreacion:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, dataExpense); err != nil {
		s.logger.Error("failed to create expense", "error", err, "usuario_id", usuarioID)
		return nil, err
	}

	s.logger.Info("expense created",
		"expense_id", dataExpense.ID,
		"usuario_id", usuarioID,
		"monto", dto.Monto,
		"categoria_id", dto.CategoriaID)

	response := FromDataModel(dataExpense).ToResponse()
	return &response, nil
}

// Update overwrites an expense the caller owns. The request's category id
// may differ from the current one and is re-validated exactly as in Create.
func (s *Service) Update(ctx context.Context, usuarioID, id uuid.UUID, dto UpdateExpenseDTO) error {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("expense validation failed", "error", err, "expense_id", id)
		return err
	}

	dataExpense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return err
	}
	if dataExpense == nil {
		return ErrExpenseNotFound
	}
	if !FromDataModel(dataExpense).IsOwnedBy(usuarioID) {
		s.logger.Warn("update denied: expense owned by another user",
			"expense_id", id, "usuario_id", usuarioID)
		return ErrModifyForeignExpense
	}

	if err := s.checkCategory(ctx, usuarioID, dto.CategoriaID); err != nil {
		return err
	}

	dataExpense.Monto = dto.Monto
	dataExpense.Fecha = dto.Fecha.Time
	dataExpense.Descripcion = dto.Descripcion
	dataExpense.DescripcionNorm = foldDescripcion(dto.Descripcion)
	dataExpense.CategoriaID = dto.CategoriaID

	if err := s.repo.Update(ctx, dataExpense); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return err
	}

	s.logger.Info("expense updated", "expense_id", id, "usuario_id", usuarioID)
	return nil
}

// Delete removes an expense the caller owns, unconditionally.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	dataExpense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return err
	}
	if dataExpense == nil {
		return ErrExpenseNotFound
	}
	if !FromDataModel(dataExpense).IsOwnedBy(usuarioID) {
		s.logger.Warn("delete denied: expense owned by another user",
			"expense_id", id, "usuario_id", usuarioID)
		return ErrDeleteForeignExpense
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", id, "usuario_id", usuarioID)
	return nil
}

// checkCategory enforces existence before ownership so the caller can
// distinguish 404 from 403.
func (s *Service) checkCategory(ctx context.Context, usuarioID, categoriaID uuid.UUID) error {
	dataCategory, err := s.categories.GetByID(ctx, categoriaID)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "categoria_id", categoriaID)
		return err
	}
	if dataCategory == nil {
		return ErrCategoryNotFound
	}
	if dataCategory.UsuarioID != usuarioID {
		s.logger.Warn("category owned by another user",
			"categoria_id", categoriaID, "usuario_id", usuarioID)
		return ErrForeignCategory
	}
	return nil
}

func foldDescripcion(descripcion *string) string {
	if descripcion == nil {
		return ""
	}
	return textfold.Fold(*descripcion)
}

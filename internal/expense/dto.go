package expense

import (
	"strings"
	"time"

	"github.com/Crashito0982/PruebaTecnica/internal"
	"github.com/google/uuid"
)

// ExpenseDTO is the API representation of an expense
type ExpenseDTO struct {
	ID            uuid.UUID `json:"id"`
	Monto         float64   `json:"monto"`
	Fecha         DateOnly  `json:"fecha"`
	Descripcion   *string   `json:"descripcion"`
	CategoriaID   uuid.UUID `json:"categoriaId"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// CreateExpenseDTO is the request payload for creating an expense;
// updates use the same shape.
type CreateExpenseDTO struct {
	Monto       float64   `json:"monto"`
	Fecha       DateOnly  `json:"fecha"`
	Descripcion *string   `json:"descripcion,omitempty"`
	CategoriaID uuid.UUID `json:"categoriaId"`
}

func (dto CreateExpenseDTO) Validate() error {
	if dto.Monto <= 0 {
		return ErrInvalidMonto
	}
	return nil
}

// UpdateExpenseDTO is the request payload for updating an expense
type UpdateExpenseDTO = CreateExpenseDTO

// Sortable fields and orders for expense listing
const (
	SortByMonto = "monto"
	SortByFecha = "fecha"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	MaxPageSize = 100
)

// ListExpensesQuery carries the parsed query string of GET /expenses.
type ListExpensesQuery struct {
	Page       int
	PageSize   int
	Search     string
	CategoryID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// Validate normalizes sort parameters (trimmed, lowercased, defaulted)
// and bounds the pagination window.
func (q *ListExpensesQuery) Validate() error {
	if q.Page < 1 {
		return ErrInvalidPage
	}
	if q.PageSize < 1 {
		return ErrInvalidPageSize
	}
	if q.PageSize > MaxPageSize {
		return ErrPageSizeTooLarge
	}

	q.SortBy = strings.ToLower(strings.TrimSpace(q.SortBy))
	if q.SortBy == "" {
		q.SortBy = SortByFecha
	}
	if q.SortBy != SortByMonto && q.SortBy != SortByFecha {
		return ErrInvalidSortBy
	}

	q.SortOrder = strings.ToLower(strings.TrimSpace(q.SortOrder))
	if q.SortOrder == "" {
		q.SortOrder = SortOrderDesc
	}
	if q.SortOrder != SortOrderAsc && q.SortOrder != SortOrderDesc {
		return ErrInvalidSortOrder
	}

	return nil
}

// PagedResult is the envelope of a paginated expense listing.
type PagedResult struct {
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalItems int64        `json:"totalItems"`
	TotalPages int          `json:"totalPages"`
	Items      []ExpenseDTO `json:"items"`
}

// Domain errors
var (
	ErrInvalidMonto         = internal.NewBadRequestError("Monto debe ser mayor a 0.")
	ErrInvalidPage          = internal.NewBadRequestError("page debe ser >= 1.")
	ErrInvalidPageSize      = internal.NewBadRequestError("pageSize debe ser >= 1.")
	ErrPageSizeTooLarge     = internal.NewBadRequestError("pageSize no puede ser mayor a 100.")
	ErrInvalidSortBy        = internal.NewBadRequestError("sortBy debe ser 'monto' o 'fecha'.")
	ErrInvalidSortOrder     = internal.NewBadRequestError("sortOrder debe ser 'asc' o 'desc'.")
	ErrInvalidCategoryID    = internal.NewBadRequestError("categoryId debe ser un GUID válido.")
	ErrExpenseNotFound      = internal.NewNotFoundError("Gasto no encontrado.")
	ErrCategoryNotFound     = internal.NewNotFoundError("Categoría no encontrada.")
	ErrForeignCategory      = internal.NewForbiddenError("No puedes usar categorías de otro usuario.")
	ErrModifyForeignExpense = internal.NewForbiddenError("No puedes modificar gastos de otro usuario.")
	ErrDeleteForeignExpense = internal.NewForbiddenError("No puedes eliminar gastos de otro usuario.")
)

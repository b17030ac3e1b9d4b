package expense

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	"github.com/Crashito0982/PruebaTecnica/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type ServiceAPI interface {
	List(ctx context.Context, usuarioID uuid.UUID, query ListExpensesQuery) (*PagedResult, error)
	Create(ctx context.Context, usuarioID uuid.UUID, dto CreateExpenseDTO) (*ExpenseDTO, error)
	Update(ctx context.Context, usuarioID, id uuid.UUID, dto UpdateExpenseDTO) error
	Delete(ctx context.Context, usuarioID, id uuid.UUID) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("GetExpenses: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		h.WriteProblem(w, err)
		return
	}

	result, err := h.Service.List(r.Context(), usuarioID, *query)
	if err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("CreateExpense: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("CreateExpense: invalid request body", "error", err)
		h.WriteProblem(w, ErrInvalidMonto.WithCause(err))
		return
	}

	created, err := h.Service.Create(r.Context(), usuarioID, dto)
	if err != nil {
		h.WriteProblem(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/expenses/%s", created.ID))
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("UpdateExpense: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Warn("UpdateExpense: invalid expense id", "id", chi.URLParam(r, "id"))
		h.WriteProblem(w, ErrExpenseNotFound)
		return
	}

	var dto UpdateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("UpdateExpense: invalid request body", "error", err)
		h.WriteProblem(w, ErrInvalidMonto.WithCause(err))
		return
	}

	if err := h.Service.Update(r.Context(), usuarioID, id, dto); err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteNoContent(w)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("DeleteExpense: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Warn("DeleteExpense: invalid expense id", "id", chi.URLParam(r, "id"))
		h.WriteProblem(w, ErrExpenseNotFound)
		return
	}

	if err := h.Service.Delete(r.Context(), usuarioID, id); err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteNoContent(w)
}

// parseListQuery maps the query string onto ListExpensesQuery with the
// documented defaults. Unparseable numbers fail the same way as
// out-of-range ones.
func parseListQuery(r *http.Request) (*ListExpensesQuery, error) {
	query := &ListExpensesQuery{
		Page:      1,
		PageSize:  10,
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, ErrInvalidPage
		}
		query.Page = page
	}

	if sizeStr := r.URL.Query().Get("pageSize"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, ErrInvalidPageSize
		}
		query.PageSize = size
	}

	if catStr := r.URL.Query().Get("categoryId"); catStr != "" {
		categoryID, err := uuid.Parse(catStr)
		if err != nil {
			return nil, ErrInvalidCategoryID
		}
		query.CategoryID = &categoryID
	}

	return query, nil
}

package category

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	"github.com/Crashito0982/PruebaTecnica/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type ServiceAPI interface {
	List(ctx context.Context, usuarioID uuid.UUID) ([]CategoryDTO, error)
	Create(ctx context.Context, usuarioID uuid.UUID, dto CreateCategoryDTO) (*CategoryDTO, error)
	Update(ctx context.Context, usuarioID, id uuid.UUID, dto UpdateCategoryDTO) error
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

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("GetCategories: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	categories, err := h.Service.List(r.Context(), usuarioID)
	if err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("CreateCategory: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("CreateCategory: invalid request body", "error", err)
		h.WriteProblem(w, ErrNombreRequired.WithCause(err))
		return
	}

	created, err := h.Service.Create(r.Context(), usuarioID, dto)
	if err != nil {
		h.WriteProblem(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/categories/%s", created.ID))
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("UpdateCategory: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Warn("UpdateCategory: invalid category id", "id", chi.URLParam(r, "id"))
		h.WriteProblem(w, ErrCategoryNotFound)
		return
	}

	var dto UpdateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("UpdateCategory: invalid request body", "error", err)
		h.WriteProblem(w, ErrNombreRequired.WithCause(err))
		return
	}

	if err := h.Service.Update(r.Context(), usuarioID, id, dto); err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteNoContent(w)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("DeleteCategory: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Warn("DeleteCategory: invalid category id", "id", chi.URLParam(r, "id"))
		h.WriteProblem(w, ErrCategoryNotFound)
		return
	}

	if err := h.Service.Delete(r.Context(), usuarioID, id); err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteNoContent(w)
}

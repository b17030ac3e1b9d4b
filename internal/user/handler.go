package user

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	"github.com/Crashito0982/PruebaTecnica/internal/transport"
	"github.com/google/uuid"
)

type ServiceAPI interface {
	Me(ctx context.Context, usuarioID uuid.UUID) (*UserDTO, error)
	UpdateMe(ctx context.Context, usuarioID uuid.UUID, dto UpdateMeDTO) error
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

// GetMe handles GET /users/me
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("GetMe: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	me, err := h.Service.Me(r.Context(), usuarioID)
	if err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, me)
}

// UpdateMe handles PUT /users/me
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("UpdateMe: user not found in context")
		h.WriteProblem(w, auth.ErrMissingHeader)
		return
	}

	var dto UpdateMeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("UpdateMe: invalid request body", "error", err)
		h.WriteProblem(w, ErrNombreRequired.WithCause(err))
		return
	}

	if err := h.Service.UpdateMe(r.Context(), usuarioID, dto); err != nil {
		h.WriteProblem(w, err)
		return
	}

	h.WriteNoContent(w)
}

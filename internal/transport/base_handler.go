package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Crashito0982/PruebaTecnica/internal"
	"github.com/Crashito0982/PruebaTecnica/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteNoContent writes an empty 204 response
func (h *BaseHandler) WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteProblem renders err as the uniform problem response. Errors that
// are not an AppError degrade to a generic 500 problem so internal detail
// never reaches the caller.
func (h *BaseHandler) WriteProblem(w http.ResponseWriter, err error) {
	appErr, ok := internal.AsAppError(err)
	if !ok {
		h.Logger.Error("unclassified error", "error", err)
		appErr = internal.NewInternalError("Ocurrió un error inesperado.", err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		h.Logger.Error("http error", "status", appErr.Status, "detail", appErr.Detail, "cause", appErr.Cause)
	} else {
		h.Logger.Warn("http error", "status", appErr.Status, "detail", appErr.Detail)
	}

	h.WriteJSON(w, appErr.Status, appErr)
}

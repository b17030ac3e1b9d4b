package auth

import (
	"log/slog"
	"net/http"

	"github.com/Crashito0982/PruebaTecnica/internal/transport"
	"github.com/Crashito0982/PruebaTecnica/pkg/logger"
	"github.com/google/uuid"
)

type Middleware struct {
	*transport.BaseHandler
	repo RepositoryAPI
}

func NewMiddleware(repo RepositoryAPI, lg *slog.Logger) *Middleware {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &Middleware{
		BaseHandler: transport.NewBaseHandler(lg),
		repo:        repo,
	}
}

// RequireUser resolves the X-User-Id header into a caller identity and
// threads it through the request context. One read-only lookup, no other
// side effects.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderUserID)
		userID, err := uuid.Parse(header)
		if err != nil || header == "" {
			m.Logger.Warn("RequireUser: missing or invalid identity header", "header", header)
			m.WriteProblem(w, ErrMissingHeader)
			return
		}

		identity, err := m.repo.FindActive(r.Context(), userID)
		if err != nil {
			m.Logger.Error("RequireUser: identity lookup failed", "error", err, "user_id", userID)
			m.WriteProblem(w, err)
			return
		}

		if identity == nil {
			m.Logger.Warn("RequireUser: unknown user", "user_id", userID)
			m.WriteProblem(w, ErrUserNotFound)
			return
		}

		if identity.IsBlocked {
			m.Logger.Warn("RequireUser: blocked user", "user_id", userID)
			m.WriteProblem(w, ErrUserBlocked)
			return
		}

		ctx := ContextWithUserID(r.Context(), identity.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

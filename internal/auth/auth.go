package auth

import (
	"context"

	"github.com/Crashito0982/PruebaTecnica/internal"
	"github.com/google/uuid"
)

// HeaderUserID is the trusted header carrying the caller's identity. It is
// a development stand-in, not a security boundary; swapping in a real
// token scheme only means providing another RepositoryAPI.
const HeaderUserID = "X-User-Id"

// Identity is the result of resolving the trusted header against the
// users table.
type Identity struct {
	UserID    uuid.UUID
	IsBlocked bool
}

// RepositoryAPI looks up identities. Implementations must ignore
// soft-deleted users.
type RepositoryAPI interface {
	FindActive(ctx context.Context, id uuid.UUID) (*Identity, error)
}

var (
	ErrMissingHeader = internal.NewUnauthorizedError("Falta header X-User-Id válido.")
	ErrUserNotFound  = internal.NewUnauthorizedError("Usuario no existe.")
	ErrUserBlocked   = internal.NewForbiddenError("Usuario bloqueado no puede operar.")
)

type ctxKey string

const userIDKey ctxKey = "userID"

// ContextWithUserID stores the resolved caller id, request-scoped. It is
// written once during identity resolution and read-only afterwards.
func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the caller id resolved for this request.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

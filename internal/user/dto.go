package user

import (
	"strings"
	"time"

	"github.com/Crashito0982/PruebaTecnica/internal"
	"github.com/google/uuid"
)

// UserDTO is the API representation of the caller's profile
type UserDTO struct {
	ID                 uuid.UUID `json:"id"`
	Nombre             string    `json:"nombre"`
	Email              string    `json:"email"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// UpdateMeDTO is the request payload for updating the caller's profile
type UpdateMeDTO struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

func (dto UpdateMeDTO) Validate() error {
	if strings.TrimSpace(dto.Nombre) == "" {
		return ErrNombreRequired
	}
	if strings.TrimSpace(dto.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}

// Domain errors
var (
	ErrNombreRequired = internal.NewBadRequestError("nombre es requerido.")
	ErrEmailRequired  = internal.NewBadRequestError("email es requerido.")
	ErrUserNotFound   = internal.NewNotFoundError("Usuario no existe.")
	ErrDuplicateEmail = internal.NewConflictError("Ya existe un usuario con ese email.")
)

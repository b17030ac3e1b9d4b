package user

import (
	"time"

	userDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/user"
	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID `json:"id"`
	Nombre             string    `json:"nombre"`
	Email              string    `json:"email"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

func (u *User) ToResponse() UserDTO {
	return UserDTO{
		ID:                 u.ID,
		Nombre:             u.Nombre,
		Email:              u.Email,
		FechaCreacion:      u.FechaCreacion,
		FechaActualizacion: u.FechaActualizacion,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:                 u.ID,
		Nombre:             u.Nombre,
		Email:              u.Email,
		FechaCreacion:      u.FechaCreacion,
		FechaActualizacion: u.FechaActualizacion,
	}
}

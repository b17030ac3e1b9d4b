package category

import (
	"strings"
	"time"

	"github.com/Crashito0982/PruebaTecnica/internal"
	"github.com/google/uuid"
)

// CategoryDTO is the API representation of a category. The owner is
// implicit: every request is already scoped to the caller.
type CategoryDTO struct {
	ID            uuid.UUID `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// CreateCategoryDTO is the request payload for creating a category
type CreateCategoryDTO struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// Validate checks the payload; Nombre must be non-blank after trimming.
func (dto CreateCategoryDTO) Validate() error {
	if strings.TrimSpace(dto.Nombre) == "" {
		return ErrNombreRequired
	}
	return nil
}

// UpdateCategoryDTO is the request payload for updating a category
type UpdateCategoryDTO struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// Domain errors
var (
	ErrNombreRequired        = internal.NewBadRequestError("nombre es requerido.")
	ErrCategoryNotFound      = internal.NewNotFoundError("Categoría no encontrada.")
	ErrDuplicateNombre       = internal.NewConflictError("Ya existe una categoría con ese nombre para este usuario.")
	ErrModifyForeignCategory = internal.NewForbiddenError("No puedes modificar categorías de otro usuario.")
	ErrDeleteForeignCategory = internal.NewForbiddenError("No puedes eliminar categorías de otro usuario.")
	ErrHasExpenses           = internal.NewConflictError("No se puede eliminar la categoría porque tiene gastos asociados.")
)

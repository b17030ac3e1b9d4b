package category

import (
	"time"

	categoryDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/category"
	"github.com/google/uuid"
)

type Category struct {
	ID            uuid.UUID `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	UsuarioID     uuid.UUID `json:"-"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// IsOwnedBy reports whether the category belongs to the given user.
func (c *Category) IsOwnedBy(usuarioID uuid.UUID) bool {
	return c.UsuarioID == usuarioID
}

func (c *Category) ToResponse() CategoryDTO {
	return CategoryDTO{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		FechaCreacion: c.FechaCreacion,
	}
}

func ToDataModel(c *Category) *categoryDatamodel.Category {
	return &categoryDatamodel.Category{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		UsuarioID:     c.UsuarioID,
		FechaCreacion: c.FechaCreacion,
	}
}

func FromDataModel(c *categoryDatamodel.Category) *Category {
	return &Category{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		UsuarioID:     c.UsuarioID,
		FechaCreacion: c.FechaCreacion,
	}
}

func FromDataModelSlice(categories []*categoryDatamodel.Category) []*Category {
	result := make([]*Category, len(categories))
	for i, c := range categories {
		result[i] = FromDataModel(c)
	}
	return result
}

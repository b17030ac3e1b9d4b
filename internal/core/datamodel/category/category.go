package category

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Nombre        string    `gorm:"column:nombre;size:120;not null;uniqueIndex:ux_categories_usuario_nombre"`
	Descripcion   *string   `gorm:"column:descripcion"`
	UsuarioID     uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;uniqueIndex:ux_categories_usuario_nombre,priority:1"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;not null"`
}

func (Category) TableName() string {
	return "categories"
}

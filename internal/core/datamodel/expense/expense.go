package expense

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Monto       float64   `gorm:"column:monto;type:decimal(18,2);not null;check:monto > 0"`
	Fecha       time.Time `gorm:"column:fecha;type:date;not null"`
	Descripcion *string   `gorm:"column:descripcion"`
	// DescripcionNorm is Descripcion lowercased and accent-stripped; kept
	// in sync on every write so search can match "cafe" against "Café".
	DescripcionNorm string    `gorm:"column:descripcion_norm;not null;default:''"`
	CategoriaID     uuid.UUID `gorm:"column:categoria_id;type:uuid;not null;index"`
	UsuarioID       uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;index"`
	FechaCreacion   time.Time `gorm:"column:fecha_creacion;not null"`
}

func (Expense) TableName() string {
	return "expenses"
}

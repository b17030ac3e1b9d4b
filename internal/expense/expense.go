package expense

import (
	"fmt"
	"strings"
	"time"

	expenseDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/expense"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date without a time component, serialized as
// "2006-01-02".
type DateOnly struct {
	time.Time
}

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type Expense struct {
	ID            uuid.UUID `json:"id"`
	Monto         float64   `json:"monto"`
	Fecha         DateOnly  `json:"fecha"`
	Descripcion   *string   `json:"descripcion"`
	CategoriaID   uuid.UUID `json:"categoriaId"`
	UsuarioID     uuid.UUID `json:"-"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

func (e *Expense) IsOwnedBy(usuarioID uuid.UUID) bool {
	return e.UsuarioID == usuarioID
}

func (e *Expense) ToResponse() ExpenseDTO {
	return ExpenseDTO{
		ID:            e.ID,
		Monto:         e.Monto,
		Fecha:         e.Fecha,
		Descripcion:   e.Descripcion,
		CategoriaID:   e.CategoriaID,
		FechaCreacion: e.FechaCreacion,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	return &Expense{
		ID:            e.ID,
		Monto:         e.Monto,
		Fecha:         DateOnly{Time: e.Fecha},
		Descripcion:   e.Descripcion,
		CategoriaID:   e.CategoriaID,
		UsuarioID:     e.UsuarioID,
		FechaCreacion: e.FechaCreacion,
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}

package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Nombre             string     `gorm:"column:nombre;size:200;not null"`
	Email              string     `gorm:"column:email;size:320;uniqueIndex;not null"`
	FechaCreacion      time.Time  `gorm:"column:fecha_creacion;not null"`
	FechaActualizacion time.Time  `gorm:"column:fecha_actualizacion;not null"`
	IsDeleted          bool       `gorm:"column:is_deleted;not null;default:false"`
	DeletedAt          *time.Time `gorm:"column:deleted_at"`
	IsBlocked          bool       `gorm:"column:is_blocked;not null;default:false"`
	BlockedAt          *time.Time `gorm:"column:blocked_at"`
}

func (User) TableName() string {
	return "users"
}

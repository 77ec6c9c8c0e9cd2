package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with permission-based access.
// Permissao: "consulta" | "usuario" | "administrador"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nome         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Permissao    string    `gorm:"type:varchar(20);not null"`
	Ativo        bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

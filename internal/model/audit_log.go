package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions. The log is append-only: rows are NEVER updated or deleted.
const (
	AuditCreate = "CREATE"
	AuditRead   = "READ"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// AuditLog records who did what to which record, for compliance traceability.
type AuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UsuarioNome string    `gorm:"not null"`
	Acao        string    `gorm:"type:varchar(10);not null"`
	Tabela      string    `gorm:"type:varchar(50);not null;index"`
	RegistroID  string    `gorm:"index"`
	// Detalhes is a free-form JSON payload summarizing the operation.
	Detalhes  string `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time
}

func (AuditLog) TableName() string { return "audit_logs" }

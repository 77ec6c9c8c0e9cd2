package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Empenho is a government purchase commitment document tracked through its
// lifecycle: pendente → faturado → entregue → liquidado → pago.
// Transitions only move forward, one step at a time.
type Empenho struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero     string    `gorm:"uniqueIndex;not null"`
	ClienteID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UASG       string    `gorm:"column:uasg;not null"`
	Valor      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;default:'pendente'"`
	Observacao *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

// EmpenhoStatusSeq is the ordered lifecycle used to validate transitions.
var EmpenhoStatusSeq = []string{"pendente", "faturado", "entregue", "liquidado", "pago"}

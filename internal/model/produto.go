package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a catalog item quoted in licitações and referenced by
// purchase and sale line items.
type Produto struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo        string    `gorm:"uniqueIndex;not null"`
	Nome          string    `gorm:"index;not null"`
	Descricao     *string
	Unidade       string          `gorm:"not null;default:'unidade'"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FornecedorID  *uuid.UUID      `gorm:"type:uuid;index"`
	Observacao    *string
	Ativo         bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
}

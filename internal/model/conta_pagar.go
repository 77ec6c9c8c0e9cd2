package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContaPagar is a payable, usually generated from a purchase without a
// payment date. Status: "pendente" | "paga" | "vencida"
type ContaPagar struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID       *uuid.UUID `gorm:"type:uuid;index"`
	FornecedorNome string     `gorm:"not null"`
	NumeroNF       string     `gorm:"column:numero_nf;not null"`
	Valor          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataVencimento time.Time       `gorm:"not null;index"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pendente'"`
	DataPagamento  *time.Time
	AlertaEnviado  bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Compra *Compra `gorm:"foreignKey:CompraID"`
}

func (ContaPagar) TableName() string { return "contas_pagar" }

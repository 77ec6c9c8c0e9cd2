package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venda is a sale to a government customer under a licitação.
// Status: "pendente" | "recebido"
type Venda struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ClienteUASG      string    `gorm:"column:cliente_uasg;not null"`
	NumeroNF         string    `gorm:"column:numero_nf;index;not null"`
	TransportadoraID *uuid.UUID `gorm:"type:uuid;index"`
	NumeroEmpenho    *string    `gorm:"index"`
	DataVenda        time.Time  `gorm:"not null"`
	ValorTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pendente'"`
	Observacao       *string
	CreatedAt        time.Time

	Cliente        *Cliente        `gorm:"foreignKey:ClienteID"`
	Transportadora *Transportadora `gorm:"foreignKey:TransportadoraID"`
	Itens          []VendaItem     `gorm:"foreignKey:VendaID"`
}

// VendaItem is one sale line. ValorTotal is always Quantidade × ValorUnitario.
type VendaItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantidade    int             `gorm:"not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (VendaItem) TableName() string { return "venda_itens" }

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra is a purchase header. Immutable after creation — there is no update
// path; corrections are handled by registering a new purchase.
type Compra struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FornecedorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FornecedorNome string    `gorm:"not null"`
	// NumeroNF has no uniqueness constraint: duplicate invoice numbers are
	// accepted (legitimate resubmissions exist in practice).
	NumeroNF string    `gorm:"column:numero_nf;index;not null"`
	DataCompra         time.Time  `gorm:"not null"`
	DataPagamentoCompra *time.Time
	DataPagamentoFrete  *time.Time
	Frete          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	LinkPagamento  *string
	NumeroEmpenho  *string `gorm:"index"`
	Observacao     *string
	// Produto keeps the first line item's product name. Legacy denormalized
	// column still read by existing reports.
	Produto         string          `gorm:"not null;default:''"`
	ValorTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ComprovantePath *string
	CreatedAt       time.Time

	Fornecedor *Fornecedor  `gorm:"foreignKey:FornecedorID"`
	Itens      []CompraItem `gorm:"foreignKey:CompraID"`
}

// CompraItem is one purchase line. ValorTotal is always Quantidade × ValorUnitario.
type CompraItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantidade    int             `gorm:"not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (CompraItem) TableName() string { return "compra_itens" }

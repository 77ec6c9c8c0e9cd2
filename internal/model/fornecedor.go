package model

import (
	"time"

	"github.com/google/uuid"
)

// Fornecedor represents a supplier with commercial data.
type Fornecedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo      *string   `gorm:"index"`
	CNPJ        string    `gorm:"column:cnpj;uniqueIndex;not null"`
	RazaoSocial string    `gorm:"not null"`
	Endereco    *string
	Telefone    *string
	Email       *string
	Observacoes *string
	Ativo       bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Produtos []Produto `gorm:"foreignKey:FornecedorID"`
}

func (Fornecedor) TableName() string { return "fornecedores" }

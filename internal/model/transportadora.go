package model

import (
	"time"

	"github.com/google/uuid"
)

// Transportadora is a freight carrier used on sales deliveries.
type Transportadora struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CNPJ        string    `gorm:"column:cnpj;uniqueIndex;not null"`
	RazaoSocial string    `gorm:"not null"`
	Endereco    *string
	Telefone    *string
	Email       *string
	Observacoes *string
	Ativo       bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Transportadora) TableName() string { return "transportadoras" }

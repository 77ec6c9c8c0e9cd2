package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a government customer (órgão público) identified by its UASG code.
type Cliente struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UASG       string    `gorm:"column:uasg;uniqueIndex;not null"`
	NomeOrgao  string    `gorm:"not null"`
	CNPJ       *string   `gorm:"column:cnpj"`
	Endereco   *string
	Telefone   *string
	Telefone2  *string
	Email      *string
	Observacao *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

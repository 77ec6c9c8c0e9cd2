package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarContaPagarRequest struct {
	CompraID       *string         `json:"compra_id"       validate:"omitempty,uuid"`
	FornecedorNome string          `json:"fornecedor_nome" validate:"required"`
	NumeroNF       string          `json:"numero_nf"       validate:"required"`
	Valor          decimal.Decimal `json:"valor"           validate:"required,gt=0"`
	DataVencimento string          `json:"data_vencimento" validate:"required,datetime=2006-01-02"`
}

// ContaPagarFilter is bound from the query string of GET /v1/contas-pagar.
type ContaPagarFilter struct {
	Status string `form:"status"` // pendente | paga | vencida | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ContaPagarResponse struct {
	ID             string          `json:"id"`
	CompraID       *string         `json:"compra_id"`
	FornecedorNome string          `json:"fornecedor_nome"`
	NumeroNF       string          `json:"numero_nf"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento string          `json:"data_vencimento"`
	Status         string          `json:"status"`
	DataPagamento  *string         `json:"data_pagamento"`
}

type ContaPagarListResponse struct {
	Data  []ContaPagarResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

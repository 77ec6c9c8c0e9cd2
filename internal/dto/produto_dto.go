package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Codigo        string          `json:"codigo"         validate:"required"`
	Nome          string          `json:"nome"           validate:"required,min=2"`
	Descricao     *string         `json:"descricao"`
	Unidade       string          `json:"unidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" validate:"required,gt=0"`
	FornecedorID  *string         `json:"fornecedor_id"  validate:"omitempty,uuid"`
	Observacao    *string         `json:"observacao"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	Descricao     *string         `json:"descricao"`
	Unidade       string          `json:"unidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	FornecedorID  *string         `json:"fornecedor_id"`
	Observacao    *string         `json:"observacao"`
	Ativo         bool            `json:"ativo"`
}

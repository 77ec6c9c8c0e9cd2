package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemCompraRequest is one purchase line, assembled by the handler from the
// parallel form arrays (produto_id[], quantidade[], valor_unitario[]).
type ItemCompraRequest struct {
	ProdutoID     string          `json:"produto_id"     validate:"required,uuid"`
	Quantidade    int             `json:"quantidade"     validate:"required"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required"`
}

// RegistrarCompraRequest carries a full purchase submission. Field names match
// the multipart form contract of POST /v1/compras.
type RegistrarCompraRequest struct {
	FornecedorID        string              `json:"fornecedor_id" validate:"required,uuid"`
	NumeroNF            string              `json:"numero_nf"     validate:"required"`
	DataCompra          string              `json:"data_compra"   validate:"required,datetime=2006-01-02"`
	DataPagamentoCompra *string             `json:"data_pagamento_compra" validate:"omitempty,datetime=2006-01-02"`
	DataPagamentoFrete  *string             `json:"data_pagamento_frete"  validate:"omitempty,datetime=2006-01-02"`
	Frete               decimal.Decimal     `json:"frete"         validate:"min=0"`
	LinkPagamento       *string             `json:"link_pagamento"`
	NumeroEmpenho       *string             `json:"numero_empenho"`
	Observacao          *string             `json:"observacao"`
	Itens               []ItemCompraRequest `json:"itens"         validate:"required,min=1,dive"`
	// DiasVencimento sets the payable due date when no payment date is given.
	DiasVencimento int `json:"dias_vencimento" validate:"min=0"`
}

// ComprovanteUpload describes the optional receipt file attached to the form.
type ComprovanteUpload struct {
	Filename string
	Conteudo []byte
}

// CompraFilter is bound from the query string of GET /v1/compras.
type CompraFilter struct {
	FornecedorID string `form:"fornecedor_id" validate:"omitempty,uuid"`
	NumeroNF     string `form:"numero_nf"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemCompraResponse struct {
	ProdutoID     string          `json:"produto_id"`
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

type CompraResponse struct {
	ID              string               `json:"id"`
	FornecedorID    string               `json:"fornecedor_id"`
	FornecedorNome  string               `json:"fornecedor_nome"`
	NumeroNF        string               `json:"numero_nf"`
	DataCompra      string               `json:"data_compra"`
	Frete           decimal.Decimal      `json:"frete"`
	NumeroEmpenho   *string              `json:"numero_empenho"`
	Observacao      *string              `json:"observacao"`
	ValorTotal      decimal.Decimal      `json:"valor_total"`
	ComprovantePath *string              `json:"comprovante_path"`
	Itens           []ItemCompraResponse `json:"itens"`
	CreatedAt       string               `json:"created_at"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

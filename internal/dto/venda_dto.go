package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID     string          `json:"produto_id"     validate:"required,uuid"`
	Quantidade    int             `json:"quantidade"     validate:"required"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required"`
}

type RegistrarVendaRequest struct {
	ClienteID        string             `json:"cliente_id" validate:"required,uuid"`
	NumeroNF         string             `json:"numero_nf"  validate:"required"`
	DataVenda        string             `json:"data_venda" validate:"required,datetime=2006-01-02"`
	TransportadoraID *string            `json:"transportadora_id" validate:"omitempty,uuid"`
	NumeroEmpenho    *string            `json:"numero_empenho"`
	Observacao       *string            `json:"observacao"`
	Itens            []ItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
}

// VendaFilter is bound from the query string of GET /v1/vendas.
type VendaFilter struct {
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
	Status    string `form:"status"` // pendente | recebido | all
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVendaResponse struct {
	ProdutoID     string          `json:"produto_id"`
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

type VendaResponse struct {
	ID            string              `json:"id"`
	ClienteID     string              `json:"cliente_id"`
	ClienteUASG   string              `json:"cliente_uasg"`
	NumeroNF      string              `json:"numero_nf"`
	DataVenda     string              `json:"data_venda"`
	NumeroEmpenho *string             `json:"numero_empenho"`
	ValorTotal    decimal.Decimal     `json:"valor_total"`
	Status        string              `json:"status"`
	Itens         []ItemVendaResponse `json:"itens"`
	CreatedAt     string              `json:"created_at"`
}

type VendaListResponse struct {
	Data  []VendaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

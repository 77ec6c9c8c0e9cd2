package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarEmpenhoRequest struct {
	Numero     string          `json:"numero"     validate:"required"`
	ClienteID  string          `json:"cliente_id" validate:"required,uuid"`
	Valor      decimal.Decimal `json:"valor"      validate:"required,gt=0"`
	Observacao *string         `json:"observacao"`
}

type AtualizarStatusEmpenhoRequest struct {
	Status string `json:"status" validate:"required,oneof=pendente faturado entregue liquidado pago"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmpenhoResponse struct {
	ID         string          `json:"id"`
	Numero     string          `json:"numero"`
	ClienteID  string          `json:"cliente_id"`
	UASG       string          `json:"uasg"`
	Valor      decimal.Decimal `json:"valor"`
	Status     string          `json:"status"`
	Observacao *string         `json:"observacao"`
	CreatedAt  string          `json:"created_at"`
}

package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarTransportadoraRequest struct {
	CNPJ        string  `json:"cnpj"         validate:"required,cnpj"`
	RazaoSocial string  `json:"razao_social" validate:"required,min=2"`
	Endereco    *string `json:"endereco"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Observacoes *string `json:"observacoes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransportadoraResponse struct {
	ID          string  `json:"id"`
	CNPJ        string  `json:"cnpj"`
	RazaoSocial string  `json:"razao_social"`
	Endereco    *string `json:"endereco"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email"`
	Observacoes *string `json:"observacoes"`
	Ativo       bool    `json:"ativo"`
}

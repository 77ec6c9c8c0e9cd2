package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarFornecedorRequest struct {
	Codigo      *string `json:"codigo"`
	CNPJ        string  `json:"cnpj"         validate:"required,cnpj"`
	RazaoSocial string  `json:"razao_social" validate:"required,min=2"`
	Endereco    *string `json:"endereco"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Observacoes *string `json:"observacoes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CNPJConsultaResponse carries registry data used to pre-fill registration
// forms.
type CNPJConsultaResponse struct {
	CNPJ              string `json:"cnpj"`
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia"`
	SituacaoCadastral string `json:"situacao_cadastral"`
	Endereco          string `json:"endereco"`
	Telefone          string `json:"telefone"`
}

type FornecedorResponse struct {
	ID          string  `json:"id"`
	Codigo      *string `json:"codigo"`
	CNPJ        string  `json:"cnpj"`
	RazaoSocial string  `json:"razao_social"`
	Endereco    *string `json:"endereco"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email"`
	Observacoes *string `json:"observacoes"`
	Ativo       bool    `json:"ativo"`
}

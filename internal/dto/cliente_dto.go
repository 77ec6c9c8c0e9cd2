package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarClienteRequest struct {
	UASG       string  `json:"uasg"       validate:"required"`
	NomeOrgao  string  `json:"nome_orgao" validate:"required,min=2"`
	CNPJ       *string `json:"cnpj"       validate:"omitempty,cnpj"`
	Endereco   *string `json:"endereco"`
	Telefone   *string `json:"telefone"`
	Telefone2  *string `json:"telefone2"`
	Email      *string `json:"email"      validate:"omitempty,email"`
	Observacao *string `json:"observacao"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID         string  `json:"id"`
	UASG       string  `json:"uasg"`
	NomeOrgao  string  `json:"nome_orgao"`
	CNPJ       *string `json:"cnpj"`
	Endereco   *string `json:"endereco"`
	Telefone   *string `json:"telefone"`
	Telefone2  *string `json:"telefone2"`
	Email      *string `json:"email"`
	Observacao *string `json:"observacao"`
}

package dto

// AuditFilter is bound from the query string of GET /v1/auditoria.
type AuditFilter struct {
	Tabela     string `form:"tabela"`
	RegistroID string `form:"registro_id"`
	Page       int    `form:"page,default=1"    validate:"min=1"`
	Limit      int    `form:"limit,default=100" validate:"min=1,max=500"`
}

type AuditEntryResponse struct {
	ID          string `json:"id"`
	UsuarioID   string `json:"usuario_id"`
	UsuarioNome string `json:"usuario_nome"`
	Acao        string `json:"acao"`
	Tabela      string `json:"tabela"`
	RegistroID  string `json:"registro_id"`
	Detalhes    string `json:"detalhes"`
	CreatedAt   string `json:"created_at"`
}

type AuditListResponse struct {
	Data  []AuditEntryResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

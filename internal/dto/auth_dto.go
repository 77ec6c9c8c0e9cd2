package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CriarUsuarioRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Nome      string `json:"nome"      validate:"required,min=2"`
	Password  string `json:"password"  validate:"required,min=8"`
	Permissao string `json:"permissao" validate:"required,oneof=consulta usuario administrador"`
}

type AtualizarUsuarioRequest struct {
	Nome      string `json:"nome"`
	Password  string `json:"password"  validate:"omitempty,min=8"`
	Permissao string `json:"permissao" validate:"omitempty,oneof=consulta usuario administrador"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nome      string `json:"nome"`
	Permissao string `json:"permissao"`
	Ativo     bool   `json:"ativo"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

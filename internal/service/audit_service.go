package service

import (
	"context"
	"encoding/json"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Actor identifies the authenticated user performing an operation. It is
// extracted from the JWT by the handlers and passed down explicitly — there
// is no global "current user".
type Actor struct {
	ID   uuid.UUID
	Nome string
}

// appendAudit records one audit entry. Audit writes happen AFTER the business
// transaction commits and are best-effort: a failed append is logged, never
// propagated — the business operation already succeeded.
func appendAudit(ctx context.Context, repo repository.AuditRepository, actor Actor, acao, tabela, registroID string, detalhes map[string]interface{}) {
	if repo == nil {
		return
	}
	data, err := json.Marshal(detalhes)
	if err != nil {
		data = []byte("{}")
	}
	entry := &model.AuditLog{
		UsuarioID:   actor.ID,
		UsuarioNome: actor.Nome,
		Acao:        acao,
		Tabela:      tabela,
		RegistroID:  registroID,
		Detalhes:    string(data),
	}
	if err := repo.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("tabela", tabela).Str("registro_id", registroID).Msg("audit append failed")
	}
}

type AuditService interface {
	Listar(ctx context.Context, filter dto.AuditFilter) (*dto.AuditListResponse, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Listar(ctx context.Context, filter dto.AuditFilter) (*dto.AuditListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	data := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, dto.AuditEntryResponse{
			ID:          e.ID.String(),
			UsuarioID:   e.UsuarioID.String(),
			UsuarioNome: e.UsuarioNome,
			Acao:        e.Acao,
			Tabela:      e.Tabela,
			RegistroID:  e.RegistroID,
			Detalhes:    e.Detalhes,
			CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return &dto.AuditListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

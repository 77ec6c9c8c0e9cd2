package service

import (
	"context"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
)

type EmpenhoService interface {
	CriarEmpenho(ctx context.Context, actor Actor, req dto.CriarEmpenhoRequest) (*dto.EmpenhoResponse, error)
	AtualizarStatus(ctx context.Context, actor Actor, id uuid.UUID, req dto.AtualizarStatusEmpenhoRequest) (*dto.EmpenhoResponse, error)
	BuscarEmpenho(ctx context.Context, id uuid.UUID) (*dto.EmpenhoResponse, error)
	ListarEmpenhos(ctx context.Context, status string) ([]dto.EmpenhoResponse, error)
}

type empenhoService struct {
	repo        repository.EmpenhoRepository
	clienteRepo repository.ClienteRepository
	auditRepo   repository.AuditRepository
}

func NewEmpenhoService(repo repository.EmpenhoRepository, clienteRepo repository.ClienteRepository, auditRepo repository.AuditRepository) EmpenhoService {
	return &empenhoService{repo: repo, clienteRepo: clienteRepo, auditRepo: auditRepo}
}

func (s *empenhoService) CriarEmpenho(ctx context.Context, actor Actor, req dto.CriarEmpenhoRequest) (*dto.EmpenhoResponse, error) {
	if existing, err := s.repo.FindByNumero(ctx, req.Numero); err == nil && existing != nil {
		return nil, apierror.Validationf("Empenho com número %s já cadastrado", req.Numero)
	}

	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Validationf("cliente_id inválido")
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, apierror.NotFoundf("Cliente com ID %s não encontrado", req.ClienteID)
	}

	empenho := &model.Empenho{
		Numero:     req.Numero,
		ClienteID:  clienteID,
		UASG:       cliente.UASG,
		Valor:      req.Valor,
		Status:     "pendente",
		Observacao: req.Observacao,
	}
	if err := s.repo.Create(ctx, empenho); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "empenhos", empenho.ID.String(), map[string]interface{}{
		"numero": empenho.Numero,
		"uasg":   empenho.UASG,
		"valor":  empenho.Valor.String(),
	})
	return empenhoToResponse(empenho), nil
}

// AtualizarStatus advances the lifecycle by exactly one step. Backward moves
// and skips are rejected.
func (s *empenhoService) AtualizarStatus(ctx context.Context, actor Actor, id uuid.UUID, req dto.AtualizarStatusEmpenhoRequest) (*dto.EmpenhoResponse, error) {
	empenho, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Empenho com ID %s não encontrado", id)
	}

	if !transicaoValida(empenho.Status, req.Status) {
		return nil, apierror.Validationf("Transição de status inválida: de %s para %s", empenho.Status, req.Status)
	}

	anterior := empenho.Status
	empenho.Status = req.Status
	if err := s.repo.Update(ctx, empenho); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditUpdate, "empenhos", empenho.ID.String(), map[string]interface{}{
		"status_anterior": anterior,
		"status_novo":     empenho.Status,
	})
	return empenhoToResponse(empenho), nil
}

func (s *empenhoService) BuscarEmpenho(ctx context.Context, id uuid.UUID) (*dto.EmpenhoResponse, error) {
	empenho, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Empenho com ID %s não encontrado", id)
	}
	return empenhoToResponse(empenho), nil
}

func (s *empenhoService) ListarEmpenhos(ctx context.Context, status string) ([]dto.EmpenhoResponse, error) {
	empenhos, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	resp := make([]dto.EmpenhoResponse, 0, len(empenhos))
	for _, e := range empenhos {
		resp = append(resp, *empenhoToResponse(&e))
	}
	return resp, nil
}

// transicaoValida allows only the immediate next status in the lifecycle.
func transicaoValida(atual, novo string) bool {
	for i, st := range model.EmpenhoStatusSeq {
		if st == atual {
			return i+1 < len(model.EmpenhoStatusSeq) && model.EmpenhoStatusSeq[i+1] == novo
		}
	}
	return false
}

func empenhoToResponse(e *model.Empenho) *dto.EmpenhoResponse {
	return &dto.EmpenhoResponse{
		ID:         e.ID.String(),
		Numero:     e.Numero,
		ClienteID:  e.ClienteID.String(),
		UASG:       e.UASG,
		Valor:      e.Valor,
		Status:     e.Status,
		Observacao: e.Observacao,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

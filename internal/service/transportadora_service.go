package service

import (
	"context"

	"licitasis/internal/apierror"
	"licitasis/internal/cnpj"
	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
)

type TransportadoraService interface {
	CriarTransportadora(ctx context.Context, actor Actor, req dto.CriarTransportadoraRequest) (*dto.TransportadoraResponse, error)
	AtualizarTransportadora(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarTransportadoraRequest) (*dto.TransportadoraResponse, error)
	BuscarTransportadora(ctx context.Context, id uuid.UUID) (*dto.TransportadoraResponse, error)
	ListarTransportadoras(ctx context.Context) ([]dto.TransportadoraResponse, error)
	DesativarTransportadora(ctx context.Context, actor Actor, id uuid.UUID) error
}

type transportadoraService struct {
	repo      repository.TransportadoraRepository
	auditRepo repository.AuditRepository
}

func NewTransportadoraService(repo repository.TransportadoraRepository, auditRepo repository.AuditRepository) TransportadoraService {
	return &transportadoraService{repo: repo, auditRepo: auditRepo}
}

func (s *transportadoraService) CriarTransportadora(ctx context.Context, actor Actor, req dto.CriarTransportadoraRequest) (*dto.TransportadoraResponse, error) {
	doc := cnpj.Normalizar(req.CNPJ)
	if !cnpj.Valido(doc) {
		return nil, apierror.Validationf("CNPJ inválido")
	}
	if existing, err := s.repo.FindByCNPJ(ctx, doc); err == nil && existing != nil {
		return nil, apierror.Validationf("Transportadora com CNPJ %s já cadastrada", req.CNPJ)
	}

	transportadora := &model.Transportadora{
		CNPJ:        doc,
		RazaoSocial: req.RazaoSocial,
		Endereco:    req.Endereco,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Observacoes: req.Observacoes,
		Ativo:       true,
	}
	if err := s.repo.Create(ctx, transportadora); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "transportadoras", transportadora.ID.String(), map[string]interface{}{
		"cnpj":         transportadora.CNPJ,
		"razao_social": transportadora.RazaoSocial,
	})
	return transportadoraToResponse(transportadora), nil
}

func (s *transportadoraService) AtualizarTransportadora(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarTransportadoraRequest) (*dto.TransportadoraResponse, error) {
	transportadora, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Transportadora com ID %s não encontrada", id)
	}

	doc := cnpj.Normalizar(req.CNPJ)
	if !cnpj.Valido(doc) {
		return nil, apierror.Validationf("CNPJ inválido")
	}
	if existing, err := s.repo.FindByCNPJ(ctx, doc); err == nil && existing != nil && existing.ID != id {
		return nil, apierror.Validationf("Transportadora com CNPJ %s já cadastrada", req.CNPJ)
	}

	transportadora.CNPJ = doc
	transportadora.RazaoSocial = req.RazaoSocial
	transportadora.Endereco = req.Endereco
	transportadora.Telefone = req.Telefone
	transportadora.Email = req.Email
	transportadora.Observacoes = req.Observacoes

	if err := s.repo.Update(ctx, transportadora); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditUpdate, "transportadoras", transportadora.ID.String(), map[string]interface{}{
		"cnpj":         transportadora.CNPJ,
		"razao_social": transportadora.RazaoSocial,
	})
	return transportadoraToResponse(transportadora), nil
}

func (s *transportadoraService) BuscarTransportadora(ctx context.Context, id uuid.UUID) (*dto.TransportadoraResponse, error) {
	transportadora, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Transportadora com ID %s não encontrada", id)
	}
	return transportadoraToResponse(transportadora), nil
}

func (s *transportadoraService) ListarTransportadoras(ctx context.Context) ([]dto.TransportadoraResponse, error) {
	transportadoras, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	resp := make([]dto.TransportadoraResponse, 0, len(transportadoras))
	for _, t := range transportadoras {
		resp = append(resp, *transportadoraToResponse(&t))
	}
	return resp, nil
}

func (s *transportadoraService) DesativarTransportadora(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFoundf("Transportadora com ID %s não encontrada", id)
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Infra(err)
	}
	appendAudit(ctx, s.auditRepo, actor, model.AuditDelete, "transportadoras", id.String(), map[string]interface{}{
		"ativo": false,
	})
	return nil
}

func transportadoraToResponse(t *model.Transportadora) *dto.TransportadoraResponse {
	return &dto.TransportadoraResponse{
		ID:          t.ID.String(),
		CNPJ:        t.CNPJ,
		RazaoSocial: t.RazaoSocial,
		Endereco:    t.Endereco,
		Telefone:    t.Telefone,
		Email:       t.Email,
		Observacoes: t.Observacoes,
		Ativo:       t.Ativo,
	}
}

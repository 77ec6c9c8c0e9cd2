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

type ClienteService interface {
	CriarCliente(ctx context.Context, actor Actor, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	AtualizarCliente(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	BuscarCliente(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	ListarClientes(ctx context.Context) ([]dto.ClienteResponse, error)
	RemoverCliente(ctx context.Context, actor Actor, id uuid.UUID) error
}

type clienteService struct {
	repo      repository.ClienteRepository
	auditRepo repository.AuditRepository
}

func NewClienteService(repo repository.ClienteRepository, auditRepo repository.AuditRepository) ClienteService {
	return &clienteService{repo: repo, auditRepo: auditRepo}
}

func (s *clienteService) CriarCliente(ctx context.Context, actor Actor, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	if existing, err := s.repo.FindByUASG(ctx, req.UASG); err == nil && existing != nil {
		return nil, apierror.Validationf("Cliente com UASG %s já cadastrado", req.UASG)
	}

	doc, err := normalizarCNPJOpcional(req.CNPJ)
	if err != nil {
		return nil, err
	}

	cliente := &model.Cliente{
		UASG:       req.UASG,
		NomeOrgao:  req.NomeOrgao,
		CNPJ:       doc,
		Endereco:   req.Endereco,
		Telefone:   req.Telefone,
		Telefone2:  req.Telefone2,
		Email:      req.Email,
		Observacao: req.Observacao,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "clientes", cliente.ID.String(), map[string]interface{}{
		"uasg":       cliente.UASG,
		"nome_orgao": cliente.NomeOrgao,
	})
	return clienteToResponse(cliente), nil
}

func (s *clienteService) AtualizarCliente(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Cliente com ID %s não encontrado", id)
	}
	if existing, err := s.repo.FindByUASG(ctx, req.UASG); err == nil && existing != nil && existing.ID != id {
		return nil, apierror.Validationf("Cliente com UASG %s já cadastrado", req.UASG)
	}

	doc, err := normalizarCNPJOpcional(req.CNPJ)
	if err != nil {
		return nil, err
	}

	cliente.UASG = req.UASG
	cliente.NomeOrgao = req.NomeOrgao
	cliente.CNPJ = doc
	cliente.Endereco = req.Endereco
	cliente.Telefone = req.Telefone
	cliente.Telefone2 = req.Telefone2
	cliente.Email = req.Email
	cliente.Observacao = req.Observacao

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditUpdate, "clientes", cliente.ID.String(), map[string]interface{}{
		"uasg":       cliente.UASG,
		"nome_orgao": cliente.NomeOrgao,
	})
	return clienteToResponse(cliente), nil
}

func (s *clienteService) BuscarCliente(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Cliente com ID %s não encontrado", id)
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) ListarClientes(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		resp = append(resp, *clienteToResponse(&c))
	}
	return resp, nil
}

func (s *clienteService) RemoverCliente(ctx context.Context, actor Actor, id uuid.UUID) error {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFoundf("Cliente com ID %s não encontrado", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Infra(err)
	}
	appendAudit(ctx, s.auditRepo, actor, model.AuditDelete, "clientes", id.String(), map[string]interface{}{
		"uasg": cliente.UASG,
	})
	return nil
}

func normalizarCNPJOpcional(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	doc := cnpj.Normalizar(*raw)
	if !cnpj.Valido(doc) {
		return nil, apierror.Validationf("CNPJ inválido")
	}
	return &doc, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:         c.ID.String(),
		UASG:       c.UASG,
		NomeOrgao:  c.NomeOrgao,
		CNPJ:       c.CNPJ,
		Endereco:   c.Endereco,
		Telefone:   c.Telefone,
		Telefone2:  c.Telefone2,
		Email:      c.Email,
		Observacao: c.Observacao,
	}
}

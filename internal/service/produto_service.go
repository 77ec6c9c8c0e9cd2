package service

import (
	"context"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
)

type ProdutoService interface {
	CriarProduto(ctx context.Context, actor Actor, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	AtualizarProduto(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	BuscarProduto(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	ListarProdutos(ctx context.Context) ([]dto.ProdutoResponse, error)
	DesativarProduto(ctx context.Context, actor Actor, id uuid.UUID) error
}

type produtoService struct {
	repo           repository.ProdutoRepository
	fornecedorRepo repository.FornecedorRepository
	auditRepo      repository.AuditRepository
}

func NewProdutoService(repo repository.ProdutoRepository, fornecedorRepo repository.FornecedorRepository, auditRepo repository.AuditRepository) ProdutoService {
	return &produtoService{repo: repo, fornecedorRepo: fornecedorRepo, auditRepo: auditRepo}
}

func (s *produtoService) CriarProduto(ctx context.Context, actor Actor, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if existing, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil && existing != nil {
		return nil, apierror.Validationf("Produto com código %s já cadastrado", req.Codigo)
	}

	fornecedorID, err := s.resolveFornecedor(ctx, req.FornecedorID)
	if err != nil {
		return nil, err
	}

	unidade := req.Unidade
	if unidade == "" {
		unidade = "unidade"
	}

	produto := &model.Produto{
		Codigo:        req.Codigo,
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Unidade:       unidade,
		PrecoUnitario: req.PrecoUnitario,
		FornecedorID:  fornecedorID,
		Observacao:    req.Observacao,
		Ativo:         true,
	}
	if err := s.repo.Create(ctx, produto); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "produtos", produto.ID.String(), map[string]interface{}{
		"codigo": produto.Codigo,
		"nome":   produto.Nome,
	})
	return produtoToResponse(produto), nil
}

func (s *produtoService) AtualizarProduto(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Produto com ID %s não encontrado", id)
	}
	if existing, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil && existing != nil && existing.ID != id {
		return nil, apierror.Validationf("Produto com código %s já cadastrado", req.Codigo)
	}

	fornecedorID, err := s.resolveFornecedor(ctx, req.FornecedorID)
	if err != nil {
		return nil, err
	}

	produto.Codigo = req.Codigo
	produto.Nome = req.Nome
	produto.Descricao = req.Descricao
	if req.Unidade != "" {
		produto.Unidade = req.Unidade
	}
	produto.PrecoUnitario = req.PrecoUnitario
	produto.FornecedorID = fornecedorID
	produto.Observacao = req.Observacao

	if err := s.repo.Update(ctx, produto); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditUpdate, "produtos", produto.ID.String(), map[string]interface{}{
		"codigo": produto.Codigo,
		"nome":   produto.Nome,
	})
	return produtoToResponse(produto), nil
}

func (s *produtoService) BuscarProduto(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Produto com ID %s não encontrado", id)
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) ListarProdutos(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	resp := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		resp = append(resp, *produtoToResponse(&p))
	}
	return resp, nil
}

func (s *produtoService) DesativarProduto(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFoundf("Produto com ID %s não encontrado", id)
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Infra(err)
	}
	appendAudit(ctx, s.auditRepo, actor, model.AuditDelete, "produtos", id.String(), map[string]interface{}{
		"ativo": false,
	})
	return nil
}

func (s *produtoService) resolveFornecedor(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	fid, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apierror.Validationf("fornecedor_id inválido")
	}
	if _, err := s.fornecedorRepo.FindByID(ctx, fid); err != nil {
		return nil, apierror.NotFoundf("Fornecedor com ID %s não encontrado", *raw)
	}
	return &fid, nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	var fornecedorID *string
	if p.FornecedorID != nil {
		id := p.FornecedorID.String()
		fornecedorID = &id
	}
	return &dto.ProdutoResponse{
		ID:            p.ID.String(),
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Unidade:       p.Unidade,
		PrecoUnitario: p.PrecoUnitario,
		FornecedorID:  fornecedorID,
		Observacao:    p.Observacao,
		Ativo:         p.Ativo,
	}
}

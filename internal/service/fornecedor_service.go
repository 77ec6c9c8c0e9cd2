package service

import (
	"context"
	"fmt"

	"licitasis/internal/apierror"
	"licitasis/internal/cnpj"
	"licitasis/internal/dto"
	"licitasis/internal/infra"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type FornecedorService interface {
	CriarFornecedor(ctx context.Context, actor Actor, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	AtualizarFornecedor(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	BuscarFornecedor(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error)
	ListarFornecedores(ctx context.Context) ([]dto.FornecedorResponse, error)
	DesativarFornecedor(ctx context.Context, actor Actor, id uuid.UUID) error
	ConsultarCNPJ(ctx context.Context, valor string) (*dto.CNPJConsultaResponse, error)
}

type fornecedorService struct {
	repo       repository.FornecedorRepository
	auditRepo  repository.AuditRepository
	cnpjClient *infra.CNPJClient
}

func NewFornecedorService(repo repository.FornecedorRepository, auditRepo repository.AuditRepository, cnpjClient *infra.CNPJClient) FornecedorService {
	return &fornecedorService{repo: repo, auditRepo: auditRepo, cnpjClient: cnpjClient}
}

func (s *fornecedorService) CriarFornecedor(ctx context.Context, actor Actor, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	doc := cnpj.Normalizar(req.CNPJ)
	if !cnpj.Valido(doc) {
		return nil, apierror.Validationf("CNPJ inválido")
	}
	if existing, err := s.repo.FindByCNPJ(ctx, doc); err == nil && existing != nil {
		return nil, apierror.Validationf("Fornecedor com CNPJ %s já cadastrado", req.CNPJ)
	}

	fornecedor := &model.Fornecedor{
		Codigo:      req.Codigo,
		CNPJ:        doc,
		RazaoSocial: req.RazaoSocial,
		Endereco:    req.Endereco,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Observacoes: req.Observacoes,
		Ativo:       true,
	}

	// Best-effort registry enrichment: fill blanks from the CNPJ service,
	// never block registration on its availability.
	if s.cnpjClient != nil && fornecedor.Endereco == nil {
		if info, err := s.cnpjClient.Consultar(ctx, doc); err == nil {
			end := fmt.Sprintf("%s, %s - %s", info.Logradouro, info.Municipio, info.UF)
			fornecedor.Endereco = &end
		} else {
			log.Debug().Err(err).Str("cnpj", doc).Msg("consulta CNPJ indisponível")
		}
	}

	if err := s.repo.Create(ctx, fornecedor); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "fornecedores", fornecedor.ID.String(), map[string]interface{}{
		"cnpj":         fornecedor.CNPJ,
		"razao_social": fornecedor.RazaoSocial,
	})
	return fornecedorToResponse(fornecedor), nil
}

func (s *fornecedorService) AtualizarFornecedor(ctx context.Context, actor Actor, id uuid.UUID, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	fornecedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Fornecedor com ID %s não encontrado", id)
	}

	doc := cnpj.Normalizar(req.CNPJ)
	if !cnpj.Valido(doc) {
		return nil, apierror.Validationf("CNPJ inválido")
	}
	if existing, err := s.repo.FindByCNPJ(ctx, doc); err == nil && existing != nil && existing.ID != id {
		return nil, apierror.Validationf("Fornecedor com CNPJ %s já cadastrado", req.CNPJ)
	}

	fornecedor.Codigo = req.Codigo
	fornecedor.CNPJ = doc
	fornecedor.RazaoSocial = req.RazaoSocial
	fornecedor.Endereco = req.Endereco
	fornecedor.Telefone = req.Telefone
	fornecedor.Email = req.Email
	fornecedor.Observacoes = req.Observacoes

	if err := s.repo.Update(ctx, fornecedor); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditUpdate, "fornecedores", fornecedor.ID.String(), map[string]interface{}{
		"cnpj":         fornecedor.CNPJ,
		"razao_social": fornecedor.RazaoSocial,
	})
	return fornecedorToResponse(fornecedor), nil
}

func (s *fornecedorService) BuscarFornecedor(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error) {
	fornecedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Fornecedor com ID %s não encontrado", id)
	}
	return fornecedorToResponse(fornecedor), nil
}

func (s *fornecedorService) ListarFornecedores(ctx context.Context) ([]dto.FornecedorResponse, error) {
	fornecedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	resp := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		resp = append(resp, *fornecedorToResponse(&f))
	}
	return resp, nil
}

func (s *fornecedorService) DesativarFornecedor(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFoundf("Fornecedor com ID %s não encontrado", id)
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Infra(err)
	}
	appendAudit(ctx, s.auditRepo, actor, model.AuditDelete, "fornecedores", id.String(), map[string]interface{}{
		"ativo": false,
	})
	return nil
}

// ConsultarCNPJ exposes the registry lookup used by registration forms.
func (s *fornecedorService) ConsultarCNPJ(ctx context.Context, valor string) (*dto.CNPJConsultaResponse, error) {
	doc := cnpj.Normalizar(valor)
	if !cnpj.Valido(doc) {
		return nil, apierror.Validationf("CNPJ inválido")
	}
	if s.cnpjClient == nil {
		return nil, apierror.Validationf("Consulta de CNPJ não está configurada")
	}
	info, err := s.cnpjClient.Consultar(ctx, doc)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	return &dto.CNPJConsultaResponse{
		CNPJ:              info.CNPJ,
		RazaoSocial:       info.RazaoSocial,
		NomeFantasia:      info.NomeFantasia,
		SituacaoCadastral: info.SituacaoCadastral,
		Endereco:          fmt.Sprintf("%s, %s - %s", info.Logradouro, info.Municipio, info.UF),
		Telefone:          info.DDDTelefone,
	}, nil
}

func fornecedorToResponse(f *model.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:          f.ID.String(),
		Codigo:      f.Codigo,
		CNPJ:        f.CNPJ,
		RazaoSocial: f.RazaoSocial,
		Endereco:    f.Endereco,
		Telefone:    f.Telefone,
		Email:       f.Email,
		Observacoes: f.Observacoes,
		Ativo:       f.Ativo,
	}
}

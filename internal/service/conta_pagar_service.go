package service

import (
	"context"
	"time"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
)

type ContaPagarService interface {
	CriarConta(ctx context.Context, actor Actor, req dto.CriarContaPagarRequest) (*dto.ContaPagarResponse, error)
	MarcarPaga(ctx context.Context, actor Actor, id uuid.UUID) (*dto.ContaPagarResponse, error)
	ListarContas(ctx context.Context, filter dto.ContaPagarFilter) (*dto.ContaPagarListResponse, error)
}

type contaPagarService struct {
	repo      repository.ContaPagarRepository
	auditRepo repository.AuditRepository
}

func NewContaPagarService(repo repository.ContaPagarRepository, auditRepo repository.AuditRepository) ContaPagarService {
	return &contaPagarService{repo: repo, auditRepo: auditRepo}
}

// CriarConta registers a standalone payable, not tied to a purchase (freight
// invoices, services). Purchase-generated payables are created inside the
// purchase transaction instead.
func (s *contaPagarService) CriarConta(ctx context.Context, actor Actor, req dto.CriarContaPagarRequest) (*dto.ContaPagarResponse, error) {
	vencimento, err := time.Parse("2006-01-02", req.DataVencimento)
	if err != nil {
		return nil, apierror.Validationf("data_vencimento inválida: use o formato AAAA-MM-DD")
	}

	var compraID *uuid.UUID
	if req.CompraID != nil && *req.CompraID != "" {
		cid, err := uuid.Parse(*req.CompraID)
		if err != nil {
			return nil, apierror.Validationf("compra_id inválido")
		}
		compraID = &cid
	}

	conta := &model.ContaPagar{
		CompraID:       compraID,
		FornecedorNome: req.FornecedorNome,
		NumeroNF:       req.NumeroNF,
		Valor:          req.Valor,
		DataVencimento: vencimento,
		Status:         "pendente",
	}
	if err := s.repo.Create(ctx, conta); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "contas_pagar", conta.ID.String(), map[string]interface{}{
		"fornecedor": conta.FornecedorNome,
		"numero_nf":  conta.NumeroNF,
		"valor":      conta.Valor.String(),
	})
	return contaToResponse(conta), nil
}

func (s *contaPagarService) MarcarPaga(ctx context.Context, actor Actor, id uuid.UUID) (*dto.ContaPagarResponse, error) {
	conta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Conta a pagar com ID %s não encontrada", id)
	}
	if conta.Status == "paga" {
		return nil, apierror.Validationf("Conta já está marcada como paga")
	}

	now := time.Now()
	conta.Status = "paga"
	conta.DataPagamento = &now
	if err := s.repo.Update(ctx, conta); err != nil {
		return nil, apierror.Infra(err)
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditUpdate, "contas_pagar", conta.ID.String(), map[string]interface{}{
		"status": "paga",
	})
	return contaToResponse(conta), nil
}

func (s *contaPagarService) ListarContas(ctx context.Context, filter dto.ContaPagarFilter) (*dto.ContaPagarListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	contas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	data := make([]dto.ContaPagarResponse, 0, len(contas))
	for _, c := range contas {
		data = append(data, *contaToResponse(&c))
	}
	return &dto.ContaPagarListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func contaToResponse(c *model.ContaPagar) *dto.ContaPagarResponse {
	var compraID *string
	if c.CompraID != nil {
		id := c.CompraID.String()
		compraID = &id
	}
	var dataPagamento *string
	if c.DataPagamento != nil {
		d := c.DataPagamento.Format("2006-01-02")
		dataPagamento = &d
	}
	return &dto.ContaPagarResponse{
		ID:             c.ID.String(),
		CompraID:       compraID,
		FornecedorNome: c.FornecedorNome,
		NumeroNF:       c.NumeroNF,
		Valor:          c.Valor,
		DataVencimento: c.DataVencimento.Format("2006-01-02"),
		Status:         c.Status,
		DataPagamento:  dataPagamento,
	}
}

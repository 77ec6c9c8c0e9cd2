package service

import (
	"context"
	"time"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	RegistrarVenda(ctx context.Context, actor Actor, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	MarcarRecebida(ctx context.Context, actor Actor, id uuid.UUID) error
	BuscarVenda(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error)
	ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error)
}

type vendaService struct {
	repo               repository.VendaRepository
	clienteRepo        repository.ClienteRepository
	produtoRepo        repository.ProdutoRepository
	transportadoraRepo repository.TransportadoraRepository
	auditRepo          repository.AuditRepository
}

func NewVendaService(
	repo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	transportadoraRepo repository.TransportadoraRepository,
	auditRepo repository.AuditRepository,
) VendaService {
	return &vendaService{
		repo:               repo,
		clienteRepo:        clienteRepo,
		produtoRepo:        produtoRepo,
		transportadoraRepo: transportadoraRepo,
		auditRepo:          auditRepo,
	}
}

// RegistrarVenda writes the sale header and all line items atomically, same
// shape as the purchase path: pre-flight resolution outside the transaction,
// all-or-nothing writes inside.
func (s *vendaService) RegistrarVenda(ctx context.Context, actor Actor, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Validationf("cliente_id inválido")
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, apierror.NotFoundf("Cliente com ID %s não encontrado", req.ClienteID)
	}

	dataVenda, err := time.Parse("2006-01-02", req.DataVenda)
	if err != nil {
		return nil, apierror.Validationf("data_venda inválida: use o formato AAAA-MM-DD")
	}

	var transportadoraID *uuid.UUID
	if req.TransportadoraID != nil && *req.TransportadoraID != "" {
		tid, err := uuid.Parse(*req.TransportadoraID)
		if err != nil {
			return nil, apierror.Validationf("transportadora_id inválido")
		}
		if _, err := s.transportadoraRepo.FindByID(ctx, tid); err != nil {
			return nil, apierror.NotFoundf("Transportadora com ID %s não encontrada", *req.TransportadoraID)
		}
		transportadoraID = &tid
	}

	type resolvedItem struct {
		produtoID     uuid.UUID
		nome          string
		quantidade    int
		valorUnitario decimal.Decimal
		valorTotal    decimal.Decimal
	}

	var resolved []resolvedItem
	valorTotal := decimal.Zero
	for _, item := range req.Itens {
		if item.Quantidade <= 0 {
			return nil, apierror.Validationf("Quantidade deve ser maior que zero")
		}
		if !item.ValorUnitario.IsPositive() {
			return nil, apierror.Validationf("Valor unitário deve ser maior que zero")
		}
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, apierror.NotFoundf("Produto com ID %s não encontrado", item.ProdutoID)
		}
		p, err := s.produtoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, apierror.NotFoundf("Produto com ID %s não encontrado", item.ProdutoID)
		}
		lineTotal := item.ValorUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade)))
		valorTotal = valorTotal.Add(lineTotal)
		resolved = append(resolved, resolvedItem{
			produtoID:     pid,
			nome:          p.Nome,
			quantidade:    item.Quantidade,
			valorUnitario: item.ValorUnitario,
			valorTotal:    lineTotal,
		})
	}

	venda := model.Venda{
		ClienteID:        clienteID,
		ClienteUASG:      cliente.UASG,
		NumeroNF:         req.NumeroNF,
		TransportadoraID: transportadoraID,
		NumeroEmpenho:    req.NumeroEmpenho,
		DataVenda:        dataVenda,
		ValorTotal:       valorTotal,
		Status:           "pendente",
		Observacao:       req.Observacao,
	}
	for _, r := range resolved {
		venda.Itens = append(venda.Itens, model.VendaItem{
			ProdutoID:     r.produtoID,
			Quantidade:    r.quantidade,
			ValorUnitario: r.valorUnitario,
			ValorTotal:    r.valorTotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &venda); err != nil {
			return apierror.Infra(err)
		}
		if len(venda.Itens) == 0 {
			return apierror.Integrityf("Venda sem itens não pode ser registrada")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "vendas", venda.ID.String(), map[string]interface{}{
		"numero_nf":   venda.NumeroNF,
		"cliente":     cliente.NomeOrgao,
		"valor_total": venda.ValorTotal.String(),
		"itens":       len(venda.Itens),
	})

	resp := vendaToResponse(&venda)
	for i, r := range resolved {
		resp.Itens[i].Produto = r.nome
	}
	return resp, nil
}

// MarcarRecebida moves a pending sale to "recebido". Already-received sales
// are rejected.
func (s *vendaService) MarcarRecebida(ctx context.Context, actor Actor, id uuid.UUID) error {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFoundf("Venda com ID %s não encontrada", id)
	}
	if venda.Status == "recebido" {
		return apierror.Validationf("Venda já está marcada como recebida")
	}
	if err := s.repo.UpdateStatus(ctx, id, "recebido"); err != nil {
		return apierror.Infra(err)
	}
	appendAudit(ctx, s.auditRepo, actor, model.AuditUpdate, "vendas", id.String(), map[string]interface{}{
		"status": "recebido",
	})
	return nil
}

func (s *vendaService) BuscarVenda(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Venda com ID %s não encontrada", id)
	}
	return vendaToResponse(venda), nil
}

func (s *vendaService) ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	vendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	data := make([]dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		data = append(data, *vendaToResponse(&v))
	}
	return &dto.VendaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		itens = append(itens, dto.ItemVendaResponse{
			ProdutoID:     item.ProdutoID.String(),
			Produto:       nome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
		})
	}
	return &dto.VendaResponse{
		ID:            v.ID.String(),
		ClienteID:     v.ClienteID.String(),
		ClienteUASG:   v.ClienteUASG,
		NumeroNF:      v.NumeroNF,
		DataVenda:     v.DataVenda.Format("2006-01-02"),
		NumeroEmpenho: v.NumeroEmpenho,
		ValorTotal:    v.ValorTotal,
		Status:        v.Status,
		Itens:         itens,
		CreatedAt:     v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

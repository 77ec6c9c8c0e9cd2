package service

import (
	"bytes"
	"context"
	"errors"
	"time"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/infra"
	"licitasis/internal/model"
	"licitasis/internal/repository"
	"licitasis/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// diasVencimentoPadrao is the payable due offset used when the request does
// not set one.
const diasVencimentoPadrao = 30

type CompraService interface {
	RegistrarCompra(ctx context.Context, actor Actor, req dto.RegistrarCompraRequest, upload *dto.ComprovanteUpload) (*dto.CompraResponse, error)
	BuscarCompra(ctx context.Context, actor Actor, id uuid.UUID) (*dto.CompraResponse, error)
	ListarCompras(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
}

type compraService struct {
	repo           repository.CompraRepository
	fornecedorRepo repository.FornecedorRepository
	produtoRepo    repository.ProdutoRepository
	contaRepo      repository.ContaPagarRepository
	auditRepo      repository.AuditRepository
	storage        *infra.ComprovanteStorage
	dispatcher     *worker.Dispatcher
}

func NewCompraService(
	repo repository.CompraRepository,
	fornecedorRepo repository.FornecedorRepository,
	produtoRepo repository.ProdutoRepository,
	contaRepo repository.ContaPagarRepository,
	auditRepo repository.AuditRepository,
	storage *infra.ComprovanteStorage,
	dispatcher *worker.Dispatcher,
) CompraService {
	return &compraService{
		repo:           repo,
		fornecedorRepo: fornecedorRepo,
		produtoRepo:    produtoRepo,
		contaRepo:      contaRepo,
		auditRepo:      auditRepo,
		storage:        storage,
		dispatcher:     dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarCompra ───────────────────────────────────────────────────────────
// All-or-nothing purchase registration:
//   1. Resolve fornecedor and every produto, revalidating each line
//      (pre-flight, outside TX)
//   2. Stage the comprovante upload, if any
//   3. BEGIN TX: create header + items; create conta a pagar when the
//      purchase has no payment date
//   4. COMMIT — only then promote the staged upload into final storage
//   5. Append audit entry (best-effort)
//   6. (async) dispatch comprovante PDF job

func (s *compraService) RegistrarCompra(ctx context.Context, actor Actor, req dto.RegistrarCompraRequest, upload *dto.ComprovanteUpload) (*dto.CompraResponse, error) {
	fornecedorID, err := uuid.Parse(req.FornecedorID)
	if err != nil {
		return nil, apierror.Validationf("fornecedor_id inválido")
	}
	fornecedor, err := s.fornecedorRepo.FindByID(ctx, fornecedorID)
	if err != nil {
		return nil, apierror.NotFoundf("Fornecedor com ID %s não encontrado", req.FornecedorID)
	}

	dataCompra, err := time.Parse("2006-01-02", req.DataCompra)
	if err != nil {
		return nil, apierror.Validationf("data_compra inválida: use o formato AAAA-MM-DD")
	}

	// Pre-flight item resolution. Every line is revalidated against the
	// catalog even though the handler already checked the shapes: a purchase
	// with any bad line must not write anything.
	type resolvedItem struct {
		produtoID     uuid.UUID
		nome          string
		quantidade    int
		valorUnitario decimal.Decimal
		valorTotal    decimal.Decimal
	}

	var resolved []resolvedItem
	valorTotal := req.Frete
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
	if len(resolved) == 0 {
		return nil, apierror.Integrityf("Compra deve conter ao menos um item")
	}

	// Stage the upload before opening the transaction. Staged files are
	// discarded on any failure and promoted only after COMMIT, so a rolled
	// back purchase never leaves a file behind.
	staged := ""
	if upload != nil && len(upload.Conteudo) > 0 {
		staged, err = s.storage.Stage(upload.Filename, bytes.NewReader(upload.Conteudo))
		if err != nil {
			if errors.Is(err, infra.ErrExtensaoNaoPermitida) {
				return nil, apierror.Validationf("Tipo de arquivo não permitido: apenas jpg, jpeg, png e pdf")
			}
			return nil, apierror.Infra(err)
		}
	}

	dataPagamentoCompra, err := parseOptionalDate(req.DataPagamentoCompra)
	if err != nil {
		s.storage.Discard(staged)
		return nil, apierror.Validationf("data_pagamento_compra inválida: use o formato AAAA-MM-DD")
	}
	dataPagamentoFrete, err := parseOptionalDate(req.DataPagamentoFrete)
	if err != nil {
		s.storage.Discard(staged)
		return nil, apierror.Validationf("data_pagamento_frete inválida: use o formato AAAA-MM-DD")
	}

	compra := model.Compra{
		FornecedorID:        fornecedorID,
		FornecedorNome:      fornecedor.RazaoSocial,
		NumeroNF:            req.NumeroNF,
		DataCompra:          dataCompra,
		DataPagamentoCompra: dataPagamentoCompra,
		DataPagamentoFrete:  dataPagamentoFrete,
		Frete:               req.Frete,
		LinkPagamento:       req.LinkPagamento,
		NumeroEmpenho:       req.NumeroEmpenho,
		Observacao:          req.Observacao,
		// Legacy reports still read the first item's name off the header.
		Produto:    resolved[0].nome,
		ValorTotal: valorTotal,
	}
	for _, r := range resolved {
		compra.Itens = append(compra.Itens, model.CompraItem{
			ProdutoID:     r.produtoID,
			Quantidade:    r.quantidade,
			ValorUnitario: r.valorUnitario,
			ValorTotal:    r.valorTotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &compra); err != nil {
			return apierror.Infra(err)
		}
		// A header without line items must never survive the transaction.
		if len(compra.Itens) == 0 {
			return apierror.Integrityf("Compra sem itens não pode ser registrada")
		}
		// Purchases without a payment date generate a pending payable in the
		// same transaction.
		if compra.DataPagamentoCompra == nil {
			dias := req.DiasVencimento
			if dias <= 0 {
				dias = diasVencimentoPadrao
			}
			conta := &model.ContaPagar{
				CompraID:       &compra.ID,
				FornecedorNome: compra.FornecedorNome,
				NumeroNF:       compra.NumeroNF,
				Valor:          compra.ValorTotal,
				DataVencimento: dataCompra.AddDate(0, 0, dias),
				Status:         "pendente",
			}
			if err := s.contaRepo.CreateTx(tx, conta); err != nil {
				return apierror.Infra(err)
			}
		}
		return nil
	})
	if txErr != nil {
		s.storage.Discard(staged)
		return nil, txErr
	}

	// COMMIT done — promote the staged comprovante into final storage.
	if staged != "" {
		final, err := s.storage.Promote(staged)
		if err == nil {
			if err := s.repo.SetComprovantePath(ctx, compra.ID, final); err == nil {
				compra.ComprovantePath = &final
			}
		}
	}

	appendAudit(ctx, s.auditRepo, actor, model.AuditCreate, "compras", compra.ID.String(), map[string]interface{}{
		"numero_nf":   compra.NumeroNF,
		"fornecedor":  compra.FornecedorNome,
		"valor_total": compra.ValorTotal.String(),
		"itens":       len(compra.Itens),
	})

	// Async comprovante PDF job (best-effort, fire & forget).
	if s.dispatcher != nil {
		payload := worker.ComprovanteJobPayload{CompraID: compra.ID.String()}
		if fornecedor.Email != nil && *fornecedor.Email != "" {
			payload.FornecedorEmail = fornecedor.Email
		}
		_ = s.dispatcher.EnqueueComprovante(ctx, payload)
	}

	resp := compraToResponse(&compra)
	for i, r := range resolved {
		resp.Itens[i].Produto = r.nome
	}
	return resp, nil
}

func (s *compraService) BuscarCompra(ctx context.Context, actor Actor, id uuid.UUID) (*dto.CompraResponse, error) {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFoundf("Compra com ID %s não encontrada", id)
	}
	appendAudit(ctx, s.auditRepo, actor, model.AuditRead, "compras", compra.ID.String(), map[string]interface{}{
		"numero_nf": compra.NumeroNF,
	})
	return compraToResponse(compra), nil
}

func (s *compraService) ListarCompras(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	compras, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	data := make([]dto.CompraResponse, 0, len(compras))
	for _, c := range compras {
		data = append(data, *compraToResponse(&c))
	}
	return &dto.CompraListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func compraToResponse(c *model.Compra) *dto.CompraResponse {
	itens := make([]dto.ItemCompraResponse, 0, len(c.Itens))
	for _, item := range c.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		itens = append(itens, dto.ItemCompraResponse{
			ProdutoID:     item.ProdutoID.String(),
			Produto:       nome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
		})
	}
	return &dto.CompraResponse{
		ID:              c.ID.String(),
		FornecedorID:    c.FornecedorID.String(),
		FornecedorNome:  c.FornecedorNome,
		NumeroNF:        c.NumeroNF,
		DataCompra:      c.DataCompra.Format("2006-01-02"),
		Frete:           c.Frete,
		NumeroEmpenho:   c.NumeroEmpenho,
		Observacao:      c.Observacao,
		ValorTotal:      c.ValorTotal,
		ComprovantePath: c.ComprovantePath,
		Itens:           itens,
		CreatedAt:       c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package tests

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/infra"
	"licitasis/internal/model"
	"licitasis/internal/repository"
	"licitasis/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *stubCompraRepo) Create(_ context.Context, _ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) SetComprovantePath(_ context.Context, id uuid.UUID, path string) error {
	c, ok := r.compras[id]
	if !ok {
		return errors.New("record not found")
	}
	c.ComprovantePath = &path
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (r *stubCompraRepo) List(_ context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var out []model.Compra
	for _, c := range r.compras {
		if filter.NumeroNF != "" && c.NumeroNF != filter.NumeroNF {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

type stubContaPagarRepo struct {
	contas map[uuid.UUID]*model.ContaPagar
}

func newStubContaPagarRepo() *stubContaPagarRepo {
	return &stubContaPagarRepo{contas: make(map[uuid.UUID]*model.ContaPagar)}
}

func (r *stubContaPagarRepo) Create(_ context.Context, c *model.ContaPagar) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.contas[c.ID] = c
	return nil
}

func (r *stubContaPagarRepo) CreateTx(_ *gorm.DB, c *model.ContaPagar) error {
	return r.Create(context.Background(), c)
}

func (r *stubContaPagarRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ContaPagar, error) {
	c, ok := r.contas[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (r *stubContaPagarRepo) List(_ context.Context, filter dto.ContaPagarFilter) ([]model.ContaPagar, int64, error) {
	var out []model.ContaPagar
	for _, c := range r.contas {
		if filter.Status != "" && filter.Status != "all" && c.Status != filter.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubContaPagarRepo) ListVencidas(_ context.Context, ref time.Time, limit int) ([]model.ContaPagar, error) {
	var out []model.ContaPagar
	for _, c := range r.contas {
		if c.Status == "pendente" && c.DataVencimento.Before(ref) {
			out = append(out, *c)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubContaPagarRepo) Update(_ context.Context, c *model.ContaPagar) error {
	r.contas[c.ID] = c
	return nil
}

var _ repository.ContaPagarRepository = (*stubContaPagarRepo)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

type compraFixture struct {
	svc        service.CompraService
	compraRepo *stubCompraRepo
	contaRepo  *stubContaPagarRepo
	audit      *stubAuditRepo
	storageDir string

	fornecedor *model.Fornecedor
	produto    *model.Produto
}

func newCompraFixture(t *testing.T) *compraFixture {
	t.Helper()

	compraRepo := newStubCompraRepo()
	fornecedorRepo := newStubFornecedorRepo()
	produtoRepo := newStubProdutoRepo()
	contaRepo := newStubContaPagarRepo()
	audit := &stubAuditRepo{}
	dir := t.TempDir()
	storage := infra.NewComprovanteStorage(dir)

	email := "vendas@alfa.com.br"
	fornecedor := &model.Fornecedor{
		CNPJ:        "11222333000181",
		RazaoSocial: "Distribuidora Alfa LTDA",
		Email:       &email,
		Ativo:       true,
	}
	require.NoError(t, fornecedorRepo.Create(context.Background(), fornecedor))

	produto := &model.Produto{
		Codigo:        "CAD-001",
		Nome:          "Cadeira Giratória",
		Unidade:       "unidade",
		PrecoUnitario: decimal.RequireFromString("350.00"),
		Ativo:         true,
	}
	require.NoError(t, produtoRepo.Create(context.Background(), produto))

	svc := service.NewCompraService(compraRepo, fornecedorRepo, produtoRepo, contaRepo, audit, storage, nil)
	return &compraFixture{
		svc:        svc,
		compraRepo: compraRepo,
		contaRepo:  contaRepo,
		audit:      audit,
		storageDir: dir,
		fornecedor: fornecedor,
		produto:    produto,
	}
}

func (f *compraFixture) baseRequest() dto.RegistrarCompraRequest {
	return dto.RegistrarCompraRequest{
		FornecedorID: f.fornecedor.ID.String(),
		NumeroNF:     "NF-1001",
		DataCompra:   "2026-08-10",
		Frete:        decimal.RequireFromString("50.00"),
		Itens: []dto.ItemCompraRequest{
			{ProdutoID: f.produto.ID.String(), Quantidade: 4, ValorUnitario: decimal.RequireFromString("350.00")},
		},
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegistrarCompra_GeraContaPagar(t *testing.T) {
	f := newCompraFixture(t)

	resp, err := f.svc.RegistrarCompra(context.Background(), testActor(), f.baseRequest(), nil)
	require.NoError(t, err)

	// 4 × 350.00 + 50.00 frete
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("1450.00")),
		"valor total = %s", resp.ValorTotal)
	assert.Equal(t, f.fornecedor.RazaoSocial, resp.FornecedorNome)
	require.Len(t, resp.Itens, 1)
	assert.Equal(t, "Cadeira Giratória", resp.Itens[0].Produto)
	assert.True(t, resp.Itens[0].ValorTotal.Equal(decimal.RequireFromString("1400.00")))

	require.Len(t, f.compraRepo.compras, 1)
	for _, c := range f.compraRepo.compras {
		// legacy denormalized header column
		assert.Equal(t, "Cadeira Giratória", c.Produto)
	}

	// No payment date on the request → pending payable due in 30 days
	require.Len(t, f.contaRepo.contas, 1)
	for _, conta := range f.contaRepo.contas {
		assert.Equal(t, "pendente", conta.Status)
		assert.Equal(t, "NF-1001", conta.NumeroNF)
		assert.Equal(t, "2026-09-09", conta.DataVencimento.Format("2006-01-02"))
		assert.True(t, conta.Valor.Equal(decimal.RequireFromString("1450.00")))
		require.NotNil(t, conta.CompraID)
	}

	last := f.audit.last()
	require.NotNil(t, last)
	assert.Equal(t, model.AuditCreate, last.Acao)
	assert.Equal(t, "compras", last.Tabela)
}

func TestRegistrarCompra_DiasVencimentoCustomizado(t *testing.T) {
	f := newCompraFixture(t)

	req := f.baseRequest()
	req.DiasVencimento = 10
	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), req, nil)
	require.NoError(t, err)

	require.Len(t, f.contaRepo.contas, 1)
	for _, conta := range f.contaRepo.contas {
		assert.Equal(t, "2026-08-20", conta.DataVencimento.Format("2006-01-02"))
	}
}

func TestRegistrarCompra_ComDataPagamento_NaoGeraConta(t *testing.T) {
	f := newCompraFixture(t)

	pago := "2026-08-10"
	req := f.baseRequest()
	req.DataPagamentoCompra = &pago
	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), req, nil)
	require.NoError(t, err)

	assert.Len(t, f.compraRepo.compras, 1)
	assert.Empty(t, f.contaRepo.contas)
}

func TestRegistrarCompra_ProdutoInexistente_NadaGravado(t *testing.T) {
	f := newCompraFixture(t)

	fantasma := uuid.New().String()
	req := f.baseRequest()
	req.Itens = append(req.Itens, dto.ItemCompraRequest{
		ProdutoID:     fantasma,
		Quantidade:    2,
		ValorUnitario: decimal.RequireFromString("10.00"),
	})

	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), req, nil)
	require.Error(t, err)
	assert.Equal(t, "Produto com ID "+fantasma+" não encontrado", err.Error())

	var de *apierror.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, apierror.KindNotFound, de.Kind)

	// One bad line means zero rows anywhere.
	assert.Empty(t, f.compraRepo.compras)
	assert.Empty(t, f.contaRepo.contas)
	assert.Empty(t, f.audit.entries)
}

func TestRegistrarCompra_FornecedorInexistente(t *testing.T) {
	f := newCompraFixture(t)

	req := f.baseRequest()
	req.FornecedorID = uuid.New().String()
	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), req, nil)
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusFor(err))
	assert.Empty(t, f.compraRepo.compras)
}

func TestRegistrarCompra_QuantidadeZero(t *testing.T) {
	f := newCompraFixture(t)

	req := f.baseRequest()
	req.Itens[0].Quantidade = 0
	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), req, nil)
	require.Error(t, err)
	assert.Equal(t, "Quantidade deve ser maior que zero", err.Error())
	assert.Empty(t, f.compraRepo.compras)
}

func TestRegistrarCompra_ValorUnitarioZero(t *testing.T) {
	f := newCompraFixture(t)

	req := f.baseRequest()
	req.Itens[0].ValorUnitario = decimal.Zero
	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), req, nil)
	require.Error(t, err)
	assert.Equal(t, "Valor unitário deve ser maior que zero", err.Error())
	assert.Empty(t, f.compraRepo.compras)
}

func TestRegistrarCompra_LimiteInferiorAceito(t *testing.T) {
	f := newCompraFixture(t)

	// quantity 1 at R$ 0.01 is the smallest valid line
	req := f.baseRequest()
	req.Frete = decimal.Zero
	req.Itens[0].Quantidade = 1
	req.Itens[0].ValorUnitario = decimal.RequireFromString("0.01")

	resp, err := f.svc.RegistrarCompra(context.Background(), testActor(), req, nil)
	require.NoError(t, err)
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("0.01")))
}

func TestRegistrarCompra_NFDuplicadaPermitida(t *testing.T) {
	f := newCompraFixture(t)

	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), f.baseRequest(), nil)
	require.NoError(t, err)

	// Same NF again: resubmissions are legitimate, both must persist.
	_, err = f.svc.RegistrarCompra(context.Background(), testActor(), f.baseRequest(), nil)
	require.NoError(t, err)

	compras, total, err := f.compraRepo.List(context.Background(), dto.CompraFilter{NumeroNF: "NF-1001"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, compras, 2)
}

func TestRegistrarCompra_ComprovanteExtensaoRejeitada(t *testing.T) {
	f := newCompraFixture(t)

	upload := &dto.ComprovanteUpload{Filename: "comprovante.exe", Conteudo: []byte("MZ")}
	_, err := f.svc.RegistrarCompra(context.Background(), testActor(), f.baseRequest(), upload)
	require.Error(t, err)
	assert.Equal(t, "Tipo de arquivo não permitido: apenas jpg, jpeg, png e pdf", err.Error())
	assert.Equal(t, 400, apierror.StatusFor(err))

	// Rejected before any write: no purchase, no payable, no leftover file.
	assert.Empty(t, f.compraRepo.compras)
	assert.Empty(t, f.contaRepo.contas)
	entries, err := os.ReadDir(filepath.Join(f.storageDir, "staging"))
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestRegistrarCompra_ComprovantePromovido(t *testing.T) {
	f := newCompraFixture(t)

	upload := &dto.ComprovanteUpload{Filename: "nota.pdf", Conteudo: []byte("%PDF-1.4 teste")}
	resp, err := f.svc.RegistrarCompra(context.Background(), testActor(), f.baseRequest(), upload)
	require.NoError(t, err)

	require.NotNil(t, resp.ComprovantePath)
	data, err := os.ReadFile(*resp.ComprovantePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 teste"), data)

	// Staging area must be empty after promotion.
	staged, err := os.ReadDir(filepath.Join(f.storageDir, "staging"))
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestBuscarCompra_RegistraLeituraNaAuditoria(t *testing.T) {
	f := newCompraFixture(t)

	created, err := f.svc.RegistrarCompra(context.Background(), testActor(), f.baseRequest(), nil)
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	found, err := f.svc.BuscarCompra(context.Background(), testActor(), id)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "NF-1001", found.NumeroNF)

	last := f.audit.last()
	require.NotNil(t, last)
	assert.Equal(t, model.AuditRead, last.Acao)
	assert.Equal(t, created.ID, last.RegistroID)
}

func TestBuscarCompra_Inexistente(t *testing.T) {
	f := newCompraFixture(t)

	_, err := f.svc.BuscarCompra(context.Background(), testActor(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusFor(err))
}

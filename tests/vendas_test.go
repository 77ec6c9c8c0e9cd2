package tests

import (
	"context"
	"errors"
	"testing"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
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

type stubVendaRepo struct {
	vendas map[uuid.UUID]*model.Venda
}

func newStubVendaRepo() *stubVendaRepo {
	return &stubVendaRepo{vendas: make(map[uuid.UUID]*model.Venda)}
}

func (r *stubVendaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendas[v.ID] = v
	return nil
}

func (r *stubVendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return v, nil
}

func (r *stubVendaRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	v, ok := r.vendas[id]
	if !ok {
		return errors.New("record not found")
	}
	v.Status = status
	return nil
}

func (r *stubVendaRepo) List(_ context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var out []model.Venda
	for _, v := range r.vendas {
		if filter.Status != "" && filter.Status != "all" && v.Status != filter.Status {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVendaRepo) DB() *gorm.DB { return nil }

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

type vendaFixture struct {
	svc       service.VendaService
	vendaRepo *stubVendaRepo
	audit     *stubAuditRepo

	cliente        *model.Cliente
	produto        *model.Produto
	transportadora *model.Transportadora
}

func newVendaFixture(t *testing.T) *vendaFixture {
	t.Helper()

	vendaRepo := newStubVendaRepo()
	clienteRepo := newStubClienteRepo()
	produtoRepo := newStubProdutoRepo()
	transportadoraRepo := newStubTransportadoraRepo()
	audit := &stubAuditRepo{}

	cliente := &model.Cliente{UASG: "986531", NomeOrgao: "Prefeitura Municipal de Sobral"}
	require.NoError(t, clienteRepo.Create(context.Background(), cliente))

	produto := &model.Produto{
		Codigo:        "MESA-010",
		Nome:          "Mesa de Reunião",
		Unidade:       "unidade",
		PrecoUnitario: decimal.RequireFromString("1200.00"),
		Ativo:         true,
	}
	require.NoError(t, produtoRepo.Create(context.Background(), produto))

	transportadora := &model.Transportadora{
		CNPJ:        "11444777000161",
		RazaoSocial: "Transporte Rápido LTDA",
		Ativo:       true,
	}
	require.NoError(t, transportadoraRepo.Create(context.Background(), transportadora))

	svc := service.NewVendaService(vendaRepo, clienteRepo, produtoRepo, transportadoraRepo, audit)
	return &vendaFixture{
		svc:            svc,
		vendaRepo:      vendaRepo,
		audit:          audit,
		cliente:        cliente,
		produto:        produto,
		transportadora: transportadora,
	}
}

func (f *vendaFixture) baseRequest() dto.RegistrarVendaRequest {
	return dto.RegistrarVendaRequest{
		ClienteID: f.cliente.ID.String(),
		NumeroNF:  "NF-2001",
		DataVenda: "2026-08-15",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: f.produto.ID.String(), Quantidade: 2, ValorUnitario: decimal.RequireFromString("1200.00")},
		},
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegistrarVenda_DenormalizaUASG(t *testing.T) {
	f := newVendaFixture(t)

	resp, err := f.svc.RegistrarVenda(context.Background(), testActor(), f.baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "986531", resp.ClienteUASG)
	assert.Equal(t, "pendente", resp.Status)
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("2400.00")))
	require.Len(t, resp.Itens, 1)
	assert.Equal(t, "Mesa de Reunião", resp.Itens[0].Produto)

	last := f.audit.last()
	require.NotNil(t, last)
	assert.Equal(t, model.AuditCreate, last.Acao)
	assert.Equal(t, "vendas", last.Tabela)
}

func TestRegistrarVenda_ComTransportadora(t *testing.T) {
	f := newVendaFixture(t)

	tid := f.transportadora.ID.String()
	req := f.baseRequest()
	req.TransportadoraID = &tid
	resp, err := f.svc.RegistrarVenda(context.Background(), testActor(), req)
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	venda, err := f.vendaRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, venda.TransportadoraID)
	assert.Equal(t, f.transportadora.ID, *venda.TransportadoraID)
}

func TestRegistrarVenda_TransportadoraInexistente(t *testing.T) {
	f := newVendaFixture(t)

	tid := uuid.New().String()
	req := f.baseRequest()
	req.TransportadoraID = &tid
	_, err := f.svc.RegistrarVenda(context.Background(), testActor(), req)
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusFor(err))
	assert.Empty(t, f.vendaRepo.vendas)
}

func TestRegistrarVenda_ProdutoInexistente_NadaGravado(t *testing.T) {
	f := newVendaFixture(t)

	fantasma := uuid.New().String()
	req := f.baseRequest()
	req.Itens = []dto.ItemVendaRequest{
		{ProdutoID: fantasma, Quantidade: 1, ValorUnitario: decimal.RequireFromString("10.00")},
	}
	_, err := f.svc.RegistrarVenda(context.Background(), testActor(), req)
	require.Error(t, err)
	assert.Equal(t, "Produto com ID "+fantasma+" não encontrado", err.Error())
	assert.Empty(t, f.vendaRepo.vendas)
	assert.Empty(t, f.audit.entries)
}

func TestRegistrarVenda_QuantidadeInvalida(t *testing.T) {
	f := newVendaFixture(t)

	req := f.baseRequest()
	req.Itens[0].Quantidade = -1
	_, err := f.svc.RegistrarVenda(context.Background(), testActor(), req)
	require.Error(t, err)
	assert.Equal(t, "Quantidade deve ser maior que zero", err.Error())
}

func TestMarcarRecebida(t *testing.T) {
	f := newVendaFixture(t)

	resp, err := f.svc.RegistrarVenda(context.Background(), testActor(), f.baseRequest())
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.MarcarRecebida(context.Background(), testActor(), id))

	venda, err := f.vendaRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "recebido", venda.Status)

	// Second receipt must be rejected.
	err = f.svc.MarcarRecebida(context.Background(), testActor(), id)
	require.Error(t, err)
	assert.Equal(t, "Venda já está marcada como recebida", err.Error())
}

func TestMarcarRecebida_VendaInexistente(t *testing.T) {
	f := newVendaFixture(t)

	err := f.svc.MarcarRecebida(context.Background(), testActor(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusFor(err))
}

func TestListarVendas_FiltroStatus(t *testing.T) {
	f := newVendaFixture(t)

	r1, err := f.svc.RegistrarVenda(context.Background(), testActor(), f.baseRequest())
	require.NoError(t, err)

	req2 := f.baseRequest()
	req2.NumeroNF = "NF-2002"
	_, err = f.svc.RegistrarVenda(context.Background(), testActor(), req2)
	require.NoError(t, err)

	id1, err := uuid.Parse(r1.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.MarcarRecebida(context.Background(), testActor(), id1))

	list, err := f.svc.ListarVendas(context.Background(), dto.VendaFilter{Status: "pendente"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "NF-2002", list.Data[0].NumeroNF)
}

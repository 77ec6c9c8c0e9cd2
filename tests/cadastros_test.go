package tests

import (
	"context"
	"testing"

	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Produtos ──────────────────────────────────────────────────────────────────

func newProdutoFixture() (service.ProdutoService, *stubProdutoRepo, *stubFornecedorRepo, *stubAuditRepo) {
	produtoRepo := newStubProdutoRepo()
	fornecedorRepo := newStubFornecedorRepo()
	audit := &stubAuditRepo{}
	return service.NewProdutoService(produtoRepo, fornecedorRepo, audit), produtoRepo, fornecedorRepo, audit
}

func TestCriarProduto(t *testing.T) {
	svc, _, fornecedorRepo, audit := newProdutoFixture()

	fornecedor := &model.Fornecedor{CNPJ: "11222333000181", RazaoSocial: "Alfa Móveis Ltda", Ativo: true}
	require.NoError(t, fornecedorRepo.Create(context.Background(), fornecedor))
	fid := fornecedor.ID.String()

	resp, err := svc.CriarProduto(context.Background(), testActor(), dto.CriarProdutoRequest{
		Codigo:        "CAD-001",
		Nome:          "Cadeira Giratória",
		PrecoUnitario: decimal.NewFromFloat(350.00),
		FornecedorID:  &fid,
	})
	require.NoError(t, err)
	assert.True(t, resp.Ativo)
	assert.Equal(t, "unidade", resp.Unidade, "unidade defaults when omitted")
	require.NotNil(t, resp.FornecedorID)
	assert.Equal(t, fid, *resp.FornecedorID)

	last := audit.last()
	require.NotNil(t, last)
	assert.Equal(t, model.AuditCreate, last.Acao)
	assert.Equal(t, "produtos", last.Tabela)
}

func TestCriarProduto_CodigoDuplicado(t *testing.T) {
	svc, _, _, _ := newProdutoFixture()

	_, err := svc.CriarProduto(context.Background(), testActor(), dto.CriarProdutoRequest{
		Codigo:        "CAD-001",
		Nome:          "Cadeira Giratória",
		PrecoUnitario: decimal.NewFromFloat(350.00),
	})
	require.NoError(t, err)

	_, err = svc.CriarProduto(context.Background(), testActor(), dto.CriarProdutoRequest{
		Codigo:        "CAD-001",
		Nome:          "Cadeira Fixa",
		PrecoUnitario: decimal.NewFromFloat(210.00),
	})
	require.Error(t, err)
	assert.Equal(t, "Produto com código CAD-001 já cadastrado", err.Error())
}

func TestCriarProduto_FornecedorInexistente(t *testing.T) {
	svc, _, _, _ := newProdutoFixture()

	fid := uuid.New().String()
	_, err := svc.CriarProduto(context.Background(), testActor(), dto.CriarProdutoRequest{
		Codigo:        "CAD-002",
		Nome:          "Cadeira Fixa",
		PrecoUnitario: decimal.NewFromFloat(210.00),
		FornecedorID:  &fid,
	})
	require.Error(t, err)
	assert.Equal(t, "Fornecedor com ID "+fid+" não encontrado", err.Error())
}

func TestDesativarProduto_SomeDaListagem(t *testing.T) {
	svc, _, _, audit := newProdutoFixture()

	resp, err := svc.CriarProduto(context.Background(), testActor(), dto.CriarProdutoRequest{
		Codigo:        "CAD-003",
		Nome:          "Armário de Aço",
		PrecoUnitario: decimal.NewFromFloat(899.90),
	})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	require.NoError(t, svc.DesativarProduto(context.Background(), testActor(), id))

	lista, err := svc.ListarProdutos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lista)

	last := audit.last()
	require.NotNil(t, last)
	assert.Equal(t, model.AuditDelete, last.Acao)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func newClienteFixture() (service.ClienteService, *stubClienteRepo, *stubAuditRepo) {
	repo := newStubClienteRepo()
	audit := &stubAuditRepo{}
	return service.NewClienteService(repo, audit), repo, audit
}

func TestCriarCliente(t *testing.T) {
	svc, _, audit := newClienteFixture()

	doc := "11.444.777/0001-61"
	resp, err := svc.CriarCliente(context.Background(), testActor(), dto.CriarClienteRequest{
		UASG:      "986531",
		NomeOrgao: "Prefeitura Municipal de Sobral",
		CNPJ:      &doc,
	})
	require.NoError(t, err)
	assert.Equal(t, "986531", resp.UASG)
	require.NotNil(t, resp.CNPJ)
	assert.Equal(t, "11444777000161", *resp.CNPJ, "CNPJ stored without mask")

	last := audit.last()
	require.NotNil(t, last)
	assert.Equal(t, "clientes", last.Tabela)
	assert.Equal(t, model.AuditCreate, last.Acao)
}

func TestCriarCliente_UASGDuplicada(t *testing.T) {
	svc, _, _ := newClienteFixture()

	_, err := svc.CriarCliente(context.Background(), testActor(), dto.CriarClienteRequest{
		UASG:      "153045",
		NomeOrgao: "Universidade Federal do Ceará",
	})
	require.NoError(t, err)

	_, err = svc.CriarCliente(context.Background(), testActor(), dto.CriarClienteRequest{
		UASG:      "153045",
		NomeOrgao: "Outro Órgão",
	})
	require.Error(t, err)
	assert.Equal(t, "Cliente com UASG 153045 já cadastrado", err.Error())
}

func TestCriarCliente_CNPJInvalido(t *testing.T) {
	svc, _, _ := newClienteFixture()

	doc := "11.222.333/0001-80"
	_, err := svc.CriarCliente(context.Background(), testActor(), dto.CriarClienteRequest{
		UASG:      "927001",
		NomeOrgao: "Câmara Municipal",
		CNPJ:      &doc,
	})
	require.Error(t, err)
	assert.Equal(t, "CNPJ inválido", err.Error())
}

func TestRemoverCliente(t *testing.T) {
	svc, repo, audit := newClienteFixture()

	resp, err := svc.CriarCliente(context.Background(), testActor(), dto.CriarClienteRequest{
		UASG:      "158565",
		NomeOrgao: "Instituto Federal do Piauí",
	})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	require.NoError(t, svc.RemoverCliente(context.Background(), testActor(), id))

	_, err = repo.FindByID(context.Background(), id)
	require.Error(t, err, "clientes are hard-deleted")

	last := audit.last()
	require.NotNil(t, last)
	assert.Equal(t, model.AuditDelete, last.Acao)
}

// ── Transportadoras ───────────────────────────────────────────────────────────

func newTransportadoraFixture() (service.TransportadoraService, *stubTransportadoraRepo, *stubAuditRepo) {
	repo := newStubTransportadoraRepo()
	audit := &stubAuditRepo{}
	return service.NewTransportadoraService(repo, audit), repo, audit
}

func TestCriarTransportadora(t *testing.T) {
	svc, _, audit := newTransportadoraFixture()

	resp, err := svc.CriarTransportadora(context.Background(), testActor(), dto.CriarTransportadoraRequest{
		CNPJ:        "11.444.777/0001-61",
		RazaoSocial: "Rápido Nordeste Transportes Ltda",
	})
	require.NoError(t, err)
	assert.Equal(t, "11444777000161", resp.CNPJ)
	assert.True(t, resp.Ativo)

	last := audit.last()
	require.NotNil(t, last)
	assert.Equal(t, "transportadoras", last.Tabela)
}

func TestCriarTransportadora_CNPJDuplicado(t *testing.T) {
	svc, _, _ := newTransportadoraFixture()

	_, err := svc.CriarTransportadora(context.Background(), testActor(), dto.CriarTransportadoraRequest{
		CNPJ:        "11444777000161",
		RazaoSocial: "Rápido Nordeste Transportes Ltda",
	})
	require.NoError(t, err)

	_, err = svc.CriarTransportadora(context.Background(), testActor(), dto.CriarTransportadoraRequest{
		CNPJ:        "11.444.777/0001-61",
		RazaoSocial: "Homônima Transportes",
	})
	require.Error(t, err)
	assert.Equal(t, "Transportadora com CNPJ 11.444.777/0001-61 já cadastrada", err.Error())
}

func TestDesativarTransportadora(t *testing.T) {
	svc, _, _ := newTransportadoraFixture()

	resp, err := svc.CriarTransportadora(context.Background(), testActor(), dto.CriarTransportadoraRequest{
		CNPJ:        "11222333000181",
		RazaoSocial: "Alfa Logística Ltda",
	})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	require.NoError(t, svc.DesativarTransportadora(context.Background(), testActor(), id))

	lista, err := svc.ListarTransportadoras(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lista)
}

package tests

// Shared in-memory repository stubs. All stubs return DB() == nil so the
// services run their transaction bodies directly, letting us assert exactly
// what would have been written.

import (
	"context"
	"errors"

	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"
	"licitasis/internal/service"

	"github.com/google/uuid"
)

func testActor() service.Actor {
	return service.Actor{ID: uuid.New(), Nome: "Usuária de Teste"}
}

// ── Audit ─────────────────────────────────────────────────────────────────────

type stubAuditRepo struct {
	entries []model.AuditLog
}

func (r *stubAuditRepo) Append(_ context.Context, entry *model.AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubAuditRepo) List(_ context.Context, filter dto.AuditFilter) ([]model.AuditLog, int64, error) {
	var out []model.AuditLog
	for _, e := range r.entries {
		if filter.Tabela != "" && e.Tabela != filter.Tabela {
			continue
		}
		if filter.RegistroID != "" && e.RegistroID != filter.RegistroID {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

// last returns the most recent entry, or nil.
func (r *stubAuditRepo) last() *model.AuditLog {
	if len(r.entries) == 0 {
		return nil
	}
	return &r.entries[len(r.entries)-1]
}

var _ repository.AuditRepository = (*stubAuditRepo)(nil)

// ── Produto ───────────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *stubProdutoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubProdutoRepo) List(_ context.Context) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.Ativo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.produtos[id]
	if !ok {
		return errors.New("record not found")
	}
	p.Ativo = false
	return nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── Fornecedor ────────────────────────────────────────────────────────────────

type stubFornecedorRepo struct {
	fornecedores map[uuid.UUID]*model.Fornecedor
}

func newStubFornecedorRepo() *stubFornecedorRepo {
	return &stubFornecedorRepo{fornecedores: make(map[uuid.UUID]*model.Fornecedor)}
}

func (r *stubFornecedorRepo) Create(_ context.Context, f *model.Fornecedor) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fornecedores[f.ID] = f
	return nil
}

func (r *stubFornecedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	f, ok := r.fornecedores[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return f, nil
}

func (r *stubFornecedorRepo) FindByCNPJ(_ context.Context, doc string) (*model.Fornecedor, error) {
	for _, f := range r.fornecedores {
		if f.CNPJ == doc && f.Ativo {
			return f, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubFornecedorRepo) List(_ context.Context) ([]model.Fornecedor, error) {
	var out []model.Fornecedor
	for _, f := range r.fornecedores {
		if f.Ativo {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *stubFornecedorRepo) Update(_ context.Context, f *model.Fornecedor) error {
	r.fornecedores[f.ID] = f
	return nil
}

func (r *stubFornecedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	f, ok := r.fornecedores[id]
	if !ok {
		return errors.New("record not found")
	}
	f.Ativo = false
	return nil
}

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

// ── Cliente ───────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (r *stubClienteRepo) FindByUASG(_ context.Context, uasg string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.UASG == uasg {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Transportadora ────────────────────────────────────────────────────────────

type stubTransportadoraRepo struct {
	transportadoras map[uuid.UUID]*model.Transportadora
}

func newStubTransportadoraRepo() *stubTransportadoraRepo {
	return &stubTransportadoraRepo{transportadoras: make(map[uuid.UUID]*model.Transportadora)}
}

func (r *stubTransportadoraRepo) Create(_ context.Context, t *model.Transportadora) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.transportadoras[t.ID] = t
	return nil
}

func (r *stubTransportadoraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transportadora, error) {
	t, ok := r.transportadoras[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return t, nil
}

func (r *stubTransportadoraRepo) FindByCNPJ(_ context.Context, doc string) (*model.Transportadora, error) {
	for _, t := range r.transportadoras {
		if t.CNPJ == doc && t.Ativo {
			return t, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubTransportadoraRepo) List(_ context.Context) ([]model.Transportadora, error) {
	var out []model.Transportadora
	for _, t := range r.transportadoras {
		if t.Ativo {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTransportadoraRepo) Update(_ context.Context, t *model.Transportadora) error {
	r.transportadoras[t.ID] = t
	return nil
}

func (r *stubTransportadoraRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	t, ok := r.transportadoras[id]
	if !ok {
		return errors.New("record not found")
	}
	t.Ativo = false
	return nil
}

var _ repository.TransportadoraRepository = (*stubTransportadoraRepo)(nil)

package tests

import (
	"context"
	"errors"
	"fmt"
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
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubEmpenhoRepo struct {
	empenhos map[uuid.UUID]*model.Empenho
}

func newStubEmpenhoRepo() *stubEmpenhoRepo {
	return &stubEmpenhoRepo{empenhos: make(map[uuid.UUID]*model.Empenho)}
}

func (r *stubEmpenhoRepo) Create(_ context.Context, e *model.Empenho) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empenhos[e.ID] = e
	return nil
}

func (r *stubEmpenhoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Empenho, error) {
	e, ok := r.empenhos[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return e, nil
}

func (r *stubEmpenhoRepo) FindByNumero(_ context.Context, numero string) (*model.Empenho, error) {
	for _, e := range r.empenhos {
		if e.Numero == numero {
			return e, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubEmpenhoRepo) List(_ context.Context, status string) ([]model.Empenho, error) {
	var out []model.Empenho
	for _, e := range r.empenhos {
		if status != "" && status != "all" && e.Status != status {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmpenhoRepo) Update(_ context.Context, e *model.Empenho) error {
	r.empenhos[e.ID] = e
	return nil
}

var _ repository.EmpenhoRepository = (*stubEmpenhoRepo)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

func newEmpenhoFixture(t *testing.T) (service.EmpenhoService, *stubEmpenhoRepo, *model.Cliente) {
	t.Helper()

	repo := newStubEmpenhoRepo()
	clienteRepo := newStubClienteRepo()
	audit := &stubAuditRepo{}

	cliente := &model.Cliente{UASG: "153045", NomeOrgao: "Universidade Federal do Ceará"}
	require.NoError(t, clienteRepo.Create(context.Background(), cliente))

	return service.NewEmpenhoService(repo, clienteRepo, audit), repo, cliente
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCriarEmpenho(t *testing.T) {
	svc, _, cliente := newEmpenhoFixture(t)

	resp, err := svc.CriarEmpenho(context.Background(), testActor(), dto.CriarEmpenhoRequest{
		Numero:    "2026NE000123",
		ClienteID: cliente.ID.String(),
		Valor:     decimal.RequireFromString("15000.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pendente", resp.Status)
	assert.Equal(t, "153045", resp.UASG)
}

func TestCriarEmpenho_NumeroDuplicado(t *testing.T) {
	svc, _, cliente := newEmpenhoFixture(t)

	req := dto.CriarEmpenhoRequest{
		Numero:    "2026NE000123",
		ClienteID: cliente.ID.String(),
		Valor:     decimal.RequireFromString("15000.00"),
	}
	_, err := svc.CriarEmpenho(context.Background(), testActor(), req)
	require.NoError(t, err)

	_, err = svc.CriarEmpenho(context.Background(), testActor(), req)
	require.Error(t, err)
	assert.Equal(t, "Empenho com número 2026NE000123 já cadastrado", err.Error())
	assert.Equal(t, 400, apierror.StatusFor(err))
}

func TestAtualizarStatus_CicloCompleto(t *testing.T) {
	svc, _, cliente := newEmpenhoFixture(t)

	resp, err := svc.CriarEmpenho(context.Background(), testActor(), dto.CriarEmpenhoRequest{
		Numero:    "2026NE000200",
		ClienteID: cliente.ID.String(),
		Valor:     decimal.RequireFromString("8000.00"),
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	// walk the whole lifecycle one step at a time
	for _, next := range []string{"faturado", "entregue", "liquidado", "pago"} {
		updated, err := svc.AtualizarStatus(context.Background(), testActor(), id, dto.AtualizarStatusEmpenhoRequest{Status: next})
		require.NoError(t, err, "transição para %s", next)
		assert.Equal(t, next, updated.Status)
	}
}

func TestAtualizarStatus_PuloRejeitado(t *testing.T) {
	svc, _, cliente := newEmpenhoFixture(t)

	resp, err := svc.CriarEmpenho(context.Background(), testActor(), dto.CriarEmpenhoRequest{
		Numero:    "2026NE000201",
		ClienteID: cliente.ID.String(),
		Valor:     decimal.RequireFromString("8000.00"),
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	// pendente → entregue skips faturado
	_, err = svc.AtualizarStatus(context.Background(), testActor(), id, dto.AtualizarStatusEmpenhoRequest{Status: "entregue"})
	require.Error(t, err)
	assert.Equal(t, "Transição de status inválida: de pendente para entregue", err.Error())

	atual, err := svc.BuscarEmpenho(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "pendente", atual.Status)
}

func TestAtualizarStatus_RetrocessoRejeitado(t *testing.T) {
	svc, _, cliente := newEmpenhoFixture(t)

	resp, err := svc.CriarEmpenho(context.Background(), testActor(), dto.CriarEmpenhoRequest{
		Numero:    "2026NE000202",
		ClienteID: cliente.ID.String(),
		Valor:     decimal.RequireFromString("8000.00"),
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	_, err = svc.AtualizarStatus(context.Background(), testActor(), id, dto.AtualizarStatusEmpenhoRequest{Status: "faturado"})
	require.NoError(t, err)

	_, err = svc.AtualizarStatus(context.Background(), testActor(), id, dto.AtualizarStatusEmpenhoRequest{Status: "pendente"})
	require.Error(t, err)
	assert.Equal(t, "Transição de status inválida: de faturado para pendente", err.Error())
}

func TestAtualizarStatus_PagoEstadoFinal(t *testing.T) {
	svc, _, cliente := newEmpenhoFixture(t)

	resp, err := svc.CriarEmpenho(context.Background(), testActor(), dto.CriarEmpenhoRequest{
		Numero:    "2026NE000203",
		ClienteID: cliente.ID.String(),
		Valor:     decimal.RequireFromString("500.00"),
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	for _, next := range []string{"faturado", "entregue", "liquidado", "pago"} {
		_, err = svc.AtualizarStatus(context.Background(), testActor(), id, dto.AtualizarStatusEmpenhoRequest{Status: next})
		require.NoError(t, err)
	}

	// nothing follows "pago"
	for _, st := range model.EmpenhoStatusSeq {
		_, err = svc.AtualizarStatus(context.Background(), testActor(), id, dto.AtualizarStatusEmpenhoRequest{Status: st})
		require.Error(t, err, "pago → %s deveria ser rejeitado", st)
	}
}

func TestListarEmpenhos_FiltroStatus(t *testing.T) {
	svc, _, cliente := newEmpenhoFixture(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CriarEmpenho(context.Background(), testActor(), dto.CriarEmpenhoRequest{
			Numero:    fmt.Sprintf("2026NE0003%02d", i),
			ClienteID: cliente.ID.String(),
			Valor:     decimal.RequireFromString("100.00"),
		})
		require.NoError(t, err)
	}

	pendentes, err := svc.ListarEmpenhos(context.Background(), "pendente")
	require.NoError(t, err)
	assert.Len(t, pendentes, 3)

	pagos, err := svc.ListarEmpenhos(context.Background(), "pago")
	require.NoError(t, err)
	assert.Empty(t, pagos)
}

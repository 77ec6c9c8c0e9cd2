package worker

import (
	"context"
	"testing"
	"time"

	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sweepContaRepo struct {
	contas  map[uuid.UUID]*model.ContaPagar
	updates int
}

func newSweepContaRepo() *sweepContaRepo {
	return &sweepContaRepo{contas: make(map[uuid.UUID]*model.ContaPagar)}
}

func (r *sweepContaRepo) Create(_ context.Context, c *model.ContaPagar) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.contas[c.ID] = c
	return nil
}

func (r *sweepContaRepo) CreateTx(_ *gorm.DB, c *model.ContaPagar) error {
	return r.Create(context.Background(), c)
}

func (r *sweepContaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ContaPagar, error) {
	return r.contas[id], nil
}

func (r *sweepContaRepo) List(_ context.Context, _ dto.ContaPagarFilter) ([]model.ContaPagar, int64, error) {
	return nil, 0, nil
}

func (r *sweepContaRepo) ListVencidas(_ context.Context, ref time.Time, limit int) ([]model.ContaPagar, error) {
	var out []model.ContaPagar
	for _, c := range r.contas {
		if c.Status == "pendente" && c.DataVencimento.Before(ref) {
			out = append(out, *c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *sweepContaRepo) Update(_ context.Context, c *model.ContaPagar) error {
	r.contas[c.ID] = c
	r.updates++
	return nil
}

var _ repository.ContaPagarRepository = (*sweepContaRepo)(nil)

func seedConta(t *testing.T, repo *sweepContaRepo, nf string, vencimento time.Time) uuid.UUID {
	t.Helper()
	c := &model.ContaPagar{
		FornecedorNome: "Alfa Móveis Ltda",
		NumeroNF:       nf,
		Valor:          decimal.NewFromFloat(1450.00),
		DataVencimento: vencimento,
		Status:         "pendente",
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c.ID
}

func TestProcessVencidas_MarcaVencida(t *testing.T) {
	repo := newSweepContaRepo()
	vencidaID := seedConta(t, repo, "NF-900", time.Now().AddDate(0, 0, -3))
	futuraID := seedConta(t, repo, "NF-901", time.Now().AddDate(0, 0, 7))

	processVencidas(context.Background(), AlertaCronConfig{ContaRepo: repo})

	assert.Equal(t, "vencida", repo.contas[vencidaID].Status)
	assert.Equal(t, "pendente", repo.contas[futuraID].Status, "future due dates are untouched")
	assert.Equal(t, 1, repo.updates)
}

func TestProcessVencidas_JaVencidaNaoReprocessa(t *testing.T) {
	repo := newSweepContaRepo()
	id := seedConta(t, repo, "NF-902", time.Now().AddDate(0, 0, -1))

	processVencidas(context.Background(), AlertaCronConfig{ContaRepo: repo})
	require.Equal(t, "vencida", repo.contas[id].Status)

	// second tick: the row no longer matches the pendente filter
	processVencidas(context.Background(), AlertaCronConfig{ContaRepo: repo})
	assert.Equal(t, 1, repo.updates)
}

func TestProcessVencidas_SemDispatcherNaoMarcaAlerta(t *testing.T) {
	repo := newSweepContaRepo()
	id := seedConta(t, repo, "NF-903", time.Now().AddDate(0, 0, -1))

	processVencidas(context.Background(), AlertaCronConfig{ContaRepo: repo, AlertaEmail: "financeiro@licitasis.com.br"})

	c := repo.contas[id]
	assert.Equal(t, "vencida", c.Status)
	assert.False(t, c.AlertaEnviado, "no dispatcher wired, alert stays unsent for the next tick")
}

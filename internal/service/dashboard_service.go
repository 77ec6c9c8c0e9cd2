package service

import (
	"context"
	"time"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/model"
	"licitasis/internal/repository"
)

type DashboardService interface {
	Resumo(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// Resumo aggregates the landing-page counters. Counts run sequentially on one
// connection; the dashboard is not a hot path.
func (s *dashboardService) Resumo(ctx context.Context) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	counts := []struct {
		dst *int64
		mdl interface{}
	}{
		{&resp.Clientes, &model.Cliente{}},
		{&resp.Produtos, &model.Produto{}},
		{&resp.Fornecedores, &model.Fornecedor{}},
		{&resp.Transportadoras, &model.Transportadora{}},
		{&resp.Compras, &model.Compra{}},
		{&resp.Vendas, &model.Venda{}},
		{&resp.Empenhos, &model.Empenho{}},
		{&resp.ContasPagar, &model.ContaPagar{}},
	}
	for _, c := range counts {
		n, err := s.repo.Count(ctx, c.mdl)
		if err != nil {
			return nil, apierror.Infra(err)
		}
		*c.dst = n
	}

	var err error
	resp.EmpenhosPendentes, err = s.repo.CountWhere(ctx, &model.Empenho{}, "status = ?", "pendente")
	if err != nil {
		return nil, apierror.Infra(err)
	}
	resp.ContasVencidas, err = s.repo.CountWhere(ctx, &model.ContaPagar{}, "status = ?", "vencida")
	if err != nil {
		return nil, apierror.Infra(err)
	}

	now := time.Now()
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	resp.ComprasMes, err = s.repo.SumComprasDesde(ctx, inicioMes)
	if err != nil {
		return nil, apierror.Infra(err)
	}
	resp.VendasMes, err = s.repo.SumVendasDesde(ctx, inicioMes)
	if err != nil {
		return nil, apierror.Infra(err)
	}

	return resp, nil
}

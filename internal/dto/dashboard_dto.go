package dto

import "github.com/shopspring/decimal"

// DashboardResponse feeds the module dashboards: row counts per module plus
// the aggregate values the original screens showed as animated counters.
type DashboardResponse struct {
	Clientes         int64 `json:"clientes"`
	Produtos         int64 `json:"produtos"`
	Fornecedores     int64 `json:"fornecedores"`
	Transportadoras  int64 `json:"transportadoras"`
	Compras          int64 `json:"compras"`
	Vendas           int64 `json:"vendas"`
	Empenhos         int64 `json:"empenhos"`
	EmpenhosPendentes int64 `json:"empenhos_pendentes"`
	ContasPagar       int64 `json:"contas_pagar"`
	ContasVencidas    int64 `json:"contas_vencidas"`

	ComprasMes decimal.Decimal `json:"compras_mes"`
	VendasMes  decimal.Decimal `json:"vendas_mes"`
}

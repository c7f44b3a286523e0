package dto

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	Receita30Dias       decimal.Decimal  `json:"receita_30_dias"`
	TendenciaReceita    decimal.Decimal  `json:"tendencia_receita"` // % vs the previous 30 days
	PedidosAtivos       int              `json:"pedidos_ativos"`
	ProdutosBaixos      int              `json:"produtos_estoque_baixo"`
	ClientesNovos30Dias int              `json:"clientes_novos_30_dias"`
	SaldoCaixa          decimal.Decimal  `json:"saldo_caixa"`
	UltimosPedidos      []PedidoResponse `json:"ultimos_pedidos"`
}

package service

import (
	"context"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	janelaDashboard = 30 * 24 * time.Hour
	ultimosPedidosN = 5
	statusCancelado = "cancelled"
)

type DashboardService interface {
	Resumo(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	pedidos  repository.PedidoRepository
	produtos repository.ProdutoRepository
	clientes repository.ClienteRepository
	caixa    CaixaService
	agora    func() time.Time
}

func NewDashboardService(
	pedidos repository.PedidoRepository,
	produtos repository.ProdutoRepository,
	clientes repository.ClienteRepository,
	caixa CaixaService,
) DashboardService {
	return &dashboardService{pedidos: pedidos, produtos: produtos, clientes: clientes, caixa: caixa, agora: time.Now}
}

// Resumo aggregates the headline numbers. Cancelled orders do not count as revenue.
func (s *dashboardService) Resumo(ctx context.Context) (*dto.DashboardResponse, error) {
	pedidos, err := s.pedidos.List(ctx, dto.PedidoFilter{})
	if err != nil {
		return nil, erroRepositorio(err, "pedido")
	}
	baixos, err := s.produtos.List(ctx, dto.ProdutoFilter{EstoqueBaixo: true})
	if err != nil {
		return nil, erroRepositorio(err, "produto")
	}
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, erroRepositorio(err, "cliente")
	}

	agora := s.agora()
	inicioAtual := agora.Add(-janelaDashboard)
	inicioAnterior := inicioAtual.Add(-janelaDashboard)

	receitaAtual, receitaAnterior := decimal.Zero, decimal.Zero
	ativos := 0
	for i := range pedidos {
		p := &pedidos[i]
		if p.Ativo() {
			ativos++
		}
		if p.Status == statusCancelado {
			continue
		}
		switch {
		case !p.CreatedAt.Before(inicioAtual):
			receitaAtual = receitaAtual.Add(p.PrecoTotal)
		case !p.CreatedAt.Before(inicioAnterior):
			receitaAnterior = receitaAnterior.Add(p.PrecoTotal)
		}
	}

	novos := 0
	for i := range clientes {
		if !clientes[i].CreatedAt.Before(inicioAtual) {
			novos++
		}
	}

	// pedidos are listed newest first
	n := min(len(pedidos), ultimosPedidosN)
	ultimos := make([]dto.PedidoResponse, n)
	for i := 0; i < n; i++ {
		ultimos[i] = *pedidoToResponse(&pedidos[i])
	}

	return &dto.DashboardResponse{
		Receita30Dias:       receitaAtual,
		TendenciaReceita:    tendencia(receitaAtual, receitaAnterior),
		PedidosAtivos:       ativos,
		ProdutosBaixos:      len(baixos),
		ClientesNovos30Dias: novos,
		SaldoCaixa:          s.caixa.Saldo(ctx).Total,
		UltimosPedidos:      ultimos,
	}, nil
}

// tendencia is the percentage change from anterior to atual, 0 without a base.
func tendencia(atual, anterior decimal.Decimal) decimal.Decimal {
	if anterior.IsZero() {
		return decimal.Zero
	}
	return atual.Sub(anterior).Div(anterior).Mul(decimal.NewFromInt(100)).Round(1)
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoCaixa(t *testing.T) (service.CaixaService, *stubTransacaoRepo) {
	t.Helper()
	repo := newStubTransacaoRepo()
	svc := service.NewCaixaService(repo, nil)
	require.NoError(t, svc.Carregar(context.Background()))
	return svc, repo
}

func transacao(tipo, categoria, valor, metodo, data string) dto.TransacaoRequest {
	return dto.TransacaoRequest{
		Tipo:            tipo,
		Categoria:       categoria,
		Valor:           dec(valor),
		Descricao:       categoria + " " + data,
		MetodoPagamento: metodo,
		Data:            data,
	}
}

// assertSaldoConsistente checks the running balance against a full fold over
// what the store holds.
func assertSaldoConsistente(t *testing.T, svc service.CaixaService, repo *stubTransacaoRepo) {
	t.Helper()
	txs, err := repo.List(context.Background())
	require.NoError(t, err)
	soma := decimal.Zero
	for _, tx := range txs {
		soma = soma.Add(tx.ValorComSinal())
	}
	assertDecimal(t, soma.String(), svc.Saldo(context.Background()).Total)
	assert.Len(t, svc.ListarTransacoes(context.Background()), len(txs))
}

func TestCaixa_SaldoEntradaESaida(t *testing.T) {
	svc, repo := novoCaixa(t)
	ctx := context.Background()

	_, err := svc.RegistrarTransacao(ctx, transacao("income", "Vendas", "100", "pix", "2024-03-01"))
	require.NoError(t, err)
	_, err = svc.RegistrarTransacao(ctx, transacao("expense", "Material", "40", "cash", "2024-03-02"))
	require.NoError(t, err)

	assertDecimal(t, "60", svc.Saldo(ctx).Total)
	assertSaldoConsistente(t, svc, repo)
}

func TestCaixa_SaldoAposAtualizarEExcluir(t *testing.T) {
	svc, repo := novoCaixa(t)
	ctx := context.Background()

	entrada, err := svc.RegistrarTransacao(ctx, transacao("income", "Vendas", "100", "pix", "2024-03-01"))
	require.NoError(t, err)
	saida, err := svc.RegistrarTransacao(ctx, transacao("expense", "Material", "40", "cash", "2024-03-02"))
	require.NoError(t, err)

	// expense 40 -> income 25: balance goes 60 -> 125
	_, err = svc.AtualizarTransacao(ctx, uuid.MustParse(saida.ID), transacao("income", "Ajuste", "25", "cash", "2024-03-02"))
	require.NoError(t, err)
	assertDecimal(t, "125", svc.Saldo(ctx).Total)
	assertSaldoConsistente(t, svc, repo)

	require.NoError(t, svc.ExcluirTransacao(ctx, uuid.MustParse(entrada.ID)))
	assertDecimal(t, "25", svc.Saldo(ctx).Total)
	assertSaldoConsistente(t, svc, repo)
}

func TestCaixa_SaldoSempreIgualAoRecalculo(t *testing.T) {
	svc, repo := novoCaixa(t)
	ctx := context.Background()

	var ids []string
	valores := []string{"10.50", "3.25", "99.99", "0.01", "250", "12.34"}
	for i, v := range valores {
		tipo := "income"
		if i%2 == 1 {
			tipo = "expense"
		}
		resp, err := svc.RegistrarTransacao(ctx, transacao(tipo, "Diversos", v, "cash", "2024-05-10"))
		require.NoError(t, err)
		ids = append(ids, resp.ID)
		assertSaldoConsistente(t, svc, repo)
	}
	for i, id := range ids {
		if i%3 == 0 {
			require.NoError(t, svc.ExcluirTransacao(ctx, uuid.MustParse(id)))
		} else {
			_, err := svc.AtualizarTransacao(ctx, uuid.MustParse(id), transacao("expense", "Diversos", "7.77", "pix", "2024-05-11"))
			require.NoError(t, err)
		}
		assertSaldoConsistente(t, svc, repo)
	}
}

func TestCaixa_TransacaoInvalida(t *testing.T) {
	svc, _ := novoCaixa(t)
	ctx := context.Background()

	casos := map[string]dto.TransacaoRequest{
		"valor zero":     transacao("income", "Vendas", "0", "pix", "2024-03-01"),
		"valor negativo": transacao("income", "Vendas", "-5", "pix", "2024-03-01"),
		"tipo":           transacao("refund", "Vendas", "5", "pix", "2024-03-01"),
		"metodo":         transacao("income", "Vendas", "5", "cheque", "2024-03-01"),
		"sem data":       transacao("income", "Vendas", "5", "pix", ""),
		"data invalida":  transacao("income", "Vendas", "5", "pix", "01/03/2024"),
		"sem categoria":  transacao("income", "  ", "5", "pix", "2024-03-01"),
	}
	for nome, req := range casos {
		t.Run(nome, func(t *testing.T) {
			_, err := svc.RegistrarTransacao(ctx, req)
			assert.ErrorIs(t, err, service.ErrTransacaoInvalida)
		})
	}
	assertDecimal(t, "0", svc.Saldo(ctx).Total)
}

func TestCaixa_TransacaoInexistente(t *testing.T) {
	svc, _ := novoCaixa(t)
	ctx := context.Background()

	_, err := svc.AtualizarTransacao(ctx, uuid.New(), transacao("income", "Vendas", "10", "pix", "2024-03-01"))
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)
	assert.ErrorIs(t, svc.ExcluirTransacao(ctx, uuid.New()), service.ErrNaoEncontrado)
}

func TestCaixa_FalhaDePersistenciaNaoAlteraEstado(t *testing.T) {
	svc, repo := novoCaixa(t)
	ctx := context.Background()

	resp, err := svc.RegistrarTransacao(ctx, transacao("income", "Vendas", "100", "pix", "2024-03-01"))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	repo.falha = errBancoFora

	_, err = svc.RegistrarTransacao(ctx, transacao("income", "Vendas", "50", "pix", "2024-03-02"))
	assert.ErrorIs(t, err, service.ErrPersistencia)
	_, err = svc.AtualizarTransacao(ctx, id, transacao("expense", "Vendas", "30", "pix", "2024-03-01"))
	assert.ErrorIs(t, err, service.ErrPersistencia)
	assert.ErrorIs(t, svc.ExcluirTransacao(ctx, id), service.ErrPersistencia)

	assertDecimal(t, "100", svc.Saldo(ctx).Total)
	txs := svc.ListarTransacoes(ctx)
	require.Len(t, txs, 1)
	assert.Equal(t, "income", txs[0].Tipo)
	assertDecimal(t, "100", txs[0].Valor)

	repo.falha = nil
	assertSaldoConsistente(t, svc, repo)
}

// ── Relatório ────────────────────────────────────────────────────────────────

func semearJaneiro(t *testing.T, svc service.CaixaService) {
	t.Helper()
	ctx := context.Background()
	reqs := []dto.TransacaoRequest{
		transacao("income", "Vendas", "300", "pix", "2023-12-20"),
		transacao("expense", "Aluguel", "100", "bank_transfer", "2023-12-28"),
		transacao("income", "Vendas", "500", "pix", "2024-01-05"),
		transacao("expense", "Fornecedor", "150", "cash", "2024-01-10"),
		transacao("expense", "Fornecedor", "50", "pix", "2024-01-31"),
		transacao("income", "Vendas", "999", "cash", "2024-02-01"),
	}
	for _, r := range reqs {
		_, err := svc.RegistrarTransacao(ctx, r)
		require.NoError(t, err)
	}
}

func TestCaixa_RelatorioJaneiro(t *testing.T) {
	svc, _ := novoCaixa(t)
	semearJaneiro(t, svc)

	inicio := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	rel, err := svc.GerarRelatorio(context.Background(), inicio, fim)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", rel.Inicio)
	assert.Equal(t, "2024-01-31", rel.Fim)
	assertDecimal(t, "200", rel.SaldoInicial)
	assertDecimal(t, "500", rel.TotalEntradas)
	assertDecimal(t, "200", rel.TotalSaidas)
	assertDecimal(t, "500", rel.SaldoFinal)
	assert.Len(t, rel.Transacoes, 3)

	require.Contains(t, rel.PorCategoria, "Vendas")
	assertDecimal(t, "500", rel.PorCategoria["Vendas"].Entradas)
	assertDecimal(t, "200", rel.PorCategoria["Fornecedor"].Saidas)
	assertDecimal(t, "500", rel.PorMetodoPagamento["pix"].Entradas)
	assertDecimal(t, "50", rel.PorMetodoPagamento["pix"].Saidas)
	assertDecimal(t, "150", rel.PorMetodoPagamento["cash"].Saidas)

	// final = inicial + entradas - saidas
	assertDecimal(t, rel.SaldoInicial.Add(rel.TotalEntradas).Sub(rel.TotalSaidas).String(), rel.SaldoFinal)
}

func TestCaixa_RelatorioIdempotente(t *testing.T) {
	svc, _ := novoCaixa(t)
	semearJaneiro(t, svc)
	ctx := context.Background()

	inicio := time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	a, err := svc.GerarRelatorio(ctx, inicio, fim)
	require.NoError(t, err)
	b, err := svc.GerarRelatorio(ctx, inicio, fim)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assertDecimal(t, "0", a.SaldoInicial)
	assertDecimal(t, "1499", a.SaldoFinal)
}

func TestCaixa_RelatorioDiaUnico(t *testing.T) {
	svc, _ := novoCaixa(t)
	semearJaneiro(t, svc)

	dia := time.Date(2024, 1, 5, 15, 30, 0, 0, time.UTC)
	rel, err := svc.GerarRelatorio(context.Background(), dia, dia)
	require.NoError(t, err)
	assertDecimal(t, "500", rel.TotalEntradas)
	assertDecimal(t, "0", rel.TotalSaidas)
	assert.Len(t, rel.Transacoes, 1)
}

func TestCaixa_RelatorioPeriodoInvalido(t *testing.T) {
	svc, _ := novoCaixa(t)
	_, err := svc.GerarRelatorio(context.Background(),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, service.ErrPeriodoInvalido)
}

func TestCaixa_ReconciliarDetectaDivergencia(t *testing.T) {
	svc, repo := novoCaixa(t)
	ctx := context.Background()

	_, err := svc.RegistrarTransacao(ctx, transacao("income", "Vendas", "100", "pix", "2024-03-01"))
	require.NoError(t, err)

	// another process wrote straight to the store
	outra := model.TransacaoCaixa{
		ID:              uuid.New(),
		Tipo:            model.TransacaoSaida,
		Categoria:       "Taxas",
		Valor:           dec("30"),
		Descricao:       "tarifa",
		MetodoPagamento: model.PagamentoTransferencia,
		Data:            time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, &outra))

	rec, err := svc.Reconciliar(ctx)
	require.NoError(t, err)
	assertDecimal(t, "100", rec.SaldoAnterior)
	assertDecimal(t, "70", rec.SaldoRecalculado)
	assertDecimal(t, "-30", rec.Diferenca)
	assert.Equal(t, 2, rec.Transacoes)
	assertSaldoConsistente(t, svc, repo)
}

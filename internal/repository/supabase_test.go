package repository_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/google/uuid"
	supabase "github.com/nedpals/supabase-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── PostgREST em memória ─────────────────────────────────────────────────────

type requisicao struct {
	metodo string
	tabela string
	query  url.Values
	prefer string
}

// postgrestFalso answers like PostgREST: rows come back only when the request
// carries Prefer: return=representation, otherwise 201/204 with an empty body.
type postgrestFalso struct {
	mu      sync.Mutex
	tabelas map[string][]map[string]interface{}
	// falhaInsercao maps a table to the Postgres error code its inserts fail with.
	falhaInsercao map[string]string
	requisicoes   []requisicao
}

func novoPostgrest(t *testing.T) (*postgrestFalso, *supabase.Client) {
	t.Helper()
	f := &postgrestFalso{
		tabelas:       make(map[string][]map[string]interface{}),
		falhaInsercao: make(map[string]string),
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, supabase.CreateClient(srv.URL, "chave-teste")
}

func (f *postgrestFalso) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tabela := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	query := r.URL.Query()
	prefer := r.Header.Get("Prefer")
	f.requisicoes = append(f.requisicoes, requisicao{metodo: r.Method, tabela: tabela, query: query, prefer: prefer})
	representacao := strings.Contains(prefer, "return=representation")

	switch r.Method {
	case http.MethodGet:
		responder(w, http.StatusOK, f.filtrar(tabela, query))

	case http.MethodPost:
		if codigo, ok := f.falhaInsercao[tabela]; ok {
			status := http.StatusInternalServerError
			if codigo == "23505" {
				status = http.StatusConflict
			}
			responder(w, status, map[string]string{"code": codigo, "message": "falha simulada"})
			return
		}
		var linha map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&linha); err != nil {
			responder(w, http.StatusBadRequest, map[string]string{"code": "PGRST102", "message": err.Error()})
			return
		}
		f.tabelas[tabela] = append(f.tabelas[tabela], linha)
		if representacao {
			responder(w, http.StatusCreated, []map[string]interface{}{linha})
			return
		}
		w.WriteHeader(http.StatusCreated)

	case http.MethodPatch:
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			responder(w, http.StatusBadRequest, map[string]string{"code": "PGRST102", "message": err.Error()})
			return
		}
		alteradas := []map[string]interface{}{}
		for _, linha := range f.tabelas[tabela] {
			if !casa(linha, query) {
				continue
			}
			for k, v := range payload {
				linha[k] = v
			}
			alteradas = append(alteradas, linha)
		}
		if representacao {
			responder(w, http.StatusOK, alteradas)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		restantes := f.tabelas[tabela][:0]
		removidas := []map[string]interface{}{}
		for _, linha := range f.tabelas[tabela] {
			if casa(linha, query) {
				removidas = append(removidas, linha)
				continue
			}
			restantes = append(restantes, linha)
		}
		f.tabelas[tabela] = restantes
		if representacao {
			responder(w, http.StatusOK, removidas)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *postgrestFalso) filtrar(tabela string, query url.Values) []map[string]interface{} {
	out := []map[string]interface{}{}
	for _, linha := range f.tabelas[tabela] {
		if casa(linha, query) {
			out = append(out, linha)
		}
	}
	return out
}

// casa evaluates eq/gte/lte/lt filters. Range filters compare the stored
// value truncated to the filter's length, enough for AAAA-MM-DD bounds.
func casa(linha map[string]interface{}, query url.Values) bool {
	for campo, filtros := range query {
		if campo == "select" {
			continue
		}
		atual := fmt.Sprint(linha[campo])
		for _, filtro := range filtros {
			op, valor, _ := strings.Cut(filtro, ".")
			cmp := strings.Compare(atual[:min(len(atual), len(valor))], valor)
			ok := true
			switch op {
			case "eq":
				ok = atual == valor
			case "gte":
				ok = cmp >= 0
			case "lte":
				ok = cmp <= 0
			case "lt":
				ok = cmp < 0
			}
			if !ok {
				return false
			}
		}
	}
	return true
}

func responder(w http.ResponseWriter, status int, corpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(corpo)
}

func (f *postgrestFalso) ultima(metodo, tabela string) requisicao {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requisicoes) - 1; i >= 0; i-- {
		if r := f.requisicoes[i]; r.metodo == metodo && r.tabela == tabela {
			return r
		}
	}
	return requisicao{}
}

func (f *postgrestFalso) linhas(tabela string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tabelas[tabela])
}

// ── Fixtures ────────────────────────────────────────────────────────────────

func dia(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func novaTransacao(data string, valor string) *model.TransacaoCaixa {
	agora := time.Now().UTC()
	return &model.TransacaoCaixa{
		ID:              uuid.New(),
		Tipo:            model.TransacaoEntrada,
		Categoria:       "Vendas",
		Valor:           decimal.RequireFromString(valor),
		Descricao:       "Bancada de granito",
		MetodoPagamento: model.PagamentoPix,
		Data:            dia(data),
		CreatedAt:       agora,
		UpdatedAt:       agora,
	}
}

func novoProduto(quantidade string) *model.Produto {
	q := decimal.RequireFromString(quantidade)
	p := &model.Produto{ID: uuid.New(), Nome: "Mármore Carrara", Codigo: "MAR-001", Tipo: "marble"}
	p.Quantidade = q
	p.QuantidadeMinima = decimal.NewFromInt(2)
	p.Unidade = "m²"
	p.Status = model.StatusPorQuantidade(q)
	p.PrecoBase = decimal.NewFromInt(450)
	return p
}

// ── Exclusão ────────────────────────────────────────────────────────────────

func TestSupabase_ExcluirRemoveSemErro(t *testing.T) {
	ctx := context.Background()
	pg, client := novoPostgrest(t)
	repo := repository.NewSupabaseTransacaoCaixaRepository(client)

	tx := novaTransacao("2024-01-10", "100")
	require.NoError(t, repo.Create(ctx, tx))

	require.NoError(t, repo.Delete(ctx, tx.ID))
	assert.Equal(t, 0, pg.linhas("transacoes_caixa"))
	del := pg.ultima(http.MethodDelete, "transacoes_caixa")
	assert.Equal(t, []string{"eq." + tx.ID.String()}, del.query["id"])
	assert.Empty(t, del.prefer, "DELETE goes out without return=representation")

	assert.ErrorIs(t, repo.Delete(ctx, tx.ID), repository.ErrNotFound)
}

func TestSupabase_ExcluirProdutoInexistente(t *testing.T) {
	pg, client := novoPostgrest(t)
	repo := repository.NewSupabaseProdutoRepository(client)

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), repository.ErrNotFound)
	assert.Empty(t, pg.ultima(http.MethodDelete, "produtos").metodo, "nothing to delete, no DELETE sent")
}

// ── Atualização ─────────────────────────────────────────────────────────────

func TestSupabase_AtualizarSemLinhaRetornaNaoEncontrado(t *testing.T) {
	_, client := novoPostgrest(t)
	repo := repository.NewSupabaseTransacaoCaixaRepository(client)

	err := repo.Update(context.Background(), novaTransacao("2024-01-10", "100"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSupabase_InsercaoDuplicada(t *testing.T) {
	pg, client := novoPostgrest(t)
	pg.falhaInsercao["clientes"] = "23505"
	repo := repository.NewSupabaseClienteRepository(client)

	err := repo.Create(context.Background(), &model.Cliente{ID: uuid.New(), NomeCompleto: "Ana"})
	assert.ErrorIs(t, err, repository.ErrDuplicado)
}

// ── Ajuste de estoque ───────────────────────────────────────────────────────

func TestSupabase_AplicarAjusteGravaProdutoEMovimento(t *testing.T) {
	ctx := context.Background()
	pg, client := novoPostgrest(t)
	repo := repository.NewSupabaseProdutoRepository(client)

	p := novoProduto("5")
	require.NoError(t, repo.Create(ctx, p))

	p.Quantidade = decimal.NewFromInt(8)
	mov := &model.MovimentoEstoque{
		ID: uuid.New(), ProdutoID: p.ID, Tipo: model.MovimentoEntrada,
		Quantidade: decimal.NewFromInt(3), QuantidadeAnterior: decimal.NewFromInt(5),
		QuantidadeNova: decimal.NewFromInt(8), Motivo: "Compra", Data: time.Now().UTC(),
	}
	require.NoError(t, repo.AplicarAjuste(ctx, p, mov))

	salvo, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, salvo.Quantidade.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, 1, pg.linhas("movimentos_estoque"))
}

func TestSupabase_AplicarAjusteRestauraEstoqueQuandoMovimentoFalha(t *testing.T) {
	ctx := context.Background()
	pg, client := novoPostgrest(t)
	repo := repository.NewSupabaseProdutoRepository(client)

	p := novoProduto("5")
	require.NoError(t, repo.Create(ctx, p))
	pg.falhaInsercao["movimentos_estoque"] = "XX000"

	p.Quantidade = decimal.Zero
	p.Status = model.EstoqueEsgotado
	mov := &model.MovimentoEstoque{
		ID: uuid.New(), ProdutoID: p.ID, Tipo: model.MovimentoSaida,
		Quantidade: decimal.NewFromInt(-5), QuantidadeAnterior: decimal.NewFromInt(5),
		QuantidadeNova: decimal.Zero, Motivo: "Venda", Data: time.Now().UTC(),
	}
	require.Error(t, repo.AplicarAjuste(ctx, p, mov))

	salvo, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, salvo.Quantidade.Equal(decimal.NewFromInt(5)), "got %s", salvo.Quantidade)
	assert.Equal(t, model.EstoqueDisponivel, salvo.Status)
	assert.Equal(t, 0, pg.linhas("movimentos_estoque"))
}

// ── Orçamentos ──────────────────────────────────────────────────────────────

func TestSupabase_MarcarEstoqueGeradoSoUmaVez(t *testing.T) {
	ctx := context.Background()
	pg, client := novoPostgrest(t)
	repo := repository.NewSupabaseOrcamentoRepository(client)

	agora := time.Now().UTC()
	o := &model.Orcamento{
		ID: uuid.New(), ClienteID: uuid.New(), NomeCliente: "Ana",
		Total: decimal.NewFromInt(1000), Status: model.OrcamentoAprovado,
		ValidoAte: agora.AddDate(0, 0, 15), CreatedAt: agora, UpdatedAt: agora,
	}
	require.NoError(t, repo.Create(ctx, o))

	marcou, err := repo.MarcarEstoqueGerado(ctx, o.ID, agora)
	require.NoError(t, err)
	assert.True(t, marcou)
	patch := pg.ultima(http.MethodPatch, "orcamentos")
	assert.Equal(t, []string{"eq.false"}, patch.query["estoque_gerado"])

	marcou, err = repo.MarcarEstoqueGerado(ctx, o.ID, agora)
	require.NoError(t, err)
	assert.False(t, marcou)
}

// ── Relatório ───────────────────────────────────────────────────────────────

func TestSupabase_PeriodoInclusivoEAnterioresExclusivo(t *testing.T) {
	ctx := context.Background()
	pg, client := novoPostgrest(t)
	repo := repository.NewSupabaseTransacaoCaixaRepository(client)

	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-01-31", "2024-02-01"} {
		require.NoError(t, repo.Create(ctx, novaTransacao(d, "10")))
	}

	periodo, err := repo.ListPorPeriodo(ctx, dia("2024-01-01"), dia("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, periodo, 2)
	assert.Equal(t, dia("2024-01-01"), periodo[0].Data.UTC())
	assert.Equal(t, dia("2024-01-31"), periodo[1].Data.UTC())
	assert.ElementsMatch(t, []string{"gte.2024-01-01", "lte.2024-01-31"},
		pg.ultima(http.MethodGet, "transacoes_caixa").query["data"])

	anteriores, err := repo.ListAnteriores(ctx, dia("2024-01-01"))
	require.NoError(t, err)
	require.Len(t, anteriores, 1)
	assert.Equal(t, dia("2023-12-31"), anteriores[0].Data.UTC())
	assert.Equal(t, []string{"lt.2024-01-01"}, pg.ultima(http.MethodGet, "transacoes_caixa").query["data"])
}

// ── Contexto ────────────────────────────────────────────────────────────────

func TestSupabase_ContextoCanceladoChegaAoHTTP(t *testing.T) {
	_, client := novoPostgrest(t)
	repo := repository.NewSupabaseTransacaoCaixaRepository(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

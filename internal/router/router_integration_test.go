//go:build integration

package router

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PrManiezzo/marmo/internal/config"
	"github.com/PrManiezzo/marmo/internal/infra"
	"github.com/PrManiezzo/marmo/internal/service"
	"github.com/PrManiezzo/marmo/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		var body bytes.Buffer
		_, _ = body.ReadFrom(resp.Body)
		resp.Body.Close()
		t.Fatalf("status %d, want %d: %s", resp.StatusCode, want, body.String())
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server  *httptest.Server
	storage *infra.Storage
	rdb     *redis.Client
	cfg     *config.Config
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("marmo_test"),
		tcPostgres.WithUsername("marmo"),
		tcPostgres.WithPassword("marmo"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(context.Background()) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(context.Background()) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		WorkerPoolSize:     1,
		StorageDriver:      config.DriverPostgres,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		RateLimitPerMinute: 60000,
		RateLimitBurst:     1000,
		Moeda:              "BRL",
	}

	storage, err := infra.OpenStorage(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	r, err := New(ctx, cfg, storage, rdb, infra.NewMailer(cfg))
	require.NoError(t, err)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, storage: storage, rdb: rdb, cfg: cfg}
}

func criarProduto(t *testing.T, env *testEnv, codigo string, quantidade, minima int) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/produtos", jsonBody(t, map[string]any{
		"nome":       "Mármore " + codigo,
		"codigo":     codigo,
		"tipo":       "marble",
		"cor":        "branco",
		"padrao":     "veined",
		"acabamento": "polished",
		"dimensoes":  map[string]any{"espessura": "2", "largura": "160", "comprimento": "280", "peso": "240"},
		"origem":     map[string]any{"pais": "Itália"},
		"estoque":    map[string]any{"quantidade": quantidade, "quantidade_minima": minima, "unidade": "slab"},
		"precificacao": map[string]any{
			"preco_base": "1200.00",
			"precos_especiais": []map[string]any{
				{"preco": "1000.00", "quantidade_minima": "5"},
			},
		},
	}))
	expectStatus(t, resp, http.StatusCreated)
	var p struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &p)
	return p.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CaixaSaldoERelatorio(t *testing.T) {
	env := setupTestEnv(t)

	for _, tx := range []map[string]any{
		{"tipo": "income", "categoria": "Vendas", "valor": "300", "descricao": "dez", "metodo_pagamento": "pix", "data": "2023-12-20"},
		{"tipo": "expense", "categoria": "Aluguel", "valor": "100", "descricao": "dez", "metodo_pagamento": "bank_transfer", "data": "2023-12-28"},
		{"tipo": "income", "categoria": "Vendas", "valor": "500", "descricao": "jan", "metodo_pagamento": "pix", "data": "2024-01-05"},
		{"tipo": "expense", "categoria": "Fornecedor", "valor": "150", "descricao": "jan", "metodo_pagamento": "cash", "data": "2024-01-31"},
	} {
		expectStatus(t, do(t, env.server, "POST", "/v1/caixa/transacoes", jsonBody(t, tx)), http.StatusCreated)
	}

	var saldo struct {
		Total decimal.Decimal `json:"total"`
	}
	resp := do(t, env.server, "GET", "/v1/caixa/saldo", nil)
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &saldo)
	assertDecimal(t, "550", saldo.Total)

	var rel struct {
		SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
		TotalEntradas decimal.Decimal `json:"total_entradas"`
		TotalSaidas   decimal.Decimal `json:"total_saidas"`
		SaldoFinal    decimal.Decimal `json:"saldo_final"`
		PorCategoria  map[string]struct {
			Entradas decimal.Decimal `json:"entradas"`
		} `json:"por_categoria"`
	}
	resp = do(t, env.server, "GET", "/v1/caixa/relatorio?inicio=2024-01-01&fim=2024-01-31", nil)
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &rel)
	assertDecimal(t, "200", rel.SaldoInicial)
	assertDecimal(t, "500", rel.TotalEntradas)
	assertDecimal(t, "150", rel.TotalSaidas)
	assertDecimal(t, "550", rel.SaldoFinal)
	assertDecimal(t, "500", rel.PorCategoria["Vendas"].Entradas)

	expectStatus(t, do(t, env.server, "GET", "/v1/caixa/relatorio?inicio=2024-02-01&fim=2024-01-01", nil), http.StatusBadRequest)

	// a fresh engine loads the same balance from storage
	r2, err := New(context.Background(), env.cfg, env.storage, env.rdb, infra.NewMailer(env.cfg))
	require.NoError(t, err)
	srv2 := httptest.NewServer(r2)
	defer srv2.Close()
	resp = do(t, srv2, "GET", "/v1/caixa/saldo", nil)
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &saldo)
	assertDecimal(t, "550", saldo.Total)

	// the balance is mirrored in Redis
	raw, err := env.rdb.Get(context.Background(), service.ChaveSaldoCaixa).Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "550")
}

func TestE2E_EstoqueAjustesEAlerta(t *testing.T) {
	env := setupTestEnv(t)
	id := criarProduto(t, env, "CAR-E2E", 5, 2)
	path := "/v1/estoque/" + id + "/ajuste"

	var ajuste struct {
		Estoque struct {
			Quantidade decimal.Decimal `json:"quantidade"`
			Status     string          `json:"status"`
		} `json:"estoque"`
	}
	resp := do(t, env.server, "POST", path, jsonBody(t, map[string]any{"tipo": "entrada", "quantidade": "3", "motivo": "compra"}))
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &ajuste)
	assertDecimal(t, "8", ajuste.Estoque.Quantidade)

	resp = do(t, env.server, "POST", path, jsonBody(t, map[string]any{"tipo": "saida", "quantidade": "10", "motivo": "venda"}))
	expectStatus(t, resp, http.StatusConflict)
	resp.Body.Close()

	resp = do(t, env.server, "POST", path, jsonBody(t, map[string]any{"tipo": "saida", "quantidade": "8", "motivo": "venda"}))
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &ajuste)
	assertDecimal(t, "0", ajuste.Estoque.Quantidade)
	assert.Equal(t, "out_of_stock", ajuste.Estoque.Status)

	// one alert job for the crossing below the minimum
	assert.EqualValues(t, 1, env.rdb.LLen(context.Background(), worker.QueueEmail).Val())

	var movs []struct {
		Tipo string `json:"tipo"`
	}
	resp = do(t, env.server, "GET", "/v1/estoque/movimentos?produto_id="+id, nil)
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &movs)
	require.Len(t, movs, 2)
	assert.Equal(t, "saida", movs[0].Tipo)

	var alertas []struct {
		ProdutoID string `json:"produto_id"`
	}
	resp = do(t, env.server, "GET", "/v1/estoque/alertas", nil)
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &alertas)
	require.Len(t, alertas, 1)
	assert.Equal(t, id, alertas[0].ProdutoID)
}

func TestE2E_OrcamentoGeraEstoqueUmaVez(t *testing.T) {
	env := setupTestEnv(t)
	produtoID := criarProduto(t, env, "NER-E2E", 1, 0)

	resp := do(t, env.server, "POST", "/v1/clientes", jsonBody(t, map[string]any{
		"nome_completo":    "Maria Souza",
		"documento_tipo":   "cpf",
		"documento_numero": "529.982.247-25",
		"telefones":        map[string]any{"principal": "(11) 98765-4321"},
		"emails":           map[string]any{"principal": "maria@exemplo.com"},
		"endereco": map[string]any{
			"logradouro": "Av. Paulista", "numero": "1000", "bairro": "Bela Vista",
			"cidade": "São Paulo", "estado": "SP", "cep": "01310-100",
		},
	}))
	expectStatus(t, resp, http.StatusCreated)
	var cliente struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &cliente)

	resp = do(t, env.server, "POST", "/v1/orcamentos", jsonBody(t, map[string]any{
		"cliente_id": cliente.ID,
		"itens": []map[string]any{
			{"produto_id": produtoID, "quantidade": "6"},
			{"produto_id": produtoID, "quantidade": "1", "medidas": map[string]any{"comprimento": "2.4", "largura": "0.6", "espessura": "0.02"}},
		},
	}))
	expectStatus(t, resp, http.StatusCreated)
	var orc struct {
		ID    string          `json:"id"`
		Total decimal.Decimal `json:"total"`
	}
	decodeJSON(t, resp, &orc)
	// 6 units hit the 1000.00 tier, the single measured piece does not
	assertDecimal(t, "7200", orc.Total)

	gerar := "/v1/orcamentos/" + orc.ID + "/gerar-estoque"
	expectStatus(t, do(t, env.server, "POST", gerar, nil), http.StatusConflict)

	expectStatus(t, do(t, env.server, "PATCH", "/v1/orcamentos/"+orc.ID+"/status",
		jsonBody(t, map[string]any{"status": "approved"})), http.StatusOK)

	resp = do(t, env.server, "POST", gerar, nil)
	expectStatus(t, resp, http.StatusOK)
	var ger struct {
		Entradas         int `json:"entradas"`
		PecasAdicionadas int `json:"pecas_adicionadas"`
	}
	decodeJSON(t, resp, &ger)
	assert.Equal(t, 1, ger.Entradas)
	assert.Equal(t, 1, ger.PecasAdicionadas)

	expectStatus(t, do(t, env.server, "POST", gerar, nil), http.StatusConflict)

	var produto struct {
		Estoque struct {
			Quantidade decimal.Decimal `json:"quantidade"`
			Pecas      []any           `json:"pecas"`
		} `json:"estoque"`
	}
	resp = do(t, env.server, "GET", "/v1/produtos/"+produtoID, nil)
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &produto)
	assertDecimal(t, "7", produto.Estoque.Quantidade)
	assert.Len(t, produto.Estoque.Pecas, 1)
}

func TestE2E_PrecoEmCacheInvalidado(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	id := criarProduto(t, env, "GRA-E2E", 10, 1)

	var preco struct {
		PrecoEfetivo decimal.Decimal `json:"preco_efetivo"`
	}
	resp := do(t, env.server, "GET", "/v1/preco/GRA-E2E?quantidade=5", nil)
	expectStatus(t, resp, http.StatusOK)
	decodeJSON(t, resp, &preco)
	assertDecimal(t, "1000", preco.PrecoEfetivo)
	assert.EqualValues(t, 1, env.rdb.Exists(ctx, service.ChavePrecoCache("GRA-E2E")).Val())

	expectStatus(t, do(t, env.server, "DELETE", "/v1/produtos/"+id, nil), http.StatusNoContent)
	assert.Zero(t, env.rdb.Exists(ctx, service.ChavePrecoCache("GRA-E2E")).Val())
	expectStatus(t, do(t, env.server, "GET", "/v1/preco/GRA-E2E", nil), http.StatusNotFound)
}

func TestE2E_Health(t *testing.T) {
	env := setupTestEnv(t)
	resp := do(t, env.server, "GET", "/health", nil)
	expectStatus(t, resp, http.StatusOK)
	var h map[string]any
	decodeJSON(t, resp, &h)
	assert.Equal(t, "connected", h["db"])
	assert.Equal(t, "connected", h["redis"])
}

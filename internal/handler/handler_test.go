package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"
	"github.com/PrManiezzo/marmo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

// ── Helpers ──────────────────────────────────────────────────────────────────

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// ── Fakes ────────────────────────────────────────────────────────────────────

// fakeCaixa overrides only what the tests exercise; anything else panics.
type fakeCaixa struct {
	service.CaixaService
	err       error
	relatorio func(inicio, fim time.Time) (*dto.RelatorioCaixaResponse, error)
}

func (f *fakeCaixa) RegistrarTransacao(_ context.Context, req dto.TransacaoRequest) (*dto.TransacaoResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TransacaoResponse{ID: uuid.NewString(), Tipo: req.Tipo, Valor: req.Valor, Data: req.Data}, nil
}

func (f *fakeCaixa) AtualizarTransacao(_ context.Context, id uuid.UUID, req dto.TransacaoRequest) (*dto.TransacaoResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TransacaoResponse{ID: id.String(), Tipo: req.Tipo, Valor: req.Valor}, nil
}

func (f *fakeCaixa) ExcluirTransacao(context.Context, uuid.UUID) error { return f.err }

func (f *fakeCaixa) GerarRelatorio(_ context.Context, inicio, fim time.Time) (*dto.RelatorioCaixaResponse, error) {
	return f.relatorio(inicio, fim)
}

type fakeEstoque struct {
	service.EstoqueService
	err error
}

func (f *fakeEstoque) AjustarEstoque(_ context.Context, id uuid.UUID, req dto.AjusteEstoqueRequest) (*dto.AjusteEstoqueResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AjusteEstoqueResponse{Estoque: dto.EstoqueResponse{ProdutoID: id.String(), Quantidade: *req.Quantidade}}, nil
}

type fakeProdutoRepo struct {
	repository.ProdutoRepository
	produtos map[string]model.Produto
}

func (f *fakeProdutoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Produto, error) {
	p, ok := f.produtos[codigo]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func caixaRouter(svc service.CaixaService) *gin.Engine {
	h := NewCaixaHandler(svc)
	r := gin.New()
	r.POST("/transacoes", h.Registrar)
	r.PUT("/transacoes/:id", h.Atualizar)
	r.DELETE("/transacoes/:id", h.Excluir)
	r.GET("/relatorio", h.Relatorio)
	return r
}

func transacaoValida() map[string]any {
	return map[string]any{
		"tipo":             "income",
		"categoria":        "Vendas",
		"valor":            "150.00",
		"descricao":        "Pia de granito",
		"metodo_pagamento": "pix",
		"data":             "2024-01-15",
	}
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestStatusDoErro(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrNaoEncontrado, http.StatusNotFound},
		{service.ErrDuplicado, http.StatusConflict},
		{service.ErrEstoqueInsuficiente, http.StatusConflict},
		{service.ErrEstoqueJaGerado, http.StatusConflict},
		{service.ErrOrcamentoNaoAprovado, http.StatusConflict},
		{service.ErrPeriodoInvalido, http.StatusBadRequest},
		{service.ErrTransacaoInvalida, http.StatusUnprocessableEntity},
		{service.ErrQuantidadeInvalida, http.StatusUnprocessableEntity},
		{service.ErrDimensoesInvalidas, http.StatusUnprocessableEntity},
		{service.ErrDadosInvalidos, http.StatusUnprocessableEntity},
		{service.ErrPersistencia, http.StatusInternalServerError},
		{errors.New("qualquer"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		wrapped := fmt.Errorf("%w: contexto", c.err)
		assert.Equal(t, c.want, statusDoErro(wrapped), c.err.Error())
	}
}

// ── Caixa ────────────────────────────────────────────────────────────────────

func TestCaixaHandler_Registrar(t *testing.T) {
	r := caixaRouter(&fakeCaixa{})

	w := doJSON(r, http.MethodPost, "/transacoes", transacaoValida())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransacaoResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "income", resp.Tipo)
	assert.True(t, decimal.RequireFromString("150").Equal(resp.Valor))
}

func TestCaixaHandler_Validacao(t *testing.T) {
	r := caixaRouter(&fakeCaixa{})

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/transacoes", `{"tipo":`).Code)

	body := transacaoValida()
	body["valor"] = "0"
	body["metodo_pagamento"] = "cheque"
	w := doJSON(r, http.MethodPost, "/transacoes", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var ve struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, w, &ve)
	assert.Contains(t, ve.Fields, "Valor")
	assert.Contains(t, ve.Fields, "MetodoPagamento")

	body = transacaoValida()
	body["data"] = "15/01/2024"
	assert.Equal(t, http.StatusUnprocessableEntity, doJSON(r, http.MethodPost, "/transacoes", body).Code)
}

func TestCaixaHandler_ErrosDoServico(t *testing.T) {
	id := uuid.NewString()

	w := doJSON(caixaRouter(&fakeCaixa{err: service.ErrNaoEncontrado}), http.MethodPut, "/transacoes/"+id, transacaoValida())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(caixaRouter(&fakeCaixa{}), http.MethodPut, "/transacoes/nao-e-uuid", transacaoValida())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	falha := fmt.Errorf("%w: %w", service.ErrPersistencia, errors.New("pq: deadlock detected"))
	w = doJSON(caixaRouter(&fakeCaixa{err: falha}), http.MethodDelete, "/transacoes/"+id, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "deadlock")

	w = doJSON(caixaRouter(&fakeCaixa{}), http.MethodDelete, "/transacoes/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCaixaHandler_Relatorio(t *testing.T) {
	var recebido [2]time.Time
	svc := &fakeCaixa{relatorio: func(inicio, fim time.Time) (*dto.RelatorioCaixaResponse, error) {
		recebido = [2]time.Time{inicio, fim}
		if inicio.After(fim) {
			return nil, service.ErrPeriodoInvalido
		}
		return &dto.RelatorioCaixaResponse{Inicio: inicio.Format("2006-01-02"), Fim: fim.Format("2006-01-02")}, nil
	}}
	r := caixaRouter(svc)

	w := doJSON(r, http.MethodGet, "/relatorio?inicio=2024-01-01&fim=2024-01-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), recebido[0])
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), recebido[1])

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/relatorio?inicio=2024-02-01&fim=2024-01-01", nil).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, doJSON(r, http.MethodGet, "/relatorio?inicio=2024-02-01", nil).Code)
}

// ── Estoque ──────────────────────────────────────────────────────────────────

func TestEstoqueHandler_Ajustar(t *testing.T) {
	rota := func(svc service.EstoqueService) *gin.Engine {
		r := gin.New()
		r.POST("/estoque/:produto_id/ajuste", NewEstoqueHandler(svc).Ajustar)
		return r
	}
	path := "/estoque/" + uuid.NewString() + "/ajuste"
	body := map[string]any{"tipo": "saida", "quantidade": "10", "motivo": "venda"}

	w := doJSON(rota(&fakeEstoque{}), http.MethodPost, path, body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rota(&fakeEstoque{err: service.ErrEstoqueInsuficiente}), http.MethodPost, path, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	body["tipo"] = "perda"
	w = doJSON(rota(&fakeEstoque{}), http.MethodPost, path, body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// zero is a valid correction; an absent quantity is not
	correcao := map[string]any{"tipo": "correcao", "quantidade": "0", "motivo": "inventário"}
	assert.Equal(t, http.StatusOK, doJSON(rota(&fakeEstoque{}), http.MethodPost, path, correcao).Code)
	delete(correcao, "quantidade")
	w = doJSON(rota(&fakeEstoque{}), http.MethodPost, path, correcao)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Quantidade")
}

// ── Preço ────────────────────────────────────────────────────────────────────

func TestPrecoHandler_Consultar(t *testing.T) {
	promo := decimal.RequireFromString("90")
	repo := &fakeProdutoRepo{produtos: map[string]model.Produto{
		"CAR-01": {
			Codigo:         "CAR-01",
			Nome:           "Carrara",
			EstoqueProduto: model.EstoqueProduto{Unidade: "m²"},
			PrecificacaoProduto: model.PrecificacaoProduto{
				PrecoBase:        decimal.RequireFromString("100"),
				EmPromocao:       true,
				PrecoPromocional: &promo,
				PrecosEspeciais:  []model.PrecoEspecial{{Preco: decimal.RequireFromString("80"), QuantidadeMinima: decimal.NewFromInt(10)}},
			},
		},
	}}
	r := gin.New()
	r.GET("/preco/:codigo", NewPrecoHandler(repo, nil).Consultar)

	w := doJSON(r, http.MethodGet, "/preco/CAR-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ConsultaPrecoResponse
	decodeBody(t, w, &resp)
	assert.True(t, promo.Equal(resp.PrecoEfetivo))
	assert.True(t, resp.EmPromocao)
	assert.Equal(t, "m²", resp.EstoqueUnidade)

	w = doJSON(r, http.MethodGet, "/preco/CAR-01?quantidade=12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.True(t, decimal.RequireFromString("80").Equal(resp.PrecoEfetivo))

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/preco/CAR-01?quantidade=-1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodGet, "/preco/NAO-EXISTE", nil).Code)
}

// ── Validation tags ──────────────────────────────────────────────────────────

func TestValidacaoClienteRequest(t *testing.T) {
	req := dto.ClienteRequest{
		NomeCompleto:    "Maria Souza",
		DocumentoTipo:   "cpf",
		DocumentoNumero: "529.982.247-25",
		Telefones:       dto.TelefonesRequest{Principal: "(11) 98765-4321"},
		Emails:          dto.EmailsRequest{Principal: "maria@exemplo.com"},
		Endereco: dto.EnderecoRequest{
			Logradouro: "Av. Paulista", Numero: "1000", Bairro: "Bela Vista",
			Cidade: "São Paulo", Estado: "SP", CEP: "01310-100",
		},
	}
	assert.NoError(t, validate.Struct(req))

	req.Telefones.Principal = "11987654321"
	req.Endereco.CEP = "01310100"
	req.Endereco.Estado = "sp"
	err := validate.Struct(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telefone")
	assert.Contains(t, err.Error(), "cep")
	assert.Contains(t, err.Error(), "uf")
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/ok", Health(func(context.Context) error { return nil }, nil, nil))
	r.GET("/fora", Health(func(context.Context) error { return errors.New("dial tcp: refused") }, nil, nil))

	w := doJSON(r, http.MethodGet, "/ok", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, "connected", body["db"])
	assert.Equal(t, "disabled", body["redis"])
	assert.Equal(t, "disabled", body["smtp"])

	w = doJSON(r, http.MethodGet, "/fora", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "refused")
}

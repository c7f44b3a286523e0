package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/PrManiezzo/marmo/internal/apierror"
	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"
	"github.com/PrManiezzo/marmo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const precoCacheTTL = 4 * time.Hour

// precoEmCache is what the lookup keeps in Redis. The effective price depends
// on quantity and on the clock, so it is computed per request.
type precoEmCache struct {
	Codigo       string                    `json:"codigo"`
	Nome         string                    `json:"nome"`
	Unidade      string                    `json:"unidade"`
	Precificacao model.PrecificacaoProduto `json:"precificacao"`
}

// PrecoHandler serves the public price lookup. It has no side effects besides the cache.
type PrecoHandler struct {
	repo  repository.ProdutoRepository
	rdb   *redis.Client
	agora func() time.Time
}

func NewPrecoHandler(repo repository.ProdutoRepository, rdb *redis.Client) *PrecoHandler {
	return &PrecoHandler{repo: repo, rdb: rdb, agora: time.Now}
}

// Consultar godoc
// @Summary Consulta de preço por código do produto
// @Tags preco
// @Produce json
// @Param codigo path string true "Código do produto"
// @Param quantidade query number false "Quantidade (padrão 1)"
// @Success 200 {object} dto.ConsultaPrecoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/preco/{codigo} [get]
func (h *PrecoHandler) Consultar(c *gin.Context) {
	codigo := c.Param("codigo")
	ctx := c.Request.Context()

	quantidade := decimal.NewFromInt(1)
	if q := c.Query("quantidade"); q != "" {
		v, err := decimal.NewFromString(q)
		if err != nil || !v.IsPositive() {
			c.JSON(http.StatusBadRequest, apierror.New("Quantidade inválida"))
			return
		}
		quantidade = v
	}

	entrada, ok := h.doCache(ctx, codigo)
	if !ok {
		p, err := h.repo.FindByCodigo(ctx, codigo)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New(service.ErrPersistencia.Error()))
			return
		}
		entrada = precoEmCache{Codigo: p.Codigo, Nome: p.Nome, Unidade: p.Unidade, Precificacao: p.PrecificacaoProduto}
		h.guardar(entrada)
	}

	efetivo := entrada.Precificacao.PrecoEfetivo(quantidade, h.agora())
	c.JSON(http.StatusOK, dto.ConsultaPrecoResponse{
		Codigo:         entrada.Codigo,
		Nome:           entrada.Nome,
		Quantidade:     quantidade,
		PrecoBase:      entrada.Precificacao.PrecoBase,
		PrecoEfetivo:   efetivo,
		EmPromocao:     efetivo.LessThan(entrada.Precificacao.PrecoBase),
		EstoqueUnidade: entrada.Unidade,
	})
}

func (h *PrecoHandler) doCache(ctx context.Context, codigo string) (precoEmCache, bool) {
	var entrada precoEmCache
	if h.rdb == nil {
		return entrada, false
	}
	raw, err := h.rdb.Get(ctx, service.ChavePrecoCache(codigo)).Bytes()
	if err != nil {
		return entrada, false
	}
	if json.Unmarshal(raw, &entrada) != nil {
		return entrada, false
	}
	return entrada, true
}

// guardar populates the cache; best effort.
func (h *PrecoHandler) guardar(entrada precoEmCache) {
	if h.rdb == nil {
		return
	}
	if b, err := json.Marshal(entrada); err == nil {
		_ = h.rdb.Set(context.Background(), service.ChavePrecoCache(entrada.Codigo), b, precoCacheTTL).Err()
	}
}

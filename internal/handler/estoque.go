package handler

import (
	"net/http"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/service"

	"github.com/gin-gonic/gin"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

// Ajustar godoc
// @Summary Ajusta o estoque de um produto (entrada, saída ou correção)
// @Tags estoque
// @Accept json
// @Produce json
// @Param produto_id path string true "ID do produto"
// @Param body body dto.AjusteEstoqueRequest true "Ajuste"
// @Success 200 {object} dto.AjusteEstoqueResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError "Estoque insuficiente"
// @Failure 422 {object} apierror.APIError
// @Router /v1/estoque/{produto_id}/ajuste [post]
func (h *EstoqueHandler) Ajustar(c *gin.Context) {
	id, ok := parseID(c, "produto_id")
	if !ok {
		return
	}
	var req dto.AjusteEstoqueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarEstoque(c.Request.Context(), id, req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdicionarPecas godoc
// @Summary Adiciona peças (chapas) ao estoque de um produto
// @Tags estoque
// @Accept json
// @Produce json
// @Param produto_id path string true "ID do produto"
// @Param body body dto.AdicionarPecasRequest true "Peças"
// @Success 200 {object} dto.EstoqueResponse
// @Failure 422 {object} apierror.APIError
// @Router /v1/estoque/{produto_id}/pecas [post]
func (h *EstoqueHandler) AdicionarPecas(c *gin.Context) {
	id, ok := parseID(c, "produto_id")
	if !ok {
		return
	}
	var req dto.AdicionarPecasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdicionarPecas(c.Request.Context(), id, req.Pecas)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movimentos godoc
// @Summary Histórico de movimentos de estoque, mais recentes primeiro
// @Tags estoque
// @Produce json
// @Param produto_id query string false "ID do produto"
// @Param referencia_id query string false "ID do documento de origem (orçamento, pedido)"
// @Param limite query int false "Máximo de registros (1-500, padrão 50)"
// @Success 200 {array} dto.MovimentoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/estoque/movimentos [get]
func (h *EstoqueHandler) Movimentos(c *gin.Context) {
	var filter dto.MovimentoFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarMovimentos(c.Request.Context(), filter)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alertas godoc
// @Summary Produtos no estoque mínimo ou abaixo dele
// @Tags estoque
// @Produce json
// @Success 200 {array} dto.AlertaEstoqueResponse
// @Router /v1/estoque/alertas [get]
func (h *EstoqueHandler) Alertas(c *gin.Context) {
	resp, err := h.svc.Alertas(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

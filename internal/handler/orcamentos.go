package handler

import (
	"net/http"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/service"

	"github.com/gin-gonic/gin"
)

type OrcamentosHandler struct{ svc service.OrcamentoService }

func NewOrcamentosHandler(svc service.OrcamentoService) *OrcamentosHandler {
	return &OrcamentosHandler{svc: svc}
}

func (h *OrcamentosHandler) Criar(c *gin.Context) {
	var req dto.OrcamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrcamentosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrcamentosHandler) ObterPorID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrcamentosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.OrcamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarStatus godoc
// @Summary Aprova, rejeita ou reabre um orçamento
// @Tags orcamentos
// @Accept json
// @Produce json
// @Param id path string true "ID do orçamento"
// @Param body body dto.StatusOrcamentoRequest true "Novo status"
// @Success 200 {object} dto.OrcamentoResponse
// @Router /v1/orcamentos/{id}/status [patch]
func (h *OrcamentosHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusOrcamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), id, model.StatusOrcamento(req.Status))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GerarEstoque godoc
// @Summary Gera as entradas de estoque de um orçamento aprovado
// @Description Executa uma única vez por orçamento.
// @Tags orcamentos
// @Produce json
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.GerarEstoqueResponse
// @Failure 409 {object} apierror.APIError "Não aprovado ou estoque já gerado"
// @Router /v1/orcamentos/{id}/gerar-estoque [post]
func (h *OrcamentosHandler) GerarEstoque(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GerarEstoque(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrcamentosHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

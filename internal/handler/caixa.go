package handler

import (
	"net/http"

	"github.com/PrManiezzo/marmo/internal/apierror"
	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

// Listar godoc
// @Summary Lista as transações do caixa
// @Tags caixa
// @Produce json
// @Success 200 {array} dto.TransacaoResponse
// @Router /v1/caixa/transacoes [get]
func (h *CaixaHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListarTransacoes(c.Request.Context()))
}

// Registrar godoc
// @Summary Registra uma entrada ou saída de caixa
// @Tags caixa
// @Accept json
// @Produce json
// @Param body body dto.TransacaoRequest true "Transação"
// @Success 201 {object} dto.TransacaoResponse
// @Failure 422 {object} apierror.ValidationError
// @Failure 500 {object} apierror.APIError
// @Router /v1/caixa/transacoes [post]
func (h *CaixaHandler) Registrar(c *gin.Context) {
	var req dto.TransacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarTransacao(c.Request.Context(), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar godoc
// @Summary Substitui uma transação existente
// @Tags caixa
// @Accept json
// @Produce json
// @Param id path string true "ID da transação"
// @Param body body dto.TransacaoRequest true "Transação"
// @Success 200 {object} dto.TransacaoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/transacoes/{id} [put]
func (h *CaixaHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.TransacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarTransacao(c.Request.Context(), id, req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary Exclui uma transação e desfaz seu efeito no saldo
// @Tags caixa
// @Param id path string true "ID da transação"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixa/transacoes/{id} [delete]
func (h *CaixaHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ExcluirTransacao(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Saldo godoc
// @Summary Saldo atual do caixa
// @Tags caixa
// @Produce json
// @Success 200 {object} dto.SaldoResponse
// @Router /v1/caixa/saldo [get]
func (h *CaixaHandler) Saldo(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Saldo(c.Request.Context()))
}

// Relatorio godoc
// @Summary Relatório do caixa por período
// @Tags caixa
// @Produce json
// @Param inicio query string true "Data inicial (AAAA-MM-DD)"
// @Param fim query string true "Data final (AAAA-MM-DD)"
// @Success 200 {object} dto.RelatorioCaixaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa/relatorio [get]
func (h *CaixaHandler) Relatorio(c *gin.Context) {
	var filter dto.RelatorioCaixaFilter
	if !bindQuery(c, &filter) {
		return
	}
	inicio, err1 := service.ParseData(filter.Inicio)
	fim, err2 := service.ParseData(filter.Fim)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Datas devem estar no formato AAAA-MM-DD"))
		return
	}
	resp, err := h.svc.GerarRelatorio(c.Request.Context(), inicio, fim)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reconciliar recomputes the balance from the store and reports the drift.
// @Summary Recalcula o saldo a partir do banco
// @Tags caixa
// @Produce json
// @Success 200 {object} dto.ReconciliacaoResponse
// @Failure 500 {object} apierror.APIError
// @Router /v1/caixa/reconciliar [post]
func (h *CaixaHandler) Reconciliar(c *gin.Context) {
	resp, err := h.svc.Reconciliar(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

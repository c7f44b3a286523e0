package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AjusteEstoqueRequest: Quantidade is the delta for entrada/saida and the
// absolute new quantity for correcao. It is a pointer so an omitted value is
// rejected instead of read as zero.
type AjusteEstoqueRequest struct {
	Tipo         string           `json:"tipo"          validate:"required,oneof=entrada saida correcao"`
	Quantidade   *decimal.Decimal `json:"quantidade"    validate:"required"`
	Motivo       string           `json:"motivo"        validate:"required,max=255"`
	ReferenciaID *string          `json:"referencia_id" validate:"omitempty,uuid"`
}

type PecaRequest struct {
	ID          string          `json:"id"`
	Largura     decimal.Decimal `json:"largura"`
	Comprimento decimal.Decimal `json:"comprimento"`
	Espessura   decimal.Decimal `json:"espessura"`
}

type AdicionarPecasRequest struct {
	Pecas []PecaRequest `json:"pecas" validate:"required,min=1"`
}

type MovimentoFilter struct {
	ProdutoID    string `form:"produto_id" validate:"omitempty,uuid"`
	ReferenciaID string `form:"referencia_id" validate:"omitempty,uuid"`
	Limite       int    `form:"limite,default=50" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PecaResponse struct {
	ID          string          `json:"id"`
	Largura     decimal.Decimal `json:"largura"`
	Comprimento decimal.Decimal `json:"comprimento"`
	Espessura   decimal.Decimal `json:"espessura"`
}

type MovimentoResponse struct {
	ID                 string          `json:"id"`
	ProdutoID          string          `json:"produto_id"`
	Tipo               string          `json:"tipo"`
	Quantidade         decimal.Decimal `json:"quantidade"`
	QuantidadeAnterior decimal.Decimal `json:"quantidade_anterior"`
	QuantidadeNova     decimal.Decimal `json:"quantidade_nova"`
	Motivo             string          `json:"motivo"`
	ReferenciaID       *string         `json:"referencia_id"`
	Data               string          `json:"data"`
}

type EstoqueResponse struct {
	ProdutoID        string          `json:"produto_id"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima"`
	Unidade          string          `json:"unidade"`
	Status           string          `json:"status"`
	EstoqueBaixo     bool            `json:"estoque_baixo"`
	Pecas            []PecaResponse  `json:"pecas"`
}

type AjusteEstoqueResponse struct {
	Estoque   EstoqueResponse   `json:"estoque"`
	Movimento MovimentoResponse `json:"movimento"`
}

type AlertaEstoqueResponse struct {
	ProdutoID        string          `json:"produto_id"`
	Nome             string          `json:"nome"`
	Codigo           string          `json:"codigo"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima"`
	Unidade          string          `json:"unidade"`
	Status           string          `json:"status"`
}

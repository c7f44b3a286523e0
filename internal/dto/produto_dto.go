package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DimensoesRequest struct {
	Espessura   decimal.Decimal `json:"espessura"   validate:"required,gt=0"`
	Largura     decimal.Decimal `json:"largura"     validate:"required,gt=0"`
	Comprimento decimal.Decimal `json:"comprimento" validate:"required,gt=0"`
	Peso        decimal.Decimal `json:"peso"        validate:"required,gt=0"`
}

type OrigemRequest struct {
	Pais   string  `json:"pais"   validate:"required"`
	Regiao *string `json:"regiao"`
}

type EstoqueProdutoRequest struct {
	Quantidade       decimal.Decimal `json:"quantidade"        validate:"min=0"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima" validate:"min=0"`
	Unidade          string          `json:"unidade"           validate:"required,oneof=m² piece slab"`
	Localizacao      *string         `json:"localizacao"`
}

type PrecoEspecialRequest struct {
	Preco            decimal.Decimal `json:"preco"             validate:"required,gt=0"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima" validate:"required,gt=0"`
}

type PrecificacaoRequest struct {
	PrecoBase         decimal.Decimal        `json:"preco_base"          validate:"required,gt=0"`
	EmPromocao        bool                   `json:"em_promocao"`
	PrecoPromocional  *decimal.Decimal       `json:"preco_promocional"`
	PromocaoTerminaEm *time.Time             `json:"promocao_termina_em"`
	PrecosEspeciais   []PrecoEspecialRequest `json:"precos_especiais"    validate:"dive"`
}

// ProdutoRequest creates or fully replaces a product. On update the stock
// quantity, status and pieces stay with the inventory ledger and are ignored.
type ProdutoRequest struct {
	Nome         string                `json:"nome"          validate:"required,min=2,max=120"`
	Codigo       string                `json:"codigo"        validate:"required,max=40"`
	CodigoBarras *string               `json:"codigo_barras" validate:"omitempty,max=18"`
	Tipo         string                `json:"tipo"          validate:"required,oneof=marble granite quartz porcelain"`
	Cor          string                `json:"cor"           validate:"required"`
	Padrao       string                `json:"padrao"        validate:"required,oneof=solid veined speckled mixed"`
	Acabamento   string                `json:"acabamento"    validate:"required,oneof=polished matte rustic flamed brushed"`
	Dimensoes    DimensoesRequest      `json:"dimensoes"`
	Origem       OrigemRequest         `json:"origem"`
	Estoque      EstoqueProdutoRequest `json:"estoque"`
	Precificacao PrecificacaoRequest   `json:"precificacao"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProdutoFilter struct {
	Nome         string `form:"nome"`
	Tipo         string `form:"tipo"`
	EstoqueBaixo bool   `form:"estoque_baixo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID           string              `json:"id"`
	Nome         string              `json:"nome"`
	Codigo       string              `json:"codigo"`
	CodigoBarras *string             `json:"codigo_barras"`
	Tipo         string              `json:"tipo"`
	Cor          string              `json:"cor"`
	Padrao       string              `json:"padrao"`
	Acabamento   string              `json:"acabamento"`
	Dimensoes    DimensoesRequest    `json:"dimensoes"`
	Origem       OrigemRequest       `json:"origem"`
	Estoque      EstoqueResponse     `json:"estoque"`
	Precificacao PrecificacaoRequest `json:"precificacao"`
	PrecoAtual   decimal.Decimal     `json:"preco_atual"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

// ConsultaPrecoResponse is returned by the public price lookup endpoint.
type ConsultaPrecoResponse struct {
	Codigo         string          `json:"codigo"`
	Nome           string          `json:"nome"`
	Quantidade     decimal.Decimal `json:"quantidade"`
	PrecoBase      decimal.Decimal `json:"preco_base"`
	PrecoEfetivo   decimal.Decimal `json:"preco_efetivo"`
	EmPromocao     bool            `json:"em_promocao"`
	EstoqueUnidade string          `json:"estoque_unidade"`
}

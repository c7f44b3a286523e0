package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusEstoque: "available" | "out_of_stock"
type StatusEstoque string

const (
	EstoqueDisponivel StatusEstoque = "available"
	EstoqueEsgotado   StatusEstoque = "out_of_stock"
)

// StatusPorQuantidade is the single status rule: out_of_stock iff quantidade <= 0.
// The minimum quantity is a separate low-stock signal (see EstoqueProduto.Baixo).
func StatusPorQuantidade(quantidade decimal.Decimal) StatusEstoque {
	if quantidade.LessThanOrEqual(decimal.Zero) {
		return EstoqueEsgotado
	}
	return EstoqueDisponivel
}

// Peca is one physically distinct cut piece tracked inside a product's stock.
type Peca struct {
	ID          string          `json:"id"`
	Largura     decimal.Decimal `json:"largura"`
	Comprimento decimal.Decimal `json:"comprimento"`
	Espessura   decimal.Decimal `json:"espessura"`
}

// PrecoEspecial is a tier price applied from QuantidadeMinima units up.
type PrecoEspecial struct {
	Preco            decimal.Decimal `json:"preco"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima"`
}

type DimensoesProduto struct {
	Espessura   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"dimensao_espessura"`
	Largura     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"dimensao_largura"`
	Comprimento decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"dimensao_comprimento"`
	Peso        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"dimensao_peso"`
}

type OrigemProduto struct {
	Pais   string  `gorm:"not null" json:"origem_pais"`
	Regiao *string `json:"origem_regiao"`
}

// EstoqueProduto holds the stock fields owned by the inventory ledger.
// Pecas and Quantidade are tracked independently and may diverge.
type EstoqueProduto struct {
	Quantidade       decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"estoque_quantidade"`
	QuantidadeMinima decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"estoque_quantidade_minima"`
	Unidade          string          `gorm:"type:varchar(10);not null" json:"estoque_unidade"` // m² | piece | slab
	Localizacao      *string         `json:"estoque_localizacao"`
	Status           StatusEstoque   `gorm:"type:varchar(20);not null" json:"estoque_status"`
	Pecas            []Peca          `gorm:"type:jsonb;serializer:json" json:"estoque_pecas"`
}

// Baixo reports the low-stock signal used by listings, alerts and the dashboard.
func (e EstoqueProduto) Baixo() bool {
	return e.Quantidade.LessThanOrEqual(e.QuantidadeMinima)
}

type PrecificacaoProduto struct {
	PrecoBase         decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"preco_base"`
	EmPromocao        bool             `gorm:"not null;default:false" json:"em_promocao"`
	PrecoPromocional  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"preco_promocional"`
	PromocaoTerminaEm *time.Time       `json:"promocao_termina_em"`
	PrecosEspeciais   []PrecoEspecial  `gorm:"type:jsonb;serializer:json" json:"precos_especiais"`
}

// Produto is a catalog item (slab, piece or area-priced stone).
// Tipo: "marble" | "granite" | "quartz" | "porcelain"
// Padrao: "solid" | "veined" | "speckled" | "mixed"
// Acabamento: "polished" | "matte" | "rustic" | "flamed" | "brushed"
type Produto struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome         string    `gorm:"index;not null" json:"nome"`
	Codigo       string    `gorm:"uniqueIndex;not null" json:"codigo"`
	CodigoBarras *string   `json:"codigo_barras"`
	Tipo         string    `gorm:"type:varchar(20);not null" json:"tipo"`
	Cor          string    `gorm:"not null" json:"cor"`
	Padrao       string    `gorm:"type:varchar(20);not null" json:"padrao"`
	Acabamento   string    `gorm:"type:varchar(20);not null" json:"acabamento"`

	DimensoesProduto    `gorm:"embedded;embeddedPrefix:dimensao_"`
	OrigemProduto       `gorm:"embedded;embeddedPrefix:origem_"`
	EstoqueProduto      `gorm:"embedded;embeddedPrefix:estoque_"`
	PrecificacaoProduto `gorm:"embedded"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Produto) TableName() string { return "produtos" }

// PrecoEfetivo returns the unit price for quantidade units at instant agora:
// the sale price while a promotion is running, lowered further by the best
// special price whose minimum quantity is met.
func (p PrecificacaoProduto) PrecoEfetivo(quantidade decimal.Decimal, agora time.Time) decimal.Decimal {
	preco := p.PrecoBase
	if p.EmPromocao && p.PrecoPromocional != nil &&
		(p.PromocaoTerminaEm == nil || agora.Before(*p.PromocaoTerminaEm)) {
		preco = *p.PrecoPromocional
	}
	for _, esp := range p.PrecosEspeciais {
		if quantidade.GreaterThanOrEqual(esp.QuantidadeMinima) && esp.Preco.LessThan(preco) {
			preco = esp.Preco
		}
	}
	return preco
}

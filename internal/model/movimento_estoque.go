package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoMovimento: "entrada" | "saida" | "correcao"
type TipoMovimento string

const (
	MovimentoEntrada  TipoMovimento = "entrada"
	MovimentoSaida    TipoMovimento = "saida"
	MovimentoCorrecao TipoMovimento = "correcao"
)

// MovimentoEstoque registra cada ajuste de estoque de um produto.
// Os registros são imutáveis: nunca se alteram nem se excluem.
type MovimentoEstoque struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProdutoID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"produto_id"`
	Tipo               TipoMovimento   `gorm:"type:varchar(10);not null" json:"tipo"`
	Quantidade         decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantidade"` // negative for saida
	QuantidadeAnterior decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantidade_anterior"`
	QuantidadeNova     decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantidade_nova"`
	Motivo             string          `gorm:"not null" json:"motivo"`
	// ReferenciaID links to the originating Orcamento, if any
	ReferenciaID *uuid.UUID `gorm:"type:uuid;index" json:"referencia_id"`
	Data         time.Time  `gorm:"not null;index" json:"data"`
}

func (MovimentoEstoque) TableName() string { return "movimentos_estoque" }

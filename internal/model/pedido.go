package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Medidas are the cut measurements of an order or quotation line.
type Medidas struct {
	Comprimento decimal.Decimal `json:"comprimento"`
	Largura     decimal.Decimal `json:"largura"`
	Espessura   decimal.Decimal `json:"espessura"`
}

type ItemPedido struct {
	ProdutoID   uuid.UUID       `json:"produto_id"`
	NomeProduto string          `json:"nome_produto"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Preco       decimal.Decimal `json:"preco"`
	Medidas     *Medidas        `json:"medidas,omitempty"`
}

type ServicoPedido struct {
	ServicoID    uuid.UUID       `json:"servico_id"`
	NomeServico  string          `json:"nome_servico"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Preco        decimal.Decimal `json:"preco"`
	Observacoes  *string         `json:"observacoes,omitempty"`
	DataAgendada *time.Time      `json:"data_agendada,omitempty"`
}

// Pedido is a confirmed customer order.
// Status: "pending" | "in_progress" | "completed" | "cancelled"
// StatusPagamento: "pending" | "partial" | "completed"
type Pedido struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ClienteID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"cliente_id"`
	NomeCliente     string           `gorm:"not null" json:"nome_cliente"`
	Itens           []ItemPedido     `gorm:"type:jsonb;serializer:json" json:"itens"`
	Servicos        []ServicoPedido  `gorm:"type:jsonb;serializer:json" json:"servicos"`
	Status          string           `gorm:"type:varchar(20);not null;index" json:"status"`
	PrecoTotal      decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"preco_total"`
	DataEntrega     time.Time        `gorm:"not null" json:"data_entrega"`
	DataInstalacao  *time.Time       `json:"data_instalacao"`
	StatusPagamento string           `gorm:"type:varchar(20);not null" json:"status_pagamento"`
	MetodoPagamento *MetodoPagamento `gorm:"type:varchar(20)" json:"metodo_pagamento"`
	Observacoes     *string          `json:"observacoes"`
	CreatedAt       time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (Pedido) TableName() string { return "pedidos" }

// Ativo reports whether the order still needs work.
func (p Pedido) Ativo() bool {
	return p.Status == "pending" || p.Status == "in_progress"
}

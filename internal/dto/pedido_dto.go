package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type MedidasRequest struct {
	Comprimento decimal.Decimal `json:"comprimento" validate:"required,gt=0"`
	Largura     decimal.Decimal `json:"largura"     validate:"required,gt=0"`
	Espessura   decimal.Decimal `json:"espessura"   validate:"required,gt=0"`
}

type ItemPedidoRequest struct {
	ProdutoID  string          `json:"produto_id" validate:"required,uuid"`
	Quantidade decimal.Decimal `json:"quantidade" validate:"required,gt=0"`
	// Preco defaults to the product's effective price when omitted
	Preco   *decimal.Decimal `json:"preco"`
	Medidas *MedidasRequest  `json:"medidas"`
}

type ServicoPedidoRequest struct {
	ServicoID    string           `json:"servico_id"    validate:"required,uuid"`
	Quantidade   decimal.Decimal  `json:"quantidade"    validate:"required,gt=0"`
	Preco        *decimal.Decimal `json:"preco"`
	Observacoes  *string          `json:"observacoes"`
	DataAgendada *string          `json:"data_agendada" validate:"omitempty,datetime=2006-01-02"`
}

type PedidoRequest struct {
	ClienteID       string                 `json:"cliente_id"       validate:"required,uuid"`
	Itens           []ItemPedidoRequest    `json:"itens"            validate:"dive"`
	Servicos        []ServicoPedidoRequest `json:"servicos"         validate:"dive"`
	Status          string                 `json:"status"           validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DataEntrega     string                 `json:"data_entrega"     validate:"required,datetime=2006-01-02"`
	DataInstalacao  *string                `json:"data_instalacao"  validate:"omitempty,datetime=2006-01-02"`
	StatusPagamento string                 `json:"status_pagamento" validate:"omitempty,oneof=pending partial completed"`
	MetodoPagamento *string                `json:"metodo_pagamento" validate:"omitempty,oneof=cash credit_card debit_card bank_transfer pix"`
	Observacoes     *string                `json:"observacoes"`
}

type PedidoFilter struct {
	Status    string `form:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemPedidoResponse struct {
	ProdutoID   string          `json:"produto_id"`
	NomeProduto string          `json:"nome_produto"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Preco       decimal.Decimal `json:"preco"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Medidas     *MedidasRequest `json:"medidas,omitempty"`
}

type ServicoPedidoResponse struct {
	ServicoID    string          `json:"servico_id"`
	NomeServico  string          `json:"nome_servico"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Preco        decimal.Decimal `json:"preco"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Observacoes  *string         `json:"observacoes,omitempty"`
	DataAgendada *string         `json:"data_agendada,omitempty"`
}

type PedidoResponse struct {
	ID              string                  `json:"id"`
	ClienteID       string                  `json:"cliente_id"`
	NomeCliente     string                  `json:"nome_cliente"`
	Itens           []ItemPedidoResponse    `json:"itens"`
	Servicos        []ServicoPedidoResponse `json:"servicos"`
	Status          string                  `json:"status"`
	PrecoTotal      decimal.Decimal         `json:"preco_total"`
	DataEntrega     string                  `json:"data_entrega"`
	DataInstalacao  *string                 `json:"data_instalacao"`
	StatusPagamento string                  `json:"status_pagamento"`
	MetodoPagamento *string                 `json:"metodo_pagamento"`
	Observacoes     *string                 `json:"observacoes"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

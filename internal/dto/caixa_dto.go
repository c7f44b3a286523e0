package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// TransacaoRequest is used both to register and to replace a cash transaction.
type TransacaoRequest struct {
	Tipo            string          `json:"tipo"             validate:"required,oneof=income expense"`
	Categoria       string          `json:"categoria"        validate:"required,max=60"`
	Valor           decimal.Decimal `json:"valor"            validate:"required,gt=0"`
	Descricao       string          `json:"descricao"        validate:"required,max=255"`
	MetodoPagamento string          `json:"metodo_pagamento" validate:"required,oneof=cash credit_card debit_card bank_transfer pix"`
	PedidoID        *string         `json:"pedido_id"        validate:"omitempty,uuid"`
	Data            string          `json:"data"             validate:"required,datetime=2006-01-02"`
}

type RelatorioCaixaFilter struct {
	Inicio string `form:"inicio" validate:"required,datetime=2006-01-02"`
	Fim    string `form:"fim"    validate:"required,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransacaoResponse struct {
	ID              string          `json:"id"`
	Tipo            string          `json:"tipo"`
	Categoria       string          `json:"categoria"`
	Valor           decimal.Decimal `json:"valor"`
	Descricao       string          `json:"descricao"`
	MetodoPagamento string          `json:"metodo_pagamento"`
	PedidoID        *string         `json:"pedido_id"`
	Data            string          `json:"data"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

type SaldoResponse struct {
	Total        decimal.Decimal `json:"total"`
	AtualizadoEm string          `json:"atualizado_em"`
}

// TotaisFluxo groups income and expense sums for one category or payment method.
type TotaisFluxo struct {
	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
}

type RelatorioCaixaResponse struct {
	Inicio             string                 `json:"inicio"`
	Fim                string                 `json:"fim"`
	SaldoInicial       decimal.Decimal        `json:"saldo_inicial"`
	TotalEntradas      decimal.Decimal        `json:"total_entradas"`
	TotalSaidas        decimal.Decimal        `json:"total_saidas"`
	SaldoFinal         decimal.Decimal        `json:"saldo_final"`
	PorCategoria       map[string]TotaisFluxo `json:"por_categoria"`
	PorMetodoPagamento map[string]TotaisFluxo `json:"por_metodo_pagamento"`
	Transacoes         []TransacaoResponse    `json:"transacoes"`
}

type ReconciliacaoResponse struct {
	SaldoAnterior    decimal.Decimal `json:"saldo_anterior"`
	SaldoRecalculado decimal.Decimal `json:"saldo_recalculado"`
	Diferenca        decimal.Decimal `json:"diferenca"`
	Transacoes       int             `json:"transacoes"`
}

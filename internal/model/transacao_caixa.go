package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoTransacao: "income" | "expense"
type TipoTransacao string

const (
	TransacaoEntrada TipoTransacao = "income"
	TransacaoSaida   TipoTransacao = "expense"
)

// MetodoPagamento enumerates the accepted payment methods.
type MetodoPagamento string

const (
	PagamentoDinheiro      MetodoPagamento = "cash"
	PagamentoCredito       MetodoPagamento = "credit_card"
	PagamentoDebito        MetodoPagamento = "debit_card"
	PagamentoTransferencia MetodoPagamento = "bank_transfer"
	PagamentoPix           MetodoPagamento = "pix"
)

// MetodosPagamento lists every valid MetodoPagamento in display order.
var MetodosPagamento = []MetodoPagamento{
	PagamentoDinheiro, PagamentoCredito, PagamentoDebito, PagamentoTransferencia, PagamentoPix,
}

func (m MetodoPagamento) Valido() bool {
	for _, v := range MetodosPagamento {
		if m == v {
			return true
		}
	}
	return false
}

// TransacaoCaixa is one entry of the cash ledger.
// Valor is always positive; the sign comes from Tipo.
// Data is the business date (midnight UTC), distinct from the audit timestamps.
type TransacaoCaixa struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Tipo            TipoTransacao   `gorm:"type:varchar(10);not null;index" json:"tipo"`
	Categoria       string          `gorm:"not null;index" json:"categoria"`
	Valor           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor"`
	Descricao       string          `gorm:"not null" json:"descricao"`
	MetodoPagamento MetodoPagamento `gorm:"type:varchar(20);not null" json:"metodo_pagamento"`
	PedidoID        *uuid.UUID      `gorm:"type:uuid" json:"pedido_id"`
	Data            time.Time       `gorm:"type:timestamptz;not null;index" json:"data"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (TransacaoCaixa) TableName() string { return "transacoes_caixa" }

// ValorComSinal returns +Valor for income and -Valor for expense.
func (t TransacaoCaixa) ValorComSinal() decimal.Decimal {
	if t.Tipo == TransacaoSaida {
		return t.Valor.Neg()
	}
	return t.Valor
}

// SaldoCaixa is the derived running balance of the cash ledger.
// It is never authoritative: Total must equal the signed fold over the transaction set.
type SaldoCaixa struct {
	Total        decimal.Decimal `json:"total"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}

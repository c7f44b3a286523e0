package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusOrcamento: "pending" | "approved" | "rejected"
type StatusOrcamento string

const (
	OrcamentoPendente  StatusOrcamento = "pending"
	OrcamentoAprovado  StatusOrcamento = "approved"
	OrcamentoRejeitado StatusOrcamento = "rejected"
)

type ItemOrcamento struct {
	ProdutoID     uuid.UUID       `json:"produto_id"`
	NomeProduto   string          `json:"nome_produto"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Total         decimal.Decimal `json:"total"`
	Medidas       *Medidas        `json:"medidas,omitempty"`
}

type ServicoOrcamento struct {
	ServicoID     uuid.UUID       `json:"servico_id"`
	NomeServico   string          `json:"nome_servico"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Total         decimal.Decimal `json:"total"`
	Observacoes   *string         `json:"observacoes,omitempty"`
}

// Orcamento is a priced proposal to a customer.
// EstoqueGerado guards the one-time stock entry generated after approval.
type Orcamento struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	ClienteID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"cliente_id"`
	NomeCliente        string             `gorm:"not null" json:"nome_cliente"`
	Itens              []ItemOrcamento    `gorm:"type:jsonb;serializer:json" json:"itens"`
	Servicos           []ServicoOrcamento `gorm:"type:jsonb;serializer:json" json:"servicos"`
	Total              decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"total"`
	Status             StatusOrcamento    `gorm:"type:varchar(20);not null;index" json:"status"`
	ValidoAte          time.Time          `gorm:"not null" json:"valido_ate"`
	StatusAtualizadoEm *time.Time         `json:"status_atualizado_em"`
	EstoqueGerado      bool               `gorm:"not null;default:false" json:"estoque_gerado"`
	EstoqueGeradoEm    *time.Time         `json:"estoque_gerado_em"`
	Observacoes        *string            `json:"observacoes"`
	DataInstalacao     *time.Time         `json:"data_instalacao"`
	DataMedicao        *time.Time         `json:"data_medicao"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (Orcamento) TableName() string { return "orcamentos" }

package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemOrcamentoRequest struct {
	ProdutoID     string           `json:"produto_id"     validate:"required,uuid"`
	Quantidade    decimal.Decimal  `json:"quantidade"     validate:"required,gt=0"`
	PrecoUnitario *decimal.Decimal `json:"preco_unitario"`
	Medidas       *MedidasRequest  `json:"medidas"`
}

type ServicoOrcamentoRequest struct {
	ServicoID     string           `json:"servico_id"     validate:"required,uuid"`
	Quantidade    decimal.Decimal  `json:"quantidade"     validate:"required,gt=0"`
	PrecoUnitario *decimal.Decimal `json:"preco_unitario"`
	Observacoes   *string          `json:"observacoes"`
}

type OrcamentoRequest struct {
	ClienteID      string                    `json:"cliente_id"      validate:"required,uuid"`
	Itens          []ItemOrcamentoRequest    `json:"itens"           validate:"dive"`
	Servicos       []ServicoOrcamentoRequest `json:"servicos"        validate:"dive"`
	ValidoAte      *string                   `json:"valido_ate"      validate:"omitempty,datetime=2006-01-02"`
	Observacoes    *string                   `json:"observacoes"`
	DataInstalacao *string                   `json:"data_instalacao" validate:"omitempty,datetime=2006-01-02"`
	DataMedicao    *string                   `json:"data_medicao"    validate:"omitempty,datetime=2006-01-02"`
}

type StatusOrcamentoRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemOrcamentoResponse struct {
	ProdutoID     string          `json:"produto_id"`
	NomeProduto   string          `json:"nome_produto"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Total         decimal.Decimal `json:"total"`
	Medidas       *MedidasRequest `json:"medidas,omitempty"`
}

type ServicoOrcamentoResponse struct {
	ServicoID     string          `json:"servico_id"`
	NomeServico   string          `json:"nome_servico"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Total         decimal.Decimal `json:"total"`
	Observacoes   *string         `json:"observacoes,omitempty"`
}

type OrcamentoResponse struct {
	ID                 string                     `json:"id"`
	ClienteID          string                     `json:"cliente_id"`
	NomeCliente        string                     `json:"nome_cliente"`
	Itens              []ItemOrcamentoResponse    `json:"itens"`
	Servicos           []ServicoOrcamentoResponse `json:"servicos"`
	Total              decimal.Decimal            `json:"total"`
	Status             string                     `json:"status"`
	ValidoAte          string                     `json:"valido_ate"`
	StatusAtualizadoEm *string                    `json:"status_atualizado_em"`
	EstoqueGerado      bool                       `json:"estoque_gerado"`
	EstoqueGeradoEm    *string                    `json:"estoque_gerado_em"`
	Observacoes        *string                    `json:"observacoes"`
	DataInstalacao     *string                    `json:"data_instalacao"`
	DataMedicao        *string                    `json:"data_medicao"`
	CreatedAt          string                     `json:"created_at"`
	UpdatedAt          string                     `json:"updated_at"`
}

// GerarEstoqueResponse summarises the stock generated from an approved quotation.
type GerarEstoqueResponse struct {
	OrcamentoID      string `json:"orcamento_id"`
	Entradas         int    `json:"entradas"`
	PecasAdicionadas int    `json:"pecas_adicionadas"`
	ItensJaAplicados int    `json:"itens_ja_aplicados"`
	EstoqueGeradoEm  string `json:"estoque_gerado_em"`
}

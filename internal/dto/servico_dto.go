package dto

import "github.com/shopspring/decimal"

type ServicoRequest struct {
	Nome          string          `json:"nome"           validate:"required,min=2,max=120"`
	Descricao     string          `json:"descricao"      validate:"required"`
	Categoria     string          `json:"categoria"      validate:"required,oneof=measurement cutting installation restoration maintenance delivery"`
	PrecoBase     decimal.Decimal `json:"preco_base"     validate:"required,gt=0"`
	UnidadePreco  string          `json:"unidade_preco"  validate:"required,oneof=m² linear_meter piece hour fixed"`
	TempoEstimado *int            `json:"tempo_estimado" validate:"omitempty,min=1"`
	RequerMedicao bool            `json:"requer_medicao"`
	RequerVisita  bool            `json:"requer_visita"`
}

type ServicoResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Categoria     string          `json:"categoria"`
	PrecoBase     decimal.Decimal `json:"preco_base"`
	UnidadePreco  string          `json:"unidade_preco"`
	TempoEstimado *int            `json:"tempo_estimado"`
	RequerMedicao bool            `json:"requer_medicao"`
	RequerVisita  bool            `json:"requer_visita"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

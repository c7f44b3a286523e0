package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Servico is a billable service offered by the shop.
// Categoria: "measurement" | "cutting" | "installation" | "restoration" | "maintenance" | "delivery"
// UnidadePreco: "m²" | "linear_meter" | "piece" | "hour" | "fixed"
type Servico struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nome          string          `gorm:"not null" json:"nome"`
	Descricao     string          `gorm:"not null" json:"descricao"`
	Categoria     string          `gorm:"type:varchar(20);not null" json:"categoria"`
	PrecoBase     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"preco_base"`
	UnidadePreco  string          `gorm:"type:varchar(20);not null" json:"unidade_preco"`
	TempoEstimado *int            `json:"tempo_estimado"` // minutes
	RequerMedicao bool            `gorm:"not null;default:false" json:"requer_medicao"`
	RequerVisita  bool            `gorm:"not null;default:false" json:"requer_visita"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Servico) TableName() string { return "servicos" }

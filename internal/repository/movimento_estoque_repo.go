package repository

import (
	"context"

	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimentoFilter narrows the stock movement listing. Results are newest first.
type MovimentoFilter struct {
	ProdutoID    *uuid.UUID
	ReferenciaID *uuid.UUID
	Limite       int
}

// MovimentoEstoqueRepository is append-only: movements are never updated or deleted.
type MovimentoEstoqueRepository interface {
	Create(ctx context.Context, m *model.MovimentoEstoque) error
	List(ctx context.Context, filter MovimentoFilter) ([]model.MovimentoEstoque, error)
}

type movimentoEstoqueRepo struct{ db *gorm.DB }

func NewMovimentoEstoqueRepository(db *gorm.DB) MovimentoEstoqueRepository {
	return &movimentoEstoqueRepo{db: db}
}

func (r *movimentoEstoqueRepo) Create(ctx context.Context, m *model.MovimentoEstoque) error {
	return traduzirErro(r.db.WithContext(ctx).Create(m).Error)
}

func (r *movimentoEstoqueRepo) List(ctx context.Context, filter MovimentoFilter) ([]model.MovimentoEstoque, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimentoEstoque{})
	if filter.ProdutoID != nil {
		q = q.Where("produto_id = ?", *filter.ProdutoID)
	}
	if filter.ReferenciaID != nil {
		q = q.Where("referencia_id = ?", *filter.ReferenciaID)
	}
	limite := filter.Limite
	if limite < 1 || limite > 500 {
		limite = 50
	}
	var movimentos []model.MovimentoEstoque
	err := q.Order("data DESC").Limit(limite).Find(&movimentos).Error
	return movimentos, traduzirErro(err)
}

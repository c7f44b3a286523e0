package repository

import (
	"context"
	"time"

	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrcamentoRepository interface {
	Create(ctx context.Context, o *model.Orcamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Orcamento, error)
	List(ctx context.Context) ([]model.Orcamento, error)
	Update(ctx context.Context, o *model.Orcamento) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarcarEstoqueGerado flips estoque_gerado from false to true.
	// It reports false when the flag was already set.
	MarcarEstoqueGerado(ctx context.Context, id uuid.UUID, em time.Time) (bool, error)
}

type orcamentoRepo struct{ db *gorm.DB }

func NewOrcamentoRepository(db *gorm.DB) OrcamentoRepository { return &orcamentoRepo{db: db} }

func (r *orcamentoRepo) Create(ctx context.Context, o *model.Orcamento) error {
	return traduzirErro(r.db.WithContext(ctx).Create(o).Error)
}

func (r *orcamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Orcamento, error) {
	var o model.Orcamento
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, traduzirErro(err)
	}
	return &o, nil
}

func (r *orcamentoRepo) List(ctx context.Context) ([]model.Orcamento, error) {
	var orcamentos []model.Orcamento
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orcamentos).Error
	return orcamentos, traduzirErro(err)
}

// Update leaves the stock-generation flag alone; only MarcarEstoqueGerado sets it.
func (r *orcamentoRepo) Update(ctx context.Context, o *model.Orcamento) error {
	return checarAfetados(r.db.WithContext(ctx).Model(o).Select("*").
		Omit("created_at", "estoque_gerado", "estoque_gerado_em").Updates(o))
}

func (r *orcamentoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return checarAfetados(r.db.WithContext(ctx).Delete(&model.Orcamento{}, "id = ?", id))
}

func (r *orcamentoRepo) MarcarEstoqueGerado(ctx context.Context, id uuid.UUID, em time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Orcamento{}).
		Where("id = ? AND estoque_gerado = ?", id, false).
		Updates(map[string]interface{}{
			"estoque_gerado":    true,
			"estoque_gerado_em": em,
			"updated_at":        em,
		})
	if res.Error != nil {
		return false, traduzirErro(res.Error)
	}
	return res.RowsAffected == 1, nil
}

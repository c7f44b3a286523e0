package repository

import (
	"context"
	"time"

	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransacaoCaixaRepository persists the cash ledger entries.
type TransacaoCaixaRepository interface {
	Create(ctx context.Context, t *model.TransacaoCaixa) error
	Update(ctx context.Context, t *model.TransacaoCaixa) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.TransacaoCaixa, error)
	// ListPorPeriodo returns transactions with inicio <= data <= fim.
	ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.TransacaoCaixa, error)
	// ListAnteriores returns transactions with data < antes.
	ListAnteriores(ctx context.Context, antes time.Time) ([]model.TransacaoCaixa, error)
}

type transacaoCaixaRepo struct{ db *gorm.DB }

func NewTransacaoCaixaRepository(db *gorm.DB) TransacaoCaixaRepository {
	return &transacaoCaixaRepo{db: db}
}

func (r *transacaoCaixaRepo) Create(ctx context.Context, t *model.TransacaoCaixa) error {
	return traduzirErro(r.db.WithContext(ctx).Create(t).Error)
}

func (r *transacaoCaixaRepo) Update(ctx context.Context, t *model.TransacaoCaixa) error {
	return checarAfetados(r.db.WithContext(ctx).Model(t).Select("*").Omit("created_at").Updates(t))
}

func (r *transacaoCaixaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return checarAfetados(r.db.WithContext(ctx).Delete(&model.TransacaoCaixa{}, "id = ?", id))
}

func (r *transacaoCaixaRepo) List(ctx context.Context) ([]model.TransacaoCaixa, error) {
	var txs []model.TransacaoCaixa
	err := r.db.WithContext(ctx).Order("data ASC, created_at ASC").Find(&txs).Error
	return txs, traduzirErro(err)
}

func (r *transacaoCaixaRepo) ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.TransacaoCaixa, error) {
	var txs []model.TransacaoCaixa
	err := r.db.WithContext(ctx).
		Where("data >= ? AND data <= ?", inicio, fim).
		Order("data ASC, created_at ASC").
		Find(&txs).Error
	return txs, traduzirErro(err)
}

func (r *transacaoCaixaRepo) ListAnteriores(ctx context.Context, antes time.Time) ([]model.TransacaoCaixa, error) {
	var txs []model.TransacaoCaixa
	err := r.db.WithContext(ctx).Where("data < ?", antes).Find(&txs).Error
	return txs, traduzirErro(err)
}

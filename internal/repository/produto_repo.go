package repository

import (
	"context"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// colunasLedger are written only through AplicarAjuste / AtualizarPecas.
var colunasLedger = []string{"estoque_quantidade", "estoque_status", "estoque_pecas"}

// ProdutoRepository defines the data access contract for products.
// Stock quantity, status and pieces belong to the inventory ledger: Update
// never touches them.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AplicarAjuste writes the new stock quantity/status of p and appends m
	// as a single atomic unit.
	AplicarAjuste(ctx context.Context, p *model.Produto, m *model.MovimentoEstoque) error
	// AtualizarPecas replaces the stored piece list of product id.
	AtualizarPecas(ctx context.Context, id uuid.UUID, pecas []model.Peca) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return traduzirErro(r.db.WithContext(ctx).Create(p).Error)
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, traduzirErro(err)
	}
	return &p, nil
}

func (r *produtoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error) {
	var p model.Produto
	if err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&p).Error; err != nil {
		return nil, traduzirErro(err)
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	q := r.db.WithContext(ctx).Model(&model.Produto{})
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.EstoqueBaixo {
		q = q.Where("estoque_quantidade <= estoque_quantidade_minima")
	}
	var produtos []model.Produto
	err := q.Order("nome ASC").Find(&produtos).Error
	return produtos, traduzirErro(err)
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return checarAfetados(r.db.WithContext(ctx).Model(p).Select("*").Omit(append(colunasLedger, "created_at")...).Updates(p))
}

func (r *produtoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return checarAfetados(r.db.WithContext(ctx).Delete(&model.Produto{}, "id = ?", id))
}

func (r *produtoRepo) AplicarAjuste(ctx context.Context, p *model.Produto, m *model.MovimentoEstoque) error {
	return traduzirErro(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(p).Select("estoque_quantidade", "estoque_status", "updated_at").Updates(p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(m).Error
	}))
}

func (r *produtoRepo) AtualizarPecas(ctx context.Context, id uuid.UUID, pecas []model.Peca) error {
	p := &model.Produto{ID: id, UpdatedAt: time.Now()}
	p.Pecas = pecas
	return checarAfetados(r.db.WithContext(ctx).Model(p).Select("estoque_pecas", "updated_at").Updates(p))
}

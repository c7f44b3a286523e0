package repository

import (
	"context"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository lists orders newest first.
type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return traduzirErro(r.db.WithContext(ctx).Create(p).Error)
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, traduzirErro(err)
	}
	return &p, nil
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	q := r.db.WithContext(ctx).Model(&model.Pedido{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	var pedidos []model.Pedido
	err := q.Order("created_at DESC").Find(&pedidos).Error
	return pedidos, traduzirErro(err)
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return checarAfetados(r.db.WithContext(ctx).Model(p).Select("*").Omit("created_at").Updates(p))
}

func (r *pedidoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return checarAfetados(r.db.WithContext(ctx).Delete(&model.Pedido{}, "id = ?", id))
}

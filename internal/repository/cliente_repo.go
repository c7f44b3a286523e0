package repository

import (
	"context"

	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByDocumento(ctx context.Context, numero string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return traduzirErro(r.db.WithContext(ctx).Create(c).Error)
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, traduzirErro(err)
	}
	return &c, nil
}

func (r *clienteRepo) FindByDocumento(ctx context.Context, numero string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Where("documento_numero = ?", numero).First(&c).Error; err != nil {
		return nil, traduzirErro(err)
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nome_completo ASC").Find(&clientes).Error
	return clientes, traduzirErro(err)
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return checarAfetados(r.db.WithContext(ctx).Model(c).Select("*").Omit("created_at").Updates(c))
}

func (r *clienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return checarAfetados(r.db.WithContext(ctx).Delete(&model.Cliente{}, "id = ?", id))
}

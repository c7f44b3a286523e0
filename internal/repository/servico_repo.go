package repository

import (
	"context"

	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicoRepository interface {
	Create(ctx context.Context, s *model.Servico) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servico, error)
	List(ctx context.Context) ([]model.Servico, error)
	Update(ctx context.Context, s *model.Servico) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type servicoRepo struct{ db *gorm.DB }

func NewServicoRepository(db *gorm.DB) ServicoRepository { return &servicoRepo{db: db} }

func (r *servicoRepo) Create(ctx context.Context, s *model.Servico) error {
	return traduzirErro(r.db.WithContext(ctx).Create(s).Error)
}

func (r *servicoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servico, error) {
	var s model.Servico
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, traduzirErro(err)
	}
	return &s, nil
}

func (r *servicoRepo) List(ctx context.Context) ([]model.Servico, error) {
	var servicos []model.Servico
	err := r.db.WithContext(ctx).Order("categoria ASC, nome ASC").Find(&servicos).Error
	return servicos, traduzirErro(err)
}

func (r *servicoRepo) Update(ctx context.Context, s *model.Servico) error {
	return checarAfetados(r.db.WithContext(ctx).Model(s).Select("*").Omit("created_at").Updates(s))
}

func (r *servicoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return checarAfetados(r.db.WithContext(ctx).Delete(&model.Servico{}, "id = ?", id))
}

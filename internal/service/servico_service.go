package service

import (
	"context"
	"strings"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/google/uuid"
)

type ServicoService interface {
	Criar(ctx context.Context, req dto.ServicoRequest) (*dto.ServicoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ServicoResponse, error)
	Listar(ctx context.Context) ([]dto.ServicoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.ServicoRequest) (*dto.ServicoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type servicoService struct {
	repo repository.ServicoRepository
}

func NewServicoService(repo repository.ServicoRepository) ServicoService {
	return &servicoService{repo: repo}
}

func (s *servicoService) Criar(ctx context.Context, req dto.ServicoRequest) (*dto.ServicoResponse, error) {
	agora := time.Now()
	sv := &model.Servico{ID: uuid.New(), CreatedAt: agora, UpdatedAt: agora}
	aplicarServicoRequest(sv, req)
	if err := s.repo.Create(ctx, sv); err != nil {
		return nil, erroRepositorio(err, "serviço")
	}
	return servicoToResponse(sv), nil
}

func (s *servicoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ServicoResponse, error) {
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "serviço")
	}
	return servicoToResponse(sv), nil
}

func (s *servicoService) Listar(ctx context.Context) ([]dto.ServicoResponse, error) {
	servicos, err := s.repo.List(ctx)
	if err != nil {
		return nil, erroRepositorio(err, "serviço")
	}
	out := make([]dto.ServicoResponse, len(servicos))
	for i := range servicos {
		out[i] = *servicoToResponse(&servicos[i])
	}
	return out, nil
}

func (s *servicoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.ServicoRequest) (*dto.ServicoResponse, error) {
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "serviço")
	}
	aplicarServicoRequest(sv, req)
	sv.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, sv); err != nil {
		return nil, erroRepositorio(err, "serviço")
	}
	return servicoToResponse(sv), nil
}

func (s *servicoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return erroRepositorio(err, "serviço")
	}
	return nil
}

func aplicarServicoRequest(sv *model.Servico, req dto.ServicoRequest) {
	sv.Nome = strings.TrimSpace(req.Nome)
	sv.Descricao = req.Descricao
	sv.Categoria = req.Categoria
	sv.PrecoBase = req.PrecoBase
	sv.UnidadePreco = req.UnidadePreco
	sv.TempoEstimado = req.TempoEstimado
	sv.RequerMedicao = req.RequerMedicao
	sv.RequerVisita = req.RequerVisita
}

func servicoToResponse(sv *model.Servico) *dto.ServicoResponse {
	return &dto.ServicoResponse{
		ID:            sv.ID.String(),
		Nome:          sv.Nome,
		Descricao:     sv.Descricao,
		Categoria:     sv.Categoria,
		PrecoBase:     sv.PrecoBase,
		UnidadePreco:  sv.UnidadePreco,
		TempoEstimado: sv.TempoEstimado,
		RequerMedicao: sv.RequerMedicao,
		RequerVisita:  sv.RequerVisita,
		CreatedAt:     sv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     sv.UpdatedAt.Format(time.RFC3339),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ChavePrecoCache is the Redis key of the cached pricing of a product code.
func ChavePrecoCache(codigo string) string { return "preco:" + codigo }

// ProdutoService manages the catalog. Stock fields are only set on creation;
// afterwards they belong to EstoqueService.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.ProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.ProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	repo  repository.ProdutoRepository
	rdb   *redis.Client
	agora func() time.Time
}

func NewProdutoService(repo repository.ProdutoRepository, rdb *redis.Client) ProdutoService {
	return &produtoService{repo: repo, rdb: rdb, agora: time.Now}
}

func (s *produtoService) Criar(ctx context.Context, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	if err := validarProduto(req); err != nil {
		return nil, err
	}
	agora := s.agora()
	p := &model.Produto{ID: uuid.New(), CreatedAt: agora, UpdatedAt: agora}
	aplicarProdutoRequest(p, req)
	p.Quantidade = req.Estoque.Quantidade
	p.Status = model.StatusPorQuantidade(p.Quantidade)
	p.Pecas = []model.Peca{}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, erroRepositorio(err, "produto")
	}
	return produtoToResponse(p, agora), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "produto")
	}
	return produtoToResponse(p, s.agora()), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, erroRepositorio(err, "produto")
	}
	agora := s.agora()
	out := make([]dto.ProdutoResponse, len(produtos))
	for i := range produtos {
		out[i] = *produtoToResponse(&produtos[i], agora)
	}
	return out, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	if err := validarProduto(req); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "produto")
	}
	codigoAntigo := p.Codigo
	aplicarProdutoRequest(p, req)
	p.UpdatedAt = s.agora()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, erroRepositorio(err, "produto")
	}
	s.invalidarPreco(ctx, codigoAntigo, p.Codigo)
	return produtoToResponse(p, p.UpdatedAt), nil
}

func (s *produtoService) Excluir(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return erroRepositorio(err, "produto")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return erroRepositorio(err, "produto")
	}
	s.invalidarPreco(ctx, p.Codigo)
	return nil
}

func (s *produtoService) invalidarPreco(ctx context.Context, codigos ...string) {
	if s.rdb == nil {
		return
	}
	chaves := make([]string, len(codigos))
	for i, c := range codigos {
		chaves[i] = ChavePrecoCache(c)
	}
	if err := s.rdb.Del(ctx, chaves...).Err(); err != nil {
		log.Warn().Err(err).Strs("chaves", chaves).Msg("produto: falha ao invalidar cache de preço")
	}
}

// validarProduto enforces the product form rules the tags cannot express.
func validarProduto(req dto.ProdutoRequest) error {
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Codigo) == "" {
		return fmt.Errorf("%w: nome e código são obrigatórios", ErrDadosInvalidos)
	}
	d := req.Dimensoes
	if !d.Espessura.IsPositive() || !d.Largura.IsPositive() || !d.Comprimento.IsPositive() || !d.Peso.IsPositive() {
		return fmt.Errorf("%w: todas as dimensões devem ser maiores que zero", ErrDadosInvalidos)
	}
	if strings.TrimSpace(req.Origem.Pais) == "" {
		return fmt.Errorf("%w: país de origem é obrigatório", ErrDadosInvalidos)
	}
	if req.Estoque.Quantidade.IsNegative() || req.Estoque.QuantidadeMinima.IsNegative() {
		return fmt.Errorf("%w: quantidades não podem ser negativas", ErrDadosInvalidos)
	}
	pr := req.Precificacao
	if !pr.PrecoBase.IsPositive() {
		return fmt.Errorf("%w: preço base deve ser maior que zero", ErrDadosInvalidos)
	}
	if pr.EmPromocao && (pr.PrecoPromocional == nil || !pr.PrecoPromocional.IsPositive()) {
		return fmt.Errorf("%w: preço promocional deve ser maior que zero", ErrDadosInvalidos)
	}
	for _, esp := range pr.PrecosEspeciais {
		if !esp.Preco.IsPositive() || !esp.QuantidadeMinima.IsPositive() {
			return fmt.Errorf("%w: preços especiais e quantidades mínimas devem ser maiores que zero", ErrDadosInvalidos)
		}
	}
	return nil
}

func aplicarProdutoRequest(p *model.Produto, req dto.ProdutoRequest) {
	p.Nome = strings.TrimSpace(req.Nome)
	p.Codigo = strings.TrimSpace(req.Codigo)
	p.CodigoBarras = req.CodigoBarras
	p.Tipo = req.Tipo
	p.Cor = req.Cor
	p.Padrao = req.Padrao
	p.Acabamento = req.Acabamento
	p.DimensoesProduto = model.DimensoesProduto{
		Espessura:   req.Dimensoes.Espessura,
		Largura:     req.Dimensoes.Largura,
		Comprimento: req.Dimensoes.Comprimento,
		Peso:        req.Dimensoes.Peso,
	}
	p.OrigemProduto = model.OrigemProduto{Pais: req.Origem.Pais, Regiao: req.Origem.Regiao}
	p.QuantidadeMinima = req.Estoque.QuantidadeMinima
	p.Unidade = req.Estoque.Unidade
	p.Localizacao = req.Estoque.Localizacao

	especiais := make([]model.PrecoEspecial, len(req.Precificacao.PrecosEspeciais))
	for i, e := range req.Precificacao.PrecosEspeciais {
		especiais[i] = model.PrecoEspecial{Preco: e.Preco, QuantidadeMinima: e.QuantidadeMinima}
	}
	promocional := req.Precificacao.PrecoPromocional
	if !req.Precificacao.EmPromocao {
		promocional = nil
	}
	p.PrecificacaoProduto = model.PrecificacaoProduto{
		PrecoBase:         req.Precificacao.PrecoBase,
		EmPromocao:        req.Precificacao.EmPromocao,
		PrecoPromocional:  promocional,
		PromocaoTerminaEm: req.Precificacao.PromocaoTerminaEm,
		PrecosEspeciais:   especiais,
	}
}

func produtoToResponse(p *model.Produto, agora time.Time) *dto.ProdutoResponse {
	especiais := make([]dto.PrecoEspecialRequest, len(p.PrecosEspeciais))
	for i, e := range p.PrecosEspeciais {
		especiais[i] = dto.PrecoEspecialRequest{Preco: e.Preco, QuantidadeMinima: e.QuantidadeMinima}
	}
	return &dto.ProdutoResponse{
		ID:           p.ID.String(),
		Nome:         p.Nome,
		Codigo:       p.Codigo,
		CodigoBarras: p.CodigoBarras,
		Tipo:         p.Tipo,
		Cor:          p.Cor,
		Padrao:       p.Padrao,
		Acabamento:   p.Acabamento,
		Dimensoes: dto.DimensoesRequest{
			Espessura:   p.Espessura,
			Largura:     p.Largura,
			Comprimento: p.Comprimento,
			Peso:        p.Peso,
		},
		Origem:  dto.OrigemRequest{Pais: p.Pais, Regiao: p.Regiao},
		Estoque: estoqueToResponse(p),
		Precificacao: dto.PrecificacaoRequest{
			PrecoBase:         p.PrecoBase,
			EmPromocao:        p.EmPromocao,
			PrecoPromocional:  p.PrecoPromocional,
			PromocaoTerminaEm: p.PromocaoTerminaEm,
			PrecosEspeciais:   especiais,
		},
		PrecoAtual: p.PrecoEfetivo(decimal.NewFromInt(1), agora),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}

// erroRepositorio maps repository sentinels onto service sentinels.
func erroRepositorio(err error, entidade string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNaoEncontrado, entidade)
	case errors.Is(err, repository.ErrDuplicado):
		return fmt.Errorf("%w: %s", ErrDuplicado, entidade)
	}
	log.Error().Err(err).Str("entidade", entidade).Msg("falha de persistência")
	return fmt.Errorf("%w: %w", ErrPersistencia, err)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"
	"github.com/PrManiezzo/marmo/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// EstoqueService is the inventory ledger: product stock quantity, status and
// the list of tracked pieces. Every adjustment appends a stock movement.
type EstoqueService interface {
	AjustarEstoque(ctx context.Context, produtoID uuid.UUID, req dto.AjusteEstoqueRequest) (*dto.AjusteEstoqueResponse, error)
	AdicionarPecas(ctx context.Context, produtoID uuid.UUID, pecas []dto.PecaRequest) (*dto.EstoqueResponse, error)
	ListarMovimentos(ctx context.Context, filter dto.MovimentoFilter) ([]dto.MovimentoResponse, error)
	Alertas(ctx context.Context) ([]dto.AlertaEstoqueResponse, error)
}

// NotificadorEstoque receives low-stock events; *worker.Dispatcher implements it.
type NotificadorEstoque interface {
	EnqueueAlertaEstoque(ctx context.Context, alerta worker.AlertaEstoquePayload) error
}

type estoqueService struct {
	produtos    repository.ProdutoRepository
	movimentos  repository.MovimentoEstoqueRepository
	notificador NotificadorEstoque

	// mu serialises read-modify-write on product stock within this process.
	mu    sync.Mutex
	agora func() time.Time
}

func NewEstoqueService(
	produtos repository.ProdutoRepository,
	movimentos repository.MovimentoEstoqueRepository,
	notificador NotificadorEstoque,
) EstoqueService {
	return &estoqueService{produtos: produtos, movimentos: movimentos, notificador: notificador, agora: time.Now}
}

// ── AjustarEstoque ──────────────────────────────────────────────────────────
// entrada: atual + q (q > 0)
// saida:   atual - q (0 < q <= atual)
// correcao: q        (q >= 0, absolute)

func (s *estoqueService) AjustarEstoque(ctx context.Context, produtoID uuid.UUID, req dto.AjusteEstoqueRequest) (*dto.AjusteEstoqueResponse, error) {
	tipo := model.TipoMovimento(req.Tipo)
	if req.Quantidade == nil {
		return nil, fmt.Errorf("%w: quantidade é obrigatória", ErrQuantidadeInvalida)
	}
	q := *req.Quantidade
	motivo := strings.TrimSpace(req.Motivo)
	if motivo == "" {
		return nil, fmt.Errorf("%w: motivo é obrigatório", ErrQuantidadeInvalida)
	}
	var referencia *uuid.UUID
	if req.ReferenciaID != nil && *req.ReferenciaID != "" {
		ref, err := uuid.Parse(*req.ReferenciaID)
		if err != nil {
			return nil, fmt.Errorf("%w: referencia_id inválido", ErrQuantidadeInvalida)
		}
		referencia = &ref
	}
	switch tipo {
	case model.MovimentoEntrada, model.MovimentoSaida:
		if !q.IsPositive() {
			return nil, fmt.Errorf("%w: a quantidade deve ser maior que zero", ErrQuantidadeInvalida)
		}
	case model.MovimentoCorrecao:
		if q.IsNegative() {
			return nil, fmt.Errorf("%w: a quantidade corrigida não pode ser negativa", ErrQuantidadeInvalida)
		}
	default:
		return nil, fmt.Errorf("%w: tipo de ajuste %q desconhecido", ErrQuantidadeInvalida, req.Tipo)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.buscarProduto(ctx, produtoID)
	if err != nil {
		return nil, err
	}

	atual := p.Quantidade
	var nova, registrada decimal.Decimal
	switch tipo {
	case model.MovimentoEntrada:
		nova, registrada = atual.Add(q), q
	case model.MovimentoSaida:
		if q.GreaterThan(atual) {
			return nil, fmt.Errorf("%w: disponível %s, solicitado %s", ErrEstoqueInsuficiente, atual, q)
		}
		nova, registrada = atual.Sub(q), q.Neg()
	case model.MovimentoCorrecao:
		nova, registrada = q, q
	}

	agora := s.agora()
	estavaBaixo := p.Baixo()
	p.Quantidade = nova
	p.Status = model.StatusPorQuantidade(nova)
	p.UpdatedAt = agora

	mov := &model.MovimentoEstoque{
		ID:                 uuid.New(),
		ProdutoID:          p.ID,
		Tipo:               tipo,
		Quantidade:         registrada,
		QuantidadeAnterior: atual,
		QuantidadeNova:     nova,
		Motivo:             motivo,
		ReferenciaID:       referencia,
		Data:               agora,
	}
	if err := s.produtos.AplicarAjuste(ctx, p, mov); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: produto %s", ErrNaoEncontrado, produtoID)
		}
		log.Error().Err(err).Str("produto_id", produtoID.String()).Msg("estoque: falha ao gravar ajuste")
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	log.Debug().Str("produto_id", produtoID.String()).Str("tipo", string(tipo)).
		Str("anterior", atual.String()).Str("nova", nova.String()).Msg("estoque: ajuste aplicado")

	if !estavaBaixo && p.Baixo() {
		s.notificarEstoqueBaixo(ctx, p, motivo)
	}

	return &dto.AjusteEstoqueResponse{
		Estoque:   estoqueToResponse(p),
		Movimento: movimentoToResponse(mov),
	}, nil
}

// notificarEstoqueBaixo is best effort: a queue outage never fails the adjustment.
func (s *estoqueService) notificarEstoqueBaixo(ctx context.Context, p *model.Produto, motivo string) {
	if s.notificador == nil {
		return
	}
	alerta := worker.AlertaEstoquePayload{
		ProdutoID:        p.ID.String(),
		Nome:             p.Nome,
		Codigo:           p.Codigo,
		Quantidade:       p.Quantidade,
		QuantidadeMinima: p.QuantidadeMinima,
		Unidade:          p.Unidade,
		PrecoBase:        p.PrecoBase,
		Motivo:           motivo,
	}
	if err := s.notificador.EnqueueAlertaEstoque(ctx, alerta); err != nil {
		log.Warn().Err(err).Str("produto_id", p.ID.String()).Msg("estoque: falha ao enfileirar alerta")
	}
}

// ── AdicionarPecas ──────────────────────────────────────────────────────────
// All-or-nothing: one invalid piece rejects the whole batch. The quantity is
// not changed; pieces and quantity are tracked independently.

func (s *estoqueService) AdicionarPecas(ctx context.Context, produtoID uuid.UUID, pecas []dto.PecaRequest) (*dto.EstoqueResponse, error) {
	if len(pecas) == 0 {
		return nil, fmt.Errorf("%w: nenhuma peça informada", ErrDimensoesInvalidas)
	}
	novas := make([]model.Peca, 0, len(pecas))
	for i, pr := range pecas {
		if !pr.Largura.IsPositive() || !pr.Comprimento.IsPositive() || !pr.Espessura.IsPositive() {
			return nil, fmt.Errorf("%w: peça %d precisa de largura, comprimento e espessura maiores que zero", ErrDimensoesInvalidas, i+1)
		}
		id := strings.TrimSpace(pr.ID)
		if id == "" {
			id = uuid.NewString()
		}
		novas = append(novas, model.Peca{ID: id, Largura: pr.Largura, Comprimento: pr.Comprimento, Espessura: pr.Espessura})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.buscarProduto(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	todas := append(slices.Clone(p.Pecas), novas...)
	if err := s.produtos.AtualizarPecas(ctx, p.ID, todas); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: produto %s", ErrNaoEncontrado, produtoID)
		}
		log.Error().Err(err).Str("produto_id", produtoID.String()).Msg("estoque: falha ao gravar peças")
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	p.Pecas = todas
	log.Debug().Str("produto_id", produtoID.String()).Int("pecas", len(novas)).Msg("estoque: peças adicionadas")

	resp := estoqueToResponse(p)
	return &resp, nil
}

// ── Leituras ────────────────────────────────────────────────────────────────

func (s *estoqueService) ListarMovimentos(ctx context.Context, filter dto.MovimentoFilter) ([]dto.MovimentoResponse, error) {
	f := repository.MovimentoFilter{Limite: filter.Limite}
	if filter.ProdutoID != "" {
		pid, err := uuid.Parse(filter.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("%w: produto_id inválido", ErrDadosInvalidos)
		}
		f.ProdutoID = &pid
	}
	if filter.ReferenciaID != "" {
		ref, err := uuid.Parse(filter.ReferenciaID)
		if err != nil {
			return nil, fmt.Errorf("%w: referencia_id inválido", ErrDadosInvalidos)
		}
		f.ReferenciaID = &ref
	}
	movs, err := s.movimentos.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	out := make([]dto.MovimentoResponse, len(movs))
	for i := range movs {
		out[i] = movimentoToResponse(&movs[i])
	}
	return out, nil
}

// Alertas lists products at or below their minimum quantity.
func (s *estoqueService) Alertas(ctx context.Context) ([]dto.AlertaEstoqueResponse, error) {
	produtos, err := s.produtos.List(ctx, dto.ProdutoFilter{EstoqueBaixo: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	out := make([]dto.AlertaEstoqueResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, dto.AlertaEstoqueResponse{
			ProdutoID:        p.ID.String(),
			Nome:             p.Nome,
			Codigo:           p.Codigo,
			Quantidade:       p.Quantidade,
			QuantidadeMinima: p.QuantidadeMinima,
			Unidade:          p.Unidade,
			Status:           string(p.Status),
		})
	}
	return out, nil
}

func (s *estoqueService) buscarProduto(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	p, err := s.produtos.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: produto %s", ErrNaoEncontrado, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	return p, nil
}

// ── Mapeamento ──────────────────────────────────────────────────────────────

func estoqueToResponse(p *model.Produto) dto.EstoqueResponse {
	pecas := make([]dto.PecaResponse, len(p.Pecas))
	for i, pc := range p.Pecas {
		pecas[i] = dto.PecaResponse{ID: pc.ID, Largura: pc.Largura, Comprimento: pc.Comprimento, Espessura: pc.Espessura}
	}
	return dto.EstoqueResponse{
		ProdutoID:        p.ID.String(),
		Quantidade:       p.Quantidade,
		QuantidadeMinima: p.QuantidadeMinima,
		Unidade:          p.Unidade,
		Status:           string(p.Status),
		EstoqueBaixo:     p.Baixo(),
		Pecas:            pecas,
	}
}

func movimentoToResponse(m *model.MovimentoEstoque) dto.MovimentoResponse {
	var ref *string
	if m.ReferenciaID != nil {
		s := m.ReferenciaID.String()
		ref = &s
	}
	return dto.MovimentoResponse{
		ID:                 m.ID.String(),
		ProdutoID:          m.ProdutoID.String(),
		Tipo:               string(m.Tipo),
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		Motivo:             m.Motivo,
		ReferenciaID:       ref,
		Data:               m.Data.Format(time.RFC3339),
	}
}

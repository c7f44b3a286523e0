package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ChaveSaldoCaixa holds the JSON-encoded model.SaldoCaixa mirror in Redis.
const ChaveSaldoCaixa = "caixa:saldo"

const layoutData = "2006-01-02"

// CaixaService is the cash ledger: it owns the transaction set and the
// running balance derived from it.
type CaixaService interface {
	Carregar(ctx context.Context) error
	RegistrarTransacao(ctx context.Context, req dto.TransacaoRequest) (*dto.TransacaoResponse, error)
	AtualizarTransacao(ctx context.Context, id uuid.UUID, req dto.TransacaoRequest) (*dto.TransacaoResponse, error)
	ExcluirTransacao(ctx context.Context, id uuid.UUID) error
	GerarRelatorio(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioCaixaResponse, error)
	Saldo(ctx context.Context) dto.SaldoResponse
	SaldoEmCache(ctx context.Context) (*dto.SaldoResponse, error)
	ListarTransacoes(ctx context.Context) []dto.TransacaoResponse
	Reconciliar(ctx context.Context) (*dto.ReconciliacaoResponse, error)
}

type caixaService struct {
	repo repository.TransacaoCaixaRepository
	rdb  *redis.Client

	// mu guards transacoes and saldo; repository writes happen while it is held
	// so memory is only touched after the store accepted the change.
	mu         sync.Mutex
	transacoes []model.TransacaoCaixa
	saldo      model.SaldoCaixa

	agora func() time.Time
}

func NewCaixaService(repo repository.TransacaoCaixaRepository, rdb *redis.Client) CaixaService {
	return &caixaService{repo: repo, rdb: rdb, agora: time.Now}
}

// ── Carregar / Reconciliar ──────────────────────────────────────────────────

func (s *caixaService) Carregar(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.recarregar(ctx)
	return err
}

// Reconciliar replaces the in-memory set with the stored one and recomputes
// the balance by a full fold, reporting how far the running total had drifted.
func (s *caixaService) Reconciliar(ctx context.Context) (*dto.ReconciliacaoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anterior := s.saldo.Total
	n, err := s.recarregar(ctx)
	if err != nil {
		return nil, err
	}
	diff := s.saldo.Total.Sub(anterior)
	if !diff.IsZero() {
		log.Warn().Str("anterior", anterior.String()).Str("recalculado", s.saldo.Total.String()).
			Msg("caixa: saldo divergente corrigido na reconciliação")
	}
	return &dto.ReconciliacaoResponse{
		SaldoAnterior:    anterior,
		SaldoRecalculado: s.saldo.Total,
		Diferenca:        diff,
		Transacoes:       n,
	}, nil
}

// recarregar must be called with s.mu held.
func (s *caixaService) recarregar(ctx context.Context) (int, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("caixa: falha ao carregar transações")
		return 0, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	s.transacoes = txs
	s.saldo = model.SaldoCaixa{Total: somarComSinal(txs), AtualizadoEm: s.agora()}
	s.espelharSaldo()
	log.Debug().Int("transacoes", len(txs)).Str("saldo", s.saldo.Total.String()).Msg("caixa: livro carregado")
	return len(txs), nil
}

// ── Mutações ────────────────────────────────────────────────────────────────

func (s *caixaService) RegistrarTransacao(ctx context.Context, req dto.TransacaoRequest) (*dto.TransacaoResponse, error) {
	tx, err := transacaoDeRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = uuid.New()
	if s.indice(tx.ID) >= 0 {
		return nil, fmt.Errorf("%w: id %s já existe", ErrTransacaoInvalida, tx.ID)
	}
	agora := s.agora()
	tx.CreatedAt = agora
	tx.UpdatedAt = agora

	if err := s.repo.Create(ctx, &tx); err != nil {
		log.Error().Err(err).Str("transacao_id", tx.ID.String()).Msg("caixa: falha ao gravar transação")
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}

	s.transacoes = append(s.transacoes, tx)
	s.aplicarDelta(tx.ValorComSinal())
	log.Debug().Str("transacao_id", tx.ID.String()).Str("saldo", s.saldo.Total.String()).Msg("caixa: transação registrada")
	return transacaoToResponse(&tx), nil
}

func (s *caixaService) AtualizarTransacao(ctx context.Context, id uuid.UUID, req dto.TransacaoRequest) (*dto.TransacaoResponse, error) {
	novo, err := transacaoDeRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indice(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: transação %s", ErrNaoEncontrado, id)
	}
	antigo := s.transacoes[i]
	novo.ID = antigo.ID
	novo.CreatedAt = antigo.CreatedAt
	novo.UpdatedAt = s.agora()

	if err := s.repo.Update(ctx, &novo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: transação %s", ErrNaoEncontrado, id)
		}
		log.Error().Err(err).Str("transacao_id", id.String()).Msg("caixa: falha ao atualizar transação")
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}

	s.transacoes[i] = novo
	s.aplicarDelta(novo.ValorComSinal().Sub(antigo.ValorComSinal()))
	log.Debug().Str("transacao_id", id.String()).Str("saldo", s.saldo.Total.String()).Msg("caixa: transação atualizada")
	return transacaoToResponse(&novo), nil
}

func (s *caixaService) ExcluirTransacao(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indice(id)
	if i < 0 {
		return fmt.Errorf("%w: transação %s", ErrNaoEncontrado, id)
	}
	antigo := s.transacoes[i]

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: transação %s", ErrNaoEncontrado, id)
		}
		log.Error().Err(err).Str("transacao_id", id.String()).Msg("caixa: falha ao excluir transação")
		return fmt.Errorf("%w: %w", ErrPersistencia, err)
	}

	s.transacoes = slices.Delete(s.transacoes, i, i+1)
	s.aplicarDelta(antigo.ValorComSinal().Neg())
	log.Debug().Str("transacao_id", id.String()).Str("saldo", s.saldo.Total.String()).Msg("caixa: transação excluída")
	return nil
}

// aplicarDelta must be called with s.mu held.
func (s *caixaService) aplicarDelta(delta decimal.Decimal) {
	s.saldo.Total = s.saldo.Total.Add(delta)
	s.saldo.AtualizadoEm = s.agora()
	s.espelharSaldo()
}

func (s *caixaService) indice(id uuid.UUID) int {
	return slices.IndexFunc(s.transacoes, func(t model.TransacaoCaixa) bool { return t.ID == id })
}

// ── Leituras ────────────────────────────────────────────────────────────────

func (s *caixaService) Saldo(_ context.Context) dto.SaldoResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saldoToResponse(s.saldo)
}

// ListarTransacoes returns the current set, newest business date first.
func (s *caixaService) ListarTransacoes(_ context.Context) []dto.TransacaoResponse {
	s.mu.Lock()
	txs := slices.Clone(s.transacoes)
	s.mu.Unlock()

	slices.SortStableFunc(txs, func(a, b model.TransacaoCaixa) int {
		if c := b.Data.Compare(a.Data); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	out := make([]dto.TransacaoResponse, len(txs))
	for i := range txs {
		out[i] = *transacaoToResponse(&txs[i])
	}
	return out
}

// GerarRelatorio builds the report for the inclusive date range [inicio, fim].
func (s *caixaService) GerarRelatorio(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioCaixaResponse, error) {
	inicio, fim = dataDoDia(inicio), dataDoDia(fim)
	if inicio.After(fim) {
		return nil, ErrPeriodoInvalido
	}

	anteriores, err := s.repo.ListAnteriores(ctx, inicio)
	if err != nil {
		log.Error().Err(err).Msg("caixa: falha ao consultar transações anteriores")
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	periodo, err := s.repo.ListPorPeriodo(ctx, inicio, fim)
	if err != nil {
		log.Error().Err(err).Msg("caixa: falha ao consultar transações do período")
		return nil, fmt.Errorf("%w: %w", ErrPersistencia, err)
	}
	return montarRelatorio(inicio, fim, anteriores, periodo), nil
}

// montarRelatorio is the pure part of the report: no I/O, same input same output.
func montarRelatorio(inicio, fim time.Time, anteriores, periodo []model.TransacaoCaixa) *dto.RelatorioCaixaResponse {
	r := &dto.RelatorioCaixaResponse{
		Inicio:             inicio.Format(layoutData),
		Fim:                fim.Format(layoutData),
		SaldoInicial:       somarComSinal(anteriores),
		TotalEntradas:      decimal.Zero,
		TotalSaidas:        decimal.Zero,
		PorCategoria:       make(map[string]dto.TotaisFluxo),
		PorMetodoPagamento: make(map[string]dto.TotaisFluxo),
		Transacoes:         make([]dto.TransacaoResponse, 0, len(periodo)),
	}
	for i := range periodo {
		t := &periodo[i]
		cat := r.PorCategoria[t.Categoria]
		met := r.PorMetodoPagamento[string(t.MetodoPagamento)]
		if t.Tipo == model.TransacaoEntrada {
			r.TotalEntradas = r.TotalEntradas.Add(t.Valor)
			cat.Entradas = cat.Entradas.Add(t.Valor)
			met.Entradas = met.Entradas.Add(t.Valor)
		} else {
			r.TotalSaidas = r.TotalSaidas.Add(t.Valor)
			cat.Saidas = cat.Saidas.Add(t.Valor)
			met.Saidas = met.Saidas.Add(t.Valor)
		}
		r.PorCategoria[t.Categoria] = cat
		r.PorMetodoPagamento[string(t.MetodoPagamento)] = met
		r.Transacoes = append(r.Transacoes, *transacaoToResponse(t))
	}
	r.SaldoFinal = r.SaldoInicial.Add(r.TotalEntradas).Sub(r.TotalSaidas)
	return r
}

// ── Cache Redis (best effort) ───────────────────────────────────────────────

// espelharSaldo must be called with s.mu held. Failures are logged only:
// the in-memory balance is the source the API serves.
func (s *caixaService) espelharSaldo() {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(s.saldo)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.rdb.Set(ctx, ChaveSaldoCaixa, b, 0).Err(); err != nil {
		log.Warn().Err(err).Msg("caixa: falha ao espelhar saldo no redis")
	}
}

// SaldoEmCache reads the mirrored balance; nil when nothing is cached.
func (s *caixaService) SaldoEmCache(ctx context.Context) (*dto.SaldoResponse, error) {
	if s.rdb == nil {
		return nil, nil
	}
	b, err := s.rdb.Get(ctx, ChaveSaldoCaixa).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var saldo model.SaldoCaixa
	if err := json.Unmarshal(b, &saldo); err != nil {
		return nil, err
	}
	resp := saldoToResponse(saldo)
	return &resp, nil
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func somarComSinal(txs []model.TransacaoCaixa) decimal.Decimal {
	total := decimal.Zero
	for i := range txs {
		total = total.Add(txs[i].ValorComSinal())
	}
	return total
}

// dataDoDia drops the clock part, keeping the calendar date as midnight UTC.
func dataDoDia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseData parses a YYYY-MM-DD business date as midnight UTC.
func ParseData(s string) (time.Time, error) {
	return time.ParseInLocation(layoutData, strings.TrimSpace(s), time.UTC)
}

func transacaoDeRequest(req dto.TransacaoRequest) (model.TransacaoCaixa, error) {
	var tx model.TransacaoCaixa
	tipo := model.TipoTransacao(req.Tipo)
	if tipo != model.TransacaoEntrada && tipo != model.TransacaoSaida {
		return tx, fmt.Errorf("%w: tipo %q desconhecido", ErrTransacaoInvalida, req.Tipo)
	}
	if !req.Valor.IsPositive() {
		return tx, fmt.Errorf("%w: valor deve ser maior que zero", ErrTransacaoInvalida)
	}
	metodo := model.MetodoPagamento(req.MetodoPagamento)
	if !metodo.Valido() {
		return tx, fmt.Errorf("%w: método de pagamento %q desconhecido", ErrTransacaoInvalida, req.MetodoPagamento)
	}
	categoria := strings.TrimSpace(req.Categoria)
	descricao := strings.TrimSpace(req.Descricao)
	if categoria == "" || descricao == "" {
		return tx, fmt.Errorf("%w: categoria e descrição são obrigatórias", ErrTransacaoInvalida)
	}
	if strings.TrimSpace(req.Data) == "" {
		return tx, fmt.Errorf("%w: data é obrigatória", ErrTransacaoInvalida)
	}
	data, err := ParseData(req.Data)
	if err != nil {
		return tx, fmt.Errorf("%w: data %q inválida", ErrTransacaoInvalida, req.Data)
	}
	var pedidoID *uuid.UUID
	if req.PedidoID != nil && *req.PedidoID != "" {
		pid, err := uuid.Parse(*req.PedidoID)
		if err != nil {
			return tx, fmt.Errorf("%w: pedido_id inválido", ErrTransacaoInvalida)
		}
		pedidoID = &pid
	}
	return model.TransacaoCaixa{
		Tipo:            tipo,
		Categoria:       categoria,
		Valor:           req.Valor,
		Descricao:       descricao,
		MetodoPagamento: metodo,
		PedidoID:        pedidoID,
		Data:            data,
	}, nil
}

func transacaoToResponse(t *model.TransacaoCaixa) *dto.TransacaoResponse {
	var pedidoID *string
	if t.PedidoID != nil {
		s := t.PedidoID.String()
		pedidoID = &s
	}
	return &dto.TransacaoResponse{
		ID:              t.ID.String(),
		Tipo:            string(t.Tipo),
		Categoria:       t.Categoria,
		Valor:           t.Valor,
		Descricao:       t.Descricao,
		MetodoPagamento: string(t.MetodoPagamento),
		PedidoID:        pedidoID,
		Data:            t.Data.UTC().Format(layoutData),
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.Format(time.RFC3339),
	}
}

func saldoToResponse(s model.SaldoCaixa) dto.SaldoResponse {
	return dto.SaldoResponse{Total: s.Total, AtualizadoEm: s.AtualizadoEm.Format(time.RFC3339)}
}

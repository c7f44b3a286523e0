package service_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"
	"github.com/PrManiezzo/marmo/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var errBancoFora = errors.New("connection refused")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

// ── TransacaoCaixaRepository ─────────────────────────────────────────────────

type stubTransacaoRepo struct {
	mu    sync.Mutex
	txs   map[uuid.UUID]model.TransacaoCaixa
	falha error
}

func newStubTransacaoRepo() *stubTransacaoRepo {
	return &stubTransacaoRepo{txs: make(map[uuid.UUID]model.TransacaoCaixa)}
}

func (r *stubTransacaoRepo) Create(_ context.Context, t *model.TransacaoCaixa) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.falha != nil {
		return r.falha
	}
	r.txs[t.ID] = *t
	return nil
}

func (r *stubTransacaoRepo) Update(_ context.Context, t *model.TransacaoCaixa) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.falha != nil {
		return r.falha
	}
	if _, ok := r.txs[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.txs[t.ID] = *t
	return nil
}

func (r *stubTransacaoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.falha != nil {
		return r.falha
	}
	if _, ok := r.txs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.txs, id)
	return nil
}

func (r *stubTransacaoRepo) filtrar(keep func(model.TransacaoCaixa) bool) ([]model.TransacaoCaixa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.falha != nil {
		return nil, r.falha
	}
	var out []model.TransacaoCaixa
	for _, t := range r.txs {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data.Before(out[j].Data) })
	return out, nil
}

func (r *stubTransacaoRepo) List(_ context.Context) ([]model.TransacaoCaixa, error) {
	return r.filtrar(func(model.TransacaoCaixa) bool { return true })
}

func (r *stubTransacaoRepo) ListPorPeriodo(_ context.Context, inicio, fim time.Time) ([]model.TransacaoCaixa, error) {
	return r.filtrar(func(t model.TransacaoCaixa) bool { return !t.Data.Before(inicio) && !t.Data.After(fim) })
}

func (r *stubTransacaoRepo) ListAnteriores(_ context.Context, antes time.Time) ([]model.TransacaoCaixa, error) {
	return r.filtrar(func(t model.TransacaoCaixa) bool { return t.Data.Before(antes) })
}

// ── ProdutoRepository + MovimentoEstoqueRepository ───────────────────────────

// stubProdutoRepo hands out copies so services cannot mutate stored state
// without going through the repository.
type stubProdutoRepo struct {
	mu         sync.Mutex
	produtos   map[uuid.UUID]model.Produto
	movimentos *stubMovimentoRepo
	falha      error
}

func newStubProdutoRepo(movs *stubMovimentoRepo) *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]model.Produto), movimentos: movs}
}

func copiar(p model.Produto) model.Produto {
	p.Pecas = slices.Clone(p.Pecas)
	p.PrecosEspeciais = slices.Clone(p.PrecosEspeciais)
	return p
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, outro := range r.produtos {
		if outro.Codigo == p.Codigo {
			return repository.ErrDuplicado
		}
	}
	r.produtos[p.ID] = copiar(*p)
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.produtos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := copiar(p)
	return &c, nil
}

func (r *stubProdutoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Produto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.produtos {
		if p.Codigo == codigo {
			c := copiar(p)
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubProdutoRepo) List(_ context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Produto
	for _, p := range r.produtos {
		if filter.EstoqueBaixo && !p.Baixo() {
			continue
		}
		out = append(out, copiar(p))
	}
	return out, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	atual, ok := r.produtos[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	novo := copiar(*p)
	novo.EstoqueProduto.Quantidade = atual.Quantidade
	novo.EstoqueProduto.Status = atual.Status
	novo.EstoqueProduto.Pecas = atual.Pecas
	r.produtos[p.ID] = novo
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.produtos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.produtos, id)
	return nil
}

func (r *stubProdutoRepo) AplicarAjuste(ctx context.Context, p *model.Produto, m *model.MovimentoEstoque) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.falha != nil {
		return r.falha
	}
	atual, ok := r.produtos[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	atual.Quantidade = p.Quantidade
	atual.Status = p.Status
	atual.UpdatedAt = p.UpdatedAt
	r.produtos[p.ID] = atual
	return r.movimentos.Create(ctx, m)
}

func (r *stubProdutoRepo) AtualizarPecas(_ context.Context, id uuid.UUID, pecas []model.Peca) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.falha != nil {
		return r.falha
	}
	atual, ok := r.produtos[id]
	if !ok {
		return repository.ErrNotFound
	}
	atual.Pecas = slices.Clone(pecas)
	r.produtos[id] = atual
	return nil
}

// armazenado reads the stored product directly, bypassing the service.
func (r *stubProdutoRepo) armazenado(id uuid.UUID) model.Produto {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copiar(r.produtos[id])
}

type stubMovimentoRepo struct {
	mu   sync.Mutex
	movs []model.MovimentoEstoque
}

func (r *stubMovimentoRepo) Create(_ context.Context, m *model.MovimentoEstoque) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movs = append(r.movs, *m)
	return nil
}

func (r *stubMovimentoRepo) List(_ context.Context, filter repository.MovimentoFilter) ([]model.MovimentoEstoque, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MovimentoEstoque
	for i := len(r.movs) - 1; i >= 0; i-- {
		m := r.movs[i]
		if filter.ProdutoID != nil && m.ProdutoID != *filter.ProdutoID {
			continue
		}
		if filter.ReferenciaID != nil && (m.ReferenciaID == nil || *m.ReferenciaID != *filter.ReferenciaID) {
			continue
		}
		out = append(out, m)
		if filter.Limite > 0 && len(out) == filter.Limite {
			break
		}
	}
	return out, nil
}

func (r *stubMovimentoRepo) todos() []model.MovimentoEstoque {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.movs)
}

type stubNotificador struct {
	mu      sync.Mutex
	alertas []worker.AlertaEstoquePayload
}

func (n *stubNotificador) EnqueueAlertaEstoque(_ context.Context, a worker.AlertaEstoquePayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alertas = append(n.alertas, a)
	return nil
}

// ── Cadastros ────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	for _, outro := range r.clientes {
		if outro.DocumentoNumero == c.DocumentoNumero {
			return repository.ErrDuplicado
		}
	}
	r.clientes[c.ID] = *c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *stubClienteRepo) FindByDocumento(_ context.Context, numero string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.DocumentoNumero == numero {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	if _, ok := r.clientes[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.clientes[c.ID] = *c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.clientes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.clientes, id)
	return nil
}

type stubServicoRepo struct {
	servicos map[uuid.UUID]model.Servico
}

func newStubServicoRepo() *stubServicoRepo {
	return &stubServicoRepo{servicos: make(map[uuid.UUID]model.Servico)}
}

func (r *stubServicoRepo) Create(_ context.Context, s *model.Servico) error {
	r.servicos[s.ID] = *s
	return nil
}

func (r *stubServicoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Servico, error) {
	s, ok := r.servicos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *stubServicoRepo) List(_ context.Context) ([]model.Servico, error) {
	out := make([]model.Servico, 0, len(r.servicos))
	for _, s := range r.servicos {
		out = append(out, s)
	}
	return out, nil
}

func (r *stubServicoRepo) Update(_ context.Context, s *model.Servico) error {
	if _, ok := r.servicos[s.ID]; !ok {
		return repository.ErrNotFound
	}
	r.servicos[s.ID] = *s
	return nil
}

func (r *stubServicoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.servicos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.servicos, id)
	return nil
}

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]model.Pedido)}
}

func (r *stubPedidoRepo) Create(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = *p
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *stubPedidoRepo) List(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	if _, ok := r.pedidos[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.pedidos[p.ID] = *p
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.pedidos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.pedidos, id)
	return nil
}

type stubOrcamentoRepo struct {
	mu         sync.Mutex
	orcamentos map[uuid.UUID]model.Orcamento
}

func newStubOrcamentoRepo() *stubOrcamentoRepo {
	return &stubOrcamentoRepo{orcamentos: make(map[uuid.UUID]model.Orcamento)}
}

func (r *stubOrcamentoRepo) Create(_ context.Context, o *model.Orcamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orcamentos[o.ID] = *o
	return nil
}

func (r *stubOrcamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Orcamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orcamentos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r *stubOrcamentoRepo) List(_ context.Context) ([]model.Orcamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Orcamento, 0, len(r.orcamentos))
	for _, o := range r.orcamentos {
		out = append(out, o)
	}
	return out, nil
}

func (r *stubOrcamentoRepo) Update(_ context.Context, o *model.Orcamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	atual, ok := r.orcamentos[o.ID]
	if !ok {
		return repository.ErrNotFound
	}
	novo := *o
	novo.EstoqueGerado = atual.EstoqueGerado
	novo.EstoqueGeradoEm = atual.EstoqueGeradoEm
	r.orcamentos[o.ID] = novo
	return nil
}

func (r *stubOrcamentoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orcamentos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.orcamentos, id)
	return nil
}

func (r *stubOrcamentoRepo) MarcarEstoqueGerado(_ context.Context, id uuid.UUID, em time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orcamentos[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	if o.EstoqueGerado {
		return false, nil
	}
	o.EstoqueGerado = true
	o.EstoqueGeradoEm = &em
	r.orcamentos[id] = o
	return true, nil
}

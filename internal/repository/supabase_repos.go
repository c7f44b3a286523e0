package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"

	"github.com/google/uuid"
	supabase "github.com/nedpals/supabase-go"
)

// ── Transações de caixa ─────────────────────────────────────────────────────

type supabaseTransacaoRepo struct{ col colecao[model.TransacaoCaixa] }

func NewSupabaseTransacaoCaixaRepository(client *supabase.Client) TransacaoCaixaRepository {
	return &supabaseTransacaoRepo{col: novaColecao[model.TransacaoCaixa](client, "transacoes_caixa")}
}

func (r *supabaseTransacaoRepo) Create(ctx context.Context, t *model.TransacaoCaixa) error {
	return r.col.inserir(ctx, t)
}

func (r *supabaseTransacaoRepo) Update(ctx context.Context, t *model.TransacaoCaixa) error {
	payload, err := semCampos(t, "id", "created_at")
	if err != nil {
		return err
	}
	return r.col.atualizarPorID(ctx, t.ID.String(), payload)
}

func (r *supabaseTransacaoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.excluir(ctx, id.String())
}

func (r *supabaseTransacaoRepo) List(ctx context.Context) ([]model.TransacaoCaixa, error) {
	txs, err := r.col.todos(ctx)
	ordenarTransacoes(txs)
	return txs, err
}

func (r *supabaseTransacaoRepo) ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.TransacaoCaixa, error) {
	txs, err := r.col.entre(ctx, "data", inicio, fim)
	ordenarTransacoes(txs)
	return txs, err
}

func (r *supabaseTransacaoRepo) ListAnteriores(ctx context.Context, antes time.Time) ([]model.TransacaoCaixa, error) {
	return r.col.antes(ctx, "data", antes)
}

func ordenarTransacoes(txs []model.TransacaoCaixa) {
	slices.SortStableFunc(txs, func(a, b model.TransacaoCaixa) int {
		if c := a.Data.Compare(b.Data); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

// ── Produtos ────────────────────────────────────────────────────────────────

type supabaseProdutoRepo struct {
	col        colecao[model.Produto]
	movimentos colecao[model.MovimentoEstoque]
}

func NewSupabaseProdutoRepository(client *supabase.Client) ProdutoRepository {
	return &supabaseProdutoRepo{
		col:        novaColecao[model.Produto](client, "produtos"),
		movimentos: novaColecao[model.MovimentoEstoque](client, "movimentos_estoque"),
	}
}

func (r *supabaseProdutoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.col.inserir(ctx, p)
}

func (r *supabaseProdutoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	return r.col.umPorCampo(ctx, "id", id.String())
}

func (r *supabaseProdutoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error) {
	return r.col.umPorCampo(ctx, "codigo", codigo)
}

func (r *supabaseProdutoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	todos, err := r.col.todos(ctx)
	if err != nil {
		return nil, err
	}
	nome := strings.ToLower(filter.Nome)
	produtos := make([]model.Produto, 0, len(todos))
	for _, p := range todos {
		if nome != "" && !strings.Contains(strings.ToLower(p.Nome), nome) {
			continue
		}
		if filter.Tipo != "" && p.Tipo != filter.Tipo {
			continue
		}
		if filter.EstoqueBaixo && !p.Baixo() {
			continue
		}
		produtos = append(produtos, p)
	}
	slices.SortFunc(produtos, func(a, b model.Produto) int { return strings.Compare(a.Nome, b.Nome) })
	return produtos, nil
}

func (r *supabaseProdutoRepo) Update(ctx context.Context, p *model.Produto) error {
	payload, err := semCampos(p, append(colunasLedger, "id", "created_at")...)
	if err != nil {
		return err
	}
	return r.col.atualizarPorID(ctx, p.ID.String(), payload)
}

func (r *supabaseProdutoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.excluir(ctx, id.String())
}

// AplicarAjuste has no transaction to lean on: when the movement insert fails
// the stock columns are written back to their previous values.
func (r *supabaseProdutoRepo) AplicarAjuste(ctx context.Context, p *model.Produto, m *model.MovimentoEstoque) error {
	err := r.col.atualizarPorID(ctx, p.ID.String(), map[string]interface{}{
		"estoque_quantidade": p.Quantidade,
		"estoque_status":     p.Status,
		"updated_at":         p.UpdatedAt,
	})
	if err != nil {
		return err
	}
	if err := r.movimentos.inserir(ctx, m); err != nil {
		restaurar := map[string]interface{}{
			"estoque_quantidade": m.QuantidadeAnterior,
			"estoque_status":     model.StatusPorQuantidade(m.QuantidadeAnterior),
		}
		if rerr := r.col.atualizarPorID(context.WithoutCancel(ctx), p.ID.String(), restaurar); rerr != nil {
			return errors.Join(err, fmt.Errorf("restaurando estoque do produto %s: %w", p.ID, rerr))
		}
		return err
	}
	return nil
}

func (r *supabaseProdutoRepo) AtualizarPecas(ctx context.Context, id uuid.UUID, pecas []model.Peca) error {
	return r.col.atualizarPorID(ctx, id.String(), map[string]interface{}{
		"estoque_pecas": pecas,
		"updated_at":    time.Now(),
	})
}

// ── Movimentos de estoque ───────────────────────────────────────────────────

type supabaseMovimentoRepo struct{ col colecao[model.MovimentoEstoque] }

func NewSupabaseMovimentoEstoqueRepository(client *supabase.Client) MovimentoEstoqueRepository {
	return &supabaseMovimentoRepo{col: novaColecao[model.MovimentoEstoque](client, "movimentos_estoque")}
}

func (r *supabaseMovimentoRepo) Create(ctx context.Context, m *model.MovimentoEstoque) error {
	return r.col.inserir(ctx, m)
}

func (r *supabaseMovimentoRepo) List(ctx context.Context, filter MovimentoFilter) ([]model.MovimentoEstoque, error) {
	var (
		movimentos []model.MovimentoEstoque
		err        error
	)
	switch {
	case filter.ReferenciaID != nil:
		movimentos, err = r.col.porCampo(ctx, "referencia_id", filter.ReferenciaID.String())
	case filter.ProdutoID != nil:
		movimentos, err = r.col.porCampo(ctx, "produto_id", filter.ProdutoID.String())
	default:
		movimentos, err = r.col.todos(ctx)
	}
	if err != nil {
		return nil, err
	}
	if filter.ReferenciaID != nil && filter.ProdutoID != nil {
		movimentos = slices.DeleteFunc(movimentos, func(m model.MovimentoEstoque) bool { return m.ProdutoID != *filter.ProdutoID })
	}
	slices.SortFunc(movimentos, func(a, b model.MovimentoEstoque) int { return b.Data.Compare(a.Data) })
	limite := filter.Limite
	if limite < 1 || limite > 500 {
		limite = 50
	}
	if len(movimentos) > limite {
		movimentos = movimentos[:limite]
	}
	return movimentos, nil
}

// ── Clientes ────────────────────────────────────────────────────────────────

type supabaseClienteRepo struct{ col colecao[model.Cliente] }

func NewSupabaseClienteRepository(client *supabase.Client) ClienteRepository {
	return &supabaseClienteRepo{col: novaColecao[model.Cliente](client, "clientes")}
}

func (r *supabaseClienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.col.inserir(ctx, c)
}

func (r *supabaseClienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	return r.col.umPorCampo(ctx, "id", id.String())
}

func (r *supabaseClienteRepo) FindByDocumento(ctx context.Context, numero string) (*model.Cliente, error) {
	return r.col.umPorCampo(ctx, "documento_numero", numero)
}

func (r *supabaseClienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	clientes, err := r.col.todos(ctx)
	slices.SortFunc(clientes, func(a, b model.Cliente) int { return strings.Compare(a.NomeCompleto, b.NomeCompleto) })
	return clientes, err
}

func (r *supabaseClienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	payload, err := semCampos(c, "id", "created_at")
	if err != nil {
		return err
	}
	return r.col.atualizarPorID(ctx, c.ID.String(), payload)
}

func (r *supabaseClienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.excluir(ctx, id.String())
}

// ── Serviços ────────────────────────────────────────────────────────────────

type supabaseServicoRepo struct{ col colecao[model.Servico] }

func NewSupabaseServicoRepository(client *supabase.Client) ServicoRepository {
	return &supabaseServicoRepo{col: novaColecao[model.Servico](client, "servicos")}
}

func (r *supabaseServicoRepo) Create(ctx context.Context, s *model.Servico) error {
	return r.col.inserir(ctx, s)
}

func (r *supabaseServicoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servico, error) {
	return r.col.umPorCampo(ctx, "id", id.String())
}

func (r *supabaseServicoRepo) List(ctx context.Context) ([]model.Servico, error) {
	servicos, err := r.col.todos(ctx)
	slices.SortFunc(servicos, func(a, b model.Servico) int {
		if c := strings.Compare(a.Categoria, b.Categoria); c != 0 {
			return c
		}
		return strings.Compare(a.Nome, b.Nome)
	})
	return servicos, err
}

func (r *supabaseServicoRepo) Update(ctx context.Context, s *model.Servico) error {
	payload, err := semCampos(s, "id", "created_at")
	if err != nil {
		return err
	}
	return r.col.atualizarPorID(ctx, s.ID.String(), payload)
}

func (r *supabaseServicoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.excluir(ctx, id.String())
}

// ── Pedidos ─────────────────────────────────────────────────────────────────

type supabasePedidoRepo struct{ col colecao[model.Pedido] }

func NewSupabasePedidoRepository(client *supabase.Client) PedidoRepository {
	return &supabasePedidoRepo{col: novaColecao[model.Pedido](client, "pedidos")}
}

func (r *supabasePedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.col.inserir(ctx, p)
}

func (r *supabasePedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	return r.col.umPorCampo(ctx, "id", id.String())
}

func (r *supabasePedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var (
		todos []model.Pedido
		err   error
	)
	if filter.ClienteID != "" {
		todos, err = r.col.porCampo(ctx, "cliente_id", filter.ClienteID)
	} else {
		todos, err = r.col.todos(ctx)
	}
	if err != nil {
		return nil, err
	}
	pedidos := todos[:0]
	for _, p := range todos {
		if filter.Status == "" || p.Status == filter.Status {
			pedidos = append(pedidos, p)
		}
	}
	slices.SortFunc(pedidos, func(a, b model.Pedido) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return pedidos, nil
}

func (r *supabasePedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	payload, err := semCampos(p, "id", "created_at")
	if err != nil {
		return err
	}
	return r.col.atualizarPorID(ctx, p.ID.String(), payload)
}

func (r *supabasePedidoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.excluir(ctx, id.String())
}

// ── Orçamentos ──────────────────────────────────────────────────────────────

type supabaseOrcamentoRepo struct{ col colecao[model.Orcamento] }

func NewSupabaseOrcamentoRepository(client *supabase.Client) OrcamentoRepository {
	return &supabaseOrcamentoRepo{col: novaColecao[model.Orcamento](client, "orcamentos")}
}

func (r *supabaseOrcamentoRepo) Create(ctx context.Context, o *model.Orcamento) error {
	return r.col.inserir(ctx, o)
}

func (r *supabaseOrcamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Orcamento, error) {
	return r.col.umPorCampo(ctx, "id", id.String())
}

func (r *supabaseOrcamentoRepo) List(ctx context.Context) ([]model.Orcamento, error) {
	orcamentos, err := r.col.todos(ctx)
	slices.SortFunc(orcamentos, func(a, b model.Orcamento) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return orcamentos, err
}

func (r *supabaseOrcamentoRepo) Update(ctx context.Context, o *model.Orcamento) error {
	payload, err := semCampos(o, "id", "created_at", "estoque_gerado", "estoque_gerado_em")
	if err != nil {
		return err
	}
	return r.col.atualizarPorID(ctx, o.ID.String(), payload)
}

func (r *supabaseOrcamentoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.col.excluir(ctx, id.String())
}

// MarcarEstoqueGerado relies on PostgREST applying both filters in a single
// UPDATE, which gives the same false→true guarantee as the SQL driver.
func (r *supabaseOrcamentoRepo) MarcarEstoqueGerado(ctx context.Context, id uuid.UUID, em time.Time) (bool, error) {
	n, err := r.col.atualizar(ctx, map[string]interface{}{
		"estoque_gerado":    true,
		"estoque_gerado_em": em,
		"updated_at":        em,
	}, "id", id.String(), "estoque_gerado", "false")
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

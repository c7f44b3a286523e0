package repository

import (
	supabase "github.com/nedpals/supabase-go"
	"gorm.io/gorm"
)

// Repositorios bundles one repository per collection for the selected driver.
type Repositorios struct {
	Clientes   ClienteRepository
	Produtos   ProdutoRepository
	Servicos   ServicoRepository
	Pedidos    PedidoRepository
	Orcamentos OrcamentoRepository
	Transacoes TransacaoCaixaRepository
	Movimentos MovimentoEstoqueRepository
}

// NewGormRepositorios wires the Postgres (gorm) implementations.
func NewGormRepositorios(db *gorm.DB) *Repositorios {
	return &Repositorios{
		Clientes:   NewClienteRepository(db),
		Produtos:   NewProdutoRepository(db),
		Servicos:   NewServicoRepository(db),
		Pedidos:    NewPedidoRepository(db),
		Orcamentos: NewOrcamentoRepository(db),
		Transacoes: NewTransacaoCaixaRepository(db),
		Movimentos: NewMovimentoEstoqueRepository(db),
	}
}

// NewSupabaseRepositorios wires the hosted PostgREST implementations.
func NewSupabaseRepositorios(client *supabase.Client) *Repositorios {
	return &Repositorios{
		Clientes:   NewSupabaseClienteRepository(client),
		Produtos:   NewSupabaseProdutoRepository(client),
		Servicos:   NewSupabaseServicoRepository(client),
		Pedidos:    NewSupabasePedidoRepository(client),
		Orcamentos: NewSupabaseOrcamentoRepository(client),
		Transacoes: NewSupabaseTransacaoCaixaRepository(client),
		Movimentos: NewSupabaseMovimentoEstoqueRepository(client),
	}
}

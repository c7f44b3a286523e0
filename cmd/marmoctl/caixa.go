package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/moeda"
	"github.com/PrManiezzo/marmo/internal/service"

	"github.com/google/subcommands"
)

type relatorioCmd struct {
	inicio string
	fim    string
}

func (*relatorioCmd) Name() string     { return "relatorio" }
func (*relatorioCmd) Synopsis() string { return "imprime o relatório do caixa de um período" }
func (*relatorioCmd) Usage() string {
	return `marmoctl relatorio -inicio AAAA-MM-DD [-fim AAAA-MM-DD]

  Saldo inicial, entradas, saídas e saldo final do período, com os totais
  por categoria e por método de pagamento. -fim padrão: hoje.
`
}

func (p *relatorioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.inicio, "inicio", "", "data inicial (AAAA-MM-DD)")
	f.StringVar(&p.fim, "fim", time.Now().Format("2006-01-02"), "data final (AAAA-MM-DD)")
}

func (p *relatorioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.inicio == "" {
		fmt.Fprintln(os.Stderr, "-inicio é obrigatório")
		return subcommands.ExitUsageError
	}
	inicio, err := service.ParseData(p.inicio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "data inicial inválida: %v\n", err)
		return subcommands.ExitUsageError
	}
	fim, err := service.ParseData(p.fim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "data final inválida: %v\n", err)
		return subcommands.ExitUsageError
	}

	amb, err := abrirAmbiente(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer amb.fechar()

	caixa := service.NewCaixaService(amb.storage.Repos.Transacoes, nil)
	rel, err := caixa.GerarRelatorio(ctx, inicio, fim)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	imprimirRelatorio(rel, amb.cfg.Moeda)
	return subcommands.ExitSuccess
}

func imprimirRelatorio(rel *dto.RelatorioCaixaResponse, codigo string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Printf("Relatório do caixa %s a %s\n\n", rel.Inicio, rel.Fim)
	fmt.Fprintf(w, "Saldo inicial\t%s\t\n", moeda.Formatar(rel.SaldoInicial, codigo))
	fmt.Fprintf(w, "Entradas\t%s\t\n", moeda.Formatar(rel.TotalEntradas, codigo))
	fmt.Fprintf(w, "Saídas\t%s\t\n", moeda.Formatar(rel.TotalSaidas, codigo))
	fmt.Fprintf(w, "Saldo final\t%s\t\n", moeda.Formatar(rel.SaldoFinal, codigo))
	_ = w.Flush()

	imprimirTotais("Por categoria", rel.PorCategoria, codigo)
	imprimirTotais("Por método de pagamento", rel.PorMetodoPagamento, codigo)
	fmt.Printf("\n%d transações no período\n", len(rel.Transacoes))
}

func imprimirTotais(titulo string, totais map[string]dto.TotaisFluxo, codigo string) {
	if len(totais) == 0 {
		return
	}
	chaves := make([]string, 0, len(totais))
	for k := range totais {
		chaves = append(chaves, k)
	}
	sort.Strings(chaves)

	fmt.Printf("\n%s\n", titulo)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tentradas\tsaídas")
	for _, k := range chaves {
		t := totais[k]
		fmt.Fprintf(w, "%s\t%s\t%s\n", k, moeda.Formatar(t.Entradas, codigo), moeda.Formatar(t.Saidas, codigo))
	}
	_ = w.Flush()
}

type saldoCmd struct {
	reconciliar bool
}

func (*saldoCmd) Name() string     { return "saldo" }
func (*saldoCmd) Synopsis() string { return "mostra o saldo do caixa calculado a partir do banco" }
func (*saldoCmd) Usage() string {
	return `marmoctl saldo [-reconciliar]

  Soma todas as transações gravadas. Com -reconciliar, compara com o saldo
  espelhado no Redis e o atualiza.
`
}

func (p *saldoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.reconciliar, "reconciliar", false, "compara com o saldo em cache e o atualiza")
}

func (p *saldoCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amb, err := abrirAmbiente(p.reconciliar)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer amb.fechar()

	// without -reconciliar the service gets no Redis client so the cache is left alone
	caixa := service.NewCaixaService(amb.storage.Repos.Transacoes, amb.rdb)

	var emCache *dto.SaldoResponse
	if p.reconciliar {
		emCache, err = caixa.SaldoEmCache(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "falha ao ler o saldo em cache: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := caixa.Carregar(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	saldo := caixa.Saldo(ctx)
	fmt.Printf("Saldo: %s\n", moeda.Formatar(saldo.Total, amb.cfg.Moeda))

	if !p.reconciliar {
		return subcommands.ExitSuccess
	}
	if emCache == nil {
		fmt.Println("Nenhum saldo em cache; valor gravado no Redis.")
		return subcommands.ExitSuccess
	}
	diff := saldo.Total.Sub(emCache.Total)
	if diff.IsZero() {
		fmt.Println("Cache em dia.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Cache divergente: %s (diferença %s); atualizado.\n",
		moeda.Formatar(emCache.Total, amb.cfg.Moeda), moeda.Formatar(diff, amb.cfg.Moeda))
	return subcommands.ExitSuccess
}

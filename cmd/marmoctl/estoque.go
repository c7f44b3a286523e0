package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/service"
	"github.com/PrManiezzo/marmo/internal/worker"

	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type movimentosCmd struct {
	produto string
	limite  int
}

func (*movimentosCmd) Name() string     { return "movimentos" }
func (*movimentosCmd) Synopsis() string { return "lista os últimos movimentos de estoque" }
func (*movimentosCmd) Usage() string {
	return `marmoctl movimentos [-produto <id>] [-limite N]
`
}

func (p *movimentosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.produto, "produto", "", "filtra por ID de produto")
	f.IntVar(&p.limite, "limite", 20, "quantidade máxima de movimentos")
}

func (p *movimentosCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.produto != "" {
		if _, err := uuid.Parse(p.produto); err != nil {
			fmt.Fprintf(os.Stderr, "ID de produto inválido: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if p.limite < 1 || p.limite > 500 {
		fmt.Fprintln(os.Stderr, "-limite deve estar entre 1 e 500")
		return subcommands.ExitUsageError
	}

	amb, err := abrirAmbiente(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer amb.fechar()

	repos := amb.storage.Repos
	estoque := service.NewEstoqueService(repos.Produtos, repos.Movimentos, worker.NewDispatcher(nil))
	movs, err := estoque.ListarMovimentos(ctx, dto.MovimentoFilter{ProdutoID: p.produto, Limite: p.limite})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATA\tPRODUTO\tTIPO\tQTD\tANTES\tDEPOIS\tMOTIVO")
	for _, m := range movs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Data, m.ProdutoID, m.Tipo, m.Quantidade, m.QuantidadeAnterior, m.QuantidadeNova, m.Motivo)
	}
	_ = w.Flush()
	return subcommands.ExitSuccess
}

type dlqCmd struct {
	reprocessar bool
	limite      int64
}

func (*dlqCmd) Name() string     { return "dlq" }
func (*dlqCmd) Synopsis() string { return "inspeciona ou reprocessa alertas de estoque que falharam" }
func (*dlqCmd) Usage() string {
	return `marmoctl dlq [-limite N] [-reprocessar]

  Lista os jobs parados na fila de mensagens mortas de e-mail. Com
  -reprocessar, devolve todos para a fila principal.
`
}

func (p *dlqCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.reprocessar, "reprocessar", false, "devolve os jobs para a fila")
	f.Int64Var(&p.limite, "limite", 20, "quantidade máxima de entradas listadas")
}

func (p *dlqCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amb, err := abrirAmbiente(true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer amb.fechar()

	if p.reprocessar {
		n, err := worker.ReplayDLQ(ctx, amb.rdb, worker.QueueEmail)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reprocessamento interrompido após %d jobs: %v\n", n, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%d jobs devolvidos para %s\n", n, worker.QueueEmail)
		return subcommands.ExitSuccess
	}

	total, err := worker.DLQLength(ctx, amb.rdb, worker.QueueEmail)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	entries, err := worker.ListDLQ(ctx, amb.rdb, worker.QueueEmail, p.limite)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d jobs em %s%s\n", total, worker.DLQPrefix, worker.QueueEmail)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FALHOU EM\tTIPO\tTENTATIVAS\tMOTIVO")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.FailedAt, e.JobType, e.Attempts, e.Reason)
	}
	_ = w.Flush()
	return subcommands.ExitSuccess
}

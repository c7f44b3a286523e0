package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const validadePadraoOrcamento = 15 * 24 * time.Hour

type OrcamentoService interface {
	Criar(ctx context.Context, req dto.OrcamentoRequest) (*dto.OrcamentoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.OrcamentoResponse, error)
	Listar(ctx context.Context) ([]dto.OrcamentoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.OrcamentoRequest) (*dto.OrcamentoResponse, error)
	AtualizarStatus(ctx context.Context, id uuid.UUID, status model.StatusOrcamento) (*dto.OrcamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	GerarEstoque(ctx context.Context, id uuid.UUID) (*dto.GerarEstoqueResponse, error)
}

type orcamentoService struct {
	orcamentos repository.OrcamentoRepository
	clientes   repository.ClienteRepository
	produtos   repository.ProdutoRepository
	servicos   repository.ServicoRepository
	estoque    EstoqueService

	// geracao serialises GerarEstoque so two calls cannot both pass the flag check.
	geracao sync.Mutex
	agora   func() time.Time
}

func NewOrcamentoService(
	orcamentos repository.OrcamentoRepository,
	clientes repository.ClienteRepository,
	produtos repository.ProdutoRepository,
	servicos repository.ServicoRepository,
	estoque EstoqueService,
) OrcamentoService {
	return &orcamentoService{
		orcamentos: orcamentos,
		clientes:   clientes,
		produtos:   produtos,
		servicos:   servicos,
		estoque:    estoque,
		agora:      time.Now,
	}
}

func (s *orcamentoService) Criar(ctx context.Context, req dto.OrcamentoRequest) (*dto.OrcamentoResponse, error) {
	agora := s.agora()
	o := &model.Orcamento{
		ID:        uuid.New(),
		Status:    model.OrcamentoPendente,
		CreatedAt: agora,
		UpdatedAt: agora,
	}
	if err := s.montar(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.orcamentos.Create(ctx, o); err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	return orcamentoToResponse(o), nil
}

func (s *orcamentoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.OrcamentoResponse, error) {
	o, err := s.orcamentos.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	return orcamentoToResponse(o), nil
}

func (s *orcamentoService) Listar(ctx context.Context) ([]dto.OrcamentoResponse, error) {
	orcamentos, err := s.orcamentos.List(ctx)
	if err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	out := make([]dto.OrcamentoResponse, len(orcamentos))
	for i := range orcamentos {
		out[i] = *orcamentoToResponse(&orcamentos[i])
	}
	return out, nil
}

func (s *orcamentoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.OrcamentoRequest) (*dto.OrcamentoResponse, error) {
	o, err := s.orcamentos.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	if err := s.montar(ctx, o, req); err != nil {
		return nil, err
	}
	o.UpdatedAt = s.agora()
	if err := s.orcamentos.Update(ctx, o); err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	return orcamentoToResponse(o), nil
}

func (s *orcamentoService) AtualizarStatus(ctx context.Context, id uuid.UUID, status model.StatusOrcamento) (*dto.OrcamentoResponse, error) {
	switch status {
	case model.OrcamentoPendente, model.OrcamentoAprovado, model.OrcamentoRejeitado:
	default:
		return nil, fmt.Errorf("%w: status %q desconhecido", ErrDadosInvalidos, status)
	}
	o, err := s.orcamentos.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	agora := s.agora()
	o.Status = status
	o.StatusAtualizadoEm = &agora
	o.UpdatedAt = agora
	if err := s.orcamentos.Update(ctx, o); err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	log.Info().Str("orcamento_id", id.String()).Str("status", string(status)).Msg("orçamento: status atualizado")
	return orcamentoToResponse(o), nil
}

func (s *orcamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if err := s.orcamentos.Delete(ctx, id); err != nil {
		return erroRepositorio(err, "orçamento")
	}
	return nil
}

// ── GerarEstoque ────────────────────────────────────────────────────────────
// Items with measurements become one tracked piece; the rest are stock
// entries referencing the quotation. The flag flips only after every item is
// applied, with a conditional update so a concurrent process cannot set it twice.
//
// A run that fails midway leaves the flag unset. The retry skips what the
// earlier run already applied: pieces carry an ID derived from the quotation
// and item position, and entries are matched against the movements that
// reference the quotation, one movement per item of the same product.

func (s *orcamentoService) GerarEstoque(ctx context.Context, id uuid.UUID) (*dto.GerarEstoqueResponse, error) {
	s.geracao.Lock()
	defer s.geracao.Unlock()

	o, err := s.orcamentos.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	if o.Status != model.OrcamentoAprovado {
		return nil, fmt.Errorf("%w: status atual %q", ErrOrcamentoNaoAprovado, o.Status)
	}
	if o.EstoqueGerado {
		return nil, ErrEstoqueJaGerado
	}

	resp := &dto.GerarEstoqueResponse{OrcamentoID: id.String()}
	referencia := id.String()
	motivo := fmt.Sprintf("Entrada gerada do orçamento #%s", id)
	anteriores, err := s.entradasAnteriores(ctx, id)
	if err != nil {
		return nil, err
	}
	for i, item := range o.Itens {
		if item.Medidas != nil {
			peca := dto.PecaRequest{
				ID:          pecaDoItem(id, i),
				Largura:     item.Medidas.Largura,
				Comprimento: item.Medidas.Comprimento,
				Espessura:   item.Medidas.Espessura,
			}
			existe, err := s.temPeca(ctx, item.ProdutoID, peca.ID)
			if err != nil {
				return nil, err
			}
			if existe {
				resp.ItensJaAplicados++
				continue
			}
			if _, err := s.estoque.AdicionarPecas(ctx, item.ProdutoID, []dto.PecaRequest{peca}); err != nil {
				return nil, fmt.Errorf("orçamento %s, produto %s: %w", id, item.ProdutoID, err)
			}
			resp.PecasAdicionadas++
			continue
		}
		if anteriores[item.ProdutoID] > 0 {
			anteriores[item.ProdutoID]--
			resp.ItensJaAplicados++
			continue
		}
		ajuste := dto.AjusteEstoqueRequest{
			Tipo:         string(model.MovimentoEntrada),
			Quantidade:   &item.Quantidade,
			Motivo:       motivo,
			ReferenciaID: &referencia,
		}
		if _, err := s.estoque.AjustarEstoque(ctx, item.ProdutoID, ajuste); err != nil {
			return nil, fmt.Errorf("orçamento %s, produto %s: %w", id, item.ProdutoID, err)
		}
		resp.Entradas++
	}

	agora := s.agora()
	marcado, err := s.orcamentos.MarcarEstoqueGerado(ctx, id, agora)
	if err != nil {
		return nil, erroRepositorio(err, "orçamento")
	}
	if !marcado {
		log.Warn().Str("orcamento_id", id.String()).Msg("orçamento: estoque marcado como gerado por outro processo")
		return nil, ErrEstoqueJaGerado
	}
	resp.EstoqueGeradoEm = agora.Format(time.RFC3339)
	log.Info().
		Str("orcamento_id", id.String()).
		Int("entradas", resp.Entradas).
		Int("pecas", resp.PecasAdicionadas).
		Int("ja_aplicados", resp.ItensJaAplicados).
		Msg("orçamento: estoque gerado")
	return resp, nil
}

// pecaDoItem is stable across retries of the same quotation.
func pecaDoItem(orcamentoID uuid.UUID, item int) string {
	return uuid.NewSHA1(orcamentoID, []byte(strconv.Itoa(item))).String()
}

func (s *orcamentoService) temPeca(ctx context.Context, produtoID uuid.UUID, pecaID string) (bool, error) {
	p, err := s.produtos.FindByID(ctx, produtoID)
	if err != nil {
		return false, erroRepositorio(err, "produto")
	}
	return slices.ContainsFunc(p.Pecas, func(pc model.Peca) bool { return pc.ID == pecaID }), nil
}

// entradasAnteriores counts, per product, the entries already recorded for
// the quotation.
func (s *orcamentoService) entradasAnteriores(ctx context.Context, id uuid.UUID) (map[uuid.UUID]int, error) {
	movs, err := s.estoque.ListarMovimentos(ctx, dto.MovimentoFilter{ReferenciaID: id.String(), Limite: 500})
	if err != nil {
		return nil, err
	}
	n := make(map[uuid.UUID]int, len(movs))
	for _, m := range movs {
		if m.Tipo != string(model.MovimentoEntrada) {
			continue
		}
		pid, err := uuid.Parse(m.ProdutoID)
		if err != nil {
			continue
		}
		n[pid]++
	}
	return n, nil
}

// montar resolves names and prices and recomputes line totals and the total.
func (s *orcamentoService) montar(ctx context.Context, o *model.Orcamento, req dto.OrcamentoRequest) error {
	if len(req.Itens) == 0 && len(req.Servicos) == 0 {
		return fmt.Errorf("%w: o orçamento precisa de ao menos um item ou serviço", ErrDadosInvalidos)
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return fmt.Errorf("%w: cliente_id inválido", ErrDadosInvalidos)
	}
	cliente, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil {
		return erroRepositorio(err, "cliente")
	}

	validoAte := o.CreatedAt.Add(validadePadraoOrcamento)
	if v, err := parseDataOpcional(req.ValidoAte); err != nil {
		return err
	} else if v != nil {
		validoAte = *v
	}
	instalacao, err := parseDataOpcional(req.DataInstalacao)
	if err != nil {
		return err
	}
	medicao, err := parseDataOpcional(req.DataMedicao)
	if err != nil {
		return err
	}

	agora := s.agora()
	total := decimal.Zero
	itens := make([]model.ItemOrcamento, 0, len(req.Itens))
	for _, ir := range req.Itens {
		produtoID, err := uuid.Parse(ir.ProdutoID)
		if err != nil {
			return fmt.Errorf("%w: produto_id inválido", ErrDadosInvalidos)
		}
		produto, err := s.produtos.FindByID(ctx, produtoID)
		if err != nil {
			return erroRepositorio(err, "produto "+ir.ProdutoID)
		}
		preco := produto.PrecoEfetivo(ir.Quantidade, agora)
		if ir.PrecoUnitario != nil {
			preco = *ir.PrecoUnitario
		}
		linha := ir.Quantidade.Mul(preco).Round(2)
		itens = append(itens, model.ItemOrcamento{
			ProdutoID:     produto.ID,
			NomeProduto:   produto.Nome,
			Quantidade:    ir.Quantidade,
			PrecoUnitario: preco,
			Total:         linha,
			Medidas:       medidasDeRequest(ir.Medidas),
		})
		total = total.Add(linha)
	}

	servicos := make([]model.ServicoOrcamento, 0, len(req.Servicos))
	for _, sr := range req.Servicos {
		servicoID, err := uuid.Parse(sr.ServicoID)
		if err != nil {
			return fmt.Errorf("%w: servico_id inválido", ErrDadosInvalidos)
		}
		servico, err := s.servicos.FindByID(ctx, servicoID)
		if err != nil {
			return erroRepositorio(err, "serviço "+sr.ServicoID)
		}
		preco := servico.PrecoBase
		if sr.PrecoUnitario != nil {
			preco = *sr.PrecoUnitario
		}
		linha := sr.Quantidade.Mul(preco).Round(2)
		servicos = append(servicos, model.ServicoOrcamento{
			ServicoID:     servico.ID,
			NomeServico:   servico.Nome,
			Quantidade:    sr.Quantidade,
			PrecoUnitario: preco,
			Total:         linha,
			Observacoes:   sr.Observacoes,
		})
		total = total.Add(linha)
	}
	if total.IsNegative() {
		return fmt.Errorf("%w: total do orçamento negativo", ErrDadosInvalidos)
	}

	o.ClienteID = cliente.ID
	o.NomeCliente = cliente.NomeCompleto
	o.Itens = itens
	o.Servicos = servicos
	o.Total = total
	o.ValidoAte = validoAte
	o.Observacoes = req.Observacoes
	o.DataInstalacao = instalacao
	o.DataMedicao = medicao
	return nil
}

func formatarInstanteOpcional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func orcamentoToResponse(o *model.Orcamento) *dto.OrcamentoResponse {
	itens := make([]dto.ItemOrcamentoResponse, len(o.Itens))
	for i, it := range o.Itens {
		itens[i] = dto.ItemOrcamentoResponse{
			ProdutoID:     it.ProdutoID.String(),
			NomeProduto:   it.NomeProduto,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Total:         it.Total,
			Medidas:       medidasToResponse(it.Medidas),
		}
	}
	servicos := make([]dto.ServicoOrcamentoResponse, len(o.Servicos))
	for i, sv := range o.Servicos {
		servicos[i] = dto.ServicoOrcamentoResponse{
			ServicoID:     sv.ServicoID.String(),
			NomeServico:   sv.NomeServico,
			Quantidade:    sv.Quantidade,
			PrecoUnitario: sv.PrecoUnitario,
			Total:         sv.Total,
			Observacoes:   sv.Observacoes,
		}
	}
	return &dto.OrcamentoResponse{
		ID:                 o.ID.String(),
		ClienteID:          o.ClienteID.String(),
		NomeCliente:        o.NomeCliente,
		Itens:              itens,
		Servicos:           servicos,
		Total:              o.Total,
		Status:             string(o.Status),
		ValidoAte:          o.ValidoAte.UTC().Format(layoutData),
		StatusAtualizadoEm: formatarInstanteOpcional(o.StatusAtualizadoEm),
		EstoqueGerado:      o.EstoqueGerado,
		EstoqueGeradoEm:    formatarInstanteOpcional(o.EstoqueGeradoEm),
		Observacoes:        o.Observacoes,
		DataInstalacao:     formatarDataOpcional(o.DataInstalacao),
		DataMedicao:        formatarDataOpcional(o.DataMedicao),
		CreatedAt:          o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          o.UpdatedAt.Format(time.RFC3339),
	}
}

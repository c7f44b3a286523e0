package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PrManiezzo/marmo/internal/dto"
	"github.com/PrManiezzo/marmo/internal/model"
	"github.com/PrManiezzo/marmo/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PedidoService interface {
	Criar(ctx context.Context, req dto.PedidoRequest) (*dto.PedidoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.PedidoRequest) (*dto.PedidoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type pedidoService struct {
	pedidos  repository.PedidoRepository
	clientes repository.ClienteRepository
	produtos repository.ProdutoRepository
	servicos repository.ServicoRepository
	agora    func() time.Time
}

func NewPedidoService(
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
	produtos repository.ProdutoRepository,
	servicos repository.ServicoRepository,
) PedidoService {
	return &pedidoService{pedidos: pedidos, clientes: clientes, produtos: produtos, servicos: servicos, agora: time.Now}
}

func (s *pedidoService) Criar(ctx context.Context, req dto.PedidoRequest) (*dto.PedidoResponse, error) {
	agora := s.agora()
	p := &model.Pedido{ID: uuid.New(), CreatedAt: agora, UpdatedAt: agora}
	if err := s.montar(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.pedidos.Create(ctx, p); err != nil {
		return nil, erroRepositorio(err, "pedido")
	}
	return pedidoToResponse(p), nil
}

func (s *pedidoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	p, err := s.pedidos.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "pedido")
	}
	return pedidoToResponse(p), nil
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	pedidos, err := s.pedidos.List(ctx, filter)
	if err != nil {
		return nil, erroRepositorio(err, "pedido")
	}
	out := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		out[i] = *pedidoToResponse(&pedidos[i])
	}
	return out, nil
}

func (s *pedidoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.PedidoRequest) (*dto.PedidoResponse, error) {
	p, err := s.pedidos.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "pedido")
	}
	p.UpdatedAt = s.agora()
	if err := s.montar(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.pedidos.Update(ctx, p); err != nil {
		return nil, erroRepositorio(err, "pedido")
	}
	return pedidoToResponse(p), nil
}

func (s *pedidoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if err := s.pedidos.Delete(ctx, id); err != nil {
		return erroRepositorio(err, "pedido")
	}
	return nil
}

// montar resolves customer, product and service names, fills in default
// prices and recomputes the order total.
func (s *pedidoService) montar(ctx context.Context, p *model.Pedido, req dto.PedidoRequest) error {
	if len(req.Itens) == 0 && len(req.Servicos) == 0 {
		return fmt.Errorf("%w: o pedido precisa de ao menos um item ou serviço", ErrDadosInvalidos)
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return fmt.Errorf("%w: cliente_id inválido", ErrDadosInvalidos)
	}
	cliente, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil {
		return erroRepositorio(err, "cliente")
	}

	entrega, err := ParseData(req.DataEntrega)
	if err != nil {
		return fmt.Errorf("%w: data de entrega inválida", ErrDadosInvalidos)
	}
	instalacao, err := parseDataOpcional(req.DataInstalacao)
	if err != nil {
		return err
	}

	agora := s.agora()
	total := decimal.Zero
	itens := make([]model.ItemPedido, 0, len(req.Itens))
	for _, ir := range req.Itens {
		produto, err := s.buscarProduto(ctx, ir.ProdutoID)
		if err != nil {
			return err
		}
		preco := produto.PrecoEfetivo(ir.Quantidade, agora)
		if ir.Preco != nil {
			preco = *ir.Preco
		}
		if preco.IsNegative() {
			return fmt.Errorf("%w: preço do item %s negativo", ErrDadosInvalidos, produto.Codigo)
		}
		itens = append(itens, model.ItemPedido{
			ProdutoID:   produto.ID,
			NomeProduto: produto.Nome,
			Quantidade:  ir.Quantidade,
			Preco:       preco,
			Medidas:     medidasDeRequest(ir.Medidas),
		})
		total = total.Add(ir.Quantidade.Mul(preco))
	}

	servicos := make([]model.ServicoPedido, 0, len(req.Servicos))
	for _, sr := range req.Servicos {
		servico, err := s.buscarServico(ctx, sr.ServicoID)
		if err != nil {
			return err
		}
		preco := servico.PrecoBase
		if sr.Preco != nil {
			preco = *sr.Preco
		}
		if preco.IsNegative() {
			return fmt.Errorf("%w: preço do serviço %s negativo", ErrDadosInvalidos, servico.Nome)
		}
		agendada, err := parseDataOpcional(sr.DataAgendada)
		if err != nil {
			return err
		}
		servicos = append(servicos, model.ServicoPedido{
			ServicoID:    servico.ID,
			NomeServico:  servico.Nome,
			Quantidade:   sr.Quantidade,
			Preco:        preco,
			Observacoes:  sr.Observacoes,
			DataAgendada: agendada,
		})
		total = total.Add(sr.Quantidade.Mul(preco))
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	statusPagamento := req.StatusPagamento
	if statusPagamento == "" {
		statusPagamento = "pending"
	}
	var metodo *model.MetodoPagamento
	if req.MetodoPagamento != nil && *req.MetodoPagamento != "" {
		m := model.MetodoPagamento(*req.MetodoPagamento)
		if !m.Valido() {
			return fmt.Errorf("%w: método de pagamento %q desconhecido", ErrDadosInvalidos, m)
		}
		metodo = &m
	}

	p.ClienteID = cliente.ID
	p.NomeCliente = cliente.NomeCompleto
	p.Itens = itens
	p.Servicos = servicos
	p.Status = status
	p.PrecoTotal = total.Round(2)
	p.DataEntrega = entrega
	p.DataInstalacao = instalacao
	p.StatusPagamento = statusPagamento
	p.MetodoPagamento = metodo
	p.Observacoes = req.Observacoes
	return nil
}

func (s *pedidoService) buscarProduto(ctx context.Context, id string) (*model.Produto, error) {
	produtoID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: produto_id inválido", ErrDadosInvalidos)
	}
	produto, err := s.produtos.FindByID(ctx, produtoID)
	if err != nil {
		return nil, erroRepositorio(err, "produto "+id)
	}
	return produto, nil
}

func (s *pedidoService) buscarServico(ctx context.Context, id string) (*model.Servico, error) {
	servicoID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: servico_id inválido", ErrDadosInvalidos)
	}
	servico, err := s.servicos.FindByID(ctx, servicoID)
	if err != nil {
		return nil, erroRepositorio(err, "serviço "+id)
	}
	return servico, nil
}

func parseDataOpcional(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseData(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: data %q inválida", ErrDadosInvalidos, *s)
	}
	return &t, nil
}

func medidasDeRequest(m *dto.MedidasRequest) *model.Medidas {
	if m == nil {
		return nil
	}
	return &model.Medidas{Comprimento: m.Comprimento, Largura: m.Largura, Espessura: m.Espessura}
}

func medidasToResponse(m *model.Medidas) *dto.MedidasRequest {
	if m == nil {
		return nil
	}
	return &dto.MedidasRequest{Comprimento: m.Comprimento, Largura: m.Largura, Espessura: m.Espessura}
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	itens := make([]dto.ItemPedidoResponse, len(p.Itens))
	for i, it := range p.Itens {
		itens[i] = dto.ItemPedidoResponse{
			ProdutoID:   it.ProdutoID.String(),
			NomeProduto: it.NomeProduto,
			Quantidade:  it.Quantidade,
			Preco:       it.Preco,
			Subtotal:    it.Quantidade.Mul(it.Preco).Round(2),
			Medidas:     medidasToResponse(it.Medidas),
		}
	}
	servicos := make([]dto.ServicoPedidoResponse, len(p.Servicos))
	for i, sv := range p.Servicos {
		servicos[i] = dto.ServicoPedidoResponse{
			ServicoID:    sv.ServicoID.String(),
			NomeServico:  sv.NomeServico,
			Quantidade:   sv.Quantidade,
			Preco:        sv.Preco,
			Subtotal:     sv.Quantidade.Mul(sv.Preco).Round(2),
			Observacoes:  sv.Observacoes,
			DataAgendada: formatarDataOpcional(sv.DataAgendada),
		}
	}
	var metodo *string
	if p.MetodoPagamento != nil {
		m := string(*p.MetodoPagamento)
		metodo = &m
	}
	return &dto.PedidoResponse{
		ID:              p.ID.String(),
		ClienteID:       p.ClienteID.String(),
		NomeCliente:     p.NomeCliente,
		Itens:           itens,
		Servicos:        servicos,
		Status:          p.Status,
		PrecoTotal:      p.PrecoTotal,
		DataEntrega:     p.DataEntrega.UTC().Format(layoutData),
		DataInstalacao:  formatarDataOpcional(p.DataInstalacao),
		StatusPagamento: p.StatusPagamento,
		MetodoPagamento: metodo,
		Observacoes:     p.Observacoes,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

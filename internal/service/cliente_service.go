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
	"github.com/PrManiezzo/marmo/internal/validacao"

	"github.com/google/uuid"
)

const (
	idadeMinima = 18
	idadeMaxima = 120
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo  repository.ClienteRepository
	agora func() time.Time
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo, agora: time.Now}
}

func (s *clienteService) Criar(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	nascimento, err := s.validar(req)
	if err != nil {
		return nil, err
	}
	documento := validacao.SoDigitos(req.DocumentoNumero)
	if _, err := s.repo.FindByDocumento(ctx, documento); err == nil {
		return nil, fmt.Errorf("%w: documento %s já cadastrado", ErrDuplicado, documento)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, erroRepositorio(err, "cliente")
	}

	agora := s.agora()
	c := &model.Cliente{ID: uuid.New(), CreatedAt: agora, UpdatedAt: agora}
	aplicarClienteRequest(c, req, documento, nascimento)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, erroRepositorio(err, "cliente")
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "cliente")
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, erroRepositorio(err, "cliente")
	}
	out := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		out[i] = *clienteToResponse(&clientes[i])
	}
	return out, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	nascimento, err := s.validar(req)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, erroRepositorio(err, "cliente")
	}
	documento := validacao.SoDigitos(req.DocumentoNumero)
	if outro, err := s.repo.FindByDocumento(ctx, documento); err == nil && outro.ID != id {
		return nil, fmt.Errorf("%w: documento %s já cadastrado", ErrDuplicado, documento)
	}
	aplicarClienteRequest(c, req, documento, nascimento)
	c.UpdatedAt = s.agora()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, erroRepositorio(err, "cliente")
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Excluir(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return erroRepositorio(err, "cliente")
	}
	return nil
}

// validar checks the document against its type and the age bounds.
func (s *clienteService) validar(req dto.ClienteRequest) (*time.Time, error) {
	switch req.DocumentoTipo {
	case "cpf":
		if !validacao.CPF(req.DocumentoNumero) {
			return nil, fmt.Errorf("%w: CPF inválido", ErrDadosInvalidos)
		}
	case "cnpj":
		if !validacao.CNPJ(req.DocumentoNumero) {
			return nil, fmt.Errorf("%w: CNPJ deve ter 14 dígitos", ErrDadosInvalidos)
		}
	default:
		return nil, fmt.Errorf("%w: tipo de documento %q desconhecido", ErrDadosInvalidos, req.DocumentoTipo)
	}
	if req.DataNascimento == nil || *req.DataNascimento == "" {
		return nil, nil
	}
	nasc, err := ParseData(*req.DataNascimento)
	if err != nil {
		return nil, fmt.Errorf("%w: data de nascimento inválida", ErrDadosInvalidos)
	}
	idade := validacao.Idade(nasc, s.agora())
	if idade < idadeMinima || idade > idadeMaxima {
		return nil, fmt.Errorf("%w: idade deve estar entre %d e %d anos", ErrDadosInvalidos, idadeMinima, idadeMaxima)
	}
	return &nasc, nil
}

func aplicarClienteRequest(c *model.Cliente, req dto.ClienteRequest, documento string, nascimento *time.Time) {
	c.NomeCompleto = strings.TrimSpace(req.NomeCompleto)
	c.DocumentoTipo = req.DocumentoTipo
	c.DocumentoNumero = documento
	c.DataNascimento = nascimento
	c.TelefonesCliente = model.TelefonesCliente{Principal: req.Telefones.Principal, Secundario: req.Telefones.Secundario}
	c.EmailsCliente = model.EmailsCliente{Principal: strings.ToLower(req.Emails.Principal), Secundario: req.Emails.Secundario}
	c.EnderecoCliente = model.EnderecoCliente{
		Logradouro:  req.Endereco.Logradouro,
		Numero:      req.Endereco.Numero,
		Complemento: req.Endereco.Complemento,
		Bairro:      req.Endereco.Bairro,
		Cidade:      req.Endereco.Cidade,
		Estado:      req.Endereco.Estado,
		CEP:         req.Endereco.CEP,
	}
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:              c.ID.String(),
		NomeCompleto:    c.NomeCompleto,
		DocumentoTipo:   c.DocumentoTipo,
		DocumentoNumero: c.DocumentoNumero,
		DataNascimento:  formatarDataOpcional(c.DataNascimento),
		Telefones:       dto.TelefonesRequest{Principal: c.TelefonesCliente.Principal, Secundario: c.TelefonesCliente.Secundario},
		Emails:          dto.EmailsRequest{Principal: c.EmailsCliente.Principal, Secundario: c.EmailsCliente.Secundario},
		Endereco: dto.EnderecoRequest{
			Logradouro:  c.Logradouro,
			Numero:      c.Numero,
			Complemento: c.Complemento,
			Bairro:      c.Bairro,
			Cidade:      c.Cidade,
			Estado:      c.Estado,
			CEP:         c.CEP,
		},
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func formatarDataOpcional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(layoutData)
	return &s
}

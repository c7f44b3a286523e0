package service

import "errors"

// Sentinel errors returned by the services. Callers match them with
// errors.Is; messages are user-facing.
var (
	ErrTransacaoInvalida    = errors.New("transação inválida")
	ErrNaoEncontrado        = errors.New("registro não encontrado")
	ErrPeriodoInvalido      = errors.New("período inválido: início posterior ao fim")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
	ErrQuantidadeInvalida   = errors.New("quantidade inválida")
	ErrDimensoesInvalidas   = errors.New("dimensões inválidas")
	ErrPersistencia         = errors.New("falha ao gravar os dados")
	ErrOrcamentoNaoAprovado = errors.New("orçamento não aprovado")
	ErrEstoqueJaGerado      = errors.New("estoque já gerado para este orçamento")
	ErrDadosInvalidos       = errors.New("dados inválidos")
	ErrDuplicado            = errors.New("registro duplicado")
)

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemetente struct {
	ativo    bool
	falha    error
	enviados []string
}

func (f *fakeRemetente) Ativo() bool { return f.ativo }

func (f *fakeRemetente) Enviar(to []string, subject, _ string) error {
	if f.falha != nil {
		return f.falha
	}
	f.enviados = append(f.enviados, subject)
	return nil
}

func alertaRaw(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(AlertaEstoquePayload{
		ProdutoID:        "0b6f7c1e-2d55-4a36-9d0c-0f3f4a1d9b11",
		Nome:             "Granito São Gabriel",
		Codigo:           "GRA-SG",
		Quantidade:       decimal.NewFromInt(2),
		QuantidadeMinima: decimal.NewFromInt(3),
		Unidade:          "slab",
		PrecoBase:        decimal.RequireFromString("850.50"),
		Motivo:           "venda balcão",
	})
	require.NoError(t, err)
	return raw
}

func TestEmailWorker_EnviaAlerta(t *testing.T) {
	m := &fakeRemetente{ativo: true}
	w := NewEmailWorker(m, []string{"estoque@loja.com"}, "BRL")

	require.NoError(t, w.Process(context.Background(), alertaRaw(t)))
	require.Len(t, m.enviados, 1)
	assert.Equal(t, "Estoque baixo: Granito São Gabriel (GRA-SG)", m.enviados[0])
}

func TestEmailWorker_SemConfiguracaoDescarta(t *testing.T) {
	inativo := &fakeRemetente{ativo: false}
	assert.NoError(t, NewEmailWorker(inativo, []string{"estoque@loja.com"}, "BRL").Process(context.Background(), alertaRaw(t)))
	assert.Empty(t, inativo.enviados)

	semDestino := &fakeRemetente{ativo: true}
	assert.NoError(t, NewEmailWorker(semDestino, nil, "BRL").Process(context.Background(), alertaRaw(t)))
	assert.Empty(t, semDestino.enviados)
}

func TestEmailWorker_Erros(t *testing.T) {
	m := &fakeRemetente{ativo: true, falha: errors.New("535 auth")}
	w := NewEmailWorker(m, []string{"estoque@loja.com"}, "BRL")

	assert.Error(t, w.Process(context.Background(), alertaRaw(t)))
	assert.Error(t, w.Process(context.Background(), json.RawMessage(`{"quantidade":`)))
}

func TestMontarAlerta(t *testing.T) {
	var p AlertaEstoquePayload
	require.NoError(t, json.Unmarshal(alertaRaw(t), &p))

	assunto, corpo := montarAlerta(p, "BRL")
	assert.Contains(t, assunto, "GRA-SG")
	assert.Contains(t, corpo, "Quantidade atual: 2 slab")
	assert.Contains(t, corpo, "Quantidade mínima: 3 slab")
	assert.Contains(t, corpo, "Valor em estoque: ")
	assert.Contains(t, corpo, "venda balcão")
}

func TestParseDestinatarios(t *testing.T) {
	assert.Equal(t, []string{"a@loja.com", "b@loja.com"}, ParseDestinatarios(" a@loja.com, ,b@loja.com "))
	assert.Nil(t, ParseDestinatarios(""))
}

func TestDispatcherSemRedis(t *testing.T) {
	var d *Dispatcher
	assert.NoError(t, d.EnqueueAlertaEstoque(context.Background(), AlertaEstoquePayload{}))
	assert.NoError(t, NewDispatcher(nil).EnqueueAlertaEstoque(context.Background(), AlertaEstoquePayload{}))
}

package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PrManiezzo/marmo/internal/moeda"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AlertaEstoquePayload is enqueued when an adjustment drops a product to or
// below its minimum quantity.
type AlertaEstoquePayload struct {
	ProdutoID        string          `json:"produto_id"`
	Nome             string          `json:"nome"`
	Codigo           string          `json:"codigo"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima"`
	Unidade          string          `json:"unidade"`
	PrecoBase        decimal.Decimal `json:"preco_base"`
	Motivo           string          `json:"motivo"`
}

// Remetente sends plain-text e-mail; *infra.Mailer satisfies it.
type Remetente interface {
	Ativo() bool
	Enviar(to []string, subject, body string) error
}

// EmailWorker turns low-stock alerts into e-mails to the shop staff.
type EmailWorker struct {
	mailer        Remetente
	destinatarios []string
	moeda         string
}

func NewEmailWorker(mailer Remetente, destinatarios []string, codigoMoeda string) *EmailWorker {
	return &EmailWorker{mailer: mailer, destinatarios: destinatarios, moeda: codigoMoeda}
}

// Process sends the alert. With no SMTP relay or no recipient the job is
// dropped rather than retried.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload AlertaEstoquePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: payload inválido: %w", err)
	}
	if len(w.destinatarios) == 0 || !w.mailer.Ativo() {
		log.Warn().Str("produto", payload.Codigo).Msg("email_worker: alerta descartado, e-mail não configurado")
		return nil
	}

	assunto, corpo := montarAlerta(payload, w.moeda)
	if err := w.mailer.Enviar(w.destinatarios, assunto, corpo); err != nil {
		return fmt.Errorf("email_worker: envio falhou: %w", err)
	}
	log.Info().Str("produto", payload.Codigo).Msg("email_worker: alerta de estoque enviado")
	return nil
}

func montarAlerta(p AlertaEstoquePayload, codigoMoeda string) (string, string) {
	assunto := fmt.Sprintf("Estoque baixo: %s (%s)", p.Nome, p.Codigo)
	var b strings.Builder
	fmt.Fprintf(&b, "O produto %s (%s) está com estoque baixo.\n\n", p.Nome, p.Codigo)
	fmt.Fprintf(&b, "Quantidade atual: %s %s\n", p.Quantidade.String(), p.Unidade)
	fmt.Fprintf(&b, "Quantidade mínima: %s %s\n", p.QuantidadeMinima.String(), p.Unidade)
	fmt.Fprintf(&b, "Valor em estoque: %s\n", moeda.Formatar(p.Quantidade.Mul(p.PrecoBase), codigoMoeda))
	if p.Motivo != "" {
		fmt.Fprintf(&b, "Último ajuste: %s\n", p.Motivo)
	}
	return assunto, b.String()
}

// ParseDestinatarios splits a comma-separated address list.
func ParseDestinatarios(lista string) []string {
	var out []string
	for _, s := range strings.Split(lista, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}


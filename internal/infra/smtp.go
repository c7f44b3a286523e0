package infra

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/PrManiezzo/marmo/internal/config"

	"github.com/jordan-wright/email"
)

// ErrMailerDesativado is returned when no SMTP host is configured.
var ErrMailerDesativado = errors.New("mailer: SMTP não configurado")

// Mailer sends plain-text notifications over SMTP. Every send goes through
// a circuit breaker so a down relay fails fast instead of piling up workers.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	cb       *CircuitBreaker
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		cb:       NewCircuitBreaker(DefaultCBConfig()),
	}
}

// Ativo reports whether an SMTP host is configured.
func (m *Mailer) Ativo() bool { return m != nil && m.host != "" }

// Estado exposes the breaker state for the health endpoint.
func (m *Mailer) Estado() CBState {
	if m == nil {
		return CBClosed
	}
	return m.cb.State()
}

// Enviar sends a text e-mail to every recipient in to.
func (m *Mailer) Enviar(to []string, subject, body string) error {
	if !m.Ativo() {
		return ErrMailerDesativado
	}
	e := email.NewEmail()
	e.From = m.user
	e.To = to
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return m.cb.Execute(func() error {
		return e.Send(m.addr, auth)
	})
}

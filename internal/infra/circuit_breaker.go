package infra

import (
	"errors"
	"net/textproto"
	"sync"
	"time"
)

// ── Disjuntor do relay SMTP ──────────────────────────────────────────────────
// Closed → Open → Half-Open breaker in front of the SMTP relay.
//
// Only failures of the relay itself count against it: dial/TLS/auth errors and
// 4xx replies. A 5xx rejection of one recipient means the relay is answering,
// so it is returned to the caller and the breaker treats it as a success.
// While half-open a single send tests the relay; concurrent sends fail fast.

// CBState is the breaker state reported by /health.
type CBState int

const (
	CBClosed CBState = iota
	CBOpen
	CBHalfOpen
)

func (s CBState) String() string {
	switch s {
	case CBClosed:
		return "closed"
	case CBOpen:
		return "open"
	case CBHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned without contacting the relay.
var ErrCircuitOpen = errors.New("circuit breaker aberto")

// rejeicoesDeDestinatario are per-mailbox replies (RFC 5321 §4.2.3).
var rejeicoesDeDestinatario = map[int]bool{
	550: true, // mailbox unavailable
	551: true, // user not local
	552: true, // mailbox storage exceeded
	553: true, // mailbox name not allowed
}

// FalhaDeRelay reports whether err says the relay is unusable, as opposed to
// a single recipient being refused.
func FalhaDeRelay(err error) bool {
	if err == nil {
		return false
	}
	var resp *textproto.Error
	if errors.As(err, &resp) {
		return !rejeicoesDeDestinatario[resp.Code]
	}
	return true
}

type CircuitBreakerConfig struct {
	FailureThreshold int           // consecutive relay failures that open the breaker
	OpenTimeout      time.Duration // time spent open before a trial send is allowed
}

// DefaultCBConfig: three relay failures in a row leave the relay alone for two minutes.
func DefaultCBConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{FailureThreshold: 3, OpenTimeout: 2 * time.Minute}
}

type CircuitBreaker struct {
	mu         sync.Mutex
	state      CBState
	falhas     int
	abertoAte  time.Time
	sondando   bool
	limite     int
	espera     time.Duration
	falhaRelay func(error) bool
	agora      func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = time.Minute
	}
	return &CircuitBreaker{
		limite:     cfg.FailureThreshold,
		espera:     cfg.OpenTimeout,
		falhaRelay: FalhaDeRelay,
		agora:      time.Now,
	}
}

// State moves open → half-open once the open period is over.
func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.estado()
}

// estado: caller holds cb.mu.
func (cb *CircuitBreaker) estado() CBState {
	if cb.state == CBOpen && !cb.agora().Before(cb.abertoAte) {
		cb.state = CBHalfOpen
	}
	return cb.state
}

// Execute runs fn unless the relay is considered down.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	switch cb.estado() {
	case CBOpen:
		cb.mu.Unlock()
		return ErrCircuitOpen
	case CBHalfOpen:
		if cb.sondando {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.sondando = true
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.sondando = false
	if cb.falhaRelay(err) {
		cb.falhas++
		if cb.state == CBHalfOpen || cb.falhas >= cb.limite {
			cb.state = CBOpen
			cb.abertoAte = cb.agora().Add(cb.espera)
		}
		return err
	}
	cb.state = CBClosed
	cb.falhas = 0
	return err
}

package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bankstream/domain/ledger"
	"bankstream/infra/telemetry"
)

// Journal receives every committed ledger mutation. Append failures are
// logged and never fail the call that caused them.
type Journal interface {
	Append(e ledger.Entry) error
}

// SecretSource draws the number a guessing session hides.
type SecretSource func() int32

// RandomSecret draws uniformly from [1, 100].
func RandomSecret() int32 {
	return rand.Int32N(100) + 1
}

type Config struct {
	WithdrawUnit int64
	WithdrawPace time.Duration
	Secret       SecretSource
}

const (
	DefaultWithdrawUnit = 10
	DefaultWithdrawPace = 2 * time.Second
)

/*
Bank is the single entry point for ledger reads and writes coming from the
transport layer.

Coordination between:
- domain (ledger)
- infra (journal, metrics)
happens here.
*/
type Bank struct {
	ledger  *ledger.Ledger
	journal Journal
	// commitMu orders journal appends the same way as ledger commits.
	commitMu sync.Mutex
	log     *zap.Logger
	metrics *telemetry.Metrics

	unit   int64
	pace   time.Duration
	secret SecretSource
	now    func() time.Time
}

// New wires all dependencies. journal and metrics may be nil.
func New(
	l *ledger.Ledger,
	journal Journal,
	log *zap.Logger,
	metrics *telemetry.Metrics,
	cfg Config,
) *Bank {
	if cfg.WithdrawUnit <= 0 {
		cfg.WithdrawUnit = DefaultWithdrawUnit
	}
	if cfg.WithdrawPace == 0 {
		cfg.WithdrawPace = DefaultWithdrawPace
	}
	if cfg.Secret == nil {
		cfg.Secret = RandomSecret
	}
	return &Bank{
		ledger:  l,
		journal: journal,
		log:     log.With(zap.String("component", "service")),
		metrics: metrics,
		unit:    cfg.WithdrawUnit,
		pace:    cfg.WithdrawPace,
		secret:  cfg.Secret,
		now:     time.Now,
	}
}

// -------------------- Queries --------------------

// Balance never creates the account.
func (b *Bank) Balance(account int32) ledger.Account {
	bal := b.ledger.Balance(account)
	b.log.Info("balance checked", zap.Int32("account", account), zap.Int64("balance", bal))
	return ledger.Account{Number: account, Balance: bal}
}

func (b *Bank) Accounts() []ledger.Account {
	accounts := b.ledger.Snapshot()
	b.log.Info("accounts listed", zap.Int("count", len(accounts)))
	return accounts
}

// -------------------- Sessions --------------------

// Outcome is the terminal state of a session.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeErrored   Outcome = "errored"
	OutcomeCancelled Outcome = "cancelled"
)

const (
	MethodDeposit  = "deposit"
	MethodWithdraw = "withdraw"
	MethodTransfer = "transfer"
	MethodGuess    = "guess"
)

type session struct {
	ID       string
	Method   string
	Identity string
	Opened   time.Time

	ctx  context.Context
	bank *Bank
	log  *zap.Logger

	once    sync.Once
	outcome Outcome
}

func (b *Bank) open(ctx context.Context, method, identity string) *session {
	s := &session{
		ID:       uuid.NewString(),
		Method:   method,
		Identity: identity,
		Opened:   b.now(),
		ctx:      ctx,
		bank:     b,
	}
	s.log = b.log.With(
		zap.String("session", s.ID),
		zap.String("method", method),
	)
	if identity != "" {
		s.log = s.log.With(zap.String("identity", identity))
	}
	b.metrics.SessionOpened(method)
	s.log.Debug("session opened")
	return s
}

// Close records the terminal outcome. Only the first call counts.
func (s *session) Close(err error) Outcome {
	s.once.Do(func() {
		switch {
		case err == nil:
			s.outcome = OutcomeCompleted
		case s.ctx.Err() != nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			s.outcome = OutcomeCancelled
		default:
			s.outcome = OutcomeErrored
		}

		fields := []zap.Field{
			zap.String("outcome", string(s.outcome)),
			zap.Duration("elapsed", s.bank.now().Sub(s.Opened)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		s.log.Info("session closed", fields...)
		s.bank.metrics.SessionClosed(s.Method, string(s.outcome))
	})
	return s.outcome
}

// Outcome is empty until Close runs.
func (s *session) Outcome() Outcome {
	return s.outcome
}

// commit runs mutate and journals the entry it returns. With a journal
// configured both happen under one lock, so event sequence numbers follow
// ledger commit order. Nothing is journaled when mutate fails.
func (s *session) commit(mutate func() (ledger.Entry, error)) error {
	if s.bank.journal == nil {
		_, err := mutate()
		return err
	}

	s.bank.commitMu.Lock()
	defer s.bank.commitMu.Unlock()

	e, err := mutate()
	if err != nil {
		return err
	}
	s.record(e)
	return nil
}

func (s *session) record(e ledger.Entry) {
	if s.bank.journal == nil {
		return
	}
	e.Identity = s.Identity
	e.At = s.bank.now()
	if err := s.bank.journal.Append(e); err != nil {
		s.log.Warn("journal append failed",
			zap.String("kind", e.Kind.String()),
			zap.Error(err),
		)
		return
	}
	s.bank.metrics.EventAppended()
}

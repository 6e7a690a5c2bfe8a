package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bankstream/domain/ledger"
)

type TransferStatus int

const (
	TransferCompleted TransferStatus = iota + 1
	TransferRejected
)

func (s TransferStatus) String() string {
	switch s {
	case TransferCompleted:
		return "completed"
	case TransferRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type TransferOutcome struct {
	Status TransferStatus
	From   ledger.Account
	To     ledger.Account
}

// TransferSession applies each request of a bidi stream independently.
type TransferSession struct {
	*session
	applied  int
	rejected int
}

func (b *Bank) OpenTransfer(ctx context.Context, identity string) *TransferSession {
	return &TransferSession{session: b.open(ctx, MethodTransfer, identity)}
}

// Apply answers one request. Domain rejections are reported in the
// outcome; only unexpected faults return an error.
func (t *TransferSession) Apply(from, to int32, amount int64) (TransferOutcome, error) {
	var res ledger.TransferResult
	err := t.commit(func() (ledger.Entry, error) {
		var err error
		res, err = t.bank.ledger.Transfer(from, to, amount)
		return ledger.Entry{Kind: ledger.EntryTransfer, From: from, To: to, Amount: amount}, err
	})
	out := TransferOutcome{Status: TransferCompleted, From: res.From, To: res.To}

	switch {
	case err == nil:
		t.applied++
	case errors.Is(err, ledger.ErrSameAccount),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrBalanceOverflow):
		t.rejected++
		out.Status = TransferRejected
	default:
		return TransferOutcome{}, fmt.Errorf("transfer %d->%d: %w", from, to, err)
	}

	t.log.Info("transfer",
		zap.Int32("from", from),
		zap.Int32("to", to),
		zap.Int64("amount", amount),
		zap.Stringer("status", out.Status),
		zap.NamedError("reason", err),
	)
	return out, nil
}

// Counts returns how many requests were applied and rejected.
func (t *TransferSession) Counts() (applied, rejected int) {
	return t.applied, t.rejected
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bankstream/domain/ledger"
)

// WithdrawSession dispenses a withdrawal as a paced series of fixed-size
// increments.
type WithdrawSession struct {
	*session
	account   int32
	amount    int64
	dispensed int64
}

func (b *Bank) OpenWithdraw(ctx context.Context, identity string, account int32, amount int64) *WithdrawSession {
	return &WithdrawSession{
		session: b.open(ctx, MethodWithdraw, identity),
		account: account,
		amount:  amount,
	}
}

// Dispensed is the total debited so far.
func (w *WithdrawSession) Dispensed() int64 { return w.dispensed }

// Run debits and emits one unit at a time, pausing between units. A
// request larger than the balance ends immediately with nothing emitted.
// Any remainder below one unit is not dispensed. Units already emitted
// stay debited when the call is cancelled.
func (w *WithdrawSession) Run(emit func(amount int64) error) error {
	unit := w.bank.unit

	bal := w.bank.ledger.Balance(w.account)
	if w.amount > bal {
		w.log.Warn("withdraw exceeds balance",
			zap.Int32("account", w.account),
			zap.Int64("requested", w.amount),
			zap.Int64("available", bal),
		)
		return nil
	}

	steps := w.amount / unit
	for i := int64(0); i < steps; i++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		err := w.commit(func() (ledger.Entry, error) {
			_, err := w.bank.ledger.Debit(w.account, unit)
			return ledger.Entry{Kind: ledger.EntryWithdraw, From: w.account, Amount: unit}, err
		})
		if err != nil {
			if errors.Is(err, ledger.ErrInsufficientFunds) {
				w.log.Warn("balance moved during withdraw",
					zap.Int32("account", w.account),
					zap.Int64("dispensed", w.dispensed),
				)
			}
			return fmt.Errorf("debit account %d: %w", w.account, err)
		}
		w.dispensed += unit

		if err := emit(unit); err != nil {
			return err
		}
		w.log.Debug("unit dispensed", zap.Int32("account", w.account), zap.Int64("dispensed", w.dispensed))

		if i == steps-1 {
			break
		}
		if err := w.wait(); err != nil {
			return err
		}
	}
	return nil
}

func (w *WithdrawSession) wait() error {
	if w.bank.pace <= 0 {
		return nil
	}
	t := time.NewTimer(w.bank.pace)
	defer t.Stop()

	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	case <-t.C:
		return nil
	}
}

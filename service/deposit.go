package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bankstream/domain/ledger"
)

type DepositState int

const (
	AwaitingAccount DepositState = iota
	Accumulating
	Finalized
)

// DepositStep is one inbound deposit message: an account or an amount.
type DepositStep struct {
	account *int32
	amount  *int64
}

func AccountStep(account int32) DepositStep { return DepositStep{account: &account} }

func AmountStep(amount int64) DepositStep { return DepositStep{amount: &amount} }

// DepositSession credits every amount to the account named by the first
// message, then reports the resulting balance.
type DepositSession struct {
	*session
	state   DepositState
	account int32
	total   int64
}

func (b *Bank) OpenDeposit(ctx context.Context, identity string) *DepositSession {
	return &DepositSession{session: b.open(ctx, MethodDeposit, identity)}
}

func (d *DepositSession) State() DepositState { return d.state }

func (d *DepositSession) Next(step DepositStep) error {
	switch d.state {
	case AwaitingAccount:
		if step.account == nil {
			return fmt.Errorf("%w: first deposit message must name the account", ErrProtocolViolation)
		}
		d.account = *step.account
		d.state = Accumulating
		d.log.Info("deposit started", zap.Int32("account", d.account))
		return nil

	case Accumulating:
		if step.amount == nil {
			return fmt.Errorf("%w: account already named", ErrProtocolViolation)
		}
		amount := *step.amount
		var bal int64
		err := d.commit(func() (ledger.Entry, error) {
			var err error
			bal, err = d.bank.ledger.Credit(d.account, amount)
			return ledger.Entry{Kind: ledger.EntryDeposit, To: d.account, Amount: amount}, err
		})
		if err != nil {
			return fmt.Errorf("credit account %d: %w", d.account, err)
		}
		d.total += amount
		d.log.Debug("deposit credited",
			zap.Int64("amount", amount),
			zap.Int64("balance", bal),
		)
		return nil

	default:
		return fmt.Errorf("%w: deposit already finalized", ErrProtocolViolation)
	}
}

// Complete finalizes the session once the client closed its side.
func (d *DepositSession) Complete() (ledger.Account, error) {
	if d.state != Accumulating {
		return ledger.Account{}, fmt.Errorf("%w: deposit closed before naming an account", ErrProtocolViolation)
	}
	d.state = Finalized

	acc := ledger.Account{Number: d.account, Balance: d.bank.ledger.Balance(d.account)}
	d.log.Info("deposit finalized",
		zap.Int32("account", acc.Number),
		zap.Int64("deposited", d.total),
		zap.Int64("balance", acc.Balance),
	)
	return acc, nil
}

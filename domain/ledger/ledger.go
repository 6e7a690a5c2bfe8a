package ledger

import (
	"math"
	"sort"
	"sync"
)

// Ledger maps account numbers to balances.
//
// A single RWMutex guards the whole map. Same-account operations linearize
// and a transfer's two legs commit as one step. Disjoint writers serialize
// for the few instructions a check-and-mutate takes; per-account locks with
// ordered acquisition would buy throughput this service does not need.
type Ledger struct {
	mu       sync.RWMutex
	balances map[int32]int64
}

// New creates a ledger seeded with the given balances.
// The seed map is copied; later changes to it are not observed.
func New(seed map[int32]int64) *Ledger {
	balances := make(map[int32]int64, len(seed))
	for acct, bal := range seed {
		balances[acct] = bal
	}
	return &Ledger{balances: balances}
}

// Balance returns the current balance, or zero for an account never seen.
// It never creates an account.
func (l *Ledger) Balance(account int32) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[account]
}

// Debit subtracts amount if the balance covers it and returns the new balance.
// On ErrInsufficientFunds the ledger is left untouched.
func (l *Ledger) Debit(account int32, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bal := l.balances[account]
	if bal < amount {
		return bal, ErrInsufficientFunds
	}
	bal -= amount
	l.balances[account] = bal
	return bal, nil
}

// Credit adds amount and returns the new balance.
// On ErrBalanceOverflow the ledger is left untouched.
func (l *Ledger) Credit(account int32, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bal := l.balances[account]
	if bal > math.MaxInt64-amount {
		return bal, ErrBalanceOverflow
	}
	bal += amount
	l.balances[account] = bal
	return bal, nil
}

// Transfer moves amount between two accounts atomically.
// The returned result always holds the balances as they are after the call,
// whether the transfer was applied or rejected.
func (l *Ledger) Transfer(from, to int32, amount int64) (TransferResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := func() TransferResult {
		return TransferResult{
			From: Account{Number: from, Balance: l.balances[from]},
			To:   Account{Number: to, Balance: l.balances[to]},
		}
	}

	switch {
	case amount <= 0:
		return res(), ErrInvalidAmount
	case from == to:
		return res(), ErrSameAccount
	case l.balances[from] < amount:
		return res(), ErrInsufficientFunds
	case l.balances[to] > math.MaxInt64-amount:
		return res(), ErrBalanceOverflow
	}

	l.balances[from] -= amount
	l.balances[to] += amount
	return res(), nil
}

// Snapshot returns a copy of every known account ordered by number.
func (l *Ledger) Snapshot() []Account {
	l.mu.RLock()
	out := make([]Account, 0, len(l.balances))
	for acct, bal := range l.balances {
		out = append(out, Account{Number: acct, Balance: bal})
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

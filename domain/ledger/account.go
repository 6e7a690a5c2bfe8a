package ledger

import "time"

// Account is a point-in-time view of one balance.
type Account struct {
	Number  int32
	Balance int64
}

// TransferResult carries both post-operation balances.
// It is filled in for rejected transfers as well.
type TransferResult struct {
	From Account
	To   Account
}

type EntryKind uint8

const (
	EntryDeposit EntryKind = iota + 1
	EntryWithdraw
	EntryTransfer
)

func (k EntryKind) String() string {
	switch k {
	case EntryDeposit:
		return "deposit"
	case EntryWithdraw:
		return "withdraw"
	case EntryTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Entry describes one committed mutation.
// Deposits only set To, withdrawals only set From.
type Entry struct {
	Kind     EntryKind
	From     int32
	To       int32
	Amount   int64
	Identity string
	At       time.Time
}

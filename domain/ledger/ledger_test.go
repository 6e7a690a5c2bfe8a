package ledger

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestBalanceDefaultsAndDoesNotCreate(t *testing.T) {
	l := New(DefaultSeed())

	if got := l.Balance(3); got != 300 {
		t.Fatalf("seeded balance: got %d, want 300", got)
	}
	if got := l.Balance(99); got != 0 {
		t.Fatalf("unknown balance: got %d, want 0", got)
	}
	if got := l.Balance(99); got != 0 {
		t.Fatalf("second read: got %d, want 0", got)
	}
	if n := len(l.Snapshot()); n != 5 {
		t.Fatalf("reads must not create accounts, snapshot has %d", n)
	}
}

func TestDebit(t *testing.T) {
	l := New(DefaultSeed())

	bal, err := l.Debit(1, 40)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if bal != 60 {
		t.Fatalf("balance after debit: got %d, want 60", bal)
	}

	if _, err := l.Debit(1, 61); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if got := l.Balance(1); got != 60 {
		t.Fatalf("failed debit changed balance to %d", got)
	}

	if _, err := l.Debit(1, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestCreditCreatesAccount(t *testing.T) {
	l := New(nil)

	bal, err := l.Credit(42, 15)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if bal != 15 {
		t.Fatalf("balance after credit: got %d, want 15", bal)
	}
	snap := l.Snapshot()
	if len(snap) != 1 || snap[0] != (Account{Number: 42, Balance: 15}) {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestCreditRejectsOverflow(t *testing.T) {
	l := New(DefaultSeed())

	bal, err := l.Credit(1, math.MaxInt64)
	if !errors.Is(err, ErrBalanceOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if bal != 100 || l.Balance(1) != 100 {
		t.Fatalf("overflowing credit changed balance: returned %d, stored %d", bal, l.Balance(1))
	}

	if _, err := l.Credit(1, math.MaxInt64-100); err != nil {
		t.Fatalf("credit up to the limit: %v", err)
	}
	if got := l.Balance(1); got != math.MaxInt64 {
		t.Fatalf("balance at limit: got %d", got)
	}
}

func TestTransferRejectsOverflow(t *testing.T) {
	l := New(map[int32]int64{1: 10, 2: math.MaxInt64 - 5})

	res, err := l.Transfer(1, 2, 6)
	if !errors.Is(err, ErrBalanceOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if res.From.Balance != 10 || res.To.Balance != math.MaxInt64-5 {
		t.Fatalf("rejected transfer reported %+v", res)
	}
	if l.Balance(1) != 10 || l.Balance(2) != math.MaxInt64-5 {
		t.Fatalf("rejected transfer changed state: %d, %d", l.Balance(1), l.Balance(2))
	}

	if _, err := l.Transfer(1, 2, 5); err != nil {
		t.Fatalf("transfer up to the limit: %v", err)
	}
}

func TestTransferConservesSum(t *testing.T) {
	l := New(DefaultSeed())

	res, err := l.Transfer(2, 4, 150)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if res.From.Balance != 50 || res.To.Balance != 550 {
		t.Fatalf("unexpected balances %+v", res)
	}
	if sum := l.Balance(2) + l.Balance(4); sum != 600 {
		t.Fatalf("sum changed: %d", sum)
	}
}

func TestTransferRejectionsLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		from, to int32
		amount   int64
		want     error
	}{
		{name: "insufficient", from: 1, to: 2, amount: 101, want: ErrInsufficientFunds},
		{name: "same account", from: 3, to: 3, amount: 10, want: ErrSameAccount},
		{name: "zero amount", from: 1, to: 2, amount: 0, want: ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New(DefaultSeed())
			before := l.Snapshot()

			res, err := l.Transfer(tc.from, tc.to, tc.amount)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if res.From.Balance != l.Balance(tc.from) || res.To.Balance != l.Balance(tc.to) {
				t.Fatalf("result does not carry current balances: %+v", res)
			}
			after := l.Snapshot()
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("account changed: %+v -> %+v", before[i], after[i])
				}
			}
		})
	}
}

func TestConcurrentTransfersKeepPairSum(t *testing.T) {
	l := New(map[int32]int64{1: 50, 2: 50})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := int32(1), int32(2)
			if i%2 == 1 {
				from, to = to, from
			}
			_, _ = l.Transfer(from, to, 1)
		}(i)
	}

	var readers sync.WaitGroup
	stop := make(chan struct{})
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			var sum int64
			for _, a := range l.Snapshot() {
				if a.Balance < 0 {
					t.Errorf("negative balance observed: %+v", a)
				}
				sum += a.Balance
			}
			if sum != 100 {
				t.Errorf("intermediate state observed, sum %d", sum)
				return
			}
		}
	}()

	wg.Wait()
	close(stop)
	readers.Wait()

	if sum := l.Balance(1) + l.Balance(2); sum != 100 {
		t.Fatalf("pair sum changed to %d", sum)
	}
}

func TestSnapshotIsOrderedCopy(t *testing.T) {
	l := New(map[int32]int64{9: 1, 3: 2, 7: 3})

	snap := l.Snapshot()
	for i := 1; i < len(snap); i++ {
		if snap[i-1].Number >= snap[i].Number {
			t.Fatalf("snapshot not ordered: %+v", snap)
		}
	}

	snap[0].Balance = 1000
	if l.Balance(snap[0].Number) == 1000 {
		t.Fatal("snapshot aliases ledger state")
	}
}

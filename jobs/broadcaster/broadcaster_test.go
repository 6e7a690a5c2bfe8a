package broadcaster

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"bankstream/domain/ledger"
	"bankstream/infra/outbox"
)

type fakePublisher struct {
	keys   []string
	failAt int
	calls  int
}

func (p *fakePublisher) Publish(_ context.Context, key, _ []byte) error {
	p.calls++
	if p.failAt > 0 && p.calls == p.failAt {
		return errors.New("broker down")
	}
	p.keys = append(p.keys, string(key))
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func seeded(t *testing.T) *outbox.Outbox {
	t.Helper()
	o, err := outbox.Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })

	entries := []ledger.Entry{
		{Kind: ledger.EntryDeposit, To: 3, Amount: 5},
		{Kind: ledger.EntryWithdraw, From: 1, Amount: 10},
		{Kind: ledger.EntryTransfer, From: 2, To: 4, Amount: 7},
	}
	for _, e := range entries {
		if err := o.Append(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return o
}

func pending(t *testing.T, o *outbox.Outbox) int {
	t.Helper()
	n := 0
	if err := o.ScanPending(func(outbox.Record) error { n++; return nil }); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return n
}

func TestDrainOncePublishesInOrder(t *testing.T) {
	o := seeded(t)
	pub := &fakePublisher{}
	b := New(o, pub, zap.NewNop(), nil, 0)

	sent, err := b.DrainOnce(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if sent != 3 {
		t.Fatalf("sent = %d, want 3", sent)
	}
	want := []string{"3", "1", "2"}
	for i, k := range want {
		if pub.keys[i] != k {
			t.Fatalf("keys = %v, want %v", pub.keys, want)
		}
	}
	if n := pending(t, o); n != 0 {
		t.Fatalf("pending = %d after drain", n)
	}
}

func TestDrainOnceStopsAtFailureAndRetries(t *testing.T) {
	o := seeded(t)
	pub := &fakePublisher{failAt: 2}
	b := New(o, pub, zap.NewNop(), nil, 0)

	sent, err := b.DrainOnce(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if sent != 1 || pending(t, o) != 2 {
		t.Fatalf("sent = %d pending = %d", sent, pending(t, o))
	}

	rec, err := o.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != outbox.StateSent || rec.Retries != 1 {
		t.Fatalf("record = %+v", rec)
	}

	sent, _ = b.DrainOnce(context.Background())
	if sent != 2 || pending(t, o) != 0 {
		t.Fatalf("second pass sent = %d", sent)
	}
}

func TestDrainOnceParksExhaustedEvents(t *testing.T) {
	o := seeded(t)
	pub := &fakePublisher{}
	b := New(o, pub, zap.NewNop(), nil, 0)
	b.maxRetries = 1

	_ = o.MarkSent(1)

	sent, err := b.DrainOnce(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if sent != 2 {
		t.Fatalf("sent = %d, want 2", sent)
	}
	rec, err := o.Get(1)
	if err != nil || rec.State != outbox.StateFailed {
		t.Fatalf("record 1 = %+v, %v", rec, err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	o := seeded(t)
	b := New(o, &fakePublisher{}, zap.NewNop(), nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
}

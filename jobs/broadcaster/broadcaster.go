// Package broadcaster drains the ledger event outbox into a message broker.
package broadcaster

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"bankstream/api/pb"
	"bankstream/infra/outbox"
	"bankstream/infra/telemetry"
)

// Publisher delivers one event. Implemented by infra/kafka.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}

// Store is the outbox as seen by the broadcaster.
type Store interface {
	ScanPending(fn func(rec outbox.Record) error) error
	MarkSent(seq uint64) error
	MarkAcked(seq uint64) error
	MarkFailed(seq uint64) error
}

const (
	DefaultInterval   = 250 * time.Millisecond
	DefaultMaxRetries = 10
)

type Broadcaster struct {
	store      Store
	publisher  Publisher
	log        *zap.Logger
	metrics    *telemetry.Metrics
	interval   time.Duration
	maxRetries uint32
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	store Store,
	publisher Publisher,
	log *zap.Logger,
	metrics *telemetry.Metrics,
	interval time.Duration,
) *Broadcaster {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Broadcaster{
		store:      store,
		publisher:  publisher,
		log:        log.With(zap.String("component", "broadcaster")),
		metrics:    metrics,
		interval:   interval,
		maxRetries: DefaultMaxRetries,
	}
}

// ------------------------------------------------
// LOOP
// ------------------------------------------------

// Run drains the outbox every interval until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) error {
	b.log.Info("broadcaster started", zap.Duration("interval", b.interval))

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("broadcaster stopped")
			return nil
		case <-ticker.C:
			if _, err := b.DrainOnce(ctx); err != nil {
				b.log.Warn("outbox scan failed", zap.Error(err))
			}
		}
	}
}

// ------------------------------------------------
// DRAIN
// ------------------------------------------------

// DrainOnce publishes every pending event in order and returns how many
// were acknowledged. A failed publish stops the pass so ordering holds;
// the event is retried on the next pass until maxRetries.
func (b *Broadcaster) DrainOnce(ctx context.Context) (int, error) {
	sent := 0
	err := b.store.ScanPending(func(rec outbox.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if rec.Retries >= b.maxRetries {
			b.log.Error("giving up on event", zap.Uint64("seq", rec.Seq), zap.Uint32("retries", rec.Retries))
			return b.store.MarkFailed(rec.Seq)
		}

		if err := b.store.MarkSent(rec.Seq); err != nil {
			return err
		}

		if err := b.publisher.Publish(ctx, partitionKey(rec.Payload), rec.Payload); err != nil {
			b.metrics.PublishFailed()
			b.log.Warn("publish failed, retrying later", zap.Uint64("seq", rec.Seq), zap.Error(err))
			return errStopPass
		}

		if err := b.store.MarkAcked(rec.Seq); err != nil {
			return err
		}
		sent++
		return nil
	})
	if errors.Is(err, errStopPass) {
		err = nil
	}
	b.metrics.EventPublished(sent)
	return sent, err
}

var errStopPass = errors.New("stop pass")

// partitionKey keys events by source account so each account's events
// stay ordered within a partition.
func partitionKey(payload []byte) []byte {
	var ev pb.LedgerEvent
	if err := pb.Unmarshal(payload, &ev); err != nil {
		return nil
	}
	account := ev.FromAccount
	if account == 0 {
		account = ev.ToAccount
	}
	return []byte(strconv.FormatInt(int64(account), 10))
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.publisher.Close()
}

// Package outbox stores ledger events in Pebble until the broadcaster has
// published them.
package outbox

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"bankstream/api/pb"
	"bankstream/domain/ledger"
	"bankstream/infra/sequence"
)

var keyPrefix = []byte("event/")

// Outbox is the pending-event store. It implements service.Journal.
type Outbox struct {
	db  *pebble.DB
	seq *sequence.Sequencer

	// guards read-modify-write of record state
	mu  sync.Mutex
	now func() time.Time
}

// Open opens the store at dir, or an in-memory store when dir is empty.
// Sequence numbers resume after the highest stored event.
func Open(dir string) (*Outbox, error) {
	opts := &pebble.Options{}
	if dir == "" {
		opts.FS = vfs.NewMem()
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open outbox: %w", err)
	}

	last, err := lastSeq(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Outbox{db: db, seq: sequence.New(last), now: time.Now}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// Append stores e as a new event and returns its sequence number.
func (o *Outbox) Append(e ledger.Entry) error {
	_, err := o.AppendEvent(e)
	return err
}

func (o *Outbox) AppendEvent(e ledger.Entry) (uint64, error) {
	seq := o.seq.Next()
	payload, err := pb.Marshal(&pb.LedgerEvent{
		Seq:         seq,
		Kind:        e.Kind.String(),
		FromAccount: e.From,
		ToAccount:   e.To,
		Amount:      e.Amount,
		Identity:    e.Identity,
		AtUnixNano:  e.At.UnixNano(),
	})
	if err != nil {
		return 0, err
	}

	rec := Record{Seq: seq, State: StateNew, Payload: payload}
	if err := o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync); err != nil {
		return 0, fmt.Errorf("append event %d: %w", seq, err)
	}
	return seq, nil
}

// MarkSent records a publish attempt.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.update(seq, func(r *Record) {
		r.State = StateSent
		r.Retries++
	})
}

// MarkFailed parks an event that will not be retried.
func (o *Outbox) MarkFailed(seq uint64) error {
	return o.update(seq, func(r *Record) {
		r.State = StateFailed
	})
}

// MarkAcked removes a published event.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.db.Delete(keyFor(seq), pebble.Sync)
}

// Get returns the stored record for seq.
func (o *Outbox) Get(seq uint64) (Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()

	return decodeRecord(seq, val)
}

// LastSeq is the most recently issued sequence number.
func (o *Outbox) LastSeq() uint64 {
	return o.seq.Current()
}

// -------------------- Scan --------------------

// ScanPending calls fn, in sequence order, for every event that is new or
// was sent without an ack. Failed events are skipped.
func (o *Outbox) ScanPending(fn func(rec Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: []byte("event0"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return fmt.Errorf("event %d: %w", seq, err)
		}
		if rec.State == StateFailed {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func (o *Outbox) update(seq uint64, mutate func(*Record)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	mutate(&rec)
	rec.LastAttempt = o.now().UnixNano()
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// keys sort by sequence: "event/" followed by the big-endian number
func keyFor(seq uint64) []byte {
	key := make([]byte, len(keyPrefix)+8)
	copy(key, keyPrefix)
	binary.BigEndian.PutUint64(key[len(keyPrefix):], seq)
	return key
}

func parseKey(b []byte) (uint64, error) {
	if len(b) != len(keyPrefix)+8 {
		return 0, fmt.Errorf("outbox: bad key %q", b)
	}
	return binary.BigEndian.Uint64(b[len(keyPrefix):]), nil
}

func lastSeq(db *pebble.DB) (uint64, error) {
	iter, err := db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: []byte("event0"),
	})
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	if !iter.Last() {
		if err := iter.Error(); err != nil && !errors.Is(err, pebble.ErrNotFound) {
			return 0, err
		}
		return 0, nil
	}
	return parseKey(iter.Key())
}

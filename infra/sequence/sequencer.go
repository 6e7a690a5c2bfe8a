package sequence

import "sync/atomic"

// Sequencer hands out strictly increasing ledger event numbers.
type Sequencer struct {
	last atomic.Uint64
}

// New starts after last. Fresh stores pass 0; a reopened outbox passes
// the highest stored number.
func New(last uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(last)
	return s
}

// Next returns the next number. Safe for concurrent use.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued number.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

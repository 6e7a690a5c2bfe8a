package service

import (
	"context"
	"errors"
	"testing"
)

func TestGuessBinarySearch(t *testing.T) {
	b, _ := newBank(t, nil, 42)
	g := b.OpenGuess(context.Background(), "")

	lo, hi := int32(1), int32(100)
	var replies []GuessReply
	for !g.Won() {
		mid := (lo + hi) / 2
		r, err := g.Guess(mid)
		if err != nil {
			t.Fatalf("guess %d: %v", mid, err)
		}
		replies = append(replies, r)
		switch r.Result {
		case TooLow:
			lo = mid + 1
		case TooHigh:
			hi = mid - 1
		}
		if len(replies) > 7 {
			t.Fatalf("binary search took too long: %+v", replies)
		}
	}

	last := replies[len(replies)-1]
	if last.Result != Correct || int(last.Attempt) != len(replies) {
		t.Fatalf("last reply = %+v after %d guesses", last, len(replies))
	}
	for i, r := range replies {
		if r.Attempt != int32(i+1) {
			t.Fatalf("attempt %d numbered %d", i+1, r.Attempt)
		}
	}

	if _, err := g.Guess(42); !errors.Is(err, ErrProtocolViolation) {
		t.Fatalf("guess after win: err = %v", err)
	}
}

func TestGuessCloseBeforeWinCompletes(t *testing.T) {
	b, _ := newBank(t, nil, 42)
	g := b.OpenGuess(context.Background(), "")

	r, err := g.Guess(90)
	if err != nil {
		t.Fatalf("guess: %v", err)
	}
	if r.Result != TooHigh || g.Won() {
		t.Fatalf("reply = %+v, won = %v", r, g.Won())
	}
	if got := g.Close(nil); got != OutcomeCompleted {
		t.Fatalf("outcome = %v, want completed", got)
	}
}

func TestRandomSecretRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if s := RandomSecret(); s < 1 || s > 100 {
			t.Fatalf("secret %d out of range", s)
		}
	}
}

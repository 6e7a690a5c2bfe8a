package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type GuessResult int

const (
	TooLow GuessResult = iota + 1
	TooHigh
	Correct
)

func (r GuessResult) String() string {
	switch r {
	case TooLow:
		return "too_low"
	case TooHigh:
		return "too_high"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

type GuessReply struct {
	Attempt int32
	Result  GuessResult
}

// GuessSession hides one number per stream. The session ends when the
// number is found.
type GuessSession struct {
	*session
	secret   int32
	attempts int32
	won      bool
}

func (b *Bank) OpenGuess(ctx context.Context, identity string) *GuessSession {
	return &GuessSession{
		session: b.open(ctx, MethodGuess, identity),
		secret:  b.secret(),
	}
}

// Guess scores n. Once the number is found, further guesses are a
// protocol violation.
func (g *GuessSession) Guess(n int32) (GuessReply, error) {
	if g.won {
		return GuessReply{}, fmt.Errorf("%w: game already won", ErrProtocolViolation)
	}
	g.attempts++

	reply := GuessReply{Attempt: g.attempts}
	switch {
	case n < g.secret:
		reply.Result = TooLow
	case n > g.secret:
		reply.Result = TooHigh
	default:
		reply.Result = Correct
		g.won = true
	}

	g.log.Debug("guess scored",
		zap.Int32("attempt", reply.Attempt),
		zap.Stringer("result", reply.Result),
	)
	return reply, nil
}

func (g *GuessSession) Won() bool { return g.won }

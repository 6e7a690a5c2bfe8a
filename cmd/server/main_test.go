package main

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type closer struct{ err error }

func (c closer) Close() error { return c.err }

func TestCloseLoggedReportsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(core)

	closeLogged(log, "outbox", closer{})
	if logs.Len() != 0 {
		t.Fatalf("clean close logged %d entries", logs.Len())
	}

	closeLogged(log, "outbox", closer{err: errors.New("flush failed")})
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["resource"] != "outbox" || fields["error"] != "flush failed" {
		t.Fatalf("fields = %v", fields)
	}
}

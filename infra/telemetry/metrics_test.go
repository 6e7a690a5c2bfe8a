package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc/codes"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.GateRejected("auth", "/x", codes.Unauthenticated)
	m.SessionOpened("/x")
	m.SessionClosed("/x", "completed")
	m.EventAppended()
	m.EventPublished(3)
	m.PublishFailed()
}

func TestSessionGaugeTracksOpenSessions(t *testing.T) {
	m := NewMetrics()
	m.SessionOpened("deposit")
	m.SessionOpened("deposit")
	m.SessionClosed("deposit", "completed")

	if got := testutil.ToFloat64(m.sessionsOpen.WithLabelValues("deposit")); got != 1 {
		t.Fatalf("open = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.sessionsTotal.WithLabelValues("deposit", "completed")); got != 1 {
		t.Fatalf("completed = %v, want 1", got)
	}
}

func TestGateRejectionLabels(t *testing.T) {
	m := NewMetrics()
	m.GateRejected("authentication", "/bank.v1.BankService/Withdraw", codes.Unauthenticated)

	got := testutil.ToFloat64(m.gateRejections.WithLabelValues("authentication", "/bank.v1.BankService/Withdraw", "Unauthenticated"))
	if got != 1 {
		t.Fatalf("rejections = %v, want 1", got)
	}
}

func TestSetupTracingDisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "bankstream", "")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

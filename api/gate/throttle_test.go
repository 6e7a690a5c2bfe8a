package gate

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func withPeer(addr string) context.Context {
	tcp, _ := net.ResolveTCPAddr("tcp", addr)
	return peer.NewContext(context.Background(), &peer.Peer{Addr: tcp})
}

func TestThrottleLimitsPerHost(t *testing.T) {
	th := NewThrottle(1, 2, time.Minute)
	now := time.Unix(1_700_000_000, 0)
	th.now = func() time.Time { return now }

	a1 := withPeer("10.0.0.1:5000")
	a2 := withPeer("10.0.0.1:5001")
	b := withPeer("10.0.0.2:5000")

	for i := 0; i < 2; i++ {
		if _, err := th.Admit(a1, CallInfo{}); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}
	// same host, other port shares the bucket
	_, err := th.Admit(a2, CallInfo{})
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("code = %v, want ResourceExhausted", status.Code(err))
	}
	if _, err := th.Admit(b, CallInfo{}); err != nil {
		t.Fatalf("other host throttled: %v", err)
	}

	now = now.Add(time.Second)
	if _, err := th.Admit(a1, CallInfo{}); err != nil {
		t.Fatalf("bucket did not refill: %v", err)
	}
}

func TestNewThrottleDisabled(t *testing.T) {
	if th := NewThrottle(0, 1, 0); th != nil {
		t.Fatalf("expected nil throttle")
	}
	var th *Throttle
	if _, err := th.Admit(withPeer("10.0.0.1:1"), CallInfo{}); err != nil {
		t.Fatalf("nil throttle rejected: %v", err)
	}
}

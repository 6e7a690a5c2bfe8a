package gate

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

var errRateLimited = status.Error(codes.ResourceExhausted, "rate limit exceeded")

// Throttle applies a token bucket per peer host and evicts idle buckets.
type Throttle struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	mu    sync.Mutex
	byKey map[string]*bucket
	hits  uint64
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewThrottle returns nil when rps or burst is not positive; a nil
// Throttle admits everything.
func NewThrottle(rps float64, burst int, idleTTL time.Duration) *Throttle {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &Throttle{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
		byKey:   make(map[string]*bucket),
	}
}

func (*Throttle) Name() string { return "throttle" }

func (t *Throttle) Admit(ctx context.Context, _ CallInfo) (context.Context, error) {
	if !t.allow(peerKey(ctx)) {
		return ctx, errRateLimited
	}
	return ctx, nil
}

func (*Throttle) Inspect(context.Context, CallInfo, any) error { return nil }

func (t *Throttle) allow(key string) bool {
	if t == nil || key == "" {
		return true
	}
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.byKey[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.byKey[key] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	t.hits++
	if t.hits%512 == 0 {
		cutoff := now.Add(-t.idleTTL)
		for k, v := range t.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(t.byKey, k)
			}
		}
	}
	return allowed
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

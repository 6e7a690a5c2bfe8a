package gate

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"bankstream/infra/telemetry"
)

// CallInfo describes the call a gate is looking at.
type CallInfo struct {
	FullMethod string
	Stream     bool
}

// Gate is one stage of the pipeline. Errors should be gRPC status errors;
// anything else reaches the caller as codes.Unknown.
type Gate interface {
	Name() string
	Admit(ctx context.Context, call CallInfo) (context.Context, error)
	Inspect(ctx context.Context, call CallInfo, msg any) error
}

// Pipeline runs its gates in the order they were given.
type Pipeline struct {
	gates   []Gate
	log     *zap.Logger
	metrics *telemetry.Metrics
}

func NewPipeline(log *zap.Logger, metrics *telemetry.Metrics, gates ...Gate) *Pipeline {
	return &Pipeline{
		gates:   gates,
		log:     log.With(zap.String("component", "gate")),
		metrics: metrics,
	}
}

// UnaryServerInterceptor admits the call and inspects its single request.
func (p *Pipeline) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		call := CallInfo{FullMethod: info.FullMethod}

		ctx, err := p.admit(ctx, call)
		if err != nil {
			return nil, err
		}
		if err := p.inspect(ctx, call, req); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamServerInterceptor admits the call and wraps the stream so every
// received message is inspected. A message rejection is what the caller
// sees, whatever the handler returns afterwards.
func (p *Pipeline) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		call := CallInfo{FullMethod: info.FullMethod, Stream: true}

		ctx, err := p.admit(stream.Context(), call)
		if err != nil {
			return err
		}

		gs := &gatedStream{ServerStream: stream, ctx: ctx, call: call, p: p}
		err = handler(srv, gs)
		if gs.rejection != nil {
			return gs.rejection
		}
		return err
	}
}

func (p *Pipeline) admit(ctx context.Context, call CallInfo) (context.Context, error) {
	for _, g := range p.gates {
		next, err := g.Admit(ctx, call)
		if err != nil {
			return ctx, p.reject(g, call, err)
		}
		if next != nil {
			ctx = next
		}
	}
	return ctx, nil
}

func (p *Pipeline) inspect(ctx context.Context, call CallInfo, msg any) error {
	for _, g := range p.gates {
		if err := g.Inspect(ctx, call, msg); err != nil {
			return p.reject(g, call, err)
		}
	}
	return nil
}

func (p *Pipeline) reject(g Gate, call CallInfo, err error) error {
	st := status.Convert(err)
	p.log.Warn("call rejected",
		zap.String("gate", g.Name()),
		zap.String("method", call.FullMethod),
		zap.String("code", st.Code().String()),
		zap.String("reason", st.Message()),
	)
	p.metrics.GateRejected(g.Name(), call.FullMethod, st.Code())
	return st.Err()
}

// gatedStream overrides the stream context and inspects inbound messages.
// gRPC forbids concurrent RecvMsg calls, so rejection needs no lock.
type gatedStream struct {
	grpc.ServerStream
	ctx       context.Context
	call      CallInfo
	p         *Pipeline
	rejection error
}

func (s *gatedStream) Context() context.Context {
	return s.ctx
}

func (s *gatedStream) RecvMsg(m any) error {
	if s.rejection != nil {
		return s.rejection
	}
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	if err := s.p.inspect(s.ctx, s.call, m); err != nil {
		s.rejection = err
		return err
	}
	return nil
}

package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"bankstream/api/gate"
	"bankstream/api/pb"
	"bankstream/infra/telemetry"
	"bankstream/service"
)

// Keep-alive defaults: ping an idle connection every 10s, give it 1s to
// answer, and reap connections idle for 25s.
const (
	DefaultKeepaliveTime    = 10 * time.Second
	DefaultKeepaliveTimeout = 1 * time.Second
	DefaultMaxIdle          = 25 * time.Second
	DefaultMinPingInterval  = 5 * time.Second
)

// Options configures the server built by New.
type Options struct {
	Keepalive   keepalive.ServerParameters
	Enforcement keepalive.EnforcementPolicy

	// Verifier checks bearer tokens on ProtectedMethods.
	Verifier         gate.TokenVerifier
	ProtectedMethods []string

	// Throttle, when set, runs ahead of authentication.
	Throttle *gate.Throttle

	Tracing bool
}

func DefaultOptions() Options {
	return Options{
		Keepalive: keepalive.ServerParameters{
			MaxConnectionIdle: DefaultMaxIdle,
			Time:              DefaultKeepaliveTime,
			Timeout:           DefaultKeepaliveTimeout,
		},
		Enforcement: keepalive.EnforcementPolicy{
			MinTime:             DefaultMinPingInterval,
			PermitWithoutStream: true,
		},
		Verifier:         gate.PrefixVerifier{Prefix: "valid"},
		ProtectedMethods: []string{pb.BankService_Withdraw_FullMethodName},
	}
}

// Server is the registered gRPC server plus its health service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	log    *zap.Logger
}

var serviceNames = []string{
	pb.BankService_ServiceDesc.ServiceName,
	pb.TransferService_ServiceDesc.ServiceName,
	pb.GuessNumber_ServiceDesc.ServiceName,
}

// New builds the gRPC server with the gate pipeline
// (throttle, authentication, validation) and every bank service.
func New(
	bank *service.Bank,
	log *zap.Logger,
	metrics *telemetry.Metrics,
	opts Options,
) *Server {
	gates := make([]gate.Gate, 0, 3)
	if opts.Throttle != nil {
		gates = append(gates, opts.Throttle)
	}
	gates = append(gates,
		gate.NewAuthenticator(opts.Verifier, opts.ProtectedMethods...),
		gate.NewValidator(),
	)
	pipeline := gate.NewPipeline(log, metrics, gates...)

	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(pipeline.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(pipeline.StreamServerInterceptor()),
		grpc.KeepaliveParams(opts.Keepalive),
		grpc.KeepaliveEnforcementPolicy(opts.Enforcement),
	}
	if opts.Tracing {
		serverOpts = append(serverOpts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	srv := grpc.NewServer(serverOpts...)
	glog := log.With(zap.String("component", "grpc"))
	pb.RegisterBankServiceServer(srv, NewBankServer(bank, glog))
	pb.RegisterTransferServiceServer(srv, NewTransferServer(bank, glog))
	pb.RegisterGuessNumberServer(srv, NewGuessServer(bank, glog))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for _, name := range serviceNames {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{grpc: srv, health: hs, log: glog}
}

// GRPC exposes the underlying server.
func (s *Server) GRPC() *grpc.Server {
	return s.grpc
}

// Serve blocks until ctx is done or the listener fails. On shutdown it
// stops accepting calls and waits up to grace for open streams before
// closing them.
func (s *Server) Serve(ctx context.Context, lis net.Listener, grace time.Duration) error {
	s.log.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpc.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case <-ctx.Done():
	}

	s.health.Shutdown()
	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	t := time.NewTimer(grace)
	defer t.Stop()
	select {
	case <-stopped:
	case <-t.C:
		s.log.Warn("graceful stop timed out, closing open streams", zap.Duration("grace", grace))
		s.grpc.Stop()
		<-stopped
	}

	if err := <-serveErr; err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}
	return nil
}

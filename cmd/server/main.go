package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bankstream/api/admin"
	"bankstream/api/gate"
	"bankstream/api/grpcserver"
	"bankstream/config"
	"bankstream/domain/ledger"
	"bankstream/infra/kafka"
	"bankstream/infra/logging"
	"bankstream/infra/outbox"
	"bankstream/infra/telemetry"
	"bankstream/jobs/broadcaster"
	"bankstream/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bankstream: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ---------------- Config ----------------

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---------------- Telemetry ----------------

	metrics := telemetry.NewMetrics()

	shutdownTracing, err := telemetry.SetupTracing(ctx, "bankstream", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	// ---------------- Domain ----------------

	seed, err := cfg.Seed()
	if err != nil {
		return err
	}
	book := ledger.New(seed)

	// ---------------- Outbox + Broadcaster ----------------

	var (
		journal service.Journal
		bc      *broadcaster.Broadcaster
	)
	if len(cfg.KafkaBrokers) > 0 {
		ob, err := outbox.Open(cfg.OutboxDir)
		if err != nil {
			return err
		}
		defer closeLogged(log, "outbox", ob)
		journal = ob

		publisher, err := newPublisher(cfg)
		if err != nil {
			return err
		}
		bc = broadcaster.New(ob, publisher, log, metrics, cfg.BroadcastInterval)
		defer closeLogged(log, "publisher", bc)

		log.Info("ledger events enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic),
			zap.String("client", cfg.KafkaClient),
			zap.Uint64("resume_seq", ob.LastSeq()),
		)
	}

	// ---------------- Service ----------------

	bank := service.New(book, journal, log, metrics, service.Config{
		WithdrawUnit: cfg.WithdrawUnit,
		WithdrawPace: cfg.WithdrawPace,
	})

	// ---------------- gRPC ----------------

	opts := grpcserver.DefaultOptions()
	opts.Keepalive.Time = cfg.KeepaliveTime
	opts.Keepalive.Timeout = cfg.KeepaliveTimeout
	opts.Keepalive.MaxConnectionIdle = cfg.MaxIdle
	opts.ProtectedMethods = cfg.AuthMethods
	opts.Verifier = gate.PrefixVerifier{Prefix: cfg.AuthTokenPrefix}
	if cfg.AuthJWTSecret != "" {
		opts.Verifier = gate.NewJWTVerifier(cfg.AuthJWTSecret)
	}
	if th := gate.NewThrottle(cfg.RateLimitRPS, cfg.RateLimitBurst, 0); th != nil {
		opts.Throttle = th
	}
	opts.Tracing = cfg.OTelEndpoint != ""

	srv := grpcserver.New(bank, log, metrics, opts)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	var ready atomic.Bool

	// ---------------- Run ----------------

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ready.Store(true)
		return srv.Serve(gctx, lis, cfg.ShutdownTimeout)
	})

	if cfg.AdminAddr != "" {
		router := admin.NewRouter(metrics.Handler(), func() error {
			if !ready.Load() {
				return errors.New("grpc server not started")
			}
			return nil
		})
		g.Go(func() error {
			return admin.Serve(gctx, cfg.AdminAddr, router, log)
		})
	}

	if bc != nil {
		g.Go(func() error {
			return bc.Run(gctx)
		})
	}

	log.Info("bankstream running", zap.String("grpc", cfg.GRPCAddr), zap.String("admin", cfg.AdminAddr))
	err = g.Wait()
	log.Info("bankstream stopped")
	return err
}

func newPublisher(cfg config.Config) (broadcaster.Publisher, error) {
	if cfg.KafkaClient == config.KafkaClientSarama {
		return kafka.NewSaramaProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	return kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic), nil
}

// closeLogged closes c and logs a failure instead of dropping it.
func closeLogged(log *zap.Logger, name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warn("close failed", zap.String("resource", name), zap.Error(err))
	}
}

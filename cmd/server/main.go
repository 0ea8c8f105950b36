package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"speakerreg/internal/audit"
	"speakerreg/internal/platform/config"
	"speakerreg/internal/platform/httpserver"
	"speakerreg/internal/platform/logger"
	platformmetrics "speakerreg/internal/platform/metrics"
	speakermetrics "speakerreg/internal/speaker/metrics"
	speakerservice "speakerreg/internal/speaker/service"
)

// main wires dependencies and runs the HTTP server and audit worker until a
// signal arrives. Business logic lives in internal/speaker.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("speakerreg exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := platformmetrics.New(registry)

	speakers, err := openSpeakerStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer speakers.close()

	g, gctx := errgroup.WithContext(ctx)

	publisher, closeAudit, err := buildAudit(gctx, g, cfg.Audit, log)
	if err != nil {
		return err
	}
	defer closeAudit()

	svc := speakerservice.New(speakers.store,
		speakerservice.WithLogger(log),
		speakerservice.WithAuditPublisher(publisher),
		speakerservice.WithMetrics(speakermetrics.New(registry)),
	)

	router := newRouter(routerDeps{
		logger:      log,
		service:     svc,
		adminToken:  cfg.Server.AdminToken,
		registry:    registry,
		httpMetrics: httpMetrics,
		health:      speakers.health,
	})

	srv := httpserver.New(cfg.Server, router)

	g.Go(func() error {
		log.Info("starting speakerreg",
			"addr", cfg.Server.Addr,
			"storage_driver", cfg.Storage.Driver,
			"audit_kafka", cfg.Audit.KafkaEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// buildAudit returns the publisher for the service. With Kafka configured,
// events are queued and a worker in g forwards them.
func buildAudit(ctx context.Context, g *errgroup.Group, cfg config.AuditConfig, log *slog.Logger) (*audit.Publisher, func(), error) {
	if !cfg.KafkaEnabled() {
		return audit.NewPublisher(audit.NewInMemoryStore()), func() {}, nil
	}

	sink, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, nil, fmt.Errorf("audit kafka sink: %w", err)
	}
	if err := sink.Ping(ctx); err != nil {
		log.Warn("kafka unreachable at startup; audit events will retry on publish", "error", err)
	} else if err := sink.EnsureTopic(ctx, cfg.KafkaPartitions, cfg.KafkaReplication); err != nil {
		log.Warn("audit topic not provisioned", "topic", cfg.KafkaTopic, "error", err)
	}

	inbox := make(chan audit.Event, cfg.QueueSize)
	worker := audit.NewWorker(sink, inbox, log)
	g.Go(func() error {
		return worker.Run(ctx)
	})
	return audit.NewPublisher(audit.NewQueue(inbox)), sink.Close, nil
}

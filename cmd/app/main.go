package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/bootstrap"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/clock"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/config"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/eventlog"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growpod"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growth"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/ledger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/rules"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/scheduler"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/server"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("GrowPod exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	ruleset, err := rules.LoadFile(cfg.RulesPath)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return err
	}

	eventLogService := eventlog.NewService(store.EventLog)
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: eventLogService,
	})

	growpodService := growpod.NewService(
		store.GrowPod,
		ledger.NewMemoryLedger(ledger.DefaultFirstAssetID),
		growth.NewEngine(ruleset),
		clock.NewRealClock(cfg.GenesisTime, cfg.RoundDuration),
		publisher,
		growpod.Config{
			AppAddress: cfg.AppAddress,
			CacheSize:  cfg.CacheSize,
			CacheTTL:   cfg.CacheTTL,
		},
	)

	pool := worker.NewPool(ctx, cfg.WorkerCount, cfg.WorkerQueueSize, worker.DefaultJobTimeout)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.StatsInterval, growpod.NewStatsJob(growpodService), true)
	sched.Schedule(cfg.CleanupInterval, eventlog.NewCleanupJob(eventLogService, cfg.EventRetention), false)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Version:        cfg.Version,
	}, store.Pool, growpodService, eventLogService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
		Store:              store,
	})

	return serveErr
}

// Boardd is the kanban board daemon.
//
// It serves the task and column HTTP API backed by Redis. Configuration
// is loaded from an optional YAML file and environment variables. See
// internal/config for details.
//
// Usage:
//
//	# Start with defaults (localhost:8080, redis://localhost:6379)
//	boardd
//
//	# Configure via environment
//	SERVER_PORT=9090 REDIS_URL=redis://cache:6379 boardd
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/boardd/internal/column"
	"github.com/fyrsmithlabs/boardd/internal/config"
	"github.com/fyrsmithlabs/boardd/internal/httpapi"
	"github.com/fyrsmithlabs/boardd/internal/logging"
	"github.com/fyrsmithlabs/boardd/internal/store"
	"github.com/fyrsmithlabs/boardd/internal/task"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		switch args[0] {
		case "version":
			printVersion()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			fmt.Fprintf(os.Stderr, "\nUsage:\n")
			fmt.Fprintf(os.Stderr, "  boardd           Start the board daemon\n")
			fmt.Fprintf(os.Stderr, "  boardd version   Show version information\n")
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	if err := run(ctx, *configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}

func printVersion() {
	fmt.Printf("boardd by Fyrsmith Labs\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// run starts the board daemon and blocks until the context is cancelled.
//
// It loads configuration, connects to Redis, wires the task and column
// services into the HTTP server, and shuts down gracefully on cancellation.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync() // Best-effort sync on shutdown
	}()

	logger.Info("Starting boardd",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("redis_url", cfg.Redis.URL),
		zap.Duration("shutdown_timeout", cfg.Server.ShutdownTimeout))

	st, err := store.NewRedis(cfg.Redis.URL, logger)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer st.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := st.Ping(pingCtx); err != nil {
		return fmt.Errorf("redis unreachable at %s: %w", cfg.Redis.URL, err)
	}

	logger.Info("Connected to Redis", zap.String("url", cfg.Redis.URL))

	tasks, err := task.NewService(st, logger)
	if err != nil {
		return fmt.Errorf("initialize task service: %w", err)
	}
	columns, err := column.NewService(st, logger)
	if err != nil {
		return fmt.Errorf("initialize column service: %w", err)
	}

	srv, err := httpapi.NewServer(tasks, columns, logger, cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("initialize http server: %w", err)
	}

	logger.Info("Server configured",
		zap.String("health_endpoint", fmt.Sprintf("http://%s/health", cfg.Server.Addr())),
		zap.String("metrics_endpoint", "/metrics"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

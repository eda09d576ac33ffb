// Package main runs the HTTP API: outcome tracking, statistics,
// predictions, batch simulation, and the live websocket feed.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"baccarat-lab/internal/config"
	"baccarat-lab/internal/history"
	"baccarat-lab/internal/observability"
	"baccarat-lab/internal/server"
	"baccarat-lab/internal/storage"
	chstore "baccarat-lab/internal/storage/clickhouse"
	"baccarat-lab/internal/storage/memory"
	"baccarat-lab/internal/storage/migrations"
	pgstore "baccarat-lab/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	logger := log.New(os.Stderr, "[server] ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	// Create stores
	var runStore storage.ShoeRunStore = memory.NewShoeRunStore()
	var batchStore storage.BatchResultStore = memory.NewBatchResultStore()
	var trajStore storage.TrajectoryStore = memory.NewTrajectoryStore()

	if !cfg.Storage.UseMemory {
		pool, err := pgstore.NewPool(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			logger.Fatalf("connect to postgres: %v", err)
		}
		defer pool.Close()

		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			logger.Fatalf("run postgres migrations: %v", err)
		}
		runStore = pgstore.NewShoeRunStore(pool)
		batchStore = pgstore.NewBatchResultStore(pool)

		trajStore = nil
		if cfg.Storage.ClickhouseDSN != "" {
			conn, err := chstore.NewConn(ctx, cfg.Storage.ClickhouseDSN)
			if err != nil {
				logger.Fatalf("connect to clickhouse: %v", err)
			}
			defer conn.Close()

			if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
				logger.Fatalf("run clickhouse migrations: %v", err)
			}
			trajStore = chstore.NewTrajectoryStore(conn)
		}
	}

	metrics := observability.NewMetrics("")

	handler := server.New(server.Options{
		History:    history.NewStore(),
		RunStore:   runStore,
		BatchStore: batchStore,
		TrajStore:  trajStore,
		Metrics:    metrics,
		Logger:     logger,
		Defaults:   cfg.Simulation,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("listening on %s", cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("serve: %v", err)
	}
	logger.Println("server stopped")
}

package main

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/adapters/repositories"
	"delivery-sim-service/internal/api"
	"delivery-sim-service/internal/config"
	"delivery-sim-service/internal/platform/db"
	"delivery-sim-service/internal/platform/logger"
	"delivery-sim-service/internal/platform/metrics"
	"delivery-sim-service/internal/ports"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// main is the application composition root.
// It wires the Postgres repositories behind ports and starts the HTTP server.
func main() {
	log := logger.New("server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.Get("CONFIG_PATH", ""))
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(ctx, log, conn, cfg.SeedPath); err != nil {
		return err
	}

	deps := api.Dependencies{
		Drivers:          repositories.NewSQLDriverRepository(conn),
		Routes:           repositories.NewSQLRouteRepository(conn),
		Orders:           repositories.NewSQLOrderRepository(conn),
		Logger:           log,
		DefaultMaxHours:  cfg.DefaultMaxHours,
		DefaultStartTime: cfg.DefaultStartTime,
	}
	deps.Recorder, deps.Metrics, err = newRecorder(cfg.MetricsEnabled)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Bool("metrics", cfg.MetricsEnabled).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newRecorder(enabled bool) (ports.SimulationRecorder, http.Handler, error) {
	if !enabled {
		return metrics.NopRecorder{}, nil, nil
	}
	rec, err := metrics.NewPromRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, nil, err
	}
	return rec, promhttp.Handler(), nil
}

func initAndSeed(ctx context.Context, log zerolog.Logger, conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); err != nil {
		log.Warn().Str("path", seedPath).Msg("seed file not found, skipping seed")
		return nil
	}
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Str("path", seedPath).Msg("database seeded")

	return nil
}

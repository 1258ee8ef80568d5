package main

import (
	"context"
	"delivery-sim-service/internal/adapters/memory"
	"delivery-sim-service/internal/adapters/repositories"
	"delivery-sim-service/internal/api/dto"
	"delivery-sim-service/internal/config"
	"delivery-sim-service/internal/platform/db"
	"delivery-sim-service/internal/platform/logger"
	"delivery-sim-service/internal/ports"
	"delivery-sim-service/internal/services"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	cfgPath     string
	snapshot    string
	databaseURL string
	drivers     int
	start       string
	maxHours    int
	date        string
}

var opts options

var log = logger.New("simulate")

var rootCmd = &cobra.Command{
	Use:          "simulate",
	Short:        "Run one delivery simulation and print the result as JSON",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.cfgPath, "config", "c", "", "optional YAML configuration file")
	f.StringVar(&opts.snapshot, "snapshot", "", "seed JSON file to simulate instead of the database")
	f.StringVar(&opts.databaseURL, "database-url", "", "Postgres URL (defaults to DATABASE_URL)")
	f.IntVar(&opts.drivers, "drivers", 0, "number of available drivers (1-50)")
	f.StringVar(&opts.start, "start", "", "start time HH:MM (defaults to default_start_time)")
	f.IntVar(&opts.maxHours, "max-hours", 0, "max hours per driver (defaults to default_max_hours)")
	f.StringVar(&opts.date, "date", "", "simulation date YYYY-MM-DD (defaults to the earliest deadline's date)")
	_ = rootCmd.MarkFlagRequired("drivers")
}

type repos struct {
	drivers ports.DriverRepository
	routes  ports.RouteRepository
	orders  ports.OrderRepository
	close   func() error
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.cfgPath)
	if err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	req := services.RunSimulationRequest{
		AvailableDrivers: opts.drivers,
		StartTime:        cfg.DefaultStartTime,
		MaxHoursPerDay:   cfg.DefaultMaxHours,
	}
	if cmd.Flags().Changed("start") {
		req.StartTime = opts.start
	}
	if cmd.Flags().Changed("max-hours") {
		req.MaxHoursPerDay = opts.maxHours
	}
	if opts.date != "" {
		day, err := time.Parse(time.DateOnly, opts.date)
		if err != nil {
			return fmt.Errorf("simulate: --date must be in YYYY-MM-DD format: %w", err)
		}
		req.SimulationDate = day
	}

	r, err := openRepos(ctx, cfg)
	if err != nil {
		return err
	}
	defer r.close()

	res, err := services.RunSimulation(ctx, req, r.drivers, r.routes, r.orders)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto.FromSimulationResult(res))
}

// openRepos serves the snapshot file when one is given and Postgres otherwise.
func openRepos(ctx context.Context, cfg *config.Config) (*repos, error) {
	if opts.snapshot != "" {
		store, err := memory.NewSnapshotStoreFromFile(opts.snapshot)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("snapshot", opts.snapshot).Msg("using snapshot file")
		return &repos{
			drivers: store,
			routes:  store,
			orders:  store,
			close:   func() error { return nil },
		}, nil
	}

	if opts.databaseURL != "" {
		cfg.DatabaseURL = opts.databaseURL
	}
	if err := cfg.RequireDatabase(); err != nil {
		return nil, fmt.Errorf("simulate: %w (or pass --snapshot)", err)
	}
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return &repos{
		drivers: repositories.NewSQLDriverRepository(conn),
		routes:  repositories.NewSQLRouteRepository(conn),
		orders:  repositories.NewSQLOrderRepository(conn),
		close:   conn.Close,
	}, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/adapters/repositories"
	"delivery-sim-service/internal/config"
	"delivery-sim-service/internal/platform/db"
	"delivery-sim-service/internal/platform/logger"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	seedPath string
)

var log = logger.New("dbtool")

var rootCmd = &cobra.Command{
	Use:          "dbtool",
	Short:        "Manage the delivery simulation database",
	SilenceUsage: true,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, conn *sql.DB, _ *config.Config) error {
			if err := repositories.InitSchema(ctx, conn); err != nil {
				return err
			}
			log.Info().Msg("schema ready")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create tables and load drivers, routes and orders from a JSON seed file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, conn *sql.DB, cfg *config.Config) error {
			path := seedPath
			if path == "" {
				path = cfg.SeedPath
			}
			if err := repositories.InitSchema(ctx, conn); err != nil {
				return err
			}
			if err := repositories.SeedFromJSON(ctx, conn, path); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("seeding complete")
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "optional YAML configuration file")
	seedCmd.Flags().StringVar(&seedPath, "seed", "", "seed file (defaults to seed_path from config)")
	rootCmd.AddCommand(initCmd, seedCmd)
}

func withDB(ctx context.Context, fn func(context.Context, *sql.DB, *config.Config) error) error {
	cfg, err := config.Load(cfgPath)
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

	if err := fn(ctx, conn, cfg); err != nil {
		return fmt.Errorf("dbtool: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("dbtool failed")
		stop()
		os.Exit(1)
	}
}

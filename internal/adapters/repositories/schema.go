package repositories

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/adapters/seed"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for drivers, routes and orders.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		seq BIGSERIAL UNIQUE,
		driver_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		current_shift_hours DOUBLE PRECISION NOT NULL CHECK (current_shift_hours BETWEEN 0 AND 24),
		past_week_hours DOUBLE PRECISION NOT NULL CHECK (past_week_hours BETWEEN 0 AND 168)
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id TEXT PRIMARY KEY,
		distance_km DOUBLE PRECISION NOT NULL CHECK (distance_km > 0),
		traffic_level TEXT NOT NULL CHECK (traffic_level IN ('Low', 'Medium', 'High')),
		base_time_minutes INTEGER NOT NULL CHECK (base_time_minutes > 0)
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		value_rs DOUBLE PRECISION NOT NULL CHECK (value_rs BETWEEN 1 AND 100000),
		route_id TEXT NOT NULL,
		delivery_deadline TIMESTAMPTZ NOT NULL,
		delivered BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_pending_deadline
	ON orders(delivery_deadline) WHERE NOT delivered;
	`

	statements := []string{
		createDriversQuery,
		createRoutesQuery,
		createOrdersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database from a JSON seed file. Existing rows with the same ids are replaced.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	snap, err := seed.Load(jsonPath)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	return SeedSnapshot(ctx, db, snap)
}

// SeedSnapshot upserts every entity of snap in one transaction.
func SeedSnapshot(ctx context.Context, db *sql.DB, snap *seed.Snapshot) error {
	if db == nil {
		return errors.New("seed database: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed database: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	driverStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO drivers (driver_id, name, current_shift_hours, past_week_hours)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (driver_id) DO UPDATE
	SET name = EXCLUDED.name,
		current_shift_hours = EXCLUDED.current_shift_hours,
		past_week_hours = EXCLUDED.past_week_hours;
	`)
	if err != nil {
		return fmt.Errorf("seed database: prepare driver insert: %w", err)
	}
	defer driverStmt.Close()

	for _, d := range snap.Drivers {
		if _, err := driverStmt.ExecContext(ctx, d.DriverID, d.Name, d.CurrentShiftHours, d.PastWeekHours); err != nil {
			return fmt.Errorf("seed database: insert driver_id=%s: %w", d.DriverID, err)
		}
	}

	routeStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO routes (route_id, distance_km, traffic_level, base_time_minutes)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (route_id) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		traffic_level = EXCLUDED.traffic_level,
		base_time_minutes = EXCLUDED.base_time_minutes;
	`)
	if err != nil {
		return fmt.Errorf("seed database: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range snap.Routes {
		if _, err := routeStmt.ExecContext(ctx, r.RouteID, r.DistanceKm, string(r.Traffic), r.BaseTimeMinutes); err != nil {
			return fmt.Errorf("seed database: insert route_id=%s: %w", r.RouteID, err)
		}
	}

	orderStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO orders (order_id, value_rs, route_id, delivery_deadline, delivered)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (order_id) DO UPDATE
	SET value_rs = EXCLUDED.value_rs,
		route_id = EXCLUDED.route_id,
		delivery_deadline = EXCLUDED.delivery_deadline,
		delivered = EXCLUDED.delivered;
	`)
	if err != nil {
		return fmt.Errorf("seed database: prepare order insert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range snap.Orders {
		if _, err := orderStmt.ExecContext(ctx, o.OrderID, o.ValueRs, o.RouteID, o.DeliveryDeadline, o.Delivered); err != nil {
			return fmt.Errorf("seed database: insert order_id=%s: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed database: commit tx: %w", err)
	}

	return nil
}

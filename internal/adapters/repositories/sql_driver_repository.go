package repositories

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the DriverRepository port.
type SQLDriverRepository struct{ DB *sql.DB }

func NewSQLDriverRepository(db *sql.DB) *SQLDriverRepository {
	return &SQLDriverRepository{DB: db}
}

// Return drivers in insertion order, at most limit of them when limit > 0.
func (s *SQLDriverRepository) ListDrivers(ctx context.Context, limit int) (_ []domain.Driver, err error) {
	defer obs.Time(ctx, "drivers.ListDrivers")(&err)

	if s.DB == nil {
		return nil, errors.New("sql driver repository: DB is nil")
	}

	query := `
	SELECT
		driver_id,
		name,
		current_shift_hours,
		past_week_hours
	FROM drivers
	ORDER BY seq
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]domain.Driver, 0, 16)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.DriverID, &d.Name, &d.CurrentShiftHours, &d.PastWeekHours); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

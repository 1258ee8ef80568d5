package repositories

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the RouteRepository port.
type SQLRouteRepository struct{ DB *sql.DB }

func NewSQLRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db}
}

// Return all routes stored in the database.
func (s *SQLRouteRepository) ListRoutes(ctx context.Context) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "routes.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
	}

	query := `
	SELECT
		route_id,
		distance_km,
		traffic_level,
		base_time_minutes
	FROM routes
	ORDER BY route_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 16)
	for rows.Next() {
		var r domain.Route
		var traffic string
		if err := rows.Scan(&r.RouteID, &r.DistanceKm, &traffic, &r.BaseTimeMinutes); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}

		lvl, err := domain.ParseTrafficLevel(traffic)
		if err != nil {
			return nil, fmt.Errorf("list routes: route_id=%s: %w", r.RouteID, err)
		}
		r.Traffic = lvl
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

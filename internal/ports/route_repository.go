package ports

import (
	"context"
	"delivery-sim-service/internal/domain"
)

// Port: a boundary for retrieving Route entities from a data source.
type RouteRepository interface {
	// Return every route, unfiltered.
	ListRoutes(ctx context.Context) ([]domain.Route, error)
}

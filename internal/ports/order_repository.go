package ports

import (
	"context"
	"delivery-sim-service/internal/domain"
)

// Port: a boundary for retrieving Order entities from a data source.
type OrderRepository interface {
	// Return every order, delivered or not.
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// Return only orders that are not yet delivered.
	ListPendingOrders(ctx context.Context) ([]domain.Order, error)
}

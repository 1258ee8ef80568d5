package ports

import (
	"context"
	"delivery-sim-service/internal/domain"
)

// Port: a boundary for retrieving Driver entities from a data source.
type DriverRepository interface {
	// Return at most limit drivers in the store's stable collection order.
	// A limit <= 0 returns every driver.
	ListDrivers(ctx context.Context, limit int) ([]domain.Driver, error)
}

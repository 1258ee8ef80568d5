package memory

import (
	"context"
	"delivery-sim-service/internal/adapters/seed"
	"delivery-sim-service/internal/domain"
	"slices"
)

// SnapshotStore serves drivers, routes and orders from memory.
// It implements the driver, route and order repository ports and is
// read-only after construction; every call returns a fresh copy.
type SnapshotStore struct {
	drivers []domain.Driver
	routes  []domain.Route
	orders  []domain.Order
}

func NewSnapshotStore(drivers []domain.Driver, routes []domain.Route, orders []domain.Order) *SnapshotStore {
	return &SnapshotStore{
		drivers: slices.Clone(drivers),
		routes:  slices.Clone(routes),
		orders:  slices.Clone(orders),
	}
}

// NewSnapshotStoreFromFile loads a seed file into a store.
func NewSnapshotStoreFromFile(path string) (*SnapshotStore, error) {
	snap, err := seed.Load(path)
	if err != nil {
		return nil, err
	}
	return NewSnapshotStore(snap.Drivers, snap.Routes, snap.Orders), nil
}

// Return the first limit drivers in insertion order; limit <= 0 returns all.
func (s *SnapshotStore) ListDrivers(ctx context.Context, limit int) ([]domain.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := len(s.drivers)
	if limit > 0 && limit < n {
		n = limit
	}
	return slices.Clone(s.drivers[:n]), nil
}

func (s *SnapshotStore) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.routes), nil
}

func (s *SnapshotStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.orders), nil
}

func (s *SnapshotStore) ListPendingOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pending := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if !o.Delivered {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

package memory

import (
	"context"
	"delivery-sim-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *SnapshotStore {
	deadline := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return NewSnapshotStore(
		[]domain.Driver{
			{DriverID: "D1", Name: "Amit"},
			{DriverID: "D2", Name: "Priya"},
			{DriverID: "D3", Name: "Rahul"},
		},
		[]domain.Route{{RouteID: "R001", DistanceKm: 10, Traffic: domain.TrafficLow, BaseTimeMinutes: 20}},
		[]domain.Order{
			{OrderID: "O1", ValueRs: 100, RouteID: "R001", DeliveryDeadline: deadline},
			{OrderID: "O2", ValueRs: 200, RouteID: "R001", DeliveryDeadline: deadline, Delivered: true},
		},
	)
}

func TestSnapshotStoreListDriversLimit(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	got, err := s.ListDrivers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "D1", got[0].DriverID)
	assert.Equal(t, "D2", got[1].DriverID)

	all, err := s.ListDrivers(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	more, err := s.ListDrivers(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, more, 3)
}

func TestSnapshotStoreListPendingOrders(t *testing.T) {
	s := newTestStore()

	pending, err := s.ListPendingOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "O1", pending[0].OrderID)

	all, err := s.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSnapshotStoreReturnsCopies(t *testing.T) {
	s := newTestStore()

	routes, err := s.ListRoutes(context.Background())
	require.NoError(t, err)
	routes[0].DistanceKm = 999

	again, err := s.ListRoutes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.0, again[0].DistanceKm)
}

func TestSnapshotStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestStore().ListRoutes(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

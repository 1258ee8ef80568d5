package seed

import (
	"delivery-sim-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "drivers": [
    {"driver_id": "D1", "name": "Amit", "current_shift_hours": 6, "past_week_hours": 35},
    {"driver_id": "D2", "name": "Priya", "current_shift_hours": 9, "past_week_hours": 40}
  ],
  "routes": [
    {"route_id": "R001", "distance_km": 25, "traffic_level": "Medium", "base_time_minutes": 45}
  ],
  "orders": [
    {"order_id": "O001", "value_rs": 1500, "route_id": "R001", "delivery_deadline": "2024-01-15T12:00:00Z"},
    {"order_id": "O002", "value_rs": 300, "route_id": "R001", "delivery_deadline": "2024-01-15T10:00:00Z", "delivered": true}
  ]
}`

func TestDecode(t *testing.T) {
	snap, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	require.Len(t, snap.Drivers, 2)
	assert.Equal(t, "Priya", snap.Drivers[1].Name)
	assert.True(t, snap.Drivers[1].IsFatigued())

	require.Len(t, snap.Routes, 1)
	assert.Equal(t, domain.TrafficMedium, snap.Routes[0].Traffic)

	require.Len(t, snap.Orders, 2)
	assert.Equal(t, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), snap.Orders[0].DeliveryDeadline.UTC())
	assert.True(t, snap.Orders[1].Delivered)
}

func TestDecodeRejectsInvalidEntities(t *testing.T) {
	cases := map[string]string{
		"bad traffic":      `{"routes":[{"route_id":"R1","distance_km":1,"traffic_level":"Jam","base_time_minutes":5}]}`,
		"shift too long":   `{"drivers":[{"driver_id":"D1","name":"A","current_shift_hours":30}]}`,
		"order value zero": `{"orders":[{"order_id":"O1","value_rs":0,"route_id":"R1","delivery_deadline":"2024-01-15T12:00:00Z"}]}`,
		"duplicate driver": `{"drivers":[{"driver_id":"D1","name":"A"},{"driver_id":"D1","name":"B"}]}`,
		"unknown field":    `{"vehicles":[]}`,
		"not json":         `drivers: []`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, snap.Orders, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

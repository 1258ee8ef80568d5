package metrics

import (
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/ports"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder exports simulation runs as Prometheus metrics.
type PromRecorder struct {
	runs       *prometheus.CounterVec
	duration   prometheus.Histogram
	orders     *prometheus.CounterVec
	efficiency prometheus.Gauge
	profit     prometheus.Gauge
}

// NewPromRecorder registers simulation metrics on reg. A nil reg uses the
// default Prometheus registerer. Metrics registered by an earlier recorder are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Total number of simulation runs by outcome",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_duration_seconds",
		Help:    "Wall time of a simulation run including the snapshot fetch",
		Buckets: prometheus.DefBuckets,
	})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_orders_total",
		Help: "Orders evaluated by successful simulation runs",
	}, []string{"status"})
	efficiency := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_last_efficiency_score",
		Help: "Efficiency score of the most recent successful run",
	})
	profit := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_last_total_profit",
		Help: "Total profit of the most recent successful run",
	})

	var err error
	if runs, err = register(reg, runs); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if orders, err = register(reg, orders); err != nil {
		return nil, err
	}
	if efficiency, err = register(reg, efficiency); err != nil {
		return nil, err
	}
	if profit, err = register(reg, profit); err != nil {
		return nil, err
	}

	return &PromRecorder{
		runs:       runs,
		duration:   duration,
		orders:     orders,
		efficiency: efficiency,
		profit:     profit,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSimulation counts the run and, for successful runs, its order outcomes.
func (r *PromRecorder) RecordSimulation(outcome string, res *domain.SimulationResult, dur time.Duration) error {
	r.runs.WithLabelValues(outcome).Inc()
	r.duration.Observe(dur.Seconds())

	if outcome != ports.OutcomeSuccess || res == nil {
		return nil
	}

	r.orders.WithLabelValues("on_time").Add(float64(res.OnTimeDeliveries))
	r.orders.WithLabelValues("late").Add(float64(res.LateDeliveries))
	r.orders.WithLabelValues("unassigned").Add(float64(res.UnassignedOrders))
	r.efficiency.Set(res.EfficiencyScore)
	r.profit.Set(res.TotalProfit)

	return nil
}

// NopRecorder discards every run.
type NopRecorder struct{}

func (NopRecorder) RecordSimulation(string, *domain.SimulationResult, time.Duration) error { return nil }

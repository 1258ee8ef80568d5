package services

import (
	"delivery-sim-service/internal/domain"
	"math"
)

// AggregateKPIs rolls per-order results up into fleet totals.
// An empty result set yields zero values, including the efficiency score.
func AggregateKPIs(results []domain.OrderResult) domain.KPIs {
	var (
		kpis   domain.KPIs
		profit float64
		fuel   float64
		bonus  float64
	)

	for _, r := range results {
		profit += r.Profit
		fuel += r.FuelCost
		bonus += r.Bonus
		kpis.Penalties += r.Penalty

		if r.IsOnTime() {
			kpis.OnTimeDeliveries++
		} else {
			kpis.LateDeliveries++
		}
		if !r.IsAssigned() {
			kpis.UnassignedOrders++
		}
	}

	kpis.TotalOrders = len(results)
	kpis.TotalProfit = round2(profit)
	kpis.FuelCost = round2(fuel)
	kpis.Bonuses = round2(bonus)
	if kpis.TotalOrders > 0 {
		kpis.EfficiencyScore = round2(100 * float64(kpis.OnTimeDeliveries) / float64(kpis.TotalOrders))
	}

	return kpis
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

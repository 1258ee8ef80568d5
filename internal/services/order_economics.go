package services

import (
	"delivery-sim-service/internal/domain"
	"time"
)

const (
	latePenalty        = 50
	highValueBonusRate = 0.10
)

// OrderEconomics returns the penalty, bonus and profit of an order given its delivery outcome.
// Late orders pay a flat penalty; high value orders delivered on time earn a 10% bonus.
func OrderEconomics(order domain.Order, onTime bool, fuelCost float64) (penalty int, bonus float64, profit float64) {
	if !onTime {
		penalty = latePenalty
	}
	if onTime && order.IsHighValue() {
		bonus = order.ValueRs * highValueBonusRate
	}
	profit = order.ValueRs + bonus - float64(penalty) - fuelCost
	return penalty, bonus, profit
}

// EvaluateOrder computes timing and economics of one order.
//
// driver is nil for an unassigned order; such orders are still timed and
// priced, as if carried by a non-fatigued driver.
func EvaluateOrder(order domain.Order, route domain.Route, driver *domain.DriverAssignment, start time.Time) domain.OrderResult {
	driverID := domain.UnassignedDriverID
	fatigued := false
	if driver != nil {
		driverID = driver.DriverID
		fatigued = driver.IsFatigued
	}

	deliveredAt := DeliveryTime(start, route, fatigued)
	onTime := !deliveredAt.After(order.DeliveryDeadline)

	status := domain.DeliveryLate
	if onTime {
		status = domain.DeliveryOnTime
	}

	fuel := route.FuelCost()
	penalty, bonus, profit := OrderEconomics(order, onTime, fuel)

	return domain.OrderResult{
		OrderID:      order.OrderID,
		DriverID:     driverID,
		RouteID:      route.RouteID,
		OrderValue:   order.ValueRs,
		Status:       status,
		DeliveryTime: deliveredAt,
		Deadline:     order.DeliveryDeadline,
		FuelCost:     fuel,
		Penalty:      penalty,
		Bonus:        bonus,
		Profit:       profit,
	}
}

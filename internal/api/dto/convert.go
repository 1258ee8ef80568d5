package dto

import "delivery-sim-service/internal/domain"

// FromSimulationResult flattens a result into its wire shape.
func FromSimulationResult(res *domain.SimulationResult) SimulationResponse {
	out := SimulationResponse{
		TotalProfit:       res.TotalProfit,
		EfficiencyScore:   res.EfficiencyScore,
		OnTimeDeliveries:  res.OnTimeDeliveries,
		LateDeliveries:    res.LateDeliveries,
		FuelCost:          res.FuelCost,
		Penalties:         res.Penalties,
		Bonuses:           res.Bonuses,
		TotalOrders:       res.TotalOrders,
		UnassignedOrders:  res.UnassignedOrders,
		StartTime:         res.StartTime,
		DriverAssignments: make([]DriverAssignmentResponse, 0, len(res.DriverAssignments)),
		OrderResults:      make([]OrderResultResponse, 0, len(res.OrderResults)),
	}

	for _, a := range res.DriverAssignments {
		orders := a.OrderIDs
		if orders == nil {
			orders = []string{}
		}
		out.DriverAssignments = append(out.DriverAssignments, DriverAssignmentResponse{
			DriverID:       a.DriverID,
			DriverName:     a.DriverName,
			AssignedOrders: orders,
			TotalHours:     a.CumulativeHours,
			TotalDistance:  a.CumulativeDistanceKm,
			IsFatigued:     a.IsFatigued,
		})
	}

	for _, r := range res.OrderResults {
		out.OrderResults = append(out.OrderResults, OrderResultResponse{
			OrderID:        r.OrderID,
			DriverID:       r.DriverID,
			RouteID:        r.RouteID,
			OrderValue:     r.OrderValue,
			DeliveryStatus: string(r.Status),
			DeliveryTime:   r.DeliveryTime,
			Deadline:       r.Deadline,
			FuelCost:       r.FuelCost,
			Penalty:        r.Penalty,
			Bonus:          r.Bonus,
			Profit:         r.Profit,
		})
	}

	return out
}

func FromDriver(d domain.Driver) DriverResponse {
	return DriverResponse{
		DriverID:          d.DriverID,
		Name:              d.Name,
		CurrentShiftHours: d.CurrentShiftHours,
		PastWeekHours:     d.PastWeekHours,
		IsFatigued:        d.IsFatigued(),
	}
}

func FromRoute(r domain.Route) RouteResponse {
	return RouteResponse{
		RouteID:         r.RouteID,
		DistanceKm:      r.DistanceKm,
		TrafficLevel:    string(r.Traffic),
		BaseTimeMinutes: r.BaseTimeMinutes,
		FuelCost:        r.FuelCost(),
		AdjustedTime:    r.AdjustedTime(),
	}
}

func FromOrder(o domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:          o.OrderID,
		ValueRs:          o.ValueRs,
		RouteID:          o.RouteID,
		DeliveryDeadline: o.DeliveryDeadline,
		Delivered:        o.Delivered,
		IsHighValue:      o.IsHighValue(),
	}
}

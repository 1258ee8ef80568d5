package services

import (
	"delivery-sim-service/internal/domain"
	"math"
	"time"
)

// Fatigued drivers take 30% longer on any route.
const fatigueTimeFactor = 1.3

// DeliveryTime projects when an order on route is delivered when the driver leaves at start.
func DeliveryTime(start time.Time, route domain.Route, fatigued bool) time.Time {
	minutes := float64(route.AdjustedTime())
	if fatigued {
		minutes *= fatigueTimeFactor
	}
	return start.Add(time.Duration(math.Round(minutes * float64(time.Minute))))
}

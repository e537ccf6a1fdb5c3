package model

import "math"

// RoundMoney rounds a currency or weight amount to 2 decimal places.
// All monetary aggregation rounds at each step to avoid floating-point drift.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

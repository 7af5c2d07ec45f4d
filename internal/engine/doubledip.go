package engine

import (
	"math"

	"pointswise/internal/models"
)

// planDoubleDip builds the flights-only compound strategy: pay the portal
// price today, then erase part of the charge later by redeeming the points
// balance at the guaranteed floor rate. The floor is the program's promised
// redemption rate, not the per-request market valuation.
func planDoubleDip(p Params, portalPrice, portalOutOfPocket, directOutOfPocket, pointsBalance, valuationCents, portalMultiplier float64) models.DoubleDipPlan {
	pointsEarned := portalPrice * portalMultiplier
	eraseLater := math.Min(pointsBalance*p.DoubleDipFloorRate, portalOutOfPocket)

	return models.DoubleDipPlan{
		PayToday:        roundTo2Decimals(portalOutOfPocket),
		PointsEarned:    pointsEarned,
		PointsValue:     roundTo2Decimals(pointsEarned * valuationCents / 100),
		EraseLater:      roundTo2Decimals(eraseLater),
		SavingsVsDirect: roundTo2Decimals(directOutOfPocket - (portalOutOfPocket - eraseLater)),
	}
}

package engine

import (
	"math"

	"pointswise/internal/models"
)

// advisePortalCheaper detects weak redemptions: when the realized award cpp is
// under the floor and paying cash through the portal (net of the points it
// would earn back) costs less than what the award consumes in points and
// taxes. Advisory only.
func advisePortalCheaper(p Params, cashPrice, creditRemaining, portalMultiplier, valuationCents float64, eval *models.AwardEvaluation) *models.PortalCheaperAdvice {
	valuation := valuationCents / 100
	credit := math.Min(creditRemaining, cashPrice)

	portalNetCost := (cashPrice - credit) - cashPrice*portalMultiplier*valuation
	awardTotalValue := eval.OwnPointsTotal*valuation + eval.TaxesTotal

	advice := &models.PortalCheaperAdvice{
		AwardCPP:           eval.CPP,
		PortalNetCostUSD:   roundTo2Decimals(portalNetCost),
		AwardTotalValueUSD: roundTo2Decimals(awardTotalValue),
	}
	if eval.CPP < p.AwardCPPFloorCents && portalNetCost < awardTotalValue {
		advice.IsPortalCheaper = true
		advice.SavingsIfPortal = roundTo2Decimals(awardTotalValue - portalNetCost)
	}
	return advice
}

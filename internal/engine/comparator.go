package engine

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"pointswise/internal/models"
)

// roundTo2Decimals rounds a dollar amount to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// twoWay is the cost comparator's intermediate output: both cash paths fully
// costed plus the baseline winner, before any award re-decision or close-call
// post-processing.
type twoWay struct {
	portal        models.PathCosts
	direct        models.PathCosts
	creditApplied float64
	winner        models.Path
}

// compareTwoWay costs the portal and direct paths and picks the baseline
// winner under the requested objective. Prices arrive already normalized to
// home currency; credit arrives already clamped to the program maximum.
func compareTwoWay(p Params, objective models.Objective, bt models.BookingType, portalPrice, directPrice, credit, valuationCents float64) twoWay {
	earn := p.earnFor(bt)
	valuation := valuationCents / 100

	creditApplied := math.Min(credit, portalPrice)

	portal := models.PathCosts{
		OutOfPocket:  portalPrice - creditApplied,
		PointsEarned: portalPrice * earn.PortalMultiplier,
	}
	direct := models.PathCosts{
		OutOfPocket:  directPrice,
		PointsEarned: directPrice * earn.DirectMultiplier,
	}
	portal.EffectiveCost = portal.OutOfPocket - portal.PointsEarned*valuation
	direct.EffectiveCost = direct.OutOfPocket - direct.PointsEarned*valuation

	winner := models.PathPortal
	pm, dm := pathMetric(objective, portal), pathMetric(objective, direct)
	switch {
	case dm < pm:
		winner = models.PathDirect
	case dm == pm && direct.OutOfPocket < portal.OutOfPocket:
		// Metric tie broken by raw out of pocket.
		winner = models.PathDirect
	}

	return twoWay{portal: portal, direct: direct, creditApplied: creditApplied, winner: winner}
}

// pathMetric is the comparison figure for a path under the given objective.
func pathMetric(objective models.Objective, pc models.PathCosts) float64 {
	if objective == models.ObjectiveMaxValue {
		return pc.EffectiveCost
	}
	return pc.OutOfPocket
}

// flipConditions builds the "could flip if" strings for the two cash paths.
func flipConditions(tw twoWay, portalPrice, valuationCents float64, fx bool) []string {
	var flips []string

	// Breakeven valuation between the two paths: the cpp at which their
	// effective costs cross.
	earnGap := tw.portal.PointsEarned - tw.direct.PointsEarned
	if earnGap != 0 {
		breakeven := (tw.portal.OutOfPocket - tw.direct.OutOfPocket) / earnGap * 100
		if breakeven > 0 && breakeven < 100 && math.Abs(breakeven-valuationCents) > 0.01 {
			richer := models.PathPortal
			if earnGap < 0 {
				richer = models.PathDirect
			}
			comparator := "above"
			if valuationCents > breakeven {
				comparator = "below"
			}
			flips = append(flips, fmt.Sprintf(
				"if you value points %s %s¢ each, the %s path wins on effective cost",
				comparator, humanize.FtoaWithDigits(breakeven, 2), richer))
		}
	}

	if tw.creditApplied > 0 {
		flips = append(flips, fmt.Sprintf(
			"if your travel credit resets to $0, portal out of pocket becomes $%s",
			humanize.CommafWithDigits(portalPrice, 2)))
	}

	if fx {
		flips = append(flips, "if exchange rates move a few percent, the cash gap could close or widen")
	}

	return flips
}

package engine

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"pointswise/internal/models"
)

// legLabel names a leg in field-scoped validation messages.
func legLabel(d models.LegDirection) string {
	switch d {
	case models.DirectionOutbound:
		return "Outbound"
	case models.DirectionReturn:
		return "Return"
	default:
		return "Roundtrip"
	}
}

// validateAwardLegs checks the traveler-entered award data. Any failure here
// means the award comparison is skipped entirely; the two-way cash comparison
// still runs.
func validateAwardLegs(p Params, legs []models.AwardLeg) []models.FieldError {
	var errs []models.FieldError

	if len(legs) == 0 || len(legs) > 2 {
		errs = append(errs, models.FieldError{
			Field:   "award_legs",
			Message: "enter one or two award legs",
		})
		return errs
	}

	for _, leg := range legs {
		label := legLabel(leg.Direction)
		if leg.PartnerID == "" {
			errs = append(errs, models.FieldError{
				Field:   label,
				Message: "select a transfer partner",
			})
		} else if _, ok := PartnerByID(leg.PartnerID); !ok {
			errs = append(errs, models.FieldError{
				Field:   label,
				Message: fmt.Sprintf("unknown transfer partner %q", leg.PartnerID),
			})
		}
		if leg.PartnerPoints < p.MinPartnerPoints {
			errs = append(errs, models.FieldError{
				Field: label,
				Message: fmt.Sprintf("enter valid miles (at least %s)",
					humanize.Comma(int64(p.MinPartnerPoints))),
			})
		}
		if leg.Taxes != nil && *leg.Taxes < 0 {
			errs = append(errs, models.FieldError{
				Field:   label,
				Message: "taxes and fees cannot be negative",
			})
		}
	}
	return errs
}

// estimateLegTaxes is the fallback for a blank taxes field: a fixed share of
// the cash baseline, clamped to a plausible band, split across a 2-leg
// itinerary.
func estimateLegTaxes(p Params, baselineAmount float64, legCount int) float64 {
	est := baselineAmount * p.TaxEstimateRate
	est = math.Max(p.TaxEstimateMin, math.Min(p.TaxEstimateMax, est))
	if legCount == 2 {
		est /= 2
	}
	return est
}

// evaluateAward prices the award itinerary against the chosen cash baseline.
// Legs must already be validated. Own-points conversion always rounds up so
// the traveler is never undercounted; cpp is floored at zero with no partial
// credit for negative economics.
func evaluateAward(p Params, legs []models.AwardLeg, baseline models.Baseline, baselineAmount, valuationCents float64) *models.AwardEvaluation {
	eval := &models.AwardEvaluation{
		Baseline:       baseline,
		BaselineAmount: roundTo2Decimals(baselineAmount),
		Legs:           make([]models.AwardLegResult, 0, len(legs)),
	}

	for _, leg := range legs {
		partner, _ := PartnerByID(leg.PartnerID)
		ownPoints := PointsNeeded(leg.PartnerID, leg.PartnerPoints)

		taxes := 0.0
		estimated := false
		if leg.Taxes != nil {
			taxes = *leg.Taxes
		} else {
			taxes = estimateLegTaxes(p, baselineAmount, len(legs))
			estimated = true
			eval.TaxesEstimated = true
		}

		eval.Legs = append(eval.Legs, models.AwardLegResult{
			Direction:      leg.Direction,
			PartnerID:      leg.PartnerID,
			PartnerName:    partner.Name,
			PartnerPoints:  leg.PartnerPoints,
			OwnPoints:      ownPoints,
			Taxes:          roundTo2Decimals(taxes),
			TaxesEstimated: estimated,
		})
		eval.OwnPointsTotal += ownPoints
		eval.TaxesTotal += taxes
	}
	eval.TaxesTotal = roundTo2Decimals(eval.TaxesTotal)

	if eval.OwnPointsTotal > 0 {
		eval.CPP = math.Max(0, (baselineAmount-eval.TaxesTotal)/eval.OwnPointsTotal*100)
	}
	eval.EffectiveCost = roundTo2Decimals(eval.TaxesTotal + eval.OwnPointsTotal*valuationCents/100)

	// Per-leg value is apportioned from the aggregate by own-points share so
	// leg and itinerary cpp stay mutually consistent.
	totalValue := math.Max(0, baselineAmount-eval.TaxesTotal)
	for i := range eval.Legs {
		share := 0.0
		if eval.OwnPointsTotal > 0 {
			share = eval.Legs[i].OwnPoints / eval.OwnPointsTotal
		}
		eval.Legs[i].ValueUSD = roundTo2Decimals(totalValue * share)
		if eval.Legs[i].OwnPoints > 0 {
			eval.Legs[i].CPP = totalValue * share / eval.Legs[i].OwnPoints * 100
		}
	}

	return eval
}

// awardMetric is the award path's comparison figure under the objective:
// cash out of pocket is taxes only, effective cost charges the points at the
// traveler's assumed valuation.
func awardMetric(objective models.Objective, eval *models.AwardEvaluation) float64 {
	if objective == models.ObjectiveMaxValue {
		return eval.EffectiveCost
	}
	return eval.TaxesTotal
}

// baselineAmountFor resolves the baseline choice to a cash figure from the
// two-way comparison.
func baselineAmountFor(b models.Baseline, portalPrice float64, tw twoWay) float64 {
	switch b {
	case models.BaselinePortalNoCredit:
		return portalPrice
	case models.BaselineDirect:
		return tw.direct.OutOfPocket
	default:
		return tw.portal.OutOfPocket
	}
}

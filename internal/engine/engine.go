// Package engine is the booking decision core: pure, synchronous functions
// that compare the portal, direct, and award payment paths for a trip and
// produce a ranked recommendation with a confidence level. The engine holds
// no state, performs no I/O, and is recomputed in full on every input change;
// caching and presentation belong to the calling layer.
package engine

import (
	"math"
	"sort"

	"pointswise/internal/models"
)

// Input is one complete comparison request: the two captured quotes plus the
// traveler's program state. All monetary fields are non-negative; the calling
// layer validates before invoking the engine.
type Input struct {
	BookingType     models.BookingType
	Objective       models.Objective
	PortalQuote     models.PriceQuote
	DirectQuote     models.PriceQuote
	CreditRemaining float64
	PointsBalance   float64
	ValuationCents  float64
	AwardLegs       []models.AwardLeg
	AwardBaseline   models.Baseline
}

type rankedPath struct {
	path   models.Path
	metric float64
	oop    float64
}

// Evaluate runs the full comparison: currency normalization, the two-way cost
// comparison, the conditional award/double-dip/buy-miles/portal-cheaper
// evaluations, and the close-call classification last. It is deterministic
// and never errors; malformed award input degrades to the two-way comparison
// with field errors attached to the result.
func Evaluate(p Params, in Input) models.ComparisonResult {
	portalPrice, portalFX := normalizeMoney(in.PortalQuote.Price)
	directPrice, directFX := normalizeMoney(in.DirectQuote.Price)
	fx := portalFX || directFX

	credit := math.Max(0, math.Min(in.CreditRemaining, p.CreditMaximum))
	earn := p.earnFor(in.BookingType)

	tw := compareTwoWay(p, in.Objective, in.BookingType, portalPrice, directPrice, credit, in.ValuationCents)

	result := models.ComparisonResult{
		Portal:        roundCosts(tw.portal),
		Direct:        roundCosts(tw.direct),
		CreditApplied: roundTo2Decimals(tw.creditApplied),
		FXConverted:   fx,
		Confidence:    models.ConfidenceHigh,
	}

	// Award economics, only when the traveler supplied award findings.
	if len(in.AwardLegs) > 0 {
		if errs := validateAwardLegs(p, in.AwardLegs); len(errs) > 0 {
			result.AwardErrors = errs
		} else {
			baseline := in.AwardBaseline
			if baseline == "" {
				baseline = models.BaselinePortalWithCredit
			}
			baselineAmount := baselineAmountFor(baseline, portalPrice, tw)
			result.Award = evaluateAward(p, in.AwardLegs, baseline, baselineAmount, in.ValuationCents)
		}
	}

	ranked := rankPaths(in.Objective, tw, result.Award)
	winner := ranked[0]

	// Close-call classification runs last and may collapse the winner into a
	// tie, but never touches the computed numbers.
	cc := classifyCloseCall(p, ranked[0].metric, ranked[1].metric, fx)
	if cc.Tie {
		result.Recommendation = models.Recommendation{
			Path: models.PathTie,
			Tie: &models.TieDetail{
				Between:    [2]models.Path{ranked[0].path, ranked[1].path},
				GapUSD:     roundTo2Decimals(cc.GapUSD),
				GapPercent: cc.GapPercent,
			},
		}
		result.Confidence = downgradeConfidence(result.Confidence)
		result.ConfidenceReasons = append(result.ConfidenceReasons, cc.Reason)
	} else {
		result.Recommendation = models.Recommendation{Path: winner.path}
		if winner.path == models.PathAward && result.Award != nil {
			result.Recommendation.Award = &models.AwardDecision{
				OwnPoints: result.Award.OwnPointsTotal,
				Taxes:     result.Award.TaxesTotal,
				CPP:       result.Award.CPP,
			}
		}
	}

	// Double-dip is flights-only and tied to the cost comparator's baseline
	// recommendation; it annotates the portal path, it does not re-rank.
	if in.BookingType == models.BookingFlight && tw.winner == models.PathPortal {
		plan := planDoubleDip(p, portalPrice, tw.portal.OutOfPocket, tw.direct.OutOfPocket,
			in.PointsBalance, in.ValuationCents, earn.PortalMultiplier)
		result.DoubleDip = &plan
	}

	if result.Award != nil {
		for i, leg := range in.AwardLegs {
			if leg.EntrySource != models.EntryMiles {
				continue
			}
			partner, ok := PartnerByID(leg.PartnerID)
			if !ok {
				continue
			}
			result.BuyMiles = append(result.BuyMiles,
				compareBuyMiles(p, partner, leg.PartnerPoints, result.Award.Legs[i].OwnPoints, in.ValuationCents))
		}
		result.PortalCheaper = advisePortalCheaper(p, portalPrice, credit, earn.PortalMultiplier, in.ValuationCents, result.Award)
	}

	applyConfidence(&result, fx, tw, in.ValuationCents)
	result.FlipConditions = flipConditions(tw, portalPrice, in.ValuationCents, fx)

	return result
}

// rankPaths orders the active paths by the objective's metric, out of pocket
// as tiebreak. Always returns at least two entries (portal and direct).
func rankPaths(objective models.Objective, tw twoWay, award *models.AwardEvaluation) []rankedPath {
	ranked := []rankedPath{
		{path: models.PathPortal, metric: pathMetric(objective, tw.portal), oop: tw.portal.OutOfPocket},
		{path: models.PathDirect, metric: pathMetric(objective, tw.direct), oop: tw.direct.OutOfPocket},
	}
	if award != nil {
		ranked = append(ranked, rankedPath{
			path:   models.PathAward,
			metric: awardMetric(objective, award),
			oop:    award.TaxesTotal,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].metric != ranked[j].metric {
			return ranked[i].metric < ranked[j].metric
		}
		return ranked[i].oop < ranked[j].oop
	})
	return ranked
}

// applyConfidence appends the non-close-call downgrade reasons: currency
// conversion noise, estimated award taxes, and the ambiguous case where the
// cash winner also earns meaningfully fewer points than the loser.
func applyConfidence(result *models.ComparisonResult, fx bool, tw twoWay, valuationCents float64) {
	if fx {
		result.Confidence = downgradeConfidence(result.Confidence)
		result.ConfidenceReasons = append(result.ConfidenceReasons,
			"prices were converted from a foreign currency at fixed reference rates")
	}

	if result.Award != nil && result.Award.TaxesEstimated {
		result.Confidence = downgradeConfidence(result.Confidence)
		result.ConfidenceReasons = append(result.ConfidenceReasons,
			"award taxes and fees were estimated, not quoted")
	}

	winner, loser := tw.portal, tw.direct
	if tw.winner == models.PathDirect {
		winner, loser = tw.direct, tw.portal
	}
	earnShortfall := loser.PointsEarned - winner.PointsEarned
	cashGap := loser.OutOfPocket - winner.OutOfPocket
	if earnShortfall > 0 && earnShortfall*valuationCents/100 > cashGap {
		result.Confidence = downgradeConfidence(result.Confidence)
		result.ConfidenceReasons = append(result.ConfidenceReasons,
			"the cheaper path earns meaningfully fewer points, so the value trade-off is ambiguous")
	}
}

func downgradeConfidence(c models.Confidence) models.Confidence {
	switch c {
	case models.ConfidenceHigh:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func roundCosts(pc models.PathCosts) models.PathCosts {
	pc.OutOfPocket = roundTo2Decimals(pc.OutOfPocket)
	pc.EffectiveCost = roundTo2Decimals(pc.EffectiveCost)
	return pc
}

package engine

import "pointswise/internal/models"

// compareBuyMiles prices the two ways of reaching a partner-points target:
// buying the miles outright (at the partner's best known purchase bonus)
// versus transferring home points worth their assumed valuation. Advisory
// only; it never changes the primary recommendation.
func compareBuyMiles(p Params, partner models.TransferPartner, partnerPoints, ownPoints, valuationCents float64) models.BuyMilesComparison {
	baseBuyCost := partnerPoints * p.MilesPriceCents / 100
	bestBonusBuyCost := baseBuyCost
	if partner.BuyBonusPct > 0 {
		// A 100% bonus halves the effective per-mile price.
		bestBonusBuyCost = baseBuyCost / (1 + partner.BuyBonusPct)
	}
	transferValue := ownPoints * valuationCents / 100

	cmp := models.BuyMilesComparison{
		PartnerID:             partner.ID,
		PartnerName:           partner.Name,
		PartnerPoints:         partnerPoints,
		OwnPoints:             ownPoints,
		BaseBuyCostUSD:        roundTo2Decimals(baseBuyCost),
		BestBonusBuyCostUSD:   roundTo2Decimals(bestBonusBuyCost),
		TransferValueUSD:      roundTo2Decimals(transferValue),
		BuyIsCheaperWithBonus: bestBonusBuyCost < transferValue,
	}
	if !cmp.BuyIsCheaperWithBonus {
		cmp.TransferSavingsUSD = roundTo2Decimals(bestBonusBuyCost - transferValue)
	}
	return cmp
}

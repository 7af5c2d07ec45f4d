package engine

import (
	"math"

	"pointswise/internal/models"
)

// partnerCatalog is the static transfer-partner table, built once at process
// start. Ratio is partner points per home point. BuyBonusPct is the best
// purchase promotion each program is known to run.
var partnerCatalog = []models.TransferPartner{
	{ID: "aeroplan", Name: "Air Canada Aeroplan", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 1.0},
	{ID: "flying_blue", Name: "Air France-KLM Flying Blue", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0.5},
	{ID: "lifemiles", Name: "Avianca LifeMiles", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 1.5},
	{ID: "avios", Name: "British Airways Avios", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0.5},
	{ID: "asia_miles", Name: "Cathay Pacific Asia Miles", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0},
	{ID: "emirates", Name: "Emirates Skywards", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0},
	{ID: "etihad", Name: "Etihad Guest", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0.25},
	{ID: "finnair", Name: "Finnair Plus", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0},
	{ID: "qantas", Name: "Qantas Frequent Flyer", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0},
	{ID: "krisflyer", Name: "Singapore KrisFlyer", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0},
	{ID: "tap", Name: "TAP Miles&Go", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0.35},
	{ID: "turkish", Name: "Turkish Miles&Smiles", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0},
	{ID: "virgin_red", Name: "Virgin Red", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerAirline, BuyBonusPct: 0.3},
	{ID: "eva", Name: "EVA Air Infinity MileageLands", Ratio: 0.75, RatioLabel: "2:1.5", Kind: models.PartnerAirline, BuyBonusPct: 0},
	{ID: "jetblue", Name: "JetBlue TrueBlue", Ratio: 1.25, RatioLabel: "4:5", Kind: models.PartnerAirline, BuyBonusPct: 0.5},
	{ID: "accor", Name: "Accor Live Limitless", Ratio: 0.5, RatioLabel: "2:1", Kind: models.PartnerHotel, BuyBonusPct: 0},
	{ID: "choice", Name: "Choice Privileges", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerHotel, BuyBonusPct: 0},
	{ID: "wyndham", Name: "Wyndham Rewards", Ratio: 1.0, RatioLabel: "1:1", Kind: models.PartnerHotel, BuyBonusPct: 0.4},
}

var partnerIndex = buildPartnerIndex()

func buildPartnerIndex() map[string]models.TransferPartner {
	idx := make(map[string]models.TransferPartner, len(partnerCatalog))
	for _, p := range partnerCatalog {
		idx[p.ID] = p
	}
	return idx
}

// PartnerByID looks up a transfer partner. The second return is false for
// unknown ids.
func PartnerByID(id string) (models.TransferPartner, bool) {
	p, ok := partnerIndex[id]
	return p, ok
}

// Partners returns the full catalog in display order.
func Partners() []models.TransferPartner {
	out := make([]models.TransferPartner, len(partnerCatalog))
	copy(out, partnerCatalog)
	return out
}

// PartnerGroupings splits the catalog into its presentation groups. The
// grouping is derived on each call; the catalog itself is the only storage.
func PartnerGroupings() models.PartnerGroups {
	var g models.PartnerGroups
	for _, p := range partnerCatalog {
		switch {
		case p.Kind == models.PartnerHotel:
			g.Hotels = append(g.Hotels, p)
		case p.Ratio == 1.0:
			g.OneToOneAirlines = append(g.OneToOneAirlines, p)
		default:
			g.OtherAirlines = append(g.OtherAirlines, p)
		}
	}
	return g
}

// PointsNeeded converts a partner-points requirement into home points,
// rounding up so the traveler is never told to transfer too few. Unknown
// partners convert at 1:1.
func PointsNeeded(partnerID string, partnerPoints float64) float64 {
	ratio := 1.0
	if p, ok := partnerIndex[partnerID]; ok && p.Ratio > 0 {
		ratio = p.Ratio
	}
	return math.Ceil(partnerPoints / ratio)
}

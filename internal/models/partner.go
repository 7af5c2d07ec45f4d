package models

type PartnerKind string

const (
	PartnerAirline PartnerKind = "airline"
	PartnerHotel   PartnerKind = "hotel"
)

// TransferPartner is one loyalty program that home points can be moved to.
//
// Ratio is partner points received per home point: 1.0 is a 1:1 transfer,
// 0.75 means 1,000 home points become 750 partner points. BuyBonusPct is the
// best promotional bonus the partner is known to run on outright mile
// purchases (1.0 = 100% bonus), used by the buy-miles comparison.
type TransferPartner struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Ratio       float64     `json:"ratio"`
	RatioLabel  string      `json:"ratio_label"`
	Kind        PartnerKind `json:"kind"`
	BuyBonusPct float64     `json:"buy_bonus_pct"`
}

// PartnerGroups is the presentation grouping of the catalog. It is derived
// from the registry on demand, never stored separately.
type PartnerGroups struct {
	OneToOneAirlines []TransferPartner `json:"one_to_one_airlines"`
	OtherAirlines    []TransferPartner `json:"other_airlines"`
	Hotels           []TransferPartner `json:"hotels"`
}

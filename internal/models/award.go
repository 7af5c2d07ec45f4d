package models

type LegDirection string

const (
	DirectionOutbound  LegDirection = "outbound"
	DirectionReturn    LegDirection = "return"
	DirectionRoundtrip LegDirection = "roundtrip"
)

// EntrySource records how the traveler entered a leg: as partner airline miles
// (the usual award-search path) or directly as home points. The buy-miles
// callout only applies to miles-entered legs.
type EntrySource string

const (
	EntryMiles  EntrySource = "miles"
	EntryPoints EntrySource = "points"
)

// Baseline selects which cash figure an award redemption is valued against.
type Baseline string

const (
	BaselinePortalWithCredit Baseline = "portal_with_credit"
	BaselinePortalNoCredit   Baseline = "portal_no_credit"
	BaselineDirect           Baseline = "direct"
)

// AwardLeg is one directional segment of an award itinerary as transcribed by
// the traveler from an external award-search tool. Taxes is nil when the
// traveler left the field blank; the valuator substitutes an estimate.
type AwardLeg struct {
	Direction     LegDirection `json:"direction"`
	PartnerID     string       `json:"partner_id"`
	PartnerPoints float64      `json:"partner_points"`
	Taxes         *float64     `json:"taxes,omitempty"`
	EntrySource   EntrySource  `json:"entry_source"`
}

// AwardLegResult is one leg after valuation.
type AwardLegResult struct {
	Direction      LegDirection `json:"direction"`
	PartnerID      string       `json:"partner_id"`
	PartnerName    string       `json:"partner_name"`
	PartnerPoints  float64      `json:"partner_points"`
	OwnPoints      float64      `json:"own_points"`
	Taxes          float64      `json:"taxes"`
	TaxesEstimated bool         `json:"taxes_estimated"`
	ValueUSD       float64      `json:"value_usd"`
	CPP            float64      `json:"cpp"`
}

// AwardEvaluation is the aggregate award economics for the itinerary.
type AwardEvaluation struct {
	Legs           []AwardLegResult `json:"legs"`
	Baseline       Baseline         `json:"baseline"`
	BaselineAmount float64          `json:"baseline_amount"`
	OwnPointsTotal float64          `json:"own_points_total"`
	TaxesTotal     float64          `json:"taxes_total"`
	TaxesEstimated bool             `json:"taxes_estimated"`
	CPP            float64          `json:"cpp"`
	EffectiveCost  float64          `json:"effective_cost"`
}

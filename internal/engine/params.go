package engine

import "pointswise/internal/models"

// Params are the engine's tuning constants. The defaults below are the
// documented behavior; callers may override any of them through configuration
// before constructing the engine input.
type Params struct {
	// Close-call tolerance band. A winner inside the band is reported as a tie.
	CloseCallDollarGap  float64
	CloseCallPercentGap float64
	// Band multiplier applied when a foreign-currency conversion was involved.
	FXWideningFactor float64

	// Redemptions realizing less than this many cents per point trigger the
	// portal-cheaper advisory.
	AwardCPPFloorCents float64

	// Guaranteed points-to-cash floor used by the double-dip plan, in dollars
	// per point. Independent of the market valuation supplied per request.
	DoubleDipFloorRate float64

	// Program cap on the statement credit; balances above it are clamped.
	CreditMaximum float64

	// Tax estimation band for award legs with a blank taxes field.
	TaxEstimateRate float64
	TaxEstimateMin  float64
	TaxEstimateMax  float64

	// Minimum partner points for a valid award leg.
	MinPartnerPoints float64

	// Assumed retail price of outright mile purchases, cents per mile.
	MilesPriceCents float64

	Earn map[models.BookingType]models.EarnProfile
}

// DefaultParams returns the documented default tuning.
func DefaultParams() Params {
	return Params{
		CloseCallDollarGap:  25.0,
		CloseCallPercentGap: 2.0,
		FXWideningFactor:    1.5,
		AwardCPPFloorCents:  1.0,
		DoubleDipFloorRate:  0.01,
		CreditMaximum:       300.0,
		TaxEstimateRate:     0.10,
		TaxEstimateMin:      75.0,
		TaxEstimateMax:      150.0,
		MinPartnerPoints:    1000,
		MilesPriceCents:     3.5,
		Earn: map[models.BookingType]models.EarnProfile{
			models.BookingFlight:         {PortalMultiplier: 5, DirectMultiplier: 2},
			models.BookingHotel:          {PortalMultiplier: 10, DirectMultiplier: 2},
			models.BookingVacationRental: {PortalMultiplier: 10, DirectMultiplier: 2},
		},
	}
}

// earnFor resolves the earn profile for a booking type, falling back to the
// flight profile for unknown types so the engine stays total.
func (p Params) earnFor(bt models.BookingType) models.EarnProfile {
	if profile, ok := p.Earn[bt]; ok {
		return profile
	}
	return models.EarnProfile{PortalMultiplier: 5, DirectMultiplier: 2}
}

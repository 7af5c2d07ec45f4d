package dto

import (
	"time"

	"github.com/google/uuid"

	"pointswise/internal/engine"
	"pointswise/internal/models"
)

// QuoteRequest is a captured price in its original currency, with the
// itinerary it was captured for when the caller has it.
type QuoteRequest struct {
	Amount   float64                 `json:"amount"`
	Currency string                  `json:"currency"`
	Flight   *models.FlightItinerary `json:"flight,omitempty"`
	Stay     *models.StayItinerary   `json:"stay,omitempty"`
}

func (q QuoteRequest) toQuote() models.PriceQuote {
	return models.PriceQuote{
		ID:         uuid.New(),
		Price:      models.Money{Amount: q.Amount, Currency: models.Currency(q.Currency)},
		Flight:     q.Flight,
		Stay:       q.Stay,
		CapturedAt: time.Now().UTC(),
	}
}

type AwardLegRequest struct {
	Direction     string   `json:"direction"`
	PartnerID     string   `json:"partner_id"`
	PartnerPoints float64  `json:"partner_points"`
	Taxes         *float64 `json:"taxes,omitempty"`
	EntrySource   string   `json:"entry_source"`
}

// CompareRequest is one full comparison invocation: the two captured cash
// quotes, the traveler's program state, and optional award findings.
type CompareRequest struct {
	BookingType     string            `json:"booking_type"`
	Objective       string            `json:"objective"`
	PortalPrice     QuoteRequest      `json:"portal_price"`
	DirectPrice     QuoteRequest      `json:"direct_price"`
	CreditRemaining float64           `json:"credit_remaining"`
	PointsBalance   float64           `json:"points_balance"`
	ValuationCents  float64           `json:"valuation_cents"`
	AwardBaseline   string            `json:"award_baseline,omitempty"`
	AwardLegs       []AwardLegRequest `json:"award_legs,omitempty"`
}

var validBookingTypes = map[string]bool{
	string(models.BookingFlight):         true,
	string(models.BookingHotel):          true,
	string(models.BookingVacationRental): true,
}

var validObjectives = map[string]bool{
	string(models.ObjectiveCheapestCash): true,
	string(models.ObjectiveMaxValue):     true,
}

var validBaselines = map[string]bool{
	string(models.BaselinePortalWithCredit): true,
	string(models.BaselinePortalNoCredit):   true,
	string(models.BaselineDirect):           true,
}

var validDirections = map[string]bool{
	string(models.DirectionOutbound):  true,
	string(models.DirectionReturn):    true,
	string(models.DirectionRoundtrip): true,
}

// Validate enforces the engine's preconditions: non-negative amounts and known
// enum values. Award-leg content (partner, minimum miles) is validated inside
// the engine so invalid award data degrades to a two-way comparison instead
// of failing the request.
func (r CompareRequest) Validate() []models.FieldError {
	var errs []models.FieldError

	if !validBookingTypes[r.BookingType] {
		errs = append(errs, models.FieldError{Field: "booking_type",
			Message: "must be flight, hotel, or vacation_rental"})
	}
	if r.Objective != "" && !validObjectives[r.Objective] {
		errs = append(errs, models.FieldError{Field: "objective",
			Message: "must be cheapest_cash or max_value"})
	}
	if r.PortalPrice.Amount < 0 {
		errs = append(errs, models.FieldError{Field: "portal_price", Message: "cannot be negative"})
	}
	if r.DirectPrice.Amount < 0 {
		errs = append(errs, models.FieldError{Field: "direct_price", Message: "cannot be negative"})
	}
	if r.CreditRemaining < 0 {
		errs = append(errs, models.FieldError{Field: "credit_remaining", Message: "cannot be negative"})
	}
	if r.PointsBalance < 0 {
		errs = append(errs, models.FieldError{Field: "points_balance", Message: "cannot be negative"})
	}
	if r.ValuationCents < 0 {
		errs = append(errs, models.FieldError{Field: "valuation_cents", Message: "cannot be negative"})
	}
	if r.AwardBaseline != "" && !validBaselines[r.AwardBaseline] {
		errs = append(errs, models.FieldError{Field: "award_baseline",
			Message: "must be portal_with_credit, portal_no_credit, or direct"})
	}
	for _, leg := range r.AwardLegs {
		if leg.Direction != "" && !validDirections[leg.Direction] {
			errs = append(errs, models.FieldError{Field: "award_legs",
				Message: "leg direction must be outbound, return, or roundtrip"})
		}
	}
	return errs
}

// ToEngineInput maps the request onto the engine's input struct, filling the
// documented defaults for omitted optional fields.
func (r CompareRequest) ToEngineInput() engine.Input {
	objective := models.Objective(r.Objective)
	if objective == "" {
		objective = models.ObjectiveCheapestCash
	}

	legs := make([]models.AwardLeg, 0, len(r.AwardLegs))
	for _, leg := range r.AwardLegs {
		direction := models.LegDirection(leg.Direction)
		if direction == "" {
			direction = models.DirectionRoundtrip
		}
		source := models.EntrySource(leg.EntrySource)
		if source == "" {
			source = models.EntryMiles
		}
		legs = append(legs, models.AwardLeg{
			Direction:     direction,
			PartnerID:     leg.PartnerID,
			PartnerPoints: leg.PartnerPoints,
			Taxes:         leg.Taxes,
			EntrySource:   source,
		})
	}

	return engine.Input{
		BookingType:     models.BookingType(r.BookingType),
		Objective:       objective,
		PortalQuote:     r.PortalPrice.toQuote(),
		DirectQuote:     r.DirectPrice.toQuote(),
		CreditRemaining: r.CreditRemaining,
		PointsBalance:   r.PointsBalance,
		ValuationCents:  r.ValuationCents,
		AwardLegs:       legs,
		AwardBaseline:   models.Baseline(r.AwardBaseline),
	}
}

// CompareResponse wraps the engine result with the request correlation id.
type CompareResponse struct {
	RequestID string                  `json:"request_id"`
	Cached    bool                    `json:"cached"`
	Result    models.ComparisonResult `json:"result"`
}

// ValidationErrorResponse reports request-level field errors.
type ValidationErrorResponse struct {
	Errors []models.FieldError `json:"errors"`
}

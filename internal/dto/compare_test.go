package dto

import (
	"testing"

	"pointswise/internal/models"
)

func TestToEngineInputDefaults(t *testing.T) {
	req := CompareRequest{
		BookingType: "flight",
		PortalPrice: QuoteRequest{Amount: 800, Currency: "USD"},
		DirectPrice: QuoteRequest{Amount: 850, Currency: "EUR"},
		AwardLegs: []AwardLegRequest{
			{PartnerID: "aeroplan", PartnerPoints: 40000},
		},
	}

	in := req.ToEngineInput()

	if in.Objective != models.ObjectiveCheapestCash {
		t.Errorf("objective default = %s, want cheapest_cash", in.Objective)
	}
	if in.DirectQuote.Price.Currency != "EUR" {
		t.Errorf("currency = %s, want EUR preserved", in.DirectQuote.Price.Currency)
	}
	if in.PortalQuote.ID == in.DirectQuote.ID {
		t.Errorf("each quote should get its own id")
	}
	if in.PortalQuote.CapturedAt.IsZero() {
		t.Errorf("capture time should be stamped")
	}
	if in.AwardLegs[0].Direction != models.DirectionRoundtrip {
		t.Errorf("leg direction default = %s, want roundtrip", in.AwardLegs[0].Direction)
	}
	if in.AwardLegs[0].EntrySource != models.EntryMiles {
		t.Errorf("entry source default = %s, want miles", in.AwardLegs[0].EntrySource)
	}
}

func TestValidateAcceptsZeroValues(t *testing.T) {
	req := CompareRequest{BookingType: "hotel"}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("zero prices and credit are valid inputs, got %v", errs)
	}
}

func TestValidateCollectsAllFailures(t *testing.T) {
	req := CompareRequest{
		BookingType:     "cruise",
		Objective:       "fastest",
		PortalPrice:     QuoteRequest{Amount: -1},
		CreditRemaining: -5,
	}

	errs := req.Validate()
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"booking_type", "objective", "portal_price", "credit_remaining"} {
		if !fields[want] {
			t.Errorf("missing field error for %s", want)
		}
	}
}

package engine

import (
	"strings"
	"testing"

	"pointswise/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvaluateAwardSingleLeg(t *testing.T) {
	// 40,000 miles at 1:1 with $50 taxes against a $500 baseline is 1.125cpp.
	legs := []models.AwardLeg{
		{Direction: models.DirectionRoundtrip, PartnerID: "aeroplan", PartnerPoints: 40000, Taxes: floatPtr(50), EntrySource: models.EntryMiles},
	}

	eval := evaluateAward(DefaultParams(), legs, models.BaselinePortalWithCredit, 500, 1.7)

	if !approxEqual(eval.OwnPointsTotal, 40000) {
		t.Errorf("own points = %v, want 40000", eval.OwnPointsTotal)
	}
	if !approxEqual(eval.TaxesTotal, 50) {
		t.Errorf("taxes = %v, want 50", eval.TaxesTotal)
	}
	if !centsEqual(eval.CPP, 1.125) {
		t.Errorf("cpp = %v, want 1.125", eval.CPP)
	}
	if eval.TaxesEstimated {
		t.Errorf("explicit taxes must not set the estimated flag")
	}
}

func TestEvaluateAwardTwoLegsMixedRatios(t *testing.T) {
	// EVA transfers at 2:1.5, so 15,000 partner miles cost 20,000 own points;
	// Aeroplan is 1:1. $40+$60 taxes against $900: ((900-100)/50000)*100 = 1.6cpp.
	legs := []models.AwardLeg{
		{Direction: models.DirectionOutbound, PartnerID: "eva", PartnerPoints: 15000, Taxes: floatPtr(40), EntrySource: models.EntryMiles},
		{Direction: models.DirectionReturn, PartnerID: "aeroplan", PartnerPoints: 30000, Taxes: floatPtr(60), EntrySource: models.EntryMiles},
	}

	eval := evaluateAward(DefaultParams(), legs, models.BaselineDirect, 900, 1.7)

	if !approxEqual(eval.OwnPointsTotal, 50000) {
		t.Fatalf("total own points = %v, want 50000", eval.OwnPointsTotal)
	}
	if !approxEqual(eval.TaxesTotal, 100) {
		t.Fatalf("total taxes = %v, want 100", eval.TaxesTotal)
	}
	if !centsEqual(eval.CPP, 1.6) {
		t.Fatalf("aggregate cpp = %v, want 1.6", eval.CPP)
	}

	// Per-leg cpp is apportioned from the aggregate by own-points share, so
	// each leg reports the aggregate rate and the values sum to the whole.
	valueSum := 0.0
	for _, leg := range eval.Legs {
		if !centsEqual(leg.CPP, eval.CPP) {
			t.Errorf("%s leg cpp = %v, want aggregate %v", leg.Direction, leg.CPP, eval.CPP)
		}
		valueSum += leg.ValueUSD
	}
	if !centsEqual(valueSum, 800) {
		t.Errorf("leg values sum to %v, want 800", valueSum)
	}
	if !approxEqual(eval.Legs[0].OwnPoints, 20000) {
		t.Errorf("eva leg own points = %v, want 20000", eval.Legs[0].OwnPoints)
	}
}

func TestEvaluateAwardCPPFloorsAtZero(t *testing.T) {
	tests := []struct {
		name     string
		taxes    float64
		baseline float64
	}{
		{"taxes equal baseline", 500, 500},
		{"taxes exceed baseline", 700, 500},
		{"zero baseline", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs := []models.AwardLeg{
				{Direction: models.DirectionRoundtrip, PartnerID: "aeroplan", PartnerPoints: 30000, Taxes: floatPtr(tt.taxes), EntrySource: models.EntryMiles},
			}
			eval := evaluateAward(DefaultParams(), legs, models.BaselineDirect, tt.baseline, 1.7)
			if eval.CPP != 0 {
				t.Fatalf("cpp = %v, want 0 (never negative)", eval.CPP)
			}
		})
	}
}

func TestEvaluateAwardTaxEstimation(t *testing.T) {
	p := DefaultParams()

	t.Run("single leg clamps to band", func(t *testing.T) {
		legs := []models.AwardLeg{
			{Direction: models.DirectionRoundtrip, PartnerID: "aeroplan", PartnerPoints: 30000, EntrySource: models.EntryMiles},
		}

		// 10% of 500 is 50, below the $75 floor.
		eval := evaluateAward(p, legs, models.BaselinePortalWithCredit, 500, 1.7)
		if !approxEqual(eval.TaxesTotal, 75) {
			t.Errorf("taxes = %v, want floor 75", eval.TaxesTotal)
		}
		if !eval.TaxesEstimated || !eval.Legs[0].TaxesEstimated {
			t.Errorf("estimated flag must be set on itinerary and leg")
		}

		// 10% of 5000 is 500, above the $150 cap.
		eval = evaluateAward(p, legs, models.BaselinePortalWithCredit, 5000, 1.7)
		if !approxEqual(eval.TaxesTotal, 150) {
			t.Errorf("taxes = %v, want cap 150", eval.TaxesTotal)
		}
	})

	t.Run("two legs split the estimate", func(t *testing.T) {
		legs := []models.AwardLeg{
			{Direction: models.DirectionOutbound, PartnerID: "aeroplan", PartnerPoints: 30000, EntrySource: models.EntryMiles},
			{Direction: models.DirectionReturn, PartnerID: "aeroplan", PartnerPoints: 30000, EntrySource: models.EntryMiles},
		}
		eval := evaluateAward(p, legs, models.BaselinePortalWithCredit, 1000, 1.7)
		if !approxEqual(eval.Legs[0].Taxes, 50) || !approxEqual(eval.Legs[1].Taxes, 50) {
			t.Errorf("per-leg estimate = %v/%v, want 50 each", eval.Legs[0].Taxes, eval.Legs[1].Taxes)
		}
	})

	t.Run("explicit taxes on one leg only", func(t *testing.T) {
		legs := []models.AwardLeg{
			{Direction: models.DirectionOutbound, PartnerID: "aeroplan", PartnerPoints: 30000, Taxes: floatPtr(32.50), EntrySource: models.EntryMiles},
			{Direction: models.DirectionReturn, PartnerID: "aeroplan", PartnerPoints: 30000, EntrySource: models.EntryMiles},
		}
		eval := evaluateAward(p, legs, models.BaselinePortalWithCredit, 1000, 1.7)
		if !approxEqual(eval.Legs[0].Taxes, 32.50) {
			t.Errorf("explicit taxes overwritten: %v", eval.Legs[0].Taxes)
		}
		if eval.Legs[0].TaxesEstimated {
			t.Errorf("explicit leg flagged as estimated")
		}
		if !eval.Legs[1].TaxesEstimated || !eval.TaxesEstimated {
			t.Errorf("blank leg should be estimated and bubble up")
		}
	})
}

func TestValidateAwardLegs(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name        string
		legs        []models.AwardLeg
		wantField   string
		wantMessage string
	}{
		{
			name: "sub-minimum miles",
			legs: []models.AwardLeg{
				{Direction: models.DirectionOutbound, PartnerID: "aeroplan", PartnerPoints: 999},
			},
			wantField:   "Outbound",
			wantMessage: "enter valid miles (at least 1,000)",
		},
		{
			name: "missing partner",
			legs: []models.AwardLeg{
				{Direction: models.DirectionReturn, PartnerPoints: 25000},
			},
			wantField:   "Return",
			wantMessage: "select a transfer partner",
		},
		{
			name: "unknown partner",
			legs: []models.AwardLeg{
				{Direction: models.DirectionRoundtrip, PartnerID: "skymiles", PartnerPoints: 25000},
			},
			wantField:   "Roundtrip",
			wantMessage: `unknown transfer partner "skymiles"`,
		},
		{
			name: "negative taxes",
			legs: []models.AwardLeg{
				{Direction: models.DirectionOutbound, PartnerID: "aeroplan", PartnerPoints: 25000, Taxes: floatPtr(-5)},
			},
			wantField:   "Outbound",
			wantMessage: "taxes and fees cannot be negative",
		},
		{
			name:        "too many legs",
			legs:        make([]models.AwardLeg, 3),
			wantField:   "award_legs",
			wantMessage: "enter one or two award legs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateAwardLegs(p, tt.legs)
			if len(errs) == 0 {
				t.Fatalf("expected validation errors")
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if !strings.Contains(errs[0].Message, tt.wantMessage) {
				t.Errorf("message = %q, want it to contain %q", errs[0].Message, tt.wantMessage)
			}
		})
	}

	t.Run("valid legs pass", func(t *testing.T) {
		legs := []models.AwardLeg{
			{Direction: models.DirectionOutbound, PartnerID: "eva", PartnerPoints: 1000},
			{Direction: models.DirectionReturn, PartnerID: "aeroplan", PartnerPoints: 99000, Taxes: floatPtr(0)},
		}
		if errs := validateAwardLegs(p, legs); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})
}

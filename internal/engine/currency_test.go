package engine

import (
	"testing"

	"pointswise/internal/models"
)

func TestToHomeCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   models.Currency
		want   float64
	}{
		{"euro", 100, "EUR", 109},
		{"pound", 200, "GBP", 254},
		{"yen", 10000, "JPY", 67},
		{"usd passes through", 42.50, "USD", 42.50},
		{"unknown code passes through", 500, "XYZ", 500},
		{"empty code passes through", 500, "", 500},
		{"zero amount", 0, "EUR", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHomeCurrency(tt.amount, tt.code); !approxEqual(got, tt.want) {
				t.Errorf("ToHomeCurrency(%v, %q) = %v, want %v", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalizeMoneyReportsConversion(t *testing.T) {
	if _, converted := normalizeMoney(models.USD(100)); converted {
		t.Errorf("home currency must not count as converted")
	}
	if _, converted := normalizeMoney(models.Money{Amount: 100, Currency: "XYZ"}); converted {
		t.Errorf("unknown codes fall back to 1.0 without counting as converted")
	}
	amount, converted := normalizeMoney(models.Money{Amount: 100, Currency: "CAD"})
	if !converted {
		t.Errorf("known foreign code must count as converted")
	}
	if !approxEqual(amount, 74) {
		t.Errorf("CAD 100 = %v, want 74", amount)
	}
}

func TestEvaluateFXWidensBandAndDowngrades(t *testing.T) {
	// EUR 459 converts to $500.31 against $530 direct: a $29.69 gap, outside
	// the normal $25 band but inside the widened $37.50 one.
	in := Input{
		BookingType:    models.BookingFlight,
		Objective:      models.ObjectiveCheapestCash,
		PortalQuote:    models.PriceQuote{Price: models.Money{Amount: 459, Currency: "EUR"}},
		DirectQuote:    models.PriceQuote{Price: models.USD(530)},
		ValuationCents: 1.7,
	}

	result := Evaluate(DefaultParams(), in)

	if !result.FXConverted {
		t.Fatalf("expected the fx flag to be set")
	}
	if result.Recommendation.Path != models.PathTie {
		t.Fatalf("recommendation = %s, want tie under the widened band", result.Recommendation.Path)
	}
	if result.Confidence != models.ConfidenceLow {
		// Tie downgrade plus fx downgrade.
		t.Errorf("confidence = %s, want low", result.Confidence)
	}
}

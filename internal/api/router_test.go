package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pointswise/internal/api/handlers"
	"pointswise/internal/dto"
	"pointswise/internal/engine"
	"pointswise/internal/repository"
	"pointswise/internal/service"
	"pointswise/pkg/middleware"
)

func newTestApp(t *testing.T) (*fiber.App, *repository.MockCache) {
	t.Helper()

	cache := repository.NewMockCache()
	compareService := service.NewComparisonService(engine.DefaultParams(), cache, time.Minute, zap.NewNop())
	limiter := middleware.NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)

	app := SetupRouter(
		handlers.NewCompareHandler(compareService, zap.NewNop()),
		handlers.NewPartnerHandler(service.NewPartnerService(), zap.NewNop()),
		limiter,
		zap.NewNop(),
	)
	return app, cache
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(encoded))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCompareEndpoint(t *testing.T) {
	app, cache := newTestApp(t)

	body := dto.CompareRequest{
		BookingType:     "flight",
		Objective:       "cheapest_cash",
		PortalPrice:     dto.QuoteRequest{Amount: 800, Currency: "USD"},
		DirectPrice:     dto.QuoteRequest{Amount: 850, Currency: "USD"},
		CreditRemaining: 300,
		ValuationCents:  1.7,
	}

	resp := doRequest(t, app, http.MethodPost, "/api/v1/compare", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var decoded dto.CompareResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if decoded.Result.Recommendation.Path != "portal" {
		t.Errorf("recommendation = %s, want portal", decoded.Result.Recommendation.Path)
	}
	if decoded.Result.Portal.OutOfPocket != 500 {
		t.Errorf("portal out of pocket = %v, want 500", decoded.Result.Portal.OutOfPocket)
	}
	if decoded.RequestID == "" {
		t.Errorf("expected a request id")
	}
	if len(cache.Data) != 1 {
		t.Errorf("expected the result to be cached")
	}
}

func TestCompareEndpointRejectsBadInput(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 5000)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("field validation", func(t *testing.T) {
		body := dto.CompareRequest{
			BookingType: "cruise",
			PortalPrice: dto.QuoteRequest{Amount: 100, Currency: "USD"},
			DirectPrice: dto.QuoteRequest{Amount: 100, Currency: "USD"},
		}
		resp := doRequest(t, app, http.MethodPost, "/api/v1/compare", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}

		var decoded dto.ValidationErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(decoded.Errors) == 0 || decoded.Errors[0].Field != "booking_type" {
			t.Fatalf("errors = %v, want booking_type", decoded.Errors)
		}
	})
}

func TestPartnerEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/partners", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var catalog dto.PartnersResponse
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(catalog.Partners) == 0 {
		t.Fatalf("catalog should not be empty")
	}

	resp = doRequest(t, app, http.MethodGet, "/api/v1/partners/aeroplan", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}

	resp = doRequest(t, app, http.MethodGet, "/api/v1/partners/skymiles", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown partner status = %d, want 404", resp.StatusCode)
	}
}

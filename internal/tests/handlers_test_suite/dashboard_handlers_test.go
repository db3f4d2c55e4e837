package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/forecast-dashboard/internal/http"
	handler "github.com/rogerio-castellano/forecast-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

func TestDimensionsHandler(t *testing.T) {
	t.Cleanup(clearAllForecasts)
	r := api.NewRouter()

	seedRow(t, "S2", "B", "2024-01-01", 5, "m")
	seedRow(t, "S1", "A", "2024-01-01", 10, "m")
	seedRow(t, "S1", "B", "2024-01-02", 7, "m")

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.DimensionsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Stores) != 2 || resp.Stores[0] != "S1" || resp.Stores[1] != "S2" {
		t.Errorf("expected sorted stores [S1 S2], got %v", resp.Stores)
	}
	if len(resp.Skus) != 2 || resp.Skus[0] != "A" || resp.Skus[1] != "B" {
		t.Errorf("expected sorted skus [A B], got %v", resp.Skus)
	}
}

func TestDimensionsHandlerEmptyStore(t *testing.T) {
	t.Cleanup(clearAllForecasts)
	r := api.NewRouter()

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.DimensionsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Stores == nil || resp.Skus == nil {
		t.Errorf("expected empty arrays, not null: %s", w.Body.String())
	}
}

func TestProfileHandler(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/profile")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var profile models.Profile
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if profile.Name == "" || profile.Email == "" {
		t.Errorf("expected populated demo profile, got %+v", profile)
	}
}

func TestHealthHandler(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
}

func TestRateLimitRejectsBursts(t *testing.T) {
	t.Cleanup(clearAllForecasts)
	r := api.NewRouter()

	// Same client IP for every request so the bucket (burst 3) runs dry.
	addr := nextRemoteAddr()
	var last int
	for range 5 {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", last)
	}
}

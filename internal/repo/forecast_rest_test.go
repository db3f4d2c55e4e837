package repo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

func TestRestFetchRowsQueryShapeAndDecoding(t *testing.T) {
	var gotQuery map[string][]string
	var gotAPIKey, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/rest/v1/forecasts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"store_id":"S1","product_id":"A","forecast_date":"2024-01-01","forecast_qty":10,"model":"m1"},
			{"store_id":"S1","product_id":"A","forecast_date":"2024-01-02","forecast_qty":20,"model":"m2"}
		]`))
	}))
	defer srv.Close()

	r := NewRestForecastRepository(srv.URL, "secret-key")
	start := date(t, "2024-01-01")
	end := date(t, "2024-01-31")
	rows, err := r.FetchRows(RowFilter{StoreID: "S1", ProductID: "A", StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ForecastDate.Format(models.DateLayout) != "2024-01-01" || rows[0].ForecastQty != 10 {
		t.Errorf("row 0 decoded wrong: %+v", rows[0])
	}

	if gotAPIKey != "secret-key" || gotAuth != "Bearer secret-key" {
		t.Errorf("auth headers not set: apikey=%q auth=%q", gotAPIKey, gotAuth)
	}
	if got := gotQuery["store_id"]; len(got) != 1 || got[0] != "eq.S1" {
		t.Errorf("store_id param: %v", got)
	}
	if got := gotQuery["order"]; len(got) != 1 || got[0] != "forecast_date.asc" {
		t.Errorf("order param: %v", got)
	}
	if got := gotQuery["forecast_date"]; len(got) != 2 || got[0] != "gte.2024-01-01" || got[1] != "lte.2024-01-31" {
		t.Errorf("forecast_date params: %v", got)
	}
}

func TestRestFetchDistinctDedupesAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("select"); got != "store_id" {
			t.Errorf("select param: %q", got)
		}
		w.Write([]byte(`[{"store_id":"S2"},{"store_id":"S1"},{"store_id":null},{"store_id":"S2"}]`))
	}))
	defer srv.Close()

	r := NewRestForecastRepository(srv.URL, "k")
	values, err := r.FetchDistinct("store_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 || values[0] != "S1" || values[1] != "S2" {
		t.Errorf("expected [S1 S2], got %v", values)
	}
}

func TestRestUpstreamErrorMapsToDataSourceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewRestForecastRepository(srv.URL, "k")
	_, err := r.FetchAll()
	if !errors.Is(err, ErrDataSourceUnavailable) {
		t.Fatalf("expected ErrDataSourceUnavailable, got %v", err)
	}
}

func TestRestMalformedPayloadMapsToDataSourceUnavailable(t *testing.T) {
	cases := []string{
		`{"not":"an array"}`,
		`[{"store_id":"S1","forecast_date":"01/02/2024","forecast_qty":1,"model":"m"}]`,
	}
	for _, body := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		r := NewRestForecastRepository(srv.URL, "k")
		_, err := r.FetchAll()
		if !errors.Is(err, ErrDataSourceUnavailable) {
			t.Errorf("payload %q: expected ErrDataSourceUnavailable, got %v", body, err)
		}
		srv.Close()
	}
}

func TestRestUnreachableHostMapsToDataSourceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	r := NewRestForecastRepository(srv.URL, "k")
	_, err := r.FetchDistinct("product_id")
	if !errors.Is(err, ErrDataSourceUnavailable) {
		t.Fatalf("expected ErrDataSourceUnavailable, got %v", err)
	}
}

func TestRestFetchDistinctInvalidColumn(t *testing.T) {
	r := NewRestForecastRepository("http://unused", "k")
	_, err := r.FetchDistinct("forecast_qty")
	if !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
}

package handlers_test_suite

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/forecast-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
	"github.com/rogerio-castellano/forecast-dashboard/internal/repo"
)

var forecastRepo *repo.InMemoryForecastRepository

func init() {
	forecastRepo = repo.NewInMemoryForecastRepository()
	handler.SetForecastRepo(forecastRepo)
}

func clearAllForecasts() {
	forecastRepo.Clear()
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func seedRow(t *testing.T, store, product, day string, qty int, model string) {
	t.Helper()
	forecastRepo.Seed(models.ForecastRow{
		StoreID:      store,
		ProductID:    product,
		ForecastDate: date(t, day),
		ForecastQty:  qty,
		Model:        model,
	})
}

// Each request gets its own synthetic client IP so the per-IP rate limiter
// never throttles unrelated tests. Tests exercising the limiter itself pass
// a fixed RemoteAddr instead.
var ipCounter atomic.Int64

func nextRemoteAddr() string {
	n := ipCounter.Add(1)
	return fmt.Sprintf("10.%d.%d.%d:1234", n/65536%256, n/256%256, n%256)
}

// failingRepo simulates an unreachable backing store.
type failingRepo struct{}

func (failingRepo) FetchRows(repo.RowFilter) ([]models.ForecastRow, error) {
	return nil, fmt.Errorf("%w: connection refused", repo.ErrDataSourceUnavailable)
}

func (failingRepo) FetchAll() ([]models.ForecastRow, error) {
	return nil, fmt.Errorf("%w: connection refused", repo.ErrDataSourceUnavailable)
}

func (failingRepo) FetchDistinct(string) ([]string, error) {
	return nil, fmt.Errorf("%w: connection refused", repo.ErrDataSourceUnavailable)
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = nextRemoteAddr()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = nextRemoteAddr()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

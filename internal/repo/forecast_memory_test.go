package repo

import (
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func seededRepo(t *testing.T) *InMemoryForecastRepository {
	t.Helper()
	r := NewInMemoryForecastRepository()
	r.Seed(
		models.ForecastRow{StoreID: "S1", ProductID: "A", ForecastDate: date(t, "2024-01-03"), ForecastQty: 7, Model: "m1"},
		models.ForecastRow{StoreID: "S1", ProductID: "A", ForecastDate: date(t, "2024-01-01"), ForecastQty: 10, Model: "m1"},
		models.ForecastRow{StoreID: "S1", ProductID: "A", ForecastDate: date(t, "2024-01-02"), ForecastQty: 20, Model: "m2"},
		models.ForecastRow{StoreID: "S2", ProductID: "B", ForecastDate: date(t, "2024-01-01"), ForecastQty: 4, Model: "m1"},
	)
	return r
}

func TestFetchRowsOrderedAscending(t *testing.T) {
	r := seededRepo(t)

	rows, err := r.FetchRows(RowFilter{StoreID: "S1", ProductID: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].ForecastDate.Before(rows[i-1].ForecastDate) {
			t.Errorf("rows not ascending at %d: %v before %v", i, rows[i].ForecastDate, rows[i-1].ForecastDate)
		}
	}
}

func TestFetchRowsInclusiveDateRange(t *testing.T) {
	r := seededRepo(t)
	start := date(t, "2024-01-02")
	end := date(t, "2024-01-03")

	rows, err := r.FetchRows(RowFilter{StoreID: "S1", ProductID: "A", StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows in [2024-01-02, 2024-01-03], got %d", len(rows))
	}
	// Bounds are inclusive at both ends.
	if got := rows[0].ForecastDate.Format(models.DateLayout); got != "2024-01-02" {
		t.Errorf("expected first row 2024-01-02, got %s", got)
	}
	if got := rows[1].ForecastDate.Format(models.DateLayout); got != "2024-01-03" {
		t.Errorf("expected last row 2024-01-03, got %s", got)
	}
}

func TestFetchRowsLoneBoundIgnored(t *testing.T) {
	r := seededRepo(t)
	start := date(t, "2024-01-03")

	rows, err := r.FetchRows(RowFilter{StoreID: "S1", ProductID: "A", StartDate: &start})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected lone start bound to be ignored, got %d rows", len(rows))
	}
}

func TestFetchRowsNoMatch(t *testing.T) {
	r := seededRepo(t)
	rows, err := r.FetchRows(RowFilter{StoreID: "S9", ProductID: "Z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestFetchAllSpansStoresAndProducts(t *testing.T) {
	r := seededRepo(t)
	all, err := r.FetchAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 rows, got %d", len(all))
	}
}

func TestFetchDistinct(t *testing.T) {
	r := seededRepo(t)

	stores, err := r.FetchDistinct("store_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stores) != 2 || stores[0] != "S1" || stores[1] != "S2" {
		t.Errorf("expected sorted [S1 S2], got %v", stores)
	}

	skus, err := r.FetchDistinct("product_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skus) != 2 || skus[0] != "A" || skus[1] != "B" {
		t.Errorf("expected sorted [A B], got %v", skus)
	}
}

func TestFetchDistinctInvalidColumn(t *testing.T) {
	r := seededRepo(t)
	_, err := r.FetchDistinct("model")
	if !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
}

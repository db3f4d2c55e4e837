package repo

import (
	"sort"

	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// InMemoryForecastRepository is a slice-backed implementation of
// ForecastRepository, used by the handler test suite and the memory backend.
type InMemoryForecastRepository struct {
	rows []models.ForecastRow
}

func NewInMemoryForecastRepository() *InMemoryForecastRepository {
	return &InMemoryForecastRepository{rows: []models.ForecastRow{}}
}

// Seed appends rows to the store.
func (r *InMemoryForecastRepository) Seed(rows ...models.ForecastRow) {
	r.rows = append(r.rows, rows...)
}

func (r *InMemoryForecastRepository) Clear() {
	r.rows = []models.ForecastRow{}
}

func (r *InMemoryForecastRepository) FetchRows(f RowFilter) ([]models.ForecastRow, error) {
	var matched []models.ForecastRow
	for _, row := range r.rows {
		if row.StoreID != f.StoreID || row.ProductID != f.ProductID {
			continue
		}
		if f.Ranged() && (row.ForecastDate.Before(*f.StartDate) || row.ForecastDate.After(*f.EndDate)) {
			continue
		}
		matched = append(matched, row)
	}
	sortByDate(matched)
	return matched, nil
}

func (r *InMemoryForecastRepository) FetchAll() ([]models.ForecastRow, error) {
	all := make([]models.ForecastRow, len(r.rows))
	copy(all, r.rows)
	sortByDate(all)
	return all, nil
}

func (r *InMemoryForecastRepository) FetchDistinct(column string) ([]string, error) {
	if !validDistinctColumn(column) {
		return nil, ErrInvalidColumn
	}
	seen := make(map[string]bool)
	var values []string
	for _, row := range r.rows {
		v := row.StoreID
		if column == "product_id" {
			v = row.ProductID
		}
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// sortByDate orders rows ascending by date; equal dates keep insertion order.
func sortByDate(rows []models.ForecastRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ForecastDate.Before(rows[j].ForecastDate)
	})
}

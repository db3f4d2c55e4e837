package repo

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// RowFilter selects forecast rows for one store/product pair, optionally
// bounded to an inclusive [StartDate, EndDate] range. The range only applies
// when both bounds are set; a lone bound is ignored.
type RowFilter struct {
	StoreID   string
	ProductID string
	StartDate *time.Time
	EndDate   *time.Time
}

// Ranged reports whether both date bounds are present.
func (f RowFilter) Ranged() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// ForecastRepository defines the gateway to the forecast backing store.
// Implementations return rows ordered ascending by forecast date and never
// surface partial results: any I/O or decoding failure wraps
// ErrDataSourceUnavailable.
type ForecastRepository interface {
	// FetchRows returns the rows matching the filter, ascending by date.
	FetchRows(f RowFilter) ([]models.ForecastRow, error)
	// FetchAll returns every row in the store, ascending by date. Top and
	// critical SKU rankings run over this full set regardless of the
	// caller's current filter.
	FetchAll() ([]models.ForecastRow, error)
	// FetchDistinct returns the sorted distinct non-null values of the named
	// column. Only "store_id" and "product_id" are valid.
	FetchDistinct(column string) ([]string, error)
}

// ErrDataSourceUnavailable is returned when the backing store is unreachable,
// rejects the query, or returns a malformed payload.
var ErrDataSourceUnavailable = errors.New("data source unavailable")

// ErrInvalidColumn is returned by FetchDistinct for columns other than
// store_id and product_id.
var ErrInvalidColumn = errors.New("invalid distinct column")

func validDistinctColumn(column string) bool {
	return column == "store_id" || column == "product_id"
}

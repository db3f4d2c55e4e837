// Package export serializes forecast rows for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// CSVHeader is the fixed column order of exported files.
var CSVHeader = []string{"forecast_date", "store_id", "product_id", "forecast_qty", "model"}

// ToCSV renders rows as UTF-8 CSV bytes, dates as YYYY-MM-DD. It is total:
// an empty row set produces a header-only file. Whether an empty export is
// an error is the request handler's decision, not this package's.
func ToCSV(rows []models.ForecastRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("csv write error: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.ForecastDate.Format(models.DateLayout),
			r.StoreID,
			r.ProductID,
			strconv.Itoa(r.ForecastQty),
			r.Model,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv write error: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write error: %w", err)
	}
	return buf.Bytes(), nil
}

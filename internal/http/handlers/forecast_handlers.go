package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/forecast-dashboard/internal/aggregate"
	models "github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// GetForecastHandler godoc
// @Summary Forecast time series and aggregates for one store/product pair
// @Tags forecast
// @Accept x-www-form-urlencoded
// @Produce json
// @Param store_id formData string true "Store ID"
// @Param product_id formData string true "Product ID"
// @Param start_date formData string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date formData string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /forecast [post]
func GetForecastHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRowFilter(r, true)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := forecastRepo.FetchRows(filter)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	if len(rows) == 0 {
		writeJSONError(w, http.StatusNotFound, "no forecast found")
		return
	}

	// Non-empty is checked above, so the aggregate calls cannot see an
	// empty input here.
	latest, err := aggregate.LatestEntry(rows)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "no forecast found")
		return
	}
	stats, err := aggregate.ComputeStats(rows)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "no forecast found")
		return
	}

	// Top and critical rankings deliberately run over the whole table, not
	// the current filter.
	all, err := forecastRepo.FetchAll()
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	resp := ForecastResponse{
		Latest: LatestForecast{
			ForecastQty:  latest.ForecastQty,
			ForecastDate: latest.ForecastDate.Format(models.DateLayout),
			Model:        latest.Model,
		},
		History:      historyOf(rows),
		Stats:        stats,
		TopSkus:      aggregate.TopSkus(all, topSkuLimit),
		CriticalSkus: aggregate.CriticalSkus(all, criticalThreshold),
	}
	writeJSON(w, http.StatusOK, resp)
}

func historyOf(rows []models.ForecastRow) []HistoryEntry {
	history := make([]HistoryEntry, len(rows))
	for i, r := range rows {
		history[i] = HistoryEntry{
			Date:  r.ForecastDate.Format(models.DateLayout),
			Qty:   r.ForecastQty,
			Model: r.Model,
		}
	}
	return history
}

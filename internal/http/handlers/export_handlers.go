package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rogerio-castellano/forecast-dashboard/internal/export"
)

// ExportForecastHandler godoc
// @Summary Download all forecasts for one store/product pair as CSV
// @Tags forecast
// @Accept x-www-form-urlencoded
// @Produce text/csv
// @Param store_id formData string true "Store ID"
// @Param product_id formData string true "Product ID"
// @Success 200 {string} string "CSV attachment"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /export [post]
func ExportForecastHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRowFilter(r, false)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := forecastRepo.FetchRows(filter)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	if len(rows) == 0 && !allowEmptyExport {
		writeJSONError(w, http.StatusNotFound, "no data to export")
		return
	}

	data, err := export.ToCSV(rows)
	if err != nil {
		log.Printf("csv export failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(filter.StoreID, filter.ProductID)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("failed to write CSV response: %v", err)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/rogerio-castellano/forecast-dashboard/internal/repo"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeGatewayError maps a gateway failure to the client-facing taxonomy.
// The cause is logged; the response body stays generic so connection strings
// and credentials never leak.
func writeGatewayError(w http.ResponseWriter, err error) {
	if errors.Is(err, repo.ErrDataSourceUnavailable) {
		log.Printf("data source failure: %v", err)
	} else {
		log.Printf("unexpected gateway error: %v", err)
	}
	writeJSONError(w, http.StatusInternalServerError, "data source unavailable")
}

func exportFilename(storeID, productID string) string {
	return fmt.Sprintf("forecast_%s_%s.csv", storeID, productID)
}

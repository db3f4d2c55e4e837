package handlers

import (
	"net/http"

	models "github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// GetDimensionsHandler godoc
// @Summary Distinct stores and SKUs for the selection UI
// @Tags dashboard
// @Produce json
// @Success 200 {object} DimensionsResponse
// @Failure 500 {object} ErrorResponse
// @Router / [get]
func GetDimensionsHandler(w http.ResponseWriter, r *http.Request) {
	stores, err := forecastRepo.FetchDistinct("store_id")
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	skus, err := forecastRepo.FetchDistinct("product_id")
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if stores == nil {
		stores = []string{}
	}
	if skus == nil {
		skus = []string{}
	}
	writeJSON(w, http.StatusOK, DimensionsResponse{Stores: stores, Skus: skus})
}

// GetProfileHandler godoc
// @Summary Demo user profile
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Profile
// @Router /profile [get]
func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Profile{
		Name:   "John Doe",
		Email:  "john.doe@example.com",
		Role:   "Inventory Manager",
		Joined: "2023-01-15",
	})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags dashboard
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

package handlers

import models "github.com/rogerio-castellano/forecast-dashboard/internal/models"

// DimensionsResponse carries the distinct values that populate the store and
// product selectors.
type DimensionsResponse struct {
	Stores []string `json:"stores"`
	Skus   []string `json:"skus"`
}

type LatestForecast struct {
	ForecastQty  int    `json:"forecast_qty"`
	ForecastDate string `json:"forecast_date"`
	Model        string `json:"model"`
}

type HistoryEntry struct {
	Date  string `json:"date"`
	Qty   int    `json:"qty"`
	Model string `json:"model"`
}

type ForecastResponse struct {
	Latest       LatestForecast       `json:"latest"`
	History      []HistoryEntry       `json:"history"`
	Stats        models.Stats         `json:"stats"`
	TopSkus      []models.TopSku      `json:"top_skus"`
	CriticalSkus []models.CriticalSku `json:"critical_skus"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

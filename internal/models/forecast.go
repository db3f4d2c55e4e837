package models

import "time"

// DateLayout is the wire format for forecast dates (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// ForecastRow represents one forecast observation: the quantity a model
// predicted for a store/product pair on a given date. Rows are value objects;
// the same (store, product, date) key may appear more than once when several
// models report for it.
type ForecastRow struct {
	StoreID      string    `json:"store_id"`
	ProductID    string    `json:"product_id"`
	ForecastDate time.Time `json:"forecast_date"`
	ForecastQty  int       `json:"forecast_qty"`
	Model        string    `json:"model"`
}

// Stats holds descriptive statistics over a row set's quantities.
// Avg is rounded to two decimals, halves away from zero.
type Stats struct {
	Avg float64 `json:"avg"`
	Max int     `json:"max"`
	Min int     `json:"min"`
}

// TopSku is a product ranked by total forecast quantity across all stores
// and dates.
type TopSku struct {
	ProductID     string `json:"product_id"`
	TotalForecast int    `json:"total_forecast"`
}

// CriticalSku is a product whose minimum forecast quantity across all data
// fell below the critical threshold.
type CriticalSku struct {
	ProductID string `json:"product_id"`
	MinQty    int    `json:"min_qty"`
}

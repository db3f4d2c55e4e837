// Package aggregate derives dashboard views from fetched forecast rows.
// Every function is pure: no I/O, no mutation of inputs, deterministic output.
package aggregate

import (
	"errors"
	"math"
	"sort"

	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// ErrEmptyInput is returned when an operation has no defined result over zero
// rows. It must not escape to clients: callers check emptiness up front and
// answer not-found instead.
var ErrEmptyInput = errors.New("empty row set")

// DefaultTopLimit caps the top-SKU ranking when the caller passes no limit.
const DefaultTopLimit = 10

// DefaultCriticalThreshold flags products whose minimum forecast falls
// strictly below it.
const DefaultCriticalThreshold = 5

// ComputeStats returns avg/max/min over the rows' quantities. The average is
// rounded to two decimals, halves away from zero.
func ComputeStats(rows []models.ForecastRow) (models.Stats, error) {
	if len(rows) == 0 {
		return models.Stats{}, ErrEmptyInput
	}

	sum := 0
	max := rows[0].ForecastQty
	min := rows[0].ForecastQty
	for _, r := range rows {
		sum += r.ForecastQty
		if r.ForecastQty > max {
			max = r.ForecastQty
		}
		if r.ForecastQty < min {
			min = r.ForecastQty
		}
	}

	avg := math.Round(float64(sum)/float64(len(rows))*100) / 100
	return models.Stats{Avg: avg, Max: max, Min: min}, nil
}

// LatestEntry returns the row with the greatest forecast date. When several
// rows share the greatest date, the last one in input order wins, which for
// an ascending-ordered fetch is the last element.
func LatestEntry(rows []models.ForecastRow) (models.ForecastRow, error) {
	if len(rows) == 0 {
		return models.ForecastRow{}, ErrEmptyInput
	}

	latest := rows[0]
	for _, r := range rows[1:] {
		if !r.ForecastDate.Before(latest.ForecastDate) {
			latest = r
		}
	}
	return latest, nil
}

// TopSkus ranks products by total forecast quantity, descending, truncated to
// limit (limit <= 0 means no truncation). Ties in total are broken by
// ascending product ID so the ranking does not depend on fetch order. It runs
// over the full dataset, never the caller's current store/date filter.
func TopSkus(all []models.ForecastRow, limit int) []models.TopSku {
	totals := make(map[string]int)
	for _, r := range all {
		totals[r.ProductID] += r.ForecastQty
	}

	top := make([]models.TopSku, 0, len(totals))
	for pid, total := range totals {
		top = append(top, models.TopSku{ProductID: pid, TotalForecast: total})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].TotalForecast != top[j].TotalForecast {
			return top[i].TotalForecast > top[j].TotalForecast
		}
		return top[i].ProductID < top[j].ProductID
	})

	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

// CriticalSkus returns the products whose minimum forecast quantity over the
// full dataset is strictly below threshold, ordered by ascending product ID.
func CriticalSkus(all []models.ForecastRow, threshold int) []models.CriticalSku {
	mins := make(map[string]int)
	for _, r := range all {
		if m, ok := mins[r.ProductID]; !ok || r.ForecastQty < m {
			mins[r.ProductID] = r.ForecastQty
		}
	}

	critical := make([]models.CriticalSku, 0)
	for pid, m := range mins {
		if m < threshold {
			critical = append(critical, models.CriticalSku{ProductID: pid, MinQty: m})
		}
	}
	sort.Slice(critical, func(i, j int) bool {
		return critical[i].ProductID < critical[j].ProductID
	})
	return critical
}

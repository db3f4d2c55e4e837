package handlers

import (
	"github.com/rogerio-castellano/forecast-dashboard/internal/aggregate"
	repo "github.com/rogerio-castellano/forecast-dashboard/internal/repo"
)

var (
	forecastRepo repo.ForecastRepository

	topSkuLimit       = aggregate.DefaultTopLimit
	criticalThreshold = aggregate.DefaultCriticalThreshold
	allowEmptyExport  bool
)

func SetForecastRepo(r repo.ForecastRepository) {
	forecastRepo = r
}

// SetAggregationLimits overrides the top-SKU ranking size and the critical
// quantity threshold.
func SetAggregationLimits(topLimit, threshold int) {
	topSkuLimit = topLimit
	criticalThreshold = threshold
}

// SetAllowEmptyExport switches POST /export from rejecting an empty result
// with 404 to answering a header-only CSV.
func SetAllowEmptyExport(allow bool) {
	allowEmptyExport = allow
}

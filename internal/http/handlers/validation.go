package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/forecast-dashboard/internal/models"
	"github.com/rogerio-castellano/forecast-dashboard/internal/repo"
)

var errMissingIDs = errors.New("store_id and product_id are required")

// parseRowFilter validates the store/product parameters of a request body and,
// when withRange is set, the optional start_date/end_date pair. A lone date
// bound is ignored; a malformed date is a validation error.
func parseRowFilter(r *http.Request, withRange bool) (repo.RowFilter, error) {
	if err := r.ParseForm(); err != nil {
		return repo.RowFilter{}, fmt.Errorf("invalid request body")
	}

	f := repo.RowFilter{
		StoreID:   strings.TrimSpace(r.FormValue("store_id")),
		ProductID: strings.TrimSpace(r.FormValue("product_id")),
	}
	if f.StoreID == "" || f.ProductID == "" {
		return repo.RowFilter{}, errMissingIDs
	}

	if !withRange {
		return f, nil
	}

	start, err := parseDateParam(r.FormValue("start_date"))
	if err != nil {
		return repo.RowFilter{}, err
	}
	end, err := parseDateParam(r.FormValue("end_date"))
	if err != nil {
		return repo.RowFilter{}, err
	}
	if start != nil && end != nil {
		f.StartDate, f.EndDate = start, end
	}
	return f, nil
}

func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &d, nil
}

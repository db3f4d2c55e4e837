package repo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	models "github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// RestForecastRepository reads forecast rows from a PostgREST-style data API
// (one table, filters passed as op-prefixed query parameters).
type RestForecastRepository struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRestForecastRepository(baseURL, apiKey string) *RestForecastRepository {
	return &RestForecastRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// restRow is the wire shape of one forecast row; dates arrive as
// YYYY-MM-DD strings and are normalized here, at the gateway boundary.
type restRow struct {
	StoreID      string `json:"store_id"`
	ProductID    string `json:"product_id"`
	ForecastDate string `json:"forecast_date"`
	ForecastQty  int    `json:"forecast_qty"`
	Model        string `json:"model"`
}

func (r *RestForecastRepository) FetchRows(f RowFilter) ([]models.ForecastRow, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("store_id", "eq."+f.StoreID)
	params.Set("product_id", "eq."+f.ProductID)
	params.Set("order", "forecast_date.asc")
	if f.Ranged() {
		params.Add("forecast_date", "gte."+f.StartDate.Format(models.DateLayout))
		params.Add("forecast_date", "lte."+f.EndDate.Format(models.DateLayout))
	}
	return r.fetch(params)
}

func (r *RestForecastRepository) FetchAll() ([]models.ForecastRow, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "forecast_date.asc")
	return r.fetch(params)
}

func (r *RestForecastRepository) FetchDistinct(column string) ([]string, error) {
	if !validDistinctColumn(column) {
		return nil, ErrInvalidColumn
	}

	// The API has no DISTINCT; fetch the single column and dedupe here.
	params := url.Values{}
	params.Set("select", column)
	body, err := r.get(params)
	if err != nil {
		return nil, err
	}

	var records []map[string]*string
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrDataSourceUnavailable, err)
	}

	seen := make(map[string]bool)
	var values []string
	for _, rec := range records {
		v := rec[column]
		if v == nil || seen[*v] {
			continue
		}
		seen[*v] = true
		values = append(values, *v)
	}
	sort.Strings(values)
	return values, nil
}

func (r *RestForecastRepository) fetch(params url.Values) ([]models.ForecastRow, error) {
	body, err := r.get(params)
	if err != nil {
		return nil, err
	}

	var wire []restRow
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrDataSourceUnavailable, err)
	}

	out := make([]models.ForecastRow, 0, len(wire))
	for _, w := range wire {
		date, err := time.Parse(models.DateLayout, w.ForecastDate)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed forecast_date %q", ErrDataSourceUnavailable, w.ForecastDate)
		}
		out = append(out, models.ForecastRow{
			StoreID:      w.StoreID,
			ProductID:    w.ProductID,
			ForecastDate: date,
			ForecastQty:  w.ForecastQty,
			Model:        w.Model,
		})
	}
	return out, nil
}

func (r *RestForecastRepository) get(params url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, r.baseURL+"/rest/v1/forecasts?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream status %d", ErrDataSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	return body, nil
}

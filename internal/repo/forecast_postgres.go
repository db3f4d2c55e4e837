package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	models "github.com/rogerio-castellano/forecast-dashboard/internal/models"
)

// PostgresForecastRepository reads forecast rows from the forecasts table.
type PostgresForecastRepository struct {
	db *sql.DB
}

func NewPostgresForecastRepository(db *sql.DB) *PostgresForecastRepository {
	return &PostgresForecastRepository{db: db}
}

const forecastColumns = `store_id, product_id, forecast_date, forecast_qty, model`

func (r *PostgresForecastRepository) FetchRows(f RowFilter) ([]models.ForecastRow, error) {
	query := `SELECT ` + forecastColumns + ` FROM forecasts WHERE store_id = $1 AND product_id = $2`
	args := []any{f.StoreID, f.ProductID}
	if f.Ranged() {
		query += ` AND forecast_date >= $3 AND forecast_date <= $4`
		args = append(args, *f.StartDate, *f.EndDate)
	}
	query += ` ORDER BY forecast_date ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	defer rows.Close()

	return scanForecastRows(rows)
}

func (r *PostgresForecastRepository) FetchAll() ([]models.ForecastRow, error) {
	query := `SELECT ` + forecastColumns + ` FROM forecasts ORDER BY forecast_date ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	defer rows.Close()

	return scanForecastRows(rows)
}

func (r *PostgresForecastRepository) FetchDistinct(column string) ([]string, error) {
	if !validDistinctColumn(column) {
		return nil, ErrInvalidColumn
	}
	// column is validated against a fixed allowlist above, so interpolation
	// is safe here (identifiers cannot be bound as parameters).
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM forecasts WHERE %s IS NOT NULL ORDER BY %s ASC`, column, column, column)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	return values, nil
}

func scanForecastRows(rows *sql.Rows) ([]models.ForecastRow, error) {
	var out []models.ForecastRow
	for rows.Next() {
		var fr models.ForecastRow
		if err := rows.Scan(&fr.StoreID, &fr.ProductID, &fr.ForecastDate, &fr.ForecastQty, &fr.Model); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
		}
		out = append(out, fr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceUnavailable, err)
	}
	return out, nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxease/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements the rate store using pgxpool.
type PgxRateRepository struct {
	pool *pgxpool.Pool
}

// NewRateRepository creates a new repository for stored currency rates.
func NewRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{pool: pool}
}

// FindLatestRates retrieves the most recent record per requested code with
// a single DISTINCT ON query. Codes without any record are absent from the
// result.
func (r *PgxRateRepository) FindLatestRates(ctx context.Context, currencyCodes []string) ([]domain.RateRecord, error) {
	if len(currencyCodes) == 0 {
		return []domain.RateRecord{}, nil
	}

	query := `
		SELECT DISTINCT ON (currency_code) currency_code, timestamp, rate
		FROM currency_rates
		WHERE currency_code = ANY($1)
		ORDER BY currency_code, timestamp DESC;
	`
	rows, err := r.pool.Query(ctx, query, currencyCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest rates: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RateRecord, error) {
		var rec domain.RateRecord
		err := row.Scan(&rec.CurrencyCode, &rec.Timestamp, &rec.Rate)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan latest rates: %w", err)
	}

	return records, nil
}

// ExistsBatchAt reports whether any record carries the given timestamp.
func (r *PgxRateRepository) ExistsBatchAt(ctx context.Context, timestamp int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM currency_rates WHERE timestamp = $1);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, timestamp).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for batch at %d: %w", timestamp, err)
	}
	return exists, nil
}

// SaveRateBatch writes all records of one ingestion batch inside a single
// transaction. Readers observe either the pre-batch state or the whole
// committed batch, never a partial one.
func (r *PgxRateRepository) SaveRateBatch(ctx context.Context, records []domain.RateRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rate batch transaction: %w", err)
	}
	// Rollback is a no-op after a successful commit.
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO currency_rates (currency_code, timestamp, rate)
		VALUES ($1, $2, $3);
	`
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query, rec.CurrencyCode, rec.Timestamp, rec.Rate)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert rate record: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close rate batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rate batch: %w", err)
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxease/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRepository implements the currency catalog repository using pgxpool.
type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewCurrencyRepository creates a new repository for currency catalog data.
func NewCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{pool: pool}
}

// SaveCurrency inserts a new currency. The catalog is append-only, so an
// already-known code maps to apperrors.ErrDuplicate.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (currency_code, name, alias)
		VALUES ($1, $2, $3);
	`
	_, err := r.pool.Exec(ctx, query, currency.Code, currency.Name, currency.Alias)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save currency %s: %w", currency.Code, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, name, alias
		FROM currencies
		WHERE currency_code = $1;
	`
	var currency domain.Currency
	err := r.pool.QueryRow(ctx, query, currencyCode).Scan(
		&currency.Code,
		&currency.Name,
		&currency.Alias,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}
	return &currency, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, name, alias
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var currency domain.Currency
		err := row.Scan(&currency.Code, &currency.Name, &currency.Alias)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return currencies, nil
}

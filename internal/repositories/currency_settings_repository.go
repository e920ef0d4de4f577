package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type CurrencySettingsRepository interface {
	// Get returns the singleton settings row, or (nil, nil) when it has not
	// been seeded yet.
	Get(ctx context.Context) (*models.CurrencySettings, error)
	// Seed inserts the singleton row if missing. Safe to call on every boot.
	Seed(ctx context.Context, s *models.CurrencySettings) error
	UpdateRate(ctx context.Context, rate float64, updatedBy uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type currencySettingsRepo struct {
	db DB
}

func NewCurrencySettingsRepository(db DB) CurrencySettingsRepository {
	return &currencySettingsRepo{db: db}
}

func (r *currencySettingsRepo) Get(ctx context.Context) (*models.CurrencySettings, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, base_currency, exchange_rate_usd_to_ugx, last_updated, updated_by
        FROM currency_settings
        ORDER BY last_updated DESC
        LIMIT 1
    `)

	var s models.CurrencySettings
	err := row.Scan(&s.ID, &s.BaseCurrency, &s.ExchangeRateUSDToUGX, &s.LastUpdated, &s.UpdatedBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *currencySettingsRepo) Seed(ctx context.Context, s *models.CurrencySettings) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO currency_settings (id, base_currency, exchange_rate_usd_to_ugx, last_updated, updated_by)
        SELECT $1, $2, $3, NOW(), $4
        WHERE NOT EXISTS (SELECT 1 FROM currency_settings)
    `, s.ID, s.BaseCurrency, s.ExchangeRateUSDToUGX, s.UpdatedBy)
	return err
}

func (r *currencySettingsRepo) UpdateRate(ctx context.Context, rate float64, updatedBy uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE currency_settings SET
            exchange_rate_usd_to_ugx=$1, last_updated=NOW(), updated_by=$2
    `, rate, updatedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

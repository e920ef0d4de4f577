package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

// Fixed IDs so repeated boots against the same database stay idempotent.
var (
	seedSuperadminID       = uuid.MustParse("9f0a3a01-0000-4000-8000-000000000001")
	seedCurrencySettingsID = uuid.MustParse("9f0a3a01-0000-4000-8000-000000000002")
)

// SeedSuperadmin ensures at least one superadmin profile exists. Role changes
// are superadmin-only, so a fresh database would otherwise be unmanageable.
func SeedSuperadmin(ctx context.Context, profiles repositories.ProfileRepository, name, email string) error {
	existing, err := profiles.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check for existing superadmin: %w", err)
	}
	if existing != nil {
		utils.Logger.Infof("Superadmin already present (email=%s); skipping seed.", email)
		return nil
	}

	p := &models.Profile{
		ID:    seedSuperadminID,
		Name:  name,
		Email: email,
		Role:  models.RoleSuperAdmin,
	}
	if err := profiles.Create(ctx, p); err != nil {
		if repositories.IsUniqueViolation(err) {
			utils.Logger.Info("Superadmin inserted concurrently; skipping seed.")
			return nil
		}
		return fmt.Errorf("insert superadmin: %w", err)
	}

	utils.Logger.Infof("Seeded superadmin profile (id=%s, email=%s).", p.ID, email)
	return nil
}

// SeedCurrencySettings inserts the singleton exchange-rate row if missing.
func SeedCurrencySettings(ctx context.Context, settings repositories.CurrencySettingsRepository) error {
	if err := settings.Seed(ctx, &models.CurrencySettings{
		ID:                   seedCurrencySettingsID,
		BaseCurrency:         models.CurrencyUSD,
		ExchangeRateUSDToUGX: models.DefaultExchangeRateUSDToUGX,
	}); err != nil {
		return fmt.Errorf("seed currency settings: %w", err)
	}
	return nil
}

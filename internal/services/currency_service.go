package services

import (
	"context"
	"net/http"
	"time"

	"github.com/aryam-rgb/mall-rent-nexus/internal/access"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/money"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type CurrencyService interface {
	// GetSettings returns the live settings row, falling back to the default
	// rate when the row is missing or unreadable.
	GetSettings(ctx context.Context) (*models.CurrencySettings, error)
	// Convert re-reads the rate on every call so a superadmin update takes
	// effect immediately for all roles.
	Convert(ctx context.Context, amount float64, from, to models.CurrencyType) (*ConversionResult, error)
	UpdateRate(ctx context.Context, actor *models.Profile, rate float64) (*models.CurrencySettings, error)
}

// ConversionResult pairs the converted value with the rate used so callers
// can show both.
type ConversionResult struct {
	Amount    float64             `json:"amount"`
	Formatted string              `json:"formatted"`
	Currency  models.CurrencyType `json:"currency"`
	RateUsed  float64             `json:"rate_used"`
}

type currencyService struct {
	repo repositories.CurrencySettingsRepository
}

func NewCurrencyService(repo repositories.CurrencySettingsRepository) CurrencyService {
	return &currencyService{repo: repo}
}

func (s *currencyService) GetSettings(ctx context.Context) (*models.CurrencySettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		utils.Logger.WithError(err).Warn("currency settings unreadable, using default rate")
	}
	if settings == nil {
		return &models.CurrencySettings{
			BaseCurrency:         models.CurrencyUSD,
			ExchangeRateUSDToUGX: models.DefaultExchangeRateUSDToUGX,
			LastUpdated:          time.Now(),
		}, nil
	}
	return settings, nil
}

func (s *currencyService) Convert(ctx context.Context, amount float64, from, to models.CurrencyType) (*ConversionResult, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	converted, err := money.Convert(amount, from, to, settings.ExchangeRateUSDToUGX)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInvalidRate,
			"Stored exchange rate is not usable", err)
	}
	return &ConversionResult{
		Amount:    converted,
		Formatted: money.Format(converted, to),
		Currency:  to,
		RateUsed:  settings.ExchangeRateUSDToUGX,
	}, nil
}

func (s *currencyService) UpdateRate(ctx context.Context, actor *models.Profile, rate float64) (*models.CurrencySettings, error) {
	if !access.CanUpdateRate(actor.Role) {
		return nil, utils.Forbidden("Only a superadmin may change the exchange rate")
	}
	if rate <= 0 {
		return nil, utils.NewAppError(http.StatusUnprocessableEntity, utils.ErrCodeInvalidRate,
			"Exchange rate must be positive", utils.ErrInvalidRate)
	}

	if err := s.repo.UpdateRate(ctx, rate, actor.ID); err != nil {
		return nil, err
	}
	utils.Logger.WithField("rate", rate).WithField("updated_by", actor.ID).Info("exchange rate updated")
	return s.repo.Get(ctx)
}

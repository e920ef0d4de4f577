package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultExchangeRateUSDToUGX is used when the settings row cannot be read.
const DefaultExchangeRateUSDToUGX = 3700

// CurrencySettings is a process-wide singleton row. The exchange rate is the
// only shared mutable resource; writes are serialized by the single-row
// update at the storage layer.
type CurrencySettings struct {
	ID                   uuid.UUID    `json:"id"`
	BaseCurrency         CurrencyType `json:"base_currency"`
	ExchangeRateUSDToUGX float64      `json:"exchange_rate_usd_to_ugx"`
	LastUpdated          time.Time    `json:"last_updated"`
	UpdatedBy            *uuid.UUID   `json:"updated_by,omitempty"`
}

package models

import "fmt"

// CurrencyType is the set of currencies amounts can be recorded in.
// USD is the base currency; UGX is the secondary display currency.
type CurrencyType string

const (
	CurrencyUSD CurrencyType = "USD"
	CurrencyUGX CurrencyType = "UGX"
)

func ParseCurrency(s string) (CurrencyType, error) {
	switch CurrencyType(s) {
	case CurrencyUSD, CurrencyUGX:
		return CurrencyType(s), nil
	default:
		return "", fmt.Errorf("invalid currency: %q", s)
	}
}

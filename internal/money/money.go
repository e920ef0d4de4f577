package money

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

// ErrNonPositiveRate marks a zero or negative exchange rate as a
// configuration error instead of letting a division produce Inf.
var ErrNonPositiveRate = errors.New("exchange rate must be positive")

// Convert moves an amount between USD and UGX at the given rate
// (1 USD = rate UGX). Identity when both currencies match.
func Convert(amount float64, from, to models.CurrencyType, rate float64) (float64, error) {
	if from == to {
		return amount, nil
	}
	if rate <= 0 {
		return 0, ErrNonPositiveRate
	}

	switch {
	case from == models.CurrencyUSD && to == models.CurrencyUGX:
		return amount * rate, nil
	case from == models.CurrencyUGX && to == models.CurrencyUSD:
		return amount / rate, nil
	}
	return amount, nil
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount for display in en-US style. UGX carries no minor
// unit in practice and formats with zero decimal places (rounded before
// formatting); USD always shows exactly two.
func Format(amount float64, currency models.CurrencyType) string {
	if currency == models.CurrencyUGX {
		return "UGX " + printer.Sprintf("%v",
			number.Decimal(amount, number.MaxFractionDigits(0)))
	}
	return "$" + printer.Sprintf("%v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

package money

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

func TestConvertIdentity(t *testing.T) {
	for _, cur := range []models.CurrencyType{models.CurrencyUSD, models.CurrencyUGX} {
		got, err := Convert(123.45, cur, cur, 3700)
		require.NoError(t, err)
		assert.Equal(t, 123.45, got)
	}

	// Identity conversions must not care about a broken rate.
	got, err := Convert(50, models.CurrencyUSD, models.CurrencyUSD, 0)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)
}

func TestConvertUSDToUGXAndBack(t *testing.T) {
	ugx, err := Convert(1, models.CurrencyUSD, models.CurrencyUGX, 3800)
	require.NoError(t, err)
	assert.Equal(t, 3800.0, ugx)

	back, err := Convert(ugx, models.CurrencyUGX, models.CurrencyUSD, 3800)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, back, 1e-9)
}

func TestConvertRoundTripTolerance(t *testing.T) {
	const rate = 3725.5
	for _, amount := range []float64{0.01, 1, 999.99, 1234567.89} {
		ugx, err := Convert(amount, models.CurrencyUSD, models.CurrencyUGX, rate)
		require.NoError(t, err)
		usd, err := Convert(ugx, models.CurrencyUGX, models.CurrencyUSD, rate)
		require.NoError(t, err)
		assert.InDelta(t, amount, usd, 1e-6)
	}
}

func TestConvertRejectsNonPositiveRate(t *testing.T) {
	_, err := Convert(10, models.CurrencyUSD, models.CurrencyUGX, 0)
	assert.ErrorIs(t, err, ErrNonPositiveRate)

	_, err = Convert(10, models.CurrencyUGX, models.CurrencyUSD, -5)
	assert.ErrorIs(t, err, ErrNonPositiveRate)
}

func TestFormatUGXHasNoDecimals(t *testing.T) {
	got := Format(1234.5, models.CurrencyUGX)
	assert.True(t, strings.HasPrefix(got, "UGX "), got)
	assert.NotContains(t, got, ".")

	// Rounds, does not truncate.
	got = Format(1234.56, models.CurrencyUGX)
	assert.Contains(t, got, "1,235")
}

func TestFormatUSDHasTwoDecimals(t *testing.T) {
	got := Format(1234.5, models.CurrencyUSD)
	assert.Equal(t, "$1,234.50", got)

	got = Format(7, models.CurrencyUSD)
	assert.Equal(t, "$7.00", got)
}

func TestFormatGroupsThousands(t *testing.T) {
	assert.Equal(t, "UGX 3,700,000", Format(3700000, models.CurrencyUGX))
}

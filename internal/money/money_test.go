package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/cardledger/internal/apperrors"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain integer", raw: "2450", want: "2450"},
		{name: "fraction", raw: "99.50", want: "99.5"},
		{name: "grouped with symbol", raw: "₹ 1,00,000", want: "100000"},
		{name: "rs prefix", raw: "Rs.500", want: "500"},
		{name: "surrounding spaces", raw: "  12  ", want: "12"},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-10", wantErr: true},
		{name: "nan", raw: "NaN", wantErr: true},
		{name: "infinity", raw: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseWholeAmount(t *testing.T) {
	n, err := ParseWholeAmount("50000")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), n)

	_, err = ParseWholeAmount("1500.5")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	// 2^64 + 1000 must not wrap around to 1000.
	_, err = ParseWholeAmount("18446744073709552616")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	n, err = ParseWholeAmount("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), n)
}

func TestFromFloat(t *testing.T) {
	d, err := FromFloat(1200)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(1200)))

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat(f)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, "value %v", f)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹680", FormatCurrency(decimal.NewFromInt(680)))
	assert.Equal(t, "₹0", FormatCurrency(decimal.Zero))
	assert.Equal(t, "₹3", FormatCurrency(decimal.RequireFromString("2.5")))
	assert.Equal(t, "-₹500", FormatCurrency(decimal.NewFromInt(-500)))
	assert.Equal(t, "₹18446744073709552616", FormatCurrency(decimal.RequireFromString("18446744073709552616")))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []int64{1, 999, 1000, 12450, 87550, 100000, 225000, 10000000} {
		formatted := FormatCurrency(decimal.NewFromInt(n))
		parsed, err := ParseAmount(formatted)
		require.NoError(t, err, formatted)
		assert.Equal(t, n, parsed.IntPart(), formatted)
	}
}

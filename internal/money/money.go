// Package money parses and formats the rupee amounts entered on the dashboard.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/cardledger/internal/apperrors"
)

const currencySymbol = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// ParseAmount parses user input such as "2,450", "₹ 1200" or "99.50".
// It fails with apperrors.ErrInvalidAmount if the input is blank,
// non-numeric, non-finite or not strictly positive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := normalize(raw)
	if s == "" {
		return decimal.Zero, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", raw)
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "nan") || strings.Contains(lower, "inf") {
		return decimal.Zero, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", raw)
	}
	if !d.IsPositive() {
		return decimal.Zero, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", raw)
	}
	return d, nil
}

// ParseWholeAmount is ParseAmount restricted to whole rupees.
func ParseWholeAmount(raw string) (int64, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", raw)
	}
	return d.IntPart(), nil
}

// FromFloat converts a float amount coming from a host UI.
// NaN, ±Inf and non-positive values are rejected.
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return decimal.Zero, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", decimal.NewFromFloat(sanitize(f)).String())
	}
	return decimal.NewFromFloat(f), nil
}

// Validate checks that an already-typed amount is strictly positive.
func Validate(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", amount.String())
	}
	return nil
}

// FormatCurrency renders an amount as whole rupees with Indian digit
// grouping, e.g. "₹1,00,000". Fractions are rounded half away from zero.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	if !rounded.BigInt().IsInt64() {
		// Beyond int64 the printer cannot group; show the digits as is.
		return currencySymbol + rounded.String()
	}
	whole := rounded.IntPart()
	if whole < 0 {
		return "-" + currencySymbol + printer.Sprintf("%d", -whole)
	}
	return currencySymbol + printer.Sprintf("%d", whole)
}

func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, currencySymbol)
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, ",", "")
}

// sanitize maps non-finite floats to zero so they can be reported as a value.
func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

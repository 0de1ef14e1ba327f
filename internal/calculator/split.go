package calculator

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/models"
)

// SplitTolerance is the largest allowed gap between a custom split's
// participant sum and the bill total.
var SplitTolerance = decimal.New(1, -2)

// ComputeEqualSplit divides total evenly among names.
//
// Shares are computed in paise. Each participant gets floor(total/n) and the
// leftover paise go one each to the first participants in input order, so the
// shares always add up to total (rounded to paise). 100 split three ways is
// 33.34, 33.33, 33.33.
func ComputeEqualSplit(total decimal.Decimal, names []string) ([]models.Participant, error) {
	if len(names) == 0 {
		return nil, apperrors.ErrNoParticipants
	}
	if !total.IsPositive() {
		return nil, apperrors.Invalid(apperrors.ErrInvalidAmount, "total", total.String())
	}

	// Paise as a decimal so totals past int64 divide exactly.
	totalPaise := total.Round(2).Shift(2)
	base, rem := totalPaise.QuoRem(decimal.NewFromInt(int64(len(names))), 0)
	remainder := rem.IntPart() // always < len(names)

	participants := make([]models.Participant, len(names))
	for i, name := range names {
		share := base
		if int64(i) < remainder {
			share = share.Add(decimal.NewFromInt(1))
		}
		participants[i] = models.Participant{
			Name:   name,
			Amount: share.Shift(-2),
		}
	}
	return participants, nil
}

// ComputeCustomSplit checks that the given shares add up to total within
// SplitTolerance and returns them unchanged.
func ComputeCustomSplit(total decimal.Decimal, participants []models.Participant) ([]models.Participant, error) {
	if len(participants) == 0 {
		return nil, apperrors.ErrNoParticipants
	}

	sum := decimal.Zero
	for _, p := range participants {
		if p.Amount.IsNegative() {
			return nil, apperrors.Invalid(apperrors.ErrInvalidAmount, "participant "+p.Name, p.Amount.String())
		}
		sum = sum.Add(p.Amount)
	}

	if sum.Sub(total).Abs().GreaterThan(SplitTolerance) {
		return nil, apperrors.Invalid(apperrors.ErrSplitMismatch, "participants", sum.String())
	}

	out := make([]models.Participant, len(participants))
	copy(out, participants)
	return out, nil
}

// ValidateSplitInput checks the form-level requirements of a split bill.
// Checks run in order and the first failure is returned.
func ValidateSplitInput(title string, total decimal.Decimal, participants []models.Participant) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.Invalid(apperrors.ErrMissingTitle, "title", title)
	}
	if !total.IsPositive() {
		return apperrors.Invalid(apperrors.ErrInvalidAmount, "total", total.String())
	}
	if !total.Equal(total.Round(2)) {
		// Amounts are kept to the paisa.
		return apperrors.Invalid(apperrors.ErrInvalidAmount, "total", total.String())
	}
	if len(participants) == 0 {
		return apperrors.ErrNoParticipants
	}
	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return apperrors.Invalid(apperrors.ErrMissingParticipantName, "participants", strconv.Itoa(i))
		}
	}
	return nil
}

// Sum adds up participant shares.
func Sum(participants []models.Participant) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Remaining is the part of total not yet assigned to anyone. Negative when
// the shares overshoot the total.
func Remaining(total decimal.Decimal, participants []models.Participant) decimal.Decimal {
	return total.Sub(Sum(participants))
}

package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/calculator"
	"github.com/mmynk/cardledger/internal/models"
)

// SplitInput is a split-bill form. For equal splits only participant names
// are read; for custom splits the amounts must add up to Total.
type SplitInput struct {
	Title        string
	Total        decimal.Decimal
	Type         models.SplitType
	Participants []models.Participant
}

// CreateSplitBill validates in, computes the shares and prepends the new bill.
func CreateSplitBill(state *models.AppState, in SplitInput, now time.Time) (*models.AppState, *models.SplitBill, error) {
	if err := calculator.ValidateSplitInput(in.Title, in.Total, in.Participants); err != nil {
		return state, nil, err
	}

	var (
		participants []models.Participant
		err          error
	)
	switch in.Type {
	case models.SplitEqual:
		names := make([]string, len(in.Participants))
		for i, p := range in.Participants {
			names[i] = strings.TrimSpace(p.Name)
		}
		participants, err = calculator.ComputeEqualSplit(in.Total, names)
	case models.SplitCustom:
		participants, err = calculator.ComputeCustomSplit(in.Total, trimNames(in.Participants))
	default:
		err = fmt.Errorf("split type %q: %w", in.Type, apperrors.ErrValidation)
	}
	if err != nil {
		return state, nil, err
	}

	bill := models.SplitBill{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Total:        in.Total,
		Type:         in.Type,
		CreatedAt:    now,
		Participants: participants,
	}

	next := state.Clone()
	next.SplitBills = append([]models.SplitBill{bill}, next.SplitBills...)
	return next, &bill, nil
}

func trimNames(ps []models.Participant) []models.Participant {
	out := make([]models.Participant, len(ps))
	for i, p := range ps {
		out[i] = models.Participant{Name: strings.TrimSpace(p.Name), Amount: p.Amount}
	}
	return out
}

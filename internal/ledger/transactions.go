package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/models"
)

// TransactionInput describes a spend to record.
type TransactionInput struct {
	CardID   string
	Merchant string
	Amount   decimal.Decimal
	Category string
	Icon     string
	Date     time.Time // Zero means now
}

// AddTransaction prepends a completed transaction. The card ID is not checked
// against the card list; orphaned transactions are tolerated.
func AddTransaction(state *models.AppState, in TransactionInput, now time.Time) (*models.AppState, *models.Transaction, error) {
	merchant := strings.TrimSpace(in.Merchant)
	if merchant == "" {
		return state, nil, apperrors.Invalid(apperrors.ErrMissingMerchant, "merchant", in.Merchant)
	}
	if !in.Amount.IsPositive() {
		return state, nil, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", in.Amount.String())
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return state, nil, apperrors.Invalid(apperrors.ErrMissingCategory, "category", in.Category)
	}

	date := in.Date
	if date.IsZero() {
		date = now
	}
	txn := models.Transaction{
		ID:       uuid.NewString(),
		CardID:   in.CardID,
		Merchant: merchant,
		Amount:   in.Amount,
		Category: category,
		Date:     date,
		Status:   models.TransactionCompleted,
		Icon:     in.Icon,
	}

	next := state.Clone()
	next.Transactions = append([]models.Transaction{txn}, next.Transactions...)
	return next, &txn, nil
}

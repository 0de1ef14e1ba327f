package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/models"
)

// CardInput is the raw add-card form as typed by the user.
type CardInput struct {
	BankName       string
	CardNumber     string
	CardholderName string
	ExpiryDate     string
	CVV            string // Checked, never stored
	CreditLimit    string
}

// Palette is the set of display colours assigned to new cards in rotation.
var Palette = []string{
	"from-purple-600 to-blue-600",
	"from-green-600 to-teal-600",
	"from-yellow-600 to-orange-600",
	"from-pink-600 to-rose-600",
}

const maskPrefix = "**** **** **** "

// AddCard validates in and appends a new active card with nothing outstanding.
// On failure it returns state unchanged and an apperrors.FieldErrors holding
// every invalid field.
func AddCard(state *models.AppState, in CardInput, now time.Time) (*models.AppState, *models.Card, error) {
	form := normalizeCard(in)
	if err := validateCard(form); err != nil {
		return state, nil, err
	}

	limit := decimal.NewFromInt(form.CreditLimit)
	card := models.Card{
		ID:             uuid.NewString(),
		BankName:       form.BankName,
		MaskedNumber:   maskPrefix + form.CardNumber[len(form.CardNumber)-4:],
		CardholderName: strings.ToUpper(form.CardholderName),
		ExpiryDate:     form.ExpiryDate,
		CreditLimit:    limit,
		Outstanding:    decimal.Zero,
		Available:      limit,
		Status:         models.CardActive,
		Color:          Palette[len(cardsOf(state))%len(Palette)],
		LastUsed:       now.Format(time.DateOnly),
	}

	next := state.Clone()
	next.Cards = append(next.Cards, card)
	return next, &card, nil
}

// RemoveCard deletes the card with the given ID. Removing an absent card is a
// no-op that returns state itself.
func RemoveCard(state *models.AppState, cardID string) *models.AppState {
	if state == nil || state.FindCard(cardID) < 0 {
		return state
	}
	next := state.Clone()
	cards := next.Cards[:0]
	for _, c := range next.Cards {
		if c.ID != cardID {
			cards = append(cards, c)
		}
	}
	next.Cards = cards
	return next
}

// ToggleFreeze flips the card between active and frozen. Balances are not
// touched. An absent card is a no-op that returns state itself.
func ToggleFreeze(state *models.AppState, cardID string) *models.AppState {
	if state == nil {
		return state
	}
	i := state.FindCard(cardID)
	if i < 0 {
		return state
	}
	next := state.Clone()
	if next.Cards[i].Status == models.CardActive {
		next.Cards[i].Status = models.CardFrozen
	} else {
		next.Cards[i].Status = models.CardActive
	}
	return next
}

// MakePayment applies a repayment against the card's outstanding balance.
//
// It fails with ErrCardNotFound, ErrInvalidAmount (amount not positive) or
// ErrExceedsOutstanding (amount greater than what is owed). Frozen cards can
// still be repaid.
func MakePayment(state *models.AppState, cardID string, amount decimal.Decimal) (*models.AppState, error) {
	if state == nil {
		return state, apperrors.Invalid(apperrors.ErrCardNotFound, "cardId", cardID)
	}
	i := state.FindCard(cardID)
	if i < 0 {
		return state, apperrors.Invalid(apperrors.ErrCardNotFound, "cardId", cardID)
	}
	if !amount.IsPositive() {
		return state, apperrors.Invalid(apperrors.ErrInvalidAmount, "amount", amount.String())
	}
	card := state.Cards[i]
	if amount.GreaterThan(card.Outstanding) {
		return state, apperrors.Invalid(apperrors.ErrExceedsOutstanding, "amount", amount.String())
	}

	next := state.Clone()
	c := &next.Cards[i]
	c.Outstanding = decimal.Max(decimal.Zero, c.Outstanding.Sub(amount))
	c.Available = decimal.Min(c.CreditLimit, c.Available.Add(amount))
	return next, nil
}

// QuickPayAmounts returns the 25%, 50% and full-outstanding presets offered
// on the payment form, rounded to whole rupees.
func QuickPayAmounts(card models.Card) []decimal.Decimal {
	quarter := card.Outstanding.Mul(decimal.RequireFromString("0.25")).Round(0)
	half := card.Outstanding.Mul(decimal.RequireFromString("0.5")).Round(0)
	return []decimal.Decimal{quarter, half, card.Outstanding}
}

func cardsOf(state *models.AppState) []models.Card {
	if state == nil {
		return nil
	}
	return state.Cards
}

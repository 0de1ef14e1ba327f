package models

import "github.com/shopspring/decimal"

// CardStatus is the lifecycle flag of a card.
type CardStatus string

const (
	CardActive CardStatus = "active"
	CardFrozen CardStatus = "frozen"
)

// Card represents a credit card tracked by the ledger.
//
// Available + Outstanding always equals CreditLimit, and Outstanding stays
// within [0, CreditLimit].
type Card struct {
	// ID is the unique identifier for the card (UUID format for new cards).
	// Immutable after creation.
	ID string

	// BankName is the issuing bank (e.g., "HDFC Bank").
	BankName string

	// MaskedNumber keeps only the last four digits ("**** **** **** 1234").
	// The full number is never retained.
	MaskedNumber string

	// CardholderName is stored upper-cased.
	CardholderName string

	// ExpiryDate is the MM/YY string entered by the user.
	ExpiryDate string

	// CreditLimit is the total line in whole rupees.
	CreditLimit decimal.Decimal

	// Outstanding is the amount currently owed on the card.
	Outstanding decimal.Decimal

	// Available is the unused portion of the limit.
	Available decimal.Decimal

	// Status is active or frozen.
	Status CardStatus

	// Color is a display tag for the card face.
	Color string

	// LastUsed is the YYYY-MM-DD date the card was last used.
	LastUsed string
}

// IsFrozen reports whether the card is frozen.
func (c Card) IsFrozen() bool {
	return c.Status == CardFrozen
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitType selects how a bill total is divided.
type SplitType string

const (
	SplitEqual  SplitType = "equal"
	SplitCustom SplitType = "custom"
)

// SplitBill represents an expense divided among participants.
// It is created once validation passes and is never mutated afterwards.
type SplitBill struct {
	// ID is the unique identifier for the split bill (UUID format).
	ID string

	// Title is the human-readable name (e.g., "Dinner at Taj").
	Title string

	// Total is the full bill amount being divided.
	Total decimal.Decimal

	// Type is equal or custom.
	Type SplitType

	// CreatedAt is when the split was recorded.
	CreatedAt time.Time

	// Participants holds each person's share, in entry order.
	Participants []Participant
}

// Participant is one person's share of a split bill.
type Participant struct {
	// Name is the participant's display name. Never blank.
	Name string

	// Amount is this person's share. Never negative.
	Amount decimal.Decimal
}

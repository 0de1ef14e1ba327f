// Package models defines the core domain models for the card ledger.
//
// # Models
//
//   - Card: a credit card with its limit and running balances
//   - Transaction: a completed spend recorded against a card
//   - SplitBill: an expense divided among named participants
//   - AppState: the aggregate root holding everything above plus the theme
//
// Money is carried as decimal.Decimal throughout. Card limits and balances are
// whole rupees; split shares may carry paise.
//
// # Snapshots
//
// An AppState is treated as an immutable snapshot once it has been handed out.
// Code that needs a modified state calls Clone and edits the copy, so readers
// holding an older snapshot never observe a half-applied change.
//
// Relationships use ID strings instead of pointers. A Transaction whose CardID
// no longer matches a card is tolerated.
package models

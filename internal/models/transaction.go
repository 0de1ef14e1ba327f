package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCompleted is the only transaction status the ledger produces.
const TransactionCompleted = "completed"

// Transaction is a completed spend on a card. Transactions are append-only
// and never edited.
type Transaction struct {
	ID       string
	CardID   string
	Merchant string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Status   string
	Icon     string
}

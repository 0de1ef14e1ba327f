package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/models"
)

// Command is one of the *Cmd types defined in this package. The set is
// closed: the marker method is unexported.
type Command interface {
	// Name is a stable identifier used in logs and metrics.
	Name() string
	command()
}

type (
	AddCardCmd struct {
		Input CardInput
	}
	RemoveCardCmd struct {
		CardID string
	}
	FreezeToggleCmd struct {
		CardID string
	}
	MakePaymentCmd struct {
		CardID string
		Amount decimal.Decimal
	}
	AddTransactionCmd struct {
		Input TransactionInput
	}
	AddSplitBillCmd struct {
		Input SplitInput
	}
	ToggleThemeCmd struct{}
)

func (AddCardCmd) Name() string { return "add_card" }
func (RemoveCardCmd) Name() string { return "remove_card" }
func (FreezeToggleCmd) Name() string { return "freeze_toggle" }
func (MakePaymentCmd) Name() string { return "make_payment" }
func (AddTransactionCmd) Name() string { return "add_transaction" }
func (AddSplitBillCmd) Name() string { return "add_split_bill" }
func (ToggleThemeCmd) Name() string { return "toggle_theme" }

func (AddCardCmd) command() {}
func (RemoveCardCmd) command() {}
func (FreezeToggleCmd) command() {}
func (MakePaymentCmd) command() {}
func (AddTransactionCmd) command() {}
func (AddSplitBillCmd) command() {}
func (ToggleThemeCmd) command() {}

// Result is the outcome of applying a command. State is always usable: on
// error it is the snapshot that was passed in.
type Result struct {
	State *models.AppState
	Err   error

	// CreatedID is the ID of the card, transaction or split bill the command
	// created, if any.
	CreatedID string
}

// Apply runs cmd against state.
func Apply(state *models.AppState, cmd Command, now time.Time) Result {
	switch c := cmd.(type) {
	case AddCardCmd:
		next, card, err := AddCard(state, c.Input, now)
		return result(next, err, cardID(card))
	case RemoveCardCmd:
		return Result{State: RemoveCard(state, c.CardID)}
	case FreezeToggleCmd:
		return Result{State: ToggleFreeze(state, c.CardID)}
	case MakePaymentCmd:
		next, err := MakePayment(state, c.CardID, c.Amount)
		return Result{State: next, Err: err}
	case AddTransactionCmd:
		next, txn, err := AddTransaction(state, c.Input, now)
		id := ""
		if txn != nil {
			id = txn.ID
		}
		return result(next, err, id)
	case AddSplitBillCmd:
		next, bill, err := CreateSplitBill(state, c.Input, now)
		id := ""
		if bill != nil {
			id = bill.ID
		}
		return result(next, err, id)
	case ToggleThemeCmd:
		next := state.Clone()
		next.Theme = next.Theme.Toggled()
		return Result{State: next}
	default:
		return Result{State: state, Err: fmt.Errorf("%T: %w", cmd, apperrors.ErrUnknownCommand)}
	}
}

func result(state *models.AppState, err error, id string) Result {
	return Result{State: state, Err: err, CreatedID: id}
}

func cardID(c *models.Card) string {
	if c == nil {
		return ""
	}
	return c.ID
}

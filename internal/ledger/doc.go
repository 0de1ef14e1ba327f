// Package ledger holds every numeric state transition of the card dashboard.
//
// Each operation takes an *models.AppState snapshot and returns a new one; the
// input is never modified. A failed operation returns the input snapshot
// unchanged together with an error from package apperrors.
//
// The same operations are also available as command values (AddCardCmd,
// MakePaymentCmd, ...) dispatched by Apply, which is what the service layer uses.
package ledger

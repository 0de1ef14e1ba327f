// Package middleware wraps ledger command dispatch with cross-cutting
// behaviour such as logging and metrics.
package middleware

import (
	"context"

	"github.com/mmynk/cardledger/internal/ledger"
	"github.com/mmynk/cardledger/internal/models"
)

// Handler applies a command to a snapshot.
type Handler func(ctx context.Context, state *models.AppState, cmd ledger.Command) ledger.Result

// Middleware decorates a Handler.
type Middleware func(Handler) Handler

// Chain wraps h so that the first middleware is the outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

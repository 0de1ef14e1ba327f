package middleware

import (
	"context"

	"github.com/mmynk/cardledger/internal/ledger"
	"github.com/mmynk/cardledger/internal/metrics"
	"github.com/mmynk/cardledger/internal/models"
)

// Metrics returns a middleware that counts commands by outcome.
// A nil m disables counting.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next Handler) Handler {
		if m == nil {
			return next
		}
		return func(ctx context.Context, state *models.AppState, cmd ledger.Command) ledger.Result {
			res := next(ctx, state, cmd)
			m.ObserveCommand(commandName(cmd), res.Err)
			return res
		}
	}
}

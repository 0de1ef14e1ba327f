package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/ledger"
	"github.com/mmynk/cardledger/internal/models"
)

// Logging returns a middleware that logs every command with its duration.
// Rejected commands (validation failures) are warnings; anything outside the
// error taxonomy is an error.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, state *models.AppState, cmd ledger.Command) ledger.Result {
			start := time.Now()
			name := commandName(cmd)

			res := next(ctx, state, cmd)

			duration := time.Since(start).Microseconds()
			if res.Err != nil {
				code := apperrors.Code(res.Err)
				if code == "Internal" {
					logger.ErrorContext(ctx, "Command failed",
						"command", name,
						"error", res.Err,
						"duration_us", duration,
					)
				} else {
					logger.WarnContext(ctx, "Command rejected",
						"command", name,
						"code", code,
						"error", res.Err,
						"duration_us", duration,
					)
				}
			} else {
				logger.InfoContext(ctx, "Command ok",
					"command", name,
					"created_id", res.CreatedID,
					"duration_us", duration,
				)
			}

			return res
		}
	}
}

func commandName(cmd ledger.Command) string {
	if cmd == nil {
		return "<nil>"
	}
	return cmd.Name()
}

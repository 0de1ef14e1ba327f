package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/insights"
	"github.com/mmynk/cardledger/internal/ledger"
	"github.com/mmynk/cardledger/internal/metrics"
	"github.com/mmynk/cardledger/internal/middleware"
	"github.com/mmynk/cardledger/internal/models"
	"github.com/mmynk/cardledger/internal/money"
	"github.com/mmynk/cardledger/internal/storage"
)

// LedgerService is the single writer for the ledger snapshot. Every command
// runs "read snapshot, apply, publish" under one mutex.
type LedgerService struct {
	mu      sync.Mutex
	store   storage.Store
	handler middleware.Handler
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithClock overrides the time source used for created-at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

// WithMetrics records command outcomes and balance gauges on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithLogger sets the logger for the service and its command middleware.
// SplitServices built on the service share it.
func WithLogger(l *slog.Logger) Option {
	return func(s *LedgerService) { s.logger = l }
}

// NewLedgerService creates a LedgerService over the given storage backend.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.handler = middleware.Chain(s.apply,
		middleware.Logging(s.logger),
		middleware.Metrics(s.metrics),
	)
	return s
}

func (s *LedgerService) apply(_ context.Context, state *models.AppState, cmd ledger.Command) ledger.Result {
	return ledger.Apply(state, cmd, s.now())
}

// Dispatch applies cmd to the current snapshot and publishes the result.
// On error nothing is published and the returned Result carries the
// unchanged snapshot.
func (s *LedgerService) Dispatch(ctx context.Context, cmd ledger.Command) (ledger.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Current(ctx)
	if err != nil {
		return ledger.Result{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	res := s.handler(ctx, current, cmd)
	if res.Err != nil {
		return res, res.Err
	}
	if res.State != current {
		if err := s.store.Swap(ctx, current, res.State); err != nil {
			s.logger.Error("Dispatch: failed to publish snapshot", "command", cmd.Name(), "error", err)
			return ledger.Result{State: current}, fmt.Errorf("failed to publish snapshot: %w", err)
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveSummary(insights.Summarize(res.State))
	}
	return res, nil
}

// Snapshot returns the current published state. Treat it as read-only.
func (s *LedgerService) Snapshot(ctx context.Context) (*models.AppState, error) {
	state, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return state, nil
}

// Reset replaces the published snapshot wholesale, e.g. to reload the demo
// data. A nil state resets to an empty dashboard keeping the current theme.
func (s *LedgerService) Reset(ctx context.Context, state *models.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == nil {
		theme := models.ThemeDark
		if cur, err := s.store.Current(ctx); err == nil && cur != nil {
			theme = cur.Theme
		}
		state = &models.AppState{Theme: theme}
	}
	if err := s.store.Reset(ctx, state); err != nil {
		return fmt.Errorf("failed to reset snapshot: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveSummary(insights.Summarize(state))
	}
	s.logger.Info("Snapshot reset", "cards", len(state.Cards), "transactions", len(state.Transactions))
	return nil
}

// AddCard validates the add-card form and appends the card.
func (s *LedgerService) AddCard(ctx context.Context, in ledger.CardInput) (models.Card, error) {
	res, err := s.Dispatch(ctx, ledger.AddCardCmd{Input: in})
	if err != nil {
		return models.Card{}, err
	}
	i := res.State.FindCard(res.CreatedID)
	if i < 0 {
		return models.Card{}, fmt.Errorf("card %s missing after add: %w", res.CreatedID, apperrors.ErrCardNotFound)
	}
	s.logger.Info("Card added", "card_id", res.CreatedID, "bank", in.BankName)
	return res.State.Cards[i], nil
}

// RemoveCard deletes a card. Removing an unknown card succeeds.
func (s *LedgerService) RemoveCard(ctx context.Context, cardID string) error {
	_, err := s.Dispatch(ctx, ledger.RemoveCardCmd{CardID: cardID})
	return err
}

// ToggleFreeze flips a card between active and frozen and returns the new
// status. Unknown cards report ErrCardNotFound without changing anything.
func (s *LedgerService) ToggleFreeze(ctx context.Context, cardID string) (models.CardStatus, error) {
	res, err := s.Dispatch(ctx, ledger.FreezeToggleCmd{CardID: cardID})
	if err != nil {
		return "", err
	}
	i := res.State.FindCard(cardID)
	if i < 0 {
		return "", apperrors.Invalid(apperrors.ErrCardNotFound, "cardId", cardID)
	}
	return res.State.Cards[i].Status, nil
}

// MakePayment repays amount against the card and returns the updated card.
func (s *LedgerService) MakePayment(ctx context.Context, cardID string, amount decimal.Decimal) (models.Card, error) {
	res, err := s.Dispatch(ctx, ledger.MakePaymentCmd{CardID: cardID, Amount: amount})
	if err != nil {
		s.logger.Warn("MakePayment rejected", "card_id", cardID, "amount", amount.String(), "error", err)
		return models.Card{}, err
	}
	card := res.State.Cards[res.State.FindCard(cardID)]
	s.logger.Info("Payment applied",
		"card_id", cardID,
		"amount", money.FormatCurrency(amount),
		"outstanding", card.Outstanding.String(),
	)
	return card, nil
}

// MakePaymentFromInput parses the raw amount typed into the payment form
// before paying.
func (s *LedgerService) MakePaymentFromInput(ctx context.Context, cardID, rawAmount string) (models.Card, error) {
	amount, err := money.ParseAmount(rawAmount)
	if err != nil {
		return models.Card{}, err
	}
	return s.MakePayment(ctx, cardID, amount)
}

// AddTransaction records a completed spend.
func (s *LedgerService) AddTransaction(ctx context.Context, in ledger.TransactionInput) (models.Transaction, error) {
	res, err := s.Dispatch(ctx, ledger.AddTransactionCmd{Input: in})
	if err != nil {
		return models.Transaction{}, err
	}
	return res.State.Transactions[0], nil
}

// ToggleTheme flips the display theme and returns the new one.
func (s *LedgerService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	res, err := s.Dispatch(ctx, ledger.ToggleThemeCmd{})
	if err != nil {
		return "", err
	}
	return res.State.Theme, nil
}

// Summary computes the dashboard header for the current snapshot.
func (s *LedgerService) Summary(ctx context.Context) (insights.Summary, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return insights.Summary{}, err
	}
	return insights.Summarize(state), nil
}

// RecentTransactions returns up to n of the newest transactions.
func (s *LedgerService) RecentTransactions(ctx context.Context, n int) ([]models.Transaction, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Recent(state.Transactions, n), nil
}

// SearchTransactions filters transactions by merchant text and category.
func (s *LedgerService) SearchTransactions(ctx context.Context, query, category string) ([]models.Transaction, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return insights.FilterTransactions(state.Transactions, query, category), nil
}

// TopMerchants returns the n merchants with the highest spend.
func (s *LedgerService) TopMerchants(ctx context.Context, n int) ([]insights.Bucket, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return insights.TopN(insights.SumByMerchant(state.Transactions), n), nil
}

// SpendingByCategory totals spend per category in first-seen order.
func (s *LedgerService) SpendingByCategory(ctx context.Context) ([]insights.Bucket, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return insights.SumByCategory(state.Transactions), nil
}

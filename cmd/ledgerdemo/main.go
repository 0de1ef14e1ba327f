package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/config"
	"github.com/mmynk/cardledger/internal/insights"
	"github.com/mmynk/cardledger/internal/ledger"
	"github.com/mmynk/cardledger/internal/metrics"
	"github.com/mmynk/cardledger/internal/models"
	"github.com/mmynk/cardledger/internal/money"
	"github.com/mmynk/cardledger/internal/notifications"
	"github.com/mmynk/cardledger/internal/rewards"
	"github.com/mmynk/cardledger/internal/seed"
	"github.com/mmynk/cardledger/internal/service"
	"github.com/mmynk/cardledger/internal/storage/memory"
	"github.com/mmynk/cardledger/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.SetupWithLevel(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	m, err := metrics.New(cfg.MetricsNamespace, reg)
	if err != nil {
		slog.Error("Failed to register metrics", "error", err)
		os.Exit(1)
	}

	initial := seed.Empty(cfg.DefaultTheme)
	if cfg.SeedDemoData {
		initial = seed.State(cfg.DefaultTheme)
	}
	store := memory.New(initial)
	defer store.Close()
	slog.Info("Store initialized", "seeded", cfg.SeedDemoData, "theme", cfg.DefaultTheme)

	ledgerSvc := service.NewLedgerService(store, service.WithMetrics(m), service.WithLogger(logger))
	splitSvc := service.NewSplitService(ledgerSvc, cfg.SelfName)

	if err := run(context.Background(), ledgerSvc, splitSvc, cfg.SelfName); err != nil {
		slog.Error("Demo session failed", "error", err)
		os.Exit(1)
	}
}

// run walks through a short dashboard session.
func run(ctx context.Context, ledgerSvc *service.LedgerService, splitSvc *service.SplitService, self string) error {
	logSummary(ctx, ledgerSvc, "Opening balances")

	card, err := ledgerSvc.AddCard(ctx, ledger.CardInput{
		BankName:       "Axis Bank",
		CardNumber:     "4111 1111 1111 4321",
		CardholderName: "John Doe",
		ExpiryDate:     "11/29",
		CVV:            "123",
		CreditLimit:    "60000",
	})
	if err != nil {
		return err
	}

	if _, err := ledgerSvc.AddTransaction(ctx, ledger.TransactionInput{
		CardID:   card.ID,
		Merchant: "Swiggy",
		Amount:   decimal.NewFromInt(1450),
		Category: "Food",
	}); err != nil {
		return err
	}

	// A typo'd card number is reported per field and changes nothing.
	_, err = ledgerSvc.AddCard(ctx, ledger.CardInput{CardNumber: "12345"})
	var fe apperrors.FieldErrors
	if errors.As(err, &fe) {
		for field, msg := range fe {
			slog.Info("Add card rejected", "field", field, "message", msg)
		}
	}

	state, err := ledgerSvc.Snapshot(ctx)
	if err != nil {
		return err
	}
	for _, c := range state.Cards {
		if c.Outstanding.IsZero() {
			continue
		}
		presets := ledger.QuickPayAmounts(c)
		paid, err := ledgerSvc.MakePayment(ctx, c.ID, presets[0])
		if err != nil {
			return err
		}
		slog.Info("Quick pay",
			"card_id", c.ID,
			"paid", money.FormatCurrency(presets[0]),
			"outstanding", money.FormatCurrency(paid.Outstanding),
		)
		break
	}

	if _, err := ledgerSvc.MakePaymentFromInput(ctx, "card2", "₹10,00,000"); !errors.Is(err, apperrors.ErrExceedsOutstanding) {
		slog.Warn("Expected overpayment to be rejected", "error", err)
	}

	if _, err := ledgerSvc.ToggleFreeze(ctx, card.ID); err != nil {
		return err
	}

	bill, err := splitSvc.CreateSplitBill(ctx, ledger.SplitInput{
		Title: "Weekend brunch",
		Total: decimal.NewFromInt(2500),
		Type:  models.SplitEqual,
		Participants: []models.Participant{
			{Name: self}, {Name: "Asha"}, {Name: "Ravi"},
		},
	})
	if err != nil {
		return err
	}
	for _, p := range bill.Participants {
		slog.Info("Split share", "split_id", bill.ID, "name", p.Name, "amount", p.Amount.StringFixed(2))
	}

	balances, err := splitSvc.OwedToSelf(ctx)
	if err != nil {
		return err
	}
	for _, b := range balances {
		slog.Info("Owed to you", "name", b.Name, "amount", money.FormatCurrency(b.Owed), "bills", b.Bills)
	}

	top, err := ledgerSvc.TopMerchants(ctx, 3)
	if err != nil {
		return err
	}
	for i, b := range top {
		slog.Info("Top merchant", "rank", i+1, "merchant", b.Name, "spent", money.FormatCurrency(b.Total))
	}

	const points = 2450
	progress := rewards.ProgressToNextTier(points)
	slog.Info("Rewards",
		"points", points,
		"tier", progress.Current.Name,
		"next", progress.Next.Name,
		"remaining", progress.Remaining,
	)

	score := 782
	slog.Info("Credit score", "score", score, "rating", insights.RateCreditScore(score))

	state, err = ledgerSvc.Snapshot(ctx)
	if err != nil {
		return err
	}
	feed := notifications.Demo(time.Now())
	feed = append(notifications.UtilizationAlerts(state.Cards, insights.HealthyUtilization, time.Now()), feed...)
	slog.Info("Notifications", "total", len(feed), "unread", notifications.UnreadCount(feed))
	feed = notifications.MarkAllRead(feed)
	slog.Info("Notifications marked read", "unread", notifications.UnreadCount(feed))

	logSummary(ctx, ledgerSvc, "Closing balances")
	return nil
}

func logSummary(ctx context.Context, svc *service.LedgerService, msg string) {
	sum, err := svc.Summary(ctx)
	if err != nil {
		slog.Error("Failed to compute summary", "error", err)
		return
	}
	slog.Info(msg,
		"outstanding", money.FormatCurrency(sum.TotalOutstanding),
		"limit", money.FormatCurrency(sum.TotalLimit),
		"available", money.FormatCurrency(sum.TotalAvailable),
		"utilization_pct", sum.Utilization,
		"healthy", sum.Healthy,
		"cards", sum.CardCount,
		"frozen", sum.FrozenCards,
	)
}

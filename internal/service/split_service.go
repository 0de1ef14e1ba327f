package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/calculator"
	"github.com/mmynk/cardledger/internal/ledger"
	"github.com/mmynk/cardledger/internal/models"
)

// DefaultSelfName is the participant name that stands for the dashboard user.
const DefaultSelfName = "You"

// SplitService handles bill splitting on top of a LedgerService.
type SplitService struct {
	ledger *LedgerService
	logger *slog.Logger
	self   string
}

// NewSplitService creates a SplitService. self is the participant name that
// denotes the dashboard user; blank means DefaultSelfName.
func NewSplitService(l *LedgerService, self string) *SplitService {
	if self == "" {
		self = DefaultSelfName
	}
	logger := slog.Default()
	if l != nil {
		logger = l.logger
	}
	return &SplitService{ledger: l, logger: logger, self: self}
}

// SplitPreview is the result of calculating a split without recording it.
type SplitPreview struct {
	Participants []models.Participant
	Remaining    decimal.Decimal // Total minus assigned shares
}

// CalculateSplit computes the shares for in without recording anything.
// For custom splits a mismatch still returns the preview so the form can show
// how much is left to assign.
func (s *SplitService) CalculateSplit(in ledger.SplitInput) (SplitPreview, error) {
	if err := calculator.ValidateSplitInput(in.Title, in.Total, in.Participants); err != nil {
		return SplitPreview{}, err
	}

	switch in.Type {
	case models.SplitEqual:
		names := make([]string, len(in.Participants))
		for i, p := range in.Participants {
			names[i] = p.Name
		}
		ps, err := calculator.ComputeEqualSplit(in.Total, names)
		if err != nil {
			return SplitPreview{}, err
		}
		return SplitPreview{Participants: ps, Remaining: calculator.Remaining(in.Total, ps)}, nil
	case models.SplitCustom:
		preview := SplitPreview{
			Participants: in.Participants,
			Remaining:    calculator.Remaining(in.Total, in.Participants),
		}
		_, err := calculator.ComputeCustomSplit(in.Total, in.Participants)
		return preview, err
	default:
		return SplitPreview{}, fmt.Errorf("split type %q: %w", in.Type, apperrors.ErrValidation)
	}
}

// CreateSplitBill validates, splits and records a new bill.
func (s *SplitService) CreateSplitBill(ctx context.Context, in ledger.SplitInput) (models.SplitBill, error) {
	s.logger.Debug("CreateSplitBill request received",
		"title", in.Title,
		"total", in.Total.String(),
		"type", in.Type,
		"participants_count", len(in.Participants),
	)

	res, err := s.ledger.Dispatch(ctx, ledger.AddSplitBillCmd{Input: in})
	if err != nil {
		s.logger.Warn("CreateSplitBill failed", "error", err)
		return models.SplitBill{}, err
	}
	bill := res.State.SplitBills[0]
	s.logger.Info("Split bill created", "split_id", bill.ID, "title", bill.Title)
	return bill, nil
}

// GetSplitBill retrieves a split bill by ID.
func (s *SplitService) GetSplitBill(ctx context.Context, id string) (models.SplitBill, error) {
	state, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return models.SplitBill{}, err
	}
	bill, ok := state.FindSplitBill(id)
	if !ok {
		return models.SplitBill{}, fmt.Errorf("split bill %s: %w", id, apperrors.ErrNotFound)
	}
	return bill, nil
}

// ListSplitBills returns every split bill, newest first.
func (s *SplitService) ListSplitBills(ctx context.Context) ([]models.SplitBill, error) {
	state, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.SplitBill, len(state.SplitBills))
	copy(out, state.SplitBills)
	return out, nil
}

// OwedToSelf aggregates what everyone else owes the dashboard user across all
// split bills.
func (s *SplitService) OwedToSelf(ctx context.Context) ([]calculator.ParticipantBalance, error) {
	state, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.OwedToPayer(state.SplitBills, s.self), nil
}

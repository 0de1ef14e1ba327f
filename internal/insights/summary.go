package insights

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/models"
)

// Summary holds the dashboard header figures for one snapshot.
type Summary struct {
	TotalOutstanding decimal.Decimal
	TotalLimit       decimal.Decimal
	TotalAvailable   decimal.Decimal
	Utilization      int64
	Healthy          bool // Utilization under HealthyUtilization
	CardCount        int
	ActiveCards      int
	FrozenCards      int
	TotalSpent       decimal.Decimal
	TopCategory      string
}

// Summarize computes the dashboard summary for state.
func Summarize(state *models.AppState) Summary {
	s := Summary{
		TotalOutstanding: TotalOutstanding(state.Cards),
		TotalLimit:       TotalLimit(state.Cards),
		TotalAvailable:   TotalAvailable(state.Cards),
		Utilization:      UtilizationPercent(state.Cards),
		CardCount:        len(state.Cards),
		TotalSpent:       decimal.Zero,
	}
	s.Healthy = s.Utilization < HealthyUtilization

	for _, c := range state.Cards {
		if c.IsFrozen() {
			s.FrozenCards++
		} else {
			s.ActiveCards++
		}
	}
	for _, t := range state.Transactions {
		s.TotalSpent = s.TotalSpent.Add(t.Amount)
	}
	if top := TopN(SumByCategory(state.Transactions), 1); len(top) == 1 {
		s.TopCategory = top[0].Name
	}
	return s
}

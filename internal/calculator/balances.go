package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/models"
)

// ParticipantBalance is what one person owes the payer across split bills.
type ParticipantBalance struct {
	Name  string
	Owed  decimal.Decimal
	Bills int // Number of bills this person appears on
}

// OwedToPayer aggregates, across all split bills, how much each participant
// other than payer owes. The payer is matched case-insensitively and is
// assumed to have covered each bill in full.
//
// Results are in first-seen order: newest bill first, then participant order
// within the bill.
func OwedToPayer(bills []models.SplitBill, payer string) []ParticipantBalance {
	payer = strings.TrimSpace(payer)
	index := make(map[string]int)
	var balances []ParticipantBalance

	for _, bill := range bills {
		for _, p := range bill.Participants {
			name := strings.TrimSpace(p.Name)
			if strings.EqualFold(name, payer) {
				continue
			}
			i, ok := index[name]
			if !ok {
				i = len(balances)
				index[name] = i
				balances = append(balances, ParticipantBalance{Name: name, Owed: decimal.Zero})
			}
			balances[i].Owed = balances[i].Owed.Add(p.Amount)
			balances[i].Bills++
		}
	}
	return balances
}

// TotalOwedToPayer is the sum of OwedToPayer.
func TotalOwedToPayer(bills []models.SplitBill, payer string) decimal.Decimal {
	total := decimal.Zero
	for _, b := range OwedToPayer(bills, payer) {
		total = total.Add(b.Owed)
	}
	return total
}

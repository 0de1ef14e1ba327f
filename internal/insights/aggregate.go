// Package insights computes the read-only figures shown on the dashboard:
// card totals, utilization, spending breakdowns and credit score bands.
package insights

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/models"
)

// HealthyUtilization is the utilization percentage the dashboard recommends
// staying under.
const HealthyUtilization = 30

var hundred = decimal.NewFromInt(100)

// TotalOutstanding sums the outstanding balance across cards.
func TotalOutstanding(cards []models.Card) decimal.Decimal {
	return sumCards(cards, func(c models.Card) decimal.Decimal { return c.Outstanding })
}

// TotalLimit sums the credit limit across cards.
func TotalLimit(cards []models.Card) decimal.Decimal {
	return sumCards(cards, func(c models.Card) decimal.Decimal { return c.CreditLimit })
}

// TotalAvailable sums the available credit across cards.
func TotalAvailable(cards []models.Card) decimal.Decimal {
	return sumCards(cards, func(c models.Card) decimal.Decimal { return c.Available })
}

func sumCards(cards []models.Card, field func(models.Card) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cards {
		total = total.Add(field(c))
	}
	return total
}

// UtilizationPercent is round(totalOutstanding / totalLimit * 100).
// With no credit limit at all (e.g. zero cards) it is 0.
func UtilizationPercent(cards []models.Card) int64 {
	limit := TotalLimit(cards)
	if limit.IsZero() {
		return 0
	}
	return TotalOutstanding(cards).Mul(hundred).Div(limit).Round(0).IntPart()
}

// Bucket is a named spending total.
type Bucket struct {
	Name  string
	Total decimal.Decimal
}

// SumByCategory totals transaction amounts per category, in first-seen order.
func SumByCategory(txns []models.Transaction) []Bucket {
	return group(txns, func(t models.Transaction) string { return t.Category })
}

// SumByMerchant totals transaction amounts per merchant, in first-seen order.
func SumByMerchant(txns []models.Transaction) []Bucket {
	return group(txns, func(t models.Transaction) string { return t.Merchant })
}

func group(txns []models.Transaction, key func(models.Transaction) string) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for _, t := range txns {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Name: k, Total: decimal.Zero})
		}
		buckets[i].Total = buckets[i].Total.Add(t.Amount)
	}
	return buckets
}

// TopN returns the n largest buckets, highest first. Buckets with equal
// totals keep their input order. n <= 0 returns every bucket sorted.
func TopN(buckets []Bucket, n int) []Bucket {
	sorted := make([]Bucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// AllCategories matches every category in FilterTransactions.
const AllCategories = "all"

// FilterTransactions keeps transactions whose merchant contains query
// (case-insensitive) and whose category equals category. An empty category or
// AllCategories matches everything.
func FilterTransactions(txns []models.Transaction, query, category string) []models.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Transaction
	for _, t := range txns {
		if q != "" && !strings.Contains(strings.ToLower(t.Merchant), q) {
			continue
		}
		if category != "" && category != AllCategories && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Recent returns at most n transactions from the front of the list, which is
// kept newest first.
func Recent(txns []models.Transaction, n int) []models.Transaction {
	if n < 0 || n > len(txns) {
		n = len(txns)
	}
	out := make([]models.Transaction, n)
	copy(out, txns[:n])
	return out
}

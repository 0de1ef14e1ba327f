// Package rewards implements reward-point tiers and catalog redemption.
package rewards

import (
	"fmt"

	"github.com/mmynk/cardledger/internal/apperrors"
)

// Tier is a loyalty level unlocked at MinPoints.
type Tier struct {
	Name      string
	MinPoints int64
}

// Tiers are ordered by MinPoints ascending.
var Tiers = []Tier{
	{Name: "Bronze", MinPoints: 0},
	{Name: "Silver", MinPoints: 500},
	{Name: "Gold", MinPoints: 1000},
	{Name: "Platinum", MinPoints: 5000},
}

// TierFor returns the highest tier whose threshold points reaches.
func TierFor(points int64) Tier {
	current := Tiers[0]
	for _, t := range Tiers {
		if points >= t.MinPoints {
			current = t
		}
	}
	return current
}

// Progress describes how far a balance is from the next tier.
type Progress struct {
	Current   Tier
	Next      Tier
	HasNext   bool
	Remaining int64   // Points still needed for Next
	Percent   float64 // 0–100 within the current band
}

// ProgressToNextTier reports the position of points between the current tier
// and the next one. At the top tier HasNext is false and Percent is 100.
func ProgressToNextTier(points int64) Progress {
	current := TierFor(points)
	p := Progress{Current: current, Percent: 100}
	for i, t := range Tiers {
		if t.Name != current.Name || i+1 >= len(Tiers) {
			continue
		}
		next := Tiers[i+1]
		band := float64(next.MinPoints - current.MinPoints)
		p.Next = next
		p.HasNext = true
		p.Remaining = next.MinPoints - points
		p.Percent = float64(points-current.MinPoints) / band * 100
		if p.Percent > 100 {
			p.Percent = 100
		}
	}
	return p
}

// Reward is an item in the redemption catalog.
type Reward struct {
	ID       string
	Title    string
	Points   int64
	Category string
}

// AllCategories matches every reward in Filter.
const AllCategories = "all"

// Catalog lists the rewards on offer.
var Catalog = []Reward{
	{ID: "amazon-gift-card", Title: "Amazon Gift Card", Points: 500, Category: "Shopping"},
	{ID: "swiggy-voucher", Title: "Swiggy Voucher", Points: 300, Category: "Food"},
	{ID: "flipkart-voucher", Title: "Flipkart Voucher", Points: 750, Category: "Shopping"},
	{ID: "bookmyshow", Title: "BookMyShow", Points: 200, Category: "Entertainment"},
	{ID: "uber-credits", Title: "Uber Credits", Points: 400, Category: "Travel"},
	{ID: "zomato-gold", Title: "Zomato Gold", Points: 600, Category: "Food"},
}

// Filter returns the catalog entries in category, or all of them for
// AllCategories or "".
func Filter(category string) []Reward {
	var out []Reward
	for _, r := range Catalog {
		if category == "" || category == AllCategories || r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Find looks up a reward by ID.
func Find(id string) (Reward, error) {
	for _, r := range Catalog {
		if r.ID == id {
			return r, nil
		}
	}
	return Reward{}, fmt.Errorf("reward %q: %w", id, apperrors.ErrNotFound)
}

// Redeem deducts reward from balance and returns what is left. When the
// balance is short the error carries the number of points still needed.
func Redeem(balance int64, reward Reward) (int64, error) {
	if balance < reward.Points {
		short := reward.Points - balance
		return balance, apperrors.Invalid(apperrors.ErrInsufficientPoints, reward.Title, fmt.Sprint(short))
	}
	return balance - reward.Points, nil
}

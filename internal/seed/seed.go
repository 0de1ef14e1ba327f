// Package seed provides the demo data the dashboard starts from on every launch.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/cardledger/internal/models"
)

func rupees(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

// Cards returns the three demo cards.
func Cards() []models.Card {
	return []models.Card{
		{
			ID:             "card1",
			BankName:       "HDFC Bank",
			MaskedNumber:   "**** **** **** 1234",
			CardholderName: "JOHN DOE",
			ExpiryDate:     "12/27",
			CreditLimit:    rupees(100000),
			Outstanding:    rupees(12450),
			Available:      rupees(87550),
			Status:         models.CardActive,
			Color:          "from-orange-500 to-red-500",
			LastUsed:       "2024-10-03",
		},
		{
			ID:             "card2",
			BankName:       "ICICI Bank",
			MaskedNumber:   "**** **** **** 5678",
			CardholderName: "JOHN DOE",
			ExpiryDate:     "08/26",
			CreditLimit:    rupees(75000),
			Outstanding:    rupees(18200),
			Available:      rupees(56800),
			Status:         models.CardActive,
			Color:          "from-red-600 to-pink-600",
			LastUsed:       "2024-10-02",
		},
		{
			ID:             "card3",
			BankName:       "SBI Card",
			MaskedNumber:   "**** **** **** 9012",
			CardholderName: "JOHN DOE",
			ExpiryDate:     "03/28",
			CreditLimit:    rupees(50000),
			Outstanding:    rupees(14630),
			Available:      rupees(35370),
			Status:         models.CardFrozen,
			Color:          "from-blue-600 to-cyan-500",
			LastUsed:       "2024-09-28",
		},
	}
}

// Transactions returns the demo transactions, newest first.
func Transactions() []models.Transaction {
	return []models.Transaction{
		{ID: "txn1", CardID: "card1", Merchant: "Amazon India", Amount: rupees(2450), Category: "Shopping", Date: at("2024-10-03T14:30:00"), Status: models.TransactionCompleted, Icon: "ShoppingBag"},
		{ID: "txn2", CardID: "card1", Merchant: "Swiggy", Amount: rupees(680), Category: "Food & Dining", Date: at("2024-10-02T20:15:00"), Status: models.TransactionCompleted, Icon: "Utensils"},
		{ID: "txn3", CardID: "card2", Merchant: "MakeMyTrip", Amount: rupees(8900), Category: "Travel", Date: at("2024-10-01T09:45:00"), Status: models.TransactionCompleted, Icon: "Plane"},
		{ID: "txn4", CardID: "card3", Merchant: "Electricity Bill", Amount: rupees(2100), Category: "Utilities", Date: at("2024-09-30T11:00:00"), Status: models.TransactionCompleted, Icon: "Zap"},
		{ID: "txn5", CardID: "card2", Merchant: "Myntra", Amount: rupees(3400), Category: "Shopping", Date: at("2024-09-29T16:20:00"), Status: models.TransactionCompleted, Icon: "ShoppingBag"},
	}
}

// SplitBills returns the demo split bills, newest first.
func SplitBills() []models.SplitBill {
	return []models.SplitBill{
		{
			ID:        "split1",
			Title:     "Dinner at Taj",
			Total:     rupees(8500),
			Type:      models.SplitEqual,
			CreatedAt: at("2024-10-02T19:30:00"),
			Participants: []models.Participant{
				{Name: "You", Amount: rupees(2125)},
				{Name: "Rahul", Amount: rupees(2125)},
				{Name: "Priya", Amount: rupees(2125)},
				{Name: "Amit", Amount: rupees(2125)},
			},
		},
		{
			ID:        "split2",
			Title:     "Movie Night",
			Total:     rupees(1200),
			Type:      models.SplitEqual,
			CreatedAt: at("2024-09-29T20:00:00"),
			Participants: []models.Participant{
				{Name: "You", Amount: rupees(400)},
				{Name: "Sarah", Amount: rupees(400)},
				{Name: "Mike", Amount: rupees(400)},
			},
		},
	}
}

// State returns a fresh seeded AppState in the given theme.
func State(theme models.Theme) *models.AppState {
	return &models.AppState{
		Cards:        Cards(),
		Transactions: Transactions(),
		SplitBills:   SplitBills(),
		Theme:        theme,
	}
}

// Empty returns a state with no cards, transactions or split bills.
func Empty(theme models.Theme) *models.AppState {
	return &models.AppState{Theme: theme}
}

// Package notifications holds the dashboard's notification feed and its
// read/unread bookkeeping.
package notifications

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/insights"
	"github.com/mmynk/cardledger/internal/models"
)

// Kind groups notifications for display.
type Kind string

const (
	KindPayment     Kind = "payment"
	KindReward      Kind = "reward"
	KindTransaction Kind = "transaction"
	KindCredit      Kind = "credit"
	KindAlert       Kind = "alert"
)

// Notification is one entry in the feed.
type Notification struct {
	ID      string
	Kind    Kind
	Title   string
	Message string
	At      time.Time
	Read    bool
}

// UnreadCount is the number shown on the bell badge.
func UnreadCount(feed []Notification) int {
	n := 0
	for _, item := range feed {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead returns a copy of feed with the given notification marked read.
func MarkRead(feed []Notification, id string) ([]Notification, error) {
	for i, item := range feed {
		if item.ID != id {
			continue
		}
		out := make([]Notification, len(feed))
		copy(out, feed)
		out[i].Read = true
		return out, nil
	}
	return feed, fmt.Errorf("notification %s: %w", id, apperrors.ErrNotFound)
}

// MarkAllRead returns a copy of feed with every notification read.
func MarkAllRead(feed []Notification) []Notification {
	out := make([]Notification, len(feed))
	for i, item := range feed {
		item.Read = true
		out[i] = item
	}
	return out
}

// UtilizationAlerts raises an unread alert for every card whose own
// utilization is above threshold percent.
func UtilizationAlerts(cards []models.Card, threshold int64, now time.Time) []Notification {
	var alerts []Notification
	for _, c := range cards {
		pct := insights.UtilizationPercent([]models.Card{c})
		if pct <= threshold {
			continue
		}
		alerts = append(alerts, Notification{
			ID:      uuid.NewString(),
			Kind:    KindAlert,
			Title:   "High Credit Utilization",
			Message: fmt.Sprintf("You're using %d%% of your credit limit on %s card", pct, c.BankName),
			At:      now,
		})
	}
	return alerts
}

// Demo returns the sample feed shown on a fresh dashboard, newest first.
func Demo(now time.Time) []Notification {
	return []Notification{
		{ID: "notif1", Kind: KindPayment, Title: "Payment Due Soon",
			Message: "Your HDFC Bank credit card payment of ₹12,450 is due in 3 days", At: now.Add(-2 * time.Hour)},
		{ID: "notif2", Kind: KindReward, Title: "New Reward Unlocked!",
			Message: "You've earned 250 points! Redeem them for exciting rewards", At: now.Add(-5 * time.Hour)},
		{ID: "notif3", Kind: KindTransaction, Title: "Transaction Successful",
			Message: "₹2,450 spent at Amazon India", At: now.Add(-24 * time.Hour), Read: true},
		{ID: "notif4", Kind: KindCredit, Title: "Credit Score Updated",
			Message: "Your credit score increased to 750. Great job!", At: now.Add(-48 * time.Hour), Read: true},
		{ID: "notif5", Kind: KindAlert, Title: "High Credit Utilization",
			Message: "You're using 92% of your credit limit on ICICI Bank card", At: now.Add(-72 * time.Hour), Read: true},
	}
}

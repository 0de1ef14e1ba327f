package models

// Theme is the display theme flag carried in the app state.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// AppState is the aggregate root of the ledger.
//
// Cards are kept in insertion order. Transactions and SplitBills are kept
// newest first.
type AppState struct {
	Cards        []Card
	Transactions []Transaction
	SplitBills   []SplitBill
	Theme        Theme
}

// Clone returns a deep copy of the state. Decimal values are immutable, so
// copying the structs is enough for everything except participant slices.
func (s *AppState) Clone() *AppState {
	if s == nil {
		return &AppState{Theme: ThemeDark}
	}
	out := &AppState{
		Cards:        append([]Card(nil), s.Cards...),
		Transactions: append([]Transaction(nil), s.Transactions...),
		SplitBills:   make([]SplitBill, len(s.SplitBills)),
		Theme:        s.Theme,
	}
	for i, b := range s.SplitBills {
		b.Participants = append([]Participant(nil), b.Participants...)
		out.SplitBills[i] = b
	}
	return out
}

// FindCard returns the index of the card with the given ID, or -1.
func (s *AppState) FindCard(id string) int {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// FindSplitBill returns the split bill with the given ID.
func (s *AppState) FindSplitBill(id string) (SplitBill, bool) {
	for _, b := range s.SplitBills {
		if b.ID == id {
			return b, true
		}
	}
	return SplitBill{}, false
}

package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/models"
	"github.com/mmynk/cardledger/internal/seed"
)

var now = time.Date(2024, 10, 4, 10, 0, 0, 0, time.UTC)

func rs(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func validCard() CardInput {
	return CardInput{
		BankName:       "Axis Bank",
		CardNumber:     "4111 1111 1111 4242",
		CardholderName: "Jane Roe",
		ExpiryDate:     "09/29",
		CVV:            "123",
		CreditLimit:    "60000",
	}
}

func assertBalanced(t *testing.T, state *models.AppState) {
	t.Helper()
	for _, c := range state.Cards {
		assert.True(t, c.Available.Add(c.Outstanding).Equal(c.CreditLimit),
			"card %s: available %s + outstanding %s != limit %s", c.ID, c.Available, c.Outstanding, c.CreditLimit)
		assert.False(t, c.Outstanding.IsNegative(), "card %s outstanding negative", c.ID)
		assert.False(t, c.Outstanding.GreaterThan(c.CreditLimit), "card %s outstanding above limit", c.ID)
	}
}

func TestAddCard(t *testing.T) {
	state := seed.State(models.ThemeDark)

	next, card, err := AddCard(state, validCard(), now)
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.Len(t, state.Cards, 3, "input snapshot must not change")
	require.Len(t, next.Cards, 4)
	assert.Equal(t, *card, next.Cards[3])

	assert.NotEmpty(t, card.ID)
	assert.Equal(t, "**** **** **** 4242", card.MaskedNumber)
	assert.Equal(t, "JANE ROE", card.CardholderName)
	assert.Equal(t, models.CardActive, card.Status)
	assert.True(t, card.Outstanding.IsZero())
	assert.True(t, card.Available.Equal(rs(60000)))
	assert.True(t, card.CreditLimit.Equal(rs(60000)))
	assert.Equal(t, "2024-10-04", card.LastUsed)
	assert.Equal(t, Palette[3], card.Color)
	assertBalanced(t, next)
}

func TestAddCard_ShortCardNumber(t *testing.T) {
	state := seed.State(models.ThemeDark)
	in := validCard()
	in.CardNumber = "12345"

	next, card, err := AddCard(state, in, now)

	require.Error(t, err)
	assert.Nil(t, card)
	assert.Same(t, state, next)
	assert.Len(t, next.Cards, 3)

	var fields apperrors.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, apperrors.FieldErrors{"cardNumber": "Invalid card number"}, fields)
}

func TestAddCard_CollectsEveryField(t *testing.T) {
	in := CardInput{
		BankName:       "A",
		CardNumber:     "abcd",
		CardholderName: " ",
		ExpiryDate:     "13/25",
		CVV:            "12a",
		CreditLimit:    "999",
	}

	_, _, err := AddCard(seed.Empty(models.ThemeDark), in, now)

	var fields apperrors.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, apperrors.FieldErrors{
		"bankName":       "Bank name is required",
		"cardNumber":     "Invalid card number",
		"cardholderName": "Cardholder name is required",
		"expiryDate":     "Format: MM/YY",
		"cvv":            "CVV must be 3 digits",
		"creditLimit":    "Invalid credit limit",
	}, fields)
}

func TestAddCard_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*CardInput)
		field string
	}{
		{"expiry month zero", func(c *CardInput) { c.ExpiryDate = "00/27" }, "expiryDate"},
		{"expiry without slash", func(c *CardInput) { c.ExpiryDate = "1227" }, "expiryDate"},
		{"seventeen digits", func(c *CardInput) { c.CardNumber = "41111111111111111" }, "cardNumber"},
		{"cvv four digits", func(c *CardInput) { c.CVV = "1234" }, "cvv"},
		{"fractional limit", func(c *CardInput) { c.CreditLimit = "1500.50" }, "creditLimit"},
		{"limit not a number", func(c *CardInput) { c.CreditLimit = "lots" }, "creditLimit"},
		{"limit past int64", func(c *CardInput) { c.CreditLimit = "18446744073709552616" }, "creditLimit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCard()
			tt.edit(&in)
			_, _, err := AddCard(seed.Empty(models.ThemeDark), in, now)

			var fields apperrors.FieldErrors
			require.ErrorAs(t, err, &fields)
			assert.Len(t, fields, 1)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestAddCard_MinimumLimitAccepted(t *testing.T) {
	in := validCard()
	in.CreditLimit = "1,000"

	_, card, err := AddCard(seed.Empty(models.ThemeDark), in, now)
	require.NoError(t, err)
	assert.True(t, card.CreditLimit.Equal(rs(1000)))
}

func TestRemoveCard_Idempotent(t *testing.T) {
	state := seed.State(models.ThemeDark)

	once := RemoveCard(state, "card2")
	twice := RemoveCard(once, "card2")

	assert.Len(t, state.Cards, 3)
	require.Len(t, once.Cards, 2)
	assert.Same(t, once, twice)
	assert.Equal(t, "card1", once.Cards[0].ID)
	assert.Equal(t, "card3", once.Cards[1].ID)
}

func TestRemoveCard_Absent(t *testing.T) {
	state := seed.State(models.ThemeDark)
	assert.Same(t, state, RemoveCard(state, "nope"))
}

func TestToggleFreeze(t *testing.T) {
	state := seed.State(models.ThemeDark)

	frozen := ToggleFreeze(state, "card1")
	assert.Equal(t, models.CardFrozen, frozen.Cards[0].Status)
	assert.Equal(t, models.CardActive, state.Cards[0].Status)
	assert.True(t, frozen.Cards[0].Outstanding.Equal(state.Cards[0].Outstanding))

	thawed := ToggleFreeze(frozen, "card1")
	assert.Equal(t, models.CardActive, thawed.Cards[0].Status)

	assert.Same(t, state, ToggleFreeze(state, "nope"))
}

func TestMakePayment(t *testing.T) {
	state := seed.State(models.ThemeDark)

	next, err := MakePayment(state, "card1", rs(2450))
	require.NoError(t, err)

	assert.True(t, next.Cards[0].Outstanding.Equal(rs(10000)))
	assert.True(t, next.Cards[0].Available.Equal(rs(90000)))
	assert.True(t, state.Cards[0].Outstanding.Equal(rs(12450)), "input snapshot must not change")
	assertBalanced(t, next)
}

func TestMakePayment_FullOutstanding(t *testing.T) {
	state := seed.State(models.ThemeDark)

	next, err := MakePayment(state, "card2", rs(18200))
	require.NoError(t, err)

	assert.True(t, next.Cards[1].Outstanding.IsZero())
	assert.True(t, next.Cards[1].Available.Equal(next.Cards[1].CreditLimit))
}

func TestMakePayment_FrozenCard(t *testing.T) {
	next, err := MakePayment(seed.State(models.ThemeDark), "card3", rs(630))
	require.NoError(t, err)
	assert.True(t, next.Cards[2].Outstanding.Equal(rs(14000)))
}

func TestMakePayment_Fractional(t *testing.T) {
	next, err := MakePayment(seed.State(models.ThemeDark), "card1", decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	assert.True(t, next.Cards[0].Outstanding.Equal(decimal.RequireFromString("12449.90")))
	assertBalanced(t, next)
}

func TestMakePayment_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		cardID  string
		amount  decimal.Decimal
		wantErr error
	}{
		{"exceeds outstanding", "card1", rs(20000), apperrors.ErrExceedsOutstanding},
		{"unknown card", "card9", rs(100), apperrors.ErrCardNotFound},
		{"zero amount", "card1", decimal.Zero, apperrors.ErrInvalidAmount},
		{"negative amount", "card1", rs(-5), apperrors.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := seed.State(models.ThemeDark)
			before := state.Clone()

			next, err := MakePayment(state, tt.cardID, tt.amount)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Same(t, state, next)
			assert.Equal(t, before, state)
		})
	}
}

func TestMakePayment_ZeroOutstanding(t *testing.T) {
	state, _, err := AddCard(seed.Empty(models.ThemeDark), validCard(), now)
	require.NoError(t, err)

	_, err = MakePayment(state, state.Cards[0].ID, rs(1))
	assert.ErrorIs(t, err, apperrors.ErrExceedsOutstanding)
}

func TestBalanceConservedAcrossSession(t *testing.T) {
	state := seed.State(models.ThemeDark)
	var err error

	state, _, err = AddCard(state, validCard(), now)
	require.NoError(t, err)
	state = ToggleFreeze(state, "card2")
	state, err = MakePayment(state, "card2", rs(200))
	require.NoError(t, err)
	state, err = MakePayment(state, "card3", decimal.RequireFromString("14629.99"))
	require.NoError(t, err)
	_, err = MakePayment(state, "card1", rs(999999))
	require.Error(t, err)
	state = RemoveCard(state, "card1")

	assertBalanced(t, state)
}

func TestQuickPayAmounts(t *testing.T) {
	got := QuickPayAmounts(seed.Cards()[0])

	require.Len(t, got, 3)
	assert.True(t, got[0].Equal(rs(3113)), "quarter %s", got[0])
	assert.True(t, got[1].Equal(rs(6225)), "half %s", got[1])
	assert.True(t, got[2].Equal(rs(12450)), "full %s", got[2])
}

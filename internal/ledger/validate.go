package ledger

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/cardledger/internal/apperrors"
	"github.com/mmynk/cardledger/internal/money"
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
)

// cardForm is the normalized add-card form the validator runs against.
type cardForm struct {
	BankName       string `json:"bankName" validate:"min=2"`
	CardNumber     string `json:"cardNumber" validate:"len=16"`
	CardholderName string `json:"cardholderName" validate:"min=2"`
	ExpiryDate     string `json:"expiryDate" validate:"expiry"`
	CVV            string `json:"cvv" validate:"cvv"`
	CreditLimit    int64  `json:"creditLimit" validate:"gte=1000"`
}

var fieldMessages = map[string]string{
	"bankName":       "Bank name is required",
	"cardNumber":     "Invalid card number",
	"cardholderName": "Cardholder name is required",
	"expiryDate":     "Format: MM/YY",
	"cvv":            "CVV must be 3 digits",
	"creditLimit":    "Invalid credit limit",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "cvv", func(fl validator.FieldLevel) bool {
		return cvvPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// normalizeCard trims the text fields, strips everything but digits from the
// card number and parses the credit limit. An unparseable limit becomes 0 so
// the validator reports it with the other fields.
func normalizeCard(in CardInput) cardForm {
	form := cardForm{
		BankName:       strings.TrimSpace(in.BankName),
		CardNumber:     digitsOnly(in.CardNumber),
		CardholderName: strings.TrimSpace(in.CardholderName),
		ExpiryDate:     strings.TrimSpace(in.ExpiryDate),
		CVV:            strings.TrimSpace(in.CVV),
	}
	if limit, err := money.ParseWholeAmount(in.CreditLimit); err == nil {
		form.CreditLimit = limit
	}
	return form
}

// validateCard collects every field violation into apperrors.FieldErrors.
func validateCard(form cardForm) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(apperrors.FieldErrors, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		fields[fe.Field()] = msg
	}
	return fields
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

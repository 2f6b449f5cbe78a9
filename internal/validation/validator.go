package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Error is a single user-facing validation failure. Checkout surfaces only
// the first violation, never an aggregate.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

var digitsOnly = regexp.MustCompile(`^\d+$`)

// CheckoutValidator validates checkout submissions. The clock is injectable
// so expiry tests do not depend on the wall clock.
type CheckoutValidator struct {
	v       *validatorv10.Validate
	nowFunc func() time.Time
}

func NewCheckoutValidator() *CheckoutValidator {
	cv := &CheckoutValidator{nowFunc: time.Now}

	v := validatorv10.New()
	if err := v.RegisterValidation("cardnumber", validCardNumber); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("cvv", validCVV); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(cv.checkoutStructValidation, CheckoutRequest{})
	cv.v = v
	return cv
}

// Validate returns nil or the first violation as an *Error, in form order:
// required fields, then email, phone, card number, expiry, CVV.
func (cv *CheckoutValidator) Validate(req CheckoutRequest) error {
	err := cv.v.Struct(req)
	if err == nil {
		return nil
	}
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return &Error{Field: "form", Message: "Geçersiz form verisi"}
	}

	failed := map[string]string{}
	for _, fe := range ve {
		if _, seen := failed[fe.StructField()]; !seen {
			failed[fe.StructField()] = fe.Tag()
		}
	}

	for _, field := range []string{
		"FirstName", "LastName", "Email", "PhoneCountry", "Phone",
		"Address", "CardName", "CardNumber", "ExpiryDate", "CVV",
	} {
		tag, ok := failed[field]
		if !ok {
			continue
		}
		return &Error{Field: field, Message: cv.message(req, field, tag)}
	}
	// unreachable unless a new field is added without a message
	fe := ve[0]
	return &Error{Field: fe.StructField(), Message: fe.Error()}
}

func (cv *CheckoutValidator) message(req CheckoutRequest, field, tag string) string {
	if tag == "required" {
		return "Lütfen tüm zorunlu alanları doldurunuz"
	}
	switch field {
	case "Email":
		return "Geçerli bir e-posta adresi giriniz"
	case "Phone", "PhoneCountry":
		if req.PhoneCountry == "+90" {
			return "Türkiye için telefon numarası 5 ile başlamalı ve 10 haneli olmalıdır"
		}
		if country := FindPhoneCountry(req.PhoneCountry); country != nil {
			return fmt.Sprintf("Telefon numarası %d haneli olmalıdır", country.Length)
		}
		return "Geçerli bir telefon numarası giriniz"
	case "CardNumber":
		return "Geçerli bir kart numarası giriniz (16 hane)"
	case "ExpiryDate":
		return "Geçerli bir son kullanma tarihi giriniz (AA/YY)"
	case "CVV":
		return "CVV 3 haneli olmalıdır"
	}
	return "Geçersiz form verisi"
}

// validCardNumber requires exactly 16 digits once spaces are stripped.
func validCardNumber(fl validatorv10.FieldLevel) bool {
	n := strings.ReplaceAll(fl.Field().String(), " ", "")
	return len(n) == 16 && digitsOnly.MatchString(n)
}

// validCVV requires exactly 3 digits.
func validCVV(fl validatorv10.FieldLevel) bool {
	cvv := fl.Field().String()
	return len(cvv) == 3 && digitsOnly.MatchString(cvv)
}

// checkoutStructValidation covers the rules that need more than one field:
// phone length per dialing code and card expiry against the current month.
func (cv *CheckoutValidator) checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	if req.Phone != "" && !validPhone(req.Phone, req.PhoneCountry) {
		sl.ReportError(req.Phone, "phone", "Phone", "phone", "")
	}
	if req.ExpiryDate != "" && !cv.validExpiry(req.ExpiryDate) {
		sl.ReportError(req.ExpiryDate, "expiryDate", "ExpiryDate", "expiry", "")
	}
}

func validPhone(phone, countryCode string) bool {
	country := FindPhoneCountry(countryCode)
	if country == nil {
		return false
	}
	clean := strings.ReplaceAll(phone, " ", "")
	if !digitsOnly.MatchString(clean) || len(clean) != country.Length {
		return false
	}
	if countryCode == "+90" {
		return strings.HasPrefix(clean, "5")
	}
	return true
}

// validExpiry accepts MM/YY with a month of 01-12 that is not in the past.
func (cv *CheckoutValidator) validExpiry(date string) bool {
	if len(date) != 5 || date[2] != '/' {
		return false
	}
	mm, yy := date[:2], date[3:]
	if !digitsOnly.MatchString(mm) || !digitsOnly.MatchString(yy) {
		return false
	}
	month := int(mm[0]-'0')*10 + int(mm[1]-'0')
	year := int(yy[0]-'0')*10 + int(yy[1]-'0')
	if month < 1 || month > 12 {
		return false
	}

	now := cv.nowFunc()
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear {
		return false
	}
	if year == curYear && month < curMonth {
		return false
	}
	return true
}

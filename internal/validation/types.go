package validation

// CheckoutRequest is the payload for POST /api/checkout. Field-level rules
// live in the tags; phone and expiry need context and are checked at struct
// level.
type CheckoutRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneCountry string `json:"phoneCountry" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	CardName     string `json:"cardName" validate:"required"`
	CardNumber   string `json:"cardNumber" validate:"required,cardnumber"`
	ExpiryDate   string `json:"expiryDate" validate:"required"`
	CVV          string `json:"cvv" validate:"required,cvv"`
}

// PhoneCountry describes one supported dialing code.
type PhoneCountry struct {
	Code   string
	Name   string
	Length int
}

// PhoneCountries lists the dialing codes checkout accepts. Türkiye gets the
// extra mobile-prefix rule (numbers start with 5).
var PhoneCountries = []PhoneCountry{
	{Code: "+90", Name: "Türkiye", Length: 10},
	{Code: "+1", Name: "ABD/Kanada", Length: 10},
	{Code: "+44", Name: "İngiltere", Length: 10},
	{Code: "+49", Name: "Almanya", Length: 10},
	{Code: "+33", Name: "Fransa", Length: 9},
}

// FindPhoneCountry returns nil for an unsupported code.
func FindPhoneCountry(code string) *PhoneCountry {
	for i := range PhoneCountries {
		if PhoneCountries[i].Code == code {
			return &PhoneCountries[i]
		}
	}
	return nil
}

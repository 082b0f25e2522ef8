package validation

import "strings"

// Checkout form field keys and their user-facing messages.
const (
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldLastName  = "lastName"
	FieldFirstName = "firstName"

	msgEmailRequired  = "Поле Email обов'язкове"
	msgEmailInvalid   = "Введіть дійсну поштову адресу"
	msgPhoneRequired  = "Поле телефон обов'язкове"
	msgPhoneInvalid   = "Введіть дійсний номер мобільного телефону отримувача (мінімум 10 цифр)"
	msgLastNameEmpty  = "Введіть прізвище отримувача"
	msgFirstNameEmpty = "Введіть ім'я отримувача"
)

// CheckoutForm holds the fields the checkout action is gated on.
type CheckoutForm struct {
	Email     string
	Phone     string
	LastName  string
	FirstName string
}

// ValidateCheckoutForm produces the per-field error map: empty fields get a
// required-field error, non-empty email/phone failing their syntax checks
// get a format error. Checkout proceeds only when the map is empty.
func ValidateCheckoutForm(form CheckoutForm) map[string]string {
	errs := make(map[string]string)

	switch {
	case strings.TrimSpace(form.Email) == "":
		errs[FieldEmail] = msgEmailRequired
	case !ValidateEmail(form.Email):
		errs[FieldEmail] = msgEmailInvalid
	}

	switch {
	case strings.TrimSpace(form.Phone) == "":
		errs[FieldPhone] = msgPhoneRequired
	case !ValidatePhone(form.Phone):
		errs[FieldPhone] = msgPhoneInvalid
	}

	if strings.TrimSpace(form.LastName) == "" {
		errs[FieldLastName] = msgLastNameEmpty
	}

	if strings.TrimSpace(form.FirstName) == "" {
		errs[FieldFirstName] = msgFirstNameEmpty
	}

	return errs
}

// Package validation contains the client-side form checks and input
// filters of the storefront. Everything here is advisory syntax checking:
// the hosted backend remains the authority on what it accepts.
package validation

import "regexp"

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// ValidateEmail reports whether the string is shaped like local@domain.tld.
// It says nothing about deliverability.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePhone reports whether the digit-only representation of the phone
// number has at least 10 digits.
func ValidatePhone(phone string) bool {
	return len(nonDigitRe.ReplaceAllString(phone, "")) >= 10
}

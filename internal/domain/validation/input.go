package validation

import (
	"regexp"
	"strings"
)

const (
	phonePrefix  = "+38"
	maxNameRunes = 50
	// A Ukrainian mobile number carries 12 significant digits: 38 0XX XXX XX XX.
	maxPhoneDigits = 12
)

var (
	emailInputRe = regexp.MustCompile(`[^a-zA-Z0-9@._+-]`)
	// Cyrillic letters including the Ukrainian іІєЄґҐ, apostrophe variants,
	// space and hyphen.
	nameInputRe = regexp.MustCompile(`[^а-яА-ЯіІєЄґҐ'ʼ\s-]`)
)

// FilterEmailInput strips characters that can never appear in an email
// address, so invalid characters never enter the field.
func FilterEmailInput(value string) string {
	return emailInputRe.ReplaceAllString(value, "")
}

// FormatPhoneInput enforces the +38 0XX XXX XX XX mask while the user
// types: the +38 prefix is mandatory, non-digits are stripped, digits are
// truncated to 12, and space separators re-inserted at fixed offsets.
func FormatPhoneInput(value string) string {
	if value == "" {
		return phonePrefix + " "
	}

	// Edits that drop the mandatory prefix are rejected as-is; the caller
	// keeps the previous value on screen.
	if !strings.HasPrefix(value, phonePrefix) {
		return value
	}

	digits := nonDigitRe.ReplaceAllString(value, "")
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}

	var formatted strings.Builder
	formatted.WriteString(phonePrefix)
	if len(digits) > 2 {
		formatted.WriteString(" " + digits[2:min(5, len(digits))])
	}
	if len(digits) > 5 {
		formatted.WriteString(" " + digits[5:min(8, len(digits))])
	}
	if len(digits) > 8 {
		formatted.WriteString(" " + digits[8:min(10, len(digits))])
	}
	if len(digits) > 10 {
		formatted.WriteString(" " + digits[10:min(12, len(digits))])
	}

	return formatted.String()
}

// FilterNameInput strips characters outside Cyrillic letters, apostrophes,
// space and hyphen, and truncates to 50 characters.
func FilterNameInput(value string) string {
	filtered := []rune(nameInputRe.ReplaceAllString(value, ""))
	if len(filtered) > maxNameRunes {
		filtered = filtered[:maxNameRunes]
	}

	return string(filtered)
}

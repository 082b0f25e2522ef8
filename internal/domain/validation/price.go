package validation

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySuffix = " грн"

var pricePrinter = message.NewPrinter(language.Ukrainian)

// FormatPrice renders a price with locale-aware thousands grouping and the
// fixed hryvnia suffix.
func FormatPrice(price float64) string {
	return pricePrinter.Sprint(number.Decimal(price)) + currencySuffix
}

// FormatPriceString renders a numeric string the same way. A string that
// does not parse as a number is passed through with the suffix attached.
func FormatPriceString(price string) string {
	parsed, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return price + currencySuffix
	}

	return FormatPrice(parsed)
}

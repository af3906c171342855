package cmd

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatDecimal renders value with the separators of locale. A negative
// decimals keeps the default precision.
func formatDecimal(locale string, value float64, decimals int) string {
	var opts []number.Option
	if decimals >= 0 {
		opts = append(opts, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals))
	}
	return message.NewPrinter(language.Make(locale)).Sprintf("%v", number.Decimal(value, opts...))
}

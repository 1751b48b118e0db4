// Package document defines the document data model shared by every renderer:
// line items, sections, party details, currency formatting and the totals
// calculator.
package document

import (
	"fmt"
	"strings"
)

// Currency is a supported currency code. The set is closed; passing any
// other value to CurrencyInfo is a programmer error.
type Currency string

const (
	SAR Currency = "SAR"
	USD Currency = "USD"
	EUR Currency = "EUR"
	AED Currency = "AED"
)

// CurrencyDetails describes how a currency is displayed.
type CurrencyDetails struct {
	Symbol string
	Name   string
}

var currencies = map[Currency]CurrencyDetails{
	SAR: {Symbol: "SR", Name: "Saudi Riyal"},
	USD: {Symbol: "$", Name: "US Dollar"},
	EUR: {Symbol: "EUR", Name: "Euro"},
	AED: {Symbol: "AED", Name: "UAE Dirham"},
}

// CurrencyInfo returns the display details for a supported currency code.
// It panics on an unknown code: currency values reach this point only
// through the closed Currency enum, so an unknown code is a bug in the
// caller, not a runtime condition to recover from.
func CurrencyInfo(c Currency) CurrencyDetails {
	d, ok := currencies[c]
	if !ok {
		panic(fmt.Sprintf("document: unsupported currency code %q", c))
	}
	return d
}

// Valid reports whether c is one of the supported currency codes.
func (c Currency) Valid() bool {
	_, ok := currencies[c]
	return ok
}

// FormatAmount formats a monetary value with exactly two decimal places and
// comma thousands grouping. Grouping is fixed (en-US style) so output is
// deterministic regardless of the host locale.
func FormatAmount(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatCurrency formats a monetary value followed by the textual currency
// code. A text suffix is used instead of a symbol glyph so the output never
// depends on glyph availability in the rendering backend's fonts.
func FormatCurrency(amount float64, c Currency) string {
	CurrencyInfo(c) // fail fast on unknown codes
	return FormatAmount(amount) + " " + string(c)
}

// groupThousands inserts commas into an integer string every three digits
// from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// Package money converts between integer cents and pt-BR display strings
// (comma decimal separator, dot thousands separator).
package money

import (
	"math"
	"strconv"
	"strings"
)

// CentsToDisplay formats an amount in cents as "1.234,56".
// Negative amounts keep their sign in front of the grouped digits.
func CentsToDisplay(cents int64) string {
	return FormatAmount(float64(cents) / 100)
}

// FormatAmount formats a currency amount with exactly two decimal digits.
// NaN and infinite values format as "0,00" rather than failing, so the UI
// stays responsive during incremental form entry.
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0,00"
	}

	negative := amount < 0
	// Round away from the float noise before splitting digits.
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	out := grouped.String() + "," + pad2(frac)
	if negative && cents > 0 {
		out = "-" + out
	}
	return out
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// DisplayToCents parses a pt-BR currency string ("R$ 1.234,56") into cents.
// Returns ok=false for empty or unparseable input so callers can distinguish
// "no value entered" from an explicit zero.
func DisplayToCents(text string) (int64, bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	// Thousands separator out, decimal comma in.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return int64(math.Round(value * 100)), true
}

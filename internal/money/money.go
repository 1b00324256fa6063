// Package money handles euro amounts for the dealership. Amounts are
// stored as int64 cents everywhere; decimal arithmetic is confined to the
// parse and rounding boundaries. Formatting is fixed to the pt-PT locale,
// reflecting the single-market deployment.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrNotANumber means a monetary field did not parse to a positive amount.
var ErrNotANumber = errors.New("not a number")

var printer = message.NewPrinter(language.EuropeanPortuguese)

// ParseAmount parses a raw monetary field into cents. Currency symbols and
// whitespace are stripped; both "," and "." are accepted as decimal
// separator ("1.234,56" and "1234.56" parse to the same value). Amount
// fields in this domain are never zero or negative, so those fail too.
func ParseAmount(raw string) (int64, error) {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '€' || r == ' ' || r == '\t' || r == ' ':
			return -1
		}

		return r
	}, strings.TrimSpace(raw))

	if clean == "" {
		return 0, fmt.Errorf("%w: empty value", ErrNotANumber)
	}

	switch {
	case strings.Contains(clean, ","):
		// Comma is the decimal separator; any dots are grouping.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case strings.Count(clean, ".") > 1:
		// Multiple dots with no comma can only be grouping.
		clean = strings.ReplaceAll(clean, ".", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrNotANumber)
	}

	return cents, nil
}

// SplitEvenCents divides total cents into count equal parts, rounding half
// away from zero to whole cents. The remainder after rounding is NOT
// redistributed: count * result may drift from total by a few cents, which
// matches how installments are computed on the contract forms.
func SplitEvenCents(total int64, count int) int64 {
	if count <= 0 {
		return 0
	}

	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(int64(count))).
		Round(0).
		IntPart()
}

// FormatEUR renders cents as a pt-PT currency string with exactly two
// fraction digits and a trailing euro sign, e.g. "12 345,50 €".
func FormatEUR(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return printer.Sprintf("%s%v,%02d €", sign, number.Decimal(cents/100), cents%100)
}

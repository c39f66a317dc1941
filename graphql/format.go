package graphql

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DateFormat is the layout of every date field.
const DateFormat = "2006-01-02T15:04:05"

// FormatRaw is the PricingFieldFormatEnum value for unformatted prices.
const FormatRaw = "RAW"

var printer = message.NewPrinter(language.English)

// PriceFormat renders amounts for display.
type PriceFormat struct {
	Symbol   string
	Decimals int
}

// Format renders v with the currency symbol, grouping and fixed decimals.
func (f PriceFormat) Format(v float64) string {
	return f.Symbol + printer.Sprint(number.Decimal(v, number.Scale(f.Decimals)))
}

// Raw renders v as a plain decimal string.
func Raw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Price renders an optional amount. RAW selects the plain form.
func (f PriceFormat) Price(v *float64, format *string) *string {
	if v == nil {
		return nil
	}
	var s string
	if format != nil && strings.EqualFold(*format, FormatRaw) {
		s = Raw(*v)
	} else {
		s = f.Format(*v)
	}
	return &s
}

// Range renders "min - max", or a single price when both are equal.
func (f PriceFormat) Range(min, max float64, format *string) *string {
	lo := f.Price(&min, format)
	if min == max {
		return lo
	}
	s := *lo + " - " + *f.Price(&max, format)
	return &s
}

// Date renders an optional time.
func Date(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(DateFormat)
	return &s
}

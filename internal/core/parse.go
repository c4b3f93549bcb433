package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SheetDateFormat is the layout used when writing dates to the sheet.
const SheetDateFormat = "02-01-2006"

// dateFormats are tried in order; the first layout that parses wins.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
}

// ParseError reports an invalid user-supplied field value. It is
// produced before any remote call is made.
type ParseError struct {
	Field   string
	Value   string
	Formats []string
}

func (e *ParseError) Error() string {
	if len(e.Formats) == 0 {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q, supported formats: %s",
		e.Field, e.Value, strings.Join(e.Formats, " "))
}

// ParseDate parses a date in one of the supported layouts. The same
// calendar date is recovered regardless of which layout was used.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, &ParseError{Field: "date", Value: s, Formats: dateFormats}
}

// ParseAmount parses a non-negative decimal amount. Decimal arithmetic
// avoids floating point rounding in currency math.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero, &ParseError{Field: "amount", Value: s}
	}
	return d, nil
}

// MonthNumber resolves a full English month name or its three letter
// abbreviation, case-insensitive, to its 1-indexed number.
func MonthNumber(name string) (time.Month, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if n == full || n == full[:3] {
			return m, true
		}
	}
	return 0, false
}

// Today returns today's date formatted for the sheet.
func Today() string {
	return time.Now().Format(SheetDateFormat)
}

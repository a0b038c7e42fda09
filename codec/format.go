package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WireTimeLayout is the timestamp layout used by the dataset.
// Note the space between the seconds and the UTC offset.
const WireTimeLayout = "2006-01-02T15:04:05 -07:00"

// Layouts accepted when decoding, tried in order.
var timeLayouts = []string{
	WireTimeLayout,
	time.RFC3339, // also accepts fractional seconds when parsing
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05", // no offset, read as UTC
}

var currencyStripper = strings.NewReplacer("$", "", ",", "")

// ParseCurrency parses a currency string such as "$2,418.59" into an exact decimal.
// Every currency symbol and digit-group separator is stripped before parsing.
func ParseCurrency(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(currencyStripper.Replace(s))
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %w", ErrInvalidCurrency, s, err)
	}
	return d, nil
}

// FormatCurrency renders d the way the dataset writes balances:
// a dollar sign, comma-grouped whole part and exactly two fraction digits.
// Negative amounts render as "-$1,234.50".
func FormatCurrency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.Grow(len(fixed) + len(whole)/3 + 2)
	b.WriteString(sign)
	b.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// ParseTimestamp parses a dataset timestamp, keeping its UTC offset.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// FormatTimestamp renders t in WireTimeLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(WireTimeLayout)
}

package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatValue renders a raw numeric field as a decimal of exactly the given
// scale, using ',' as the decimal separator and, when thousands is set, '.'
// as the grouping separator.
//
// Two encodings are understood. "zamount" carries an implicit decimal point:
// the rightmost places digits are the fraction. "amount" and "numeric" carry
// explicit Latin separators: '.' for grouping and ',' for the decimal point;
// an "amount" with zero declared places falls back to the legacy default of
// two. Any other kind returns the trimmed raw value.
//
// The formatter never fails: blank input renders as zero at the requested
// scale, and text that does not parse as a decimal is returned unchanged.
func FormatValue(raw, kind string, thousands bool, places int) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if places > 0 {
			return "0,00"
		}
		return "0"
	}

	var canonical string

	switch strings.ToLower(kind) {
	case "zamount":
		num := trimmed
		// Left-pad until at least one integer digit remains.
		if len(num) < places {
			num = strings.Repeat("0", places-len(num)+1) + num
		}
		dot := len(num) - places
		intPart := strings.TrimLeft(num[:dot], "0")
		if intPart == "" {
			intPart = "0"
		}
		canonical = intPart + "." + num[dot:]

	case "amount", "numeric":
		canonical = strings.ReplaceAll(trimmed, ".", "")
		canonical = strings.ReplaceAll(canonical, ",", ".")
		if !strings.Contains(canonical, ".") && places > 0 {
			canonical += "." + strings.Repeat("0", places)
		}
		// Amounts default to 2 decimal places when unspecified; plain
		// numerics keep a scale of 0.
		if places == 0 && strings.ToLower(kind) == "amount" {
			places = 2
		}

	default:
		return trimmed
	}

	d, err := decimal.NewFromString(canonical)
	if err != nil {
		// Best-effort policy: malformed values pass through untouched.
		return raw
	}

	fixed := d.StringFixed(int32(places))
	if !thousands {
		return strings.Replace(fixed, ".", ",", 1)
	}
	return groupThousands(fixed)
}

// groupThousands reformats a canonical "-1234567.89" into "-1.234.567,89".
// A value without a fractional part keeps the legacy ",00" suffix.
func groupThousands(fixed string) string {
	intPart, fracPart, found := strings.Cut(fixed, ".")
	if !found {
		fracPart = "00"
	}

	negative := strings.HasPrefix(intPart, "-")
	digits := strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(digits[i])
	}

	grouped := b.String()
	if negative {
		grouped = "-" + grouped
	}
	return grouped + "," + fracPart
}

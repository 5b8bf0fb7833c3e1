package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount extracts the numeric value from a currency-formatted string
// such as "Rp1.234.567" or "$1,234.56". All characters outside [0-9.-] are
// stripped first, then the longest leading run that still reads as a number
// is converted, so a dot-grouped Rupiah string yields the same value the
// dashboard has always shown. Unparseable input yields 0, never an error.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	stripped := b.String()

	end := 0
	seenDot := false
	seenDigit := false
	for i, r := range stripped {
		switch {
		case r == '-':
			if i != 0 {
				goto done
			}
		case r == '.':
			if seenDot {
				goto done
			}
			seenDot = true
		default:
			seenDigit = true
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(stripped[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatIDR renders an amount as Indonesian Rupiah: "Rp" prefix, dot-grouped
// integer part, comma decimal separator with the currency's two subunits.
func FormatIDR(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sRp%s,%02d", sign, b.String(), cents)
}

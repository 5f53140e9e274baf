package money

import (
	"fmt"
	"math"
	"strings"
)

// Paise is a rupee amount stored in integer paise (1 rupee = 100 paise).
// All arithmetic in the application happens on this type; conversion to
// decimal rupees happens only at display/API boundaries.
type Paise int64

// FromRupees converts a decimal rupee amount to paise, rounding to the
// nearest paisa.
func FromRupees(r float64) Paise {
	return Paise(math.Round(r * 100))
}

// Rupees returns the amount as a decimal rupee value (for JSON responses).
func (p Paise) Rupees() float64 {
	return float64(p) / 100
}

// Split returns the whole-rupee part and the two-digit paise part.
func (p Paise) Split() (rupees int64, paise int64) {
	return int64(p) / 100, int64(p) % 100
}

// Format renders the amount as a grouped decimal string, e.g. "1,500.00".
func (p Paise) Format() string {
	neg := p < 0
	if neg {
		p = -p
	}
	rupees, paise := p.Split()

	digits := fmt.Sprintf("%d", rupees)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d", sign, b.String(), paise)
}

// FormatRupees renders the amount with the currency symbol, e.g. "Rs.1,500.00".
func (p Paise) FormatRupees() string {
	return "Rs." + p.Format()
}

// Package numword renders currency amounts as English words using the
// Indian grouping scale: hundreds, thousands and lakhs (1 lakh = 100,000).
package numword

import (
	"strconv"
	"strings"

	"github.com/saravanan/rentify-api/pkg/money"
)

var units = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

var teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// AmountInWords converts an amount to words, e.g.
// 150000 paise -> "One Thousand Five Hundred Rupees",
// 125050 paise -> "One Thousand Two Hundred Fifty Rupees and Fifty Paise".
// A zero rupee part renders as "Zero".
func AmountInWords(amount money.Paise) string {
	rupees, paise := amount.Split()

	var b strings.Builder
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(intToWords(rupees))
	}
	b.WriteString(" Rupees")

	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(twoDigits(paise))
		b.WriteString(" Paise")
	}
	return b.String()
}

func intToWords(n int64) string {
	switch {
	case n < 100:
		return twoDigits(n)
	case n < 1000:
		s := units[n/100] + " Hundred"
		if rem := n % 100; rem > 0 {
			s += " " + twoDigits(rem)
		}
		return s
	case n < 100000:
		s := intToWords(n/1000) + " Thousand"
		if rem := n % 1000; rem > 0 {
			s += " " + intToWords(rem)
		}
		return s
	default:
		s := intToWords(n/100000) + " Lakh"
		if rem := n % 100000; rem > 0 {
			s += " " + intToWords(rem)
		}
		return s
	}
}

func twoDigits(n int64) string {
	switch {
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		s := tens[n/10]
		if unit := n % 10; unit > 0 {
			s += " " + units[unit]
		}
		return s
	default:
		return strconv.FormatInt(n, 10)
	}
}

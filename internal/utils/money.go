package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRupees renders an integer fare with the rupee sign, e.g. "₹1,250".
func FormatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%s", sign, formatThousand(amount))
}

// FormatRupeesASCII is FormatRupees for outputs limited to Latin-1, such as
// the core PDF fonts.
func FormatRupeesASCII(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRs. %s", sign, formatThousand(amount))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

package service

import (
	"math"
	"strings"
)

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var magnitudes = []struct {
	value int64
	name  string
}{
	{10_000_000, "crore"},
	{100_000, "lakh"},
	{1_000, "thousand"},
	{100, "hundred"},
}

// Words converts a non-negative integer to English words using Indian
// numbering (crore/lakh/thousand/hundred). "and" joins only the final 1-99
// remainder to preceding groups, never the groups themselves.
func Words(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		return ""
	}

	var b strings.Builder
	rem := n
	for _, m := range magnitudes {
		if q := rem / m.value; q > 0 {
			b.WriteString(Words(q))
			b.WriteString(" ")
			b.WriteString(m.name)
			b.WriteString(" ")
			rem %= m.value
		}
	}

	if rem > 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		b.WriteString(below100(rem))
	}

	return strings.TrimSpace(b.String())
}

func below100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

// AmountInWords renders the legally required "amount in words" line: the
// rupee part of the amount in words, each word capitalized, suffixed with
// "Rupees Only". Paise are dropped, matching the printed bill.
func AmountInWords(amount float64) string {
	words := Words(int64(math.Floor(amount)))
	return capitalizeWords(words) + " Rupees Only"
}

func capitalizeWords(s string) string {
	parts := strings.Fields(s)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

package booking

import (
	"strconv"
	"strings"
)

// FormatRub renders an amount the way ru-RU locale does: 1500 -> "1 500 ₽".
func FormatRub(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String() + " ₽"
}

// SeatsWord picks the noun form used in cart messages.
func SeatsWord(n int) string {
	if n == 1 {
		return "место"
	}
	return "мест"
}

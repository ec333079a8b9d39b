// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with the currency symbol, comma
// grouping, and two decimals. e.g. 1234.5 -> "₦1,234.50".
// Negative amounts keep the sign ahead of the symbol: "-₦120.00".
func FormatMoney(symbol string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, FormatNumber(whole), cents)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDaysLeft renders an event's countdown the way the planner
// displays it: "3 day(s) to go", "0 day(s) to go" for today, or
// "happened already" once the date has passed.
func FormatDaysLeft(days int) string {
	if days < 0 {
		return "happened already"
	}
	return fmt.Sprintf("%d day(s) to go", days)
}

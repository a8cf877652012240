// Package format reproduces the dashboard's display conventions: "R"-prefixed
// currency with thousands separators, totals abbreviated to thousands, and
// en-ZA day month year dates.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const currencyPrefix = "R"

// Money renders an amount as R with comma thousands separators, e.g. R5,000.
// Whole amounts carry no decimals; fractional amounts are shown with two.
func Money(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	abs := amount.Abs()

	digits := 0
	if !abs.Equal(abs.Truncate(0)) {
		digits = 2
	}
	s := abs.StringFixed(int32(digits))

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	out := currencyPrefix + groupThousands(intPart) + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// MoneyThousands abbreviates a total to thousands with zero decimals,
// e.g. 125,400 -> "R125K".
func MoneyThousands(amount decimal.Decimal) string {
	thousands := amount.Div(decimal.NewFromInt(1000)).Round(0)
	return currencyPrefix + thousands.String() + "K"
}

// EmployeeCode renders the payslip employee code, e.g. EMP-0001.
func EmployeeCode(employeeID int) string {
	return fmt.Sprintf("EMP-%04d", employeeID)
}

// Percent renders an integer percent, e.g. "90%".
func Percent(value int) string {
	return fmt.Sprintf("%d%%", value)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

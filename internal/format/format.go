package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"debt-planner/internal/model"
)

var symbols = map[model.Currency]string{
	model.CurrencyGBP:    "£",
	model.CurrencyEUR:    "€",
	model.CurrencyUSD:    "$",
	model.CurrencyCustom: "¤",
}

// Round2 rounds half away from zero to two decimal places.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// Currency renders amount in the display currency, e.g. "£1,234.50".
// Amounts are held in the base unit; CUSTOM multiplies by fxRate for display only.
func Currency(amount float64, currency model.Currency, fxRate float64) string {
	return render(amount, currency, fxRate, 2)
}

// Whole is Currency rounded to whole units, e.g. "£10,000".
func Whole(amount float64, currency model.Currency, fxRate float64) string {
	return render(amount, currency, fxRate, 0)
}

func render(amount float64, currency model.Currency, fxRate float64, places int32) string {
	d := decimal.NewFromFloat(amount)
	if currency == model.CurrencyCustom {
		if fxRate <= 0 {
			fxRate = 1
		}
		d = d.Mul(decimal.NewFromFloat(fxRate))
	}
	sym, ok := symbols[currency]
	if !ok {
		sym = symbols[model.CurrencyGBP]
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole, frac, hasFrac := strings.Cut(d.StringFixed(places), ".")
	out := sign + sym + groupThousands(whole)
	if hasFrac {
		out += "." + frac
	}
	return out
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func Percent(value float64, decimals int) string {
	return decimal.NewFromFloat(value).StringFixed(int32(decimals)) + "%"
}

// Months renders a month count as years and months, e.g. "2 years, 3 months".
func Months(months int) string {
	if months < 1 {
		return "Less than 1 month"
	}
	if months == 1 {
		return "1 month"
	}
	years := months / 12
	rem := months % 12
	if years == 0 {
		return fmt.Sprintf("%d months", months)
	}
	yearStr := plural(years, "year")
	if rem == 0 {
		return yearStr
	}
	return yearStr + ", " + plural(rem, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// MonthYear renders e.g. "Mar 2027".
func MonthYear(t time.Time) string {
	return t.Format("Jan 2006")
}

// Date renders e.g. "5 March 2027".
func Date(t time.Time) string {
	return t.Format("2 January 2006")
}

// MonthsBetween counts calendar months from start to end, never negative.
func MonthsBetween(start, end time.Time) int {
	m := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if m < 0 {
		return 0
	}
	return m
}

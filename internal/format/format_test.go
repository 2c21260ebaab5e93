package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debt-planner/internal/model"
)

func TestCurrency(t *testing.T) {
	require.Equal(t, "£1,234.50", Currency(1234.5, model.CurrencyGBP, 1))
	require.Equal(t, "€0.99", Currency(0.99, model.CurrencyEUR, 1))
	require.Equal(t, "$1,000,000.00", Currency(1e6, model.CurrencyUSD, 1))
	require.Equal(t, "-£12.35", Currency(-12.345, model.CurrencyGBP, 1))
	require.Equal(t, "¤200.00", Currency(100, model.CurrencyCustom, 2))
	require.Equal(t, "£5.00", Currency(5, model.Currency(""), 1))
}

func TestRound2(t *testing.T) {
	require.Equal(t, 470.73, Round2(470.7347))
	require.Equal(t, 0.0, Round2(0.004))
}

func TestPercent(t *testing.T) {
	require.Equal(t, "24.90%", Percent(24.9, 2))
	require.Equal(t, "5.0%", Percent(5, 1))
}

func TestMonths(t *testing.T) {
	require.Equal(t, "Less than 1 month", Months(0))
	require.Equal(t, "1 month", Months(1))
	require.Equal(t, "11 months", Months(11))
	require.Equal(t, "1 year", Months(12))
	require.Equal(t, "2 years", Months(24))
	require.Equal(t, "1 year, 1 month", Months(13))
	require.Equal(t, "3 years, 5 months", Months(41))
}

func TestDates(t *testing.T) {
	d := time.Date(2027, time.March, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Mar 2027", MonthYear(d))
	require.Equal(t, "5 March 2027", Date(d))
	require.Equal(t, 14, MonthsBetween(time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), d))
	require.Equal(t, 0, MonthsBetween(d, d.AddDate(-1, 0, 0)))
}

func TestWhole(t *testing.T) {
	require.Equal(t, "£10,000", Whole(10000, model.CurrencyGBP, 1))
	require.Equal(t, "$600", Whole(599.6, model.CurrencyUSD, 1))
	require.Equal(t, "-€1,235", Whole(-1234.5, model.CurrencyEUR, 1))
}

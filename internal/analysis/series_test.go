package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debt-planner/internal/model"
	"debt-planner/internal/payoff"
)

var start = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestBalanceSeries(t *testing.T) {
	sum := payoff.Compare(twoDebts(), 100, start).Avalanche
	series := BalanceSeries(sum)

	require.Len(t, series, sum.MonthsToPayoff+1)
	require.Equal(t, 3000.0, series[0].Value)
	require.Equal(t, start, series[0].Date)
	require.Less(t, series[len(series)-1].Value, 0.02)
	for i := 1; i < len(series); i++ {
		require.LessOrEqual(t, series[i].Value, series[i-1].Value)
		require.Equal(t, i, series[i].Month)
	}
}

func TestBalanceSeriesStartsAtTotalRepayable(t *testing.T) {
	loan := model.Debt{
		ID:              "car",
		Name:            "Car loan",
		Type:            model.DebtTypeLoan,
		Balance:         1000,
		PaymentMode:     model.PaymentModeFixedTerm,
		FixedTermMonths: 12,
		TotalRepayable:  1200,
	}
	monthEnd := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	sum := payoff.Compare([]model.Debt{loan}, 0, monthEnd).Avalanche
	series := BalanceSeries(sum)

	require.Len(t, series, 13)
	require.Equal(t, monthEnd, series[0].Date)
	require.InDelta(t, 1200.0, series[0].Value, 1e-9)
	require.InDelta(t, 1100.0, series[1].Value, 1e-9)
	for i := 1; i < len(series); i++ {
		require.LessOrEqual(t, series[i].Value, series[i-1].Value)
	}
}

func TestCumulativeInterestSeries(t *testing.T) {
	sum := payoff.Compare(twoDebts(), 100, start).Snowball
	series := CumulativeInterestSeries(sum)

	require.Len(t, series, sum.MonthsToPayoff)
	require.InDelta(t, sum.TotalInterest, series[len(series)-1].Value, 1e-6)
	require.InDelta(t, 50.0, series[0].Value, 1e-9)
}

func TestComputeBreakdown(t *testing.T) {
	sum := payoff.Compare(twoDebts(), 100, start).Snowball
	rows := ComputeBreakdown(sum)

	require.Len(t, rows, 2)
	require.Equal(t, "1", rows[0].DebtID)
	require.Less(t, rows[1].PayoffMonth, rows[0].PayoffMonth)
	paidOff := sum.DebtPayoffMonth()
	require.Equal(t, paidOff["1"], rows[0].PayoffMonth)
	require.Equal(t, paidOff["2"], rows[1].PayoffMonth)
	require.InDelta(t, sum.TotalInterest, rows[0].InterestPaid+rows[1].InterestPaid, 1e-6)
	require.InDelta(t, sum.TotalPaid(), rows[0].TotalPaid+rows[1].TotalPaid, 1e-6)

	ranked := RankByInterest(rows)
	require.GreaterOrEqual(t, ranked[0].InterestPaid, ranked[1].InterestPaid)
}

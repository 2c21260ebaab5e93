package analysis

import (
	"sort"

	"debt-planner/internal/payoff"
)

// DebtBreakdown summarizes one debt's share of a payoff run.
type DebtBreakdown struct {
	DebtID   string
	DebtName string

	// PayoffMonth is 0 when the debt was still open at the end of the run.
	PayoffMonth  int
	InterestPaid float64
	TotalPaid    float64
	FinalBalance float64
}

// ComputeBreakdown aggregates the schedule per debt, in first-seen order.
func ComputeBreakdown(sum *payoff.Summary) []DebtBreakdown {
	paidOff := sum.DebtPayoffMonth()
	idx := map[string]int{}
	out := []DebtBreakdown{}
	for _, e := range sum.Schedule {
		i, ok := idx[e.DebtID]
		if !ok {
			i = len(out)
			idx[e.DebtID] = i
			out = append(out, DebtBreakdown{DebtID: e.DebtID, DebtName: e.DebtName, PayoffMonth: paidOff[e.DebtID]})
		}
		b := &out[i]
		b.InterestPaid += e.Interest
		b.TotalPaid += e.Payment
		b.FinalBalance = e.Balance
	}
	return out
}

// RankByInterest sorts breakdowns by interest paid, most expensive first.
func RankByInterest(rows []DebtBreakdown) []DebtBreakdown {
	out := make([]DebtBreakdown, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].InterestPaid > out[j].InterestPaid
	})
	return out
}

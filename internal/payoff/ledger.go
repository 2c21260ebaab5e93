package payoff

import (
	"time"

	"debt-planner/internal/model"
)

const (
	// MaxMonths caps a run at 50 years. A run that reaches it did not pay off.
	MaxMonths = 600
	// BalanceEpsilon is the balance at or below which a debt is retired.
	BalanceEpsilon = 0.01
)

// ScheduleEntry is one row of the payment ledger: one debt in one month.
// Retired debts emit no further rows.
type ScheduleEntry struct {
	Month    int // 1-based
	Date     time.Time
	DebtID   string
	DebtName string

	// Balance is the balance after this month's payment.
	Balance   float64
	Payment   float64
	Principal float64
	Interest  float64
}

// Summary is the outcome of one simulation run.
type Summary struct {
	Strategy model.Strategy
	// StartDate is month 0. StartBalance is the normalized total the run
	// started from, so pre-baked loans count at their total repayable.
	StartDate    time.Time
	StartBalance float64

	MonthsToPayoff int
	TotalInterest  float64
	PayoffDate     time.Time
	Schedule       []ScheduleEntry
}

// Saturated reports whether the run hit the month cap, meaning the debts do
// not pay off in reasonable time under the given payments.
func (s *Summary) Saturated() bool {
	return s.MonthsToPayoff >= MaxMonths
}

// TotalPaid sums every payment in the schedule.
func (s *Summary) TotalPaid() float64 {
	total := 0.0
	for _, e := range s.Schedule {
		total += e.Payment
	}
	return total
}

// DebtPayoffMonth returns the month each debt made its final payment.
func (s *Summary) DebtPayoffMonth() map[string]int {
	out := map[string]int{}
	for _, e := range s.Schedule {
		if e.Balance <= BalanceEpsilon {
			if _, seen := out[e.DebtID]; !seen {
				out[e.DebtID] = e.Month
			}
		}
	}
	return out
}

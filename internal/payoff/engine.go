package payoff

import (
	"log"
	"math"
	"time"

	"debt-planner/internal/model"
	"debt-planner/internal/strategy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Simulate runs the month-by-month payoff of debts under strat. extra is the
// monthly budget on top of each debt's base payment; it goes to a single debt
// per month, the first in strat's order over the still-active debts.
func (e *Engine) Simulate(debts []model.Debt, extra float64, strat strategy.Strategy, start time.Time) *Summary {
	sum := &Summary{
		Strategy:   strat.Name(),
		StartDate:  start,
		PayoffDate: start,
		Schedule:   []ScheduleEntry{},
	}
	if len(debts) == 0 {
		return sum
	}

	active := make([]*model.DebtState, 0, len(debts))
	for _, d := range debts {
		st := model.NewDebtState(d)
		if st.Balance > BalanceEpsilon {
			active = append(active, st)
			sum.StartBalance += st.Balance
		}
	}

	extra = math.Max(0, extra)
	month := 0
	for len(active) > 0 && month < MaxMonths {
		month++
		date := start.AddDate(0, month, 0)
		remainingExtra := extra

		var target string
		if top := strategy.Top(strat, active); top != nil {
			target = top.ID
		}

		// Input order, not priority order: priority only picks the extra's target.
		for _, d := range active {
			apr := d.AdvanceRate()
			interest := model.MonthlyInterest(d.Balance, apr)
			sum.TotalInterest += interest

			payment := d.BasePayment()
			if d.ID == target && remainingExtra > 0 {
				add := math.Max(0, math.Min(remainingExtra, d.Balance+interest-payment))
				payment += add
				remainingExtra -= add
			}
			payment = math.Min(payment, d.Balance+interest)

			principal := payment - interest
			d.Balance = math.Max(0, d.Balance-principal)

			sum.Schedule = append(sum.Schedule, ScheduleEntry{
				Month:     month,
				Date:      date,
				DebtID:    d.ID,
				DebtName:  d.Name,
				Balance:   d.Balance,
				Payment:   payment,
				Principal: principal,
				Interest:  interest,
			})
		}

		active = retire(active)
	}

	if len(active) > 0 {
		log.Printf("payoff: %s run reached %d-month cap with %d debts outstanding", strat.Name(), MaxMonths, len(active))
	}

	sum.MonthsToPayoff = month
	sum.PayoffDate = start.AddDate(0, month, 0)
	return sum
}

// retire drops debts at or below BalanceEpsilon. The slice is filtered in place.
func retire(active []*model.DebtState) []*model.DebtState {
	out := active[:0]
	for _, d := range active {
		if d.Balance > BalanceEpsilon {
			out = append(out, d)
		}
	}
	return out
}

// Simulate is a convenience wrapper that resolves the strategy by name.
func Simulate(debts []model.Debt, extra float64, name model.Strategy, start time.Time) (*Summary, error) {
	strat, err := strategy.New(name)
	if err != nil {
		return nil, err
	}
	return New().Simulate(debts, extra, strat, start), nil
}

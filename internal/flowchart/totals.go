package flowchart

import (
	"debt-planner/internal/analysis"
	"debt-planner/internal/model"
)

// MonthlyTotals is the monthly cash-flow picture of a plan.
type MonthlyTotals struct {
	TotalIncome            float64
	EssentialOutgoings     float64
	DiscretionaryOutgoings float64
	AnnualCostsMonthly     float64
	TotalOutgoings         float64
	MinimumDebtPayments    float64
	// Surplus is income less outgoings and required debt payments.
	Surplus float64
}

func Totals(p *model.FinancialPlan) MonthlyTotals {
	t := MonthlyTotals{TotalIncome: p.Income.Total()}
	for _, it := range p.Outgoings.Items {
		if it.IsEssential {
			t.EssentialOutgoings += it.Amount
		} else {
			t.DiscretionaryOutgoings += it.Amount
		}
	}
	annual := 0.0
	for _, it := range p.Outgoings.AnnualCosts {
		annual += it.Amount
	}
	t.AnnualCostsMonthly = annual / 12
	t.TotalOutgoings = t.EssentialOutgoings + t.DiscretionaryOutgoings + t.AnnualCostsMonthly
	t.MinimumDebtPayments = analysis.MinimumPayments(p.Debts)
	t.Surplus = t.TotalIncome - t.TotalOutgoings - t.MinimumDebtPayments
	return t
}

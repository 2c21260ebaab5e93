package analysis

import "debt-planner/internal/model"

// HighInterestAPR is the APR above which a debt counts as expensive.
const HighInterestAPR = 10.0

// MinimumPayments sums the monthly payment every debt requires: the minimum
// for minimum_payment debts, the fixed or annuity payment for fixed_term ones.
func MinimumPayments(debts []model.Debt) float64 {
	sum := 0.0
	for _, d := range debts {
		sum += model.ScheduledPayment(d)
	}
	return sum
}

// TotalDebt sums balances across all debts, mortgages and student loans included.
func TotalDebt(debts []model.Debt) float64 {
	sum := 0.0
	for _, d := range debts {
		sum += d.Balance
	}
	return sum
}

// HighInterestDebts returns the debts above HighInterestAPR, ignoring
// mortgages, student loans and debts inside an active 0% promo.
func HighInterestDebts(debts []model.Debt) []model.Debt {
	out := []model.Debt{}
	for _, d := range debts {
		if d.Type.ExcludedFromPayoff() || d.InActivePromo() {
			continue
		}
		if d.APR > HighInterestAPR {
			out = append(out, d)
		}
	}
	return out
}

func HasHighInterestDebt(debts []model.Debt) bool {
	return len(HighInterestDebts(debts)) > 0
}

// HasNonMortgageStudentLoanDebt reports whether any payoff-eligible debt
// still carries a balance.
func HasNonMortgageStudentLoanDebt(debts []model.Debt) bool {
	for _, d := range debts {
		if !d.Type.ExcludedFromPayoff() && d.Balance > 0 {
			return true
		}
	}
	return false
}

// FilterPayoffDebts drops mortgages and student loans from payoff planning.
func FilterPayoffDebts(debts []model.Debt) []model.Debt {
	out := make([]model.Debt, 0, len(debts))
	for _, d := range debts {
		if !d.Type.ExcludedFromPayoff() {
			out = append(out, d)
		}
	}
	return out
}

// HasDebtOfType reports whether any debt has type t.
func HasDebtOfType(debts []model.Debt, t model.DebtType) bool {
	for _, d := range debts {
		if d.Type == t {
			return true
		}
	}
	return false
}

package model

import "math"

// MonthlyRate converts an APR percentage to a monthly periodic rate.
func MonthlyRate(apr float64) float64 {
	return apr / 100 / 12
}

// MonthlyInterest is the interest accrued on balance over one month at apr.
func MonthlyInterest(balance, apr float64) float64 {
	return balance * MonthlyRate(apr)
}

// AnnuityPayment is the level payment that amortizes pv over n months at apr:
//
//	payment = (r * pv) / (1 - (1+r)^-n),  r = apr/100/12
//
// A zero rate, or a denominator that collapses to <= 0, falls back to pv/n.
func AnnuityPayment(pv, apr float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	r := MonthlyRate(apr)
	if r > 0 {
		denom := 1 - math.Pow(1+r, -float64(n))
		if denom > 0 && !math.IsNaN(denom) && !math.IsInf(denom, 0) {
			return (r * pv) / denom
		}
	}
	return pv / float64(n)
}

// FixedMonthlyPayment derives the fixed payment of a fixed_term debt.
// ok is false when the debt has no fixed payment (minimum_payment mode, or a
// fixed_term debt missing its term or balance).
func FixedMonthlyPayment(d Debt) (payment float64, ok bool) {
	if d.Mode() != PaymentModeFixedTerm || d.FixedTermMonths <= 0 {
		return 0, false
	}
	if d.TotalRepayable > 0 {
		// Interest is already embedded in the total.
		return d.TotalRepayable / float64(d.FixedTermMonths), true
	}
	if d.Balance > 0 {
		return AnnuityPayment(d.Balance, d.APR, d.FixedTermMonths), true
	}
	return 0, false
}

// ScheduledPayment is the payment a debt requires each month: the fixed
// payment for fixed_term debts, else the declared minimum.
func ScheduledPayment(d Debt) float64 {
	if p, ok := FixedMonthlyPayment(d); ok {
		return p
	}
	return d.MinimumPayment
}

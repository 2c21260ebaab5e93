package report

import (
	"fmt"
	"math"

	"debt-planner/internal/format"
	"debt-planner/internal/model"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendWorsening Trend = "worsening"
	TrendStable    Trend = "stable"
)

// stableThreshold is the smallest change, in currency units, that counts as movement.
const stableThreshold = 0.01

type Changes struct {
	DebtChange           float64 `json:"debt_change"`
	DebtChangePercent    float64 `json:"debt_change_percent"`
	SavingsChange        float64 `json:"savings_change"`
	SavingsChangePercent float64 `json:"savings_change_percent"`
	SurplusChange        float64 `json:"surplus_change"`
	NetWorthChange       float64 `json:"net_worth_change"`
}

type Trends struct {
	Debt    Trend `json:"debt"`
	Savings Trend `json:"savings"`
	Surplus Trend `json:"surplus"`
}

type Milestones struct {
	Achieved []string `json:"achieved"`
	Upcoming []string `json:"upcoming"`
}

// Report compares the current snapshot with the previous one.
type Report struct {
	Current    model.MonthlySnapshot  `json:"current_month"`
	Previous   *model.MonthlySnapshot `json:"previous_month,omitempty"`
	Changes    Changes                `json:"changes"`
	Trends     Trends                 `json:"trends"`
	Milestones Milestones             `json:"milestones"`
}

// Generate builds a performance report. Without a previous snapshot every
// change is zero and nothing is achieved.
func Generate(current model.MonthlySnapshot, previous *model.MonthlySnapshot) Report {
	r := Report{Current: current, Previous: previous}
	if previous != nil {
		r.Changes = Changes{
			DebtChange:           current.TotalDebt - previous.TotalDebt,
			DebtChangePercent:    percentChange(current.TotalDebt, previous.TotalDebt),
			SavingsChange:        current.TotalSavings - previous.TotalSavings,
			SavingsChangePercent: percentChange(current.TotalSavings, previous.TotalSavings),
			SurplusChange:        current.Surplus - previous.Surplus,
			NetWorthChange:       current.NetWorth() - previous.NetWorth(),
		}
	}
	r.Trends = Trends{
		// Falling debt is good.
		Debt:    trend(r.Changes.DebtChange, -1),
		Savings: trend(r.Changes.SavingsChange, 1),
		Surplus: trend(r.Changes.SurplusChange, 1),
	}
	r.Milestones = Milestones{
		Achieved: achieved(current, previous),
		Upcoming: upcoming(current),
	}
	return r
}

func percentChange(cur, prev float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

func trend(change float64, good int) Trend {
	if math.Abs(change) < stableThreshold {
		return TrendStable
	}
	if (good > 0) == (change > 0) {
		return TrendImproving
	}
	return TrendWorsening
}

func gbp(amount float64) string {
	return format.Whole(amount, model.CurrencyGBP, 1)
}

var debtThresholds = []float64{10000, 5000, 1000}

func achieved(cur model.MonthlySnapshot, prev *model.MonthlySnapshot) []string {
	out := []string{}
	if prev == nil {
		return out
	}

	if prev.TotalDebt > 0 && cur.TotalDebt <= 0 {
		out = append(out, "Became debt-free!")
	} else {
		for _, th := range debtThresholds {
			if prev.TotalDebt >= th && cur.TotalDebt < th {
				out = append(out, "Debt dropped below "+gbp(th))
				break
			}
		}
	}

	switch {
	case prev.TotalSavings < 1000 && cur.TotalSavings >= 1000:
		out = append(out, "Saved your first "+gbp(1000)+"!")
	case prev.TotalSavings < 5000 && cur.TotalSavings >= 5000:
		out = append(out, "Reached "+gbp(5000)+" in savings!")
	case prev.TotalSavings < 10000 && cur.TotalSavings >= 10000:
		out = append(out, "Reached "+gbp(10000)+" in savings!")
	}

	balances := make(map[string]float64, len(cur.Debts))
	for _, d := range cur.Debts {
		balances[d.ID] = d.Balance
	}
	for _, d := range prev.Debts {
		if d.Balance <= 0 {
			continue
		}
		// A debt removed from the plan counts as paid off.
		if bal, ok := balances[d.ID]; !ok || bal <= 0 {
			out = append(out, fmt.Sprintf("Paid off %s!", d.Name))
		}
	}

	if prev.NetWorth() < 0 && cur.NetWorth() >= 0 {
		out = append(out, "Achieved positive net worth!")
	}
	return out
}

func upcoming(cur model.MonthlySnapshot) []string {
	out := []string{}
	if debt := cur.TotalDebt; debt > 0 {
		switch {
		case debt >= 1000 && debt < 1100:
			out = append(out, "Close to getting debt below "+gbp(1000))
		case debt >= 5000 && debt < 5500:
			out = append(out, "Close to getting debt below "+gbp(5000))
		case debt < 500:
			out = append(out, "Almost debt-free!")
		}
	}

	switch s := cur.TotalSavings; {
	case s >= 800 && s < 1000:
		out = append(out, "Close to saving "+gbp(1000))
	case s >= 4500 && s < 5000:
		out = append(out, "Close to "+gbp(5000)+" in savings")
	case s >= 9500 && s < 10000:
		out = append(out, "Close to "+gbp(10000)+" in savings")
	}
	return out
}

// Insights turns a report into short recommendations.
func Insights(r Report) []string {
	out := []string{}

	switch r.Trends.Debt {
	case TrendImproving:
		out = append(out, fmt.Sprintf("Great progress! Your debt decreased by %s this month.", format.Percent(math.Abs(r.Changes.DebtChangePercent), 1)))
	case TrendWorsening:
		out = append(out, fmt.Sprintf("Your debt increased by %s this month. Review your budget to identify areas to cut back.", format.Percent(math.Abs(r.Changes.DebtChangePercent), 1)))
	}

	switch {
	case r.Trends.Savings == TrendImproving:
		out = append(out, fmt.Sprintf("Excellent saving! Your savings grew by %s this month.", format.Percent(math.Abs(r.Changes.SavingsChangePercent), 1)))
	case r.Trends.Savings == TrendWorsening && r.Current.TotalSavings > 0:
		out = append(out, "Your savings decreased this month. Consider reviewing your budget priorities.")
	}

	switch {
	case r.Trends.Surplus == TrendWorsening && r.Current.Surplus < 0:
		out = append(out, "Warning: Your expenses exceed your income. This is not sustainable long-term.")
	case r.Current.Surplus > 500 && r.Current.TotalDebt > 0:
		out = append(out, fmt.Sprintf("You have a %s monthly surplus. Consider allocating more to debt payoff.", gbp(r.Current.Surplus)))
	}

	if r.Current.NetWorth() > 0 && r.Changes.NetWorthChange > 0 {
		out = append(out, fmt.Sprintf("Your net worth increased by %s this month!", gbp(r.Changes.NetWorthChange)))
	}
	return out
}

// GrowthRate is the percentage change from previous to current, 0 when previous is 0.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}

package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"debt-planner/internal/analysis"
	"debt-planner/internal/flowchart"
	"debt-planner/internal/model"
)

const dateLayout = "2006-01-02"

// NewSnapshot records the plan's headline totals as of date.
func NewSnapshot(p *model.FinancialPlan, date time.Time) model.MonthlySnapshot {
	t := flowchart.Totals(p)
	s := model.MonthlySnapshot{
		ID:             uuid.NewString(),
		Date:           date.Format(dateLayout),
		TotalDebt:      analysis.TotalDebt(p.Debts),
		TotalSavings:   p.Savings.CurrentCash,
		TotalIncome:    t.TotalIncome,
		TotalOutgoings: t.TotalOutgoings,
		Surplus:        t.Surplus,
		Debts:          make([]model.DebtBalance, 0, len(p.Debts)),
	}
	for _, d := range p.Debts {
		s.Debts = append(s.Debts, model.DebtBalance{ID: d.ID, Name: d.Name, Balance: d.Balance})
	}
	return s
}

// ShouldSnapshot allows at most one snapshot per calendar day.
func ShouldSnapshot(snapshots []model.MonthlySnapshot, today time.Time) bool {
	day := today.Format(dateLayout)
	for _, s := range snapshots {
		if s.Date == day {
			return false
		}
	}
	return true
}

// Recent returns the newest n snapshots in chronological order.
// The input slice is not reordered.
func Recent(snapshots []model.MonthlySnapshot, n int) []model.MonthlySnapshot {
	out := append([]model.MonthlySnapshot(nil), snapshots...)
	// YYYY-MM-DD sorts lexically.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if n >= 0 && len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// Previous returns the newest snapshot taken strictly before date
// (YYYY-MM-DD), or nil.
func Previous(snapshots []model.MonthlySnapshot, date string) *model.MonthlySnapshot {
	var prev *model.MonthlySnapshot
	for i := range snapshots {
		s := &snapshots[i]
		if s.Date < date && (prev == nil || s.Date > prev.Date) {
			prev = s
		}
	}
	return prev
}

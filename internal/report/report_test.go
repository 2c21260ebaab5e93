package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-planner/internal/model"
)

func snap(date string, debt, savings, surplus float64, debts ...model.DebtBalance) model.MonthlySnapshot {
	return model.MonthlySnapshot{ID: date, Date: date, TotalDebt: debt, TotalSavings: savings, Surplus: surplus, Debts: debts}
}

func TestNewSnapshot(t *testing.T) {
	p := &model.FinancialPlan{
		Income: model.Income{PrimaryNet: 2500, Other: 100},
		Outgoings: model.Outgoings{
			Items: []model.LineItem{{ID: "rent", Name: "Rent", Amount: 900, IsEssential: true}},
		},
		Savings: model.Savings{CurrentCash: 1200},
		Debts: []model.Debt{
			{ID: "c", Name: "Card", Type: model.DebtTypeCreditCard, Balance: 1500, APR: 20, MinimumPayment: 45},
			{ID: "l", Name: "Loan", Type: model.DebtTypeLoan, Balance: 3000, APR: 7, MinimumPayment: 120},
		},
	}

	s := NewSnapshot(p, time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC))
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "2025-06-03", s.Date)
	assert.Equal(t, 4500.0, s.TotalDebt)
	assert.Equal(t, 1200.0, s.TotalSavings)
	assert.Equal(t, 2600.0, s.TotalIncome)
	assert.Equal(t, 900.0, s.TotalOutgoings)
	assert.Equal(t, 1535.0, s.Surplus)
	require.Len(t, s.Debts, 2)
	assert.Equal(t, model.DebtBalance{ID: "l", Name: "Loan", Balance: 3000}, s.Debts[1])
	assert.Equal(t, -3300.0, s.NetWorth())
}

func TestShouldSnapshot(t *testing.T) {
	today := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	assert.True(t, ShouldSnapshot(nil, today))
	assert.True(t, ShouldSnapshot([]model.MonthlySnapshot{snap("2025-06-02", 0, 0, 0)}, today))
	assert.False(t, ShouldSnapshot([]model.MonthlySnapshot{snap("2025-06-03", 0, 0, 0)}, today))
}

func TestRecentAndPrevious(t *testing.T) {
	all := []model.MonthlySnapshot{
		snap("2025-03-01", 0, 0, 0),
		snap("2025-01-01", 0, 0, 0),
		snap("2025-02-01", 0, 0, 0),
	}

	recent := Recent(all, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-02-01", recent[0].Date)
	assert.Equal(t, "2025-03-01", recent[1].Date)
	assert.Equal(t, "2025-03-01", all[0].Date, "input must not be reordered")

	assert.Len(t, Recent(all, 10), 3)

	prev := Previous(all, "2025-03-01")
	require.NotNil(t, prev)
	assert.Equal(t, "2025-02-01", prev.Date)
	assert.Equal(t, "2025-03-01", Previous(all, "2025-03-02").Date)
	assert.Nil(t, Previous(all, "2025-01-01"))
	assert.Nil(t, Previous(nil, "2025-01-01"))
}

func TestGenerateWithoutPrevious(t *testing.T) {
	r := Generate(snap("2025-06-01", 1050, 900, 300), nil)

	assert.Equal(t, Changes{}, r.Changes)
	assert.Equal(t, Trends{Debt: TrendStable, Savings: TrendStable, Surplus: TrendStable}, r.Trends)
	assert.Empty(t, r.Milestones.Achieved)
	assert.Equal(t, []string{"Close to getting debt below £1,000", "Close to saving £1,000"}, r.Milestones.Upcoming)
}

func TestGenerateChangesAndTrends(t *testing.T) {
	prev := snap("2025-05-01", 2000, 1000, 400)
	cur := snap("2025-06-01", 1500, 800, 400.005)

	r := Generate(cur, &prev)
	assert.Equal(t, -500.0, r.Changes.DebtChange)
	assert.Equal(t, -25.0, r.Changes.DebtChangePercent)
	assert.Equal(t, -200.0, r.Changes.SavingsChange)
	assert.Equal(t, -20.0, r.Changes.SavingsChangePercent)
	assert.Equal(t, 300.0, r.Changes.NetWorthChange)

	assert.Equal(t, TrendImproving, r.Trends.Debt)
	assert.Equal(t, TrendWorsening, r.Trends.Savings)
	assert.Equal(t, TrendStable, r.Trends.Surplus)
}

func TestGenerateZeroPreviousDebtHasNoPercent(t *testing.T) {
	prev := snap("2025-05-01", 0, 0, 0)
	cur := snap("2025-06-01", 300, 0, 0)

	r := Generate(cur, &prev)
	assert.Equal(t, 300.0, r.Changes.DebtChange)
	assert.Zero(t, r.Changes.DebtChangePercent)
	assert.Equal(t, TrendWorsening, r.Trends.Debt)
}

func TestAchievedMilestones(t *testing.T) {
	card := model.DebtBalance{ID: "c", Name: "Card", Balance: 600}
	loan := model.DebtBalance{ID: "l", Name: "Loan", Balance: 9500}

	prev := snap("2025-05-01", 10100, 950, 0, card, loan)
	cur := snap("2025-06-01", 9400, 1100, 0, model.DebtBalance{ID: "l", Name: "Loan", Balance: 9400})

	r := Generate(cur, &prev)
	assert.Equal(t, []string{
		"Debt dropped below £10,000",
		"Saved your first £1,000!",
		"Paid off Card!",
	}, r.Milestones.Achieved)
}

func TestAchievedDebtFreeAndPositiveNetWorth(t *testing.T) {
	prev := snap("2025-05-01", 400, 300, 0, model.DebtBalance{ID: "c", Name: "Card", Balance: 400})
	cur := snap("2025-06-01", 0, 350, 0, model.DebtBalance{ID: "c", Name: "Card", Balance: 0})

	r := Generate(cur, &prev)
	assert.Equal(t, []string{
		"Became debt-free!",
		"Paid off Card!",
		"Achieved positive net worth!",
	}, r.Milestones.Achieved)
}

func TestUpcomingMilestones(t *testing.T) {
	assert.Equal(t, []string{"Close to getting debt below £5,000", "Close to £10,000 in savings"},
		Generate(snap("d", 5200, 9600, 0), nil).Milestones.Upcoming)
	assert.Equal(t, []string{"Almost debt-free!", "Close to £5,000 in savings"},
		Generate(snap("d", 200, 4600, 0), nil).Milestones.Upcoming)
	assert.Empty(t, Generate(snap("d", 0, 0, 0), nil).Milestones.Upcoming)
}

func TestInsights(t *testing.T) {
	prev := snap("2025-05-01", 2000, 3000, 600)
	cur := snap("2025-06-01", 1500, 3300, 700)

	got := Insights(Generate(cur, &prev))
	assert.Equal(t, []string{
		"Great progress! Your debt decreased by 25.0% this month.",
		"Excellent saving! Your savings grew by 10.0% this month.",
		"You have a £700 monthly surplus. Consider allocating more to debt payoff.",
		"Your net worth increased by £800 this month!",
	}, got)
}

func TestInsightsDeficitWarning(t *testing.T) {
	prev := snap("2025-05-01", 1000, 500, 100)
	cur := snap("2025-06-01", 1100, 400, -50)

	got := Insights(Generate(cur, &prev))
	assert.Equal(t, []string{
		"Your debt increased by 10.0% this month. Review your budget to identify areas to cut back.",
		"Your savings decreased this month. Consider reviewing your budget priorities.",
		"Warning: Your expenses exceed your income. This is not sustainable long-term.",
	}, got)
}

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 50.0, GrowthRate(150, 100))
	assert.Equal(t, 50.0, GrowthRate(-50, -100))
	assert.Zero(t, GrowthRate(10, 0))
}

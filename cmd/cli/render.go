package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"debt-planner/internal/analysis"
	"debt-planner/internal/flowchart"
	"debt-planner/internal/format"
	"debt-planner/internal/model"
	"debt-planner/internal/payoff"
	"debt-planner/internal/report"
)

var (
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

func money(p *model.FinancialPlan, amount float64) string {
	return format.Currency(amount, p.Currency, p.CustomFxRate)
}

func renderSummary(sum *payoff.Summary, p *model.FinancialPlan) string {
	lines := []string{titleStyle.Render(capitalize(string(sum.Strategy)))}
	if sum.Saturated() {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("Not paid off within %s", format.Months(payoff.MaxMonths))))
	} else {
		lines = append(lines,
			"Debt-free in "+format.Months(sum.MonthsToPayoff),
			"Payoff date   "+format.MonthYear(sum.PayoffDate),
		)
	}
	lines = append(lines,
		"Interest      "+money(p, sum.TotalInterest),
		"Total paid    "+money(p, sum.TotalPaid()),
	)
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderBreakdown(rows []analysis.DebtBreakdown, p *model.FinancialPlan) string {
	if len(rows) == 0 {
		return mutedStyle.Render("No debts to pay off.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %-10s %14s %14s\n", "debt", "paid off", "interest", "total paid")
	for _, r := range rows {
		when := "open"
		if r.PayoffMonth > 0 {
			when = fmt.Sprintf("month %d", r.PayoffMonth)
		}
		fmt.Fprintf(&b, "%-24s %-10s %14s %14s\n", truncate(r.DebtName, 24), when, money(p, r.InterestPaid), money(p, r.TotalPaid))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderComparison(cmp payoff.Comparison, p *model.FinancialPlan) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderSummary(cmp.Avalanche, p), "  ", renderSummary(cmp.Snowball, p))

	var verdict string
	switch {
	case cmp.InterestSaved > 0:
		verdict = goodStyle.Render(fmt.Sprintf("Avalanche saves %s in interest", money(p, cmp.InterestSaved)))
	case cmp.InterestSaved < 0:
		verdict = goodStyle.Render(fmt.Sprintf("Snowball saves %s in interest", money(p, -cmp.InterestSaved)))
	default:
		verdict = mutedStyle.Render("Both strategies cost the same interest")
	}
	if cmp.MonthsSaved != 0 {
		verdict += mutedStyle.Render(fmt.Sprintf(" (%+d months vs snowball)", -cmp.MonthsSaved))
	}
	return cards + "\n" + verdict + "\nRecommended: " + titleStyle.Render(string(cmp.Recommended()))
}

func renderFlowchart(ev flowchart.Evaluation, t flowchart.MonthlyTotals, p *model.FinancialPlan) string {
	done := map[string]bool{}
	for _, id := range ev.CompletedStepIDs {
		done[id] = true
	}

	lines := []string{titleStyle.Render("Your plan")}
	for i, s := range ev.Steps {
		marker := mutedStyle.Render("○")
		label := s.Title
		switch {
		case s.ID == ev.CurrentStepID:
			marker = titleStyle.Render("▶")
			label = titleStyle.Render(label)
		case done[s.ID]:
			marker = goodStyle.Render("✓")
		}
		lines = append(lines, fmt.Sprintf("%s %2d. %s", marker, i+1, label))
	}

	surplus := money(p, t.Surplus)
	if t.Surplus < 0 {
		surplus = warnStyle.Render(surplus)
	}
	lines = append(lines, "", "Monthly surplus "+surplus)

	if len(ev.NextActions) > 0 {
		lines = append(lines, "", titleStyle.Render("Next actions"))
		for _, a := range ev.NextActions {
			lines = append(lines, "  - "+a)
		}
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderReport(r report.Report, insights []string, recent []model.MonthlySnapshot, p *model.FinancialPlan) string {
	lines := []string{titleStyle.Render("Performance " + r.Current.Date)}
	if r.Previous == nil {
		lines = append(lines, mutedStyle.Render("No earlier snapshot to compare against."))
	} else {
		lines = append(lines,
			fmt.Sprintf("Debt      %s  %s", money(p, r.Current.TotalDebt), trendLabel(r.Trends.Debt, r.Changes.DebtChange, p)),
			fmt.Sprintf("Savings   %s  %s", money(p, r.Current.TotalSavings), trendLabel(r.Trends.Savings, r.Changes.SavingsChange, p)),
			fmt.Sprintf("Surplus   %s  %s", money(p, r.Current.Surplus), trendLabel(r.Trends.Surplus, r.Changes.SurplusChange, p)),
		)
	}

	if len(recent) >= 2 {
		first, last := recent[0], recent[len(recent)-1]
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Net worth over %s: %s",
			format.Months(snapshotSpan(first, last)), format.Percent(report.GrowthRate(last.NetWorth(), first.NetWorth()), 1))))
	}

	for _, m := range r.Milestones.Achieved {
		lines = append(lines, goodStyle.Render("★ "+m))
	}
	for _, m := range r.Milestones.Upcoming {
		lines = append(lines, mutedStyle.Render("→ "+m))
	}
	if len(insights) > 0 {
		lines = append(lines, "")
		lines = append(lines, insights...)
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// snapshotSpan is the number of calendar months between two snapshots.
func snapshotSpan(first, last model.MonthlySnapshot) int {
	from, err := time.Parse("2006-01-02", first.Date)
	if err != nil {
		return 0
	}
	to, err := time.Parse("2006-01-02", last.Date)
	if err != nil {
		return 0
	}
	return format.MonthsBetween(from, to)
}

func trendLabel(t report.Trend, change float64, p *model.FinancialPlan) string {
	label := fmt.Sprintf("%s (%s)", t, money(p, change))
	switch t {
	case report.TrendImproving:
		return goodStyle.Render(label)
	case report.TrendWorsening:
		return warnStyle.Render(label)
	default:
		return mutedStyle.Render(label)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

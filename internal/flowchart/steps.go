package flowchart

import (
	"fmt"
	"math"

	"debt-planner/internal/analysis"
	"debt-planner/internal/format"
	"debt-planner/internal/model"
)

type HelpLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Step is one stage of the prioritized plan.
type Step struct {
	ID          string
	Title       string
	Description string
	HelpLinks   []HelpLink

	IsComplete  func(p *model.FinancialPlan) bool
	NextActions func(p *model.FinancialPlan) []string
}

const (
	StepBudget               = "budget"
	StepProblemDebt          = "problem_debt"
	StepInitialEmergencyFund = "initial_emergency_fund"
	StepHighInterestDebt     = "high_interest_debt"
	StepPensionMatch         = "pension_match"
	StepRemainingDebt        = "remaining_debt"
	StepFullEmergencyFund    = "full_emergency_fund"
	StepShortTermGoals       = "short_term_goals"
	StepLongTermInvesting    = "long_term_investing"
	StepReviewMortgage       = "review_mortgage"
)

func money(p *model.FinancialPlan, amount float64) string {
	return format.Whole(amount, p.Currency, p.CustomFxRate)
}

// inCrisis reports the override condition for the problem-debt step.
func inCrisis(p *model.FinancialPlan) bool {
	return p.ReliesOnCreditForEssentials || Totals(p).Surplus < 0
}

// Steps is the ordered flowchart. Order matters: the first incomplete step is current.
var Steps = []Step{
	{
		ID:          StepBudget,
		Title:       "Create a budget and prioritise essentials",
		Description: "Understand your income and outgoings. Prioritise important bills, ensure you have adequate insurance, and check eligibility for state support.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Budgeting Guide", URL: "https://ukpersonal.finance/budgeting/"},
			{Text: "Benefits Calculator", URL: "https://www.entitledto.co.uk/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			return Totals(p).TotalIncome > 0 && len(p.Outgoings.Items) > 0
		},
		NextActions: func(p *model.FinancialPlan) []string {
			actions := []string{}
			if Totals(p).TotalIncome == 0 {
				actions = append(actions, "Enter your household income in the Budget section")
			}
			if len(p.Outgoings.Items) == 0 {
				actions = append(actions, "List your essential and discretionary outgoings")
			}
			return append(actions,
				"Review eligibility for benefits and state support",
				"Check you have adequate insurance (home, life, income protection)",
				"Ensure essential bills are prioritised",
			)
		},
	},
	{
		ID:          StepProblemDebt,
		Title:       "Deal with problem debt",
		Description: "If you rely on credit cards or loans to pay for essentials, or cannot afford minimum payments, seek free debt advice.",
		HelpLinks: []HelpLink{
			{Text: "StepChange Debt Charity", URL: "https://www.stepchange.org/"},
			{Text: "National Debtline", URL: "https://www.nationaldebtline.org/"},
			{Text: "Citizens Advice", URL: "https://www.citizensadvice.org.uk/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			return !inCrisis(p)
		},
		NextActions: func(p *model.FinancialPlan) []string {
			if !inCrisis(p) {
				return []string{}
			}
			return []string{
				"Consider contacting StepChange, National Debtline, or Citizens Advice for free debt support",
				"Review your budget to identify areas to reduce spending",
				"Contact creditors to discuss payment arrangements if struggling",
			}
		},
	},
	{
		ID:          StepInitialEmergencyFund,
		Title:       "Build initial emergency fund",
		Description: "Aim for 1-3 months of essential expenses in an accessible savings account. This provides a buffer against unexpected costs.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Emergency Fund Guide", URL: "https://ukpersonal.finance/emergency-fund/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			return p.Savings.CurrentCash >= emergencyTarget(p, p.Savings.InitialEFMonths)
		},
		NextActions: func(p *model.FinancialPlan) []string {
			return savingsActions(p, p.Savings.InitialEFMonths, func(needed string, months int) string {
				return fmt.Sprintf("Save %s to reach your initial emergency fund target (%s)", needed, monthsLabel(months))
			})
		},
	},
	{
		ID:          StepHighInterestDebt,
		Title:       "Pay down expensive debt",
		Description: "Focus on clearing debts with interest rates above 10% APR while maintaining minimum payments on all debts.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Debt Guide", URL: "https://ukpersonal.finance/debt/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			return !analysis.HasHighInterestDebt(p.Debts)
		},
		NextActions: func(p *model.FinancialPlan) []string {
			if !analysis.HasHighInterestDebt(p.Debts) {
				return []string{}
			}
			return []string{
				"Use the Debts section to model paying down high-interest debts (>10% APR)",
				"Consider the avalanche method to minimize interest",
				"Look into balance transfer or consolidation options if available",
			}
		},
	},
	{
		ID:          StepPensionMatch,
		Title:       "Contribute to pension to get employer match",
		Description: "If your employer offers pension matching, contribute enough to get the full match. This is essentially free money.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Pensions Guide", URL: "https://ukpersonal.finance/pensions/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			if !p.Pension.HasEmployerMatch {
				return true
			}
			return p.Pension.CanAffordMaxMatch
		},
		NextActions: func(p *model.FinancialPlan) []string {
			actions := []string{}
			if !p.Pension.IsEnrolled {
				actions = append(actions, "Check if you are enrolled in your workplace pension")
			}
			if p.Pension.HasEmployerMatch && !p.Pension.CanAffordMaxMatch {
				pct := format.Percent(p.Pension.EmployerMatchPercent, 0)
				actions = append(actions, fmt.Sprintf("Consider contributing %s to get the full %s employer match", pct, pct))
			}
			return actions
		},
	},
	{
		ID:          StepRemainingDebt,
		Title:       "Clear remaining non-mortgage debt",
		Description: "Pay off remaining debts (excluding mortgage and student loans) to free up monthly cashflow.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Debt Guide", URL: "https://ukpersonal.finance/debt/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			return !analysis.HasNonMortgageStudentLoanDebt(p.Debts)
		},
		NextActions: func(p *model.FinancialPlan) []string {
			if !analysis.HasNonMortgageStudentLoanDebt(p.Debts) {
				return []string{}
			}
			return []string{
				"Use the Debts section to plan payoff of remaining debts",
				"Compare avalanche (lowest interest) vs snowball (smallest balance first) strategies",
			}
		},
	},
	{
		ID:          StepFullEmergencyFund,
		Title:       "Build full emergency fund",
		Description: "Aim for 3-12 months of essential expenses. The right amount depends on your job security and circumstances.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Emergency Fund Guide", URL: "https://ukpersonal.finance/emergency-fund/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			return p.Savings.CurrentCash >= emergencyTarget(p, p.Savings.EmergencyFundMonths)
		},
		NextActions: func(p *model.FinancialPlan) []string {
			return savingsActions(p, p.Savings.EmergencyFundMonths, func(needed string, months int) string {
				return fmt.Sprintf("Save %s to reach your %d-month emergency fund target", needed, months)
			})
		},
	},
	{
		ID:          StepShortTermGoals,
		Title:       "Save for short-term goals",
		Description: "Plan for goals within the next 5 years (house deposit, car, wedding, etc.).",
		HelpLinks: []HelpLink{
			{Text: "UKPF Saving Guide", URL: "https://ukpersonal.finance/saving/"},
		},
		IsComplete: func(p *model.FinancialPlan) bool {
			return shortTermGoals(p) == 0
		},
		NextActions: func(p *model.FinancialPlan) []string {
			if shortTermGoals(p) > 0 {
				return []string{
					"Review your short-term goals and track progress",
					"Consider a Lifetime ISA for first-time home buyers (25% bonus)",
				}
			}
			return []string{"Define any short-term savings goals (<5 years) if applicable"}
		},
	},
	{
		ID:          StepLongTermInvesting,
		Title:       "Invest for the long term",
		Description: "Consider investing surplus funds for goals more than 5 years away. Research stocks & shares ISAs, pensions, and other tax-efficient accounts.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Investing Guide", URL: "https://ukpersonal.finance/investing-101/"},
			{Text: "UKPF ISA Guide", URL: "https://ukpersonal.finance/isa/"},
		},
		// Ongoing.
		IsComplete: func(*model.FinancialPlan) bool { return false },
		NextActions: func(p *model.FinancialPlan) []string {
			if Totals(p).Surplus <= 0 {
				return []string{}
			}
			return []string{
				"Research stocks & shares ISAs for tax-efficient investing",
				"Consider increasing pension contributions beyond employer match",
				"Review the UKPF investing guide to understand risk and diversification",
			}
		},
	},
	{
		ID:          StepReviewMortgage,
		Title:       "Consider mortgage overpayments or other debt",
		Description: "Assess whether overpaying your mortgage or student loan makes sense for your situation.",
		HelpLinks: []HelpLink{
			{Text: "UKPF Mortgage Guide", URL: "https://ukpersonal.finance/mortgage-overpayments/"},
		},
		// Ongoing.
		IsComplete: func(*model.FinancialPlan) bool { return false },
		NextActions: func(p *model.FinancialPlan) []string {
			actions := []string{}
			if analysis.HasDebtOfType(p.Debts, model.DebtTypeMortgage) {
				actions = append(actions, "Review your mortgage rate and consider overpayment benefits vs investing")
			}
			if analysis.HasDebtOfType(p.Debts, model.DebtTypeStudentLoan) {
				actions = append(actions, "Understand student loan repayment terms (Plan 1/2/4/5) before considering overpayment")
			}
			return actions
		},
	},
}

func emergencyTarget(p *model.FinancialPlan, months int) float64 {
	return Totals(p).EssentialOutgoings * float64(months)
}

func savingsActions(p *model.FinancialPlan, months int, headline func(needed string, months int) string) []string {
	needed := emergencyTarget(p, months) - p.Savings.CurrentCash
	if needed <= 0 {
		return []string{}
	}
	actions := []string{headline(money(p, needed), months)}
	if surplus := Totals(p).Surplus; surplus > 0 {
		actions = append(actions, fmt.Sprintf("At your current surplus, this would take approximately %d months", int(math.Ceil(needed/surplus))))
	}
	return actions
}

func monthsLabel(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}

func shortTermGoals(p *model.FinancialPlan) int {
	n := 0
	for _, g := range p.Goals {
		if g.IsShortTerm {
			n++
		}
	}
	return n
}

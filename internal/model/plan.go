package model

import "time"

// Currency is a display currency. Amounts are stored in the base (GBP)
// unit; CUSTOM is rendered through a user-supplied fx multiplier.
type Currency string

const (
	CurrencyGBP    Currency = "GBP"
	CurrencyEUR    Currency = "EUR"
	CurrencyUSD    Currency = "USD"
	CurrencyCustom Currency = "CUSTOM"
)

type Income struct {
	PrimaryNet   float64 `json:"primary_net"`
	SecondaryNet float64 `json:"secondary_net"`
	Other        float64 `json:"other"`
}

// Total is monthly net household income.
func (i Income) Total() float64 {
	return i.PrimaryNet + i.SecondaryNet + i.Other
}

// LineItem is one outgoing. Items are monthly; annual costs are yearly.
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	IsEssential bool    `json:"is_essential"`
}

type Outgoings struct {
	Items       []LineItem `json:"items"`
	AnnualCosts []LineItem `json:"annual_costs"`
}

type Savings struct {
	CurrentCash float64 `json:"current_cash"`
	// EmergencyFundMonths is the full target (3..12), InitialEFMonths the starter target (1..3).
	EmergencyFundMonths int `json:"emergency_fund_months"`
	InitialEFMonths     int `json:"initial_ef_months"`
}

type Pension struct {
	IsEnrolled                  bool    `json:"is_enrolled"`
	HasEmployerMatch            bool    `json:"has_employer_match"`
	EmployeeContributionPercent float64 `json:"employee_contribution_percent"`
	EmployerMatchPercent        float64 `json:"employer_match_percent"`
	CanAffordMaxMatch           bool    `json:"can_afford_max_match"`
}

type Goal struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TargetAmount float64   `json:"target_amount"`
	TargetDate   time.Time `json:"target_date"`
	IsShortTerm  bool      `json:"is_short_term"`
}

// FinancialPlan is the user's whole financial picture, as consumed by the
// flowchart evaluator and snapshot reports.
type FinancialPlan struct {
	Currency     Currency `json:"currency"`
	CustomFxRate float64  `json:"custom_fx_rate"`

	Income    Income    `json:"income"`
	Outgoings Outgoings `json:"outgoings"`
	Savings   Savings   `json:"savings"`
	Debts     []Debt    `json:"debts"`
	Pension   Pension   `json:"pension"`
	Goals     []Goal    `json:"goals"`

	ReliesOnCreditForEssentials bool `json:"relies_on_credit_for_essentials"`

	Snapshots []MonthlySnapshot `json:"monthly_snapshots,omitempty"`
}

// ApplyDefaults fills the schema defaults for an unmarshalled plan.
func (p *FinancialPlan) ApplyDefaults() {
	if p.Currency == "" {
		p.Currency = CurrencyGBP
	}
	if p.CustomFxRate <= 0 {
		p.CustomFxRate = 1
	}
	if p.Savings.EmergencyFundMonths == 0 {
		p.Savings.EmergencyFundMonths = 3
	}
	if p.Savings.InitialEFMonths == 0 {
		p.Savings.InitialEFMonths = 1
	}
}

// DebtBalance is the per-debt slice of a snapshot.
type DebtBalance struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// MonthlySnapshot records the plan's headline totals on a given day.
type MonthlySnapshot struct {
	ID             string        `json:"id"`
	Date           string        `json:"date"` // YYYY-MM-DD
	TotalDebt      float64       `json:"total_debt"`
	TotalSavings   float64       `json:"total_savings"`
	TotalIncome    float64       `json:"total_income"`
	TotalOutgoings float64       `json:"total_outgoings"`
	Surplus        float64       `json:"surplus"`
	Debts          []DebtBalance `json:"debts"`
}

// NetWorth is savings minus debt.
func (s MonthlySnapshot) NetWorth() float64 {
	return s.TotalSavings - s.TotalDebt
}

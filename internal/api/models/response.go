package models

import (
	"debt-planner/internal/flowchart"
	"debt-planner/internal/model"
	"debt-planner/internal/report"
)

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID      string        `json:"id"`
	Status  string        `json:"status"`
	Summary PayoffSummary `json:"summary"`
}

// PayoffSummary contains aggregated results of one strategy run
type PayoffSummary struct {
	Strategy       string  `json:"strategy"`
	MonthsToPayoff int     `json:"months_to_payoff"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPaid      float64 `json:"total_paid"`
	PayoffDate     string  `json:"payoff_date"` // YYYY-MM-DD
	// Saturated is true when the run hit the month cap without paying off.
	Saturated bool `json:"saturated"`

	Debts             []DebtBreakdown `json:"debts"`
	Schedule          []ScheduleRow   `json:"schedule,omitempty"`
	BalanceSeries     []SeriesPoint   `json:"balance_series,omitempty"`
	CumInterestSeries []SeriesPoint   `json:"cumulative_interest_series,omitempty"`
}

// DebtBreakdown is one debt's share of a run
type DebtBreakdown struct {
	DebtID       string  `json:"debt_id"`
	DebtName     string  `json:"debt_name"`
	PayoffMonth  int     `json:"payoff_month"` // 0 = not paid off
	InterestPaid float64 `json:"interest_paid"`
	TotalPaid    float64 `json:"total_paid"`
	FinalBalance float64 `json:"final_balance"`
}

// ScheduleRow represents one debt in one month of the payment ledger
type ScheduleRow struct {
	Month     int     `json:"month"`
	Date      string  `json:"date"`
	DebtID    string  `json:"debt_id"`
	DebtName  string  `json:"debt_name"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// SeriesPoint is one month of a chart series
type SeriesPoint struct {
	Month int     `json:"month"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// CompareResponse represents the response from a strategy comparison
type CompareResponse struct {
	ID            string        `json:"id"`
	Avalanche     PayoffSummary `json:"avalanche"`
	Snowball      PayoffSummary `json:"snowball"`
	InterestSaved float64       `json:"interest_saved"` // snowball - avalanche
	MonthsSaved   int           `json:"months_saved"`   // snowball - avalanche
	Recommended   string        `json:"recommended"`
}

// AggregatesResponse contains the debt aggregates used by the dashboard
type AggregatesResponse struct {
	TotalDebt           float64      `json:"total_debt"`
	MinimumPayments     float64      `json:"minimum_payments"`
	HasHighInterestDebt bool         `json:"has_high_interest_debt"`
	HighInterestDebts   []model.Debt `json:"high_interest_debts"`
	PayoffDebts         []model.Debt `json:"payoff_debts"`
}

// FlowchartResponse contains a plan's position in the flowchart
type FlowchartResponse struct {
	CurrentStepID    string        `json:"current_step_id"`
	CompletedStepIDs []string      `json:"completed_step_ids"`
	NextActions      []string      `json:"next_actions"`
	Totals           MonthlyTotals `json:"totals"`
	Steps            []StepInfo    `json:"steps"`
}

// MonthlyTotals is the monthly cash-flow picture of a plan
type MonthlyTotals struct {
	TotalIncome            float64 `json:"total_income"`
	EssentialOutgoings     float64 `json:"essential_outgoings"`
	DiscretionaryOutgoings float64 `json:"discretionary_outgoings"`
	AnnualCostsMonthly     float64 `json:"annual_costs_monthly"`
	TotalOutgoings         float64 `json:"total_outgoings"`
	MinimumDebtPayments    float64 `json:"minimum_debt_payments"`
	Surplus                float64 `json:"surplus"`
}

// StepInfo describes one flowchart step
type StepInfo struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Complete    bool                 `json:"complete"`
	HelpLinks   []flowchart.HelpLink `json:"help_links"`
}

// ReportResponse contains a performance report and its insights
type ReportResponse struct {
	report.Report
	Insights []string `json:"insights"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned in ErrorDetail.Code
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidDebt     = "INVALID_DEBT"
	CodeInvalidStrategy = "INVALID_STRATEGY"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternal        = "INTERNAL_ERROR"
)

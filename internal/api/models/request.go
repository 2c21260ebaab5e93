package models

import "debt-planner/internal/model"

// SimulateRequest represents the request body for a single payoff simulation
type SimulateRequest struct {
	Debts        []model.Debt `json:"debts"`
	ExtraPayment float64      `json:"extra_payment" binding:"gte=0"`
	Strategy     string       `json:"strategy" binding:"required"` // "avalanche" | "snowball"
	StartDate    string       `json:"start_date,omitempty"`        // YYYY-MM-DD, default: today
	Options      RunOptions   `json:"options,omitempty"`
}

// CompareRequest represents a request to run both strategies on the same debts
type CompareRequest struct {
	Debts        []model.Debt `json:"debts"`
	ExtraPayment float64      `json:"extra_payment" binding:"gte=0"`
	StartDate    string       `json:"start_date,omitempty"`
	Options      RunOptions   `json:"options,omitempty"`
}

// RunOptions contains optional simulation parameters
type RunOptions struct {
	IncludeSchedule bool `json:"include_schedule,omitempty"` // default: false
	IncludeSeries   bool `json:"include_series,omitempty"`   // balance and cumulative interest per month
	// PayoffOnly drops mortgages and student loans before simulating.
	PayoffOnly bool `json:"payoff_only,omitempty"`
}

// AggregatesRequest represents a request for debt aggregates
type AggregatesRequest struct {
	Debts []model.Debt `json:"debts"`
}

// FlowchartRequest represents a request to evaluate a plan against the flowchart
type FlowchartRequest struct {
	Plan model.FinancialPlan `json:"plan"`
}

// ReportRequest represents a request to compare two snapshots
type ReportRequest struct {
	Current  model.MonthlySnapshot  `json:"current"`
	Previous *model.MonthlySnapshot `json:"previous,omitempty"`
}

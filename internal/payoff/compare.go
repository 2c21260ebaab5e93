package payoff

import (
	"time"

	"debt-planner/internal/model"
	"debt-planner/internal/strategy"
)

// Comparison holds independent avalanche and snowball runs over the same
// debts, extra budget and start date.
type Comparison struct {
	Avalanche *Summary
	Snowball  *Summary
	// InterestSaved > 0 means avalanche is cheaper.
	InterestSaved float64
	// MonthsSaved > 0 means avalanche is faster.
	MonthsSaved int
}

// Compare runs both strategies. Each run normalizes its own working copies,
// so nothing is shared between them.
func (e *Engine) Compare(debts []model.Debt, extra float64, start time.Time) Comparison {
	av := e.Simulate(debts, extra, strategy.Avalanche{}, start)
	sb := e.Simulate(debts, extra, strategy.Snowball{}, start)
	return Comparison{
		Avalanche:     av,
		Snowball:      sb,
		InterestSaved: sb.TotalInterest - av.TotalInterest,
		MonthsSaved:   sb.MonthsToPayoff - av.MonthsToPayoff,
	}
}

func Compare(debts []model.Debt, extra float64, start time.Time) Comparison {
	return New().Compare(debts, extra, start)
}

// Recommended returns the strategy with less total interest, preferring
// avalanche on a tie.
func (c Comparison) Recommended() model.Strategy {
	if c.InterestSaved >= 0 {
		return model.StrategyAvalanche
	}
	return model.StrategySnowball
}

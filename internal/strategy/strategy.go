package strategy

import (
	"fmt"

	"debt-planner/internal/model"
)

// Strategy orders the active debts for one month. Only the first debt of the
// order receives that month's extra payment.
type Strategy interface {
	Name() model.Strategy
	Order(active []*model.DebtState) []*model.DebtState
}

// New returns the strategy registered under name.
func New(name model.Strategy) (Strategy, error) {
	switch name {
	case model.StrategyAvalanche:
		return Avalanche{}, nil
	case model.StrategySnowball:
		return Snowball{}, nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %q", name)
	}
}

// Top returns the highest-priority active debt, or nil when none are active.
func Top(s Strategy, active []*model.DebtState) *model.DebtState {
	order := s.Order(active)
	if len(order) == 0 {
		return nil
	}
	return order[0]
}

// Info describes a strategy for listings.
type Info struct {
	Name        model.Strategy
	Description string
}

// Describe lists every supported strategy in a stable order.
func Describe() []Info {
	return []Info{
		{
			Name:        model.StrategyAvalanche,
			Description: "Highest effective APR first. Debts inside a 0% promo window rank as 0%. Minimizes total interest.",
		},
		{
			Name:        model.StrategySnowball,
			Description: "Smallest balance first. Clears individual debts sooner for momentum.",
		},
	}
}

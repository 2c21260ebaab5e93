package strategy

import (
	"sort"

	"debt-planner/internal/model"
)

// Snowball prioritizes the smallest current balance. Ties keep input order.
type Snowball struct{}

func (Snowball) Name() model.Strategy { return model.StrategySnowball }

func (Snowball) Order(active []*model.DebtState) []*model.DebtState {
	out := make([]*model.DebtState, len(active))
	copy(out, active)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Balance < out[j].Balance
	})
	return out
}

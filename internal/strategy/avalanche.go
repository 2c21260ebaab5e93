package strategy

import (
	"sort"

	"debt-planner/internal/model"
)

// Avalanche prioritizes the highest effective APR. Ties keep input order.
type Avalanche struct{}

func (Avalanche) Name() model.Strategy { return model.StrategyAvalanche }

func (Avalanche) Order(active []*model.DebtState) []*model.DebtState {
	out := make([]*model.DebtState, len(active))
	copy(out, active)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveAPR() > out[j].EffectiveAPR()
	})
	return out
}

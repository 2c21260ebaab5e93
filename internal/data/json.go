package data

import (
	"encoding/json"
	"fmt"
	"os"

	"debt-planner/internal/model"
)

// LoadPlanJSON reads a FinancialPlan exported as JSON and applies schema defaults.
func LoadPlanJSON(path string) (*model.FinancialPlan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p model.FinancialPlan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	p.ApplyDefaults()
	if err := model.ValidateDebts(p.Debts); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

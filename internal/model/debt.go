package model

import (
	"errors"
	"fmt"
	"strings"
)

// DebtType classifies a debt. Mortgages and student loans are planned
// elsewhere in the flowchart and are excluded from payoff planning.
type DebtType string

const (
	DebtTypeCreditCard  DebtType = "credit_card"
	DebtTypeLoan        DebtType = "loan"
	DebtTypeOverdraft   DebtType = "overdraft"
	DebtTypeBNPL        DebtType = "bnpl"
	DebtTypeMortgage    DebtType = "mortgage"
	DebtTypeStudentLoan DebtType = "student_loan"
	DebtTypeOther       DebtType = "other"
)

// DebtTypes lists every accepted DebtType, in display order.
var DebtTypes = []DebtType{
	DebtTypeCreditCard,
	DebtTypeLoan,
	DebtTypeOverdraft,
	DebtTypeBNPL,
	DebtTypeMortgage,
	DebtTypeStudentLoan,
	DebtTypeOther,
}

func (t DebtType) Valid() bool {
	for _, k := range DebtTypes {
		if t == k {
			return true
		}
	}
	return false
}

// ExcludedFromPayoff reports whether the type is left out of payoff planning
// and high-interest checks.
func (t DebtType) ExcludedFromPayoff() bool {
	return t == DebtTypeMortgage || t == DebtTypeStudentLoan
}

// PaymentMode selects how a debt's monthly payment is derived.
type PaymentMode string

const (
	PaymentModeMinimum   PaymentMode = "minimum_payment"
	PaymentModeFixedTerm PaymentMode = "fixed_term"
)

// Debt is a user-declared debt. It is owned by the caller and never mutated
// by the simulator.
//
// Units:
// - Balance, MinimumPayment, TotalRepayable: currency units
// - APR, PostPromoAPR: percent per year (0..100)
// - FixedTermMonths, PromoMonthsRemaining: months
//
// Zero values of FixedTermMonths, TotalRepayable and PostPromoAPR mean "not set".
type Debt struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type DebtType `json:"type"`

	Balance float64 `json:"balance"`
	APR     float64 `json:"apr"`

	PaymentMode     PaymentMode `json:"payment_mode,omitempty"`
	MinimumPayment  float64     `json:"minimum_payment"`
	FixedTermMonths int         `json:"fixed_term_months,omitempty"`
	TotalRepayable  float64     `json:"total_repayable,omitempty"`

	HasPromo             bool    `json:"has_promo"`
	PromoMonthsRemaining int     `json:"promo_months_remaining"`
	PostPromoAPR         float64 `json:"post_promo_apr,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// Mode returns the payment mode, defaulting to minimum payments.
func (d Debt) Mode() PaymentMode {
	if d.PaymentMode == "" {
		return PaymentModeMinimum
	}
	return d.PaymentMode
}

// InActivePromo reports whether the debt is currently inside a 0% promo window.
func (d Debt) InActivePromo() bool {
	return d.HasPromo && d.PromoMonthsRemaining > 0
}

// Validate applies the schema bounds. Debts that pass are safe to simulate.
func (d Debt) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("unknown debt type %q", d.Type)
	}
	switch d.Mode() {
	case PaymentModeMinimum, PaymentModeFixedTerm:
	default:
		return fmt.Errorf("unknown payment mode %q", d.PaymentMode)
	}
	if d.Balance < 0 {
		return errors.New("balance must be >= 0")
	}
	if d.APR < 0 || d.APR > 100 {
		return errors.New("apr must be in [0, 100]")
	}
	if d.PostPromoAPR < 0 || d.PostPromoAPR > 100 {
		return errors.New("post_promo_apr must be in [0, 100]")
	}
	if d.MinimumPayment < 0 {
		return errors.New("minimum_payment must be >= 0")
	}
	if d.FixedTermMonths < 0 {
		return errors.New("fixed_term_months must be >= 0")
	}
	if d.TotalRepayable < 0 {
		return errors.New("total_repayable must be >= 0")
	}
	if d.PromoMonthsRemaining < 0 {
		return errors.New("promo_months_remaining must be >= 0")
	}
	return nil
}

// ValidateDebts validates each debt and checks ids are unique.
func ValidateDebts(debts []Debt) error {
	seen := make(map[string]bool, len(debts))
	for i, d := range debts {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("debt %d (%s): %w", i, d.Name, err)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate debt id %q", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

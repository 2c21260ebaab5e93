package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"debt-planner/internal/model"
)

const dateLayout = "2006-01-02"

// Config is the on-disk plan file shape (YAML, or TOML when the path ends in .toml).
type Config struct {
	// Optional: load debts from a separate file (e.g. examples/debts/*.yaml).
	// Inline debts with a matching id override fields of the loaded ones;
	// inline debts with a new id are appended.
	DebtsFile string `yaml:"debts_file" toml:"debts_file"`

	Strategy     string  `yaml:"strategy" toml:"strategy"`
	ExtraPayment float64 `yaml:"extra_payment" toml:"extra_payment"`
	// StartDate is YYYY-MM-DD. Empty means "today" for the caller.
	StartDate string `yaml:"start_date" toml:"start_date"`

	Currency     string  `yaml:"currency" toml:"currency"`
	CustomFxRate float64 `yaml:"custom_fx_rate" toml:"custom_fx_rate"`

	Income    IncomeConfig    `yaml:"income" toml:"income"`
	Outgoings OutgoingsConfig `yaml:"outgoings" toml:"outgoings"`
	Savings   SavingsConfig   `yaml:"savings" toml:"savings"`
	Pension   PensionConfig   `yaml:"pension" toml:"pension"`
	Goals     []GoalConfig    `yaml:"goals" toml:"goals"`
	Debts     []DebtConfig    `yaml:"debts" toml:"debts"`

	ReliesOnCreditForEssentials bool `yaml:"relies_on_credit_for_essentials" toml:"relies_on_credit_for_essentials"`
}

type DebtConfig struct {
	ID                   string  `yaml:"id" toml:"id"`
	Name                 string  `yaml:"name" toml:"name"`
	Type                 string  `yaml:"type" toml:"type"`
	Balance              float64 `yaml:"balance" toml:"balance"`
	APR                  float64 `yaml:"apr" toml:"apr"`
	PaymentMode          string  `yaml:"payment_mode" toml:"payment_mode"`
	MinimumPayment       float64 `yaml:"minimum_payment" toml:"minimum_payment"`
	FixedTermMonths      int     `yaml:"fixed_term_months" toml:"fixed_term_months"`
	TotalRepayable       float64 `yaml:"total_repayable" toml:"total_repayable"`
	HasPromo             bool    `yaml:"has_promo" toml:"has_promo"`
	PromoMonthsRemaining int     `yaml:"promo_months_remaining" toml:"promo_months_remaining"`
	PostPromoAPR         float64 `yaml:"post_promo_apr" toml:"post_promo_apr"`
	Notes                string  `yaml:"notes" toml:"notes"`
}

type IncomeConfig struct {
	PrimaryNet   float64 `yaml:"primary_net" toml:"primary_net"`
	SecondaryNet float64 `yaml:"secondary_net" toml:"secondary_net"`
	Other        float64 `yaml:"other" toml:"other"`
}

type LineItemConfig struct {
	ID          string  `yaml:"id" toml:"id"`
	Name        string  `yaml:"name" toml:"name"`
	Amount      float64 `yaml:"amount" toml:"amount"`
	IsEssential bool    `yaml:"essential" toml:"essential"`
}

type OutgoingsConfig struct {
	Items       []LineItemConfig `yaml:"items" toml:"items"`
	AnnualCosts []LineItemConfig `yaml:"annual_costs" toml:"annual_costs"`
}

type SavingsConfig struct {
	CurrentCash         float64 `yaml:"current_cash" toml:"current_cash"`
	EmergencyFundMonths int     `yaml:"emergency_fund_months" toml:"emergency_fund_months"`
	InitialEFMonths     int     `yaml:"initial_ef_months" toml:"initial_ef_months"`
}

type PensionConfig struct {
	IsEnrolled                  bool    `yaml:"enrolled" toml:"enrolled"`
	HasEmployerMatch            bool    `yaml:"employer_match" toml:"employer_match"`
	EmployeeContributionPercent float64 `yaml:"employee_contribution_percent" toml:"employee_contribution_percent"`
	EmployerMatchPercent        float64 `yaml:"employer_match_percent" toml:"employer_match_percent"`
	CanAffordMaxMatch           bool    `yaml:"can_afford_max_match" toml:"can_afford_max_match"`
}

type GoalConfig struct {
	ID           string  `yaml:"id" toml:"id"`
	Name         string  `yaml:"name" toml:"name"`
	TargetAmount float64 `yaml:"target_amount" toml:"target_amount"`
	TargetDate   string  `yaml:"target_date" toml:"target_date"`
	ShortTerm    bool    `yaml:"short_term" toml:"short_term"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Debts without an id get a generated one so results can reference them.
	for i := range c.Debts {
		if c.Debts[i].ID == "" {
			c.Debts[i].ID = uuid.NewString()
		}
	}
	if c.Strategy == "" {
		c.Strategy = string(model.StrategyAvalanche)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	var c Config
	if err := decodeFile(path, &c); err != nil {
		return nil, err
	}
	if c.DebtsFile != "" {
		debtsPath := c.DebtsFile
		if !filepath.IsAbs(debtsPath) {
			// Relative to the plan file first, then the working directory.
			cand := filepath.Join(filepath.Dir(path), debtsPath)
			if _, err := os.Stat(cand); err == nil {
				debtsPath = cand
			}
		}
		loaded, err := loadDebtsFile(debtsPath)
		if err != nil {
			return nil, err
		}
		c.Debts = MergeDebts(loaded, c.Debts)
	}
	return &c, nil
}

func decodeFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(v); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

type debtsFileWrapper struct {
	Debts []DebtConfig `yaml:"debts" toml:"debts"`
}

func loadDebtsFile(path string) ([]DebtConfig, error) {
	var w debtsFileWrapper
	if err := decodeFile(path, &w); err != nil {
		return nil, err
	}
	return w.Debts, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, ok := model.ParseStrategy(c.Strategy); !ok {
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if c.ExtraPayment < 0 {
		return errors.New("extra_payment must be >= 0")
	}
	if _, err := c.Start(time.Time{}); err != nil {
		return err
	}
	switch model.Currency(c.Currency) {
	case "", model.CurrencyGBP, model.CurrencyEUR, model.CurrencyUSD, model.CurrencyCustom:
	default:
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	for _, g := range c.Goals {
		if g.TargetDate == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, g.TargetDate); err != nil {
			return fmt.Errorf("goal %q: target_date: %w", g.Name, err)
		}
	}
	if err := model.ValidateDebts(c.ModelDebts()); err != nil {
		return fmt.Errorf("debts invalid: %w", err)
	}
	return nil
}

// Start resolves start_date, falling back to now when it is empty.
func (c *Config) Start(now time.Time) (time.Time, error) {
	if c.StartDate == "" {
		return now, nil
	}
	t, err := time.Parse(dateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	return t, nil
}

func (d DebtConfig) ToModel() model.Debt {
	return model.Debt{
		ID:                   d.ID,
		Name:                 d.Name,
		Type:                 model.DebtType(d.Type),
		Balance:              d.Balance,
		APR:                  d.APR,
		PaymentMode:          model.PaymentMode(d.PaymentMode),
		MinimumPayment:       d.MinimumPayment,
		FixedTermMonths:      d.FixedTermMonths,
		TotalRepayable:       d.TotalRepayable,
		HasPromo:             d.HasPromo,
		PromoMonthsRemaining: d.PromoMonthsRemaining,
		PostPromoAPR:         d.PostPromoAPR,
		Notes:                d.Notes,
	}
}

func (c *Config) ModelDebts() []model.Debt {
	out := make([]model.Debt, 0, len(c.Debts))
	for _, d := range c.Debts {
		out = append(out, d.ToModel())
	}
	return out
}

// Plan converts the file into a FinancialPlan with schema defaults applied.
// Validate first; unparsable goal dates are left zero.
func (c *Config) Plan() *model.FinancialPlan {
	p := &model.FinancialPlan{
		Currency:     model.Currency(c.Currency),
		CustomFxRate: c.CustomFxRate,
		Income: model.Income{
			PrimaryNet:   c.Income.PrimaryNet,
			SecondaryNet: c.Income.SecondaryNet,
			Other:        c.Income.Other,
		},
		Outgoings: model.Outgoings{
			Items:       lineItems(c.Outgoings.Items),
			AnnualCosts: lineItems(c.Outgoings.AnnualCosts),
		},
		Savings: model.Savings{
			CurrentCash:         c.Savings.CurrentCash,
			EmergencyFundMonths: c.Savings.EmergencyFundMonths,
			InitialEFMonths:     c.Savings.InitialEFMonths,
		},
		Debts: c.ModelDebts(),
		Pension: model.Pension{
			IsEnrolled:                  c.Pension.IsEnrolled,
			HasEmployerMatch:            c.Pension.HasEmployerMatch,
			EmployeeContributionPercent: c.Pension.EmployeeContributionPercent,
			EmployerMatchPercent:        c.Pension.EmployerMatchPercent,
			CanAffordMaxMatch:           c.Pension.CanAffordMaxMatch,
		},
		ReliesOnCreditForEssentials: c.ReliesOnCreditForEssentials,
	}
	for _, g := range c.Goals {
		target, _ := time.Parse(dateLayout, g.TargetDate)
		p.Goals = append(p.Goals, model.Goal{
			ID:           g.ID,
			Name:         g.Name,
			TargetAmount: g.TargetAmount,
			TargetDate:   target,
			IsShortTerm:  g.ShortTerm,
		})
	}
	p.ApplyDefaults()
	return p
}

func lineItems(in []LineItemConfig) []model.LineItem {
	out := make([]model.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, model.LineItem{ID: it.ID, Name: it.Name, Amount: it.Amount, IsEssential: it.IsEssential})
	}
	return out
}

// MergeDebts overlays override onto base by id. Non-zero fields of a matching
// override replace the base values; overrides with unknown ids are appended.
func MergeDebts(base, override []DebtConfig) []DebtConfig {
	out := append([]DebtConfig(nil), base...)
	index := make(map[string]int, len(out))
	for i, d := range out {
		if d.ID != "" {
			index[d.ID] = i
		}
	}
	for _, o := range override {
		i, ok := index[o.ID]
		if !ok || o.ID == "" {
			out = append(out, o)
			continue
		}
		out[i] = MergeDebt(out[i], o)
	}
	return out
}

// MergeDebt overlays non-zero fields from override onto base.
// Booleans can only be switched on by an override.
func MergeDebt(base, override DebtConfig) DebtConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Type != "" {
		out.Type = override.Type
	}
	if override.Balance != 0 {
		out.Balance = override.Balance
	}
	if override.APR != 0 {
		out.APR = override.APR
	}
	if override.PaymentMode != "" {
		out.PaymentMode = override.PaymentMode
	}
	if override.MinimumPayment != 0 {
		out.MinimumPayment = override.MinimumPayment
	}
	if override.FixedTermMonths != 0 {
		out.FixedTermMonths = override.FixedTermMonths
	}
	if override.TotalRepayable != 0 {
		out.TotalRepayable = override.TotalRepayable
	}
	if override.HasPromo {
		out.HasPromo = true
	}
	if override.PromoMonthsRemaining != 0 {
		out.PromoMonthsRemaining = override.PromoMonthsRemaining
	}
	if override.PostPromoAPR != 0 {
		out.PostPromoAPR = override.PostPromoAPR
	}
	if override.Notes != "" {
		out.Notes = override.Notes
	}
	return out
}

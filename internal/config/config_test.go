package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-planner/internal/model"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const planYAML = `
strategy: snowball
extra_payment: 150
start_date: 2025-01-15
currency: EUR
income:
  primary_net: 2800
outgoings:
  items:
    - {id: rent, name: Rent, amount: 1000, essential: true}
  annual_costs:
    - {id: tv, name: TV licence, amount: 169}
savings:
  current_cash: 1500
goals:
  - {id: car, name: Car, target_amount: 4000, target_date: 2026-09-01, short_term: true}
debts:
  - id: card
    name: Credit card
    type: credit_card
    balance: 2000
    apr: 24
    minimum_payment: 50
  - name: Phone
    type: bnpl
    balance: 300
    minimum_payment: 30
`

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", planYAML)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "snowball", c.Strategy)
	assert.Equal(t, 150.0, c.ExtraPayment)
	require.Len(t, c.Debts, 2)
	assert.Equal(t, "card", c.Debts[0].ID)
	assert.NotEmpty(t, c.Debts[1].ID, "missing ids are generated")

	start, err := c.Start(time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), start)

	p := c.Plan()
	assert.Equal(t, model.CurrencyEUR, p.Currency)
	assert.Equal(t, 1.0, p.CustomFxRate)
	assert.Equal(t, 3, p.Savings.EmergencyFundMonths)
	assert.Equal(t, 1, p.Savings.InitialEFMonths)
	require.Len(t, p.Outgoings.Items, 1)
	assert.True(t, p.Outgoings.Items[0].IsEssential)
	require.Len(t, p.Goals, 1)
	assert.True(t, p.Goals[0].IsShortTerm)
	assert.Equal(t, 2026, p.Goals[0].TargetDate.Year())
	assert.Equal(t, model.DebtTypeCreditCard, p.Debts[0].Type)
}

func TestLoadDefaultsStrategy(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.yaml", "debts: []\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "avalanche", c.Strategy)

	start, err := c.Start(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2030, start.Year())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plan.toml", `
strategy = "avalanche"
extra_payment = 100.0

[[debts]]
id = "loan"
name = "Car loan"
type = "loan"
balance = 10000.0
apr = 6.9
payment_mode = "fixed_term"
fixed_term_months = 24
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Debts, 1)
	d := c.Debts[0].ToModel()
	assert.Equal(t, model.PaymentModeFixedTerm, d.PaymentMode)
	assert.Equal(t, 24, d.FixedTermMonths)
	assert.Equal(t, 6.9, d.APR)
}

func TestLoadMergesDebtsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "debts.yaml", `
debts:
  - {id: a, name: Card A, type: credit_card, balance: 1000, apr: 20, minimum_payment: 30}
  - {id: b, name: Card B, type: credit_card, balance: 500, apr: 15, minimum_payment: 20}
`)
	path := writeFile(t, dir, "plan.yaml", `
debts_file: debts.yaml
debts:
  - {id: b, balance: 450}
  - {id: c, name: Overdraft, type: overdraft, balance: 200, apr: 39.9, minimum_payment: 10}
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Debts, 3)
	assert.Equal(t, "Card A", c.Debts[0].Name)
	assert.Equal(t, 450.0, c.Debts[1].Balance)
	assert.Equal(t, "Card B", c.Debts[1].Name)
	assert.Equal(t, 15.0, c.Debts[1].APR)
	assert.Equal(t, "c", c.Debts[2].ID)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"strategy":   "strategy: fastest\n",
		"extra":      "extra_payment: -5\n",
		"start date": "start_date: 15/01/2025\n",
		"currency":   "currency: JPY\n",
		"debt apr":   "debts:\n  - {id: x, name: X, type: loan, balance: 10, apr: 120}\n",
		"debt type":  "debts:\n  - {id: x, name: X, type: payday, balance: 10}\n",
		"duplicate":  "debts:\n  - {id: x, name: X, type: loan}\n  - {id: x, name: Y, type: loan}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "plan.yaml", body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMergeDebt(t *testing.T) {
	base := DebtConfig{ID: "a", Name: "A", Type: "loan", Balance: 100, APR: 5, MinimumPayment: 10}
	got := MergeDebt(base, DebtConfig{ID: "a", APR: 7, HasPromo: true, PromoMonthsRemaining: 3})
	assert.Equal(t, DebtConfig{ID: "a", Name: "A", Type: "loan", Balance: 100, APR: 7, MinimumPayment: 10, HasPromo: true, PromoMonthsRemaining: 3}, got)
}

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("DEBTPLAN_CONFIG", "")
	c, err := LoadServer("")
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, CacheMemory, c.Cache.Backend)
	assert.Equal(t, time.Hour, c.Cache.TTL)
	assert.Equal(t, 60, c.RateLimit.Capacity)
	assert.Equal(t, time.Minute, c.RateLimit.Window)
	assert.False(t, c.Production())
}

func TestLoadServerEnvOverrides(t *testing.T) {
	t.Setenv("DEBTPLAN_CONFIG", "")
	t.Setenv("DEBTPLAN_PORT", "9090")
	t.Setenv("DEBTPLAN_ENV", "production")
	t.Setenv("DEBTPLAN_CACHE_BACKEND", "redis")
	t.Setenv("DEBTPLAN_CACHE_TTL", "5m")

	c, err := LoadServer("")
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.True(t, c.Production())
	assert.Equal(t, CacheRedis, c.Cache.Backend)
	assert.Equal(t, 5*time.Minute, c.Cache.TTL)
}

func TestLoadServerFile(t *testing.T) {
	t.Setenv("DEBTPLAN_CONFIG", "")
	path := writeFile(t, t.TempDir(), "server.toml", `
port = "7000"

[cache]
backend = "none"
`)
	c, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", c.Port)
	assert.Equal(t, CacheNone, c.Cache.Backend)
}

func TestLoadServerRejectsUnknownBackend(t *testing.T) {
	t.Setenv("DEBTPLAN_CONFIG", "")
	t.Setenv("DEBTPLAN_CACHE_BACKEND", "memcached")
	_, err := LoadServer("")
	assert.Error(t, err)
}

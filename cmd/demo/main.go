package main

import (
	"flag"
	"fmt"
	"time"

	"debt-planner/internal/config"
	"debt-planner/internal/model"
	"debt-planner/internal/payoff"
	"debt-planner/internal/strategy"
)

// Demo:
// - Build a small household of debts (or load them from a plan file)
// - Run one strategy month by month
// - Print the first months of the ledger to show how the pieces fit together
func main() {
	cfgPath := flag.String("plan", "", "Path to plan file (optional)")
	name := flag.String("strategy", "avalanche", "avalanche|snowball")
	extra := flag.Float64("extra", 150, "Monthly extra payment")
	n := flag.Int("n", 6, "Number of months to print")
	outCSV := flag.String("out", "", "Optional path to write schedule CSV (e.g. results/schedule.csv)")
	flag.Parse()

	// Defaults (can be overridden via --plan).
	debts := []model.Debt{
		{ID: "card", Name: "Credit card", Type: model.DebtTypeCreditCard, Balance: 3200, APR: 22.9, MinimumPayment: 80},
		{ID: "transfer", Name: "Balance transfer", Type: model.DebtTypeCreditCard, Balance: 1800, APR: 0, MinimumPayment: 40,
			HasPromo: true, PromoMonthsRemaining: 9, PostPromoAPR: 24.9},
		{ID: "car", Name: "Car loan", Type: model.DebtTypeLoan, Balance: 6000, APR: 7.9,
			PaymentMode: model.PaymentModeFixedTerm, FixedTermMonths: 36},
	}
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		debts = cfg.ModelDebts()
		if s, err := cfg.Start(start); err == nil {
			start = s
		}
	}

	strat, err := strategy.New(model.Strategy(*name))
	if err != nil {
		panic(err)
	}

	sum := payoff.New().Simulate(debts, *extra, strat, start)

	fmt.Printf("Loaded %d debts, extra=%.2f/month\n", len(debts), *extra)
	fmt.Printf("Strategy=%s\n\n", strat.Name())

	for _, r := range sum.Schedule {
		if r.Month > *n {
			break
		}
		fmt.Printf(
			"%s  %-18s  pay=%8.2f  int=%7.2f  principal=%8.2f  bal=%9.2f\n",
			r.Date.Format("2006-01"),
			r.DebtName,
			r.Payment,
			r.Interest,
			r.Principal,
			r.Balance,
		)
	}

	if *outCSV != "" {
		if err := payoff.WriteScheduleCSV(*outCSV, sum.Schedule); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	if sum.Saturated() {
		fmt.Printf("\nDone. Not paid off within %d months. Interest so far=%.2f\n", payoff.MaxMonths, sum.TotalInterest)
		return
	}
	fmt.Printf("\nDone. Debt-free after %d months (%s). Total interest=%.2f\n",
		sum.MonthsToPayoff, sum.PayoffDate.Format("Jan 2006"), sum.TotalInterest)
}

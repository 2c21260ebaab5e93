package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"debt-planner/internal/analysis"
	"debt-planner/internal/config"
	"debt-planner/internal/data"
	"debt-planner/internal/flowchart"
	"debt-planner/internal/model"
	"debt-planner/internal/payoff"
	"debt-planner/internal/report"
)

var commands = []string{"simulate", "compare", "flowchart", "report"}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "flowchart":
		cmdFlowchart(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	default:
		if s := suggest(os.Args[1], commands); s != "" {
			fmt.Printf("unknown command %q, did you mean %q?\n\n", os.Args[1], s)
		}
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --plan examples/plan.yaml [--strategy avalanche] [--extra 200] --out results/schedule.csv")
	fmt.Println("  cli compare --plan examples/plan.yaml")
	fmt.Println("  cli flowchart --plan examples/plan.yaml")
	fmt.Println("  cli report --plan plan.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - plans are YAML, TOML (.toml) or an exported JSON plan (.json)")
	fmt.Println("  - mortgages and student loans are left out of payoff runs unless --payoff-only=false")
	fmt.Println("  - report compares today's figures with the newest saved snapshot")
}

// planInput is a loaded plan plus the run settings that came with it.
type planInput struct {
	Plan     *model.FinancialPlan
	Strategy string
	Extra    float64
	Start    time.Time
}

func loadPlan(path string) planInput {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if strings.EqualFold(filepath.Ext(path), ".json") {
		p, err := data.LoadPlanJSON(path)
		if err != nil {
			panic(err)
		}
		return planInput{Plan: p, Strategy: string(model.StrategyAvalanche), Start: today}
	}

	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	start, err := cfg.Start(today)
	if err != nil {
		panic(err)
	}
	return planInput{Plan: cfg.Plan(), Strategy: cfg.Strategy, Extra: cfg.ExtraPayment, Start: start}
}

type runFlags struct {
	plan       *string
	strategy   *string
	extra      *float64
	payoffOnly *bool
}

func addRunFlags(fs *flag.FlagSet) runFlags {
	return runFlags{
		plan:       fs.String("plan", "", "Path to plan file (.yaml, .toml or .json)"),
		strategy:   fs.String("strategy", "", "Override strategy: avalanche|snowball"),
		extra:      fs.Float64("extra", -1, "Override monthly extra payment (-1 = use plan)"),
		payoffOnly: fs.Bool("payoff-only", true, "Exclude mortgages and student loans"),
	}
}

// resolve loads the plan and applies flag overrides. Usage errors exit 2.
func (f runFlags) resolve() (planInput, []model.Debt) {
	if *f.plan == "" {
		fmt.Println("--plan is required")
		os.Exit(2)
	}
	in := loadPlan(*f.plan)
	if *f.strategy != "" {
		in.Strategy = *f.strategy
	}
	if *f.extra >= 0 {
		in.Extra = *f.extra
	}
	debts := in.Plan.Debts
	if *f.payoffOnly {
		debts = analysis.FilterPayoffDebts(debts)
	}
	return in, debts
}

func parseStrategy(s string) model.Strategy {
	name, ok := model.ParseStrategy(s)
	if ok {
		return name
	}
	names := make([]string, 0, len(model.Strategies))
	for _, k := range model.Strategies {
		names = append(names, string(k))
	}
	fmt.Printf("unsupported strategy %q", s)
	if hint := suggest(s, names); hint != "" {
		fmt.Printf(", did you mean %q?", hint)
	}
	fmt.Println()
	os.Exit(2)
	return ""
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	rf := addRunFlags(fs)
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path (empty = no CSV)")
	_ = fs.Parse(args)

	in, debts := rf.resolve()
	name := parseStrategy(in.Strategy)

	sum, err := payoff.Simulate(debts, in.Extra, name, in.Start)
	if err != nil {
		panic(err)
	}

	if *outPath != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := payoff.WriteScheduleCSV(*outPath, sum.Schedule); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(sum.Schedule), *outPath)
	}

	fmt.Println(renderSummary(sum, in.Plan))
	fmt.Println(renderBreakdown(analysis.RankByInterest(analysis.ComputeBreakdown(sum)), in.Plan))
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	rf := addRunFlags(fs)
	_ = fs.Parse(args)

	in, debts := rf.resolve()
	cmp := payoff.Compare(debts, in.Extra, in.Start)
	fmt.Println(renderComparison(cmp, in.Plan))
}

func cmdFlowchart(args []string) {
	fs := flag.NewFlagSet("flowchart", flag.ExitOnError)
	planPath := fs.String("plan", "", "Path to plan file (.yaml, .toml or .json)")
	_ = fs.Parse(args)

	if *planPath == "" {
		fmt.Println("--plan is required")
		os.Exit(2)
	}
	in := loadPlan(*planPath)
	fmt.Println(renderFlowchart(flowchart.Evaluate(in.Plan), flowchart.Totals(in.Plan), in.Plan))
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	planPath := fs.String("plan", "", "Path to plan file (.yaml, .toml or .json)")
	_ = fs.Parse(args)

	if *planPath == "" {
		fmt.Println("--plan is required")
		os.Exit(2)
	}
	in := loadPlan(*planPath)

	current := todaysSnapshot(in.Plan, time.Now())
	previous := report.Previous(in.Plan.Snapshots, current.Date)
	r := report.Generate(current, previous)
	fmt.Println(renderReport(r, report.Insights(r), report.Recent(in.Plan.Snapshots, 6), in.Plan))
}

// todaysSnapshot reuses a snapshot already recorded today, else takes a new one.
func todaysSnapshot(p *model.FinancialPlan, now time.Time) model.MonthlySnapshot {
	if !report.ShouldSnapshot(p.Snapshots, now) {
		day := now.Format("2006-01-02")
		for _, s := range p.Snapshots {
			if s.Date == day {
				return s
			}
		}
	}
	return report.NewSnapshot(p, now)
}

// suggest returns the candidate closest to s, or "" when nothing is close.
func suggest(s string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(s), c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(s)/3) {
		return ""
	}
	return best
}

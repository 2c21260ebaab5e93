package analysis

import (
	"time"

	"debt-planner/internal/payoff"
)

// Point is one month of a dashboard series.
type Point struct {
	Month int
	Date  time.Time
	Value float64
}

// BalanceSeries is the total outstanding balance at the end of each month.
// Month 0 is the run's normalized starting total.
func BalanceSeries(sum *payoff.Summary) []Point {
	out := make([]Point, 0, sum.MonthsToPayoff+1)
	out = append(out, Point{Month: 0, Date: sum.StartDate, Value: sum.StartBalance})
	forEachMonth(sum.Schedule, func(month int, date time.Time, rows []payoff.ScheduleEntry) {
		total := 0.0
		for _, r := range rows {
			total += r.Balance
		}
		out = append(out, Point{Month: month, Date: date, Value: total})
	})
	return out
}

// CumulativeInterestSeries is the running total of interest by month.
func CumulativeInterestSeries(sum *payoff.Summary) []Point {
	out := make([]Point, 0, sum.MonthsToPayoff)
	cum := 0.0
	forEachMonth(sum.Schedule, func(month int, date time.Time, rows []payoff.ScheduleEntry) {
		for _, r := range rows {
			cum += r.Interest
		}
		out = append(out, Point{Month: month, Date: date, Value: cum})
	})
	return out
}

// forEachMonth groups consecutive schedule rows by month. The schedule is
// append-only and ordered by month, so a single pass suffices.
func forEachMonth(schedule []payoff.ScheduleEntry, fn func(month int, date time.Time, rows []payoff.ScheduleEntry)) {
	i := 0
	for i < len(schedule) {
		j := i
		for j < len(schedule) && schedule[j].Month == schedule[i].Month {
			j++
		}
		fn(schedule[i].Month, schedule[i].Date, schedule[i:j])
		i = j
	}
}

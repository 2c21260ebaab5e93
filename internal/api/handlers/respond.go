package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"debt-planner/internal/analysis"
	"debt-planner/internal/api/models"
	"debt-planner/internal/format"
	"debt-planner/internal/model"
	"debt-planner/internal/payoff"
)

const dateLayout = "2006-01-02"

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// parseStart resolves an optional YYYY-MM-DD start date, defaulting to today (UTC).
func parseStart(s string, now func() time.Time) (time.Time, error) {
	if s == "" {
		t := now().UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("start_date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

func payoffDebts(debts []model.Debt, opts models.RunOptions) []model.Debt {
	if opts.PayoffOnly {
		return analysis.FilterPayoffDebts(debts)
	}
	return debts
}

func buildSummary(sum *payoff.Summary, opts models.RunOptions) models.PayoffSummary {
	out := models.PayoffSummary{
		Strategy:       string(sum.Strategy),
		MonthsToPayoff: sum.MonthsToPayoff,
		TotalInterest:  format.Round2(sum.TotalInterest),
		TotalPaid:      format.Round2(sum.TotalPaid()),
		PayoffDate:     sum.PayoffDate.Format(dateLayout),
		Saturated:      sum.Saturated(),
		Debts:          []models.DebtBreakdown{},
	}
	for _, b := range analysis.ComputeBreakdown(sum) {
		out.Debts = append(out.Debts, models.DebtBreakdown{
			DebtID:       b.DebtID,
			DebtName:     b.DebtName,
			PayoffMonth:  b.PayoffMonth,
			InterestPaid: format.Round2(b.InterestPaid),
			TotalPaid:    format.Round2(b.TotalPaid),
			FinalBalance: format.Round2(b.FinalBalance),
		})
	}
	if opts.IncludeSchedule {
		out.Schedule = make([]models.ScheduleRow, 0, len(sum.Schedule))
		for _, e := range sum.Schedule {
			out.Schedule = append(out.Schedule, models.ScheduleRow{
				Month:     e.Month,
				Date:      e.Date.Format(dateLayout),
				DebtID:    e.DebtID,
				DebtName:  e.DebtName,
				Payment:   format.Round2(e.Payment),
				Principal: format.Round2(e.Principal),
				Interest:  format.Round2(e.Interest),
				Balance:   format.Round2(e.Balance),
			})
		}
	}
	if opts.IncludeSeries {
		out.BalanceSeries = seriesPoints(analysis.BalanceSeries(sum))
		out.CumInterestSeries = seriesPoints(analysis.CumulativeInterestSeries(sum))
	}
	return out
}

func seriesPoints(in []analysis.Point) []models.SeriesPoint {
	out := make([]models.SeriesPoint, 0, len(in))
	for _, p := range in {
		out = append(out, models.SeriesPoint{Month: p.Month, Date: p.Date.Format(dateLayout), Value: format.Round2(p.Value)})
	}
	return out
}

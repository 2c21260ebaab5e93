package payoff

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

// WriteScheduleCSV writes the ledger to path, one row per debt per month.
func WriteScheduleCSV(path string, schedule []ScheduleEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return EncodeScheduleCSV(f, schedule)
}

func EncodeScheduleCSV(out io.Writer, schedule []ScheduleEntry) error {
	w := csv.NewWriter(out)

	header := []string{
		"month",
		"date",
		"debt_id",
		"debt_name",
		"payment",
		"principal",
		"interest",
		"balance",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range schedule {
		row := []string{
			strconv.Itoa(e.Month),
			fmtDate(e.Date),
			e.DebtID,
			e.DebtName,
			fmtMoney(e.Payment),
			fmtMoney(e.Principal),
			fmtMoney(e.Interest),
			fmtMoney(e.Balance),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtMoney(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

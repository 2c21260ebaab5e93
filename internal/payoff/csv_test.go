package payoff

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"debt-planner/internal/strategy"
)

func TestEncodeScheduleCSV(t *testing.T) {
	sum := New().Simulate(twoCards(), 100, strategy.Avalanche{}, start)

	var buf bytes.Buffer
	require.NoError(t, EncodeScheduleCSV(&buf, sum.Schedule))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(sum.Schedule)+1)
	require.Equal(t, []string{"month", "date", "debt_id", "debt_name", "payment", "principal", "interest", "balance"}, rows[0])
	require.Equal(t, []string{"1", "2025-02-15", "1", "Card 1", "150.00", "110.00", "40.00", "1890.00"}, rows[1])
}

func TestWriteScheduleCSV(t *testing.T) {
	sum := New().Simulate(twoCards(), 100, strategy.Snowball{}, start)
	path := filepath.Join(t.TempDir(), "schedule.csv")

	require.NoError(t, WriteScheduleCSV(path, sum.Schedule))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "Card 2")
}

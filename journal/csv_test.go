package journal

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxlab/fxjournal/pnl"
)

func TestExportCSV(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	trades := []TradeRecord{
		{
			ID: "T1", Instrument: "EUR/USD", Direction: pnl.Long,
			Entry: 1.0850, Exit: 1.0900, Lots: 0.5,
			PnL: 250, ComputedPnL: 250, Outcome: pnl.Win,
			Date: day, Comments: "clean breakout",
		},
		{
			ID: "T2", Instrument: "USD/JPY", Direction: pnl.Short,
			Entry: 148.50, Exit: 148.00, Lots: 0.5,
			PnL: 220, ComputedPnL: 227.25, ManualPnL: fp(220), Outcome: pnl.Win,
			Date: day,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, trades))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "trade_id", rows[0][0])

	assert.Equal(t, "T1", rows[1][0])
	assert.Equal(t, "EUR/USD", rows[1][2])
	assert.Equal(t, "1.08500", rows[1][4])
	assert.Equal(t, "250.00", rows[1][9])
	assert.Equal(t, "", rows[1][11], "no manual override")
	assert.Equal(t, "clean breakout", rows[1][13])

	assert.Equal(t, "227.25", rows[2][10])
	assert.Equal(t, "220.00", rows[2][11])
}

func TestExportCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// ExportCSV writes trades in CSV form, one row per trade. Money fields are
// rounded to cents here, at the boundary; prices keep five decimals.
func ExportCSV(w io.Writer, trades []TradeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{
		"trade_id", "date", "instrument", "direction",
		"entry_price", "exit_price", "lots",
		"swap", "commission", "pnl", "computed_pnl", "manual_pnl",
		"outcome", "comments",
	}); err != nil {
		return err
	}

	for _, t := range trades {
		manual := ""
		if t.ManualPnL != nil {
			manual = money(*t.ManualPnL)
		}
		if err := cw.Write([]string{
			t.ID,
			t.Date.Format(time.RFC3339),
			t.Instrument,
			string(t.Direction),
			price(t.Entry),
			price(t.Exit),
			money(t.Lots),
			money(t.Swap),
			money(t.Commission),
			money(t.PnL),
			money(t.ComputedPnL),
			manual,
			string(t.Outcome),
			t.Comments,
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func price(x float64) string {
	return strconv.FormatFloat(x, 'f', 5, 64)
}

func money(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

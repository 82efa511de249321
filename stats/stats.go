// stats/stats.go
package stats

import (
	"sort"
	"time"

	"github.com/fxlab/fxjournal/journal"
)

type InstrumentCount struct {
	Instrument string
	Count      int
}

// Point is one step of the cumulative P&L series: one point per trade,
// same-day trades each carry the already-updated running total.
type Point struct {
	Date       time.Time
	PnL        float64
	Cumulative float64
}

// Summary is derived on demand and never persisted. With no trades in the
// window every scalar is zero, the pointers are nil and the series is empty.
type Summary struct {
	TotalPnL   float64
	WinRate    float64 // percent
	TradeCount int
	AvgPnL     float64

	BiggestWin  *journal.TradeRecord
	BiggestLoss *journal.TradeRecord

	MostTraded  *InstrumentCount
	LeastTraded *InstrumentCount

	Series []Point
}

// Aggregate reduces the trades whose calendar day falls within [start, end]
// to summary metrics and a cumulative P&L series. Stateless and pure: safe
// to re-run on every store notification from any number of callers.
//
// Win rate counts only pnl > 0 in the numerator while zero-P&L trades stay
// in the denominator. That is asymmetric with the pnl >= 0 win
// classification, and deliberately left that way: it matches the observed
// behavior of the statistics this replaces.
func Aggregate(trades []journal.TradeRecord, start, end time.Time) Summary {
	filtered := filterWindow(trades, start, end)

	// Stable: same-day trades keep their insertion order across runs.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	s := Summary{TradeCount: len(filtered)}
	if len(filtered) == 0 {
		return s
	}

	var (
		wins       int
		cumulative float64
		counts     = make(map[string]int)
		seen       []string // first-encountered order for tie-breaks
	)
	s.Series = make([]Point, 0, len(filtered))

	for i := range filtered {
		t := &filtered[i]
		s.TotalPnL += t.PnL

		if t.PnL > 0 {
			wins++
			if s.BiggestWin == nil || t.PnL > s.BiggestWin.PnL {
				s.BiggestWin = t
			}
		}
		if t.PnL < 0 {
			if s.BiggestLoss == nil || t.PnL < s.BiggestLoss.PnL {
				s.BiggestLoss = t
			}
		}

		if _, ok := counts[t.Instrument]; !ok {
			seen = append(seen, t.Instrument)
		}
		counts[t.Instrument]++

		cumulative += t.PnL
		s.Series = append(s.Series, Point{Date: t.Date, PnL: t.PnL, Cumulative: cumulative})
	}

	s.WinRate = float64(wins) / float64(len(filtered)) * 100
	s.AvgPnL = s.TotalPnL / float64(len(filtered))

	for _, name := range seen {
		c := counts[name]
		if s.MostTraded == nil || c > s.MostTraded.Count {
			s.MostTraded = &InstrumentCount{Instrument: name, Count: c}
		}
		if s.LeastTraded == nil || c < s.LeastTraded.Count {
			s.LeastTraded = &InstrumentCount{Instrument: name, Count: c}
		}
	}

	return s
}

// filterWindow keeps trades within [start 00:00:00, end 23:59:59] by local
// calendar day, not instant equality.
func filterWindow(trades []journal.TradeRecord, start, end time.Time) []journal.TradeRecord {
	lo := dayStart(start)
	hi := dayStart(end).Add(24*time.Hour - time.Nanosecond)

	out := make([]journal.TradeRecord, 0, len(trades))
	for _, t := range trades {
		if !t.Date.Before(lo) && !t.Date.After(hi) {
			out = append(out, t)
		}
	}
	return out
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

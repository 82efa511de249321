// journal/journal.go
package journal

import (
	"context"
	"time"

	"github.com/fxlab/fxjournal/checklist"
	"github.com/fxlab/fxjournal/pnl"
)

// TradeRecord is one logged trade. PnL is the figure statistics run on: the
// computed result unless the trader keyed in a broker-reported override, in
// which case ComputedPnL keeps the calculator's value as a reference.
type TradeRecord struct {
	ID         string
	Instrument string
	Direction  pnl.Direction
	Entry      float64
	Exit       float64
	Lots       float64 // 1 lot = 100,000 units
	Swap       float64
	Commission float64

	PnL         float64
	ComputedPnL float64
	ManualPnL   *float64

	Outcome  pnl.Outcome
	Date     time.Time
	Comments string
}

// TradeUpdate is a partial edit. Nil fields are left untouched; setting a
// fee field or ManualPnL recomputes the stored PnL and outcome.
type TradeUpdate struct {
	Comments   *string
	Swap       *float64
	Commission *float64
	ManualPnL  *float64
}

// ItemUpdate is a partial checklist edit; nil fields are left untouched.
type ItemUpdate struct {
	Text    *string
	Checked *bool
}

// NormalizeDate pins a calendar day to noon local time so a timezone shift
// cannot move a trade across a day boundary.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// Store persists trades and the trade checklist. Every successful mutation
// is pushed to watchers so views can recompute their statistics.
type Store interface {
	AddTrade(TradeRecord) error
	GetTrade(id string) (TradeRecord, error)
	UpdateTrade(id string, u TradeUpdate) error
	DeleteTrade(id string) error
	ListTrades() ([]TradeRecord, error)
	ListTradesBetween(start, end time.Time) ([]TradeRecord, error)

	ListItems() ([]checklist.Item, error)
	AddItem(checklist.Item) error
	UpdateItem(id string, u ItemUpdate) error
	DeleteItem(id string) error
	SaveOrder(ctx context.Context, items []checklist.Item) error

	Watch() (<-chan Event, func())
	Close() error
}

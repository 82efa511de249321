// pnl/pnl.go
package pnl

import (
	"errors"
	"math"

	"github.com/fxlab/fxjournal/market"
)

type Direction string

const (
	Long  Direction = "Long"
	Short Direction = "Short"
)

type Outcome string

const (
	Win  Outcome = "win"
	Loss Outcome = "loss"
)

// ErrIncompleteInput is reported when entry, exit or lot size is missing or
// not a finite number. The caller must check for it before persisting;
// no partial numeric result is produced.
var ErrIncompleteInput = errors.New("pnl: incomplete input")

// Inputs for a P&L computation. Entry, Exit and Lots are pointers so that a
// missing field is represented, not guessed from a zero value. Swap and
// Commission are broker charges: both reduce net P&L regardless of sign.
type Inputs struct {
	Instrument string
	Direction  Direction
	Entry      *float64
	Exit       *float64
	Lots       *float64 // 1 lot = 100,000 units
	Swap       float64
	Commission float64
}

type Result struct {
	Pips    float64
	Gross   float64
	Net     float64
	Outcome Outcome
}

// Compute converts a price move into a USD P&L figure using the instrument's
// pip conventions. The result keeps full float precision; rounding to cents
// is left to the display/storage boundary.
func Compute(table *market.Table, in Inputs) (Result, error) {
	if !finite(in.Entry) || !finite(in.Exit) || !finite(in.Lots) {
		return Result{}, ErrIncompleteInput
	}

	pips := (*in.Exit - *in.Entry) / table.PipSize(in.Instrument)
	if in.Direction == Short {
		pips = -pips
	}

	gross := pips * table.PipValuePerStandardLot(in.Instrument) * *in.Lots
	net := gross - in.Swap - in.Commission

	return Result{
		Pips:    pips,
		Gross:   gross,
		Net:     net,
		Outcome: Classify(net),
	}, nil
}

// Classify applies the win/loss boundary rule: zero is a win.
func Classify(net float64) Outcome {
	if net >= 0 {
		return Win
	}
	return Loss
}

// Final picks the P&L figure to record. A broker-reported override replaces
// the computed value; the computed value stays on the record as a reference.
func Final(computed float64, override *float64) float64 {
	if override != nil {
		return *override
	}
	return computed
}

func finite(p *float64) bool {
	return p != nil && !math.IsNaN(*p) && !math.IsInf(*p, 0)
}

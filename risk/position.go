// risk/position.go
package risk

import (
	"errors"
	"fmt"

	"github.com/fxlab/fxjournal/market"
)

// ErrInvalidInput covers non-positive required fields, including the
// division hazards (zero/negative stop distance).
var ErrInvalidInput = errors.New("risk: invalid input")

type SizeInputs struct {
	AccountBalance float64 // account currency
	RiskPercent    float64 // 1 == 1%
	StopLossPips   float64
	Instrument     string
}

type SizeResult struct {
	RiskAmount    float64
	LotSize       float64
	PositionUnits float64
	PipValue      float64 // USD per pip per standard lot
}

// Size converts an account-risk budget into a lot size. Hazardous
// denominators are rejected before any division so the formula can never
// produce Inf or NaN. Results keep full precision; rounding (money and lots
// to cents, units to whole numbers) is a presentation step.
func Size(table *market.Table, in SizeInputs) (SizeResult, error) {
	if in.AccountBalance <= 0 {
		return SizeResult{}, fmt.Errorf("%w: account balance must be positive, got %v",
			ErrInvalidInput, in.AccountBalance)
	}
	if in.RiskPercent <= 0 {
		return SizeResult{}, fmt.Errorf("%w: risk percent must be positive, got %v",
			ErrInvalidInput, in.RiskPercent)
	}
	if in.StopLossPips <= 0 {
		return SizeResult{}, fmt.Errorf("%w: stop loss pips must be positive, got %v",
			ErrInvalidInput, in.StopLossPips)
	}

	riskAmount := in.AccountBalance * in.RiskPercent / 100
	pipValue := table.PipValuePerStandardLot(in.Instrument)
	lots := riskAmount / (in.StopLossPips * pipValue)

	return SizeResult{
		RiskAmount:    riskAmount,
		LotSize:       lots,
		PositionUnits: lots * market.UnitsPerStandardLot,
		PipValue:      pipValue,
	}, nil
}

package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxlab/fxjournal/market"
)

func TestSizeEURUSD(t *testing.T) {
	t.Parallel()

	got, err := Size(market.DefaultTable(), SizeInputs{
		AccountBalance: 10000,
		RiskPercent:    1,
		StopLossPips:   50,
		Instrument:     "EUR/USD",
	})
	require.NoError(t, err)

	assert.InDelta(t, 100.0, got.RiskAmount, 1e-9)
	assert.InDelta(t, 0.20, got.LotSize, 1e-9)
	assert.InDelta(t, 20000.0, got.PositionUnits, 1e-6)
	assert.InDelta(t, 10.0, got.PipValue, 1e-9)
}

func TestSizeJPYQuote(t *testing.T) {
	t.Parallel()

	got, err := Size(market.DefaultTable(), SizeInputs{
		AccountBalance: 5000,
		RiskPercent:    2,
		StopLossPips:   25,
		Instrument:     "USD/JPY",
	})
	require.NoError(t, err)

	assert.InDelta(t, 100.0, got.RiskAmount, 1e-9)
	assert.InDelta(t, 100.0/(25*9.09), got.LotSize, 1e-9)
	assert.InDelta(t, got.LotSize*market.UnitsPerStandardLot, got.PositionUnits, 1e-6)
	assert.InDelta(t, 9.09, got.PipValue, 1e-9)
}

func TestSizeUnknownInstrumentUsesDefaults(t *testing.T) {
	t.Parallel()

	got, err := Size(market.DefaultTable(), SizeInputs{
		AccountBalance: 10000,
		RiskPercent:    1,
		StopLossPips:   50,
		Instrument:     "BTC/USD",
	})
	require.NoError(t, err)

	assert.InDelta(t, market.DefaultPipValuePerStandardLot, got.PipValue, 1e-9)
	assert.InDelta(t, 0.20, got.LotSize, 1e-9)
}

func TestSizeRejectsHazards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   SizeInputs
	}{
		{"zero stop", SizeInputs{AccountBalance: 10000, RiskPercent: 1, StopLossPips: 0, Instrument: "EUR/USD"}},
		{"negative stop", SizeInputs{AccountBalance: 10000, RiskPercent: 1, StopLossPips: -10, Instrument: "EUR/USD"}},
		{"zero balance", SizeInputs{AccountBalance: 0, RiskPercent: 1, StopLossPips: 50, Instrument: "EUR/USD"}},
		{"negative balance", SizeInputs{AccountBalance: -100, RiskPercent: 1, StopLossPips: 50, Instrument: "EUR/USD"}},
		{"zero risk", SizeInputs{AccountBalance: 10000, RiskPercent: 0, StopLossPips: 50, Instrument: "EUR/USD"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Size(market.DefaultTable(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

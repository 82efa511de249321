// market/instruments.go
package market

import "sort"

// UnitsPerStandardLot is the number of base-currency units in one standard lot.
const UnitsPerStandardLot = 100000

// Fallback conventions for instruments missing from the table. Lookups stay
// total so the calculators never fail on an unknown pair.
const (
	DefaultPipSize                = 0.0001
	DefaultPipValuePerStandardLot = 10.0
)

type InstrumentMeta struct {
	Name                   string
	PipSize                float64
	PipValuePerStandardLot float64
}

// Table is immutable pip reference data. Construct one explicitly and hand it
// to the calculators; the math has no package-level table baked in.
type Table struct {
	meta map[string]InstrumentMeta
}

func NewTable(metas ...InstrumentMeta) *Table {
	m := make(map[string]InstrumentMeta, len(metas))
	for _, im := range metas {
		m[im.Name] = im
	}
	return &Table{meta: m}
}

// DefaultTable covers the standard pairs. JPY-quoted pairs use a 0.01 pip,
// gold a 0.10 pip; pip values are USD per pip on a 100,000-unit position.
func DefaultTable() *Table {
	return NewTable(
		InstrumentMeta{Name: "EUR/USD", PipSize: 0.0001, PipValuePerStandardLot: 10},
		InstrumentMeta{Name: "GBP/USD", PipSize: 0.0001, PipValuePerStandardLot: 10},
		InstrumentMeta{Name: "AUD/USD", PipSize: 0.0001, PipValuePerStandardLot: 10},
		InstrumentMeta{Name: "NZD/USD", PipSize: 0.0001, PipValuePerStandardLot: 10},
		InstrumentMeta{Name: "USD/CHF", PipSize: 0.0001, PipValuePerStandardLot: 10.20},
		InstrumentMeta{Name: "USD/CAD", PipSize: 0.0001, PipValuePerStandardLot: 7.69},
		InstrumentMeta{Name: "EUR/GBP", PipSize: 0.0001, PipValuePerStandardLot: 12.50},
		InstrumentMeta{Name: "USD/JPY", PipSize: 0.01, PipValuePerStandardLot: 9.09},
		InstrumentMeta{Name: "GBP/JPY", PipSize: 0.01, PipValuePerStandardLot: 9.09},
		InstrumentMeta{Name: "EUR/JPY", PipSize: 0.01, PipValuePerStandardLot: 9.09},
		InstrumentMeta{Name: "AUD/JPY", PipSize: 0.01, PipValuePerStandardLot: 9.09},
		InstrumentMeta{Name: "XAU/USD", PipSize: 0.10, PipValuePerStandardLot: 10},
	)
}

func (t *Table) Lookup(name string) (InstrumentMeta, bool) {
	im, ok := t.meta[name]
	return im, ok
}

// PipSize returns the instrument's smallest price increment that counts as
// one pip, or the default for unknown instruments.
func (t *Table) PipSize(name string) float64 {
	if im, ok := t.meta[name]; ok {
		return im.PipSize
	}
	return DefaultPipSize
}

// PipValuePerStandardLot returns the USD value of one pip of movement on a
// standard lot, or the default for unknown instruments.
func (t *Table) PipValuePerStandardLot(name string) float64 {
	if im, ok := t.meta[name]; ok {
		return im.PipValuePerStandardLot
	}
	return DefaultPipValuePerStandardLot
}

// Names lists the instruments in the table, sorted.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.meta))
	for name := range t.meta {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

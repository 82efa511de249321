package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxlab/fxjournal/checklist"
	"github.com/fxlab/fxjournal/pnl"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := NewSQLite(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j
}

func fp(v float64) *float64 { return &v }

func sampleTrade(id string, day time.Time, p float64) TradeRecord {
	return TradeRecord{
		ID:          id,
		Instrument:  "EUR/USD",
		Direction:   pnl.Long,
		Entry:       1.0850,
		Exit:        1.0900,
		Lots:        0.5,
		PnL:         p,
		ComputedPnL: p,
		Outcome:     pnl.Classify(p),
		Date:        NormalizeDate(day),
	}
}

func TestSQLiteTradeRoundTrip(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rec := sampleTrade("T1", day, 250)
	rec.Swap = 3.5
	rec.Commission = 7
	rec.Comments = "clean breakout"

	require.NoError(t, j.AddTrade(rec))

	got, err := j.GetTrade("T1")
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Instrument, got.Instrument)
	assert.Equal(t, pnl.Long, got.Direction)
	assert.InDelta(t, rec.Entry, got.Entry, 1e-9)
	assert.InDelta(t, rec.Exit, got.Exit, 1e-9)
	assert.InDelta(t, rec.Lots, got.Lots, 1e-9)
	assert.InDelta(t, rec.Swap, got.Swap, 1e-9)
	assert.InDelta(t, rec.Commission, got.Commission, 1e-9)
	assert.InDelta(t, rec.PnL, got.PnL, 1e-9)
	assert.Equal(t, pnl.Win, got.Outcome)
	assert.True(t, got.Date.Equal(rec.Date))
	assert.Equal(t, rec.Comments, got.Comments)
	assert.Nil(t, got.ManualPnL)
}

func TestSQLiteManualOverridePersists(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	rec := sampleTrade("T1", time.Now(), 250)
	rec.ManualPnL = fp(243.75)
	rec.PnL = 243.75

	require.NoError(t, j.AddTrade(rec))

	got, err := j.GetTrade("T1")
	require.NoError(t, err)

	require.NotNil(t, got.ManualPnL)
	assert.InDelta(t, 243.75, *got.ManualPnL, 1e-9)
	assert.InDelta(t, 250, got.ComputedPnL, 1e-9)
	assert.InDelta(t, 243.75, got.PnL, 1e-9)
}

func TestSQLiteUpdateTradeFeesRecompute(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)
	require.NoError(t, j.AddTrade(sampleTrade("T1", time.Now(), 250)))

	require.NoError(t, j.UpdateTrade("T1", TradeUpdate{Swap: fp(5), Commission: fp(10)}))

	got, err := j.GetTrade("T1")
	require.NoError(t, err)

	assert.InDelta(t, 5, got.Swap, 1e-9)
	assert.InDelta(t, 10, got.Commission, 1e-9)
	assert.InDelta(t, 235, got.ComputedPnL, 1e-9)
	assert.InDelta(t, 235, got.PnL, 1e-9)
	assert.Equal(t, pnl.Win, got.Outcome)
}

func TestSQLiteUpdateTradeManualOverride(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)
	require.NoError(t, j.AddTrade(sampleTrade("T1", time.Now(), 250)))

	require.NoError(t, j.UpdateTrade("T1", TradeUpdate{ManualPnL: fp(-12.5)}))

	got, err := j.GetTrade("T1")
	require.NoError(t, err)

	// Override drives PnL and outcome; computed stays as reference.
	assert.InDelta(t, -12.5, got.PnL, 1e-9)
	assert.InDelta(t, 250, got.ComputedPnL, 1e-9)
	assert.Equal(t, pnl.Loss, got.Outcome)
}

func TestSQLiteUpdateTradeComments(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)
	require.NoError(t, j.AddTrade(sampleTrade("T1", time.Now(), 250)))

	comments := "took profit early"
	require.NoError(t, j.UpdateTrade("T1", TradeUpdate{Comments: &comments}))

	got, err := j.GetTrade("T1")
	require.NoError(t, err)

	assert.Equal(t, comments, got.Comments)
	assert.InDelta(t, 250, got.PnL, 1e-9, "comment edit must not touch the numbers")
}

func TestSQLiteDeleteTrade(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)
	require.NoError(t, j.AddTrade(sampleTrade("T1", time.Now(), 250)))

	require.NoError(t, j.DeleteTrade("T1"))

	_, err := j.GetTrade("T1")
	assert.Error(t, err)

	assert.Error(t, j.DeleteTrade("T1"))
}

func TestSQLiteListTradesBetween(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	d1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	require.NoError(t, j.AddTrade(sampleTrade("T1", d1, 100)))
	require.NoError(t, j.AddTrade(sampleTrade("T2", d2, -50)))
	require.NoError(t, j.AddTrade(sampleTrade("T3", d3, 75)))

	got, err := j.ListTradesBetween(
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "T1", got[0].ID)
	assert.Equal(t, "T2", got[1].ID)
}

func TestSQLiteChecklistCRUDAndOrder(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	items := []checklist.Item{
		{ID: "a", Text: "Check trend direction", Order: 0},
		{ID: "b", Text: "Identify support/resistance", Order: 1},
		{ID: "c", Text: "Verify volume confirmation", Order: 2},
	}
	for _, it := range items {
		require.NoError(t, j.AddItem(it))
	}

	checked := true
	require.NoError(t, j.UpdateItem("b", ItemUpdate{Checked: &checked}))

	reordered, err := checklist.Reorder(items, 0, 2)
	require.NoError(t, err)
	require.NoError(t, j.SaveOrder(context.Background(), reordered))

	got, err := j.ListItems()
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
	for i, it := range got {
		assert.Equal(t, i, it.Order)
	}
	assert.True(t, got[0].Checked)

	require.NoError(t, j.DeleteItem("c"))
	got, err = j.ListItems()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSQLiteWatchNotifies(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	ch, cancel := j.Watch()
	defer cancel()

	require.NoError(t, j.AddTrade(sampleTrade("T1", time.Now(), 250)))

	select {
	case ev := <-ch:
		assert.Equal(t, TradeAdded, ev.Kind)
		assert.Equal(t, "T1", ev.ID)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	require.NoError(t, j.DeleteTrade("T1"))

	select {
	case ev := <-ch:
		assert.Equal(t, TradeDeleted, ev.Kind)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestSQLiteWatchCancelStops(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	ch, cancel := j.Watch()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic.
	require.NoError(t, j.AddTrade(sampleTrade("T1", time.Now(), 250)))
}

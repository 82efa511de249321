// journal/sqlite.go
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/fxlab/fxjournal/checklist"
	"github.com/fxlab/fxjournal/pnl"
)

// SQLite is the default Store. All writes are parameterized statements; a
// successful mutation is published to watchers after it commits.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
	notifier
}

func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, log: log}, nil
}

func (j *SQLite) AddTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, instrument, direction, entry_price, exit_price, lots, swap, commission,
		 pnl, computed_pnl, manual_pnl, outcome, trade_date, comments)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Instrument, string(t.Direction), t.Entry, t.Exit, t.Lots, t.Swap, t.Commission,
		t.PnL, t.ComputedPnL, nullable(t.ManualPnL), string(t.Outcome), t.Date, t.Comments,
	)
	if err != nil {
		return err
	}

	j.log.Debug("trade added", zap.String("trade_id", t.ID), zap.String("instrument", t.Instrument))
	j.publish(Event{Kind: TradeAdded, ID: t.ID})
	return nil
}

func (j *SQLite) GetTrade(id string) (TradeRecord, error) {
	row := j.db.QueryRow(tradeSelect+` WHERE trade_id = ?`, id)

	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", id)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// UpdateTrade applies a partial edit and recomputes the stored P&L. The
// gross figure is recovered from the stored computed net plus the old fees,
// so fee edits shift net without touching the price math.
func (j *SQLite) UpdateTrade(id string, u TradeUpdate) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	row := tx.QueryRow(tradeSelect+` WHERE trade_id = ?`, id)
	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("trade %q not found", id)
		}
		return err
	}

	gross := rec.ComputedPnL + rec.Swap + rec.Commission

	if u.Comments != nil {
		rec.Comments = *u.Comments
	}
	if u.Swap != nil {
		rec.Swap = *u.Swap
	}
	if u.Commission != nil {
		rec.Commission = *u.Commission
	}
	if u.ManualPnL != nil {
		rec.ManualPnL = u.ManualPnL
	}

	rec.ComputedPnL = gross - rec.Swap - rec.Commission
	rec.PnL = pnl.Final(rec.ComputedPnL, rec.ManualPnL)
	rec.Outcome = pnl.Classify(rec.PnL)

	_, err = tx.Exec(`
		UPDATE trades
		SET swap = ?, commission = ?, pnl = ?, computed_pnl = ?, manual_pnl = ?,
		    outcome = ?, comments = ?
		WHERE trade_id = ?`,
		rec.Swap, rec.Commission, rec.PnL, rec.ComputedPnL, nullable(rec.ManualPnL),
		string(rec.Outcome), rec.Comments, id,
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	j.log.Debug("trade updated", zap.String("trade_id", id))
	j.publish(Event{Kind: TradeUpdated, ID: id})
	return nil
}

func (j *SQLite) DeleteTrade(id string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}

	j.log.Debug("trade deleted", zap.String("trade_id", id))
	j.publish(Event{Kind: TradeDeleted, ID: id})
	return nil
}

// ListTrades returns all trades, newest first.
func (j *SQLite) ListTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(tradeSelect + ` ORDER BY trade_date DESC`)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// ListTradesBetween returns trades whose date is within [start, end),
// oldest first.
func (j *SQLite) ListTradesBetween(start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.Query(
		tradeSelect+` WHERE trade_date >= ? AND trade_date < ? ORDER BY trade_date ASC`,
		start, end,
	)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

func (j *SQLite) ListItems() ([]checklist.Item, error) {
	rows, err := j.db.Query(`
		SELECT item_id, text, checked, item_order
		FROM checklist
		ORDER BY item_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []checklist.Item
	for rows.Next() {
		var it checklist.Item
		if err := rows.Scan(&it.ID, &it.Text, &it.Checked, &it.Order); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) AddItem(it checklist.Item) error {
	_, err := j.db.Exec(`
		INSERT INTO checklist (item_id, text, checked, item_order)
		VALUES (?, ?, ?, ?)`,
		it.ID, it.Text, it.Checked, it.Order,
	)
	if err != nil {
		return err
	}

	j.publish(Event{Kind: ChecklistChanged, ID: it.ID})
	return nil
}

func (j *SQLite) UpdateItem(id string, u ItemUpdate) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var it checklist.Item
	err = tx.QueryRow(`
		SELECT item_id, text, checked, item_order
		FROM checklist WHERE item_id = ?`, id).
		Scan(&it.ID, &it.Text, &it.Checked, &it.Order)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("checklist item %q not found", id)
		}
		return err
	}

	if u.Text != nil {
		it.Text = *u.Text
	}
	if u.Checked != nil {
		it.Checked = *u.Checked
	}

	if _, err := tx.Exec(`
		UPDATE checklist SET text = ?, checked = ? WHERE item_id = ?`,
		it.Text, it.Checked, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	j.publish(Event{Kind: ChecklistChanged, ID: id})
	return nil
}

func (j *SQLite) DeleteItem(id string) error {
	res, err := j.db.Exec(`DELETE FROM checklist WHERE item_id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("checklist item %q not found", id)
	}

	j.publish(Event{Kind: ChecklistChanged, ID: id})
	return nil
}

// SaveOrder re-stamps the whole list in one transaction so the stored order
// is always a contiguous 0..n-1 permutation.
func (j *SQLite) SaveOrder(ctx context.Context, items []checklist.Item) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, it := range items {
		if _, err := tx.ExecContext(ctx, `
			UPDATE checklist SET item_order = ? WHERE item_id = ?`,
			i, it.ID); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	j.log.Debug("checklist reordered", zap.Int("items", len(items)))
	j.publish(Event{Kind: ChecklistChanged})
	return nil
}

// Watch subscribes to store mutations. The returned cancel func must be
// called when the watcher is done.
func (j *SQLite) Watch() (<-chan Event, func()) {
	return j.watch()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

const tradeSelect = `
	SELECT trade_id, instrument, direction, entry_price, exit_price, lots, swap, commission,
	       pnl, computed_pnl, manual_pnl, outcome, trade_date, comments
	FROM trades`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (TradeRecord, error) {
	var (
		rec       TradeRecord
		direction string
		outcome   string
		manual    sql.NullFloat64
	)

	err := row.Scan(
		&rec.ID,
		&rec.Instrument,
		&direction,
		&rec.Entry,
		&rec.Exit,
		&rec.Lots,
		&rec.Swap,
		&rec.Commission,
		&rec.PnL,
		&rec.ComputedPnL,
		&manual,
		&outcome,
		&rec.Date,
		&rec.Comments,
	)
	if err != nil {
		return TradeRecord{}, err
	}

	rec.Direction = pnl.Direction(direction)
	rec.Outcome = pnl.Outcome(outcome)
	if manual.Valid {
		v := manual.Float64
		rec.ManualPnL = &v
	}
	return rec, nil
}

func collectTrades(rows *sql.Rows) ([]TradeRecord, error) {
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullable(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

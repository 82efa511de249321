// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	instrument TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	lots REAL NOT NULL,
	swap REAL NOT NULL DEFAULT 0,
	commission REAL NOT NULL DEFAULT 0,
	pnl REAL NOT NULL,
	computed_pnl REAL NOT NULL,
	manual_pnl REAL,
	outcome TEXT NOT NULL,
	trade_date DATETIME NOT NULL,
	comments TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date);

CREATE TABLE IF NOT EXISTS checklist (
	item_id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	checked INTEGER NOT NULL DEFAULT 0,
	item_order INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checklist_order ON checklist(item_order);
`

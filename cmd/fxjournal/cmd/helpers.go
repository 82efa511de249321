package cmd

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fxlab/fxjournal/config"
	"github.com/fxlab/fxjournal/internal/logger"
	"github.com/fxlab/fxjournal/journal"
)

func loadConfig() (*config.Config, error) {
	if cfgPath != "" {
		return config.LoadFromFile(cfgPath)
	}
	return config.Default(), nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}

func openStore(cfg *config.Config, log *zap.Logger) (*journal.SQLite, error) {
	path := cfg.Journal.DBPath
	if dbPath != "" {
		path = dbPath
	}
	j, err := journal.NewSQLite(path, log)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func parseDay(day string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", day, time.Local)
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}

func formatTrade(t journal.TradeRecord) string {
	line := fmt.Sprintf("%s  %s  %-7s %-5s  %.5f -> %.5f  %.2f lots  %+.2f %s",
		t.ID, t.Date.Format("2006-01-02"), t.Instrument, t.Direction,
		t.Entry, t.Exit, t.Lots, t.PnL, t.Outcome)
	if t.ManualPnL != nil {
		line += fmt.Sprintf("  (computed %+.2f)", t.ComputedPnL)
	}
	if t.Comments != "" {
		line += "  # " + t.Comments
	}
	return line
}

package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fxlab/fxjournal/journal"
	"github.com/fxlab/fxjournal/market"
	"github.com/fxlab/fxjournal/pkg/id"
	"github.com/fxlab/fxjournal/pnl"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a trade",
	Long: `Log a trade from entry/exit/lot inputs, or from a broker-reported P&L.

The P&L is computed from the instrument's pip conventions. Passing --pnl
records that figure instead, keeping the computed value as a reference.

Examples:
  fxjournal add --pair EUR/USD --direction Long --entry 1.0850 --exit 1.0900 --lots 0.5
  fxjournal add --pair USD/JPY --direction Short --entry 148.50 --exit 148.00 --lots 0.5 --swap 3.20
  fxjournal add --pair EUR/USD --direction Long --pnl 125.40 --comments "broker statement"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate       string
	addPair       string
	addDirection  string
	addEntry      float64
	addExit       float64
	addLots       float64
	addSwap       float64
	addCommission float64
	addManualPnL  float64
	addComments   string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "trade date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addPair, "pair", "EUR/USD", "instrument, e.g. EUR/USD")
	addCmd.Flags().StringVar(&addDirection, "direction", "Long", "Long or Short")
	addCmd.Flags().Float64Var(&addEntry, "entry", 0, "entry price")
	addCmd.Flags().Float64Var(&addExit, "exit", 0, "exit price")
	addCmd.Flags().Float64Var(&addLots, "lots", 0, "lot size (1 lot = 100,000 units)")
	addCmd.Flags().Float64Var(&addSwap, "swap", 0, "swap charge in USD")
	addCmd.Flags().Float64Var(&addCommission, "commission", 0, "commission charge in USD")
	addCmd.Flags().Float64Var(&addManualPnL, "pnl", 0, "broker-reported P&L, overrides the computed figure")
	addCmd.Flags().StringVar(&addComments, "comments", "", "free-text notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	dir := pnl.Direction(addDirection)
	if dir != pnl.Long && dir != pnl.Short {
		return fmt.Errorf("direction must be Long or Short, got %q", addDirection)
	}

	in := pnl.Inputs{
		Instrument: addPair,
		Direction:  dir,
		Swap:       addSwap,
		Commission: addCommission,
	}
	if cmd.Flags().Changed("entry") {
		in.Entry = &addEntry
	}
	if cmd.Flags().Changed("exit") {
		in.Exit = &addExit
	}
	if cmd.Flags().Changed("lots") {
		in.Lots = &addLots
	}

	var manual *float64
	if cmd.Flags().Changed("pnl") {
		manual = &addManualPnL
	}

	res, err := pnl.Compute(market.DefaultTable(), in)
	if err != nil {
		if !errors.Is(err, pnl.ErrIncompleteInput) {
			return err
		}
		if manual == nil {
			return fmt.Errorf("entry, exit and lots are required unless --pnl is given: %w", err)
		}
		// Manual-only entry: no computed reference.
	}

	day := addDate
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	date, err := parseDay(day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	final := pnl.Final(res.Net, manual)
	rec := journal.TradeRecord{
		ID:          id.New(),
		Instrument:  addPair,
		Direction:   dir,
		Entry:       addEntry,
		Exit:        addExit,
		Lots:        addLots,
		Swap:        addSwap,
		Commission:  addCommission,
		PnL:         final,
		ComputedPnL: res.Net,
		ManualPnL:   manual,
		Outcome:     pnl.Classify(final),
		Date:        journal.NormalizeDate(date),
		Comments:    addComments,
	}

	if err := store.AddTrade(rec); err != nil {
		return fmt.Errorf("add trade: %w", err)
	}

	fmt.Println(formatTrade(rec))
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fxlab/fxjournal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summary statistics over a date window",
	Long: `Aggregate the journal into win rate, extremes, instrument frequency and
a cumulative P&L series. The window defaults to the last 30 days.

With --follow the summary is recomputed whenever the journal changes.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsFrom   string
	statsTo     string
	statsFollow bool
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFrom, "from", "", "window start YYYY-MM-DD (default 30 days ago)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "window end YYYY-MM-DD (default today)")
	statsCmd.Flags().BoolVar(&statsFollow, "follow", false, "keep recomputing as the journal changes")
}

func runStats(cmd *cobra.Command, args []string) error {
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

	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if statsFrom != "" {
		if from, err = parseDay(statsFrom); err != nil {
			return fmt.Errorf("from: %w", err)
		}
	}
	if statsTo != "" {
		if to, err = parseDay(statsTo); err != nil {
			return fmt.Errorf("to: %w", err)
		}
	}

	refresh := func() error {
		trades, err := store.ListTrades()
		if err != nil {
			return fmt.Errorf("query trades: %w", err)
		}
		printSummary(stats.Aggregate(trades, from, to), from, to)
		return nil
	}

	if err := refresh(); err != nil {
		return err
	}
	if !statsFollow {
		return nil
	}

	events, cancel := store.Watch()
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sigCh:
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := refresh(); err != nil {
				return err
			}
		}
	}
}

func printSummary(s stats.Summary, from, to time.Time) {
	fmt.Printf("window      %s .. %s\n", from.Format("2006-01-02"), to.Format("2006-01-02"))
	fmt.Printf("trades      %d\n", s.TradeCount)
	fmt.Printf("total P&L   %+.2f\n", s.TotalPnL)
	fmt.Printf("win rate    %.1f%%\n", s.WinRate)
	fmt.Printf("avg P&L     %+.2f\n", s.AvgPnL)

	if s.BiggestWin != nil {
		fmt.Printf("biggest win   %s %+.2f on %s\n",
			s.BiggestWin.Instrument, s.BiggestWin.PnL, s.BiggestWin.Date.Format("2006-01-02"))
	}
	if s.BiggestLoss != nil {
		fmt.Printf("biggest loss  %s %+.2f on %s\n",
			s.BiggestLoss.Instrument, s.BiggestLoss.PnL, s.BiggestLoss.Date.Format("2006-01-02"))
	}
	if s.MostTraded != nil {
		fmt.Printf("most traded   %s (%d)\n", s.MostTraded.Instrument, s.MostTraded.Count)
	}
	if s.LeastTraded != nil {
		fmt.Printf("least traded  %s (%d)\n", s.LeastTraded.Instrument, s.LeastTraded.Count)
	}

	if len(s.Series) > 0 {
		fmt.Println("cumulative P&L:")
		for _, p := range s.Series {
			fmt.Printf("  %s  %+10.2f  %+10.2f\n",
				p.Date.Format("2006-01-02"), p.PnL, p.Cumulative)
		}
	}
}

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "fxjournal",
	Short: "Log forex trades and see the numbers that matter",
	Long: `fxjournal is a forex trade journal with a deterministic analytics core.

It provides tools for:
  - Logging trades with pip-correct P/L accounting
  - Risk-based position sizing
  - Win rate, extremes and cumulative P/L over any date window
  - A reorderable pre-trade checklist
  - CSV export of the journal`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
}

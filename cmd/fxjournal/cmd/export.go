package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fxlab/fxjournal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	trades, err := store.ListTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Date.Before(trades[j].Date)
	})

	out := cfg.Journal.ExportPath
	if exportOut != "" {
		out = exportOut
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := journal.ExportCSV(f, trades); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	fmt.Printf("exported %d trades to %s\n", len(trades), out)
	return nil
}

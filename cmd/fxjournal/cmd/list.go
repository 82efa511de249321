package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fxlab/fxjournal/journal"
)

var listCmd = &cobra.Command{
	Use:   "list [YYYY-MM-DD]",
	Short: "List trades, all or for one day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var editCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Edit a trade's comments, fees or manual P&L",
	Long: `Apply a partial edit to a logged trade. Only the given flags change;
fee and P&L edits recompute the stored outcome.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editComments   string
	editSwap       float64
	editCommission float64
	editManualPnL  float64
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editComments, "comments", "", "replace the trade's notes")
	editCmd.Flags().Float64Var(&editSwap, "swap", 0, "replace the swap charge")
	editCmd.Flags().Float64Var(&editCommission, "commission", 0, "replace the commission charge")
	editCmd.Flags().Float64Var(&editManualPnL, "pnl", 0, "set a broker-reported P&L override")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	var trades []journal.TradeRecord
	if len(args) == 1 {
		start, end, err := dayBounds(time.Local, args[0])
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		trades, err = store.ListTradesBetween(start, end)
		if err != nil {
			return fmt.Errorf("query trades: %w", err)
		}
	} else {
		trades, err = store.ListTrades()
		if err != nil {
			return fmt.Errorf("query trades: %w", err)
		}
	}

	if len(trades) == 0 {
		fmt.Println("no trades")
		return nil
	}
	for _, t := range trades {
		fmt.Println(formatTrade(t))
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteTrade(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	var u journal.TradeUpdate
	if cmd.Flags().Changed("comments") {
		u.Comments = &editComments
	}
	if cmd.Flags().Changed("swap") {
		u.Swap = &editSwap
	}
	if cmd.Flags().Changed("commission") {
		u.Commission = &editCommission
	}
	if cmd.Flags().Changed("pnl") {
		u.ManualPnL = &editManualPnL
	}
	if u.Comments == nil && u.Swap == nil && u.Commission == nil && u.ManualPnL == nil {
		return fmt.Errorf("nothing to edit: pass at least one of --comments, --swap, --commission, --pnl")
	}

	if err := store.UpdateTrade(args[0], u); err != nil {
		return err
	}

	rec, err := store.GetTrade(args[0])
	if err != nil {
		return err
	}
	fmt.Println(formatTrade(rec))
	return nil
}

package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/fxlab/fxjournal/market"
	"github.com/fxlab/fxjournal/risk"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a position from an account-risk budget",
	Long: `Convert account size, risk percentage and stop-loss distance into a lot
size. Balance, risk and stop default from the config.

Given --entry, --stop-price and --take-profit, the planned reward:risk
multiple is shown as well.

Example:
  fxjournal size --balance 10000 --risk 1 --stop 50 --pair EUR/USD`,
	Args: cobra.NoArgs,
	RunE: runSize,
}

var (
	sizeBalance    float64
	sizeRisk       float64
	sizeStop       float64
	sizePair       string
	sizeEntry      float64
	sizeStopPrice  float64
	sizeTakeProfit float64
)

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().Float64Var(&sizeBalance, "balance", 0, "account balance (default from config)")
	sizeCmd.Flags().Float64Var(&sizeRisk, "risk", 0, "risk percent, 1 == 1% (default from config)")
	sizeCmd.Flags().Float64Var(&sizeStop, "stop", 0, "stop loss distance in pips (default from config)")
	sizeCmd.Flags().StringVar(&sizePair, "pair", "EUR/USD", "instrument, e.g. EUR/USD")
	sizeCmd.Flags().Float64Var(&sizeEntry, "entry", 0, "planned entry price")
	sizeCmd.Flags().Float64Var(&sizeStopPrice, "stop-price", 0, "planned stop price")
	sizeCmd.Flags().Float64Var(&sizeTakeProfit, "take-profit", 0, "planned take-profit price")
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := risk.SizeInputs{
		AccountBalance: cfg.Account.Balance,
		RiskPercent:    cfg.Risk.DefaultRiskPercent,
		StopLossPips:   cfg.Risk.DefaultStopPips,
		Instrument:     sizePair,
	}
	if cmd.Flags().Changed("balance") {
		in.AccountBalance = sizeBalance
	}
	if cmd.Flags().Changed("risk") {
		in.RiskPercent = sizeRisk
	}
	if cmd.Flags().Changed("stop") {
		in.StopLossPips = sizeStop
	}

	res, err := risk.Size(market.DefaultTable(), in)
	if err != nil {
		return err
	}

	// Rounding happens here, at the presentation boundary.
	fmt.Printf("risk amount    %.2f %s\n", res.RiskAmount, cfg.Account.Currency)
	fmt.Printf("pip value      %.2f/pip per standard lot\n", res.PipValue)
	fmt.Printf("lot size       %.2f\n", res.LotSize)
	fmt.Printf("position size  %.0f units\n", math.Round(res.PositionUnits))

	bracket := cmd.Flags().Changed("entry") &&
		cmd.Flags().Changed("stop-price") &&
		cmd.Flags().Changed("take-profit")
	if bracket {
		fmt.Printf("planned R:R    %.2f\n", risk.RR(sizeEntry, sizeStopPrice, sizeTakeProfit))
		fmt.Printf("risk of equity %.2f%%\n", 100*risk.RiskPct(res.RiskAmount, in.AccountBalance))
	}
	return nil
}

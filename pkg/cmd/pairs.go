package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/quantmarket/hooktrader/pkg/types"
)

var pairsCmd = &cobra.Command{
	Use:          "pairs",
	Short:        "list the eligible trading pairs and margin defaults per trade type",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Trade Type", "Pairs", "Margin", "Leverage"})

		for _, tradeType := range types.SupportedTradeTypes {
			profile := types.MustProfileOf(tradeType)
			margin := string(profile.DefaultMarginMode)
			if !profile.MarginCapable {
				margin += " (locked)"
			}

			t.AppendRow(table.Row{
				tradeType,
				strings.Join(profile.EligibleSymbols, ", "),
				margin,
				profile.DefaultLeverage,
			})
		}

		t.Render()
		fmt.Println("quantity presets:", strings.Join(types.QuantityPresets, " "))
	},
}

func init() {
	RootCmd.AddCommand(pairsCmd)
}

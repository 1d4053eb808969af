package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmarket/hooktrader/pkg/config"
	"github.com/quantmarket/hooktrader/pkg/service"
	"github.com/quantmarket/hooktrader/pkg/trader"
	"github.com/quantmarket/hooktrader/pkg/types"
	"github.com/quantmarket/hooktrader/pkg/webhook"
)

// go run ./cmd/hooktrader send --type=perps --symbol=BTC-USDT-SWAP --side=buy --qty=50% --leverage=20
var sendCmd = &cobra.Command{
	Use:          "send",
	Short:        "compose a trade order and dispatch it to the webhook",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}

		session := trader.NewSession(webhook.NewClient(cfg.Webhook))

		if err := applyOrderFlags(cmd, session); err != nil {
			return err
		}

		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}

		if dryRun {
			payload, err := session.BuildPayload()
			if err != nil {
				return err
			}

			return printPayload(payload)
		}

		if len(cfg.Database.DSN) > 0 {
			db := service.NewDatabaseService(cfg.Database.DSN)
			if err := db.Connect(); err != nil {
				return err
			}
			defer db.Close()

			session.BindRequestLog(&service.RequestLogService{DB: db.DB})
		}

		response, err := session.Submit(ctx)
		if err != nil {
			return err
		}

		log.Infof("order sent successfully: %s", response.Body)
		return nil
	},
}

// applyOrderFlags feeds the flag values through the session in dependency
// order: the trade type resets symbol and margin defaults, so it has to land
// before the fields it constrains.
func applyOrderFlags(cmd *cobra.Command, session *trader.Session) error {
	flags := cmd.Flags()

	exchange, err := flags.GetString("exchange")
	if err != nil {
		return err
	}
	if err := session.SetExchange(exchange); err != nil {
		return err
	}

	tradeType, err := flags.GetString("type")
	if err != nil {
		return err
	}
	if err := session.SetTradeType(tradeType); err != nil {
		return err
	}

	if flags.Changed("symbol") {
		symbol, err := flags.GetString("symbol")
		if err != nil {
			return err
		}
		if err := session.SetSymbol(symbol); err != nil {
			return err
		}
	}

	if flags.Changed("margin-mode") {
		mode, err := flags.GetString("margin-mode")
		if err != nil {
			return err
		}
		if err := session.SetMarginMode(mode); err != nil {
			return err
		}
	}

	if flags.Changed("leverage") {
		leverage, err := flags.GetInt("leverage")
		if err != nil {
			return err
		}
		if err := session.SetLeverage(leverage); err != nil {
			return err
		}
	}

	closing, err := flags.GetBool("close")
	if err != nil {
		return err
	}
	session.SetClosePosition(closing)

	if flags.Changed("side") {
		side, err := flags.GetString("side")
		if err != nil {
			return err
		}
		if err := session.SetSide(side); err != nil {
			return err
		}
	}

	if flags.Changed("qty") {
		qty, err := flags.GetString("qty")
		if err != nil {
			return err
		}
		session.SetQuantity(qty)
	}

	return nil
}

func printPayload(payload types.OrderPayload) error {
	document, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(document, &fields); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, key := range []string{"exchange", "symbol", "type", "marginMode", "leverage", "side", "qty", "closePosition"} {
		if value, ok := fields[key]; ok {
			t.AppendRow(table.Row{key, fmt.Sprintf("%v", value)})
		}
	}
	t.Render()

	return nil
}

func init() {
	sendCmd.Flags().String("exchange", "okx", "target exchange, okx or binance")
	sendCmd.Flags().String("type", "spot", "trade type, one of spot, perps, invperps")
	sendCmd.Flags().String("symbol", "", "trading pair, defaults to the trade type's first eligible pair")
	sendCmd.Flags().String("side", "", "order side, buy or sell")
	sendCmd.Flags().String("qty", "", `order quantity, absolute like "1.5" or a percentage like "50%"`)
	sendCmd.Flags().String("margin-mode", "", "margin mode, cross or isolated (leveraged types only)")
	sendCmd.Flags().Int("leverage", 0, "leverage multiplier (leveraged types only)")
	sendCmd.Flags().Bool("close", false, "close the open position instead of opening one")
	sendCmd.Flags().Bool("dry-run", false, "print the payload without sending it")

	RootCmd.AddCommand(sendCmd)
}

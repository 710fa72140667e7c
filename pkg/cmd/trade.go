package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

func init() {
	openOrdersCmd.Flags().String("market", "", "only show the open orders of this market")

	tradeCmd.Flags().String("type", "", "trade type: BUY or SELL")
	tradeCmd.Flags().String("amount", "", "trade amount")
	tradeCmd.Flags().String("price", "", "trade price")
	tradeCmd.Flags().Int("base", int(novaapi.TradeBaseMarket), "0 for amount in market currency, 1 for amount in base currency")

	RootCmd.AddCommand(openOrdersCmd)
	RootCmd.AddCommand(cancelOrderCmd)
	RootCmd.AddCommand(tradeCmd)
	RootCmd.AddCommand(tradeHistoryCmd)
}

// go run ./cmd/novactl open-orders --market LTC_MEOW
var openOrdersCmd = &cobra.Command{
	Use:          "open-orders [--market MARKET]",
	Short:        "Show your open orders",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		market, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		return runQuery(cmd, "open-orders", true, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			if len(market) > 0 {
				return client.MyOpenOrdersMarket(ctx, market)
			}

			return client.MyOpenOrders(ctx)
		})
	},
}

var cancelOrderCmd = &cobra.Command{
	Use:          "cancel-order ORDER_ID",
	Short:        "Cancel an open order",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid order id %q", args[0])
		}

		return runQuery(cmd, "cancel-order", true, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.CancelOrder(ctx, orderID)
		})
	},
}

var tradeHistoryCmd = newPrivateCmd("trade-history", "Show your trade history",
	func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
		return client.TradeHistory(ctx)
	})

type tradeArgs struct {
	tradeType     novaapi.TradeType
	amount, price decimal.Decimal
	base          novaapi.TradeBase
}

func parseTradeArgs(cmd *cobra.Command) (*tradeArgs, error) {
	tradeType, err := cmd.Flags().GetString("type")
	if err != nil {
		return nil, err
	}

	amountStr, err := cmd.Flags().GetString("amount")
	if err != nil {
		return nil, err
	}

	priceStr, err := cmd.Flags().GetString("price")
	if err != nil {
		return nil, err
	}

	base, err := cmd.Flags().GetInt("base")
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", amountStr)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid price %q", priceStr)
	}

	return &tradeArgs{
		tradeType: novaapi.TradeType(strings.ToUpper(tradeType)),
		amount:    amount,
		price:     price,
		base:      novaapi.TradeBase(base),
	}, nil
}

// go run ./cmd/novactl trade LTC_MEOW --type SELL --amount 8000 --price 0.00000008
var tradeCmd = &cobra.Command{
	Use:          "trade MARKET --type BUY|SELL --amount AMOUNT --price PRICE [--base 0]",
	Short:        "Place an order",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ta, err := parseTradeArgs(cmd)
		if err != nil {
			return err
		}

		return runQuery(cmd, "trade", true, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.Trade(ctx, args[0], ta.tradeType, ta.amount, ta.price, ta.base)
		})
	},
}

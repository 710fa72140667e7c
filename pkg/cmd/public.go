package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

func init() {
	marketOpenOrdersCmd.Flags().String("side", string(novaapi.OrderSideBoth), "order side: BUY, SELL or BOTH")

	RootCmd.AddCommand(marketsCmd)
	RootCmd.AddCommand(marketInfoCmd)
	RootCmd.AddCommand(marketOrderHistoryCmd)
	RootCmd.AddCommand(marketOpenOrdersCmd)
}

// go run ./cmd/novactl markets
var marketsCmd = &cobra.Command{
	Use:          "markets",
	Short:        "List all market summaries",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, "markets", false, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.Markets(ctx)
		})
	},
}

// go run ./cmd/novactl market-info LTC_MEOW
var marketInfoCmd = &cobra.Command{
	Use:          "market-info MARKET",
	Short:        "Show the summary of a market",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, "market-info", false, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.MarketInfo(ctx, args[0])
		})
	},
}

var marketOrderHistoryCmd = &cobra.Command{
	Use:          "market-orderhistory MARKET",
	Short:        "Show the order history of a market",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, "market-orderhistory", false, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.MarketOrderHistory(ctx, args[0])
		})
	},
}

// go run ./cmd/novactl market-openorders LTC_MEOW --side SELL
var marketOpenOrdersCmd = &cobra.Command{
	Use:          "market-openorders MARKET [--side BOTH]",
	Short:        "Show the public open orders of a market",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		side, err := cmd.Flags().GetString("side")
		if err != nil {
			return err
		}

		return runQuery(cmd, "market-openorders", false, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.MarketOpenOrders(ctx, args[0], novaapi.OrderSide(strings.ToUpper(side)))
		})
	},
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

func init() {
	RootCmd.AddCommand(queryCmd)
}

// go run ./cmd/novactl query getbalance/BTC
// go run ./cmd/novactl query trade/LTC_MEOW tradetype=BUY tradebase=0 tradeprice=0.1 tradeamount=1
var queryCmd = &cobra.Command{
	Use:          "query METHOD [KEY=VALUE...]",
	Short:        "Dispatch a raw api method",
	SilenceUsage: true,
	Args:         cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := args[0]
		params, err := parseFormArgs(args[1:])
		if err != nil {
			return err
		}

		private := novaapi.Classify(method) == novaapi.EndpointPrivate
		return runQuery(cmd, "query "+method, private, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.Dispatch(ctx, method, params)
		})
	},
}

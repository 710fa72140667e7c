package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

func init() {
	RootCmd.AddCommand(balancesCmd)
	RootCmd.AddCommand(balanceCmd)
	RootCmd.AddCommand(depositsCmd)
	RootCmd.AddCommand(withdrawalsCmd)
	RootCmd.AddCommand(newDepositAddressCmd)
	RootCmd.AddCommand(depositAddressCmd)
	RootCmd.AddCommand(depositHistoryCmd)
	RootCmd.AddCommand(withdrawalHistoryCmd)
	RootCmd.AddCommand(walletStatusCmd)
	RootCmd.AddCommand(withdrawCmd)
}

// newPrivateCmd creates a command for a private method without arguments.
func newPrivateCmd(use, short string, fn queryFunc) *cobra.Command {
	return &cobra.Command{
		Use:          use,
		Short:        short,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, use, true, fn)
		},
	}
}

// newCurrencyCmd creates a command for a private method taking a single currency argument.
func newCurrencyCmd(name, short string, fn func(ctx context.Context, client *novaapi.RestClient, currency string) ([]byte, error)) *cobra.Command {
	return &cobra.Command{
		Use:          name + " CURRENCY",
		Short:        short,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, name, true, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
				return fn(ctx, client, args[0])
			})
		},
	}
}

// go run ./cmd/novactl balances
var balancesCmd = newPrivateCmd("balances", "Show account balances",
	func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
		return client.GetBalances(ctx)
	})

var balanceCmd = newCurrencyCmd("balance", "Show the balance of a currency",
	func(ctx context.Context, client *novaapi.RestClient, currency string) ([]byte, error) {
		return client.GetBalance(ctx, currency)
	})

var depositsCmd = newPrivateCmd("deposits", "Show incoming deposits",
	func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
		return client.GetDeposits(ctx)
	})

var withdrawalsCmd = newPrivateCmd("withdrawals", "Show outgoing withdrawals",
	func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
		return client.GetWithdrawals(ctx)
	})

var newDepositAddressCmd = newCurrencyCmd("new-deposit-address", "Generate a new deposit address",
	func(ctx context.Context, client *novaapi.RestClient, currency string) ([]byte, error) {
		return client.GetNewDepositAddress(ctx, currency)
	})

var depositAddressCmd = newCurrencyCmd("deposit-address", "Show the deposit address of a currency",
	func(ctx context.Context, client *novaapi.RestClient, currency string) ([]byte, error) {
		return client.GetDepositAddress(ctx, currency)
	})

var depositHistoryCmd = newPrivateCmd("deposit-history", "Show the deposit history",
	func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
		return client.GetDepositHistory(ctx)
	})

var withdrawalHistoryCmd = newPrivateCmd("withdrawal-history", "Show the withdrawal history",
	func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
		return client.GetWithdrawalHistory(ctx)
	})

// go run ./cmd/novactl wallet-status LTC
var walletStatusCmd = &cobra.Command{
	Use:          "wallet-status [CURRENCY]",
	Short:        "Show the status of all wallets or a single wallet",
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var currency string
		if len(args) > 0 {
			currency = args[0]
		}

		return runQuery(cmd, "wallet-status", true, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.WalletStatus(ctx, currency)
		})
	},
}

// go run ./cmd/novactl withdraw MEOW 1000.12345678 KF2yLFLcZwYigRDw5Uo9U4B9hEaLqwkVxL
var withdrawCmd = &cobra.Command{
	Use:          "withdraw CURRENCY AMOUNT ADDRESS",
	Short:        "Withdraw currency to an external address",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid amount %q", args[1])
		}

		return runQuery(cmd, "withdraw", true, func(ctx context.Context, client *novaapi.RestClient) ([]byte, error) {
			return client.Withdraw(ctx, args[0], amount, args[2])
		})
	},
}

package novaapi

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

func (c *RestClient) GetBalances(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "getbalances", nil)
}

func (c *RestClient) GetBalance(ctx context.Context, currency string) ([]byte, error) {
	return c.Dispatch(ctx, joinPath("getbalance", currency), nil)
}

// GetDeposits returns the incoming deposits that are not confirmed yet.
func (c *RestClient) GetDeposits(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "getdeposits", nil)
}

// GetWithdrawals returns the outgoing withdrawals in progress.
func (c *RestClient) GetWithdrawals(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "getwithdrawals", nil)
}

func (c *RestClient) GetNewDepositAddress(ctx context.Context, currency string) ([]byte, error) {
	return c.Dispatch(ctx, joinPath("getnewdepositaddress", currency), nil)
}

func (c *RestClient) GetDepositAddress(ctx context.Context, currency string) ([]byte, error) {
	return c.Dispatch(ctx, joinPath("getdepositaddress", currency), nil)
}

func (c *RestClient) GetDepositHistory(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "getdeposithistory", nil)
}

func (c *RestClient) GetWithdrawalHistory(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "getwithdrawalhistory", nil)
}

// Withdraw sends amount of currency to an external address.
func (c *RestClient) Withdraw(ctx context.Context, currency string, amount decimal.Decimal, address string) ([]byte, error) {
	params := url.Values{}
	params.Set("currency", currency)
	params.Set("amount", amount.String())
	params.Set("address", address)
	return c.Dispatch(ctx, joinPath("withdraw", currency), params)
}

// WalletStatus returns the status of every wallet, or of a single wallet when currency is not empty.
func (c *RestClient) WalletStatus(ctx context.Context, currency string) ([]byte, error) {
	if len(currency) == 0 {
		return c.Dispatch(ctx, "walletstatus", nil)
	}

	return c.Dispatch(ctx, joinPath("walletstatus", currency), nil)
}

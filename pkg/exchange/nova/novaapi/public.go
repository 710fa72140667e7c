package novaapi

import (
	"context"
)

// Markets lists every market summary including the cached ticker data.
func (c *RestClient) Markets(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "markets", nil)
}

// MarketInfo returns the summary of a single market, e.g. "LTC_MEOW".
func (c *RestClient) MarketInfo(ctx context.Context, market string) ([]byte, error) {
	return c.Dispatch(ctx, joinPath("market/info", market), nil)
}

// MarketOrderHistory returns the ticker / order history of a single market.
func (c *RestClient) MarketOrderHistory(ctx context.Context, market string) ([]byte, error) {
	return c.Dispatch(ctx, joinPath("market/orderhistory", market), nil)
}

// MarketOpenOrders returns the public open orders of a single market on the given side.
func (c *RestClient) MarketOpenOrders(ctx context.Context, market string, side OrderSide) ([]byte, error) {
	if err := side.Validate(); err != nil {
		return nil, err
	}

	return c.Dispatch(ctx, joinPath("market/openorders", market, string(side)), nil)
}

package novaapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

func (c *RestClient) MyOpenOrders(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "myopenorders", nil)
}

func (c *RestClient) MyOpenOrdersMarket(ctx context.Context, market string) ([]byte, error) {
	return c.Dispatch(ctx, joinPath("myopenorders_market", market), nil)
}

func (c *RestClient) CancelOrder(ctx context.Context, orderID uint64) ([]byte, error) {
	return c.Dispatch(ctx, joinPath("cancelorder", strconv.FormatUint(orderID, 10)), nil)
}

func (c *RestClient) TradeHistory(ctx context.Context) ([]byte, error) {
	return c.Dispatch(ctx, "tradehistory", nil)
}

// Trade places an order on market. base tells whether amount is counted in
// the market currency (TradeBaseMarket) or in the base currency (TradeBaseBase).
func (c *RestClient) Trade(
	ctx context.Context, market string, tradeType TradeType, amount, price decimal.Decimal, base TradeBase,
) ([]byte, error) {
	if err := tradeType.Validate(); err != nil {
		return nil, err
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("tradetype", string(tradeType))
	params.Set("tradebase", base.String())
	params.Set("tradeprice", price.String())
	params.Set("tradeamount", amount.String())
	return c.Dispatch(ctx, joinPath("trade", market), params)
}

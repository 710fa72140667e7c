package novaapi

import (
	"strconv"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
	OrderSideBoth OrderSide = "BOTH"
)

func (s OrderSide) Validate() error {
	switch s {
	case OrderSideBuy, OrderSideSell, OrderSideBoth:
		return nil
	}

	return newUsageError("market/openorders", "%s is not a valid order side, please use BUY, SELL, or BOTH", string(s))
}

type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
)

func (t TradeType) Validate() error {
	switch t {
	case TradeTypeBuy, TradeTypeSell:
		return nil
	}

	return newUsageError("trade", "trade type %s is invalid, set as BUY or SELL", string(t))
}

// TradeBase selects the currency of the trade amount.
type TradeBase int

const (
	// TradeBaseMarket means the amount is in the market currency
	TradeBaseMarket TradeBase = 0
	// TradeBaseBase means the amount is in the base currency
	TradeBaseBase TradeBase = 1
)

func (b TradeBase) Validate() error {
	switch b {
	case TradeBaseMarket, TradeBaseBase:
		return nil
	}

	return newUsageError("trade", "tradebase %d is invalid, set as 0 for market currency or 1 for base currency", int(b))
}

func (b TradeBase) String() string {
	return strconv.Itoa(int(b))
}

package novaapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/novaex/pkg/testing/httptesting"
)

func TestRestClient_Trade(t *testing.T) {
	client, transport := newMockClient(t, testKey, testSecret)
	transport.POST("/remote/v2/private/trade/LTC_MEOW/", httptesting.RespondString(http.StatusOK, `{"status":"success"}`))

	amount := decimal.RequireFromString("8000")
	price := decimal.NewFromFloat(0.00000008)

	body, err := client.Trade(context.Background(), "LTC_MEOW", TradeTypeSell, amount, price, TradeBaseMarket)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"success"}`, string(body))

	form, err := url.ParseQuery(string(transport.LastRequest().Body))
	require.NoError(t, err)
	assert.Equal(t, "SELL", form.Get("tradetype"))
	assert.Equal(t, "0", form.Get("tradebase"))
	assert.Equal(t, "0.00000008", form.Get("tradeprice"))
	assert.Equal(t, "8000", form.Get("tradeamount"))
	assert.Equal(t, testKey, form.Get("apikey"))
}

func TestRestClient_TradeInvalidArguments(t *testing.T) {
	one := decimal.NewFromInt(1)

	testCases := []struct {
		name      string
		tradeType TradeType
		base      TradeBase
	}{
		{"both is not a trade type", TradeType("BOTH"), TradeBaseMarket},
		{"lower case trade type", TradeType("buy"), TradeBaseMarket},
		{"empty trade type", TradeType(""), TradeBaseBase},
		{"negative base", TradeTypeBuy, TradeBase(-1)},
		{"base two", TradeTypeSell, TradeBase(2)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, transport := newMockClient(t, testKey, testSecret)

			body, err := client.Trade(context.Background(), "LTC_MEOW", tc.tradeType, one, one, tc.base)
			assert.Nil(t, body)
			assert.True(t, IsUsageError(err), "got %v", err)
			assert.Empty(t, transport.Requests())
		})
	}
}

func TestEnumValidate(t *testing.T) {
	assert.NoError(t, OrderSideBuy.Validate())
	assert.NoError(t, OrderSideSell.Validate())
	assert.NoError(t, OrderSideBoth.Validate())
	assert.Error(t, OrderSide("NONE").Validate())

	assert.NoError(t, TradeTypeBuy.Validate())
	assert.NoError(t, TradeTypeSell.Validate())
	assert.Error(t, TradeType("BOTH").Validate())

	assert.NoError(t, TradeBaseMarket.Validate())
	assert.NoError(t, TradeBaseBase.Validate())
	assert.Error(t, TradeBase(3).Validate())
	assert.Equal(t, "1", TradeBaseBase.String())
}

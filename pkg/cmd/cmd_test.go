package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
	"github.com/c9s/novaex/pkg/testing/httptesting"
)

func mockClient(t *testing.T, transport *httptesting.MockTransport) {
	t.Helper()

	orig := newClient
	t.Cleanup(func() { newClient = orig })

	newClient = func(private bool) (*novaapi.RestClient, error) {
		return novaapi.NewClientWithHttpClient(novaapi.RestBaseURL, httptesting.NewMockClient(transport), "key", "secret"), nil
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestParseFormArgs(t *testing.T) {
	params, err := parseFormArgs([]string{"tradetype=BUY", "tradeprice=0.1", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"tradetype":  {"BUY"},
		"tradeprice": {"0.1"},
		"note":       {"a=b"},
	}, params)

	_, err = parseFormArgs([]string{"novalue"})
	assert.Error(t, err)

	_, err = parseFormArgs([]string{"=value"})
	assert.Error(t, err)
}

func TestMarketInfoCmd(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/remote/v2/market/info/LTC_MEOW/", httptesting.RespondString(http.StatusOK, `{"status":"success"}`))
	mockClient(t, transport)

	out, err := execute(t, "market-info", "LTC_MEOW")
	require.NoError(t, err)
	assert.Equal(t, "{\"status\":\"success\"}\n", out)
}

func TestQueryCmd(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.POST("/remote/v2/private/walletstatus/LTC/", httptesting.RespondString(http.StatusOK, `ok`))
	mockClient(t, transport)

	out, err := execute(t, "query", "walletstatus/LTC", "foo=bar")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	form, err := url.ParseQuery(string(transport.LastRequest().Body))
	require.NoError(t, err)
	assert.Equal(t, "bar", form.Get("foo"))
	assert.Equal(t, "key", form.Get("apikey"))
}

func TestQueryCmd_UnknownMethod(t *testing.T) {
	transport := &httptesting.MockTransport{}
	mockClient(t, transport)

	_, err := execute(t, "query", "ticker")
	assert.True(t, novaapi.IsUsageError(err), "got %v", err)
	assert.Empty(t, transport.Requests())
}

func TestTradeCmd_InvalidType(t *testing.T) {
	transport := &httptesting.MockTransport{}
	mockClient(t, transport)

	_, err := execute(t, "trade", "LTC_MEOW", "--type", "BOTH", "--amount", "1", "--price", "0.1")
	assert.True(t, novaapi.IsUsageError(err), "got %v", err)
	assert.Empty(t, transport.Requests())
}

func TestEndpointsCmd(t *testing.T) {
	buf := &bytes.Buffer{}
	renderEndpoints(buf)

	out := buf.String()
	for _, method := range append(novaapi.PublicMethods, novaapi.PrivateMethods()...) {
		assert.Contains(t, out, method)
	}
}

package novaapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/novaex/pkg/testutil"
)

func getTestClientOrSkip(t *testing.T) *RestClient {
	testutil.SkipInCI(t)

	key, secret, ok := testutil.IntegrationTestConfigured(t, "NOVA")
	if !ok {
		t.Skip("NOVA_* env vars are not configured")
		return nil
	}

	return NewClient(key, secret)
}

func TestClient_Integration_Markets(t *testing.T) {
	client := getTestClientOrSkip(t)
	body, err := client.Markets(context.Background())
	assert.NoError(t, err)
	t.Logf("markets: %d bytes", len(body))
}

func TestClient_Integration_GetBalances(t *testing.T) {
	client := getTestClientOrSkip(t)
	body, err := client.GetBalances(context.Background())
	assert.NoError(t, err)
	t.Logf("balances: %s", body)
}

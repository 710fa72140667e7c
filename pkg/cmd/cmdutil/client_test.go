package cmdutil

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

func TestConfigFromViper(t *testing.T) {
	v := viper.New()
	v.Set("nova-api-key", "key")
	v.Set("nova-api-secret", "secret")

	conf := ConfigFromViper(v)
	assert.Equal(t, "key", conf.Key)
	assert.Equal(t, "secret", conf.Secret)
	assert.Equal(t, novaapi.RestBaseURL, conf.BaseURL)
	assert.NoError(t, conf.RequireCredentials())
}

func TestConfigFromViper_Env(t *testing.T) {
	t.Setenv("NOVA_API_KEY", "env-key")
	t.Setenv("NOVA_BASE_URL", "https://example.com/remote/v2")

	v := viper.New()
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	conf := ConfigFromViper(v)
	assert.Equal(t, "env-key", conf.Key)
	assert.Equal(t, "https://example.com/remote/v2", conf.BaseURL)
}

func TestConfig_RequireCredentials(t *testing.T) {
	err := Config{}.RequireCredentials()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)

	err = Config{Key: "key"}.RequireCredentials()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Contains(t, err.Error(), "secret")
}

func TestConfig_NewClient(t *testing.T) {
	conf := Config{BaseURL: novaapi.RestBaseURL}

	_, err := conf.NewClient(true)
	assert.Error(t, err)

	client, err := conf.NewClient(false)
	require.NoError(t, err)
	assert.Equal(t, novaapi.RestBaseURL, client.BaseURL())

	conf.Key, conf.Secret = "key", "secret"
	client, err = conf.NewClient(true)
	require.NoError(t, err)
	assert.Equal(t, "key", client.Credentials().Key())
}

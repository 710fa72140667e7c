package cmdutil

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

const httpTimeout = time.Second * 60

// EnvKeyReplacer maps flag style keys like nova-api-key to NOVA_API_KEY.
var EnvKeyReplacer = strings.NewReplacer("-", "_")

// Config is the credential and endpoint setting of a nova client.
type Config struct {
	Key     string
	Secret  string
	BaseURL string
}

// ConfigFromViper reads the nova-* keys, which are also bound to the NOVA_* env vars.
func ConfigFromViper(v *viper.Viper) Config {
	conf := Config{
		Key:     v.GetString("nova-api-key"),
		Secret:  v.GetString("nova-api-secret"),
		BaseURL: v.GetString("nova-base-url"),
	}

	if len(conf.BaseURL) == 0 {
		conf.BaseURL = novaapi.RestBaseURL
	}

	return conf
}

// RequireCredentials returns every missing credential at once.
func (c Config) RequireCredentials() error {
	var errs error
	if len(c.Key) == 0 {
		errs = multierr.Append(errs, errors.New("empty api key, please set NOVA_API_KEY or --nova-api-key"))
	}

	if len(c.Secret) == 0 {
		errs = multierr.Append(errs, errors.New("empty api secret, please set NOVA_API_SECRET or --nova-api-secret"))
	}

	return errs
}

// NewClient creates the client, private is true for commands calling private methods.
func (c Config) NewClient(private bool) (*novaapi.RestClient, error) {
	if private {
		if err := c.RequireCredentials(); err != nil {
			return nil, err
		}
	}

	return novaapi.NewClientWithHttpClient(c.BaseURL, &http.Client{
		Timeout: httpTimeout,
	}, c.Key, c.Secret), nil
}

// NewClientFromViper creates the client from the global viper instance.
func NewClientFromViper(private bool) (*novaapi.RestClient, error) {
	return ConfigFromViper(viper.GetViper()).NewClient(private)
}

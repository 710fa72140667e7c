package cmdutil

import (
	"github.com/spf13/pflag"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
)

// PersistentFlags defines the flags for the api credentials and endpoint
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("nova-api-key", "", "nova api key")
	flags.String("nova-api-secret", "", "nova api secret")
	flags.String("nova-base-url", novaapi.RestBaseURL, "nova remote api base url")
}

package testutil

import (
	"os"
	"regexp"
	"testing"

	"github.com/c9s/novaex/pkg/envvar"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether live API tests are enabled for the given
// env var prefix: <PREFIX>_API_KEY and <PREFIX>_API_SECRET must be set and TEST_<PREFIX>=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}

// SkipInCI skips the test when the CI env var is a true value.
func SkipInCI(t *testing.T) {
	if b, _ := envvar.Bool("CI"); b {
		t.Skip("skip test for CI")
	}
}

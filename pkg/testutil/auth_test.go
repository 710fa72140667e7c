package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "abcd******", maskSecret("abcdefghijkl"))
	assert.Equal(t, "abc", maskSecret("abc"))
}

func TestIntegrationTestConfigured(t *testing.T) {
	t.Setenv("NOVATEST_API_KEY", "key-1234")
	t.Setenv("NOVATEST_API_SECRET", "secret-5678")

	t.Setenv("TEST_NOVATEST", "0")
	_, _, ok := IntegrationTestConfigured(t, "NOVATEST")
	assert.False(t, ok)

	t.Setenv("TEST_NOVATEST", "1")
	key, secret, ok := IntegrationTestConfigured(t, "NOVATEST")
	assert.True(t, ok)
	assert.Equal(t, "key-1234", key)
	assert.Equal(t, "secret-5678", secret)
}

package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiselev/datasheet/internal/config"
)

// TestConfigSetGetRoundTrip verifies a value written by set, without a prior
// init, comes back through get.
func TestConfigSetGetRoundTrip(t *testing.T) {
	setupConfigTest(t)

	out, err := executeConfig(t, "set", "mouser.api_key", "test-mouser-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Set mouser.api_key")
	assert.NotContains(t, out, "test-mouser-key", "set should not echo the value")

	out, err = executeConfig(t, "get", "mouser.api_key")
	require.NoError(t, err)
	assert.Equal(t, "test-mouser-key", strings.TrimSpace(out))
}

func TestConfigGetDefault(t *testing.T) {
	setupConfigTest(t)

	out, err := executeConfig(t, "get", "gemini.model")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultGeminiModel, strings.TrimSpace(out))
}

func TestConfigSetUnknownKey(t *testing.T) {
	setupConfigTest(t)

	_, err := executeConfig(t, "set", "bogus.key", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown config key "bogus.key"`)
	assert.Contains(t, err.Error(), "valid keys:")
}

func TestConfigSetInvalidBool(t *testing.T) {
	setupConfigTest(t)

	_, err := executeConfig(t, "set", "digikey.sandbox", "notabool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid boolean "notabool" for digikey.sandbox`)
}

// TestConfigListRedactsSecrets verifies credentials never appear in list
// output.
func TestConfigListRedactsSecrets(t *testing.T) {
	setupConfigTest(t)

	_, err := executeConfig(t, "set", "gemini.api_key", "AIzaSyExample123")
	require.NoError(t, err)

	out, err := executeConfig(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "gemini.api_key")
	assert.Contains(t, out, "AIza...")
	assert.NotContains(t, out, "AIzaSyExample123")
	assert.Contains(t, out, "(not set)")
	assert.Contains(t, out, config.DefaultGeminiModel)
}

func TestConfigPath(t *testing.T) {
	configPath := setupConfigTest(t)

	out, err := executeConfig(t, "path")
	require.NoError(t, err)
	assert.Equal(t, configPath, strings.TrimSpace(out))
}

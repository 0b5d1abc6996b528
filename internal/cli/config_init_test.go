package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiselev/datasheet/internal/cli"
)

// setupConfigTest points the configuration directory at a temp dir and
// returns the config file path inside it.
func setupConfigTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATASHEET_LOG_LEVEL", "error")
	t.Setenv("DATASHEET_CONFIG_DIR", dir)
	return filepath.Join(dir, "config.yaml")
}

// executeConfig runs a config subcommand through the root command.
func executeConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"config"}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInit(t *testing.T) {
	configPath := setupConfigTest(t)

	out, err := executeConfig(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, configPath)

	data, readErr := os.ReadFile(configPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "gemini:")
}

// TestConfigInitExisting verifies a second init refuses to overwrite unless
// --force is given.
func TestConfigInitExisting(t *testing.T) {
	configPath := setupConfigTest(t)

	_, err := executeConfig(t, "init")
	require.NoError(t, err)

	_, err = executeConfig(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file already exists, use --force to overwrite")

	// Scribble on the file, then force re-init and confirm it was replaced.
	require.NoError(t, os.WriteFile(configPath, []byte("scribble: true\n"), 0o600))

	out, err := executeConfig(t, "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	data, readErr := os.ReadFile(configPath)
	require.NoError(t, readErr)
	assert.NotContains(t, string(data), "scribble")
}

package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiselev/datasheet/internal/cli"
)

func TestSearchCmdFlags(t *testing.T) {
	cmd := cli.NewSearchCmd()

	limit := cmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "l", limit.Shorthand)
	assert.Equal(t, "10", limit.DefValue)

	assert.NotNil(t, cmd.Flags().Lookup("json"))
	assert.NotNil(t, cmd.Flags().Lookup("pick"))
}

// TestSearchNoCredentials verifies the unified search refuses to run with no
// distributor configured at all.
func TestSearchNoCredentials(t *testing.T) {
	t.Setenv("DATASHEET_LOG_LEVEL", "error")
	t.Setenv("DATASHEET_CONFIG_DIR", t.TempDir())
	t.Setenv("MOUSER_API_KEY", "")
	t.Setenv("DIGIKEY_CLIENT_ID", "")
	t.Setenv("DIGIKEY_CLIENT_SECRET", "")

	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"search", "STM32G071"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no distributor credentials configured")
	assert.Contains(t, err.Error(), "mouser.api_key")
}

func TestSearchRequiresQuery(t *testing.T) {
	t.Setenv("DATASHEET_LOG_LEVEL", "error")

	var buf bytes.Buffer
	cmd := cli.NewSearchCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}

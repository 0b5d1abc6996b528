package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiselev/datasheet/internal/cli"
)

// TestVersionCmd verifies the version line prints without any release check.
func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := cli.NewVersionCmd("1.2.3")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "datasheet 1.2.3\n", buf.String())
}

func TestVersionCmdFlags(t *testing.T) {
	cmd := cli.NewVersionCmd("test")

	check := cmd.Flags().Lookup("check")
	require.NotNil(t, check)
	assert.Equal(t, "false", check.DefValue)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureCmd returns a bare command whose output is captured in the buffer.
func captureCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestPrintJSON(t *testing.T) {
	cmd, buf := captureCmd()

	require.NoError(t, printJSON(cmd, map[string]int{"count": 3}))
	assert.Equal(t, "{\n  \"count\": 3\n}\n", buf.String())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "clean part number", input: "STM32G071CBT6", expected: "STM32G071CBT6"},
		{name: "slashes", input: "BAV99/T3", expected: "BAV99_T3"},
		{name: "windows reserved", input: `a\b:c*d?e"f<g>h|i`, expected: "a_b_c_d_e_f_g_h_i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFilename(tt.input))
		})
	}
}

func TestDatasheetPath(t *testing.T) {
	t.Run("explicit output wins", func(t *testing.T) {
		path, err := datasheetPath("exact.pdf", "ignored-dir", "RP2040")
		require.NoError(t, err)
		assert.Equal(t, "exact.pdf", path)
	})

	t.Run("default is part number pdf", func(t *testing.T) {
		path, err := datasheetPath("", "", "RP2040")
		require.NoError(t, err)
		assert.Equal(t, "RP2040.pdf", path)
	})

	t.Run("part number is sanitized", func(t *testing.T) {
		path, err := datasheetPath("", "", "BAV99/T3")
		require.NoError(t, err)
		assert.Equal(t, "BAV99_T3.pdf", path)
	})

	t.Run("dir is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "datasheets")
		path, err := datasheetPath("", dir, "RP2040")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "RP2040.pdf"), path)

		info, statErr := os.Stat(dir)
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	})
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "(not set)", displayValue("gemini.model", ""))
	assert.Equal(t, "gemini-3-pro-preview", displayValue("gemini.model", "gemini-3-pro-preview"))
	assert.Equal(t, "AIza...", displayValue("gemini.api_key", "AIzaSyExample123"))
	assert.Equal(t, "****", displayValue("mouser.api_key", "ab"))
}

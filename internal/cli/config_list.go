package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/gemini"
)

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long:  "Lists every configuration key with its effective value. Credentials are redacted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigList(cmd)
		},
	}
}

func runConfigList(cmd *cobra.Command) error {
	cfg := config.New()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Key\tValue")
	fmt.Fprintln(w, "---\t-----")

	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", key, displayValue(key, value))
	}

	return w.Flush()
}

// displayValue redacts credentials and marks unset keys.
func displayValue(key, value string) string {
	if value == "" {
		return "(not set)"
	}
	if config.SecretKey(key) {
		return gemini.RedactKey(value)
	}
	return value
}

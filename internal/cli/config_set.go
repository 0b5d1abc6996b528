package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
)

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  # Store the Mouser API key
  datasheet config set mouser.api_key YOUR-KEY

  # Route DigiKey calls at the sandbox environment
  datasheet config set digikey.sandbox true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	path, err := config.FilePath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	// Load rather than New so a malformed file surfaces instead of being
	// silently replaced by defaults.
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

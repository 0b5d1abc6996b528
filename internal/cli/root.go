package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the datasheet CLI.
// It wires up logging, tracing, and the subcommand groups (extract, search,
// mouser, digikey, cache, config, version).
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "datasheet",
		Short:   "Datasheet extraction and part search CLI",
		Long:    "Datasheet: Extract structured data from PDF datasheets and search distributor catalogs",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(
		NewExtractCmd(), NewSearchCmd(), newMouserCmd(), newDigikeyCmd(),
		newCacheCmd(), newConfigCmd(), NewVersionCmd(ver),
	)

	return cmd
}

const rootCmdExample = `  # Extract pinout data from a datasheet
  datasheet extract pinout stm32g071.pdf

  # Extract power requirements as pretty-printed JSON
  datasheet extract power tps54331.pdf --formatted

  # Run a custom extraction with your own prompt
  datasheet extract custom board.pdf --prompt "List every timer peripheral"

  # Search Mouser and DigiKey at once
  datasheet search "STM32G071" --limit 5

  # Search Mouser by exact part number
  datasheet mouser search STM32G071CBT6 --exact

  # Download a datasheet from DigiKey
  datasheet digikey download 296-RP2040CT-ND --dir ./datasheets

  # Show what is in the upload cache
  datasheet cache list

  # Initialize configuration
  datasheet config init`

// newMouserCmd creates the mouser command group with search, part, and
// download subcommands.
func newMouserCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "mouser", Short: "Mouser catalog commands"}
	cmd.AddCommand(NewMouserSearchCmd(), NewMouserPartCmd(), NewMouserDownloadCmd())
	return cmd
}

// newDigikeyCmd creates the digikey command group with search, part, and
// download subcommands.
func newDigikeyCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "digikey", Short: "DigiKey catalog commands"}
	cmd.AddCommand(NewDigikeySearchCmd(), NewDigikeyPartCmd(), NewDigikeyDownloadCmd())
	return cmd
}

// newCacheCmd creates the cache command group for the upload cache.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Upload cache commands"}
	cmd.AddCommand(NewCacheListCmd(), NewCacheSweepCmd(), NewCacheClearCmd(), NewCachePathCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigPathCmd(),
	)
	return cmd
}

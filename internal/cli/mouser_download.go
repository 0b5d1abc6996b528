package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/mouser"
)

// mouserDownloadOptions collects the mouser download command's flags.
type mouserDownloadOptions struct {
	apiKey string
	output string
	dir    string
}

// NewMouserDownloadCmd creates the mouser download command.
func NewMouserDownloadCmd() *cobra.Command {
	var opts mouserDownloadOptions

	cmd := &cobra.Command{
		Use:   "download <part-number>",
		Short: "Download the datasheet for a part",
		Example: `  # Download next to the current directory as <part number>.pdf
  datasheet mouser download STM32G071CBT6

  # Download into a directory
  datasheet mouser download STM32G071CBT6 --dir ./datasheets

  # Download to an explicit path
  datasheet mouser download STM32G071CBT6 --output mcu.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMouserDownload(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Mouser API key (defaults to MOUSER_API_KEY env var)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (defaults to <part number>.pdf)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "output directory (used if --output not specified)")

	return cmd
}

func runMouserDownload(cmd *cobra.Command, partNumber string, opts mouserDownloadOptions) error {
	apiKey, err := resolveMouserKey(opts.apiKey, config.New())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client := mouser.NewClient(apiKey)

	results, err := client.SearchByPartNumber(ctx, partNumber)
	if err != nil {
		return err
	}
	if len(results.Parts) == 0 {
		return fmt.Errorf("part not found: %s", partNumber)
	}

	part := results.Parts[0]
	if part.DataSheetURL == "" {
		return fmt.Errorf("no datasheet available for part: %s", partNumber)
	}

	name := part.ManufacturerPartNumber
	if name == "" {
		name = partNumber
	}
	dest, err := datasheetPath(opts.output, opts.dir, name)
	if err != nil {
		return err
	}

	cmd.Printf("Downloading datasheet for %s...\n", partNumber)
	cmd.Printf("  URL: %s\n", part.DataSheetURL)
	cmd.Printf("  Output: %s\n", dest)

	if err := client.DownloadDatasheet(ctx, part.DataSheetURL, dest); err != nil {
		return err
	}

	cmd.Println("Datasheet downloaded successfully!")
	return nil
}

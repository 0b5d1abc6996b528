package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
)

// bytesPerKB converts download sizes for display.
const bytesPerKB = 1024.0

// digikeyDownloadOptions collects the digikey download command's flags.
type digikeyDownloadOptions struct {
	clientID     string
	clientSecret string
	output       string
	dir          string
	sandbox      bool
}

// NewDigikeyDownloadCmd creates the digikey download command.
func NewDigikeyDownloadCmd() *cobra.Command {
	var opts digikeyDownloadOptions

	cmd := &cobra.Command{
		Use:   "download <part-number>",
		Short: "Download the datasheet for a part",
		Example: `  # Download into the current directory as <part number>.pdf
  datasheet digikey download 296-RP2040CT-ND

  # Download into a directory
  datasheet digikey download 296-RP2040CT-ND --dir ./datasheets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigikeyDownload(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.clientID, "client-id", "", "DigiKey Client ID (defaults to DIGIKEY_CLIENT_ID env var)")
	cmd.Flags().StringVar(&opts.clientSecret, "client-secret", "", "DigiKey Client Secret (defaults to DIGIKEY_CLIENT_SECRET env var)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (defaults to <part number>.pdf)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "output directory (used if --output not specified)")
	cmd.Flags().BoolVar(&opts.sandbox, "sandbox", false, "use sandbox API for testing")

	return cmd
}

func runDigikeyDownload(cmd *cobra.Command, partNumber string, opts digikeyDownloadOptions) error {
	client, err := resolveDigikeyClient(opts.clientID, opts.clientSecret, opts.sandbox, config.New())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	product, err := client.ProductDetails(ctx, partNumber)
	if err != nil {
		return err
	}
	if product.DataSheetURL == "" {
		return fmt.Errorf("no datasheet available for part: %s", partNumber)
	}

	name := product.ManufacturerPartNumber
	if name == "" {
		name = partNumber
	}
	dest, err := datasheetPath(opts.output, opts.dir, name)
	if err != nil {
		return err
	}

	cmd.Printf("Downloading datasheet for %s...\n", partNumber)
	cmd.Printf("  URL: %s\n", product.DataSheetURL)
	cmd.Printf("  Output: %s\n", dest)

	written, err := client.DownloadDatasheet(ctx, product.DataSheetURL, dest)
	if err != nil {
		return err
	}

	cmd.Printf("Datasheet downloaded successfully! (%.1f KB)\n", float64(written)/bytesPerKB)
	return nil
}

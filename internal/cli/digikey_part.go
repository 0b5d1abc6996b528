package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/digikey"
)

// maxParameterRows caps how many technical attributes the part view prints
// before summarizing the rest.
const maxParameterRows = 10

// NewDigikeyPartCmd creates the digikey part command.
func NewDigikeyPartCmd() *cobra.Command {
	var (
		clientID     string
		clientSecret string
		jsonOut      bool
		sandbox      bool
	)

	cmd := &cobra.Command{
		Use:   "part <part-number>",
		Short: "Show detailed information about a specific part",
		Example: `  # Look up a part by DigiKey or manufacturer part number
  datasheet digikey part 296-RP2040CT-ND

  # Raw API payload
  datasheet digikey part 296-RP2040CT-ND --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigikeyPart(cmd, args[0], clientID, clientSecret, jsonOut, sandbox)
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "DigiKey Client ID (defaults to DIGIKEY_CLIENT_ID env var)")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "DigiKey Client Secret (defaults to DIGIKEY_CLIENT_SECRET env var)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&sandbox, "sandbox", false, "use sandbox API for testing")

	return cmd
}

func runDigikeyPart(cmd *cobra.Command, partNumber, flagID, flagSecret string, jsonOut, sandbox bool) error {
	client, err := resolveDigikeyClient(flagID, flagSecret, sandbox, config.New())
	if err != nil {
		return err
	}

	product, err := client.ProductDetails(cmd.Context(), partNumber)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cmd, product)
	}
	printDigikeyProductDetails(cmd, *product)
	return nil
}

// printDigikeyProductDetails renders the labeled sections for one product.
// Empty fields are skipped rather than printed blank.
func printDigikeyProductDetails(cmd *cobra.Command, product digikey.Product) {
	cmd.Println("Part Details")
	cmd.Println("============")
	printField(cmd, "Manufacturer Part Number", product.ManufacturerPartNumber)
	printField(cmd, "Manufacturer", product.Manufacturer.Name)
	printField(cmd, "DigiKey Part Number", product.DigiKeyPartNumber)
	printField(cmd, "Description", product.ProductDescription)
	printField(cmd, "Detailed Description", product.DetailedDescription)
	printField(cmd, "Part Status", product.PartStatus)
	printField(cmd, "RoHS Status", product.RoHsStatus)
	printField(cmd, "Lead Status", product.LeadStatus)

	cmd.Println()
	cmd.Println("Availability")
	cmd.Println("------------")
	cmd.Printf("In Stock: %d\n", product.QuantityAvailable)
	if product.ManufacturerPublicQuantity > 0 {
		cmd.Printf("Manufacturer Stock: %d\n", product.ManufacturerPublicQuantity)
	}
	if product.MinimumOrderQuantity > 0 {
		cmd.Printf("Minimum Order: %d\n", product.MinimumOrderQuantity)
	}
	printField(cmd, "Packaging", product.Packaging.Value)

	if len(product.StandardPricing) > 0 {
		cmd.Println()
		cmd.Println("Pricing")
		cmd.Println("-------")
		for _, pb := range product.StandardPricing {
			cmd.Printf("  %6d+ : $%.4f\n", pb.BreakQuantity, pb.UnitPrice)
		}
	}

	if len(product.Parameters) > 0 {
		cmd.Println()
		cmd.Println("Parameters")
		cmd.Println("----------")
		for i, param := range product.Parameters {
			if i == maxParameterRows {
				break
			}
			cmd.Printf("  %s: %s\n", param.Parameter, param.Value)
		}
		if len(product.Parameters) > maxParameterRows {
			cmd.Println("  ... and " + strconv.Itoa(len(product.Parameters)-maxParameterRows) + " more parameters")
		}
	}

	cmd.Println()
	cmd.Println("Links")
	cmd.Println("-----")
	printField(cmd, "Product Page", product.ProductURL)
	if product.DataSheetURL != "" {
		cmd.Printf("Datasheet: %s\n", product.DataSheetURL)
	} else {
		cmd.Println("Datasheet: Not available")
	}
}

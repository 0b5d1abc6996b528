package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/mouser"
)

// NewMouserPartCmd creates the mouser part command.
func NewMouserPartCmd() *cobra.Command {
	var (
		apiKey  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "part <part-number>",
		Short: "Show detailed information about a specific part",
		Example: `  # Look up a part by Mouser or manufacturer part number
  datasheet mouser part 511-STM32G071CBT6

  # Raw API payload
  datasheet mouser part 511-STM32G071CBT6 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMouserPart(cmd, args[0], apiKey, jsonOut)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Mouser API key (defaults to MOUSER_API_KEY env var)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")

	return cmd
}

func runMouserPart(cmd *cobra.Command, partNumber, flagKey string, jsonOut bool) error {
	apiKey, err := resolveMouserKey(flagKey, config.New())
	if err != nil {
		return err
	}

	results, err := mouser.NewClient(apiKey).SearchByPartNumber(cmd.Context(), partNumber)
	if err != nil {
		return err
	}
	if len(results.Parts) == 0 {
		return fmt.Errorf("part not found: %s", partNumber)
	}

	part := results.Parts[0]
	if jsonOut {
		return printJSON(cmd, part)
	}
	printMouserPartDetails(cmd, part)
	return nil
}

// printMouserPartDetails renders the labeled sections for one part. Empty
// fields are skipped rather than printed blank.
func printMouserPartDetails(cmd *cobra.Command, part mouser.Part) {
	cmd.Println("Part Details")
	cmd.Println("============")
	printField(cmd, "Manufacturer Part Number", part.ManufacturerPartNumber)
	printField(cmd, "Manufacturer", part.Manufacturer)
	printField(cmd, "Mouser Part Number", part.MouserPartNumber)
	printField(cmd, "Description", part.Description)
	printField(cmd, "Lifecycle Status", part.LifecycleStatus)
	printField(cmd, "RoHS Status", part.ROHSStatus)

	cmd.Println()
	cmd.Println("Availability")
	cmd.Println("------------")
	printField(cmd, "In Stock", part.AvailabilityInStock)
	printField(cmd, "On Order", onOrderDisplay(part.AvailabilityOnOrder))
	printField(cmd, "Lead Time", part.LeadTime)
	printField(cmd, "Minimum Order", part.Min)
	printField(cmd, "Order Multiple", part.Mult)

	if len(part.PriceBreaks) > 0 {
		cmd.Println()
		cmd.Println("Pricing")
		cmd.Println("-------")
		for _, pb := range part.PriceBreaks {
			currency := pb.Currency
			if currency == "" {
				currency = "USD"
			}
			cmd.Printf("  %6d+ : %s %s\n", pb.Quantity, pb.Price, currency)
		}
	}

	cmd.Println()
	cmd.Println("Links")
	cmd.Println("-----")
	printField(cmd, "Product Page", part.ProductDetailURL)
	if part.DataSheetURL != "" {
		cmd.Printf("Datasheet: %s\n", part.DataSheetURL)
	} else {
		cmd.Println("Datasheet: Not available")
	}
}

// printField prints "label: value" when value is non-empty.
func printField(cmd *cobra.Command, label, value string) {
	if value != "" {
		cmd.Printf("%s: %s\n", label, value)
	}
}

// onOrderDisplay renders the polymorphic on-order field: a plain string is
// shown as-is, a non-empty array is shown as compact JSON, anything else is
// suppressed.
func onOrderDisplay(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(trimmed, &arr); err == nil && len(arr) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err == nil {
			return buf.String()
		}
	}
	return ""
}

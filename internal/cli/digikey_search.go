package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/digikey"
	"github.com/akiselev/datasheet/internal/tui"
)

// digikeySearchOptions collects the digikey search command's flags.
type digikeySearchOptions struct {
	clientID     string
	clientSecret string
	limit        int
	jsonOut      bool
	sandbox      bool
	pick         bool
}

// NewDigikeySearchCmd creates the digikey search command.
func NewDigikeySearchCmd() *cobra.Command {
	var opts digikeySearchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search DigiKey for parts by keyword",
		Example: `  # Keyword search
  datasheet digikey search "STM32G071"

  # Larger page as JSON
  datasheet digikey search "buck converter" --limit 25 --json

  # Select a part interactively
  datasheet digikey search "STM32G071" --pick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigikeySearch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.clientID, "client-id", "", "DigiKey Client ID (defaults to DIGIKEY_CLIENT_ID env var)")
	cmd.Flags().StringVar(&opts.clientSecret, "client-secret", "", "DigiKey Client Secret (defaults to DIGIKEY_CLIENT_SECRET env var)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", defaultSearchLimit, "maximum number of results to return")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "output results as JSON")
	cmd.Flags().BoolVar(&opts.sandbox, "sandbox", false, "use sandbox API for testing")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "select a result interactively")

	return cmd
}

func runDigikeySearch(cmd *cobra.Command, query string, opts digikeySearchOptions) error {
	client, err := resolveDigikeyClient(opts.clientID, opts.clientSecret, opts.sandbox, config.New())
	if err != nil {
		return err
	}

	results, err := client.SearchKeyword(cmd.Context(), query, opts.limit, 0)
	if err != nil {
		return err
	}

	products := results.Products
	if opts.jsonOut {
		return printJSON(cmd, products)
	}

	if len(products) == 0 {
		cmd.Printf("No parts found for query: %s\n", query)
		return nil
	}

	if opts.pick {
		return pickDigikeyProduct(cmd, query, products)
	}

	p := message.NewPrinter(language.English)
	cmd.Println(p.Sprintf("Found %d part(s):", len(products)))
	cmd.Println()
	return renderDigikeyTable(cmd, products)
}

// resolveDigikeyClient builds a client from flag, environment, and config
// credentials, and errors with guidance when either half is missing.
func resolveDigikeyClient(flagID, flagSecret string, sandboxFlag bool, cfg *config.Config) (*digikey.Client, error) {
	id, secret := digikey.ResolveCredentials(flagID, flagSecret, cfg.Digikey.ClientID, cfg.Digikey.ClientSecret)
	if id == "" || secret == "" {
		return nil, fmt.Errorf("%w (set %s and %s or use --client-id/--client-secret)",
			digikey.ErrNoCredentials, digikey.EnvClientID, digikey.EnvClientSecret)
	}
	return digikey.NewClient(id, secret, sandboxFlag || cfg.Digikey.Sandbox), nil
}

// renderDigikeyTable prints one row per product.
func renderDigikeyTable(cmd *cobra.Command, products []digikey.Product) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Part Number\tManufacturer\tDescription\tIn Stock\tPrice")
	fmt.Fprintln(w, "-----------\t------------\t-----------\t--------\t-----")
	for _, product := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			product.ManufacturerPartNumber, product.Manufacturer.Name,
			product.ProductDescription, product.QuantityAvailable,
			digikeyPrice(product))
	}
	return w.Flush()
}

// pickDigikeyProduct opens the interactive picker and prints the details of
// the chosen product.
func pickDigikeyProduct(cmd *cobra.Command, query string, products []digikey.Product) error {
	items := buildDigikeyPickItems(products)
	idx, ok, err := runPicker(fmt.Sprintf("DigiKey results for %q", query), items)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("No part selected.")
		return nil
	}

	cmd.Println(tui.RenderSelection(items[idx]))
	cmd.Println()
	printDigikeyProductDetails(cmd, products[idx])
	return nil
}

// buildDigikeyPickItems converts DigiKey search results to picker rows.
func buildDigikeyPickItems(products []digikey.Product) []tui.PickItem {
	items := make([]tui.PickItem, len(products))
	for i, product := range products {
		items[i] = tui.PickItem{
			PartNumber:   product.ManufacturerPartNumber,
			Manufacturer: product.Manufacturer.Name,
			Description:  product.ProductDescription,
			Availability: fmt.Sprintf("%d In Stock", product.QuantityAvailable),
			Price:        digikeyPrice(product),
			Source:       sourceDigikey,
		}
	}
	return items
}

// digikeyPrice formats the unit price, or "" when the API reports none.
func digikeyPrice(product digikey.Product) string {
	if product.UnitPrice == 0 {
		return ""
	}
	return fmt.Sprintf("$%.4f", product.UnitPrice)
}

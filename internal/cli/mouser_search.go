package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/mouser"
	"github.com/akiselev/datasheet/internal/tui"
)

// defaultSearchLimit is the page size used when --limit is not given.
const defaultSearchLimit = 10

// mouserSearchOptions collects the mouser search command's flags.
type mouserSearchOptions struct {
	apiKey  string
	limit   int
	page    int
	offset  int
	exact   bool
	jsonOut bool
	pick    bool
}

// NewMouserSearchCmd creates the mouser search command.
func NewMouserSearchCmd() *cobra.Command {
	var opts mouserSearchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Mouser for parts by keyword",
		Example: `  # Keyword search
  datasheet mouser search "STM32G071"

  # Exact part number search
  datasheet mouser search STM32G071CBT6 --exact

  # Page through results
  datasheet mouser search "buck converter" --limit 20 --page 2

  # Select a part interactively
  datasheet mouser search "STM32G071" --pick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMouserSearch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Mouser API key (defaults to MOUSER_API_KEY env var)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", defaultSearchLimit, "maximum number of results to return (max 50)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "page number (1-indexed, takes precedence over --offset)")
	cmd.Flags().IntVarP(&opts.offset, "offset", "o", 0, "starting record offset (0-indexed)")
	cmd.Flags().BoolVarP(&opts.exact, "exact", "e", false, "search by exact part number instead of keyword")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "output results as JSON")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "select a result interactively")

	return cmd
}

func runMouserSearch(cmd *cobra.Command, query string, opts mouserSearchOptions) error {
	apiKey, err := resolveMouserKey(opts.apiKey, config.New())
	if err != nil {
		return err
	}

	// --page takes precedence over --offset
	startingRecord := opts.offset
	if cmd.Flags().Changed("page") {
		if opts.page < 1 {
			return errors.New("page number must be 1 or greater")
		}
		startingRecord = (opts.page - 1) * opts.limit
	}

	client := mouser.NewClient(apiKey)
	ctx := cmd.Context()

	var results *mouser.SearchResults
	if opts.exact {
		results, err = client.SearchByPartNumber(ctx, query)
	} else {
		results, err = client.SearchByKeyword(ctx, query, opts.limit, startingRecord)
	}
	if err != nil {
		return err
	}

	parts := results.Parts
	if opts.jsonOut {
		return printJSON(cmd, parts)
	}

	if len(parts) == 0 {
		cmd.Printf("No parts found for query: %s\n", query)
		return nil
	}

	if opts.pick {
		return pickMouserPart(cmd, query, parts)
	}

	p := message.NewPrinter(language.English)
	cmd.Println(p.Sprintf("Found %d part(s):", len(parts)))
	cmd.Println()
	return renderMouserTable(cmd, parts)
}

// resolveMouserKey applies the flag, environment, and config precedence and
// errors with guidance when no key is found.
func resolveMouserKey(flagKey string, cfg *config.Config) (string, error) {
	key := mouser.ResolveAPIKey(flagKey, cfg.Mouser.APIKey)
	if key == "" {
		return "", fmt.Errorf("%w (set %s or use --api-key)", mouser.ErrNoAPIKey, mouser.EnvAPIKey)
	}
	return key, nil
}

// renderMouserTable prints one row per part.
func renderMouserTable(cmd *cobra.Command, parts []mouser.Part) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Part Number\tManufacturer\tDescription\tAvailability\tPrice")
	fmt.Fprintln(w, "-----------\t------------\t-----------\t------------\t-----")
	for _, part := range parts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			part.ManufacturerPartNumber, part.Manufacturer, part.Description,
			part.Availability, firstMouserPrice(part))
	}
	return w.Flush()
}

// pickMouserPart opens the interactive picker and prints the details of the
// chosen part.
func pickMouserPart(cmd *cobra.Command, query string, parts []mouser.Part) error {
	items := buildMouserPickItems(parts)
	idx, ok, err := runPicker(fmt.Sprintf("Mouser results for %q", query), items)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("No part selected.")
		return nil
	}

	cmd.Println(tui.RenderSelection(items[idx]))
	cmd.Println()
	printMouserPartDetails(cmd, parts[idx])
	return nil
}

// buildMouserPickItems converts Mouser search results to picker rows.
func buildMouserPickItems(parts []mouser.Part) []tui.PickItem {
	items := make([]tui.PickItem, len(parts))
	for i, part := range parts {
		items[i] = tui.PickItem{
			PartNumber:   part.ManufacturerPartNumber,
			Manufacturer: part.Manufacturer,
			Description:  part.Description,
			Availability: part.Availability,
			Price:        firstMouserPrice(part),
			Source:       sourceMouser,
		}
	}
	return items
}

// firstMouserPrice returns the price at the lowest quantity break, or "" when
// the part carries no price table.
func firstMouserPrice(part mouser.Part) string {
	if len(part.PriceBreaks) == 0 {
		return ""
	}
	return part.PriceBreaks[0].Price
}

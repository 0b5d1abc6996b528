package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/digikey"
	"github.com/akiselev/datasheet/internal/mouser"
	"github.com/akiselev/datasheet/internal/tui"
)

// searchHit is one result row from either distributor, flattened for display
// and JSON output.
type searchHit struct {
	PartNumber   string `json:"part_number"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	Availability string `json:"availability"`
	Price        string `json:"price"`
	Source       string `json:"source"`
	DatasheetURL string `json:"datasheet_url,omitempty"`
	ProductURL   string `json:"product_url,omitempty"`
}

// searchOptions collects the search command's flags.
type searchOptions struct {
	limit   int
	jsonOut bool
	pick    bool
}

// NewSearchCmd creates the unified search command, which queries every
// configured distributor in parallel.
func NewSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search all configured distributors at once",
		Long: `Queries Mouser and DigiKey in parallel and merges the results into one
list. Distributors without credentials are skipped; a distributor that
fails is reported on stderr without discarding the other's results.`,
		Example: `  # Search everywhere
  datasheet search "STM32G071"

  # Merge more results and emit JSON
  datasheet search "buck converter" --limit 25 --json

  # Select a part interactively
  datasheet search "STM32G071" --pick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "l", defaultSearchLimit, "maximum number of results per distributor")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "output results as JSON")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "select a result interactively")

	return cmd
}

//nolint:gocognit // Function is logically cohesive; complexity comes from per-vendor handling.
func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	cfg := config.New()

	mouserKey := mouser.ResolveAPIKey("", cfg.Mouser.APIKey)
	digikeyID, digikeySecret := digikey.ResolveCredentials("", "", cfg.Digikey.ClientID, cfg.Digikey.ClientSecret)
	haveMouser := mouserKey != ""
	haveDigikey := digikeyID != "" && digikeySecret != ""

	if !haveMouser && !haveDigikey {
		return errors.New("no distributor credentials configured (set mouser.api_key or digikey.client_id and digikey.client_secret)")
	}
	if !haveMouser {
		cmd.PrintErrln("Skipping Mouser: no API key configured")
	}
	if !haveDigikey {
		cmd.PrintErrln("Skipping DigiKey: no credentials configured")
	}

	logger.Debug().
		Str("query", query).
		Bool("mouser", haveMouser).
		Bool("digikey", haveDigikey).
		Msg("starting distributor search")

	// Per-vendor slots; each goroutine writes only its own pair.
	var (
		mouserHits  []searchHit
		mouserErr   error
		digikeyHits []searchHit
		digikeyErr  error
	)

	g, gCtx := errgroup.WithContext(cmd.Context())

	if haveMouser {
		g.Go(func() error {
			results, err := mouser.NewClient(mouserKey).SearchByKeyword(gCtx, query, opts.limit, 0)
			if err != nil {
				mouserErr = err
			} else {
				mouserHits = mouserSearchHits(results.Parts)
			}
			// Always return nil - one distributor failing must not cancel the other
			return nil
		})
	}
	if haveDigikey {
		g.Go(func() error {
			client := digikey.NewClient(digikeyID, digikeySecret, cfg.Digikey.Sandbox)
			results, err := client.SearchKeyword(gCtx, query, opts.limit, 0)
			if err != nil {
				digikeyErr = err
			} else {
				digikeyHits = digikeySearchHits(results.Products)
			}
			return nil
		})
	}

	// Goroutines never return errors, so Wait only synchronizes.
	_ = g.Wait()

	if mouserErr != nil {
		cmd.PrintErrf("Warning: Mouser search failed: %v\n", mouserErr)
	}
	if digikeyErr != nil {
		cmd.PrintErrf("Warning: DigiKey search failed: %v\n", digikeyErr)
	}
	if (!haveMouser || mouserErr != nil) && (!haveDigikey || digikeyErr != nil) {
		return errors.New("all distributor searches failed")
	}

	hits := append(mouserHits, digikeyHits...)
	if opts.jsonOut {
		return printJSON(cmd, hits)
	}

	if len(hits) == 0 {
		cmd.Printf("No parts found for query: %s\n", query)
		return nil
	}

	if opts.pick {
		return pickSearchHit(cmd, query, hits)
	}

	p := message.NewPrinter(language.English)
	cmd.Println(p.Sprintf("Found %d part(s):", len(hits)))
	cmd.Println()
	return renderSearchHits(cmd, hits)
}

// mouserSearchHits flattens Mouser results into unified rows.
func mouserSearchHits(parts []mouser.Part) []searchHit {
	hits := make([]searchHit, len(parts))
	for i, part := range parts {
		hits[i] = searchHit{
			PartNumber:   part.ManufacturerPartNumber,
			Manufacturer: part.Manufacturer,
			Description:  part.Description,
			Availability: part.Availability,
			Price:        firstMouserPrice(part),
			Source:       sourceMouser,
			DatasheetURL: part.DataSheetURL,
			ProductURL:   part.ProductDetailURL,
		}
	}
	return hits
}

// digikeySearchHits flattens DigiKey results into unified rows.
func digikeySearchHits(products []digikey.Product) []searchHit {
	hits := make([]searchHit, len(products))
	for i, product := range products {
		hits[i] = searchHit{
			PartNumber:   product.ManufacturerPartNumber,
			Manufacturer: product.Manufacturer.Name,
			Description:  product.ProductDescription,
			Availability: fmt.Sprintf("%d In Stock", product.QuantityAvailable),
			Price:        digikeyPrice(product),
			Source:       sourceDigikey,
			DatasheetURL: product.DataSheetURL,
			ProductURL:   product.ProductURL,
		}
	}
	return hits
}

// renderSearchHits prints one row per hit with its distributor.
func renderSearchHits(cmd *cobra.Command, hits []searchHit) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Part Number\tManufacturer\tDescription\tAvailability\tPrice\tSource")
	fmt.Fprintln(w, "-----------\t------------\t-----------\t------------\t-----\t------")
	for _, hit := range hits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			hit.PartNumber, hit.Manufacturer, hit.Description,
			hit.Availability, hit.Price, hit.Source)
	}
	return w.Flush()
}

// pickSearchHit opens the interactive picker and prints the links of the
// chosen part.
func pickSearchHit(cmd *cobra.Command, query string, hits []searchHit) error {
	items := make([]tui.PickItem, len(hits))
	for i, hit := range hits {
		items[i] = tui.PickItem{
			PartNumber:   hit.PartNumber,
			Manufacturer: hit.Manufacturer,
			Description:  hit.Description,
			Availability: hit.Availability,
			Price:        hit.Price,
			Source:       hit.Source,
		}
	}

	idx, ok, err := runPicker(fmt.Sprintf("Results for %q", query), items)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("No part selected.")
		return nil
	}

	hit := hits[idx]
	cmd.Println(tui.RenderSelection(items[idx]))
	if hit.DatasheetURL != "" {
		cmd.Printf("  Datasheet: %s\n", hit.DatasheetURL)
	}
	if hit.ProductURL != "" {
		cmd.Printf("  Product Page: %s\n", hit.ProductURL)
	}
	return nil
}

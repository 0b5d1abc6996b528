package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/config"
	"github.com/akiselev/datasheet/internal/filecache"
	"github.com/akiselev/datasheet/internal/gemini"
	"github.com/akiselev/datasheet/internal/prompts"
)

// pdfMimeType is declared on every attachment. The tool only sends PDFs.
const pdfMimeType = "application/pdf"

// defaultTemperature is the sampling temperature used when --temperature is
// not given.
const defaultTemperature = 1.0

// extractOptions collects the extract command's flags.
type extractOptions struct {
	model       string
	apiKey      string
	baseURL     string
	outPath     string
	temperature float64
	formatted   bool
	promptFlag  string
	schemaFlag  string
	noCache     bool
}

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	var (
		opts   extractOptions
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "extract <task> <pdf>",
		Short: "Extract structured data from a PDF datasheet",
		Long: `Sends a datasheet to the generative API and extracts structured JSON for
the chosen task. Uploads are cached by content digest, so repeated
extractions from the same PDF reuse the remote file instead of uploading
it again.

Available tasks: ` + strings.Join(prompts.Names(), ", "),
		Example: `  # Extract the pinout table
  datasheet extract pinout stm32g071.pdf

  # Pretty-print power requirements to a file
  datasheet extract power tps54331.pdf --formatted --out power.json

  # Custom extraction with an inline prompt and a schema file
  datasheet extract custom board.pdf --prompt "List every timer peripheral" --schema schema.json

  # Skip the upload cache for a one-off run
  datasheet extract pinout stm32g071.pdf --no-cache`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formatted = opts.formatted || pretty
			return runExtract(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.model, "model", "", "model name (default from config)")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "API key (falls back to GOOGLE_API_KEY or GEMINI_API_KEY)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "base URL override for the generative API")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "output file (defaults to stdout)")
	cmd.Flags().Float64Var(&opts.temperature, "temperature", defaultTemperature, "sampling temperature")
	cmd.Flags().BoolVarP(&opts.formatted, "formatted", "f", false, "show formatted (pretty-printed) JSON output")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "show formatted (pretty-printed) JSON output")
	_ = cmd.Flags().MarkHidden("pretty")
	cmd.Flags().StringVar(&opts.promptFlag, "prompt", "", "custom prompt text or path to a prompt file (only for 'custom' task)")
	cmd.Flags().StringVar(&opts.schemaFlag, "schema", "", "custom JSON schema file path or inline JSON (only for 'custom' task)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "send the PDF inline instead of using the upload cache")

	return cmd
}

func runExtract(cmd *cobra.Command, taskName, pdfPath string, opts extractOptions) error {
	if _, err := os.Stat(pdfPath); err != nil {
		return fmt.Errorf("PDF not found: %s", pdfPath)
	}

	task, err := prompts.Get(taskName)
	if err != nil {
		return err
	}

	if taskName != prompts.TaskCustom {
		if opts.promptFlag != "" {
			return errors.New(`--prompt can only be used with 'custom' task. Use 'datasheet extract custom <PDF> --prompt "..."'`)
		}
		if opts.schemaFlag != "" {
			return errors.New(`--schema can only be used with 'custom' task. Use 'datasheet extract custom <PDF> --schema "..."'`)
		}
	}

	prompt := task.Prompt
	if opts.promptFlag != "" {
		prompt, err = readValueOrFile(opts.promptFlag)
		if err != nil {
			return fmt.Errorf("loading custom prompt: %w", err)
		}
	}

	schema := task.Schema
	if opts.schemaFlag != "" {
		raw, err := readValueOrFile(opts.schemaFlag)
		if err != nil {
			return fmt.Errorf("loading custom schema: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &schema); err != nil {
			return fmt.Errorf("parsing custom schema as JSON: %w", err)
		}
	}

	cfg := config.New()
	apiKey := gemini.ResolveAPIKey(opts.apiKey, cfg.Gemini.APIKey)
	if apiKey == "" {
		return fmt.Errorf("missing API key (use --api-key or set one of: %s, %s, %s)",
			gemini.EnvAPIKey, gemini.EnvGoogleAPIKey, gemini.EnvGeminiAPIKey)
	}

	model := opts.model
	if model == "" {
		model = cfg.Gemini.Model
	}
	if model == "" {
		model = config.DefaultGeminiModel
	}

	baseURL := opts.baseURL
	if baseURL == "" {
		baseURL = cfg.Gemini.BaseURL
	}
	client := gemini.NewClient(apiKey, baseURL)

	ctx := cmd.Context()
	logger.Debug().
		Str("task", task.Name).
		Str("model", model).
		Str("pdf", pdfPath).
		Bool("no_cache", opts.noCache).
		Msg("starting extraction")

	att, err := buildAttachment(ctx, cfg, client, pdfPath, opts.noCache)
	if err != nil {
		return err
	}

	result, err := client.GenerateJSON(ctx, model, prompt, att, schema, opts.temperature)
	if err != nil {
		return err
	}

	return writeExtractResult(cmd, result, opts)
}

// buildAttachment returns the attachment for the generation request: a cached
// remote file reference by default, the raw bytes inline with --no-cache.
func buildAttachment(
	ctx context.Context,
	cfg *config.Config,
	client *gemini.Client,
	pdfPath string,
	noCache bool,
) (gemini.Attachment, error) {
	if noCache {
		data, err := os.ReadFile(pdfPath)
		if err != nil {
			return gemini.Attachment{}, fmt.Errorf("failed to read %s: %w", pdfPath, err)
		}
		return gemini.InlineAttachment(pdfMimeType, data), nil
	}

	cache := filecache.New(ctx, filecache.ResolveDir(cfg.Cache.Dir), client)
	rec, err := cache.GetOrUpload(ctx, pdfPath)
	if err != nil {
		return gemini.Attachment{}, err
	}
	return gemini.FileAttachment(pdfMimeType, rec.URI), nil
}

// readValueOrFile returns the contents of value when it names an existing
// regular file, otherwise value itself. Prompts and schemas can be passed
// inline or as file paths.
func readValueOrFile(value string) (string, error) {
	info, err := os.Stat(value)
	if err != nil || info.IsDir() {
		return value, nil
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", value, err)
	}
	return string(data), nil
}

// writeExtractResult renders the JSON result per the output flags: compact on
// stdout by default, pretty-printed with --formatted, written to a file with
// --out.
func writeExtractResult(cmd *cobra.Command, result json.RawMessage, opts extractOptions) error {
	rendered := []byte(result)
	if opts.formatted {
		var buf bytes.Buffer
		if err := json.Indent(&buf, result, "", "  "); err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		rendered = buf.Bytes()
	}

	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, rendered, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.outPath, err)
		}
		return nil
	}

	cmd.Println(string(rendered))
	return nil
}

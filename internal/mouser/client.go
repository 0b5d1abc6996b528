// Package mouser is a client for the Mouser Electronics Search API v1,
// covering keyword search, part number lookup, and datasheet retrieval.
package mouser

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the production Search API endpoint.
const DefaultBaseURL = "https://api.mouser.com/api/v1"

// EnvAPIKey overrides the configured API key when set.
const EnvAPIKey = "MOUSER_API_KEY"

// ErrNoAPIKey is returned by callers that need a key before any request can
// be made.
var ErrNoAPIKey = errors.New("no Mouser API key configured")

const (
	searchTimeout   = 30 * time.Second
	downloadTimeout = 2 * time.Minute
)

// errBodyLimit bounds how much of an error response body is carried into an
// error message.
const errBodyLimit = 512

// Client calls the Mouser Search API. Construct with NewClient.
type Client struct {
	// BaseURL is the API endpoint. Override in tests.
	BaseURL string

	// APIKey authenticates every request as a query parameter.
	APIKey string

	// HTTPClient performs requests. Override in tests.
	HTTPClient *http.Client
}

// NewClient builds a client for the production endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{},
	}
}

// ResolveAPIKey picks the API key for a run: the explicit flag value, then
// the MOUSER_API_KEY environment variable, then the configured key.
func ResolveAPIKey(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return configured
}

// httpError summarizes a non-success response including a bounded body
// slice.
func httpError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return fmt.Errorf("unexpected status %s: %s", resp.Status, msg)
}

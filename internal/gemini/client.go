// Package gemini is a minimal client for the Google Generative Language API,
// covering only the slices the extraction workflow needs: resumable file
// uploads, file status checks, and schema-constrained JSON generation.
package gemini

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrProtocol marks responses that deviate from the documented API shape:
// non-success statuses, missing headers, and incomplete payloads.
var ErrProtocol = errors.New("unexpected generative API response")

// DefaultBaseURL is the public API endpoint, version path included.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// API key environment variables, checked in order. The first is tool
// specific, the other two are the names the wider Google tooling uses.
const (
	EnvAPIKey       = "DATASHEET_API_KEY"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// Per-call deadlines. Uploads move megabytes of PDF and generation waits on
// the model, while a status check is a single small GET.
const (
	uploadTimeout   = 10 * time.Minute
	statusTimeout   = 30 * time.Second
	generateTimeout = 5 * time.Minute
)

// errBodyLimit bounds how much of an error response body is carried into an
// error message.
const errBodyLimit = 512

// Client calls the Generative Language API. Construct with NewClient; the
// zero value has no endpoint.
type Client struct {
	// BaseURL is the API endpoint including the version path. Override in
	// tests to point at a local server.
	BaseURL string

	// APIKey authenticates every request as a query parameter.
	APIKey string

	// HTTPClient performs requests. Override in tests.
	HTTPClient *http.Client
}

// NewClient builds a client for baseURL, falling back to the public endpoint
// when baseURL is empty. Deadlines are applied per call, not on the HTTP
// client, because upload and status calls tolerate very different waits.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{},
	}
}

// ResolveAPIKey picks the API key for a run. Precedence: the explicit flag
// value, then the DATASHEET_API_KEY, GOOGLE_API_KEY, and GEMINI_API_KEY
// environment variables, then the configured key. Empty means no key is
// available anywhere.
func ResolveAPIKey(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	for _, env := range []string{EnvAPIKey, EnvGoogleAPIKey, EnvGeminiAPIKey} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return configured
}

// RedactKey shortens a key for log output so logs never carry a full
// credential.
func RedactKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "..."
}

// uploadHost strips the version path from the base URL. Upload endpoints
// live under /upload/<version> at the host root rather than under the
// versioned path the other endpoints use.
func (c *Client) uploadHost() string {
	host := strings.TrimRight(c.BaseURL, "/")
	host = strings.TrimSuffix(host, "/v1beta")
	host = strings.TrimSuffix(host, "/v1")
	return host
}

// httpError summarizes a non-success response, carrying a bounded slice of
// the body, which is where this API puts its diagnostics.
func httpError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("%w: status %s", ErrProtocol, resp.Status)
	}
	return fmt.Errorf("%w: status %s: %s", ErrProtocol, resp.Status, msg)
}

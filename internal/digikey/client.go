// Package digikey is a client for the DigiKey Product Information API v4:
// OAuth2 client-credentials authentication, keyword search, exact part
// lookup, and datasheet retrieval.
package digikey

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.digikey.com"

// SandboxBaseURL serves canned data for integration testing without spending
// production quota.
const SandboxBaseURL = "https://sandbox-api.digikey.com"

// Credential environment variables, consulted when no flag value is given.
const (
	EnvClientID     = "DIGIKEY_CLIENT_ID"
	EnvClientSecret = "DIGIKEY_CLIENT_SECRET"
)

// ErrNoCredentials is returned by callers that need a client ID and secret
// before any request can be made.
var ErrNoCredentials = errors.New("no DigiKey client ID and secret configured")

// ErrPartNotFound is returned when an exact part lookup matches nothing.
var ErrPartNotFound = errors.New("part not found")

const (
	apiTimeout      = 30 * time.Second
	downloadTimeout = 2 * time.Minute
)

// errBodyLimit bounds how much of an error response body is carried into an
// error message.
const errBodyLimit = 512

// Client calls the DigiKey API. Construct with NewClient. A client fetches
// one access token lazily and reuses it for its lifetime, which is a single
// command invocation.
type Client struct {
	// BaseURL selects production or sandbox. Override in tests.
	BaseURL string

	// ClientID and ClientSecret are the OAuth2 application credentials.
	ClientID     string
	ClientSecret string

	// HTTPClient performs requests. Override in tests.
	HTTPClient *http.Client

	// accessToken is filled by the first authenticated call.
	accessToken string
}

// NewClient builds a client for the production endpoint, or the sandbox when
// sandbox is true.
func NewClient(clientID, clientSecret string, sandbox bool) *Client {
	baseURL := DefaultBaseURL
	if sandbox {
		baseURL = SandboxBaseURL
	}
	return &Client{
		BaseURL:      baseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   &http.Client{},
	}
}

// ResolveCredentials picks the credential pair for a run: explicit flag
// values first, then the environment, then the configured values. Either
// half can come from a different source.
func ResolveCredentials(flagID, flagSecret, configuredID, configuredSecret string) (string, string) {
	id := flagID
	if id == "" {
		id = os.Getenv(EnvClientID)
	}
	if id == "" {
		id = configuredID
	}

	secret := flagSecret
	if secret == "" {
		secret = os.Getenv(EnvClientSecret)
	}
	if secret == "" {
		secret = configuredSecret
	}
	return id, secret
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

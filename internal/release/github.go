// Package release checks GitHub for newer published versions of the tool.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

// requestTimeout bounds the version check so it never holds up a command.
const requestTimeout = 10 * time.Second

// ErrNoReleases means the repository has no published releases yet.
var ErrNoReleases = errors.New("no releases published")

// Release is the subset of a GitHub release the version check reads.
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	HTMLURL    string `json:"html_url"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

// Client queries the GitHub REST API anonymously; the rate limit for
// unauthenticated callers is ample for an occasional version check.
type Client struct {
	// BaseURL is the API endpoint. Override in tests.
	BaseURL string

	// HTTPClient performs requests. Override in tests.
	HTTPClient *http.Client
}

// NewClient builds a client for the public endpoint.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
	}
}

// Latest returns the newest published, non-draft, non-prerelease release of
// owner/repo, which is what the /releases/latest endpoint serves.
func (c *Client) Latest(ctx context.Context, owner, repo string) (*Release, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.BaseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoReleases
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch latest release: unexpected status %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}
	return &rel, nil
}

package mouser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// SearchByKeyword runs a paged keyword search. records caps the page size
// and startingRecord is the zero-based offset of the first row.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, records, startingRecord int) (*SearchResults, error) {
	body := searchByKeywordRequest{SearchByKeywordRequest: keywordQuery{
		Keyword:        keyword,
		Records:        records,
		StartingRecord: startingRecord,
	}}
	return c.search(ctx, "/search/keyword", body)
}

// SearchByPartNumber looks up a single part number. The API matches both
// Mouser and manufacturer part numbers.
func (c *Client) SearchByPartNumber(ctx context.Context, partNumber string) (*SearchResults, error) {
	body := searchByPartRequest{SearchByPartRequest: partQuery{
		MouserPartNumber: partNumber,
	}}
	return c.search(ctx, "/search/partnumber", body)
}

// search POSTs body to endpoint and unwraps the response envelope. The API
// reports domain errors inside a 200 response, so the Errors array is
// checked before the payload is trusted.
func (c *Client) search(ctx context.Context, endpoint string, body any) (*SearchResults, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	target := fmt.Sprintf("%s%s?apiKey=%s", c.BaseURL, endpoint, url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed: %w", httpError(resp))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, apiErr := range out.Errors {
			msgs = append(msgs, apiErr.Message)
		}
		return nil, fmt.Errorf("mouser API error: %s", strings.Join(msgs, "; "))
	}
	if out.SearchResults == nil {
		return nil, errors.New("search response missing SearchResults")
	}
	return out.SearchResults, nil
}

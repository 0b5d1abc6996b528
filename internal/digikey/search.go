package digikey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// SearchKeyword runs a paged keyword search. recordCount caps the page size
// and recordStartPosition is the zero-based offset of the first row.
func (c *Client) SearchKeyword(ctx context.Context, keywords string, recordCount, recordStartPosition int) (*SearchResponse, error) {
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	payload, err := json.Marshal(keywordSearchRequest{
		Keywords:            keywords,
		RecordCount:         recordCount,
		RecordStartPosition: recordStartPosition,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	endpoint := c.BaseURL + "/products/v4/search/keyword"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	c.authorize(req, accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed: %w", httpError(resp))
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &out, nil
}

// ProductDetails looks up one part by DigiKey or manufacturer part number.
// Returns ErrPartNotFound when the number matches nothing.
func (c *Client) ProductDetails(ctx context.Context, partNumber string) (*Product, error) {
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/products/v4/search/%s/productdetails", c.BaseURL, url.PathEscape(partNumber))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build details request: %w", err)
	}
	c.authorize(req, accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("details request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, partNumber)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("details request failed: %w", httpError(resp))
	}

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode details response: %w", err)
	}
	return &product, nil
}

package digikey

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Distributor CDNs refuse requests without a browser-looking User-Agent.
const downloadUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// minPDFSize is the smallest body accepted as a real datasheet. Bot
// challenge pages and redirect stubs come in under this.
const minPDFSize = 1024

// DownloadDatasheet fetches a datasheet URL and writes it to destPath,
// returning the number of bytes written. A response that looks like an HTML
// page rather than a PDF is removed from disk and reported as an error,
// since distributor CDNs answer blocked downloads with a 200 challenge page.
func (c *Client) DownloadDatasheet(ctx context.Context, datasheetURL, destPath string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, datasheetURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build download request: %w", err)
	}
	req.Header.Set("User-Agent", downloadUserAgent)
	req.Header.Set("Accept", "application/pdf,*/*")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download datasheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to download datasheet: %w", httpError(resp))
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		out.Close()
		os.Remove(destPath)
		return 0, fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", destPath, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") || written < minPDFSize {
		os.Remove(destPath)
		return 0, fmt.Errorf("download returned HTML instead of PDF (content-type: %s); the distributor may be blocking automated downloads for this URL", contentType)
	}
	return written, nil
}

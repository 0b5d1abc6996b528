package digikey

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a mock API that issues tokens at the OAuth endpoint
// and delegates everything else to handler. The returned counter tracks how
// many token fetches the client performed.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()
	tokenFetches := new(int)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/oauth2/token" {
			*tokenFetches++
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, "test-id", r.PostForm.Get("client_id"))
			assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))

			json.NewEncoder(w).Encode(tokenResponse{
				AccessToken: "test-token",
				TokenType:   "Bearer",
				ExpiresIn:   599,
			})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-id", "test-secret", false)
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	return client, tokenFetches
}

func TestNewClientSelectsEndpoint(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("id", "secret", false).BaseURL)
	assert.Equal(t, SandboxBaseURL, NewClient("id", "secret", true).BaseURL)
}

func TestSearchKeyword(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/v4/search/keyword", r.URL.Path)
		assert.Equal(t, "test-id", r.Header.Get("X-DIGIKEY-Client-Id"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req keywordSearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "RP2040", req.Keywords)
		assert.Equal(t, 25, req.RecordCount)
		assert.Equal(t, 0, req.RecordStartPosition)

		json.NewEncoder(w).Encode(SearchResponse{
			ProductsCount: 3,
			Products: []Product{{
				DigiKeyPartNumber:      "2648-RP2040TR-ND",
				ManufacturerPartNumber: "RP2040",
				Manufacturer:           Manufacturer{Name: "Raspberry Pi"},
				ProductDescription:     "IC MCU 32BIT DUAL CORE 56LQFN",
				QuantityAvailable:      81342,
				StandardPricing: []PriceBreak{
					{BreakQuantity: 1, UnitPrice: 1.0, TotalPrice: 1.0},
				},
			}},
		})
	})

	result, err := client.SearchKeyword(context.Background(), "RP2040", 25, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, result.ProductsCount)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "RP2040", result.Products[0].ManufacturerPartNumber)
	assert.Equal(t, "Raspberry Pi", result.Products[0].Manufacturer.Name)
}

func TestTokenIsFetchedOnceAndReused(t *testing.T) {
	searches := 0
	client, tokenFetches := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		searches++
		json.NewEncoder(w).Encode(SearchResponse{})
	})

	_, err := client.SearchKeyword(context.Background(), "a", 5, 0)
	require.NoError(t, err)
	_, err = client.SearchKeyword(context.Background(), "b", 5, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, searches)
	assert.Equal(t, 1, *tokenFetches, "one token serves the whole client lifetime")
}

func TestTokenMissingCredentials(t *testing.T) {
	client := NewClient("", "", false)
	_, err := client.SearchKeyword(context.Background(), "a", 5, 0)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestProductDetails(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products/v4/search/296-IN A4988-ND/productdetails", r.URL.Path)

		json.NewEncoder(w).Encode(Product{
			ManufacturerPartNumber: "A4988SETTR-T",
			Manufacturer:           Manufacturer{Name: "Allegro MicroSystems"},
			DataSheetURL:           "https://example.com/a4988.pdf",
			RoHsStatus:             "ROHS3 Compliant",
			Parameters: []Parameter{
				{Parameter: "Motor Type", Value: "Bipolar Stepper"},
			},
		})
	})

	// The part number contains a space to prove it travels URL-escaped.
	product, err := client.ProductDetails(context.Background(), "296-IN A4988-ND")
	require.NoError(t, err)

	assert.Equal(t, "A4988SETTR-T", product.ManufacturerPartNumber)
	assert.Equal(t, "ROHS3 Compliant", product.RoHsStatus)
	require.Len(t, product.Parameters, 1)
	assert.Equal(t, "Bipolar Stepper", product.Parameters[0].Value)
}

func TestProductDetailsNotFound(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.ProductDetails(context.Background(), "NOPE-123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartNotFound)
	assert.Contains(t, err.Error(), "NOPE-123")
}

func TestDownloadDatasheet(t *testing.T) {
	pdf := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), 4096)...)
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, downloadUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/pdf,*/*", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	})

	dest := filepath.Join(t.TempDir(), "A4988.pdf")
	written, err := client.DownloadDatasheet(context.Background(), client.BaseURL+"/ds/a4988.pdf", dest)
	require.NoError(t, err)
	assert.Equal(t, int64(len(pdf)), written)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestDownloadDatasheetRejectsHTML(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(bytes.Repeat([]byte("<html>blocked</html>"), 200))
	})

	dest := filepath.Join(t.TempDir(), "blocked.pdf")
	_, err := client.DownloadDatasheet(context.Background(), client.BaseURL+"/ds/blocked", dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTML instead of PDF")

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "the HTML page must not be left on disk")
}

func TestDownloadDatasheetRejectsTinyBody(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("stub"))
	})

	dest := filepath.Join(t.TempDir(), "tiny.pdf")
	_, err := client.DownloadDatasheet(context.Background(), client.BaseURL+"/ds/tiny", dest)
	require.Error(t, err)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestResolveCredentials(t *testing.T) {
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")

	id, secret := ResolveCredentials("flag-id", "flag-secret", "cfg-id", "cfg-secret")
	assert.Equal(t, "flag-id", id)
	assert.Equal(t, "flag-secret", secret)

	id, secret = ResolveCredentials("", "", "cfg-id", "cfg-secret")
	assert.Equal(t, "cfg-id", id)
	assert.Equal(t, "cfg-secret", secret)

	t.Setenv(EnvClientID, "env-id")
	id, secret = ResolveCredentials("", "", "cfg-id", "cfg-secret")
	assert.Equal(t, "env-id", id)
	assert.Equal(t, "cfg-secret", secret, "each half resolves independently")
}

package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points a client at a mock server, mimicking the real layout
// where the base URL carries the version path.
func testClient(server *httptest.Server) *Client {
	client := NewClient("test-key", server.URL+"/v1beta")
	client.HTTPClient = server.Client()
	return client
}

func TestStartUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload/v1beta/files", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "resumable", r.Header.Get("X-Goog-Upload-Protocol"))
		assert.Equal(t, "start", r.Header.Get("X-Goog-Upload-Command"))
		assert.Equal(t, "1024", r.Header.Get("X-Goog-Upload-Header-Content-Length"))
		assert.Equal(t, "application/pdf", r.Header.Get("X-Goog-Upload-Header-Content-Type"))

		var req startUploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "board.pdf", req.File.DisplayName)

		w.Header().Set("X-Goog-Upload-URL", "https://upload.example.com/session/42")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	session, err := testClient(server).StartUpload(context.Background(), "board.pdf", 1024, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://upload.example.com/session/42", session)
}

func TestStartUploadMissingSessionURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := testClient(server).StartUpload(context.Background(), "board.pdf", 1024, "application/pdf")
	assert.ErrorIs(t, err, ErrMissingUploadURL)
}

func TestStartUploadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server).StartUpload(context.Background(), "board.pdf", 1024, "application/pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProtocol)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSendBytes(t *testing.T) {
	payload := []byte("%PDF-1.7 fake content")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "0", r.Header.Get("X-Goog-Upload-Offset"))
		assert.Equal(t, "upload, finalize", r.Header.Get("X-Goog-Upload-Command"))
		assert.Equal(t, int64(len(payload)), r.ContentLength)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, body)

		json.NewEncoder(w).Encode(uploadResponse{File: RemoteFile{
			Name: "files/abc123",
			URI:  "https://files.example.com/abc123",
		}})
	}))
	defer server.Close()

	remote, err := testClient(server).SendBytes(context.Background(), server.URL+"/session/42", payload)
	require.NoError(t, err)
	assert.Equal(t, "files/abc123", remote.Name)
	assert.Equal(t, "https://files.example.com/abc123", remote.URI)
}

func TestSendBytesIncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(uploadResponse{File: RemoteFile{Name: "files/abc123"}})
	}))
	defer server.Close()

	_, err := testClient(server).SendBytes(context.Background(), server.URL+"/session/42", []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing file name or uri")
}

func TestCheckFile(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		state     string
		wantState FileState
		wantErr   bool
	}{
		{name: "active file", status: http.StatusOK, state: "ACTIVE", wantState: FileActive},
		{name: "deleted file", status: http.StatusNotFound, wantState: FileGone},
		{name: "processing file", status: http.StatusOK, state: "PROCESSING", wantState: FileUnknown, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, wantState: FileUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1beta/files/abc123", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))

				w.WriteHeader(tt.status)
				if tt.state != "" {
					json.NewEncoder(w).Encode(fileStatusResponse{State: tt.state})
				}
			}))
			defer server.Close()

			state, err := testClient(server).CheckFile(context.Background(), "files/abc123")
			assert.Equal(t, tt.wantState, state)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckFileUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	state, err := testClient(server).CheckFile(context.Background(), "files/abc123")
	assert.Equal(t, FileUnknown, state)
	assert.Error(t, err)
}

func TestFileStateString(t *testing.T) {
	assert.Equal(t, "active", FileActive.String())
	assert.Equal(t, "gone", FileGone.String())
	assert.Equal(t, "unknown", FileUnknown.String())
}

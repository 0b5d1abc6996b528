package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ErrMissingUploadURL is returned when the upload handshake succeeds but the
// response carries no session URL. It is a protocol error.
var ErrMissingUploadURL = fmt.Errorf("%w: upload response missing x-goog-upload-url header", ErrProtocol)

// RemoteFile identifies an upload on the remote store.
type RemoteFile struct {
	// Name is the remote identifier, for example "files/abc123".
	Name string `json:"name"`

	// URI is the reference attached to generation requests.
	URI string `json:"uri"`
}

// FileState classifies the outcome of a status check.
type FileState int

const (
	// FileUnknown means the check could not determine whether the file is
	// usable. Callers should assume nothing and upload fresh.
	FileUnknown FileState = iota

	// FileActive means the file exists and is ready for use.
	FileActive

	// FileGone means the remote store reported the file deleted.
	FileGone
)

// String returns the lowercase state name for logs.
func (s FileState) String() string {
	switch s {
	case FileActive:
		return "active"
	case FileGone:
		return "gone"
	default:
		return "unknown"
	}
}

// uploadFileMeta is the metadata sent with the upload handshake.
type uploadFileMeta struct {
	DisplayName string `json:"display_name"`
}

type startUploadRequest struct {
	File uploadFileMeta `json:"file"`
}

type uploadResponse struct {
	File RemoteFile `json:"file"`
}

// fileStatusResponse is the slice of the file resource a status check reads.
type fileStatusResponse struct {
	State string `json:"state"`
}

// StartUpload opens a resumable upload session for a file of the given size
// and content type and returns the session URL to send the bytes to.
func (c *Client) StartUpload(ctx context.Context, displayName string, size int64, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	body, err := json.Marshal(startUploadRequest{File: uploadFileMeta{DisplayName: displayName}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal upload request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/upload/v1beta/files?key=%s", c.uploadHost(), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Upload-Protocol", "resumable")
	req.Header.Set("X-Goog-Upload-Command", "start")
	req.Header.Set("X-Goog-Upload-Header-Content-Length", strconv.FormatInt(size, 10))
	req.Header.Set("X-Goog-Upload-Header-Content-Type", contentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to start upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to start upload: %w", httpError(resp))
	}

	session := resp.Header.Get("x-goog-upload-url")
	if session == "" {
		return "", ErrMissingUploadURL
	}
	return session, nil
}

// SendBytes transfers the file content to an upload session in a single
// finalizing request and returns the remote name and URI.
func (c *Client) SendBytes(ctx context.Context, uploadURL string, data []byte) (RemoteFile, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return RemoteFile{}, fmt.Errorf("failed to build transfer request: %w", err)
	}
	req.Header.Set("X-Goog-Upload-Offset", "0")
	req.Header.Set("X-Goog-Upload-Command", "upload, finalize")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return RemoteFile{}, fmt.Errorf("failed to transfer file content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RemoteFile{}, fmt.Errorf("failed to transfer file content: %w", httpError(resp))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RemoteFile{}, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if out.File.Name == "" || out.File.URI == "" {
		return RemoteFile{}, fmt.Errorf("%w: upload response missing file name or uri", ErrProtocol)
	}
	return out.File, nil
}

// CheckFile asks the remote store whether name still exists. A 404 maps to
// FileGone; any transport failure, unexpected status, or non-ACTIVE state
// maps to FileUnknown together with the underlying error.
func (c *Client) CheckFile(ctx context.Context, name string) (FileState, error) {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s?key=%s", c.BaseURL, name, url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return FileUnknown, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return FileUnknown, fmt.Errorf("failed to check file status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return FileGone, nil
	}
	if resp.StatusCode != http.StatusOK {
		return FileUnknown, fmt.Errorf("failed to check file status: %w", httpError(resp))
	}

	var status fileStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return FileUnknown, fmt.Errorf("failed to decode status response: %w", err)
	}
	if status.State == "ACTIVE" {
		return FileActive, nil
	}
	return FileUnknown, fmt.Errorf("file %s is in state %q", name, status.State)
}

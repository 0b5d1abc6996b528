package filecache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/akiselev/datasheet/internal/gemini"
	"github.com/akiselev/datasheet/internal/logging"
)

// fallbackDisplayName is used when a path yields no usable base name.
const fallbackDisplayName = "datasheet.pdf"

// uploadContentType is declared for every upload. The tool only ever sends
// PDF datasheets.
const uploadContentType = "application/pdf"

// FileService is the remote file API surface the cache needs. *gemini.Client
// satisfies it.
type FileService interface {
	// StartUpload opens a resumable upload session and returns the session URL.
	StartUpload(ctx context.Context, displayName string, size int64, contentType string) (string, error)

	// SendBytes transfers the file content to an upload session and returns
	// the remote name and URI.
	SendBytes(ctx context.Context, uploadURL string, data []byte) (gemini.RemoteFile, error)

	// CheckFile reports whether the named remote file still exists.
	CheckFile(ctx context.Context, name string) (gemini.FileState, error)
}

// Cache coordinates local content digests with remote uploads. Obtain one
// with New, then call GetOrUpload per file.
type Cache struct {
	store  *Store
	svc    FileService
	logger zerolog.Logger
}

// New opens the cache document in dir and sweeps expired records once, so a
// long-unused cache sheds dead weight before the first lookup.
func New(ctx context.Context, dir string, svc FileService) *Cache {
	store := OpenStore(ctx, dir)
	store.SweepExpired(time.Now())
	return &Cache{
		store:  store,
		svc:    svc,
		logger: logging.ComponentLogger(logging.FromContext(ctx), "filecache"),
	}
}

// Store exposes the underlying document, mainly for maintenance commands.
func (c *Cache) Store() *Store {
	return c.store
}

// GetOrUpload returns a usable remote record for the file at path, uploading
// only when no trusted record exists.
//
// The sequence: digest the content, look it up, check the record against the
// expiry margin, then verify the file still exists remotely. Any doubt at any
// step (expired, deleted remotely, status check failed) falls through to a
// fresh upload, which is recorded and persisted before returning.
func (c *Cache) GetOrUpload(ctx context.Context, path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	digest := Fingerprint(data)

	if rec, ok := c.store.Get(digest); ok {
		if rec.Expired() {
			c.logger.Info().Str("name", rec.Name).Msg("cached upload expired, re-uploading")
		} else {
			state, checkErr := c.svc.CheckFile(ctx, rec.Name)
			switch state {
			case gemini.FileActive:
				c.logger.Info().Str("uri", rec.URI).Msg("using cached upload")
				return rec, nil
			case gemini.FileGone:
				c.logger.Info().Str("name", rec.Name).Msg("cached upload no longer exists remotely, re-uploading")
			default:
				c.logger.Warn().Err(checkErr).Str("name", rec.Name).Msg("could not verify cached upload, re-uploading")
			}
		}
	}

	rec, err := c.upload(ctx, data, displayName(path))
	if err != nil {
		return Record{}, err
	}

	c.store.Put(digest, rec)
	if err := c.store.Save(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// upload pushes data through the two-step upload handshake and builds the
// record for it.
func (c *Cache) upload(ctx context.Context, data []byte, name string) (Record, error) {
	size := uint64(len(data))
	c.logger.Info().Str("display_name", name).Uint64("bytes", size).Msg("uploading file")

	uploadURL, err := c.svc.StartUpload(ctx, name, int64(len(data)), uploadContentType)
	if err != nil {
		return Record{}, fmt.Errorf("failed to start upload: %w", err)
	}

	remote, err := c.svc.SendBytes(ctx, uploadURL, data)
	if err != nil {
		return Record{}, fmt.Errorf("failed to upload file content: %w", err)
	}

	rec := NewRecord(remote.Name, remote.URI, size, time.Now())
	c.logger.Info().Str("uri", rec.URI).Msg("upload complete")
	return rec, nil
}

// displayName derives the remote display name from a local path.
func displayName(path string) string {
	base := filepath.Base(path)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return fallbackDisplayName
	}
	return base
}

package filecache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/akiselev/datasheet/internal/logging"
)

const (
	// CacheFileName is the JSON document holding the digest-to-record mapping.
	CacheFileName = "gemini_files.json"

	// cacheDirName is the application directory created under the platform
	// cache root when no explicit directory is configured.
	cacheDirName = "datasheet-cli"
)

// EnvCacheDir overrides the cache directory when set. It takes precedence
// over the configured directory and the platform default.
const EnvCacheDir = "DATASHEET_CACHE_DIR"

// document is the on-disk shape of the cache file.
type document struct {
	Files map[string]Record `json:"files"`
}

// Store holds the digest-to-record mapping for one command invocation.
//
// The whole document is read once at open and rewritten in full on every
// save. Concurrent invocations are not synchronized; the last save wins and
// a lost record only costs a redundant upload later. Not safe for use from
// multiple goroutines.
type Store struct {
	// dir is the directory containing the cache document.
	dir string

	// path is the full path of the cache document.
	path string

	// files maps content digests to upload records.
	files map[string]Record

	logger zerolog.Logger
}

// ResolveDir picks the cache directory. Precedence: the DATASHEET_CACHE_DIR
// environment variable, then the configured directory, then the platform
// cache root, then a .cache directory relative to the working directory.
func ResolveDir(configured string) string {
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		return dir
	}
	if configured != "" {
		return configured
	}
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, cacheDirName)
	}
	return filepath.Join(".cache", cacheDirName)
}

// OpenStore loads the cache document from dir. Opening never fails: a
// missing, unreadable, or corrupt document yields an empty store, since the
// worst outcome of losing the cache is uploading a file that was already
// uploaded.
func OpenStore(ctx context.Context, dir string) *Store {
	s := &Store{
		dir:    dir,
		path:   filepath.Join(dir, CacheFileName),
		files:  make(map[string]Record),
		logger: logging.ComponentLogger(logging.FromContext(ctx), "filecache"),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("could not read cache document, starting empty")
		}
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("cache document is corrupt, starting empty")
		return s
	}
	if doc.Files != nil {
		s.files = doc.Files
	}
	return s
}

// Get returns the record stored under digest.
func (s *Store) Get(digest string) (Record, bool) {
	rec, ok := s.files[digest]
	return rec, ok
}

// Put stores rec under digest, replacing any previous record. The change is
// in-memory until Save is called.
func (s *Store) Put(digest string, rec Record) {
	s.files[digest] = rec
}

// Len returns the number of records, expired ones included.
func (s *Store) Len() int {
	return len(s.files)
}

// Records returns a copy of the digest-to-record mapping.
func (s *Store) Records() map[string]Record {
	out := make(map[string]Record, len(s.files))
	for digest, rec := range s.files {
		out[digest] = rec
	}
	return out
}

// Clear drops every record. The change is in-memory until Save is called.
func (s *Store) Clear() {
	s.files = make(map[string]Record)
}

// Path returns the full path of the cache document.
func (s *Store) Path() string {
	return s.path
}

// Save writes the full document to disk, creating the cache directory if
// needed. The document is overwritten in place; see the Store comment for
// the concurrency caveat.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(document{Files: s.files}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cache document: %w", err)
	}
	return nil
}

// SweepExpired removes every record that fails the safety-margin test at now
// and returns how many were removed. When anything was removed the document
// is saved best-effort: a failed save is logged and swallowed because a stale
// document only costs a future status check and re-upload.
func (s *Store) SweepExpired(now time.Time) int {
	removed := 0
	for digest, rec := range s.files {
		if rec.ExpiredAt(now) {
			delete(s.files, digest)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("cleaned up expired cache entries")
		if err := s.Save(); err != nil {
			s.logger.Warn().Err(err).Msg("could not persist cache after cleanup")
		}
	}
	return removed
}
